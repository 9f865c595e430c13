// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ir_test

import (
	"testing"

	"github.com/tapir-org/tapir/build/ir"
	"github.com/tapir-org/tapir/build/ir/irkind"
)

func TestUses(t *testing.T) {
	g := ir.NewGraph()
	x := g.AddInput("x", ir.TensorType)
	y := g.AddInput("y", ir.TensorType)
	add := g.Block().NewNode(irkind.Call)
	add.AddInput(x).AddInput(y).AddInput(x)
	out := add.NewOutput(ir.TensorType, "")
	g.RegisterOutput(out)

	if n := len(x.Uses()); n != 2 {
		t.Fatalf("x has %d uses but want 2", n)
	}
	uses := x.Uses()
	if uses[0].User != add || uses[0].Offset != 0 {
		t.Errorf("first use of x is (%v, %d) but want (add, 0)", uses[0].User.Kind(), uses[0].Offset)
	}
	if uses[1].Offset != 2 {
		t.Errorf("second use of x at offset %d but want 2", uses[1].Offset)
	}
	if n := len(out.Uses()); n != 1 {
		t.Fatalf("out has %d uses but want 1", n)
	}
	if use := out.Uses()[0]; use.User.Kind() != irkind.Return {
		t.Errorf("out is used by %v but want Return", use.User.Kind())
	}
}

func TestPrev(t *testing.T) {
	g := ir.NewGraph()
	b := g.Block()
	first := b.NewNode(irkind.Constant).SetLiteral(ir.IntLit(1))
	second := b.NewNode(irkind.Call)
	if got := first.Prev(); got != nil {
		t.Errorf("first node has a predecessor %v", got.Kind())
	}
	if got := second.Prev(); got != first {
		t.Errorf("second node predecessor is not the first node")
	}
	if got := b.Return().Prev(); got != second {
		t.Errorf("return node predecessor is not the last node")
	}
}

func TestChildBlocks(t *testing.T) {
	g := ir.NewGraph()
	cond := g.AddInput("cond", ir.BoolType)
	ifNode := g.Block().NewNode(irkind.If)
	ifNode.AddInput(cond)
	then := ifNode.NewBlock()
	els := ifNode.NewBlock()
	if len(ifNode.Blocks()) != 2 {
		t.Fatalf("if node has %d blocks but want 2", len(ifNode.Blocks()))
	}
	if then.Owner() != ifNode || els.Owner() != ifNode {
		t.Errorf("child blocks do not report the if node as owner")
	}
	if then.Graph() != g {
		t.Errorf("child block does not belong to the graph")
	}
}

func TestTypeStrings(t *testing.T) {
	tests := []struct {
		typ  ir.Type
		want string
		free bool
	}{
		{typ: ir.TensorType, want: "Tensor"},
		{typ: ir.Optional(ir.IntType), want: "Optional[int]"},
		{typ: ir.List(ir.FloatType), want: "List[float]"},
		{typ: ir.Tuple(ir.TensorType, ir.BoolType), want: "Tuple[Tensor, bool]"},
		{typ: ir.Optional(&ir.TypeVar{Name: "t"}), want: "Optional[t]", free: true},
	}
	for i, test := range tests {
		if got := test.typ.PyString(); got != test.want {
			t.Errorf("test %d: got %q but want %q", i, got, test.want)
		}
		if got := test.typ.HasFreeVariables(); got != test.free {
			t.Errorf("test %d: HasFreeVariables() = %v but want %v", i, got, test.free)
		}
	}
}
