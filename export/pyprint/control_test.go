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

package pyprint_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tapir-org/tapir/build/fmterr"
	"github.com/tapir-org/tapir/build/ir"
	"github.com/tapir-org/tapir/build/ir/irkind"
	"github.com/tapir-org/tapir/export/pyprint"
)

func TestIfElse(t *testing.T) {
	g := ir.NewGraph()
	cond := g.AddInput("cond", ir.BoolType)
	t1 := g.AddInput("t1", ir.TensorType)
	t2 := g.AddInput("t2", ir.TensorType)
	ifn := g.Block().NewNode(irkind.If).AddInput(cond)
	ifn.NewBlock().RegisterOutput(t1)
	ifn.NewBlock().RegisterOutput(t2)
	g.RegisterOutput(ifn.NewOutput(ir.TensorType, "y"))

	want := `def f(self,
    cond: bool,
    t1: Tensor,
    t2: Tensor) -> Tensor:
  if cond:
    y = t1
  else:
    y = t2
  return y
`
	if diff := cmp.Diff(want, export(t, g)); diff != "" {
		t.Errorf("unexpected source (-want +got):\n%s", diff)
	}
}

// Branches with no nodes and no outputs still need a statement.
func TestIfEmptyBranchesPass(t *testing.T) {
	g := ir.NewGraph()
	x := g.AddInput("x", ir.TensorType)
	cond := g.AddInput("cond", ir.BoolType)
	ifn := g.Block().NewNode(irkind.If).AddInput(cond)
	ifn.NewBlock()
	ifn.NewBlock()
	g.RegisterOutput(x)

	want := `def f(self,
    x: Tensor,
    cond: bool) -> Tensor:
  if cond:
    pass
  else:
    pass
  return x
`
	if diff := cmp.Diff(want, export(t, g)); diff != "" {
		t.Errorf("unexpected source (-want +got):\n%s", diff)
	}
}

// addLoop builds a loop accumulating torch.add(s, x), carrying s, with the
// given trip count and entry condition. The body emits nextCond as its
// first output.
func addLoop(g *ir.Graph, x, maxTrip, cond *ir.Value, tripHint string, bodyCond func(b *ir.Block, carried *ir.Value) *ir.Value) {
	loop := g.Block().NewNode(irkind.Loop).AddInput(maxTrip).AddInput(cond).AddInput(x)
	body := loop.NewBlock()
	body.AddInput(tripHint, ir.IntType)
	carried := body.AddInput("", ir.TensorType)
	next := bodyCond(body, carried)
	body.RegisterOutput(next)
	body.RegisterOutput(call(body, "add", carried, x))
	g.RegisterOutput(loop.NewOutput(ir.TensorType, "s"))
}

// A loop with a statically true condition and a concrete bound prints as a
// range loop.
func TestLoopFor(t *testing.T) {
	g := ir.NewGraph()
	x := g.AddInput("x", ir.TensorType)
	b := g.Block()
	trip := constant(b, ir.IntLit(3), ir.IntType)
	cond := constant(b, ir.BoolLit(true), ir.BoolType)
	addLoop(g, x, trip, cond, "i", func(body *ir.Block, carried *ir.Value) *ir.Value {
		return constant(body, ir.BoolLit(true), ir.BoolType)
	})

	want := `def f(self,
    x: Tensor) -> Tensor:
  s = x
  for i in range(3):
    s = torch.add(s, x)
  return s
`
	if diff := cmp.Diff(want, export(t, g)); diff != "" {
		t.Errorf("unexpected source (-want +got):\n%s", diff)
	}
}

// A loop with a computed condition and the unbounded trip sentinel prints
// as a while loop re-assigning its condition at the end of each trip.
func TestLoopWhile(t *testing.T) {
	g := ir.NewGraph()
	x := g.AddInput("x", ir.TensorType)
	c0 := g.AddInput("c0", ir.BoolType)
	b := g.Block()
	trip := constant(b, ir.IntLit(math.MaxInt64), ir.IntType)
	addLoop(g, x, trip, c0, "", func(body *ir.Block, carried *ir.Value) *ir.Value {
		return callOut(body, "gt", ir.BoolType, carried)
	})

	want := `def f(self,
    x: Tensor,
    c0: bool) -> Tensor:
  s = x
  _0 = c0
  while _0:
    _0, s = torch.gt(s), torch.add(s, x)
  return s
`
	if diff := cmp.Diff(want, export(t, g)); diff != "" {
		t.Errorf("unexpected source (-want +got):\n%s", diff)
	}
}

// An always-true condition without a concrete bound was written as
// `while True:`; the condition stand-in stays True on every trip.
func TestLoopWhileTrue(t *testing.T) {
	g := ir.NewGraph()
	x := g.AddInput("x", ir.TensorType)
	b := g.Block()
	trip := constant(b, ir.IntLit(math.MaxInt64), ir.IntType)
	cond := constant(b, ir.BoolLit(true), ir.BoolType)
	addLoop(g, x, trip, cond, "", func(body *ir.Block, carried *ir.Value) *ir.Value {
		return constant(body, ir.BoolLit(true), ir.BoolType)
	})

	want := `def f(self,
    x: Tensor) -> Tensor:
  s = x
  _0 = True
  while _0:
    _0, s = True, torch.add(s, x)
  return s
`
	if diff := cmp.Diff(want, export(t, g)); diff != "" {
		t.Errorf("unexpected source (-want +got):\n%s", diff)
	}
}

// A loop with both a computed condition and a concrete trip bound has no
// surface form; exporting it fails with the node location.
func TestLoopFusedError(t *testing.T) {
	g := ir.NewGraph()
	x := g.AddInput("x", ir.TensorType)
	c0 := g.AddInput("c0", ir.BoolType)
	b := g.Block()
	trip := constant(b, ir.IntLit(5), ir.IntType)
	loop := b.NewNode(irkind.Loop).AddInput(trip).AddInput(c0).AddInput(x)
	loop.SetLoc(fmterr.Location{File: "m.py", Line: 4, Col: 1})
	body := loop.NewBlock()
	body.AddInput("i", ir.IntType)
	carried := body.AddInput("", ir.TensorType)
	body.RegisterOutput(c0)
	body.RegisterOutput(carried)
	g.RegisterOutput(loop.NewOutput(ir.TensorType, "s"))

	_, _, err := pyprint.Function(g, "f")
	if err == nil {
		t.Fatal("exporting a fused loop succeeded, want an error")
	}
	for _, part := range []string{"m.py:4:1:", "loop cannot be exported"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("error %q does not mention %q", err.Error(), part)
		}
	}
}
