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
	"testing"

	"github.com/tapir-org/tapir/build/ir"
	"github.com/tapir-org/tapir/build/ir/irkind"
	"github.com/tapir-org/tapir/export/pyprint"
)

// export prints a graph as a function named f and fails the test on error.
func export(t *testing.T, g *ir.Graph, opts ...pyprint.Option) string {
	t.Helper()
	src, _, err := pyprint.Function(g, "f", opts...)
	if err != nil {
		t.Fatalf("Function: %v", err)
	}
	return src
}

// tensorSchema declares a builtin operator taking tensor arguments with the
// given names and returning a tensor.
func tensorSchema(op string, argNames ...string) *ir.Schema {
	args := make([]ir.Arg, len(argNames))
	for i, name := range argNames {
		args[i] = ir.Arg{Name: name, Type: ir.TensorType}
	}
	return &ir.Schema{
		Sym:     ir.Builtin(op),
		Args:    args,
		Returns: []ir.Type{ir.TensorType},
	}
}

// callOut appends a builtin operator call returning a value of the given type.
func callOut(b *ir.Block, op string, out ir.Type, args ...*ir.Value) *ir.Value {
	names := make([]string, len(args))
	for i := range args {
		names[i] = "arg" + string(rune('a'+i))
	}
	schema := tensorSchema(op, names...)
	schema.Returns = []ir.Type{out}
	n := b.NewNode(irkind.Call).SetCall(ir.Builtin(op), schema)
	for _, arg := range args {
		n.AddInput(arg)
	}
	return n.NewOutput(out, "")
}

// call appends a builtin operator call returning a tensor.
func call(b *ir.Block, op string, args ...*ir.Value) *ir.Value {
	return callOut(b, op, ir.TensorType, args...)
}

// constant appends a constant node holding lit.
func constant(b *ir.Block, lit *ir.Literal, typ ir.Type) *ir.Value {
	return b.NewNode(irkind.Constant).SetLiteral(lit).NewOutput(typ, "")
}
