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

package pyprint

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/tapir-org/tapir/build/ir/irkind"
	"go.uber.org/multierr"
	"golang.org/x/exp/maps"
)

// handled are the kinds with bespoke rendering in the emitter. Adding a
// kind here asserts that printRHS or printNode handles it; a kind added to
// neither set makes export of graphs carrying it fail later.
var handled = map[irkind.Kind]bool{
	irkind.Constant:            true,
	irkind.None:                true,
	irkind.Return:              true,
	irkind.If:                  true,
	irkind.Loop:                true,
	irkind.TupleConstruct:      true,
	irkind.TupleIndex:          true,
	irkind.TupleSlice:          true,
	irkind.TupleUnpack:         true,
	irkind.ListConstruct:       true,
	irkind.ListUnpack:          true,
	irkind.TensorToNum:         true,
	irkind.ImplicitTensorToNum: true,
	irkind.FloatToInt:          true,
	irkind.IntToFloat:          true,
	irkind.StringToFloat:       true,
	irkind.TensorToBool:        true,
	irkind.Print:               true,
	irkind.Fork:                true,
	irkind.ForeignCall:         true,
	irkind.Call:                true,
}

// unneeded are the kinds only ever inserted by optimization passes or the
// interpreter, after export has already happened. Adding a kind here
// asserts it never appears in a graph destined for export.
var unneeded = map[irkind.Kind]bool{
	irkind.FusionGroup:    true,
	irkind.ConstantChunk:  true,
	irkind.AutogradAdd:    true,
	irkind.AnyDefined:     true,
	irkind.BroadcastSizes: true,
	irkind.ChunkSizes:     true,
	irkind.Load:           true,
	irkind.Store:          true,
	irkind.Drop:           true,
}

// HasSpecialCaseFor reports whether the exporter either has bespoke
// rendering for the kind or guarantees the kind never appears in a graph
// destined for export. Every new kind must land in exactly one of the two
// sets, or export will fail unexpectedly later.
func HasSpecialCaseFor(kind irkind.Kind) bool {
	return handled[kind] || unneeded[kind]
}

// ValidateRegistry checks that every node kind is classified into exactly
// one of the two registry sets. It returns one error per violation.
func ValidateRegistry() error {
	var errs error
	both := maps.Keys(handled)
	slices.Sort(both)
	for _, kind := range both {
		if unneeded[kind] {
			errs = multierr.Append(errs, errors.Errorf("kind %v is classified both as handled and as never exported", kind))
		}
	}
	for kind := irkind.Invalid + 1; kind < irkind.Max; kind++ {
		if !HasSpecialCaseFor(kind) {
			errs = multierr.Append(errs, errors.Errorf("kind %v is not classified in the export registry", kind))
		}
	}
	return errs
}
