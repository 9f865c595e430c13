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
	"fmt"
	"math"

	"github.com/tapir-org/tapir/build/fmterr"
	"github.com/tapir-org/tapir/build/ir"
	"github.com/tapir-org/tapir/build/ir/irkind"
)

// unboundedTripCount is the sentinel bound of a loop whose trip count was
// never specified.
const unboundedTripCount = math.MaxInt64

// ifView reads an If node:
// inputs:  condition
// outputs: branch outputs
// blocks:  then block, else block
type ifView struct {
	n *ir.Node
}

func (v ifView) cond() *ir.Value { return v.n.Inputs()[0] }

func (v ifView) thenBlock() *ir.Block { return v.n.Blocks()[0] }

func (v ifView) elseBlock() *ir.Block { return v.n.Blocks()[1] }

// loopView reads the uniform loop encoding:
// inputs:       max trip count, initial condition, carried inputs...
// outputs:      carried outputs...
// body inputs:  current trip count, carried values...
// body outputs: next condition, carried values...
type loopView struct {
	n *ir.Node
}

func (v loopView) maxTripCount() *ir.Value { return v.n.Inputs()[0] }

func (v loopView) inputCond() *ir.Value { return v.n.Inputs()[1] }

func (v loopView) carriedInputs() []*ir.Value { return v.n.Inputs()[2:] }

func (v loopView) carriedOutputs() []*ir.Value { return v.n.Outputs() }

func (v loopView) bodyBlock() *ir.Block { return v.n.Blocks()[0] }

func (v loopView) currentTripCount() *ir.Value { return v.bodyBlock().Inputs()[0] }

func (v loopView) bodyCarriedInputs() []*ir.Value { return v.bodyBlock().Inputs()[1:] }

func (v loopView) nextCond() *ir.Value { return v.bodyBlock().Outputs()[0] }

// staticBool returns the value of a statically known boolean.
func staticBool(v *ir.Value) (bool, bool) {
	n := v.Node()
	if n == nil || n.Kind() != irkind.Constant {
		return false, false
	}
	lit := n.Literal()
	if lit == nil || lit.Kind() != ir.BoolLiteral {
		return false, false
	}
	return lit.Bool(), true
}

// staticInt returns the value of a statically known integer.
func staticInt(v *ir.Value) (int64, bool) {
	n := v.Node()
	if n == nil || n.Kind() != irkind.Constant {
		return 0, false
	}
	lit := n.Literal()
	if lit == nil || lit.Kind() != ir.IntLiteral {
		return 0, false
	}
	return lit.Int(), true
}

// shouldEmitAsForLoop classifies a loop instance. The IR encodes only one
// generalized loop shape, so the surface syntax has to be recovered from
// the condition and trip count inputs.
func shouldEmitAsForLoop(stmt loopView) (bool, error) {
	tripCount, tripKnown := staticInt(stmt.maxTripCount())
	condInput, condInputKnown := staticBool(stmt.inputCond())
	condNext, condNextKnown := staticBool(stmt.nextCond())

	conditionAlwaysTrue := condInputKnown && condInput && condNextKnown && condNext
	tripCountSpecified := !tripKnown || // trip is not a constant
		tripCount != unboundedTripCount || // it is a constant but not the default one
		len(stmt.currentTripCount().Uses()) > 0 // it is actually read in the body

	if conditionAlwaysTrue {
		// If the trip count was not specified this was written as
		// `while True:`.
		return tripCountSpecified, nil
	}
	// This must be a while loop, but check that there isn't _also_ a
	// trip count.
	if tripCountSpecified {
		return false, fmterr.Errorf(stmt.n, "loop cannot be exported: an optimization combined a while and a for loop into a shape the surface syntax cannot express")
	}
	return false, nil
}

func (p *printer) printIf(n *ir.Node) error {
	stmt := ifView{n: n}
	p.assignUniqueNames(n.Outputs())
	p.indent()
	fmt.Fprintf(&p.out, "if %s:\n", p.useOf(stmt.cond()))
	if err := p.indented(func() error {
		if err := p.printBlock(stmt.thenBlock(), len(n.Outputs()) > 0); err != nil {
			return err
		}
		p.printAssignment(n.Outputs(), stmt.thenBlock().Outputs())
		return nil
	}); err != nil {
		return err
	}
	p.indent()
	p.out.WriteString("else:\n")
	return p.indented(func() error {
		if err := p.printBlock(stmt.elseBlock(), len(n.Outputs()) > 0); err != nil {
			return err
		}
		p.printAssignment(n.Outputs(), stmt.elseBlock().Outputs())
		return nil
	})
}

// printLoop reconstructs either surface loop form. Carried dependencies
// are handled by assigning their initial values to the loop outputs before
// the loop and re-assigning the outputs from the body values at the end of
// each trip.
func (p *printer) printLoop(n *ir.Node) error {
	stmt := loopView{n: n}
	emitAsForLoop, err := shouldEmitAsForLoop(stmt)
	if err != nil {
		return err
	}

	carriedOutputs := stmt.carriedOutputs()
	bodyCarriedInputs := stmt.bodyCarriedInputs()
	if len(bodyCarriedInputs) != len(carriedOutputs) {
		return fmterr.Internalf(n, "loop body carries %d values but the loop produces %d outputs", len(bodyCarriedInputs), len(carriedOutputs))
	}
	p.assignUniqueNames(carriedOutputs)
	// Carried block inputs alias the loop outputs.
	for i, blockInput := range bodyCarriedInputs {
		p.assignValue(blockInput, carriedOutputs[i])
	}
	p.printAssignment(carriedOutputs, stmt.carriedInputs())

	trip := stmt.currentTripCount()
	p.assignUniqueNames([]*ir.Value{trip})
	if emitAsForLoop {
		p.indent()
		fmt.Fprintf(&p.out, "for %s in range(%s):\n", p.useOf(trip), p.useOf(stmt.maxTripCount()))
	} else {
		// The trip count is unused in a while loop, so its value stands
		// in for the loop condition.
		p.printAssignment([]*ir.Value{trip}, []*ir.Value{stmt.inputCond()})
		p.indent()
		fmt.Fprintf(&p.out, "while %s:\n", p.useOf(trip))
	}
	return p.indented(func() error {
		// Update the block outputs for the next iteration. For loops skip
		// the assignment to the new condition since it is always True.
		offset := 0
		if emitAsForLoop {
			offset = 1
		}
		body := stmt.bodyBlock()
		carried := body.Inputs()[offset:]
		if err := p.printBlock(body, len(carried) > 0); err != nil {
			return err
		}
		p.printAssignment(carried, body.Outputs()[offset:])
		return nil
	})
}
