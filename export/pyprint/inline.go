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
	"github.com/tapir-org/tapir/build/fmterr"
	"github.com/tapir-org/tapir/build/ir"
	"github.com/tapir-org/tapir/build/ir/irkind"
)

// scanValue, scanNode, scanBlock:
// decide if it is safe to omit the temporary binding a node output and
// inline the expression into its use. This is done only when
// (1) the node is a constant, or
// (2) the value is unnamed, single output, used once, and would appear in
//     the same order when the expression tree is reparsed.
// The last case can be checked because the parser emits an expression tree
// in a left-to-right postorder traversal (children, then operator). The
// reverse of this is a right-to-left preorder traversal. By walking the
// inputs of a node right to left while scanning the emitted node list
// backward, the two line up exactly when collapsing the chain reproduces
// the original tree on reparse.
//
// The inductive step: the right-most input must be produced by the node
// immediately before the current node, in tree order.

// canInline returns true if the value may be substituted textually at its
// single use site.
func canInline(v *ir.Value) bool {
	n := v.Node()
	// Block inputs and multi-output nodes need an assignment.
	if n == nil || len(n.Outputs()) != 1 {
		return false
	}
	// A value used more than once needs a variable.
	if len(v.Uses()) != 1 {
		return false
	}
	use := v.Uses()[0]
	// A named value was written as a variable, so preserve it, unless it
	// feeds the end of the block directly: a name just to return it is
	// not useful.
	if v.HasHint() && use.User.Kind() != irkind.Return {
		return false
	}
	// Control blocks never inline.
	if len(n.Blocks()) != 0 {
		return false
	}
	// A loop-carried input must materialize as a temporary, otherwise the
	// condition or trip count may be emitted in the wrong order w.r.t. it.
	if use.User.Kind() == irkind.Loop && use.Offset >= 2 {
		return false
	}
	return true
}

// scanValue considers inlining v into its consumer. blockPoint is the
// current node in the backward linear scan of the emitted nodes; v is the
// current value in the tree traversal that may match blockPoint's output.
func (p *printer) scanValue(blockPoint *ir.Node, v *ir.Value) (*ir.Node, error) {
	n := v.Node()
	if n == nil {
		return blockPoint, nil
	}
	if !n.Kind().ConstantLike() && p.inline[n] {
		return nil, fmterr.Internalf(n, "%v node already marked inline while scanning a consumer", n.Kind())
	}
	switch {
	case n == blockPoint && canInline(v):
		// The node sits at the expected point of the tree traversal:
		// recursively try to inline its own inputs.
		blockPoint, err := p.scanNode(blockPoint)
		if err != nil {
			return nil, err
		}
		p.inline[n] = true
		return blockPoint, nil
	case n.Kind().ConstantLike():
		// Constants always inline: they are deduplicated on parsing and
		// lifted to the top of the function regardless.
		p.inline[n] = true
	}
	return blockPoint, nil
}

func previousNonConstant(n *ir.Node) *ir.Node {
	for {
		n = n.Prev()
		if n == nil || !n.Kind().ConstantLike() {
			return n
		}
	}
}

func (p *printer) scanNode(n *ir.Node) (*ir.Node, error) {
	// Nodes already determined to be inline need no further scan.
	if p.inline[n] {
		return n, nil
	}
	for _, b := range n.Blocks() {
		if err := p.scanBlock(b); err != nil {
			return nil, err
		}
	}
	blockPoint := previousNonConstant(n)
	inputs := n.Inputs()
	for i := len(inputs) - 1; i >= 0; i-- {
		var err error
		blockPoint, err = p.scanValue(blockPoint, inputs[i])
		if err != nil {
			return nil, err
		}
	}
	return blockPoint, nil
}

func (p *printer) scanBlock(b *ir.Block) error {
	if _, err := p.scanNode(b.Return()); err != nil {
		return err
	}
	nodes := b.Nodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		if _, err := p.scanNode(nodes[i]); err != nil {
			return err
		}
	}
	return nil
}
