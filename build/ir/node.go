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

package ir

import (
	"github.com/tapir-org/tapir/build/fmterr"
	"github.com/tapir-org/tapir/build/ir/irkind"
)

// Node is a tagged operation: zero or more input values (edges, not owned),
// zero or more output values (owned by the node) and, for control
// constructs, owned child blocks.
type Node struct {
	kind   irkind.Kind
	block  *Block
	index  int
	inputs []*Value
	outs   []*Value
	blocks []*Block

	lit      *Literal
	sym      Symbol
	schema   *Schema
	subgraph *Graph
	ints     map[string]int64
	loc      fmterr.Location
}

// Kind returns the kind of the node.
func (n *Node) Kind() irkind.Kind {
	return n.kind
}

// Block returns the block owning the node.
func (n *Node) Block() *Block {
	return n.block
}

// Inputs returns the input values of the node in order.
func (n *Node) Inputs() []*Value {
	return n.inputs
}

// Input returns the single input of the node.
func (n *Node) Input() *Value {
	return n.inputs[0]
}

// AddInput appends an input edge to the node and records the use on the value.
func (n *Node) AddInput(v *Value) *Node {
	v.uses = append(v.uses, Use{User: n, Offset: len(n.inputs)})
	n.inputs = append(n.inputs, v)
	return n
}

// Outputs returns the output values owned by the node.
func (n *Node) Outputs() []*Value {
	return n.outs
}

// Output returns the single output of the node.
func (n *Node) Output() *Value {
	return n.outs[0]
}

// NewOutput appends an output value of the given type. The hint is an
// optional human-readable name; an empty hint leaves the value anonymous.
func (n *Node) NewOutput(typ Type, hint string) *Value {
	v := &Value{node: n, typ: typ, hint: hint}
	n.outs = append(n.outs, v)
	return v
}

// Blocks returns the child blocks owned by the node.
func (n *Node) Blocks() []*Block {
	return n.blocks
}

// NewBlock appends a child block to the node.
func (n *Node) NewBlock() *Block {
	b := newBlock(n.block.graph, n)
	n.blocks = append(n.blocks, b)
	return b
}

// Prev returns the node preceding this one in its block, or nil when the
// node is first. The block return node follows the last node.
func (n *Node) Prev() *Node {
	return n.block.prev(n)
}

// Literal returns the constant payload of a constant-like node.
func (n *Node) Literal() *Literal {
	return n.lit
}

// SetLiteral sets the constant payload of the node.
func (n *Node) SetLiteral(l *Literal) *Node {
	n.lit = l
	return n
}

// Sym returns the called symbol of a Call or ForeignCall node.
func (n *Node) Sym() Symbol {
	return n.sym
}

// Schema returns the declared schema of the called operator, or nil when
// the node kind carries no schema.
func (n *Node) Schema() *Schema {
	return n.schema
}

// SetCall sets the called symbol and its declared schema.
func (n *Node) SetCall(sym Symbol, schema *Schema) *Node {
	n.sym = sym
	n.schema = schema
	return n
}

// Subgraph returns the deferred sub-graph of a Fork node.
func (n *Node) Subgraph() *Graph {
	return n.subgraph
}

// SetSubgraph sets the deferred sub-graph of the node.
func (n *Node) SetSubgraph(g *Graph) *Node {
	n.subgraph = g
	return n
}

// Int returns an integer attribute of the node (tuple index and slice bounds).
func (n *Node) Int(name string) int64 {
	return n.ints[name]
}

// SetInt sets an integer attribute on the node.
func (n *Node) SetInt(name string, v int64) *Node {
	if n.ints == nil {
		n.ints = make(map[string]int64)
	}
	n.ints[name] = v
	return n
}

// Loc returns the location in the original source the node was built from.
func (n *Node) Loc() fmterr.Location {
	return n.loc
}

// SetLoc sets the source location of the node.
func (n *Node) SetLoc(loc fmterr.Location) *Node {
	n.loc = loc
	return n
}

// Names of the integer attributes used by tuple access nodes.
const (
	AttrIndex = "index"
	AttrBeg   = "beg"
	AttrEnd   = "end"
)
