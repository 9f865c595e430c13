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

// Package ir is the tapir intermediate representation (IR):
// a typed graph of operations in SSA form.
//
// A graph owns a tree of blocks rooted at one entry block. A block is an
// ordered sequence of nodes closed by a distinguished return node. Every
// value is produced by exactly one node or is a block input. The graph is
// never mutated once built; the exporter in
// [github.com/tapir-org/tapir/export/pyprint] consumes it read-only.
package ir

import (
	"github.com/tapir-org/tapir/build/fmterr"
	"github.com/tapir-org/tapir/build/ir/irkind"
)

// Graph owns a collection of blocks rooted at one entry block.
// The entry block inputs are the graph formal inputs and the entry block
// return node lists the graph outputs.
type Graph struct {
	entry *Block
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	g := &Graph{}
	g.entry = newBlock(g, nil)
	return g
}

// Block returns the entry block of the graph.
func (g *Graph) Block() *Block {
	return g.entry
}

// Inputs returns the formal inputs of the graph.
func (g *Graph) Inputs() []*Value {
	return g.entry.Inputs()
}

// AddInput appends a formal input to the graph.
func (g *Graph) AddInput(hint string, typ Type) *Value {
	return g.entry.AddInput(hint, typ)
}

// Outputs returns the values returned by the graph.
func (g *Graph) Outputs() []*Value {
	return g.entry.Outputs()
}

// RegisterOutput appends a value to the graph return statement.
func (g *Graph) RegisterOutput(v *Value) {
	g.entry.RegisterOutput(v)
}

// Block is an ordered sequence of nodes, lexically scoped. A block owns
// its nodes, zero or more block-local input values (loop or branch carried
// parameters) and a terminal return node listing the block outputs.
type Block struct {
	graph  *Graph
	owner  *Node
	inputs []*Value
	nodes  []*Node
	ret    *Node
}

func newBlock(g *Graph, owner *Node) *Block {
	b := &Block{graph: g, owner: owner}
	b.ret = &Node{kind: irkind.Return, block: b, index: -1}
	return b
}

// Graph returns the graph owning the block.
func (b *Block) Graph() *Graph {
	return b.graph
}

// Owner returns the control node owning the block, or nil for the graph
// entry block.
func (b *Block) Owner() *Node {
	return b.owner
}

// Inputs returns the block-local input values.
func (b *Block) Inputs() []*Value {
	return b.inputs
}

// AddInput appends a block-local input value.
func (b *Block) AddInput(hint string, typ Type) *Value {
	v := &Value{typ: typ, hint: hint}
	b.inputs = append(b.inputs, v)
	return v
}

// Nodes returns the nodes of the block in order, excluding the return node.
func (b *Block) Nodes() []*Node {
	return b.nodes
}

// Return returns the terminal return node of the block.
func (b *Block) Return() *Node {
	return b.ret
}

// Outputs returns the block output values, that is the inputs of the
// block return node.
func (b *Block) Outputs() []*Value {
	return b.ret.inputs
}

// RegisterOutput appends a value to the block return statement.
func (b *Block) RegisterOutput(v *Value) {
	b.ret.AddInput(v)
}

// NewNode creates a node of the given kind and appends it to the block.
func (b *Block) NewNode(kind irkind.Kind) *Node {
	n := &Node{kind: kind, block: b, index: len(b.nodes)}
	b.nodes = append(b.nodes, n)
	return n
}

// prev returns the node preceding n in the block, or nil when n is the
// first node. The return node follows the last node of the block.
func (b *Block) prev(n *Node) *Node {
	i := n.index
	if i < 0 {
		i = len(b.nodes)
	}
	if i == 0 {
		return nil
	}
	return b.nodes[i-1]
}

var _ fmterr.Locator = (*Node)(nil)
