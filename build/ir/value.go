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

// Value is a typed SSA name. A value is produced by exactly one node, or
// is a block input when its node is nil. Values are never mutated after
// creation; their identity is stable for the life of the graph.
type Value struct {
	node *Node
	typ  Type
	hint string
	uses []Use
}

// Use is a (consumer node, input position) pair.
type Use struct {
	User   *Node
	Offset int
}

// Node returns the node producing the value, or nil for a block input.
func (v *Value) Node() *Node {
	return v.node
}

// Type returns the static type of the value.
func (v *Value) Type() Type {
	return v.typ
}

// Hint returns the optional human-readable name of the value.
func (v *Value) Hint() string {
	return v.hint
}

// HasHint returns true if the value carries a human-readable name.
func (v *Value) HasHint() bool {
	return v.hint != ""
}

// Uses returns every (node, position) consuming the value.
func (v *Value) Uses() []Use {
	return v.uses
}
