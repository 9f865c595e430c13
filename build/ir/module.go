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
	"iter"

	"github.com/tapir-org/tapir/base/ordered"
)

// NamedParameter is a stored tensor slot with the name it is bound to
// on its owning module.
type NamedParameter struct {
	Name string
	Slot *Tensor
}

// Method is a graph bound to a module: its trailing graph inputs read
// stored parameter slots instead of being passed by the caller.
type Method struct {
	name     string
	graph    *Graph
	params   []*Tensor
	defaults []*Literal
}

// NewMethod returns a method given its name and graph.
func NewMethod(name string, graph *Graph) *Method {
	return &Method{name: name, graph: graph}
}

// Name returns the method name.
func (m *Method) Name() string {
	return m.name
}

// Graph returns the method graph.
func (m *Method) Graph() *Graph {
	return m.graph
}

// AddParameter binds a stored slot to the next trailing graph input.
func (m *Method) AddParameter(slot *Tensor) *Method {
	m.params = append(m.params, slot)
	return m
}

// Params returns the stored slots bound to the trailing graph inputs,
// in input order.
func (m *Method) Params() []*Tensor {
	return m.params
}

// SetDefaults sets the declared default values of the method arguments.
// A nil entry means the argument has no default.
func (m *Method) SetDefaults(defaults ...*Literal) *Method {
	m.defaults = defaults
	return m
}

// Defaults returns the declared default values of the method arguments.
func (m *Method) Defaults() []*Literal {
	return m.defaults
}

// Module is a hierarchy of named stored parameter slots, submodules and
// methods.
type Module struct {
	params  []*NamedParameter
	modules *ordered.Map[string, *Module]
	methods *ordered.Map[string, *Method]
}

// NewModule returns an empty module.
func NewModule() *Module {
	return &Module{
		modules: ordered.NewMap[string, *Module](),
		methods: ordered.NewMap[string, *Method](),
	}
}

// RegisterParameter stores a named tensor slot on the module.
func (m *Module) RegisterParameter(name string, slot *Tensor) {
	m.params = append(m.params, &NamedParameter{Name: name, Slot: slot})
}

// Parameters returns the stored parameter slots in registration order.
func (m *Module) Parameters() []*NamedParameter {
	return m.params
}

// RegisterModule stores a named submodule.
func (m *Module) RegisterModule(name string, sub *Module) {
	m.modules.Store(name, sub)
}

// Modules returns an iterator over the submodules in registration order.
func (m *Module) Modules() iter.Seq2[string, *Module] {
	return m.modules.Iter()
}

// RegisterMethod stores a method on the module.
func (m *Module) RegisterMethod(meth *Method) {
	m.methods.Store(meth.Name(), meth)
}

// Method returns a method given its name.
func (m *Module) Method(name string) (*Method, bool) {
	return m.methods.Load(name)
}

// Methods returns an iterator over the methods in registration order.
func (m *Module) Methods() iter.Seq2[string, *Method] {
	return m.methods.Iter()
}
