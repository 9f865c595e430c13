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

// BuiltinNamespace is the namespace of the built-in operator set.
// Operators in any other namespace are custom extensions.
const BuiltinNamespace = "aten"

// Symbol identifies an operator by namespace and name.
type Symbol struct {
	NS   string
	Name string
}

// Builtin returns the symbol of a built-in operator.
func Builtin(name string) Symbol {
	return Symbol{NS: BuiltinNamespace, Name: name}
}

// IsBuiltin returns true if the symbol belongs to the built-in operator set.
func (s Symbol) IsBuiltin() bool {
	return s.NS == BuiltinNamespace
}

// String returns the fully qualified operator name.
func (s Symbol) String() string {
	return s.NS + "::" + s.Name
}

// Arg is a declared operator argument.
type Arg struct {
	Name string
	Type Type
	// KwargOnly arguments must be spelled name=value at call sites.
	KwargOnly bool
}

// Schema is the declared signature of an operator.
type Schema struct {
	Sym  Symbol
	Args []Arg
	// Variadic schemas accept extra positional arguments beyond Args.
	Variadic bool
	Returns  []Type
}
