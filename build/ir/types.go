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
	"slices"
	"strings"

	"github.com/tapir-org/tapir/base/stringseq"
)

type (
	// Type is the static type of a Value.
	Type interface {
		// PyString returns the type spelled in the surface grammar.
		PyString() string
		// HasFreeVariables returns true if the type contains an
		// unresolved type variable. Such a type only ever appears in
		// operator schemas, never on a graph value.
		HasFreeVariables() bool
	}

	atomicType struct {
		py string
	}

	// OptionalType is a value of the element type or None.
	OptionalType struct {
		Elem Type
	}

	// ListType is a homogeneous list.
	ListType struct {
		Elem Type
	}

	// TupleType is a fixed-arity heterogeneous tuple.
	TupleType struct {
		Elems []Type
	}

	// TypeVar is a free type variable in an operator schema.
	TypeVar struct {
		Name string
	}
)

// Atomic types of the surface grammar.
var (
	TensorType = &atomicType{py: "Tensor"}
	IntType    = &atomicType{py: "int"}
	FloatType  = &atomicType{py: "float"}
	BoolType   = &atomicType{py: "bool"}
	StringType = &atomicType{py: "str"}
	NoneType   = &atomicType{py: "None"}
	DeviceType = &atomicType{py: "Device"}
)

func (t *atomicType) PyString() string       { return t.py }
func (t *atomicType) HasFreeVariables() bool { return false }

// Optional returns the optional type of elem.
func Optional(elem Type) *OptionalType {
	return &OptionalType{Elem: elem}
}

// PyString returns the type spelled in the surface grammar.
func (t *OptionalType) PyString() string {
	return "Optional[" + t.Elem.PyString() + "]"
}

// HasFreeVariables returns true if the element type has free variables.
func (t *OptionalType) HasFreeVariables() bool {
	return t.Elem.HasFreeVariables()
}

// List returns the list type with the given element type.
func List(elem Type) *ListType {
	return &ListType{Elem: elem}
}

// PyString returns the type spelled in the surface grammar.
func (t *ListType) PyString() string {
	return "List[" + t.Elem.PyString() + "]"
}

// HasFreeVariables returns true if the element type has free variables.
func (t *ListType) HasFreeVariables() bool {
	return t.Elem.HasFreeVariables()
}

// Tuple returns the tuple type with the given element types.
func Tuple(elems ...Type) *TupleType {
	return &TupleType{Elems: elems}
}

// PyString returns the type spelled in the surface grammar.
func (t *TupleType) PyString() string {
	var b strings.Builder
	b.WriteString("Tuple[")
	stringseq.AppendFunc(&b, slices.Values(t.Elems), ", ", Type.PyString)
	b.WriteString("]")
	return b.String()
}

// HasFreeVariables returns true if any element type has free variables.
func (t *TupleType) HasFreeVariables() bool {
	for _, el := range t.Elems {
		if el.HasFreeVariables() {
			return true
		}
	}
	return false
}

// PyString returns the type variable name.
func (t *TypeVar) PyString() string { return t.Name }

// HasFreeVariables returns true.
func (t *TypeVar) HasFreeVariables() bool { return true }

// IsTensorList returns true if typ is a list of tensors.
func IsTensorList(typ Type) bool {
	lst, ok := typ.(*ListType)
	return ok && lst.Elem == TensorType
}
