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
	"bytes"
	"slices"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
)

// Tensor is a constant tensor value: an element type, axis lengths and
// the raw element data.
type Tensor struct {
	Shape shape.Shape
	Data  []byte
}

// NewTensor returns a tensor constant given its shape and raw element data.
func NewTensor(dt dtype.DataType, axes []int, data []byte) *Tensor {
	return &Tensor{
		Shape: shape.Shape{DType: dt, AxisLengths: axes},
		Data:  data,
	}
}

// Defined returns true if the tensor holds a value.
// Undefined tensors stand in for absent optional tensors.
func (t *Tensor) Defined() bool {
	return t != nil && t.Shape.DType != dtype.Invalid
}

// Equal returns true if both tensors have the same element type, the same
// axis lengths, and equal element data.
func (t *Tensor) Equal(o *Tensor) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Shape.DType == o.Shape.DType &&
		slices.Equal(t.Shape.AxisLengths, o.Shape.AxisLengths) &&
		bytes.Equal(t.Data, o.Data)
}

// LiteralKind is the runtime tag of a constant literal.
type LiteralKind uint

// Tags of constant literals.
const (
	NoneLiteral LiteralKind = iota
	BoolLiteral
	IntLiteral
	FloatLiteral
	StringLiteral
	DeviceLiteral
	TensorLiteral
	BoolListLiteral
	IntListLiteral
	FloatListLiteral
	TensorListLiteral
)

// Literal is an immutable tagged constant value attached to a constant node.
type Literal struct {
	kind    LiteralKind
	b       bool
	i       int64
	f       float64
	s       string
	tensor  *Tensor
	bools   []bool
	ints    []int64
	floats  []float64
	tensors []*Tensor
}

// NoneLit returns the None literal.
func NoneLit() *Literal { return &Literal{kind: NoneLiteral} }

// BoolLit returns a boolean literal.
func BoolLit(b bool) *Literal { return &Literal{kind: BoolLiteral, b: b} }

// IntLit returns an integer literal.
func IntLit(i int64) *Literal { return &Literal{kind: IntLiteral, i: i} }

// FloatLit returns a float literal.
func FloatLit(f float64) *Literal { return &Literal{kind: FloatLiteral, f: f} }

// StringLit returns a string literal.
func StringLit(s string) *Literal { return &Literal{kind: StringLiteral, s: s} }

// DeviceLit returns a device literal given the device specifier.
func DeviceLit(s string) *Literal { return &Literal{kind: DeviceLiteral, s: s} }

// TensorLit returns a tensor literal.
func TensorLit(t *Tensor) *Literal { return &Literal{kind: TensorLiteral, tensor: t} }

// BoolListLit returns a boolean list literal.
func BoolListLit(bs ...bool) *Literal { return &Literal{kind: BoolListLiteral, bools: bs} }

// IntListLit returns an integer list literal.
func IntListLit(is ...int64) *Literal { return &Literal{kind: IntListLiteral, ints: is} }

// FloatListLit returns a float list literal.
func FloatListLit(fs ...float64) *Literal { return &Literal{kind: FloatListLiteral, floats: fs} }

// TensorListLit returns a tensor list literal.
func TensorListLit(ts ...*Tensor) *Literal { return &Literal{kind: TensorListLiteral, tensors: ts} }

// Kind returns the runtime tag of the literal.
func (l *Literal) Kind() LiteralKind { return l.kind }

// Bool returns the boolean payload.
func (l *Literal) Bool() bool { return l.b }

// Int returns the integer payload.
func (l *Literal) Int() int64 { return l.i }

// Float returns the float payload.
func (l *Literal) Float() float64 { return l.f }

// Str returns the string or device payload.
func (l *Literal) Str() string { return l.s }

// Tensor returns the tensor payload.
func (l *Literal) Tensor() *Tensor { return l.tensor }

// Bools returns the boolean list payload.
func (l *Literal) Bools() []bool { return l.bools }

// Ints returns the integer list payload.
func (l *Literal) Ints() []int64 { return l.ints }

// Floats returns the float list payload.
func (l *Literal) Floats() []float64 { return l.floats }

// Tensors returns the tensor list payload.
func (l *Literal) Tensors() []*Tensor { return l.tensors }
