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

// Package irkind defines the node kinds of the tapir intermediate representation (IR).
package irkind

// Kind of a node.
type Kind uint

// Kinds of nodes supported by the IR.
const (
	Invalid Kind = iota

	// Constant holds an immutable literal value.
	Constant
	// None produces an absent optional value.
	None

	// Return terminates a block, listing the block outputs.
	Return
	// If selects between two child blocks.
	If
	// Loop is the uniform loop encoding: a trip count input, an initial
	// condition input, and one body block yielding the next condition
	// followed by the carried values.
	Loop

	TupleConstruct
	TupleIndex
	TupleSlice
	TupleUnpack
	ListConstruct
	ListUnpack

	// TensorToNum converts a scalar tensor to an int or a float.
	TensorToNum
	// ImplicitTensorToNum is a conversion inserted by the front end rather
	// than written by the user.
	ImplicitTensorToNum
	FloatToInt
	IntToFloat
	StringToFloat
	TensorToBool

	Print
	// Fork runs a deferred sub-graph as a parallel task.
	Fork
	// ForeignCall calls a function with no structured representation.
	ForeignCall
	// Call is a schema-carrying operator call.
	Call

	// Kinds below are only ever inserted by optimization passes or the
	// interpreter and never appear in a graph destined for export.
	FusionGroup
	ConstantChunk
	AutogradAdd
	AnyDefined
	BroadcastSizes
	ChunkSizes
	Load
	Store
	Drop

	// Max value for a Kind constant.
	Max
)

var kindNames = map[Kind]string{
	Invalid:             "invalid",
	Constant:            "Constant",
	None:                "None",
	Return:              "Return",
	If:                  "If",
	Loop:                "Loop",
	TupleConstruct:      "TupleConstruct",
	TupleIndex:          "TupleIndex",
	TupleSlice:          "TupleSlice",
	TupleUnpack:         "TupleUnpack",
	ListConstruct:       "ListConstruct",
	ListUnpack:          "ListUnpack",
	TensorToNum:         "TensorToNum",
	ImplicitTensorToNum: "ImplicitTensorToNum",
	FloatToInt:          "FloatToInt",
	IntToFloat:          "IntToFloat",
	StringToFloat:       "StringToFloat",
	TensorToBool:        "TensorToBool",
	Print:               "Print",
	Fork:                "Fork",
	ForeignCall:         "ForeignCall",
	Call:                "Call",
	FusionGroup:         "FusionGroup",
	ConstantChunk:       "ConstantChunk",
	AutogradAdd:         "AutogradAdd",
	AnyDefined:          "AnyDefined",
	BroadcastSizes:      "BroadcastSizes",
	ChunkSizes:          "ChunkSizes",
	Load:                "Load",
	Store:               "Store",
	Drop:                "Drop",
}

// String returns a string representation of a kind.
func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "undefined kind"
	}
	return name
}

// ConstantLike returns true if a node of that kind always produces the
// same literal value. Such nodes are lifted to the constant table when
// printed and never bound to a temporary.
func (k Kind) ConstantLike() bool {
	return k == Constant || k == None
}
