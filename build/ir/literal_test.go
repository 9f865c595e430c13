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

package ir_test

import (
	"testing"

	"github.com/gx-org/backend/dtype"
	"github.com/tapir-org/tapir/build/ir"
)

func TestTensorEqual(t *testing.T) {
	tests := []struct {
		a, b *ir.Tensor
		want bool
	}{
		{
			a:    ir.NewTensor(dtype.Float32, []int{2}, []byte{1, 2, 3, 4, 5, 6, 7, 8}),
			b:    ir.NewTensor(dtype.Float32, []int{2}, []byte{1, 2, 3, 4, 5, 6, 7, 8}),
			want: true,
		},
		{
			a:    ir.NewTensor(dtype.Float32, []int{2}, []byte{1, 2, 3, 4, 5, 6, 7, 8}),
			b:    ir.NewTensor(dtype.Float64, []int{2}, []byte{1, 2, 3, 4, 5, 6, 7, 8}),
			want: false,
		},
		{
			a:    ir.NewTensor(dtype.Int32, []int{2, 1}, []byte{1, 0, 0, 0, 2, 0, 0, 0}),
			b:    ir.NewTensor(dtype.Int32, []int{1, 2}, []byte{1, 0, 0, 0, 2, 0, 0, 0}),
			want: false,
		},
		{
			a:    ir.NewTensor(dtype.Int32, []int{1}, []byte{1, 0, 0, 0}),
			b:    ir.NewTensor(dtype.Int32, []int{1}, []byte{2, 0, 0, 0}),
			want: false,
		},
		{
			a:    nil,
			b:    ir.NewTensor(dtype.Int32, []int{1}, []byte{1, 0, 0, 0}),
			want: false,
		},
	}
	for i, test := range tests {
		if got := test.a.Equal(test.b); got != test.want {
			t.Errorf("test %d: Equal = %v but want %v", i, got, test.want)
		}
		if got := test.b.Equal(test.a); got != test.want {
			t.Errorf("test %d: Equal is not symmetric", i)
		}
	}
}

func TestTensorDefined(t *testing.T) {
	var undef *ir.Tensor
	if undef.Defined() {
		t.Errorf("nil tensor reports as defined")
	}
	if (&ir.Tensor{}).Defined() {
		t.Errorf("tensor with invalid dtype reports as defined")
	}
	if !ir.NewTensor(dtype.Bool, nil, []byte{1}).Defined() {
		t.Errorf("scalar bool tensor reports as undefined")
	}
}
