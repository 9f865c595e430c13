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

import "github.com/tapir-org/tapir/build/ir"

// internTensor returns the constant pool index of t, adding it to the pool
// on first sight. Interning the same tensor twice returns the same index.
//
// The pool does not hash tensor contents, so interning is quadratic in the
// number of distinct constants per session. Sessions carry few enough
// tensors that this has not mattered; revisit with content hashing if it
// does.
func (p *printer) internTensor(t *ir.Tensor) int {
	for i, pooled := range p.tensors {
		if t.Equal(pooled) {
			return i
		}
	}
	p.tensors = append(p.tensors, t)
	return len(p.tensors) - 1
}
