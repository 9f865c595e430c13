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

import (
	"strings"

	"github.com/tapir-org/tapir/base/ordered"
	"github.com/tapir-org/tapir/base/uname"
	"github.com/tapir-org/tapir/build/ir"
)

// qualifiedName renders dotted attribute paths such as self.a.b. Each chain
// step is shared by every path extending it; chains are built fresh for one
// print call and discarded with the session.
//
// A field that is not a valid identifier falls back to getattr syntax,
// e.g. getattr(self, "0").b.
type qualifiedName struct {
	prefix *qualifiedName
	name   string
}

func qualify(prefix *qualifiedName, name string) *qualifiedName {
	return &qualifiedName{prefix: prefix, name: name}
}

func (q *qualifiedName) emit(b *strings.Builder) {
	if uname.IsIdentifier(q.name) || q.prefix == nil {
		if q.prefix != nil {
			q.prefix.emit(b)
			b.WriteString(".")
		}
		b.WriteString(q.name)
		return
	}
	b.WriteString("getattr(")
	q.prefix.emit(b)
	b.WriteString(", ")
	printQuotedString(b, q.name)
	b.WriteString(")")
}

func (q *qualifiedName) String() string {
	var b strings.Builder
	q.emit(&b)
	return b.String()
}

// parameterNames maps every stored tensor slot of the module hierarchy to
// its qualified attribute path rooted at prefix.
func parameterNames(m *ir.Module, prefix *qualifiedName, result *ordered.Map[*ir.Tensor, *qualifiedName]) {
	for _, param := range m.Parameters() {
		result.Store(param.Slot, qualify(prefix, param.Name))
	}
	for name, sub := range m.Modules() {
		parameterNames(sub, qualify(prefix, name), result)
	}
}
