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

// reservedNames are valid identifiers that are off limits for local
// bindings: either keywords of the surface grammar or names the emitter
// itself uses as pseudo-namespaces.
var reservedNames = []string{
	// identifiers in the environment while parsing
	"aten",
	"ops",
	"CONSTANTS",
	"fork",
	"attribute",
	"getattr",
	"_", // avoid the confusing unnamed _
	"inf",
	"nan",
	// the surface grammar keywords
	"False",
	"None",
	"True",
	"and",
	"as",
	"assert",
	"break",
	"class",
	"continue",
	"def",
	"del",
	"elif",
	"else",
	"except",
	"finally",
	"for",
	"from",
	"global",
	"if",
	"import",
	"in",
	"is",
	"lambda",
	"nonlocal",
	"not",
	"or",
	"pass",
	"raise",
	"return",
	"try",
	"while",
	"with",
	"yield",
}
