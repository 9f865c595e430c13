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

// Package uname provides unique, keyword-safe names.
package uname

import "strconv"

// Session allocates names for one export session. It owns the set of
// reserved words and a suffix counter shared by all of its namespaces,
// so a name rejected in one namespace never recycles a suffix already
// handed out in another.
type Session struct {
	reserved map[string]bool
	nextID   int
}

// NewSession returns a session rejecting the given reserved words.
func NewSession(reserved ...string) *Session {
	s := &Session{reserved: make(map[string]bool, len(reserved))}
	for _, word := range reserved {
		s.reserved[word] = true
	}
	return s
}

// Reserved returns true if the word can never be allocated.
func (s *Session) Reserved(word string) bool {
	return s.reserved[word]
}

// Namespace returns a fresh namespace drawing suffixes from the session
// counter. Names are unique within a namespace but two namespaces of the
// same session may allocate the same name.
func (s *Session) Namespace() *Namespace {
	return &Namespace{session: s, used: make(map[string]bool)}
}

// Namespace is a set of allocated names.
type Namespace struct {
	session *Session
	used    map[string]bool
}

// Name returns a unique name given a desired candidate.
// If the candidate is available and not reserved, it is returned directly.
// Else, a numeric suffix is appended until the name is free.
func (n *Namespace) Name(candidate string) string {
	name := candidate
	for n.used[name] || n.session.reserved[name] {
		name = candidate + strconv.Itoa(n.session.nextID)
		n.session.nextID++
	}
	n.used[name] = true
	return name
}

func identChar(c byte, pos int) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return true
	case c >= '0' && c <= '9':
		return pos > 0
	}
	return false
}

// IsIdentifier returns true if s is a valid bare identifier.
func IsIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !identChar(s[i], i) {
			return false
		}
	}
	return true
}

// Identifier rewrites an arbitrary hint string into a valid identifier:
// every character outside [A-Za-z0-9_] becomes an underscore, and the
// result is prefixed with an underscore when empty or starting with a digit.
func Identifier(hint string) string {
	out := make([]byte, 0, len(hint)+1)
	if len(hint) == 0 || (hint[0] >= '0' && hint[0] <= '9') {
		out = append(out, '_')
	}
	for i := 0; i < len(hint); i++ {
		if identChar(hint[i], 1) {
			out = append(out, hint[i])
		} else {
			out = append(out, '_')
		}
	}
	return string(out)
}
