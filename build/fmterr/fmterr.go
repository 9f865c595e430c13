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

// Package fmterr formats errors attached to a location in the source
// the IR graph was built from.
package fmterr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Location is a position in the source a graph node originated from.
// The zero value means the location is unknown.
type Location struct {
	File string
	Line int
	Col  int
}

// Known returns true if the location carries position information.
func (l Location) Known() bool {
	return l.File != "" || l.Line > 0
}

// String returns the location as an error prefix.
func (l Location) String() string {
	if !l.Known() {
		return "<unknown>:"
	}
	if l.Col > 0 {
		return fmt.Sprintf("%s:%d:%d:", l.File, l.Line, l.Col)
	}
	return fmt.Sprintf("%s:%d:", l.File, l.Line)
}

// Locator is implemented by IR entities that carry a source location.
type Locator interface {
	Loc() Location
}

type (
	// ErrorWithLoc is an error attached to a source location.
	ErrorWithLoc interface {
		error
		Loc() Location
		Err() error
	}

	errorWithLoc struct {
		loc Location
		err error
	}
)

// At attaches a source location to an error.
func At(loc Location, err error) ErrorWithLoc {
	return errorWithLoc{loc: loc, err: err}
}

// Errorf returns a formatted error located at a graph entity.
func Errorf(src Locator, format string, a ...any) error {
	var loc Location
	if src != nil {
		loc = src.Loc()
	}
	return At(loc, errors.Errorf(format, a...))
}

// Internal marks an error as internal, potentially adding additional information.
func Internal(err error) error {
	return fmt.Errorf("internal error. This is a bug in tapir. Please report it. Error:\n%+v", err)
}

// Internalf returns a formatted internal error located at a graph entity.
func Internalf(src Locator, format string, a ...any) error {
	return Internal(Errorf(src, format, a...))
}

// Error returns a string description of the error.
func (err errorWithLoc) Error() string {
	return err.loc.String() + " " + err.err.Error()
}

// Unwrap the error.
func (err errorWithLoc) Unwrap() error {
	return err.err
}

// Format writes the error into the state of the formatter.
func (err errorWithLoc) Format(s fmt.State, verb rune) {
	flag := ""
	if s.Flag('+') {
		flag = "+"
	}
	format := fmt.Sprintf("%%s %%%s%s", flag, string(verb))
	fmt.Fprintf(s, format, err.loc.String(), err.err)
}

// Loc returns the source location of the error.
func (err errorWithLoc) Loc() Location {
	return err.loc
}

// Err returns the underlying error.
func (err errorWithLoc) Err() error {
	return err.err
}
