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

package fmterr_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/tapir-org/tapir/build/fmterr"
)

type at fmterr.Location

func (a at) Loc() fmterr.Location { return fmterr.Location(a) }

func TestErrorf(t *testing.T) {
	tests := []struct {
		src  fmterr.Locator
		want string
	}{
		{
			src:  at{File: "model.py", Line: 12, Col: 3},
			want: "model.py:12:3: cannot export",
		},
		{
			src:  at{File: "model.py", Line: 12},
			want: "model.py:12: cannot export",
		},
		{
			src:  at{},
			want: "<unknown>: cannot export",
		},
		{
			src:  nil,
			want: "<unknown>: cannot export",
		},
	}
	for i, test := range tests {
		err := fmterr.Errorf(test.src, "cannot %s", "export")
		if got := err.Error(); got != test.want {
			t.Errorf("test %d: got %q but want %q", i, got, test.want)
		}
	}
}

func TestUnwrapAndLoc(t *testing.T) {
	cause := errors.New("boom")
	err := fmterr.At(fmterr.Location{File: "f.py", Line: 1}, cause)
	if errors.Unwrap(err) != cause {
		t.Errorf("unwrapped error is not the cause")
	}
	if got := err.Loc().File; got != "f.py" {
		t.Errorf("got file %q but want f.py", got)
	}
}

func TestInternal(t *testing.T) {
	err := fmterr.Internalf(nil, "inline invariant broken")
	if !strings.Contains(err.Error(), "bug in tapir") {
		t.Errorf("internal error %q does not mention being a bug", err.Error())
	}
	if !strings.Contains(err.Error(), "inline invariant broken") {
		t.Errorf("internal error %q drops the cause", err.Error())
	}
}
