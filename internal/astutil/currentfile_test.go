// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package astutil_test

import (
	"go/ast"
	"testing"

	. "fillmore-labs.com/activity/internal/astutil"
	"fillmore-labs.com/activity/internal/testsource"
)

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name      string
		src       string
		generated bool
		nolint    bool
	}{
		{
			name: "plain",
			src:  "package test\n",
		},
		{
			name:      "generated",
			src:       "// Code generated by test. DO NOT EDIT.\n\npackage test\n",
			generated: true,
		},
		{
			name:   "nolint",
			src:    "//nolint:activity\npackage test\n",
			nolint: true,
		},
		{
			name:   "nolint_all",
			src:    "//nolint:errcheck,all\npackage test\n",
			nolint: true,
		},
		{
			name: "nolint_other",
			src:  "//nolint:errcheck\npackage test\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f := testsource.ParseFile(t, tt.src)

			cf := NewCurrentFile(fset, f)
			if !cf.Valid() {
				t.Fatal("Expected valid file")
			}

			if got := cf.Generated(); got != tt.generated {
				t.Errorf("Generated() = %t, want %t", got, tt.generated)
			}

			if got := cf.NoLint(); got != tt.nolint {
				t.Errorf("NoLint() = %t, want %t", got, tt.nolint)
			}

			if got := cf.Filename(); got != "test.go" {
				t.Errorf("Filename() = %q, want test.go", got)
			}
		})
	}
}

func TestNoLintComment(t *testing.T) {
	t.Parallel()

	fset, f := testsource.ParseFile(t, `func f() {} //nolint:activity

func g() {}
`)

	cf := NewCurrentFile(fset, f)

	for _, d := range f.Decls {
		decl := d.(*ast.FuncDecl)
		want := decl.Name.Name == "f"

		if got := cf.NoLintComment(decl.Pos()); got != want {
			t.Errorf("NoLintComment(%s) = %t, want %t", decl.Name.Name, got, want)
		}
	}

	if NewCurrentFile(fset, nil).Valid() {
		t.Error("Expected nil file to be invalid")
	}
}
