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

package qual_test

import (
	"go/ast"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/activity/anno"
	"fillmore-labs.com/activity/internal/testsource"
	. "fillmore-labs.com/activity/qual"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	const src = `import "strings"

type T struct{ x int }

func g[P any](v P) P { return v }

func f(a []int, i int, s T, m map[string]T) {
	_ = a[i]
	_ = a[0]
	_ = s.x
	_ = m["k"].x
	_ = len(a)
	_ = strings.ToUpper
	_ = strings.Builder{}
	_ = g[int]
	_ = f
	_ = nil
	_ = true
}`

	fset, f := testsource.ParseFile(t, src)
	_, info := testsource.Check(t, fset, f)

	table := anno.NewTable()
	if err := Resolve(info, testsource.Root(f), table); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	var compound, opaque []string

	ast.Inspect(f, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.SelectorExpr, *ast.IndexExpr:
			if qn, ok := anno.Value[Name](table, n, anno.QN); ok {
				compound = append(compound, qn.String())
			}

			if table.Has(n, anno.Opaque) {
				opaque = append(opaque, "selector")
			}

		case *ast.Ident:
			if table.Has(n, anno.Opaque) == table.Has(n, anno.QN) {
				t.Errorf("Identifier %s at %s must be either opaque or named", n.Name, fset.Position(n.Pos()))
			}

			if table.Has(n, anno.Opaque) {
				opaque = append(opaque, n.Name)
			}
		}

		return true
	})

	wantCompound := []string{"a[i]", "a[0]", "s.x", `m["k"].x`, `m["k"]`, "strings.ToUpper"}
	if diff := cmp.Diff(wantCompound, compound); diff != "" {
		t.Errorf("Compound names mismatch (-want +got):\n%s", diff)
	}

	for _, name := range []string{"test", "T", "P", "any", "len", "nil", "true", "int", "Builder", "selector"} {
		if !slices.Contains(opaque, name) {
			t.Errorf("Expected %s to be opaque", name)
		}
	}

	for _, name := range []string{"a", "i", "s", "m", "f", "strings", "v"} {
		if slices.Contains(opaque, name) {
			t.Errorf("Expected %s to be a value", name)
		}
	}
}

func TestResolveTypeSwitch(t *testing.T) {
	t.Parallel()

	fset, f := testsource.ParseFile(t, `func f(v any) {
	switch x := v.(type) {
	case int, string:
		_ = x
	case nil:
	}
}`)
	_, info := testsource.Check(t, fset, f)

	table := anno.NewTable()
	if err := Resolve(info, testsource.Root(f), table); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	var clauses []Name

	ast.Inspect(f, func(n ast.Node) bool {
		if c, ok := n.(*ast.CaseClause); ok {
			qn, ok := anno.Value[Name](table, c, anno.QN)
			if !ok {
				t.Errorf("Clause at %s has no implicit name", fset.Position(c.Pos()))
			}

			clauses = append(clauses, qn)
		}

		return true
	})

	if len(clauses) != 2 {
		t.Fatalf("Expected 2 clauses, got %d", len(clauses))
	}

	if clauses[0] == clauses[1] {
		t.Error("Expected distinct implicit objects per clause")
	}

	if clauses[0].String() != "x" || clauses[0].Base().Object() == nil {
		t.Errorf("Unexpected implicit name %s", clauses[0])
	}
}

func TestResolveUnresolved(t *testing.T) {
	t.Parallel()

	fset, f := testsource.ParseFile(t, `func f(a int) { _ = a }`)
	_, info := testsource.Check(t, fset, f)

	// Drop all type information for the parameter
	for id := range info.Defs {
		if id.Name == "a" {
			delete(info.Defs, id)
		}
	}

	err := Resolve(info, testsource.Root(f), anno.NewTable())
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("Expected %v, got %v", ErrUnresolved, err)
	}

	var uerr *UnresolvedError
	if !errors.As(err, &uerr) || uerr.Node().(*ast.Ident).Name != "a" {
		t.Errorf("Expected unresolved a, got %v", err)
	}
}
