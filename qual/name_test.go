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
	"go/token"
	"go/types"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/activity/qual"
)

func TestName(t *testing.T) {
	t.Parallel()

	a, i := New("a"), New("i")

	tests := [...]struct {
		name      string
		qn        Name
		want      string
		simple    bool
		subscript bool
	}{
		{"simple", a, "a", true, false},
		{"attribute", a.Attr("b"), "a.b", false, false},
		{"nested_attribute", a.Attr("b").Attr("c"), "a.b.c", false, false},
		{"symbolic_index", a.Index(i), "a[i]", false, true},
		{"literal_index", a.IndexLiteral("0"), "a[0]", false, true},
		{"string_index", a.IndexLiteral(`"k"`), `a["k"]`, false, true},
		{"compound_index", a.Index(i.Attr("x")), "a[i.x]", false, true},
		{"attribute_of_index", a.IndexLiteral("0").Attr("b"), "a[0].b", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.qn.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}

			if got := tt.qn.IsSimple(); got != tt.simple {
				t.Errorf("IsSimple() = %t, want %t", got, tt.simple)
			}

			if got := tt.qn.IsComposite(); got == tt.simple {
				t.Errorf("IsComposite() = %t, want %t", got, !tt.simple)
			}

			if got := tt.qn.HasSubscript(); got != tt.subscript {
				t.Errorf("HasSubscript() = %t, want %t", got, tt.subscript)
			}

			if got := tt.qn.BaseName(); got != a {
				t.Errorf("BaseName() = %s, want %s", got, a)
			}
		})
	}
}

func TestNameEquality(t *testing.T) {
	t.Parallel()

	a := New("a")

	if a.Attr("b") != New("a").Attr("b") {
		t.Error("Expected structurally equal names to be equal")
	}

	if a.Attr("b") == New("b").Attr("b") {
		t.Error("Expected names with different bases to differ")
	}

	if a.IndexLiteral("0") == a.Attr("0") {
		t.Error("Expected subscript and attribute to differ")
	}

	if !(Name{}).IsZero() || a.IsZero() {
		t.Error("Unexpected IsZero result")
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	a, b := New("a"), New("b")

	names := []Name{b, a.Attr("y"), a.IndexLiteral("0"), a, a.Attr("x")}
	slices.SortFunc(names, Compare)

	got := make([]string, len(names))
	for i, n := range names {
		got[i] = n.String()
	}

	want := []string{"a", "a.x", "a.y", "a[0]", "b"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compare order mismatch (-want +got):\n%s", diff)
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	a, b := New("a"), New("b")

	s := NewSet(b, a, b)

	if s.Len() != 2 || !s.Has(a) || !s.Has(b) {
		t.Errorf("Unexpected set %s", s)
	}

	c := s.Clone()
	c.Add(a.Attr("x"))

	if s.Has(a.Attr("x")) {
		t.Error("Expected Clone to be independent")
	}

	s.Union(NewSet(New("c")))

	if got, want := s.String(), "[a b c]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got, want := NewSet().String(), "[]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	var n int
	for range s.All() {
		n++
	}

	if n != 3 {
		t.Errorf("All() yielded %d names, want 3", n)
	}
}

func TestNameShadowedIndex(t *testing.T) {
	t.Parallel()

	a := New("a")
	outer := Simple(SymbolOf(types.NewVar(token.Pos(10), nil, "i", types.Typ[types.Int])))
	inner := Simple(SymbolOf(types.NewVar(token.Pos(20), nil, "i", types.Typ[types.Int])))

	ao, ai := a.Index(outer), a.Index(inner)

	if ao == ai {
		t.Error("Expected subscripts with distinct index symbols to differ")
	}

	if ao != a.Index(outer) {
		t.Error("Expected subscripts with the same index symbol to be equal")
	}

	if got, want := ai.String(), ao.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if c := Compare(ao, ai); c >= 0 {
		t.Errorf("Compare(outer, inner) = %d, want < 0", c)
	}

	if got := NewSet(ao, ai, a.Index(inner)).Len(); got != 2 {
		t.Errorf("Set length = %d, want 2", got)
	}
}

func TestNameSymbols(t *testing.T) {
	t.Parallel()

	a, i, j := New("a"), New("i"), New("j")

	var got []string
	for sym := range a.Index(i).Attr("x").Index(j.IndexLiteral("0")).Symbols() {
		got = append(got, sym.Name())
	}

	want := []string{"a", "j", "i"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Symbols() mismatch (-want +got):\n%s", diff)
	}
}
