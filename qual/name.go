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

package qual

import (
	"cmp"
	"go/token"
	"go/types"
	"iter"
	"slices"
	"strings"
	"unique"
)

// Symbol is the base of a qualified name: an identifier together with the
// object it denotes.
//
// Symbols compare by object when one is present, so two variables named x in
// different scopes are distinct symbols. Symbols created with [NewSymbol] have
// no object and compare by name only.
type Symbol struct {
	name string
	obj  types.Object
}

// NewSymbol creates a [Symbol] that is identified by its name alone.
func NewSymbol(name string) Symbol {
	return Symbol{name: name}
}

// SymbolOf creates the [Symbol] for a type checker object.
func SymbolOf(obj types.Object) Symbol {
	return Symbol{name: obj.Name(), obj: obj}
}

// Name returns the source name of the symbol.
func (s Symbol) Name() string { return s.name }

// Object returns the object denoted by the symbol, or nil.
func (s Symbol) Object() types.Object { return s.obj }

// Pos returns the declaring position of the symbol, if known.
func (s Symbol) Pos() token.Pos {
	if s.obj == nil {
		return token.NoPos
	}

	return s.obj.Pos()
}

func (s Symbol) String() string { return s.name }

// Name is a canonical qualified name of a simple identifier or a compound
// access path like a.b, a[i] or a[0].
//
// Names are comparable and can be used as map keys. Two names are equal iff
// their base symbols are equal and their chains of attribute and subscript
// components are equal. Symbolic subscript indices are names themselves and
// compare by their symbols, so a[i] differs for a shadowed i.
type Name struct {
	base Symbol
	path unique.Handle[component] // zero for simple names
}

// component is one attribute or subscript step of a compound name. Components
// are interned, equal chains share a handle.
type component struct {
	parent unique.Handle[component]
	step   string // ".field", "[lit]", or "[]" for a symbolic index
	index  Name   // symbolic index, zero otherwise
	text   string // rendered path including all parents
}

// Simple returns the simple name for a symbol.
func Simple(sym Symbol) Name {
	return Name{base: sym}
}

// New returns the simple name for an identifier without an object.
func New(name string) Name {
	return Simple(NewSymbol(name))
}

// Attr returns the compound name n.field.
func (n Name) Attr(field string) Name {
	return n.extend("."+field, Name{}, "."+field)
}

// Index returns the compound name n[idx] with a symbolic index.
func (n Name) Index(idx Name) Name {
	return n.extend("[]", idx, "["+idx.String()+"]")
}

// IndexLiteral returns the compound name n[lit] with a literal index.
// lit is the literal as written in source, e.g. 0 or "key".
func (n Name) IndexLiteral(lit string) Name {
	return n.extend("["+lit+"]", Name{}, "["+lit+"]")
}

func (n Name) extend(step string, index Name, text string) Name {
	c := component{parent: n.path, step: step, index: index, text: n.pathText() + text}

	return Name{base: n.base, path: unique.Make(c)}
}

func (n Name) pathText() string {
	if n.IsSimple() {
		return ""
	}

	return n.path.Value().text
}

// Base returns the base symbol of the name.
func (n Name) Base() Symbol { return n.base }

// BaseName returns the simple name of the base symbol.
func (n Name) BaseName() Name { return Simple(n.base) }

// Symbols yields the base symbol of the name, followed by the symbols of its
// symbolic subscript indices, innermost component first.
func (n Name) Symbols() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		n.symbols(yield)
	}
}

func (n Name) symbols(yield func(Symbol) bool) bool {
	if !yield(n.base) {
		return false
	}

	for p := n.path; p != (unique.Handle[component]{}); {
		c := p.Value()
		if !c.index.IsZero() && !c.index.symbols(yield) {
			return false
		}

		p = c.parent
	}

	return true
}

// IsSimple reports whether the name has no attribute or subscript components.
func (n Name) IsSimple() bool { return n.path == unique.Handle[component]{} }

// IsComposite reports whether the name has attribute or subscript components.
func (n Name) IsComposite() bool { return !n.IsSimple() }

// HasSubscript reports whether any component of the name is a subscript.
func (n Name) HasSubscript() bool { return strings.Contains(n.pathText(), "[") }

// IsZero reports whether n is the zero Name.
func (n Name) IsZero() bool { return n == Name{} }

func (n Name) String() string { return n.base.name + n.pathText() }

// Compare orders names by their textual form, breaking ties by the
// declaring positions of their symbols.
func Compare(a, b Name) int {
	if c := cmp.Compare(a.String(), b.String()); c != 0 {
		return c
	}

	return slices.CompareFunc(slices.Collect(a.Symbols()), slices.Collect(b.Symbols()), func(x, y Symbol) int {
		return cmp.Compare(x.Pos(), y.Pos())
	})
}
