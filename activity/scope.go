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

package activity

import (
	"go/ast"
	"slices"

	"github.com/cockroachdb/errors"

	"fillmore-labs.com/activity/qual"
)

// Scope records the names read, modified and bound within one lexical span.
//
// A Scope is mutable only while the analyzer visits the span it belongs to.
// It is frozen before being attached to the annotation table; mutating a
// frozen Scope panics.
type Scope struct {
	parent   *Scope
	isolated bool
	frozen   bool

	read     qual.Set
	modified qual.Set
	params   []Param
}

// Param describes a name bound by a function signature.
type Param struct {
	Name  qual.Name
	Ident *ast.Ident
	Kind  ParamKind
	Owner ast.Node // *ast.FuncDecl or *ast.FuncLit
}

// ParamKind distinguishes receivers, parameters and named results.
type ParamKind uint8

//go:generate go tool stringer -type ParamKind -linecomment
const (
	// ParamReceiver is a method receiver.
	ParamReceiver ParamKind = iota // receiver

	// ParamArgument is a regular function parameter.
	ParamArgument // param

	// ParamResult is a named result parameter.
	ParamResult // result
)

// NewScope creates an empty isolated [Scope], as used for function bodies.
func NewScope(parent *Scope) *Scope {
	return newScope(parent, true)
}

// NewBlockScope creates an empty non-isolated [Scope], as used for
// control flow bodies, conditions and argument lists.
func NewBlockScope(parent *Scope) *Scope {
	return newScope(parent, false)
}

func newScope(parent *Scope, isolated bool) *Scope {
	return &Scope{
		parent:   parent,
		isolated: isolated,
		read:     make(qual.Set),
		modified: make(qual.Set),
	}
}

// CopyOf returns a standalone, mutable copy of s without a parent.
func CopyOf(s *Scope) *Scope {
	c := newScope(nil, s.isolated)
	c.CopyFrom(s)
	c.params = slices.Clone(s.params)

	return c
}

// Parent returns the lexically enclosing scope, or nil for the root.
func (s *Scope) Parent() *Scope { return s.parent }

// Isolated reports whether bindings in this scope are hidden from the parent.
func (s *Scope) Isolated() bool { return s.isolated }

// Frozen reports whether the scope has been finalized.
func (s *Scope) Frozen() bool { return s.frozen }

// Read returns a copy of the names read directly within the scope.
func (s *Scope) Read() qual.Set { return s.read.Clone() }

// Modified returns a copy of the names modified directly within the scope.
func (s *Scope) Modified() qual.Set { return s.modified.Clone() }

// Reads reports whether n is read within the scope.
func (s *Scope) Reads(n qual.Name) bool { return s.read.Has(n) }

// Modifies reports whether n is modified within the scope.
func (s *Scope) Modifies(n qual.Name) bool { return s.modified.Has(n) }

// Params returns the bound parameters in declaration order.
func (s *Scope) Params() []Param { return slices.Clone(s.params) }

// Param returns the bound parameter with the given name.
func (s *Scope) Param(n qual.Name) (Param, bool) {
	i := slices.IndexFunc(s.params, func(p Param) bool { return p.Name == n })
	if i < 0 {
		return Param{}, false
	}

	return s.params[i], true
}

// Referenced returns the names read in this scope or any of its ancestors.
func (s *Scope) Referenced() qual.Set {
	ref := make(qual.Set)
	for c := s; c != nil; c = c.parent {
		ref.Union(c.read)
	}

	return ref
}

// MarkRead records a read of n. It is idempotent.
func (s *Scope) MarkRead(n qual.Name) {
	s.mustBeMutable()
	s.read.Add(n)
}

// MarkModified records a modification of n. It is idempotent.
func (s *Scope) MarkModified(n qual.Name) {
	s.mustBeMutable()
	s.modified.Add(n)
}

// MarkParam binds a parameter. Binding the same name twice is a no-op.
func (s *Scope) MarkParam(p Param) {
	s.mustBeMutable()

	if _, ok := s.Param(p.Name); ok {
		return
	}

	s.params = append(s.params, p)
}

// CopyFrom replaces the read and modified names of s with copies of other's.
func (s *Scope) CopyFrom(other *Scope) {
	s.mustBeMutable()
	s.read = other.read.Clone()
	s.modified = other.modified.Clone()
}

// MergeFrom adds the read and modified names of other to s. other is not modified.
func (s *Scope) MergeFrom(other *Scope) {
	s.mustBeMutable()
	s.read.Union(other.read)
	s.modified.Union(other.modified)
}

func (s *Scope) String() string {
	return "read=" + s.read.String() + " modified=" + s.modified.String()
}

func (s *Scope) freeze() { s.frozen = true }

func (s *Scope) mustBeMutable() {
	if s.frozen {
		panic(errors.AssertionFailedf("mutation of frozen scope %s", s))
	}
}
