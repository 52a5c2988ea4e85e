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
	"go/ast"
	"go/types"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/activity/anno"
)

// ErrUnresolved is returned when an identifier cannot be resolved to an object.
var ErrUnresolved = errors.New("unresolved identifier")

// UnresolvedError reports an identifier without type information.
type UnresolvedError struct {
	Ident *ast.Ident
}

func (e *UnresolvedError) Error() string {
	return "unresolved identifier " + e.Ident.Name
}

// Unwrap returns [ErrUnresolved].
func (e *UnresolvedError) Unwrap() error { return ErrUnresolved }

// Node returns the offending identifier.
func (e *UnresolvedError) Node() ast.Node { return e.Ident }

// Resolve annotates every identifier below root with either its canonical
// [Name] ([anno.QN]) or [anno.Opaque], and every selector and index
// expression that denotes a compound access path with its [Name].
//
// Clauses of a type switch with a symbolic variable are annotated with the
// name of the clause's implicit variable.
func Resolve(info *types.Info, root inspector.Cursor, table *anno.Table) error {
	r := resolver{info: info, table: table, names: make(map[ast.Expr]result)}

	for c := range root.Preorder((*ast.Ident)(nil)) {
		if err := r.ident(c); err != nil {
			return err
		}
	}

	types := []ast.Node{
		// keep-sorted start
		(*ast.IndexExpr)(nil),
		(*ast.SelectorExpr)(nil),
		(*ast.TypeSwitchStmt)(nil),
		// keep-sorted end
	}

	for c := range root.Preorder(types...) {
		var err error

		switch n := c.Node().(type) {
		case *ast.TypeSwitchStmt:
			err = r.typeSwitch(n)

		case ast.Expr:
			_, _, err = r.expr(n)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

type resolver struct {
	info  *types.Info
	table *anno.Table
	names map[ast.Expr]result
}

type result struct {
	name Name
	ok   bool
}

// ident classifies a single identifier.
func (r *resolver) ident(c inspector.Cursor) error {
	id := c.Node().(*ast.Ident)

	if id.Name == "_" {
		return r.table.Set(id, anno.Opaque, true)
	}

	obj := r.info.ObjectOf(id)
	if obj == nil {
		if nonObject(c) {
			return r.table.Set(id, anno.Opaque, true)
		}

		return &UnresolvedError{Ident: id}
	}

	if !isValue(obj) {
		return r.table.Set(id, anno.Opaque, true)
	}

	n := Simple(SymbolOf(obj))
	r.names[id] = result{name: n, ok: true}

	return r.table.Set(id, anno.QN, n)
}

// nonObject reports whether an identifier legitimately has no object.
func nonObject(c inspector.Cursor) bool {
	switch kind, _ := c.ParentEdge(); kind {
	case edge.File_Name, // package clause
		edge.ImportSpec_Name: // dot import
		return true

	case edge.AssignStmt_Lhs:
		// The symbolic variable of a type switch: switch x := y.(type)
		kind, _ := c.Parent().ParentEdge()

		return kind == edge.TypeSwitchStmt_Assign

	default:
		return false
	}
}

// isValue reports whether an object is a value symbol that can be read or written.
func isValue(obj types.Object) bool {
	switch obj := obj.(type) {
	case *types.Var:
		return !obj.IsField()

	case *types.Const:
		return obj.Parent() != types.Universe // true, false, iota

	case *types.Func,
		*types.PkgName:
		return true

	// case *types.TypeName, *types.Label, *types.Builtin, *types.Nil:
	default:
		return false
	}
}

// expr returns the qualified name of an expression, annotating selectors and
// index expressions on the way.
func (r *resolver) expr(e ast.Expr) (Name, bool, error) {
	if res, ok := r.names[e]; ok {
		return res.name, res.ok, nil
	}

	var (
		n   Name
		ok  bool
		err error
	)

	switch e := e.(type) {
	case *ast.Ident:
		return Name{}, false, nil // Already classified

	case *ast.ParenExpr:
		return r.expr(e.X)

	case *ast.SelectorExpr:
		n, ok, err = r.selector(e)

	case *ast.IndexExpr:
		n, ok, err = r.index(e)

	default:
		return Name{}, false, nil
	}

	if err != nil {
		return Name{}, false, err
	}

	r.names[e] = result{name: n, ok: ok}

	if ok {
		err = r.table.Set(e, anno.QN, n)
	}

	return n, ok, err
}

func (r *resolver) selector(e *ast.SelectorExpr) (Name, bool, error) {
	if pkg, ok := e.X.(*ast.Ident); ok {
		if _, ok := r.info.ObjectOf(pkg).(*types.PkgName); ok {
			// Qualified identifier: pkg.Type is not a value
			if obj := r.info.ObjectOf(e.Sel); obj != nil && !isValue(obj) {
				return Name{}, false, r.table.Set(e, anno.Opaque, true)
			}
		}
	}

	x, ok, err := r.expr(e.X)
	if !ok || err != nil {
		return Name{}, false, err
	}

	return x.Attr(e.Sel.Name), true, nil
}

func (r *resolver) index(e *ast.IndexExpr) (Name, bool, error) {
	if tv, ok := r.info.Types[e.Index]; ok && tv.IsType() {
		return Name{}, false, nil // Generic instantiation
	}

	x, ok, err := r.expr(e.X)
	if !ok || err != nil {
		return Name{}, false, err
	}

	switch idx := ast.Unparen(e.Index).(type) {
	case *ast.BasicLit:
		return x.IndexLiteral(idx.Value), true, nil

	default:
		i, ok, err := r.expr(idx)
		if !ok || err != nil {
			return Name{}, false, err
		}

		return x.Index(i), true, nil
	}
}

// typeSwitch annotates each clause with its implicitly declared variable.
func (r *resolver) typeSwitch(n *ast.TypeSwitchStmt) error {
	if _, ok := n.Assign.(*ast.AssignStmt); !ok {
		return nil // No symbolic variable
	}

	for _, stmt := range n.Body.List {
		clause, ok := stmt.(*ast.CaseClause)
		if !ok {
			continue
		}

		obj := r.info.Implicits[clause]
		if obj == nil {
			continue
		}

		if err := r.table.Set(clause, anno.QN, Simple(SymbolOf(obj))); err != nil {
			return err
		}
	}

	return nil
}
