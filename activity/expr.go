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

	"fillmore-labs.com/activity/anno"
	"fillmore-labs.com/activity/qual"
)

// read records the value references of an expression.
func (a *analyzer) read(e ast.Expr) error {
	if a.table.Has(e, anno.Opaque) {
		return nil
	}

	switch e := e.(type) {
	// keep-sorted start newline_separated=yes
	case *ast.ArrayType, *ast.ChanType, *ast.Ellipsis, *ast.FuncType,
		*ast.InterfaceType, *ast.MapType, *ast.StructType:
		// Type position

	case *ast.BasicLit:
		// Literals are not symbols

	case *ast.BinaryExpr:
		a.push(readTask(e.X), readTask(e.Y))

	case *ast.CallExpr:
		a.call(e)

	case *ast.CompositeLit:
		a.push(appendReads(nil, e.Elts...)...)

	case *ast.FuncLit:
		a.push(a.funcLit(e)...)

	case *ast.Ident:
		n, ok := a.name(e)
		if !ok {
			return a.errorf(e, ErrUnresolved, "%s", e.Name)
		}

		return a.markRead(e, n)

	case *ast.IndexExpr:
		if n, ok := a.name(e); ok {
			if err := a.markRead(e, n); err != nil {
				return err
			}
		}

		a.push(readTask(e.X), readTask(e.Index))

	case *ast.IndexListExpr:
		a.push(readTask(e.X)) // Type arguments

	case *ast.KeyValueExpr:
		a.push(readTask(e.Key), readTask(e.Value))

	case *ast.ParenExpr:
		a.push(readTask(e.X))

	case *ast.SelectorExpr:
		if n, ok := a.name(e); ok {
			if err := a.markRead(e, n); err != nil {
				return err
			}
		}

		a.push(readTask(e.X))

	case *ast.SliceExpr:
		a.push(appendReads(nil, e.X, e.Low, e.High, e.Max)...)

	case *ast.StarExpr:
		a.push(readTask(e.X))

	case *ast.TypeAssertExpr:
		a.push(readTask(e.X))

	case *ast.UnaryExpr:
		a.push(readTask(e.X))

	default:
		return a.errorf(e, ErrUnsupported, "expression %T", e)
		// keep-sorted end
	}

	return nil
}

// write records an assignment target.
func (a *analyzer) write(e ast.Expr) error {
	return a.target(e, false)
}

// update records the target of an augmented assignment, which is both read
// and modified.
func (a *analyzer) update(e ast.Expr) error {
	return a.target(e, true)
}

func (a *analyzer) target(e ast.Expr, update bool) error {
	if a.table.Has(e, anno.Opaque) {
		return nil // _
	}

	switch e := e.(type) {
	case *ast.Ident:
		n, ok := a.name(e)
		if !ok {
			return a.errorf(e, ErrUnresolved, "%s", e.Name)
		}

		return a.mark(e, n, update)

	case *ast.ParenExpr:
		return a.target(e.X, update)

	case *ast.SelectorExpr:
		if n, ok := a.name(e); ok {
			if err := a.mark(e, n, update); err != nil {
				return err
			}
		}

		a.push(readTask(e.X))

	case *ast.IndexExpr:
		if n, ok := a.name(e); ok {
			if err := a.mark(e, n, update); err != nil {
				return err
			}
		}

		a.push(readTask(e.X), readTask(e.Index))

	case *ast.StarExpr:
		a.push(readTask(e.X)) // Pointer targets are not tracked

	default:
		return a.errorf(e, ErrUnsupported, "assignment to %T", e)
	}

	return nil
}

// mark records a write, and for augmented assignments, a read.
func (a *analyzer) mark(at ast.Node, n qual.Name, update bool) error {
	if update {
		if err := a.markRead(at, n); err != nil {
			return err
		}
	}

	return a.markModified(at, n)
}

// name returns the qualified name annotated on an expression.
func (a *analyzer) name(e ast.Expr) (qual.Name, bool) {
	return anno.Value[qual.Name](a.table, e, anno.QN)
}

// call reads the callee in the current scope and the arguments in a
// dedicated argument scope.
func (a *analyzer) call(e *ast.CallExpr) {
	args := &frame{node: e, key: anno.ArgsScope, pure: true}

	tasks := []task{readTask(e.Fun), openTask(args)}
	tasks = appendReads(tasks, e.Args...)
	tasks = append(tasks, closeTask(args))

	a.push(tasks...)
}

// funcLit schedules a function literal. Its free names are captured into the
// scope the literal is evaluated in once both of its scopes are closed.
func (a *analyzer) funcLit(lit *ast.FuncLit) []task {
	params := &frame{node: lit.Type, key: anno.Scope, isolated: true}
	body := &frame{node: lit, key: anno.BodyScope, isolated: true}

	return []task{
		openTask(params),
		bindTask(lit.Type.Params, ParamArgument, lit),
		bindTask(lit.Type.Results, ParamResult, lit),
		openTask(body),
		stmtTask(lit.Body),
		closeTask(body),
		closeTask(params),
		{kind: taskCapture, node: lit, frame: params, body: body},
	}
}

// capture marks the names a closed function literal uses from its
// environment as read in the current scope. Names built from a symbol local
// to the literal are not visible there.
func (a *analyzer) capture(lit *ast.FuncLit, params, body *frame) error {
	if a.top() == nil {
		return nil // Analysis root
	}

	used := body.scope.read.Clone()
	used.Union(body.scope.modified)

	local := func(sym qual.Symbol) bool {
		if _, ok := params.scope.Param(qual.Simple(sym)); ok {
			return true
		}

		pos := sym.Pos()

		return pos.IsValid() && lit.Pos() <= pos && pos < lit.End()
	}

	for _, n := range used.Sorted() {
		if slices.ContainsFunc(slices.Collect(n.Symbols()), local) {
			continue
		}

		if err := a.markRead(lit, n); err != nil {
			return err
		}
	}

	return nil
}

// bind records the names of a field list as parameters of the innermost scope.
func (a *analyzer) bind(fields *ast.FieldList, kind ParamKind, owner ast.Node) error {
	if fields == nil {
		return nil
	}

	s := a.top()
	if s == nil {
		return a.errorf(fields, ErrInvariant, "binding %s outside of a scope", kind)
	}

	for _, field := range fields.List {
		for _, id := range field.Names {
			if a.table.Has(id, anno.Opaque) {
				continue // _
			}

			n, ok := a.name(id)
			if !ok {
				return a.errorf(id, ErrUnresolved, "%s %s", kind, id.Name)
			}

			s.MarkParam(Param{Name: n, Ident: id, Kind: kind, Owner: owner})

			if err := a.markModified(id, n); err != nil {
				return err
			}
		}
	}

	return nil
}
