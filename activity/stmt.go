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
	"go/token"

	"fillmore-labs.com/activity/anno"
)

// file schedules the module scope of a source file.
func (a *analyzer) file(f *ast.File) {
	body := &frame{node: f, key: anno.BodyScope, isolated: true}

	tasks := make([]task, 0, len(f.Decls)+2)
	tasks = append(tasks, openTask(body))

	for _, d := range f.Decls {
		tasks = append(tasks, task{kind: taskDecl, node: d})
	}

	tasks = append(tasks, closeTask(body))

	a.push(tasks...)
}

// decl handles top-level and local declarations.
func (a *analyzer) decl(d ast.Decl) error {
	switch d := d.(type) {
	case *ast.FuncDecl:
		a.push(a.funcDecl(d, d.Recv == nil)...)

	case *ast.GenDecl:
		switch d.Tok {
		case token.VAR, token.CONST:
			var tasks []task

			for _, spec := range d.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					return a.errorf(spec, ErrUnsupported, "%s spec %T", d.Tok, spec)
				}

				tasks = appendReads(tasks, vs.Values...)
				for _, name := range vs.Names {
					tasks = append(tasks, writeTask(name))
				}
			}

			a.push(tasks...)

		case token.IMPORT, token.TYPE:
			// No value references

		default:
			return a.errorf(d, ErrUnsupported, "declaration %s", d.Tok)
		}

	default:
		return a.errorf(d, ErrUnsupported, "declaration %T", d)
	}

	return nil
}

// funcDecl schedules a function or method declaration. named records the
// function name as modified in the enclosing scope.
func (a *analyzer) funcDecl(d *ast.FuncDecl, named bool) []task {
	params := &frame{node: d.Type, key: anno.Scope, isolated: true}
	body := &frame{node: d, key: anno.BodyScope, isolated: true}

	tasks := make([]task, 0, 8)

	if named {
		tasks = append(tasks, writeTask(d.Name))
	}

	tasks = append(tasks,
		openTask(params),
		bindTask(d.Recv, ParamReceiver, d),
		bindTask(d.Type.Params, ParamArgument, d),
		bindTask(d.Type.Results, ParamResult, d),
		openTask(body),
	)

	if d.Body != nil {
		tasks = append(tasks, stmtTask(d.Body))
	}

	return append(tasks, closeTask(body), closeTask(params))
}

// stmt handles a single statement in the current scope.
func (a *analyzer) stmt(s ast.Stmt) error {
	switch s := s.(type) {
	// keep-sorted start newline_separated=yes
	case *ast.AssignStmt:
		return a.assign(s)

	case *ast.BlockStmt:
		a.push(appendStmts(nil, s.List...)...)

	case *ast.BranchStmt, *ast.EmptyStmt:
		// Nothing to record

	case *ast.DeclStmt:
		return a.decl(s.Decl)

	case *ast.DeferStmt:
		a.push(readTask(s.Call))

	case *ast.ExprStmt:
		a.push(readTask(s.X))

	case *ast.ForStmt:
		a.forStmt(s)

	case *ast.GoStmt:
		a.push(readTask(s.Call))

	case *ast.IfStmt:
		a.ifStmt(s)

	case *ast.IncDecStmt:
		a.push(updateTask(s.X))

	case *ast.LabeledStmt:
		a.push(stmtTask(s.Stmt))

	case *ast.RangeStmt:
		a.rangeStmt(s)

	case *ast.ReturnStmt:
		a.push(appendReads(nil, s.Results...)...)

	case *ast.SelectStmt:
		return a.selectStmt(s)

	case *ast.SendStmt:
		a.push(readTask(s.Chan), readTask(s.Value))

	case *ast.SwitchStmt:
		return a.switchStmt(s)

	case *ast.TypeSwitchStmt:
		return a.typeSwitchStmt(s)

	default:
		return a.errorf(s, ErrUnsupported, "statement %T", s)
		// keep-sorted end
	}

	return nil
}

func (a *analyzer) assign(s *ast.AssignStmt) error {
	tasks := appendReads(nil, s.Rhs...)

	switch s.Tok {
	case token.ASSIGN, token.DEFINE:
		for _, lhs := range s.Lhs {
			tasks = append(tasks, writeTask(lhs))
		}

	default: // op=
		if len(s.Lhs) != 1 {
			return a.errorf(s, ErrUnsupported, "%s with %d targets", s.Tok, len(s.Lhs))
		}

		tasks = append(tasks, updateTask(s.Lhs[0]))
	}

	a.push(tasks...)

	return nil
}

// ifStmt schedules the condition, then and else scopes. The else scope is
// attached even when there is no else branch.
func (a *analyzer) ifStmt(s *ast.IfStmt) {
	cond := &frame{node: s, key: anno.CondScope, pure: true}
	body := &frame{node: s, key: anno.BodyScope}
	orElse := &frame{node: s, key: anno.OrElseScope}

	tasks := appendStmts(nil, s.Init)
	tasks = append(tasks, openTask(cond), readTask(s.Cond), closeTask(cond))
	tasks = append(tasks, openTask(body), stmtTask(s.Body), closeTask(body))
	tasks = append(tasks, openTask(orElse))
	tasks = appendStmts(tasks, s.Else)
	tasks = append(tasks, closeTask(orElse))

	a.push(tasks...)
}

// forStmt schedules a three-clause loop. Post runs as part of every iteration.
func (a *analyzer) forStmt(s *ast.ForStmt) {
	cond := &frame{node: s, key: anno.CondScope, pure: true}
	body := &frame{node: s, key: anno.BodyScope}

	tasks := appendStmts(nil, s.Init)
	tasks = append(tasks, openTask(cond))
	tasks = appendReads(tasks, s.Cond)
	tasks = append(tasks, closeTask(cond), openTask(body), stmtTask(s.Body))
	tasks = appendStmts(tasks, s.Post)
	tasks = append(tasks, closeTask(body))

	a.push(tasks...)
}

// rangeStmt reads the ranged expression in the enclosing scope and assigns
// the iteration variables inside the body scope.
func (a *analyzer) rangeStmt(s *ast.RangeStmt) {
	body := &frame{node: s, key: anno.BodyScope}

	tasks := []task{readTask(s.X), openTask(body)}

	if s.Tok != token.ILLEGAL {
		for _, target := range [...]ast.Expr{s.Key, s.Value} {
			if target != nil {
				tasks = append(tasks, writeTask(target))
			}
		}
	}

	tasks = append(tasks, stmtTask(s.Body), closeTask(body))

	a.push(tasks...)
}

func (a *analyzer) switchStmt(s *ast.SwitchStmt) error {
	cond := &frame{node: s, key: anno.CondScope, pure: true}

	tasks := appendStmts(nil, s.Init)
	tasks = append(tasks, openTask(cond))
	tasks = appendReads(tasks, s.Tag)
	tasks = append(tasks, closeTask(cond))

	tasks, err := a.caseClauses(tasks, s.Body, nil)
	if err != nil {
		return err
	}

	a.push(tasks...)

	return nil
}

func (a *analyzer) typeSwitchStmt(s *ast.TypeSwitchStmt) error {
	var x ast.Expr

	switch assign := s.Assign.(type) {
	case *ast.ExprStmt: // switch x.(type)
		x = assign.X

	case *ast.AssignStmt: // switch y := x.(type)
		if len(assign.Rhs) != 1 {
			return a.errorf(assign, ErrUnsupported, "type switch guard with %d values", len(assign.Rhs))
		}

		x = assign.Rhs[0]

	default:
		return a.errorf(s.Assign, ErrUnsupported, "type switch guard %T", s.Assign)
	}

	ta, ok := ast.Unparen(x).(*ast.TypeAssertExpr)
	if !ok {
		return a.errorf(x, ErrUnsupported, "type switch guard %T", x)
	}

	cond := &frame{node: s, key: anno.CondScope, pure: true}

	tasks := appendStmts(nil, s.Init)
	tasks = append(tasks, openTask(cond), readTask(ta.X), closeTask(cond))

	tasks, err := a.caseClauses(tasks, s.Body, func(c *ast.CaseClause) task {
		return task{kind: taskImplicit, node: c}
	})
	if err != nil {
		return err
	}

	a.push(tasks...)

	return nil
}

// caseClauses appends a condition and a body scope for every clause. When
// implicit is non-nil, its task runs first in each body scope.
func (a *analyzer) caseClauses(tasks []task, block *ast.BlockStmt, implicit func(*ast.CaseClause) task) ([]task, error) {
	for _, s := range block.List {
		c, ok := s.(*ast.CaseClause)
		if !ok {
			return nil, a.errorf(s, ErrUnsupported, "switch clause %T", s)
		}

		cond := &frame{node: c, key: anno.CondScope, pure: true}
		body := &frame{node: c, key: anno.BodyScope}

		tasks = append(tasks, openTask(cond))
		tasks = appendReads(tasks, c.List...)
		tasks = append(tasks, closeTask(cond), openTask(body))

		if implicit != nil {
			tasks = append(tasks, implicit(c))
		}

		tasks = appendStmts(tasks, c.Body...)
		tasks = append(tasks, closeTask(body))
	}

	return tasks, nil
}

func (a *analyzer) selectStmt(s *ast.SelectStmt) error {
	var tasks []task

	for _, clause := range s.Body.List {
		c, ok := clause.(*ast.CommClause)
		if !ok {
			return a.errorf(clause, ErrUnsupported, "select clause %T", clause)
		}

		body := &frame{node: c, key: anno.BodyScope}

		tasks = append(tasks, openTask(body))
		tasks = appendStmts(tasks, c.Comm)
		tasks = appendStmts(tasks, c.Body...)
		tasks = append(tasks, closeTask(body))
	}

	a.push(tasks...)

	return nil
}
