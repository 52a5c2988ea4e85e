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

	"github.com/cockroachdb/errors"

	"fillmore-labs.com/activity/anno"
	"fillmore-labs.com/activity/qual"
)

// Context supplies metadata about the analyzed source. It is only used to
// describe errors.
type Context struct {
	// Fset resolves node positions, may be nil.
	Fset *token.FileSet

	// Namespace is the import path of the analyzed package, may be empty.
	Namespace string
}

// Resolve computes the activity scopes of root and attaches them to table.
//
// Every identifier, selector and index expression below root must already be
// annotated by [qual.Resolve]. root is an *[ast.File], an *[ast.FuncDecl] or an
// *[ast.FuncLit].
//
// Analysis is all-or-nothing: the first unsupported construct, unresolved
// reference or invariant violation aborts it with an *[Error].
func Resolve(ctx Context, root ast.Node, table *anno.Table) error {
	a := analyzer{ctx: ctx, table: table}

	switch root := root.(type) {
	case *ast.File:
		a.file(root)

	case *ast.FuncDecl:
		a.push(a.funcDecl(root, false)...)

	case *ast.FuncLit:
		a.push(a.funcLit(root)...)

	default:
		return a.errorf(root, ErrUnsupported, "analysis root %T", root)
	}

	if err := a.run(); err != nil {
		return err
	}

	if len(a.stack) != 0 {
		return a.errorf(root, ErrInvariant, "%d scopes left open", len(a.stack))
	}

	return nil
}

// BodyScope returns the [anno.BodyScope] attached to a node.
func BodyScope(table *anno.Table, n ast.Node) (*Scope, bool) {
	return ScopeOf(table, n, anno.BodyScope)
}

// ScopeOf returns the scope attached to a node under the given key.
func ScopeOf(table *anno.Table, n ast.Node, key anno.Key) (*Scope, bool) {
	return anno.Value[*Scope](table, n, key)
}

// analyzer holds the state of a single analysis run.
type analyzer struct {
	ctx   Context
	table *anno.Table

	// work is the explicit work-list, executed last in, first out.
	work []task

	// stack holds the currently open scopes, innermost last.
	stack []*frame
}

// frameState tracks the lifecycle of a scope-introducing node.
type frameState uint8

const (
	notVisited frameState = iota
	scopeOpen
	scopeClosed
)

// frame is a scope attached to node under key once closed.
type frame struct {
	node     ast.Node
	key      anno.Key
	isolated bool
	pure     bool // no modifications allowed
	state    frameState
	scope    *Scope
}

type taskKind uint8

const (
	taskStmt taskKind = iota
	taskDecl
	taskRead
	taskWrite
	taskUpdate
	taskBind
	taskImplicit
	taskOpen
	taskClose
	taskCapture
)

// task is a unit of work.
type task struct {
	kind  taskKind
	node  ast.Node
	frame *frame

	// taskBind
	param ParamKind
	owner ast.Node

	// taskCapture
	body *frame
}

// run executes the work-list until it is empty.
func (a *analyzer) run() error {
	for len(a.work) > 0 {
		t := a.work[len(a.work)-1]
		a.work = a.work[:len(a.work)-1]

		if err := a.step(t); err != nil {
			return err
		}
	}

	return nil
}

func (a *analyzer) step(t task) error {
	switch t.kind {
	// keep-sorted start newline_separated=yes
	case taskBind:
		return a.bind(t.node.(*ast.FieldList), t.param, t.owner)

	case taskCapture:
		return a.capture(t.node.(*ast.FuncLit), t.frame, t.body)

	case taskClose:
		return a.close(t.frame)

	case taskDecl:
		return a.decl(t.node.(ast.Decl))

	case taskImplicit:
		if n, ok := anno.Value[qual.Name](a.table, t.node, anno.QN); ok {
			return a.markModified(t.node, n)
		}

		return nil

	case taskOpen:
		return a.open(t.frame)

	case taskRead:
		return a.read(t.node.(ast.Expr))

	case taskStmt:
		return a.stmt(t.node.(ast.Stmt))

	case taskUpdate:
		return a.update(t.node.(ast.Expr))

	case taskWrite:
		return a.write(t.node.(ast.Expr))

	default:
		return a.errorf(t.node, ErrInvariant, "unknown task %d", t.kind)
		// keep-sorted end
	}
}

// push schedules tasks so that they execute in the given order.
func (a *analyzer) push(tasks ...task) {
	for i := len(tasks) - 1; i >= 0; i-- {
		a.work = append(a.work, tasks[i])
	}
}

// top returns the innermost open scope, or nil.
func (a *analyzer) top() *Scope {
	if len(a.stack) == 0 {
		return nil
	}

	return a.stack[len(a.stack)-1].scope
}

// open transitions a frame to [scopeOpen] and makes its scope the innermost one.
func (a *analyzer) open(f *frame) error {
	if f.state != notVisited {
		return a.errorf(f.node, ErrInvariant, "%s opened twice", f.key)
	}

	f.scope = newScope(a.top(), f.isolated)
	f.state = scopeOpen
	a.stack = append(a.stack, f)

	return nil
}

// close finalizes the innermost scope and attaches it to its node.
func (a *analyzer) close(f *frame) error {
	if len(a.stack) == 0 {
		return a.errorf(f.node, ErrInvariant, "scope stack underflow closing %s", f.key)
	}

	if top := a.stack[len(a.stack)-1]; top != f {
		return a.errorf(f.node, ErrInvariant, "closing %s while %s is innermost", f.key, top.key)
	}

	a.stack[len(a.stack)-1] = nil
	a.stack = a.stack[:len(a.stack)-1]

	if f.pure && f.scope.modified.Len() > 0 {
		return a.errorf(f.node, ErrInvariant, "%s modifies %s", f.key, f.scope.modified)
	}

	f.scope.freeze()
	f.state = scopeClosed

	if err := a.table.Set(f.node, f.key, f.scope); err != nil {
		return a.newError(f.node, errors.Mark(err, ErrInvariant))
	}

	return nil
}

// markRead records a read in the innermost scope and every enclosing scope up
// to and including the nearest isolated one. at is the node reported when no
// scope is open.
func (a *analyzer) markRead(at ast.Node, n qual.Name) error {
	s := a.top()
	if s == nil {
		return a.errorf(at, ErrInvariant, "reading %s outside of a scope", n)
	}

	for ; s != nil; s = s.parent {
		s.MarkRead(n)

		if s.isolated {
			break
		}
	}

	return nil
}

// markModified records a write with the same propagation as [analyzer.markRead].
func (a *analyzer) markModified(at ast.Node, n qual.Name) error {
	s := a.top()
	if s == nil {
		return a.errorf(at, ErrInvariant, "modifying %s outside of a scope", n)
	}

	for ; s != nil; s = s.parent {
		s.MarkModified(n)

		if s.isolated {
			break
		}
	}

	return nil
}

// errorf creates an *[Error] for node n wrapping sentinel.
func (a *analyzer) errorf(n ast.Node, sentinel error, format string, args ...any) error {
	return a.newError(n, errors.Wrapf(sentinel, format, args...))
}

// newError positions err at node n.
func (a *analyzer) newError(n ast.Node, err error) *Error {
	e := &Error{Node: n, Err: err}

	if a.ctx.Fset != nil && n != nil && n.Pos().IsValid() {
		e.Position = a.ctx.Fset.Position(n.Pos())
	}

	return e
}

// Task constructors.

func openTask(f *frame) task     { return task{kind: taskOpen, node: f.node, frame: f} }
func closeTask(f *frame) task    { return task{kind: taskClose, node: f.node, frame: f} }
func readTask(e ast.Expr) task   { return task{kind: taskRead, node: e} }
func writeTask(e ast.Expr) task  { return task{kind: taskWrite, node: e} }
func updateTask(e ast.Expr) task { return task{kind: taskUpdate, node: e} }
func stmtTask(s ast.Stmt) task   { return task{kind: taskStmt, node: s} }

func bindTask(fields *ast.FieldList, kind ParamKind, owner ast.Node) task {
	return task{kind: taskBind, node: fields, param: kind, owner: owner}
}

// appendReads appends read tasks for all non-nil expressions.
func appendReads(ts []task, exprs ...ast.Expr) []task {
	for _, e := range exprs {
		if e == nil {
			continue
		}

		ts = append(ts, readTask(e))
	}

	return ts
}

// appendStmts appends statement tasks for all non-nil statements.
func appendStmts(ts []task, stmts ...ast.Stmt) []task {
	for _, s := range stmts {
		if s == nil {
			continue
		}

		ts = append(ts, stmtTask(s))
	}

	return ts
}
