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

// Package report emits activity scopes and analysis errors as diagnostics.
package report

import (
	"context"
	"fmt"
	"go/ast"
	"runtime/trace"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/activity/activity"
	"fillmore-labs.com/activity/analyzer/level"
	"fillmore-labs.com/activity/anno"
	"fillmore-labs.com/activity/internal/astutil"
)

// Scopes emits a diagnostic for every scope in table selected by lvl.
func Scopes(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, table *anno.Table, lvl level.Report) {
	if lvl == level.ReportOff {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for node, key := range table.All() {
		if !key.IsScope() || !selected(node, key, lvl) {
			continue
		}

		if currentFile.NoLintComment(node.Pos()) {
			continue
		}

		s, ok := activity.ScopeOf(table, node, key)
		if !ok {
			astutil.InternalError(p, node, "%s of %s is not a scope", key, Name(node))

			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:      node.Pos(),
			End:      node.End(),
			Category: key.String(),
			Message:  createMessage(node, key, s),
		})
	}
}

// Error reports an analysis error that caused a file to be skipped.
func Error(p *analysis.Pass, node ast.Node, err error) {
	p.Report(analysis.Diagnostic{
		Pos:      node.Pos(),
		End:      node.End(),
		Category: "error",
		Message:  fmt.Sprintf("Activity analysis skipped: %v", err),
	})
}

// selected reports whether a scope is emitted at the given level.
func selected(node ast.Node, key anno.Key, lvl level.Report) bool {
	switch lvl {
	case level.ReportAll:
		return true

	case level.ReportBody:
		if key != anno.BodyScope {
			return false
		}

		switch node.(type) {
		case *ast.FuncDecl, *ast.FuncLit:
			return true
		}

		return false

	default:
		return false
	}
}

// createMessage formats a scope, e.g. "body_scope of function f: read=[a] modified=[b]".
func createMessage(node ast.Node, key anno.Key, s *activity.Scope) string {
	var msg strings.Builder

	msg.WriteString(key.String()) // ignore error
	msg.WriteString(" of ")       // ignore error
	msg.WriteString(Name(node))   // ignore error
	msg.WriteString(": ")         // ignore error
	msg.WriteString(s.String())   // ignore error

	if params := s.Params(); len(params) > 0 {
		names := make([]string, len(params))
		for i, p := range params {
			names[i] = p.Name.String()
		}

		msg.WriteString(" params=[" + strings.Join(names, " ") + "]") // ignore error
	}

	return msg.String()
}
