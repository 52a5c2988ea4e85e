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

// Package run implements the analysis pass of the activity analyzer.
package run

import (
	"context"
	"go/ast"
	"runtime/trace"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/activity/activity"
	"fillmore-labs.com/activity/anno"
	"fillmore-labs.com/activity/internal/astutil"
	"fillmore-labs.com/activity/internal/config"
	"fillmore-labs.com/activity/internal/report"
	"fillmore-labs.com/activity/qual"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the activity analyzer's pipeline and returns the package's *[anno.Table].
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, errors.Wrapf(ErrResultMissing, "activity: %s", inspect.Analyzer.Name)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "Activity")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	result := anno.NewTable()

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		table, err := r.analyzeFile(ctx, p, f)
		if err != nil {
			if r.Behavior.Enabled(config.Strict) {
				return nil, err
			}

			report.Error(p, errorNode(err, file), err)

			continue
		}

		if err := result.Merge(table); err != nil {
			return nil, errors.Wrapf(err, "activity: merging %s", currentFile.Filename())
		}

		report.Scopes(ctx, p, currentFile, table, r.Report)
	}

	return result, nil
}

// analyzeFile runs both resolution stages on a single file. Either all facts
// of the file are returned or none.
func (r *Options) analyzeFile(ctx context.Context, p *analysis.Pass, f inspector.Cursor) (*anno.Table, error) {
	file := f.Node().(*ast.File)
	table := anno.NewTable()

	var err error

	trace.WithRegion(ctx, "Resolve", func() {
		err = qual.Resolve(p.TypesInfo, f, table)
	})

	if err != nil {
		node := errorNode(err, file)

		return nil, errors.Wrapf(err, "%s", p.Fset.Position(node.Pos()))
	}

	trace.WithRegion(ctx, "Activity", func() {
		err = activity.Resolve(activity.Context{Fset: p.Fset, Namespace: p.Pkg.Path()}, file, table)
	})

	if err != nil {
		return nil, err
	}

	return table, nil
}

// errorNode returns the node an analysis error refers to, or fallback.
func errorNode(err error, fallback ast.Node) ast.Node {
	if aerr := (*activity.Error)(nil); errors.As(err, &aerr) && aerr.Node != nil {
		return aerr.Node
	}

	if uerr := (*qual.UnresolvedError)(nil); errors.As(err, &uerr) {
		return uerr.Node()
	}

	return fallback
}
