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

package run

import (
	"go/ast"
	"testing"

	"github.com/cockroachdb/errors"

	"fillmore-labs.com/activity/activity"
	"fillmore-labs.com/activity/analyzer/level"
	"fillmore-labs.com/activity/internal/config"
	"fillmore-labs.com/activity/qual"
)

func TestErrorNode(t *testing.T) {
	t.Parallel()

	fallback := &ast.File{}
	id := ast.NewIdent("x")

	tests := [...]struct {
		name string
		err  error
		want ast.Node
	}{
		{"activity", errors.Wrap(&activity.Error{Node: id, Err: activity.ErrUnsupported}, "wrapped"), id},
		{"unresolved", errors.Wrap(&qual.UnresolvedError{Ident: id}, "wrapped"), id},
		{"other", errors.New("other"), fallback},
		{"nodeless", &activity.Error{Err: activity.ErrInvariant}, fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := errorNode(tt.err, fallback); got != tt.want {
				t.Errorf("errorNode() = %T, want %T", got, tt.want)
			}
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()

	if !o.Behavior.Enabled(config.Strict) || o.Behavior.Enabled(config.IncludeGenerated) {
		t.Errorf("Unexpected default behavior %08b", o.Behavior.Flags())
	}

	if o.Report != level.ReportOff {
		t.Errorf("Report = %s, want %s", o.Report, level.ReportOff)
	}
}
