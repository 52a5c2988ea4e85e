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

	"fillmore-labs.com/activity/qual"
)

var (
	// ErrUnsupported is returned for malformed or unsupported syntax.
	ErrUnsupported = errors.New("unsupported construct")

	// ErrUnresolved is returned for a value reference without a qualified name.
	ErrUnresolved = qual.ErrUnresolved

	// ErrInvariant is returned when the analyzer detects an internal inconsistency.
	ErrInvariant = errors.New("invariant violation")
)

// Error is a fatal analysis error at a specific node.
type Error struct {
	// Node is the offending node.
	Node ast.Node
	// Position is the resolved position of Node, if a file set was available.
	Position token.Position
	// Err wraps one of [ErrUnsupported], [ErrUnresolved] or [ErrInvariant].
	Err error
}

func (e *Error) Error() string {
	if e.Position.IsValid() {
		return e.Position.String() + ": " + e.Err.Error()
	}

	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error { return e.Err }
