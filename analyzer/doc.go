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

// Package analyzer implements the activity static analysis pass.
//
// # Overview
//
// Activity computes, for every lexical scope of a Go package, the qualified
// names read and modified within it. Names are simple identifiers or access
// paths like a.b, a[i] and a[0].
//
// # Example
//
//	func f(a T, b []int, i int) {
//	    a.x = b[i]  // body_scope of function f: read=[a b b[i] i] modified=[a.x]
//	}
//
// # Scopes
//
// Scopes are attached to:
//
//   - Files, function declarations and function literals (body_scope)
//   - Function signatures (scope, with the bound parameters)
//   - if, for, range, switch, type switch and select statements and their clauses
//   - Call argument lists (args_scope)
//
// Function bodies are isolated: names used inside a function literal reach
// the enclosing scope only as reads of captured names.
//
// # Result
//
// The analysis result is an *anno.Table. Use [activity.ScopeOf] to look up a
// scope.
//
// [activity.ScopeOf]: https://pkg.go.dev/fillmore-labs.com/activity/activity#ScopeOf
package analyzer
