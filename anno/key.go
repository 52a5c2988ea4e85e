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

package anno

// Key identifies the kind of fact stored for a node.
type Key uint8

//go:generate go tool stringer -type Key -linecomment
const (
	// QN holds the canonical qualified name of an identifier, selector or index expression.
	QN Key = iota // qn

	// Opaque marks an identifier that is resolved but denotes no value symbol,
	// e.g. a type name, a struct field, a builtin or the blank identifier.
	Opaque // opaque

	// Scope holds the parameter scope of a function signature.
	Scope // scope

	// BodyScope holds the scope of a function, loop or branch body.
	BodyScope // body_scope

	// OrElseScope holds the scope of an else branch.
	OrElseScope // orelse_scope

	// CondScope holds the reads of a condition or case expression.
	CondScope // cond_scope

	// ArgsScope holds the reads of a call's argument list.
	ArgsScope // args_scope

	keyCount // invalid
)

// IsScope reports whether values stored under the key are scopes.
func (k Key) IsScope() bool {
	switch k {
	case Scope, BodyScope, OrElseScope, CondScope, ArgsScope:
		return true

	default:
		return false
	}
}
