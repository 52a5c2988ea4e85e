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

package body

type T struct{ x int }

func assign(a, b int) int { // want `body_scope of function assign: read=\[a b c\] modified=\[c\]`
	c := a + b
	return c
}

func (t *T) set(v int) { // want `body_scope of method set: read=\[t v\] modified=\[t.x\]`
	t.x = v
}

func closure(n int) func() int { // want `body_scope of function closure: read=\[n\] modified=\[\]`
	return func() int { // want `body_scope of function literal: read=\[n\] modified=\[\]`
		return n
	}
}

func ignored(n int) int { //nolint:activity
	return n
}
