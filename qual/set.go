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

package qual

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Set is a set of qualified names.
type Set map[Name]struct{}

// NewSet creates a [Set] containing the given names.
func NewSet(names ...Name) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s.Add(n)
	}

	return s
}

// Add adds a name to the set.
func (s Set) Add(n Name) { s[n] = struct{}{} }

// Has reports whether the set contains the name.
func (s Set) Has(n Name) bool {
	_, ok := s[n]

	return ok
}

// Len returns the number of names in the set.
func (s Set) Len() int { return len(s) }

// Clone returns a copy of the set. The copy of a nil set is empty, not nil.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	maps.Copy(c, s)

	return c
}

// Union adds all names of other to s.
func (s Set) Union(other Set) {
	maps.Copy(s, other)
}

// All yields the names of the set in unspecified order.
func (s Set) All() iter.Seq[Name] {
	return maps.Keys(s)
}

// Sorted returns the names of the set ordered by [Compare].
func (s Set) Sorted() []Name {
	return slices.SortedFunc(maps.Keys(s), Compare)
}

// Strings returns the sorted textual forms of the names in the set.
func (s Set) Strings() []string {
	names := s.Sorted()

	strs := make([]string, len(names))
	for i, n := range names {
		strs[i] = n.String()
	}

	return strs
}

func (s Set) String() string {
	return "[" + strings.Join(s.Strings(), " ") + "]"
}
