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

import (
	"cmp"
	"go/ast"
	"iter"
	"maps"
	"slices"

	"github.com/cockroachdb/errors"
)

// ErrAnnotated is returned when a fact is set twice for the same node and key.
var ErrAnnotated = errors.New("node already annotated")

// Table stores facts about syntax tree nodes, keyed by node identity.
//
// The tree itself is never modified. A Table is owned by a single analysis run
// and is not safe for concurrent mutation.
type Table struct {
	nodes map[ast.Node]*facts
}

type facts struct {
	present uint16
	values  [keyCount]any
}

// NewTable creates an empty [Table].
func NewTable() *Table {
	return &Table{nodes: make(map[ast.Node]*facts)}
}

// Set stores a fact. Facts are immutable once set; setting the same key twice
// for a node returns [ErrAnnotated].
func (t *Table) Set(n ast.Node, k Key, value any) error {
	if k >= keyCount {
		return errors.AssertionFailedf("invalid annotation key %d", k)
	}

	f, ok := t.nodes[n]
	if !ok {
		f = &facts{}
		t.nodes[n] = f
	}

	if f.present&(1<<k) != 0 {
		return errors.Wrapf(ErrAnnotated, "%s on %T", k, n)
	}

	f.present |= 1 << k
	f.values[k] = value

	return nil
}

// Get returns the fact stored for the node and key.
func (t *Table) Get(n ast.Node, k Key) (any, bool) {
	f, ok := t.nodes[n]
	if !ok || k >= keyCount || f.present&(1<<k) == 0 {
		return nil, false
	}

	return f.values[k], true
}

// Has reports whether a fact is stored for the node and key.
func (t *Table) Has(n ast.Node, k Key) bool {
	_, ok := t.Get(n, k)

	return ok
}

// Keys yields the keys annotated on a node in ascending order.
func (t *Table) Keys(n ast.Node) iter.Seq[Key] {
	return func(yield func(Key) bool) {
		f, ok := t.nodes[n]
		if !ok {
			return
		}

		for k := range keyCount {
			if f.present&(1<<k) == 0 {
				continue
			}

			if !yield(k) {
				return
			}
		}
	}
}

// All yields every annotated node and key, ordered by source position with
// enclosing nodes first.
func (t *Table) All() iter.Seq2[ast.Node, Key] {
	nodes := slices.SortedFunc(maps.Keys(t.nodes), func(a, b ast.Node) int {
		return cmp.Or(
			cmp.Compare(a.Pos(), b.Pos()),
			cmp.Compare(b.End(), a.End()),
		)
	})

	return func(yield func(ast.Node, Key) bool) {
		for _, n := range nodes {
			for k := range t.Keys(n) {
				if !yield(n, k) {
					return
				}
			}
		}
	}
}

// Merge copies all facts of other into t. It fails with [ErrAnnotated] when
// both tables annotate the same node with the same key.
func (t *Table) Merge(other *Table) error {
	for n, f := range other.nodes {
		for k := range other.Keys(n) {
			if err := t.Set(n, k, f.values[k]); err != nil {
				return err
			}
		}
	}

	return nil
}

// Len returns the number of annotated nodes.
func (t *Table) Len() int {
	return len(t.nodes)
}

// Value returns the fact stored for the node and key if it has type T.
func Value[T any](t *Table, n ast.Node, k Key) (T, bool) {
	v, ok := t.Get(n, k)
	if !ok {
		var zero T

		return zero, false
	}

	tv, ok := v.(T)

	return tv, ok
}
