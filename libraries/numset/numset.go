// Copyright 2026 Dolthub, Inc.
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

// Package numset implements mutable sets of integers with two interchangeable
// representations. DenseSet is a bitmap over [1, Max()]. SortedSet is a sorted slice plus a
// complement flag, which lets it hold co-finite sets such as "every integer except 3"
// without materializing them.
//
// Sets are not safe for concurrent use.
package numset

import (
	"github.com/dolthub/numset/libraries/utils/intseq"
)

// NumberSet is a set of integers that is modified in place. The operand of RemoveAll and
// AddAll is only read.
type NumberSet interface {
	// RemoveAll updates the set so that it holds x iff it held x and other does not.
	RemoveAll(other NumberSet)

	// AddAll updates the set so that it holds x iff it held x or other does.
	AddAll(other NumberSet)

	// GetNumbers returns the members of the set in ascending order. Bounds are only applied
	// where the set could not otherwise be listed, which is a complemented SortedSet.
	GetNumbers(a, b int) *intseq.Seq

	// NumbersInRange returns the members of the set within [a, b] in ascending order.
	NumbersInRange(a, b int) []int

	// Complement updates the set so that it holds x iff it did not hold x.
	Complement()

	// Contains returns true if n is a member.
	Contains(n int) bool

	String() string
}

var _ NumberSet = (*DenseSet)(nil)
var _ NumberSet = (*SortedSet)(nil)
