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

package numset

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/dolthub/numset/libraries/utils/intseq"
	"github.com/dolthub/numset/store/d"
)

// SortedSet is a set of integers stored as a strictly increasing slice. When complemented is
// true the set holds every integer that is not in elements.
type SortedSet struct {
	elements     []int
	complemented bool
}

// NewSortedSet creates a set holding the values of vals. Values are not range checked.
func NewSortedSet(vals *intseq.Seq) *SortedSet {
	elements := vals.ToSlice()
	slices.Sort(elements)
	return &SortedSet{elements: dedupeSorted(elements)}
}

// NewSortedSetFromSlice creates a set holding vals. vals is not retained.
func NewSortedSetFromSlice(vals ...int) *SortedSet {
	elements := slices.Clone(vals)
	slices.Sort(elements)
	return &SortedSet{elements: dedupeSorted(elements)}
}

// RemoveAll removes the members of other from s.
func (s *SortedSet) RemoveAll(other NumberSet) {
	lb, cb := sortedOperand(other)
	s.elements, s.complemented = difference(s.elements, s.complemented, lb, cb)
}

// AddAll adds the members of other to s.
func (s *SortedSet) AddAll(other NumberSet) {
	lb, cb := sortedOperand(other)
	s.elements, s.complemented = union(s.elements, s.complemented, lb, cb)
}

// Complement flips the set without touching the stored elements.
func (s *SortedSet) Complement() {
	s.complemented = !s.complemented
}

// GetNumbers returns the stored elements when the set is not complemented, ignoring a and b.
// A complemented set returns every integer in [a, b] that is not stored, which is empty when
// a > b.
func (s *SortedSet) GetNumbers(a, b int) *intseq.Seq {
	if !s.complemented {
		return intseq.FromSlice(s.elements)
	}

	return intseq.FromSlice(s.excludedInRange(a, b))
}

// NumbersInRange returns the members of s within [a, b] in either mode.
func (s *SortedSet) NumbersInRange(a, b int) []int {
	if a > b {
		return []int{}
	}

	if s.complemented {
		return s.excludedInRange(a, b)
	}

	start, _ := slices.BinarySearch(s.elements, a)
	end, found := slices.BinarySearch(s.elements, b)
	if found {
		end++
	}

	return slices.Clone(s.elements[start:end])
}

// maxRangeWidth is the widest [a, b] a complemented set will list.
const maxRangeWidth = math.MaxInt32

// excludedInRange lists [a, b] and subtracts the stored elements. It panics if [a, b] holds
// more than maxRangeWidth integers.
func (s *SortedSet) excludedInRange(a, b int) []int {
	if a > b {
		return []int{}
	}

	// b-a as an unsigned value is exact for any a <= b, even when the signed difference overflows
	width := uint64(b) - uint64(a)
	d.PanicIfFalse(width < maxRangeWidth, "range [%d, %d] is too wide to enumerate", a, b)

	vals := make([]int, 0, int(width)+1)
	for v := a; ; v++ {
		vals = append(vals, v)
		if v == b {
			break
		}
	}

	return setDifference(vals, s.elements)
}

// Contains returns true if n is a member of s.
func (s *SortedSet) Contains(n int) bool {
	_, found := slices.BinarySearch(s.elements, n)
	return found != s.complemented
}

// IsComplemented returns true if the stored elements are the ones excluded from the set.
func (s *SortedSet) IsComplemented() bool {
	return s.complemented
}

// Elements returns a copy of the stored elements.
func (s *SortedSet) Elements() []int {
	return slices.Clone(s.elements)
}

// Clone returns an independent copy of s.
func (s *SortedSet) Clone() *SortedSet {
	return &SortedSet{elements: slices.Clone(s.elements), complemented: s.complemented}
}

// Equals returns true if both sets hold the same members.
func (s *SortedSet) Equals(other *SortedSet) bool {
	return s.complemented == other.complemented && slices.Equal(s.elements, other.elements)
}

func (s *SortedSet) String() string {
	strs := make([]string, len(s.elements))
	for i, v := range s.elements {
		strs[i] = strconv.Itoa(v)
	}

	list := "{" + strings.Join(strs, ", ") + "}"
	if s.complemented {
		return "all integers except " + list
	}

	return list
}

// sortedOperand returns the stored elements and complement flag representing other. A dense
// set is never complemented in this sense; its members are listed directly.
func sortedOperand(other NumberSet) ([]int, bool) {
	switch typedVal := other.(type) {
	case *SortedSet:
		return typedVal.elements, typedVal.complemented
	case *DenseSet:
		return typedVal.members(), false
	}

	d.Unreachable("unsupported NumberSet implementation %T", other)
	return nil, false
}
