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
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/dolthub/numset/libraries/utils/intseq"
)

// DenseSet is a bitmap over [1, Cap()]. The capacity is the value of Max() when the set was
// created and does not follow later changes to the bound.
type DenseSet struct {
	// index 0 is unused
	taken []bool
}

// NewDenseSet creates a set holding vals. Every value must be in [1, Max()], otherwise
// ErrOutOfRange is returned and no set is created.
func NewDenseSet(vals *intseq.Seq) (*DenseSet, error) {
	capacity := Max()
	taken := make([]bool, capacity+1)

	// taken[x] is true iff x is among the values seen so far
	for curr := vals; !curr.IsEmpty(); curr = curr.Tail() {
		v := curr.Head()
		if v < 1 || v > capacity {
			return nil, ErrOutOfRange.New(v, capacity)
		}

		taken[v] = true
	}

	return &DenseSet{taken}, nil
}

// NewDenseSetFromSlice is NewDenseSet for a slice.
func NewDenseSetFromSlice(vals ...int) (*DenseSet, error) {
	return NewDenseSet(intseq.FromSlice(vals))
}

// Cap returns the largest value the set can hold.
func (ds *DenseSet) Cap() int {
	return len(ds.taken) - 1
}

// Len returns the number of members.
func (ds *DenseSet) Len() int {
	count := 0
	for i := 1; i < len(ds.taken); i++ {
		if ds.taken[i] {
			count++
		}
	}
	return count
}

// RemoveAll clears every slot whose value is a member of other.
func (ds *DenseSet) RemoveAll(other NumberSet) {
	if o, ok := other.(*DenseSet); ok {
		for i := 1; i < len(ds.taken) && i < len(o.taken); i++ {
			if o.taken[i] {
				ds.taken[i] = false
			}
		}
		return
	}

	for i := 1; i < len(ds.taken); i++ {
		if ds.taken[i] && other.Contains(i) {
			ds.taken[i] = false
		}
	}
}

// AddAll sets every slot whose value is a member of other. Members of other past Cap() are
// dropped.
func (ds *DenseSet) AddAll(other NumberSet) {
	if o, ok := other.(*DenseSet); ok {
		for i := 1; i < len(ds.taken) && i < len(o.taken); i++ {
			if o.taken[i] {
				ds.taken[i] = true
			}
		}
		return
	}

	for i := 1; i < len(ds.taken); i++ {
		if !ds.taken[i] && other.Contains(i) {
			ds.taken[i] = true
		}
	}
}

// Complement flips every slot in [1, Cap()].
func (ds *DenseSet) Complement() {
	for i := 1; i < len(ds.taken); i++ {
		ds.taken[i] = !ds.taken[i]
	}
}

// GetNumbers returns every member in ascending order. a and b are ignored.
func (ds *DenseSet) GetNumbers(_, _ int) *intseq.Seq {
	vals := intseq.Empty
	for i := len(ds.taken) - 1; i >= 1; i-- {
		if ds.taken[i] {
			vals = intseq.Cons(i, vals)
		}
	}
	return vals
}

// NumbersInRange returns the members within [a, b] in ascending order.
func (ds *DenseSet) NumbersInRange(a, b int) []int {
	vals := []int{}
	for i := max(a, 1); i <= b && i < len(ds.taken); i++ {
		if ds.taken[i] {
			vals = append(vals, i)
		}
	}
	return vals
}

// Contains returns true if n is a member.
func (ds *DenseSet) Contains(n int) bool {
	return n >= 1 && n < len(ds.taken) && ds.taken[n]
}

func (ds *DenseSet) members() []int {
	return ds.NumbersInRange(1, ds.Cap())
}

func (ds *DenseSet) String() string {
	return fmt.Sprintf("dense set of %s values in [1, %s]", humanize.Comma(int64(ds.Len())), humanize.Comma(int64(ds.Cap())))
}
