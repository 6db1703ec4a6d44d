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

package intseq

import (
	"slices"
	"strconv"
	"strings"

	"github.com/dolthub/numset/store/d"
)

// Seq is an immutable, singly linked sequence of ints. A nil *Seq is the empty
// sequence, so the zero value of a *Seq variable is ready to use.
type Seq struct {
	hd  int
	tl  *Seq
	len int
}

// Empty is the empty sequence.
var Empty *Seq

// Cons returns a new sequence with hd in front of tl. tl is shared, not copied.
func Cons(hd int, tl *Seq) *Seq {
	return &Seq{hd: hd, tl: tl, len: tl.Len() + 1}
}

// FromSlice builds a sequence holding vals in order.
func FromSlice(vals []int) *Seq {
	var s *Seq
	for i := len(vals) - 1; i >= 0; i-- {
		s = Cons(vals[i], s)
	}
	return s
}

// Of is FromSlice for literal values.
func Of(vals ...int) *Seq {
	return FromSlice(vals)
}

// IsEmpty returns true for the empty sequence.
func (s *Seq) IsEmpty() bool {
	return s == nil
}

// Head returns the first value. It panics on the empty sequence.
func (s *Seq) Head() int {
	d.PanicIfTrue(s == nil)
	return s.hd
}

// Tail returns everything after the first value. It panics on the empty sequence.
func (s *Seq) Tail() *Seq {
	d.PanicIfTrue(s == nil)
	return s.tl
}

// Len returns the number of values in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return s.len
}

// ToSlice copies the sequence into a newly allocated slice.
func (s *Seq) ToSlice() []int {
	vals := make([]int, 0, s.Len())
	for curr := s; curr != nil; curr = curr.tl {
		vals = append(vals, curr.hd)
	}
	return vals
}

// Compact returns the values of s sorted ascending with duplicates removed.
func Compact(s *Seq) []int {
	vals := s.ToSlice()
	slices.Sort(vals)
	return slices.Compact(vals)
}

func (s *Seq) String() string {
	sb := strings.Builder{}
	sb.WriteByte('[')
	for curr := s; curr != nil; curr = curr.tl {
		if curr != s {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(curr.hd))
	}
	sb.WriteByte(']')
	return sb.String()
}
