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
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairOf(t *testing.T) {
	assert.Equal(t, plainPlain, pairOf(false, false))
	assert.Equal(t, plainComplemented, pairOf(false, true))
	assert.Equal(t, complementedPlain, pairOf(true, false))
	assert.Equal(t, complementedComplemented, pairOf(true, true))
	assert.Equal(t, "complemented/plain", complementedPlain.String())
	assert.Equal(t, "unknown", flagPair(9).String())
}

type algebraTest struct {
	name         string
	ca, cb       bool
	expected     []int
	expectedFlag bool
}

// All cells use LA = {1, 2, 3} and LB = {2, 3, 4}.
func TestDifferenceCells(t *testing.T) {
	tests := []algebraTest{
		{"LA minus LB", false, false, []int{1}, false},
		{"LB minus LA", true, true, []int{4}, false},
		{"complement of LA union LB", true, false, []int{1, 2, 3, 4}, true},
		{"LA intersect LB", false, true, []int{2, 3}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lb := []int{2, 3, 4}
			res, flag := difference([]int{1, 2, 3}, test.ca, lb, test.cb)
			assert.Equal(t, test.expected, res)
			assert.Equal(t, test.expectedFlag, flag)
			assert.Equal(t, []int{2, 3, 4}, lb)
		})
	}
}

func TestUnionCells(t *testing.T) {
	tests := []algebraTest{
		{"LA union LB", false, false, []int{1, 2, 3, 4}, false},
		{"complement of LA intersect LB", true, true, []int{2, 3}, true},
		{"complement of LA minus LB", true, false, []int{1}, true},
		{"complement of LB minus LA", false, true, []int{4}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lb := []int{2, 3, 4}
			res, flag := union([]int{1, 2, 3}, test.ca, lb, test.cb)
			assert.Equal(t, test.expected, res)
			assert.Equal(t, test.expectedFlag, flag)
			assert.Equal(t, []int{2, 3, 4}, lb)
		})
	}
}

func member(elements []int, complemented bool, x int) bool {
	_, found := slices.BinarySearch(elements, x)
	return found != complemented
}

// TestAlgebraAgainstMembership checks every cell against the definition of the operation
// over a window that contains every stored value.
func TestAlgebraAgainstMembership(t *testing.T) {
	const lo, hi = -5, 35
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 400; i++ {
		la := randomSorted(r, r.Intn(20), 0, 30)
		lb := randomSorted(r, r.Intn(20), 0, 30)
		ca, cb := r.Intn(2) == 1, r.Intn(2) == 1
		lbCopy := slices.Clone(lb)

		diff, diffFlag := difference(slices.Clone(la), ca, lb, cb)
		un, unFlag := union(slices.Clone(la), ca, lb, cb)
		require.Equal(t, lbCopy, lb, "operand was modified for %v", pairOf(ca, cb))
		require.True(t, isStrictlyIncreasing(diff))
		require.True(t, isStrictlyIncreasing(un))

		for x := lo; x <= hi; x++ {
			inA, inB := member(la, ca, x), member(lb, cb, x)
			require.Equal(t, inA && !inB, member(diff, diffFlag, x), "difference %v at %d", pairOf(ca, cb), x)
			require.Equal(t, inA || inB, member(un, unFlag, x), "union %v at %d", pairOf(ca, cb), x)
		}
	}
}
