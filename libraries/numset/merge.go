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
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"github.com/dolthub/numset/store/d"
)

// All kernels take slices that are sorted ascending with no duplicates (dedupeSorted only
// requires sorted). Input that breaks this produces unspecified output.

// setDifference removes every value in b from a. a is compacted in place and the shortened
// slice is returned; b is only read.
func setDifference[T constraints.Integer](a, b []T) []T {
	i, j, k := 0, 0, 0

	// a[:k] holds a_0[:i] without the values of b, and b[j-1] < a[i] when both exist.
	for i < len(a) {
		if j == len(b) || a[i] < b[j] {
			a[k] = a[i]
			i++
			k++
		} else if a[i] > b[j] {
			j++
		} else {
			i++
			j++
		}
	}

	return a[:k]
}

// setUnion returns a new slice holding every value in a or b. Neither input is written.
func setUnion[T constraints.Integer](a, b []T) []T {
	res := make([]T, 0, len(a)+len(b))
	i, j := 0, 0

	// res holds the union of a[:i] and b[:j].
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i] < b[j]):
			res = append(res, a[i])
			i++
		case i == len(a) || a[i] > b[j]:
			res = append(res, b[j])
			j++
		default:
			res = append(res, a[i])
			i++
			j++
		}
	}

	d.PanicIfFalse(len(res) >= len(a) && len(res) >= len(b), "union of %d and %d values produced %d", len(a), len(b), len(res))

	return res
}

// dedupeSorted compacts a sorted slice in place so that it is strictly increasing. If an
// out of order value is found the scan stops there and only the prefix before it is kept.
func dedupeSorted[T constraints.Integer](a []T) []T {
	if len(a) == 0 {
		return a
	}

	k := 1
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			logrus.Warnf("dedupe stopped at unsorted value at index %d, dropping %d values", i, len(a)-i)
			break
		}

		if a[i] != a[i-1] {
			a[k] = a[i]
			k++
		}
	}

	return a[:k]
}
