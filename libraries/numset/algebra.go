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
	"slices"

	"github.com/dolthub/numset/store/d"
)

// flagPair tags the complement flags of a receiver (A) and operand (B). With U the universe,
// LA and LB the stored elements, a complemented set is U\L.
type flagPair uint8

const (
	// A = LA, B = LB
	plainPlain flagPair = iota
	// A = LA, B = U\LB
	plainComplemented
	// A = U\LA, B = LB
	complementedPlain
	// A = U\LA, B = U\LB
	complementedComplemented
)

func pairOf(receiverComplemented, operandComplemented bool) flagPair {
	var p flagPair
	if receiverComplemented {
		p |= 2
	}
	if operandComplemented {
		p |= 1
	}
	return p
}

func (p flagPair) String() string {
	switch p {
	case plainPlain:
		return "plain/plain"
	case plainComplemented:
		return "plain/complemented"
	case complementedPlain:
		return "complemented/plain"
	case complementedComplemented:
		return "complemented/complemented"
	}
	return "unknown"
}

// difference computes the stored elements and flag of A\B. la may be reused for the result;
// lb is never written.
func difference(la []int, ca bool, lb []int, cb bool) ([]int, bool) {
	switch pairOf(ca, cb) {
	case plainPlain:
		// LA\LB
		return setDifference(la, lb), false
	case complementedComplemented:
		// (U\LA)\(U\LB) = LB\LA
		return setDifference(slices.Clone(lb), la), false
	case complementedPlain:
		// (U\LA)\LB = U\(LA∪LB)
		return setUnion(la, lb), true
	case plainComplemented:
		// LA\(U\LB) = LA∩LB = LA\(LA\LB)
		return setDifference(la, setDifference(slices.Clone(la), lb)), false
	}

	d.Unreachable("flag pair %d", pairOf(ca, cb))
	return nil, false
}

// union computes the stored elements and flag of A∪B. la may be reused for the result; lb is
// never written.
func union(la []int, ca bool, lb []int, cb bool) ([]int, bool) {
	switch pairOf(ca, cb) {
	case plainPlain:
		// LA∪LB
		return setUnion(la, lb), false
	case complementedComplemented:
		// (U\LA)∪(U\LB) = U\(LA∩LB) = U\(LA\(LA\LB))
		return setDifference(la, setDifference(slices.Clone(la), lb)), true
	case complementedPlain:
		// (U\LA)∪LB = U\(LA\LB)
		return setDifference(la, lb), true
	case plainComplemented:
		// LA∪(U\LB) = U\(LB\LA)
		return setDifference(slices.Clone(lb), la), true
	}

	d.Unreachable("flag pair %d", pairOf(ca, cb))
	return nil, false
}
