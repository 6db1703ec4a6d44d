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

package d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPanicIf(t *testing.T) {
	assert.Panics(t, func() { PanicIfTrue(true) })
	assert.NotPanics(t, func() { PanicIfTrue(false) })
	assert.PanicsWithValue(t, "bad count 3", func() { PanicIfFalse(false, "bad count %d", 3) })
	assert.NotPanics(t, func() { PanicIfFalse(true, "bad count %d", 3) })
}

func TestPanic(t *testing.T) {
	assert.PanicsWithValue(t, "range [1, 2] too wide", func() { Panic("range [%d, %d] too wide", 1, 2) })
}

func TestUnreachable(t *testing.T) {
	assert.PanicsWithValue(t, "unreachable: state 7", func() { Unreachable("state %d", 7) })
}
