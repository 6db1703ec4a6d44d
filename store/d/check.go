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

// Package d contains checks for conditions that can only fail because of a
// programming error. Failures panic; they are not meant to be recovered from.
package d

import "fmt"

// PanicIfTrue panics if b is true.
func PanicIfTrue(b bool) {
	if b {
		panic("expected false")
	}
}

// PanicIfFalse panics with a formatted message if b is false.
func PanicIfFalse(b bool, format string, args ...interface{}) {
	if !b {
		Panic(format, args...)
	}
}

// Panic panics with a formatted message.
func Panic(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// Unreachable panics with a message naming the state that should not exist.
func Unreachable(format string, args ...interface{}) {
	panic("unreachable: " + fmt.Sprintf(format, args...))
}
