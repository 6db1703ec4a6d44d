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

import "gopkg.in/src-d/go-errors.v1"

// ErrInvalidBound is returned when the bound is set to a value that is not a positive integer.
var ErrInvalidBound = errors.NewKind("invalid positive integer %v")

// ErrOutOfRange is returned when a dense set is built from a value outside of [1, max].
var ErrOutOfRange = errors.NewKind("unsupported number %d (must be 1-%d)")
