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

package config

import "errors"

// ErrConfigParamNotFound is returned when a requested key has no value.
var ErrConfigParamNotFound = errors.New("param not found")

// ReadableConfig is an interface for reading string values keyed by dotted parameter names
// such as "numset.max".
type ReadableConfig interface {
	// GetString retrieves a value for a given key, or ErrConfigParamNotFound.
	GetString(key string) (string, error)

	// Size returns the number of properties.
	Size() int
}
