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

// MapConfig is an in memory config, used directly by tests and as the result of loading a
// config file. It is read only once created.
type MapConfig struct {
	properties map[string]string
}

var _ ReadableConfig = (*MapConfig)(nil)

// NewMapConfig creates a config from a map. The map is copied.
func NewMapConfig(properties map[string]string) *MapConfig {
	copied := make(map[string]string, len(properties))
	for k, v := range properties {
		copied[k] = v
	}

	return &MapConfig{copied}
}

// GetString retrieves a value for a given key.
func (mc *MapConfig) GetString(k string) (string, error) {
	if val, ok := mc.properties[k]; ok {
		return val, nil
	}

	return "", ErrConfigParamNotFound
}

// Size returns the number of properties contained within the config
func (mc *MapConfig) Size() int {
	return len(mc.properties)
}
