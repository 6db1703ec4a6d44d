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

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// LoadFile reads a YAML (.yaml, .yml) or TOML (.toml) file into a MapConfig. Nested tables
// are flattened into dotted keys, so
//
//	numset:
//	  max: 250
//
// is read as "numset.max" = "250".
func LoadFile(path string) (*MapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file '%s'", path)
	}

	var cfg *MapConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		cfg, err = ParseYAML(data)
	case ".toml":
		cfg, err = ParseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported config file extension '%s' for '%s'", ext, path)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "error parsing config file '%s'", path)
	}

	logrus.WithField("path", path).Debugf("loaded %d config params", cfg.Size())
	return cfg, nil
}

// ParseYAML flattens a YAML document into a MapConfig.
func ParseYAML(data []byte) (*MapConfig, error) {
	raw := make(map[interface{}]interface{})
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	props := make(map[string]string)
	if err := flatten(props, "", raw); err != nil {
		return nil, err
	}

	return &MapConfig{props}, nil
}

// ParseTOML flattens a TOML document into a MapConfig.
func ParseTOML(data []byte) (*MapConfig, error) {
	raw := make(map[string]interface{})
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, err
	}

	props := make(map[string]string)
	if err := flatten(props, "", raw); err != nil {
		return nil, err
	}

	return &MapConfig{props}, nil
}

func flatten(dest map[string]string, prefix string, val interface{}) error {
	switch typedVal := val.(type) {
	case map[interface{}]interface{}:
		for k, v := range typedVal {
			key, err := cast.ToStringE(k)
			if err != nil {
				return errors.Wrapf(err, "invalid key under '%s'", prefix)
			}

			if err := flatten(dest, joinKey(prefix, key), v); err != nil {
				return err
			}
		}
	case map[string]interface{}:
		for k, v := range typedVal {
			if err := flatten(dest, joinKey(prefix, k), v); err != nil {
				return err
			}
		}
	case nil:
		// an empty value leaves the param unset
	default:
		str, err := cast.ToStringE(typedVal)
		if err != nil {
			return errors.Wrapf(err, "unsupported value for '%s'", prefix)
		}

		dest[prefix] = str
	}

	return nil
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
