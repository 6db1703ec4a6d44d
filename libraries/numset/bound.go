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
	"math"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"github.com/dolthub/numset/libraries/utils/config"
)

const (
	// DefaultMax is the bound used until SetMax is called.
	DefaultMax = 100

	// MaxConfigKey is the config param read by ApplyConfig.
	MaxConfigKey = "numset.max"
)

// bound is the largest value a DenseSet can hold. It only affects dense sets built after it
// changes; existing sets keep the capacity they were created with.
var bound = DefaultMax

// Max returns the current bound.
func Max() int {
	return bound
}

// SetMax updates the bound. Values below 1 are rejected with ErrInvalidBound and leave the
// bound unchanged.
func SetMax(n int) error {
	if n < 1 {
		return ErrInvalidBound.New(n)
	}

	if n != bound {
		logrus.WithField("previous", bound).Debugf("number set bound set to %s", humanize.Comma(int64(n)))
	}

	bound = n
	return nil
}

// SetMaxFromValue updates the bound from an untyped value such as a config param or a
// decoded number. Integers, integral floats and numeric strings are accepted; 2.5, "abc",
// booleans, 0 and negative values are rejected with ErrInvalidBound. Dense sets allocate one
// slot per value, so bounds past math.MaxInt32 are rejected as well.
func SetMaxFromValue(v interface{}) error {
	if _, ok := v.(bool); ok {
		return ErrInvalidBound.New(v)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return ErrInvalidBound.New(v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f || f < 1 || f > math.MaxInt32 {
		return ErrInvalidBound.New(v)
	}

	return SetMax(int(f))
}

// ApplyConfig sets the bound from the MaxConfigKey param of cfg. A missing param leaves the
// bound unchanged.
func ApplyConfig(cfg config.ReadableConfig) error {
	val, err := cfg.GetString(MaxConfigKey)
	if err == config.ErrConfigParamNotFound {
		return nil
	} else if err != nil {
		return err
	}

	if err := SetMaxFromValue(val); err != nil {
		return err
	}

	logrus.WithField(MaxConfigKey, val).Debug("applied number set config")
	return nil
}

// ResetMax restores DefaultMax.
func ResetMax() {
	bound = DefaultMax
}
