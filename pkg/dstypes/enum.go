// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package dstypes

import (
	"context"
	"database/sql/driver"
	"strings"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

type EnumStringOptions interface {
	~string
	Options() []string
}

// Enum is a persistence wrapper for a string enum with a fixed set of options
type Enum[O EnumStringOptions] string

func (e Enum[O]) V() O {
	return O(e)
}

// Validate is case insensitive, returning the canonical option
func (e Enum[O]) Validate() (O, error) {
	options := (*new(O)).Options()
	for _, o := range options {
		if strings.EqualFold(o, string(e)) {
			return O(o), nil
		}
	}
	return "", i18n.NewError(context.Background(), msgs.MsgTypesEnumValueInvalid, strings.Join(options, ","))
}

func (e Enum[O]) Value() (driver.Value, error) {
	v, err := e.Validate()
	return string(v), err
}

func (e *Enum[O]) Scan(src interface{}) error {
	switch s := src.(type) {
	case string:
		*e = Enum[O](s)
	case []byte:
		*e = Enum[O](s)
	default:
		return i18n.NewError(context.Background(), msgs.MsgTypesScanFail, src, e)
	}
	v, err := e.Validate()
	if err != nil {
		return err
	}
	*e = Enum[O](v)
	return nil
}

// ParseEnum validates a raw string against the options of O
func ParseEnum[O EnumStringOptions](s string) (O, error) {
	return Enum[O](s).Validate()
}
