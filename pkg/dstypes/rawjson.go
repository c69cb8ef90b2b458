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
	"encoding/json"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// RawJSON is stored as text in the database, and embedded verbatim on the wire
type RawJSON []byte

func JSONString(v any) RawJSON {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func (r RawJSON) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	return r, nil
}

func (r *RawJSON) UnmarshalJSON(b []byte) error {
	if r == nil {
		return i18n.NewError(context.Background(), msgs.MsgTypesNilJSON)
	}
	*r = append((*r)[0:0], b...)
	return nil
}

func (r RawJSON) String() string {
	return string(r)
}

// Unmarshal decodes into the supplied target, treating a nil value as JSON null
func (r RawJSON) Unmarshal(v any) error {
	if r == nil {
		return nil
	}
	return json.Unmarshal(r, v)
}

func (r RawJSON) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return string(r), nil
}

func (r *RawJSON) Scan(src interface{}) error {
	switch s := src.(type) {
	case nil:
		*r = nil
	case string:
		*r = RawJSON(s)
	case []byte:
		*r = append(RawJSON{}, s...)
	default:
		return i18n.NewError(context.Background(), msgs.MsgTypesScanFail, src, r)
	}
	return nil
}
