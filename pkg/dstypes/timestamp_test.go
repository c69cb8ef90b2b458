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
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampJSON(t *testing.T) {
	ts := TimestampFromTime(time.Date(2024, 3, 1, 10, 30, 0, 123, time.UTC))
	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01T10:30:00.000000123Z"`, string(b))

	var ts2 Timestamp
	require.NoError(t, json.Unmarshal(b, &ts2))
	assert.Equal(t, ts, ts2)

	b, err = json.Marshal(Timestamp(0))
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestTimestampParse(t *testing.T) {
	ts, err := ParseTimeString("1709288400")
	require.NoError(t, err)
	assert.Equal(t, int64(1709288400), ts.Time().Unix())

	ts, err = ParseTimeString("1709288400000")
	require.NoError(t, err)
	assert.Equal(t, int64(1709288400), ts.Time().Unix())

	_, err = ParseTimeString("yesterday")
	assert.Regexp(t, "DS010302", err)
}

func TestTimestampScan(t *testing.T) {
	var ts Timestamp
	require.NoError(t, ts.Scan(int64(12345)))
	assert.Equal(t, Timestamp(12345), ts)
	require.NoError(t, ts.Scan(nil))
	assert.Equal(t, Timestamp(0), ts)
	assert.Regexp(t, "DS010303", ts.Scan(false))

	v, err := Timestamp(999).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(999), v)
}

func TestRawJSON(t *testing.T) {
	type wrapper struct {
		Data RawJSON `json:"data"`
	}
	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"data":{"a":[1,2]}}`), &w))
	assert.JSONEq(t, `{"a":[1,2]}`, w.Data.String())

	var decoded map[string][]int
	require.NoError(t, w.Data.Unmarshal(&decoded))
	assert.Equal(t, []int{1, 2}, decoded["a"])

	v, err := w.Data.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2]}`, v)

	var r RawJSON
	require.NoError(t, r.Scan(nil))
	assert.Nil(t, r)
	assert.Regexp(t, "DS010301", r.Scan(1))
	assert.Equal(t, `"x"`, JSONString("x").String())
}
