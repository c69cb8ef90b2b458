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

package dsconf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	f := filepath.Join(t.TempDir(), "conf.yaml")
	err := os.WriteFile(f, []byte(content), 0644)
	require.NoError(t, err)
	return f
}

func TestReadAndParseYAMLFileOK(t *testing.T) {
	f := writeConfig(t, `
connector:
  nodeName: provider1
  callbackAddress: http://provider1:8090
db:
  type: sqlite
  sqlite:
    dsn: ":memory:"
    autoMigrate: true
enforcement:
  enabled: false
  agreementCache:
    capacity: 5
`)
	var conf ConnectorConfig
	err := ReadAndParseYAMLFile(context.Background(), f, &conf)
	require.NoError(t, err)
	assert.Equal(t, "provider1", *conf.Connector.NodeName)
	assert.Equal(t, "http://provider1:8090", *conf.Connector.CallbackAddress)
	assert.Equal(t, "sqlite", conf.DB.Type)
	assert.Equal(t, ":memory:", conf.DB.SQLite.DSN)
	assert.True(t, *conf.DB.SQLite.AutoMigrate)
	assert.False(t, *conf.Enforcement.Enabled)
	assert.Equal(t, 5, *conf.Enforcement.AgreementCache.Capacity)
}

func TestReadAndParseYAMLFileMissing(t *testing.T) {
	var conf ConnectorConfig
	err := ReadAndParseYAMLFile(context.Background(), filepath.Join(t.TempDir(), "none.yaml"), &conf)
	assert.Regexp(t, "DS010100", err)
}

func TestReadAndParseYAMLFileBadYAML(t *testing.T) {
	f := writeConfig(t, "{! not yaml")
	var conf ConnectorConfig
	err := ReadAndParseYAMLFile(context.Background(), f, &conf)
	assert.Regexp(t, "DS010102", err)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("DSC_NODE_NAME", "consumer1")
	t.Setenv("DSC_CALLBACK_ADDRESS", "http://consumer1:8090")
	t.Setenv("DSC_DB_TYPE", "postgres")
	t.Setenv("DSC_DB_DSN", "postgres://localhost/dsc")
	t.Setenv("DSC_ENFORCEMENT_ENABLED", "false")
	t.Setenv("DSC_BLOBSTORE_PATH", "/data/blobs")

	var conf ConnectorConfig
	err := ApplyEnvOverrides(context.Background(), &conf)
	require.NoError(t, err)
	assert.Equal(t, "consumer1", *conf.Connector.NodeName)
	assert.Equal(t, "http://consumer1:8090", *conf.Connector.CallbackAddress)
	assert.Equal(t, "postgres", conf.DB.Type)
	assert.Equal(t, "postgres://localhost/dsc", conf.DB.Postgres.DSN)
	assert.Empty(t, conf.DB.SQLite.DSN)
	assert.False(t, *conf.Enforcement.Enabled)
	assert.Equal(t, "/data/blobs", conf.BlobStore.Path)
}

func TestApplyEnvOverridesBadBool(t *testing.T) {
	t.Setenv("DSC_ENFORCEMENT_ENABLED", "maybe")
	var conf ConnectorConfig
	err := ApplyEnvOverrides(context.Background(), &conf)
	assert.Regexp(t, "DS010103", err)
}

func TestSampleConfigParses(t *testing.T) {
	var conf ConnectorConfig
	err := ReadAndParseYAMLFile(context.Background(), "../../config/dsconnector.sample.yaml", &conf)
	require.NoError(t, err)
	assert.Equal(t, "provider1", *conf.Connector.NodeName)
	assert.Equal(t, "sqlite", conf.DB.Type)
	assert.Equal(t, 8090, *conf.ProtocolServer.Port)
	assert.Equal(t, 9090, *conf.MetricsServer.Port)
	assert.True(t, *conf.MetricsServer.Enabled)
	assert.Equal(t, 1000, *conf.Enforcement.AgreementCache.Capacity)
}
