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
	"strconv"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/caarlos0/env/v11"
	"github.com/hyperledger/firefly-common/pkg/i18n"

	"sigs.k8s.io/yaml" // supports JSON tags, so the same structs serve YAML and JSON
)

type ConnectorConfig struct {
	Connector      ConnectorIdentityConfig `json:"connector"`
	Log            LogConfig               `json:"log"`
	DB             DBConfig                `json:"db"`
	ProtocolServer HTTPServerConfig        `json:"protocolServer"`
	APIServer      HTTPServerConfig        `json:"apiServer"`
	MetricsServer  MetricsServerConfig     `json:"metricsServer"`
	ProtocolClient HTTPClientConfig        `json:"protocolClient"`
	Negotiation    NegotiationConfig       `json:"negotiation"`
	Transfer       TransferConfig          `json:"transfer"`
	Enforcement    EnforcementConfig       `json:"enforcement"`
	Usage          UsageConfig             `json:"usage"`
	BlobStore      BlobStoreConfig         `json:"blobStore"`
}

// EnvOverrides are the settings most commonly varied per deployment, read
// from DSC_ prefixed environment variables after the config file.
type EnvOverrides struct {
	NodeName           string `env:"NODE_NAME"`
	CallbackAddress    string `env:"CALLBACK_ADDRESS"`
	DBType             string `env:"DB_TYPE"`
	DBDSN              string `env:"DB_DSN"`
	EnforcementEnabled string `env:"ENFORCEMENT_ENABLED"`
	BlobStorePath      string `env:"BLOBSTORE_PATH"`
}

const EnvPrefix = "DSC_"

func ReadAndParseYAMLFile(ctx context.Context, filePath string, config interface{}) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return i18n.NewError(ctx, msgs.MsgConfigFileMissing, filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return i18n.NewError(ctx, msgs.MsgConfigFileReadError, filePath, err.Error())
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return i18n.NewError(ctx, msgs.MsgConfigFileParseError, err.Error())
	}

	return nil
}

func ApplyEnvOverrides(ctx context.Context, conf *ConnectorConfig) error {
	var overrides EnvOverrides
	if err := env.ParseWithOptions(&overrides, env.Options{Prefix: EnvPrefix}); err != nil {
		return i18n.NewError(ctx, msgs.MsgConfigEnvParseError, err.Error())
	}
	if overrides.NodeName != "" {
		conf.Connector.NodeName = &overrides.NodeName
	}
	if overrides.CallbackAddress != "" {
		conf.Connector.CallbackAddress = &overrides.CallbackAddress
	}
	if overrides.DBType != "" {
		conf.DB.Type = overrides.DBType
	}
	if overrides.DBDSN != "" {
		switch conf.DB.Type {
		case "postgres":
			conf.DB.Postgres.DSN = overrides.DBDSN
		default:
			conf.DB.SQLite.DSN = overrides.DBDSN
		}
	}
	if overrides.EnforcementEnabled != "" {
		enabled, err := strconv.ParseBool(overrides.EnforcementEnabled)
		if err != nil {
			return i18n.NewError(ctx, msgs.MsgConfigEnvParseError, err.Error())
		}
		conf.Enforcement.Enabled = &enabled
	}
	if overrides.BlobStorePath != "" {
		conf.BlobStore.Path = overrides.BlobStorePath
	}
	return nil
}
