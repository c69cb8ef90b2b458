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

import "github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/confutil"

// ConnectorIdentityConfig describes how this connector presents itself to
// counterparts.
type ConnectorIdentityConfig struct {
	NodeName *string `json:"nodeName"`
	// Base URL that counterparts use to reach the protocol server. Consumer
	// callbacks are issued beneath "{callbackAddress}/consumer".
	CallbackAddress *string `json:"callbackAddress"`
	// Location reported as the spatial attribute for access requests made by this connector.
	Location *string `json:"location"`
	// Credentials passed as the Authorization header on every outbound protocol call.
	Credentials *string `json:"credentials"`
}

type NegotiationConfig struct {
	// Provider moves REQUESTED straight to AGREED when a request arrives.
	ProviderAutoAgree *bool `json:"providerAutoAgree"`
	// Consumer accepts an incoming offer and verifies an incoming agreement without operator action.
	ConsumerAutoAccept *bool `json:"consumerAutoAccept"`
	// Backoff for the automatic steps, which may race the counterpart persisting its own view.
	AutoRetry RetryConfig `json:"autoRetry"`
}

var NegotiationDefaults = &NegotiationConfig{
	ProviderAutoAgree:  confutil.P(false),
	ConsumerAutoAccept: confutil.P(false),
}

type TransferConfig struct {
	// Maximum bytes read from a counterpart artifact endpoint.
	MaxArtifactSize *string `json:"maxArtifactSize"`
	// Blob store bucket holding downloaded artifacts on the consumer side.
	DownloadBucket *string `json:"downloadBucket"`
	// Blob store bucket holding published artifacts on the provider side.
	ArtifactBucket *string `json:"artifactBucket"`
}

var TransferDefaults = &TransferConfig{
	MaxArtifactSize: confutil.P("100Mb"),
	DownloadBucket:  confutil.P("downloads"),
	ArtifactBucket:  confutil.P("artifacts"),
}

type EnforcementConfig struct {
	// Disabling enforcement grants every access to a started transfer, with a warning logged each time.
	Enabled *bool `json:"enabled"`
	// Purpose declared by this connector when it accesses data, checked by purpose constraints.
	Purpose        *string     `json:"purpose"`
	AgreementCache CacheConfig `json:"agreementCache"`
}

var EnforcementDefaults = &EnforcementConfig{
	Enabled: confutil.P(true),
	AgreementCache: CacheConfig{
		Capacity: confutil.P(1000),
	},
}

type UsageConfig struct {
	Writer FlushWriterConfig `json:"writer"`
}

var UsageDefaults = &UsageConfig{
	Writer: FlushWriterConfig{
		WorkerCount:  confutil.P(4),
		BatchTimeout: confutil.P("25ms"),
		BatchMaxSize: confutil.P(100),
	},
}

type BlobStoreConfig struct {
	// Directory holding the badger files, ignored when InMemory is set.
	Path       string `json:"path"`
	InMemory   *bool  `json:"inMemory"`
	SyncWrites *bool  `json:"syncWrites"`
}

var BlobStoreDefaults = &BlobStoreConfig{
	InMemory:   confutil.P(false),
	SyncWrites: confutil.P(true),
}
