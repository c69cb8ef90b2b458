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

package components

import (
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/metrics"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/persistence"
)

// PreInitComponents are initialized before managers, and do not depend on any
// other component.
type PreInitComponents interface {
	Config() *dsconf.ConnectorConfig
	Persistence() persistence.Persistence
	BlobStore() BlobStore
	ProtocolClient() ProtocolClient
	Metrics() metrics.ConnectorMetrics
}

// Managers are initialized after the base components. Their mockable interfaces
// live in this package so they can call each other.
type Managers interface {
	CatalogManager() CatalogManager
	UsageTracker() UsageTracker
	NegotiationManager() NegotiationManager
	TransferManager() TransferManager
	EnforcementGate() EnforcementGate
}

// All managers conform to a standard lifecycle
type ManagerLifecycle interface {
	// PreInit only depends on the configuration and base components
	PreInit(pic PreInitComponents) error
	// PostInit cross-binds to other managers
	PostInit(c AllComponents) error
	Start() error
	Stop()
}

type AllComponents interface {
	PreInitComponents
	Managers
}
