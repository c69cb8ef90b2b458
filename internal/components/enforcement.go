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
	"context"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
)

type AccessKind string

const (
	AccessDownload AccessKind = "download"
	AccessView     AccessKind = "view"
)

// EnforcementGate re-validates the governing agreement before any artifact bytes are released
// AccessGrant is an access the gate allowed. The consumption it represents is
// only recorded once the data has been released.
type AccessGrant struct {
	AgreementID string
	TransferID  string
	Action      dsapi.Action
}

type EnforcementGate interface {
	ManagerLifecycle
	// CheckAccess returns a PolicyViolation error when access must be refused
	CheckAccess(ctx context.Context, tp *dsapi.TransferProcess, kind AccessKind) (*AccessGrant, error)
	// RecordConsumption publishes the consumption event for a grant whose data was released
	RecordConsumption(ctx context.Context, grant *AccessGrant)
}
