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
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
)

type ConsumptionEvent struct {
	AgreementID string            `json:"agreementId"`
	TransferID  string            `json:"transferId"`
	Action      dsapi.Action      `json:"action"`
	Timestamp   dstypes.Timestamp `json:"timestamp"`
}

// UsageTracker keeps the running access tally per agreement.
type UsageTracker interface {
	ManagerLifecycle
	// Publish records the event asynchronously and never blocks the caller on the database
	Publish(ctx context.Context, ev *ConsumptionEvent)
	CurrentCount(ctx context.Context, agreementID string) (int64, error)
	ResetCount(ctx context.Context, agreementID string) error
}
