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

package transfer

import (
	"context"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

var transitions = map[dsapi.TransferState][]dsapi.TransferState{
	dsapi.TransferStateRequested: {dsapi.TransferStateStarted, dsapi.TransferStateTerminated},
	dsapi.TransferStateStarted:   {dsapi.TransferStateCompleted, dsapi.TransferStateSuspended, dsapi.TransferStateTerminated},
	dsapi.TransferStateSuspended: {dsapi.TransferStateStarted, dsapi.TransferStateTerminated},
}

// CheckTransition fails with an IllegalStateTransition error if from -> to is
// not in the table. Either party may drive any legal transfer transition,
// except that only the provider starts a transfer that is still REQUESTED.
func CheckTransition(ctx context.Context, actor dsapi.Role, from, to dsapi.TransferState) error {
	legal := false
	for _, s := range transitions[from] {
		if s == to {
			legal = true
			break
		}
	}
	if !legal {
		return i18n.NewError(ctx, msgs.MsgStateIllegalTransition, from, to, "transfer process")
	}
	if from == dsapi.TransferStateRequested && to == dsapi.TransferStateStarted && actor != dsapi.RoleProvider {
		return i18n.NewError(ctx, msgs.MsgStateRoleForbidden, actor, "transfer process", from, to)
	}
	return nil
}
