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

package negotiation

import (
	"context"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

var (
	consumerOnly = []dsapi.Role{dsapi.RoleConsumer}
	providerOnly = []dsapi.Role{dsapi.RoleProvider}
	eitherRole   = []dsapi.Role{dsapi.RoleConsumer, dsapi.RoleProvider}
)

// transitions maps from -> to -> the roles that may drive the transition.
// The driving role is the party that sends the message causing it, so a
// consumer's record moves to AGREED when the provider's agreement arrives.
var transitions = map[dsapi.NegotiationState]map[dsapi.NegotiationState][]dsapi.Role{
	dsapi.NegotiationStateRequested: {
		dsapi.NegotiationStateOffered:    providerOnly,
		dsapi.NegotiationStateAgreed:     providerOnly,
		dsapi.NegotiationStateTerminated: eitherRole,
	},
	dsapi.NegotiationStateOffered: {
		dsapi.NegotiationStateRequested:  consumerOnly,
		dsapi.NegotiationStateAccepted:   consumerOnly,
		dsapi.NegotiationStateTerminated: eitherRole,
	},
	dsapi.NegotiationStateAccepted: {
		dsapi.NegotiationStateAgreed:     providerOnly,
		dsapi.NegotiationStateTerminated: eitherRole,
	},
	dsapi.NegotiationStateAgreed: {
		dsapi.NegotiationStateVerified:   consumerOnly,
		dsapi.NegotiationStateTerminated: eitherRole,
	},
	dsapi.NegotiationStateVerified: {
		dsapi.NegotiationStateFinalized:  providerOnly,
		dsapi.NegotiationStateTerminated: eitherRole,
	},
}

// CheckTransition fails with an IllegalStateTransition error if the table
// does not allow from -> to, or if the actor is not permitted to drive it
func CheckTransition(ctx context.Context, actor dsapi.Role, from, to dsapi.NegotiationState) error {
	roles, ok := transitions[from][to]
	if !ok {
		return i18n.NewError(ctx, msgs.MsgStateIllegalTransition, from, to, "contract negotiation")
	}
	for _, r := range roles {
		if r == actor {
			return nil
		}
	}
	return i18n.NewError(ctx, msgs.MsgStateRoleForbidden, actor, "contract negotiation", from, to)
}
