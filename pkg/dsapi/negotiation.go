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

package dsapi

import (
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
)

type Role string

const (
	RoleConsumer Role = "CONSUMER"
	RoleProvider Role = "PROVIDER"
)

func (r Role) Enum() dstypes.Enum[Role] {
	return dstypes.Enum[Role](r)
}

func (r Role) Options() []string {
	return []string{
		string(RoleConsumer),
		string(RoleProvider),
	}
}

// Counterpart is the role on the other side of an exchange
func (r Role) Counterpart() Role {
	if r == RoleConsumer {
		return RoleProvider
	}
	return RoleConsumer
}

type NegotiationState string

const (
	NegotiationStateRequested  NegotiationState = "REQUESTED"
	NegotiationStateOffered    NegotiationState = "OFFERED"
	NegotiationStateAccepted   NegotiationState = "ACCEPTED"
	NegotiationStateAgreed     NegotiationState = "AGREED"
	NegotiationStateVerified   NegotiationState = "VERIFIED"
	NegotiationStateFinalized  NegotiationState = "FINALIZED"
	NegotiationStateTerminated NegotiationState = "TERMINATED"
)

func (s NegotiationState) Enum() dstypes.Enum[NegotiationState] {
	return dstypes.Enum[NegotiationState](s)
}

func (s NegotiationState) Options() []string {
	return []string{
		string(NegotiationStateRequested),
		string(NegotiationStateOffered),
		string(NegotiationStateAccepted),
		string(NegotiationStateAgreed),
		string(NegotiationStateVerified),
		string(NegotiationStateFinalized),
		string(NegotiationStateTerminated),
	}
}

func (s NegotiationState) IsTerminal() bool {
	return s == NegotiationStateFinalized || s == NegotiationStateTerminated
}

type ContractNegotiation struct {
	ID              string            `json:"id"`
	ConsumerPID     string            `json:"consumerPid"`
	ProviderPID     string            `json:"providerPid"`
	CallbackAddress string            `json:"callbackAddress,omitempty"`
	State           NegotiationState  `json:"state"`
	Offer           *Offer            `json:"offer,omitempty"`
	AgreementID     string            `json:"agreementId,omitempty"`
	Assigner        string            `json:"assigner,omitempty"`
	Role            Role              `json:"role"`
	Created         dstypes.Timestamp `json:"created"`
	CreatedBy       string            `json:"createdBy,omitempty"`
	LastModified    dstypes.Timestamp `json:"lastModified"`
	LastModifiedBy  string            `json:"lastModifiedBy,omitempty"`
	Version         int64             `json:"version"`
}

// LocalPID is the pid this connector minted for the negotiation
func (cn *ContractNegotiation) LocalPID() string {
	if cn.Role == RoleConsumer {
		return cn.ConsumerPID
	}
	return cn.ProviderPID
}

// CopyWithNewState returns a new snapshot of the negotiation in the given
// state. The audit fields carry over, and the version is left for the store
// to advance when it accepts the write.
func (cn *ContractNegotiation) CopyWithNewState(state NegotiationState, modifiedBy string) *ContractNegotiation {
	c := *cn
	c.State = state
	c.Offer = cn.Offer.Copy()
	c.LastModified = dstypes.TimestampNow()
	c.LastModifiedBy = modifiedBy
	return &c
}
