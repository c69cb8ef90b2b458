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

type NegotiationManager interface {
	ManagerLifecycle

	// Consumer initiated
	RequestNegotiation(ctx context.Context, providerAddress string, offer *dsapi.Offer, consumerPID string) (*dsapi.ContractNegotiation, error)
	CounterRequest(ctx context.Context, id string, offer *dsapi.Offer) (*dsapi.ContractNegotiation, error)
	AcceptOffer(ctx context.Context, id string) (*dsapi.ContractNegotiation, error)
	VerifyNegotiation(ctx context.Context, id string) (*dsapi.ContractNegotiation, error)

	// Provider initiated
	OfferNegotiation(ctx context.Context, consumerAddress string, offer *dsapi.Offer, providerPID string) (*dsapi.ContractNegotiation, error)
	CounterOffer(ctx context.Context, id string, offer *dsapi.Offer) (*dsapi.ContractNegotiation, error)
	ApproveNegotiation(ctx context.Context, id string) (*dsapi.ContractNegotiation, error)
	FinalizeNegotiation(ctx context.Context, id string) (*dsapi.ContractNegotiation, error)

	// Either role
	TerminateNegotiation(ctx context.Context, id, code string, reason ...string) (*dsapi.ContractNegotiation, error)

	// Inbound, received on the provider's protocol endpoints
	HandleContractRequest(ctx context.Context, providerPID string, msg *dsapi.ContractRequestMessage) (*dsapi.ContractNegotiation, error)
	HandleVerification(ctx context.Context, providerPID string, msg *dsapi.ContractAgreementVerificationMessage) (*dsapi.ContractNegotiation, error)

	// Inbound, received on the consumer's callback endpoints
	HandleContractOffer(ctx context.Context, consumerPID string, msg *dsapi.ContractOfferMessage) (*dsapi.ContractNegotiation, error)
	HandleAgreement(ctx context.Context, consumerPID string, msg *dsapi.ContractAgreementMessage) (*dsapi.ContractNegotiation, error)

	// Inbound on either side. localRole is the role this connector plays in the exchange.
	HandleEvent(ctx context.Context, localRole dsapi.Role, pid string, msg *dsapi.ContractNegotiationEventMessage) (*dsapi.ContractNegotiation, error)
	HandleTermination(ctx context.Context, localRole dsapi.Role, pid string, msg *dsapi.ContractNegotiationTerminationMessage) (*dsapi.ContractNegotiation, error)

	GetNegotiation(ctx context.Context, id string) (*dsapi.ContractNegotiation, error)
	GetNegotiationByPID(ctx context.Context, localRole dsapi.Role, pid string) (*dsapi.ContractNegotiation, error)
	ListNegotiations(ctx context.Context, role dsapi.Role) ([]*dsapi.ContractNegotiation, error)
	// GetNegotiationHistory returns every accepted snapshot, oldest first
	GetNegotiationHistory(ctx context.Context, id string) ([]*dsapi.ContractNegotiation, error)
	GetAgreement(ctx context.Context, id string) (*dsapi.Agreement, error)
	// CheckAgreementFinalized confirms a FINALIZED negotiation produced the agreement
	CheckAgreementFinalized(ctx context.Context, agreementID string) error
}
