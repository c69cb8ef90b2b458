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
	"strings"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// RequestNegotiation starts a negotiation with a provider. The provider mints
// its pid when it accepts the request, and the negotiation is only stored
// once that has happened. A caller retrying a failed request passes the same
// consumerPID, which the provider deduplicates on; an empty one is minted.
func (nm *negotiationManager) RequestNegotiation(ctx context.Context, providerAddress string, offer *dsapi.Offer, consumerPID string) (*dsapi.ContractNegotiation, error) {
	if offer == nil {
		return nil, i18n.NewError(ctx, msgs.MsgValidationOfferRequired, "request a negotiation")
	}
	if consumerPID == "" {
		consumerPID = dstypes.NewPID()
	} else if cn, err := nm.existing(ctx, "consumer_pid", consumerPID, dsapi.RoleConsumer); err != nil || cn != nil {
		return cn, err
	}
	ctx = log.WithExchange(ctx, exchangeKind, consumerPID)
	msg, err := dsapi.NewContractRequestMessage(ctx, consumerPID, "", nm.consumerCallback(), offer)
	if err != nil {
		return nil, err
	}

	address := strings.TrimSuffix(providerAddress, "/") + "/negotiations/request"
	var ack dsapi.ContractNegotiationAck
	if err := nm.send(ctx, address, msg, &ack); err != nil {
		return nil, err
	}
	if ack.ConsumerPID != consumerPID {
		return nil, i18n.NewError(ctx, msgs.MsgValidationPIDMismatch, "consumerPid", ack.ConsumerPID, consumerPID)
	}

	return nm.create(ctx, &dsapi.ContractNegotiation{
		ConsumerPID:     consumerPID,
		ProviderPID:     ack.ProviderPID,
		CallbackAddress: providerAddress,
		State:           dsapi.NegotiationStateRequested,
		Offer:           msg.Offer,
		Assigner:        offer.Assigner,
		Role:            dsapi.RoleConsumer,
	})
}

// CounterRequest answers a provider's offer with different terms
func (nm *negotiationManager) CounterRequest(ctx context.Context, id string, offer *dsapi.Offer) (*dsapi.ContractNegotiation, error) {
	if offer == nil {
		return nil, i18n.NewError(ctx, msgs.MsgValidationOfferRequired, "counter an offer")
	}
	cn, err := nm.GetNegotiation(ctx, id)
	if err != nil {
		return nil, err
	}
	var msg *dsapi.ContractRequestMessage
	return nm.applyTransition(ctx, cn, &transition{
		actor: dsapi.RoleConsumer,
		to:    dsapi.NegotiationStateRequested,
		send: func(ctx context.Context, cn *dsapi.ContractNegotiation) (err error) {
			msg, err = dsapi.NewContractRequestMessage(ctx, cn.ConsumerPID, cn.ProviderPID, "", offer)
			if err == nil {
				err = nm.send(ctx, counterpartURL(cn, "request"), msg, nil)
			}
			return err
		},
		update: func(next *dsapi.ContractNegotiation) {
			next.Offer = msg.Offer
		},
	})
}

func (nm *negotiationManager) AcceptOffer(ctx context.Context, id string) (*dsapi.ContractNegotiation, error) {
	cn, err := nm.GetNegotiation(ctx, id)
	if err != nil {
		return nil, err
	}
	return nm.applyTransition(ctx, cn, &transition{
		actor: dsapi.RoleConsumer,
		to:    dsapi.NegotiationStateAccepted,
		send: func(ctx context.Context, cn *dsapi.ContractNegotiation) error {
			return nm.sendEvent(ctx, cn, dsapi.NegotiationEventAccepted)
		},
	})
}

// VerifyNegotiation acknowledges the agreement received from the provider
func (nm *negotiationManager) VerifyNegotiation(ctx context.Context, id string) (*dsapi.ContractNegotiation, error) {
	cn, err := nm.GetNegotiation(ctx, id)
	if err != nil {
		return nil, err
	}
	return nm.applyTransition(ctx, cn, &transition{
		actor: dsapi.RoleConsumer,
		to:    dsapi.NegotiationStateVerified,
		send: func(ctx context.Context, cn *dsapi.ContractNegotiation) error {
			msg, err := dsapi.NewContractAgreementVerificationMessage(ctx, cn.ConsumerPID, cn.ProviderPID)
			if err == nil {
				err = nm.send(ctx, counterpartURL(cn, "agreement/verification"), msg, nil)
			}
			return err
		},
	})
}

func (nm *negotiationManager) sendEvent(ctx context.Context, cn *dsapi.ContractNegotiation, eventType dsapi.NegotiationEventType) error {
	msg, err := dsapi.NewContractNegotiationEventMessage(ctx, cn.ConsumerPID, cn.ProviderPID, eventType)
	if err == nil {
		err = nm.send(ctx, counterpartURL(cn, "events"), msg, nil)
	}
	return err
}

// TerminateNegotiation ends the negotiation from either side
func (nm *negotiationManager) TerminateNegotiation(ctx context.Context, id, code string, reason ...string) (*dsapi.ContractNegotiation, error) {
	cn, err := nm.GetNegotiation(ctx, id)
	if err != nil {
		return nil, err
	}
	return nm.applyTransition(ctx, cn, &transition{
		actor: cn.Role,
		to:    dsapi.NegotiationStateTerminated,
		send: func(ctx context.Context, cn *dsapi.ContractNegotiation) error {
			msg, err := dsapi.NewContractNegotiationTerminationMessage(ctx, cn.ConsumerPID, cn.ProviderPID, code, reason...)
			if err == nil {
				err = nm.send(ctx, counterpartURL(cn, "termination"), msg, nil)
			}
			return err
		},
	})
}
