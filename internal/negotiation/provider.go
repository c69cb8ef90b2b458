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

// OfferNegotiation starts a negotiation with a consumer by making it an offer
func (nm *negotiationManager) OfferNegotiation(ctx context.Context, consumerAddress string, offer *dsapi.Offer, providerPID string) (*dsapi.ContractNegotiation, error) {
	if offer == nil {
		return nil, i18n.NewError(ctx, msgs.MsgValidationOfferRequired, "offer a negotiation")
	}
	if err := nm.catalog.ValidateOffer(ctx, offer); err != nil {
		return nil, err
	}
	if providerPID == "" {
		providerPID = dstypes.NewPID()
	} else if cn, err := nm.existing(ctx, "provider_pid", providerPID, dsapi.RoleProvider); err != nil || cn != nil {
		return cn, err
	}
	ctx = log.WithExchange(ctx, exchangeKind, providerPID)
	msg, err := dsapi.NewContractOfferMessage(ctx, "", providerPID, nm.callbackAddress, offer)
	if err != nil {
		return nil, err
	}

	address := strings.TrimSuffix(consumerAddress, "/") + "/negotiations/offers"
	var ack dsapi.ContractNegotiationAck
	if err := nm.send(ctx, address, msg, &ack); err != nil {
		return nil, err
	}
	if ack.ProviderPID != providerPID {
		return nil, i18n.NewError(ctx, msgs.MsgValidationPIDMismatch, "providerPid", ack.ProviderPID, providerPID)
	}

	return nm.create(ctx, &dsapi.ContractNegotiation{
		ConsumerPID:     ack.ConsumerPID,
		ProviderPID:     providerPID,
		CallbackAddress: consumerAddress,
		State:           dsapi.NegotiationStateOffered,
		Offer:           msg.Offer,
		Assigner:        offer.Assigner,
		Role:            dsapi.RoleProvider,
	})
}

// CounterOffer answers a consumer's request with different terms
func (nm *negotiationManager) CounterOffer(ctx context.Context, id string, offer *dsapi.Offer) (*dsapi.ContractNegotiation, error) {
	if offer == nil {
		return nil, i18n.NewError(ctx, msgs.MsgValidationOfferRequired, "counter a request")
	}
	if err := nm.catalog.ValidateOffer(ctx, offer); err != nil {
		return nil, err
	}
	cn, err := nm.GetNegotiation(ctx, id)
	if err != nil {
		return nil, err
	}
	var msg *dsapi.ContractOfferMessage
	return nm.applyTransition(ctx, cn, &transition{
		actor: dsapi.RoleProvider,
		to:    dsapi.NegotiationStateOffered,
		send: func(ctx context.Context, cn *dsapi.ContractNegotiation) (err error) {
			msg, err = dsapi.NewContractOfferMessage(ctx, cn.ConsumerPID, cn.ProviderPID, "", offer)
			if err == nil {
				err = nm.send(ctx, counterpartURL(cn, "offers"), msg, nil)
			}
			return err
		},
		update: func(next *dsapi.ContractNegotiation) {
			next.Offer = msg.Offer
		},
	})
}

// ApproveNegotiation mints the agreement for the current offer and sends it to
// the consumer. The agreement is stored with the AGREED snapshot.
func (nm *negotiationManager) ApproveNegotiation(ctx context.Context, id string) (*dsapi.ContractNegotiation, error) {
	cn, err := nm.GetNegotiation(ctx, id)
	if err != nil {
		return nil, err
	}
	agreement, err := nm.agreementFor(ctx, cn)
	if err != nil {
		return nil, err
	}
	return nm.applyTransition(ctx, cn, &transition{
		actor:     dsapi.RoleProvider,
		to:        dsapi.NegotiationStateAgreed,
		agreement: agreement,
		send: func(ctx context.Context, cn *dsapi.ContractNegotiation) error {
			msg, err := dsapi.NewContractAgreementMessage(ctx, cn.ConsumerPID, cn.ProviderPID, nm.callbackAddress, agreement)
			if err == nil {
				err = nm.send(ctx, counterpartURL(cn, "agreement"), msg, nil)
			}
			return err
		},
		update: func(next *dsapi.ContractNegotiation) {
			next.AgreementID = agreement.ID
			next.Assigner = agreement.Assigner
		},
	})
}

func (nm *negotiationManager) agreementFor(ctx context.Context, cn *dsapi.ContractNegotiation) (*dsapi.Agreement, error) {
	if cn.Offer == nil {
		return nil, i18n.NewError(ctx, msgs.MsgValidationOfferRequired, "approve a negotiation")
	}
	// An offer need not name its parties, in which case the connectors stand in
	assignee := cn.Offer.Assignee
	if assignee == "" {
		assignee = cn.CallbackAddress
	}
	assigner := cn.Offer.Assigner
	if assigner == "" {
		assigner = nm.nodeName
	}
	a, err := dsapi.NewAgreement(ctx, cn.Offer.Target, assignee, assigner, cn.Offer.Permissions)
	if err != nil {
		return nil, err
	}
	// Approving the same negotiation again resends the same agreement
	a.ID = dstypes.DerivedPID(cn.ProviderPID, cn.ConsumerPID, dstypes.JSONString(cn.Offer).String())
	a.Timestamp = cn.LastModified
	return a, nil
}

func (nm *negotiationManager) FinalizeNegotiation(ctx context.Context, id string) (*dsapi.ContractNegotiation, error) {
	cn, err := nm.GetNegotiation(ctx, id)
	if err != nil {
		return nil, err
	}
	return nm.applyTransition(ctx, cn, &transition{
		actor: dsapi.RoleProvider,
		to:    dsapi.NegotiationStateFinalized,
		send: func(ctx context.Context, cn *dsapi.ContractNegotiation) error {
			return nm.sendEvent(ctx, cn, dsapi.NegotiationEventFinalized)
		},
	})
}
