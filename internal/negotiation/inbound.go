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
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

func checkPIDs(ctx context.Context, cn *dsapi.ContractNegotiation, consumerPID, providerPID string) error {
	if consumerPID != cn.ConsumerPID {
		return i18n.NewError(ctx, msgs.MsgValidationPIDMismatch, "consumerPid", consumerPID, cn.ConsumerPID)
	}
	if providerPID != cn.ProviderPID {
		return i18n.NewError(ctx, msgs.MsgValidationPIDMismatch, "providerPid", providerPID, cn.ProviderPID)
	}
	return nil
}

// loadForMessage finds the negotiation addressed by the path pid, and checks
// the message is about the same exchange
func (nm *negotiationManager) loadForMessage(ctx context.Context, localRole dsapi.Role, pid, consumerPID, providerPID string) (*dsapi.ContractNegotiation, error) {
	cn, err := nm.GetNegotiationByPID(ctx, localRole, pid)
	if err != nil {
		return nil, err
	}
	if err := checkPIDs(ctx, cn, consumerPID, providerPID); err != nil {
		return nil, err
	}
	return cn, nil
}

// existing returns a negotiation already created for a re-delivered initial
// message, or nil when there is none
func (nm *negotiationManager) existing(ctx context.Context, column, pid string, localRole dsapi.Role) (*dsapi.ContractNegotiation, error) {
	cn, err := nm.getNegotiation(ctx, nm.persistence.NOTX(), column, pid, localRole)
	if err != nil && dstypes.ErrorKindOf(err) == dstypes.ErrorKindNotFound {
		return nil, nil
	}
	return cn, err
}

// HandleContractRequest receives an initial request (empty providerPID) or a
// counter request on an existing negotiation
func (nm *negotiationManager) HandleContractRequest(ctx context.Context, providerPID string, msg *dsapi.ContractRequestMessage) (*dsapi.ContractNegotiation, error) {
	if err := msg.Validate(ctx); err != nil {
		return nil, err
	}
	if msg.Offer != nil {
		if err := nm.catalog.ValidateOffer(ctx, msg.Offer); err != nil {
			return nil, err
		}
	}

	var cn *dsapi.ContractNegotiation
	var err error
	if providerPID == "" && msg.ProviderPID == "" {
		cn, err = nm.existing(ctx, "consumer_pid", msg.ConsumerPID, dsapi.RoleProvider)
		if err != nil || cn != nil {
			return cn, err
		}
		cn, err = nm.create(ctx, &dsapi.ContractNegotiation{
			ConsumerPID:     msg.ConsumerPID,
			ProviderPID:     dstypes.NewPID(),
			CallbackAddress: msg.CallbackAddress,
			State:           dsapi.NegotiationStateRequested,
			Offer:           msg.Offer,
			Assigner:        msg.Offer.Assigner,
			Role:            dsapi.RoleProvider,
		})
	} else {
		if providerPID == "" {
			providerPID = msg.ProviderPID
		}
		cn, err = nm.loadForMessage(ctx, dsapi.RoleProvider, providerPID, msg.ConsumerPID, msg.ProviderPID)
		if err != nil {
			return nil, err
		}
		cn, err = nm.applyTransition(ctx, cn, &transition{
			actor: dsapi.RoleConsumer,
			to:    dsapi.NegotiationStateRequested,
			update: func(next *dsapi.ContractNegotiation) {
				if msg.Offer != nil {
					next.Offer = msg.Offer.Copy()
				}
			},
		})
	}
	if err == nil && nm.providerAutoAgree {
		nm.runAuto(ctx, "agreement", cn.ID, nm.ApproveNegotiation)
	}
	return cn, err
}

func (nm *negotiationManager) HandleVerification(ctx context.Context, providerPID string, msg *dsapi.ContractAgreementVerificationMessage) (*dsapi.ContractNegotiation, error) {
	if err := msg.Validate(ctx); err != nil {
		return nil, err
	}
	cn, err := nm.loadForMessage(ctx, dsapi.RoleProvider, providerPID, msg.ConsumerPID, msg.ProviderPID)
	if err != nil {
		return nil, err
	}
	return nm.applyTransition(ctx, cn, &transition{
		actor: dsapi.RoleConsumer,
		to:    dsapi.NegotiationStateVerified,
	})
}

// HandleContractOffer receives an initial offer (empty consumerPID) or a
// counter offer on an existing negotiation
func (nm *negotiationManager) HandleContractOffer(ctx context.Context, consumerPID string, msg *dsapi.ContractOfferMessage) (*dsapi.ContractNegotiation, error) {
	if err := msg.Validate(ctx); err != nil {
		return nil, err
	}

	var cn *dsapi.ContractNegotiation
	var err error
	if consumerPID == "" && msg.ConsumerPID == "" {
		if msg.CallbackAddress == "" {
			return nil, i18n.NewError(ctx, msgs.MsgValidationMissingField, "callbackAddress", msg.ProtocolType())
		}
		cn, err = nm.existing(ctx, "provider_pid", msg.ProviderPID, dsapi.RoleConsumer)
		if err != nil || cn != nil {
			return cn, err
		}
		cn, err = nm.create(ctx, &dsapi.ContractNegotiation{
			ConsumerPID:     dstypes.NewPID(),
			ProviderPID:     msg.ProviderPID,
			CallbackAddress: msg.CallbackAddress,
			State:           dsapi.NegotiationStateOffered,
			Offer:           msg.Offer.Copy(),
			Assigner:        msg.Offer.Assigner,
			Role:            dsapi.RoleConsumer,
		})
	} else {
		if consumerPID == "" {
			consumerPID = msg.ConsumerPID
		}
		cn, err = nm.loadForMessage(ctx, dsapi.RoleConsumer, consumerPID, msg.ConsumerPID, msg.ProviderPID)
		if err != nil {
			return nil, err
		}
		cn, err = nm.applyTransition(ctx, cn, &transition{
			actor: dsapi.RoleProvider,
			to:    dsapi.NegotiationStateOffered,
			update: func(next *dsapi.ContractNegotiation) {
				next.Offer = msg.Offer.Copy()
			},
		})
	}
	if err == nil && nm.consumerAutoAccept {
		nm.runAuto(ctx, "acceptance", cn.ID, nm.AcceptOffer)
	}
	return cn, err
}

// HandleAgreement stores the provider's agreement alongside the AGREED snapshot
func (nm *negotiationManager) HandleAgreement(ctx context.Context, consumerPID string, msg *dsapi.ContractAgreementMessage) (*dsapi.ContractNegotiation, error) {
	if err := msg.Validate(ctx); err != nil {
		return nil, err
	}
	cn, err := nm.loadForMessage(ctx, dsapi.RoleConsumer, consumerPID, msg.ConsumerPID, msg.ProviderPID)
	if err != nil {
		return nil, err
	}
	if cn.AgreementID != "" && cn.AgreementID == msg.Agreement.ID {
		log.L(ctx).Infof("Agreement %s redelivered for negotiation %s in state %s", cn.AgreementID, cn.ID, cn.State)
		return cn, nil
	}
	cn, err = nm.applyTransition(ctx, cn, &transition{
		actor:     dsapi.RoleProvider,
		to:        dsapi.NegotiationStateAgreed,
		agreement: msg.Agreement,
		update: func(next *dsapi.ContractNegotiation) {
			next.AgreementID = msg.Agreement.ID
			next.Assigner = msg.Agreement.Assigner
		},
	})
	if err == nil && nm.consumerAutoAccept {
		nm.runAuto(ctx, "verification", cn.ID, nm.VerifyNegotiation)
	}
	return cn, err
}

// HandleEvent receives ACCEPTED on the provider, and FINALIZED on the consumer
func (nm *negotiationManager) HandleEvent(ctx context.Context, localRole dsapi.Role, pid string, msg *dsapi.ContractNegotiationEventMessage) (*dsapi.ContractNegotiation, error) {
	if err := msg.Validate(ctx); err != nil {
		return nil, err
	}
	var to dsapi.NegotiationState
	switch {
	case msg.EventType == dsapi.NegotiationEventAccepted && localRole == dsapi.RoleProvider:
		to = dsapi.NegotiationStateAccepted
	case msg.EventType == dsapi.NegotiationEventFinalized && localRole == dsapi.RoleConsumer:
		to = dsapi.NegotiationStateFinalized
	default:
		return nil, i18n.NewError(ctx, msgs.MsgValidationEventType, msg.EventType, localRole)
	}
	cn, err := nm.loadForMessage(ctx, localRole, pid, msg.ConsumerPID, msg.ProviderPID)
	if err != nil {
		return nil, err
	}
	cn, err = nm.applyTransition(ctx, cn, &transition{
		actor: localRole.Counterpart(),
		to:    to,
	})
	if err == nil && to == dsapi.NegotiationStateAccepted && nm.providerAutoAgree {
		nm.runAuto(ctx, "agreement", cn.ID, nm.ApproveNegotiation)
	}
	return cn, err
}

func (nm *negotiationManager) HandleTermination(ctx context.Context, localRole dsapi.Role, pid string, msg *dsapi.ContractNegotiationTerminationMessage) (*dsapi.ContractNegotiation, error) {
	if err := msg.Validate(ctx); err != nil {
		return nil, err
	}
	cn, err := nm.loadForMessage(ctx, localRole, pid, msg.ConsumerPID, msg.ProviderPID)
	if err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Negotiation %s terminated by counterpart code=%s reason=%v", cn.ID, msg.Code, msg.Reason)
	return nm.applyTransition(ctx, cn, &transition{
		actor: localRole.Counterpart(),
		to:    dsapi.NegotiationStateTerminated,
	})
}
