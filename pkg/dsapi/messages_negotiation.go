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
	"context"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// ProtocolMessage is implemented by every message exchanged between connectors
type ProtocolMessage interface {
	ProtocolType() string
	Validate(ctx context.Context) error
}

// build returns the message only if it validates, so a failed construction
// never yields a partial value.
func build[M ProtocolMessage](ctx context.Context, m M) (M, error) {
	if err := m.Validate(ctx); err != nil {
		return *new(M), err
	}
	return m, nil
}

const (
	TypeContractRequestMessage                = "ContractRequestMessage"
	TypeContractOfferMessage                  = "ContractOfferMessage"
	TypeContractAgreementMessage              = "ContractAgreementMessage"
	TypeContractAgreementVerificationMessage  = "ContractAgreementVerificationMessage"
	TypeContractNegotiationEventMessage       = "ContractNegotiationEventMessage"
	TypeContractNegotiationTerminationMessage = "ContractNegotiationTerminationMessage"
	TypeContractNegotiationErrorMessage       = "ContractNegotiationError"
	TypeContractNegotiation                   = "ContractNegotiation"
)

type NegotiationEventType string

const (
	NegotiationEventAccepted  NegotiationEventType = "ACCEPTED"
	NegotiationEventFinalized NegotiationEventType = "FINALIZED"
)

func (et NegotiationEventType) Enum() dstypes.Enum[NegotiationEventType] {
	return dstypes.Enum[NegotiationEventType](et)
}

func (et NegotiationEventType) Options() []string {
	return []string{
		string(NegotiationEventAccepted),
		string(NegotiationEventFinalized),
	}
}

type ContractRequestMessage struct {
	ConsumerPID     string `json:"consumerPid"`
	ProviderPID     string `json:"providerPid,omitempty"`
	CallbackAddress string `json:"callbackAddress,omitempty"`
	Offer           *Offer `json:"offer,omitempty"`
}

// NewContractRequestMessage builds an initial request (no providerPid, with an
// offer and callback) or a counter request on an existing negotiation.
func NewContractRequestMessage(ctx context.Context, consumerPID, providerPID, callbackAddress string, offer *Offer) (*ContractRequestMessage, error) {
	m := &ContractRequestMessage{
		ConsumerPID:     consumerPID,
		ProviderPID:     providerPID,
		CallbackAddress: callbackAddress,
		Offer:           offer.Copy(),
	}
	return build(ctx, m)
}

func (m *ContractRequestMessage) ProtocolType() string { return TypeContractRequestMessage }

func (m *ContractRequestMessage) Validate(ctx context.Context) error {
	if err := requireFields(ctx, m.ProtocolType(), "consumerPid", m.ConsumerPID); err != nil {
		return err
	}
	if m.ProviderPID == "" && m.Offer == nil {
		return i18n.NewError(ctx, msgs.MsgValidationRequestNeedsPIDOrOffer)
	}
	if m.ProviderPID == "" {
		if err := requireFields(ctx, m.ProtocolType(), "callbackAddress", m.CallbackAddress); err != nil {
			return err
		}
	}
	if m.Offer != nil {
		return m.Offer.Validate(ctx)
	}
	return nil
}

type ContractOfferMessage struct {
	ConsumerPID     string `json:"consumerPid,omitempty"`
	ProviderPID     string `json:"providerPid"`
	CallbackAddress string `json:"callbackAddress,omitempty"`
	Offer           *Offer `json:"offer"`
}

func NewContractOfferMessage(ctx context.Context, consumerPID, providerPID, callbackAddress string, offer *Offer) (*ContractOfferMessage, error) {
	m := &ContractOfferMessage{
		ConsumerPID:     consumerPID,
		ProviderPID:     providerPID,
		CallbackAddress: callbackAddress,
		Offer:           offer.Copy(),
	}
	return build(ctx, m)
}

func (m *ContractOfferMessage) ProtocolType() string { return TypeContractOfferMessage }

func (m *ContractOfferMessage) Validate(ctx context.Context) error {
	if err := requireFields(ctx, m.ProtocolType(), "providerPid", m.ProviderPID); err != nil {
		return err
	}
	if m.Offer == nil {
		return i18n.NewError(ctx, msgs.MsgValidationMissingField, "offer", m.ProtocolType())
	}
	return m.Offer.Validate(ctx)
}

type ContractAgreementMessage struct {
	ConsumerPID     string     `json:"consumerPid"`
	ProviderPID     string     `json:"providerPid"`
	CallbackAddress string     `json:"callbackAddress,omitempty"`
	Agreement       *Agreement `json:"agreement"`
}

func NewContractAgreementMessage(ctx context.Context, consumerPID, providerPID, callbackAddress string, agreement *Agreement) (*ContractAgreementMessage, error) {
	m := &ContractAgreementMessage{
		ConsumerPID:     consumerPID,
		ProviderPID:     providerPID,
		CallbackAddress: callbackAddress,
		Agreement:       agreement,
	}
	return build(ctx, m)
}

func (m *ContractAgreementMessage) ProtocolType() string { return TypeContractAgreementMessage }

func (m *ContractAgreementMessage) Validate(ctx context.Context) error {
	if err := requireFields(ctx, m.ProtocolType(), "consumerPid", m.ConsumerPID, "providerPid", m.ProviderPID); err != nil {
		return err
	}
	if m.Agreement == nil {
		return i18n.NewError(ctx, msgs.MsgValidationMissingField, "agreement", m.ProtocolType())
	}
	return m.Agreement.Validate(ctx)
}

type ContractAgreementVerificationMessage struct {
	ConsumerPID string `json:"consumerPid"`
	ProviderPID string `json:"providerPid"`
}

func NewContractAgreementVerificationMessage(ctx context.Context, consumerPID, providerPID string) (*ContractAgreementVerificationMessage, error) {
	m := &ContractAgreementVerificationMessage{ConsumerPID: consumerPID, ProviderPID: providerPID}
	return build(ctx, m)
}

func (m *ContractAgreementVerificationMessage) ProtocolType() string {
	return TypeContractAgreementVerificationMessage
}

func (m *ContractAgreementVerificationMessage) Validate(ctx context.Context) error {
	return requireFields(ctx, m.ProtocolType(), "consumerPid", m.ConsumerPID, "providerPid", m.ProviderPID)
}

type ContractNegotiationEventMessage struct {
	ConsumerPID string               `json:"consumerPid"`
	ProviderPID string               `json:"providerPid"`
	EventType   NegotiationEventType `json:"eventType"`
}

func NewContractNegotiationEventMessage(ctx context.Context, consumerPID, providerPID string, eventType NegotiationEventType) (*ContractNegotiationEventMessage, error) {
	m := &ContractNegotiationEventMessage{ConsumerPID: consumerPID, ProviderPID: providerPID, EventType: eventType}
	return build(ctx, m)
}

func (m *ContractNegotiationEventMessage) ProtocolType() string {
	return TypeContractNegotiationEventMessage
}

func (m *ContractNegotiationEventMessage) Validate(ctx context.Context) error {
	if err := requireFields(ctx, m.ProtocolType(), "consumerPid", m.ConsumerPID, "providerPid", m.ProviderPID, "eventType", string(m.EventType)); err != nil {
		return err
	}
	if _, err := m.EventType.Enum().Validate(); err != nil {
		return i18n.WrapError(ctx, err, msgs.MsgValidationInvalidEnum, m.EventType, "eventType")
	}
	return nil
}

type ContractNegotiationTerminationMessage struct {
	ConsumerPID string   `json:"consumerPid"`
	ProviderPID string   `json:"providerPid"`
	Code        string   `json:"code,omitempty"`
	Reason      []string `json:"reason,omitempty"`
}

func NewContractNegotiationTerminationMessage(ctx context.Context, consumerPID, providerPID, code string, reason ...string) (*ContractNegotiationTerminationMessage, error) {
	m := &ContractNegotiationTerminationMessage{ConsumerPID: consumerPID, ProviderPID: providerPID, Code: code, Reason: reason}
	return build(ctx, m)
}

func (m *ContractNegotiationTerminationMessage) ProtocolType() string {
	return TypeContractNegotiationTerminationMessage
}

func (m *ContractNegotiationTerminationMessage) Validate(ctx context.Context) error {
	return requireFields(ctx, m.ProtocolType(), "consumerPid", m.ConsumerPID, "providerPid", m.ProviderPID)
}

type ContractNegotiationErrorMessage struct {
	ConsumerPID string   `json:"consumerPid,omitempty"`
	ProviderPID string   `json:"providerPid,omitempty"`
	Code        string   `json:"code"`
	Reason      []string `json:"reason,omitempty"`
	Description []string `json:"description,omitempty"`
}

func NewContractNegotiationErrorMessage(ctx context.Context, consumerPID, providerPID, code string, reason, description []string) (*ContractNegotiationErrorMessage, error) {
	m := &ContractNegotiationErrorMessage{
		ConsumerPID: consumerPID,
		ProviderPID: providerPID,
		Code:        code,
		Reason:      reason,
		Description: description,
	}
	return build(ctx, m)
}

func (m *ContractNegotiationErrorMessage) ProtocolType() string {
	return TypeContractNegotiationErrorMessage
}

func (m *ContractNegotiationErrorMessage) Validate(ctx context.Context) error {
	return requireFields(ctx, m.ProtocolType(), "code", m.Code)
}

// ContractNegotiationAck is the body a connector returns to acknowledge a
// negotiation message, describing its own view of the negotiation.
type ContractNegotiationAck struct {
	ConsumerPID string           `json:"consumerPid"`
	ProviderPID string           `json:"providerPid"`
	State       NegotiationState `json:"state"`
}

func (m *ContractNegotiationAck) ProtocolType() string { return TypeContractNegotiation }

func (m *ContractNegotiationAck) Validate(ctx context.Context) error {
	return requireFields(ctx, m.ProtocolType(), "consumerPid", m.ConsumerPID, "providerPid", m.ProviderPID, "state", string(m.State))
}

func (cn *ContractNegotiation) Ack() *ContractNegotiationAck {
	return &ContractNegotiationAck{ConsumerPID: cn.ConsumerPID, ProviderPID: cn.ProviderPID, State: cn.State}
}
