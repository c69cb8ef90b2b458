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
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

const (
	TypeTransferRequestMessage     = "TransferRequestMessage"
	TypeTransferStartMessage       = "TransferStartMessage"
	TypeTransferCompletionMessage  = "TransferCompletionMessage"
	TypeTransferSuspensionMessage  = "TransferSuspensionMessage"
	TypeTransferTerminationMessage = "TransferTerminationMessage"
	TypeTransferError              = "TransferError"
	TypeTransferProcess            = "TransferProcess"
)

type TransferRequestMessage struct {
	ConsumerPID     string       `json:"consumerPid"`
	AgreementID     string       `json:"agreementId"`
	Format          string       `json:"format"`
	DataAddress     *DataAddress `json:"dataAddress,omitempty"`
	CallbackAddress string       `json:"callbackAddress"`
}

func NewTransferRequestMessage(ctx context.Context, consumerPID, agreementID, format, callbackAddress string, dataAddress *DataAddress) (*TransferRequestMessage, error) {
	m := &TransferRequestMessage{
		ConsumerPID:     consumerPID,
		AgreementID:     agreementID,
		Format:          format,
		DataAddress:     dataAddress,
		CallbackAddress: callbackAddress,
	}
	return build(ctx, m)
}

func (m *TransferRequestMessage) ProtocolType() string { return TypeTransferRequestMessage }

func (m *TransferRequestMessage) Validate(ctx context.Context) error {
	if err := requireFields(ctx, m.ProtocolType(),
		"consumerPid", m.ConsumerPID,
		"agreementId", m.AgreementID,
		"format", m.Format,
		"callbackAddress", m.CallbackAddress,
	); err != nil {
		return err
	}
	if m.Format != FormatHTTPPull {
		return i18n.NewError(ctx, msgs.MsgValidationUnsupportedFormat, m.Format)
	}
	return nil
}

type TransferStartMessage struct {
	ConsumerPID string       `json:"consumerPid"`
	ProviderPID string       `json:"providerPid"`
	DataAddress *DataAddress `json:"dataAddress,omitempty"`
}

func NewTransferStartMessage(ctx context.Context, consumerPID, providerPID string, dataAddress *DataAddress) (*TransferStartMessage, error) {
	m := &TransferStartMessage{ConsumerPID: consumerPID, ProviderPID: providerPID, DataAddress: dataAddress}
	return build(ctx, m)
}

func (m *TransferStartMessage) ProtocolType() string { return TypeTransferStartMessage }

func (m *TransferStartMessage) Validate(ctx context.Context) error {
	if err := requireFields(ctx, m.ProtocolType(), "consumerPid", m.ConsumerPID, "providerPid", m.ProviderPID); err != nil {
		return err
	}
	if m.DataAddress != nil {
		return requireFields(ctx, "DataAddress", "endpoint", m.DataAddress.Endpoint)
	}
	return nil
}

type TransferCompletionMessage struct {
	ConsumerPID string `json:"consumerPid"`
	ProviderPID string `json:"providerPid"`
}

func NewTransferCompletionMessage(ctx context.Context, consumerPID, providerPID string) (*TransferCompletionMessage, error) {
	m := &TransferCompletionMessage{ConsumerPID: consumerPID, ProviderPID: providerPID}
	return build(ctx, m)
}

func (m *TransferCompletionMessage) ProtocolType() string { return TypeTransferCompletionMessage }

func (m *TransferCompletionMessage) Validate(ctx context.Context) error {
	return requireFields(ctx, m.ProtocolType(), "consumerPid", m.ConsumerPID, "providerPid", m.ProviderPID)
}

type TransferSuspensionMessage struct {
	ConsumerPID string   `json:"consumerPid"`
	ProviderPID string   `json:"providerPid"`
	Code        string   `json:"code,omitempty"`
	Reason      []string `json:"reason,omitempty"`
}

func NewTransferSuspensionMessage(ctx context.Context, consumerPID, providerPID, code string, reason ...string) (*TransferSuspensionMessage, error) {
	m := &TransferSuspensionMessage{ConsumerPID: consumerPID, ProviderPID: providerPID, Code: code, Reason: reason}
	return build(ctx, m)
}

func (m *TransferSuspensionMessage) ProtocolType() string { return TypeTransferSuspensionMessage }

func (m *TransferSuspensionMessage) Validate(ctx context.Context) error {
	return requireFields(ctx, m.ProtocolType(), "consumerPid", m.ConsumerPID, "providerPid", m.ProviderPID)
}

type TransferTerminationMessage struct {
	ConsumerPID string   `json:"consumerPid"`
	ProviderPID string   `json:"providerPid"`
	Code        string   `json:"code,omitempty"`
	Reason      []string `json:"reason,omitempty"`
}

func NewTransferTerminationMessage(ctx context.Context, consumerPID, providerPID, code string, reason ...string) (*TransferTerminationMessage, error) {
	m := &TransferTerminationMessage{ConsumerPID: consumerPID, ProviderPID: providerPID, Code: code, Reason: reason}
	return build(ctx, m)
}

func (m *TransferTerminationMessage) ProtocolType() string { return TypeTransferTerminationMessage }

func (m *TransferTerminationMessage) Validate(ctx context.Context) error {
	return requireFields(ctx, m.ProtocolType(), "consumerPid", m.ConsumerPID, "providerPid", m.ProviderPID)
}

type TransferError struct {
	ConsumerPID string   `json:"consumerPid,omitempty"`
	ProviderPID string   `json:"providerPid,omitempty"`
	Code        string   `json:"code"`
	Reason      []string `json:"reason,omitempty"`
}

func NewTransferError(ctx context.Context, consumerPID, providerPID, code string, reason ...string) (*TransferError, error) {
	m := &TransferError{ConsumerPID: consumerPID, ProviderPID: providerPID, Code: code, Reason: reason}
	return build(ctx, m)
}

func (m *TransferError) ProtocolType() string { return TypeTransferError }

func (m *TransferError) Validate(ctx context.Context) error {
	return requireFields(ctx, m.ProtocolType(), "code", m.Code)
}

type TransferProcessAck struct {
	ConsumerPID string        `json:"consumerPid"`
	ProviderPID string        `json:"providerPid"`
	State       TransferState `json:"state"`
}

func (m *TransferProcessAck) ProtocolType() string { return TypeTransferProcess }

func (m *TransferProcessAck) Validate(ctx context.Context) error {
	return requireFields(ctx, m.ProtocolType(), "consumerPid", m.ConsumerPID, "providerPid", m.ProviderPID, "state", string(m.State))
}

func (tp *TransferProcess) Ack() *TransferProcessAck {
	return &TransferProcessAck{ConsumerPID: tp.ConsumerPID, ProviderPID: tp.ProviderPID, State: tp.State}
}
