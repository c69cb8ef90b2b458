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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractRequestMessage(t *testing.T) {
	ctx := context.Background()
	o := testOffer(t)

	m, err := NewContractRequestMessage(ctx, "urn:uuid:c1", "", "http://consumer/cb", o)
	require.NoError(t, err)
	assert.Equal(t, TypeContractRequestMessage, m.ProtocolType())
	assert.NotSame(t, o, m.Offer)

	// counter request on an existing negotiation needs no callback
	_, err = NewContractRequestMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", "", o)
	require.NoError(t, err)

	m, err = NewContractRequestMessage(ctx, "urn:uuid:c1", "", "", nil)
	assert.Regexp(t, "DS010401", err)
	assert.Nil(t, m)

	_, err = NewContractRequestMessage(ctx, "urn:uuid:c1", "", "", o)
	assert.Regexp(t, "DS010400.*callbackAddress", err)

	_, err = NewContractRequestMessage(ctx, "", "urn:uuid:p1", "", nil)
	assert.Regexp(t, "DS010400.*consumerPid", err)
}

func TestNegotiationMessages(t *testing.T) {
	ctx := context.Background()
	o := testOffer(t)
	a, err := NewAgreement(ctx, o.Target, "urn:consumer", "urn:provider", o.Permissions)
	require.NoError(t, err)

	_, err = NewContractOfferMessage(ctx, "", "urn:uuid:p1", "http://provider", o)
	require.NoError(t, err)
	_, err = NewContractOfferMessage(ctx, "", "urn:uuid:p1", "http://provider", nil)
	assert.Regexp(t, "DS010400.*offer", err)

	_, err = NewContractAgreementMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", "", a)
	require.NoError(t, err)
	_, err = NewContractAgreementMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", "", nil)
	assert.Regexp(t, "DS010400.*agreement", err)

	_, err = NewContractAgreementVerificationMessage(ctx, "urn:uuid:c1", "")
	assert.Regexp(t, "DS010400.*providerPid", err)

	ev, err := NewContractNegotiationEventMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", NegotiationEventFinalized)
	require.NoError(t, err)
	assert.Equal(t, TypeContractNegotiationEventMessage, ev.ProtocolType())
	_, err = NewContractNegotiationEventMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", "REJECTED")
	assert.Regexp(t, "DS010402", err)

	tm, err := NewContractNegotiationTerminationMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", "1", "no longer needed")
	require.NoError(t, err)
	assert.Equal(t, []string{"no longer needed"}, tm.Reason)

	_, err = NewContractNegotiationErrorMessage(ctx, "urn:uuid:c1", "", "", nil, nil)
	assert.Regexp(t, "DS010400.*code", err)
}

func TestTransferMessages(t *testing.T) {
	ctx := context.Background()

	m, err := NewTransferRequestMessage(ctx, "urn:uuid:c1", "urn:uuid:a1", FormatHTTPPull, "http://consumer/cb", nil)
	require.NoError(t, err)
	assert.Equal(t, TypeTransferRequestMessage, m.ProtocolType())

	_, err = NewTransferRequestMessage(ctx, "urn:uuid:c1", "urn:uuid:a1", "HttpData-PUSH", "http://consumer/cb", nil)
	assert.Regexp(t, "DS010408", err)

	_, err = NewTransferRequestMessage(ctx, "urn:uuid:c1", "", FormatHTTPPull, "http://consumer/cb", nil)
	assert.Regexp(t, "DS010400.*agreementId", err)

	_, err = NewTransferStartMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", &DataAddress{})
	assert.Regexp(t, "DS010400.*endpoint", err)

	_, err = NewTransferCompletionMessage(ctx, "", "urn:uuid:p1")
	assert.Regexp(t, "DS010400.*consumerPid", err)

	sm, err := NewTransferSuspensionMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", "pause", "maintenance")
	require.NoError(t, err)
	assert.Equal(t, "pause", sm.Code)

	_, err = NewTransferTerminationMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", "")
	require.NoError(t, err)

	_, err = NewTransferError(ctx, "", "", "")
	assert.Regexp(t, "DS010400.*code", err)
}

func TestCopyWithNewState(t *testing.T) {
	tp := &TransferProcess{
		ID:          "urn:uuid:p1",
		ConsumerPID: "urn:uuid:c1",
		ProviderPID: "urn:uuid:p1",
		State:       TransferStateRequested,
		Role:        RoleProvider,
		Version:     3,
		CreatedBy:   "provider1",
		DataAddress: &DataAddress{Endpoint: "http://x", EndpointProperties: []EndpointProperty{{Name: EndpointPropAuthorization, Value: "Bearer x"}}},
	}
	c := tp.CopyWithNewState(TransferStateStarted, "provider1")
	assert.Equal(t, TransferStateRequested, tp.State)
	assert.Equal(t, TransferStateStarted, c.State)
	assert.Equal(t, int64(3), c.Version)
	assert.Equal(t, "provider1", c.CreatedBy)
	assert.Equal(t, "Bearer x", c.DataAddress.Property(EndpointPropAuthorization))
	c.DataAddress.EndpointProperties[0].Value = "changed"
	assert.Equal(t, "Bearer x", tp.DataAddress.Property(EndpointPropAuthorization))
	assert.Equal(t, "urn:uuid:p1", tp.LocalPID())
	assert.True(t, TransferStateCompleted.IsTerminal())

	cn := &ContractNegotiation{ConsumerPID: "c", ProviderPID: "p", Role: RoleConsumer, State: NegotiationStateOffered}
	cc := cn.CopyWithNewState(NegotiationStateAccepted, "consumer1")
	assert.Equal(t, NegotiationStateOffered, cn.State)
	assert.Equal(t, NegotiationStateAccepted, cc.State)
	assert.Equal(t, "c", cc.LocalPID())
	assert.Equal(t, NegotiationStateAccepted, cc.Ack().State)
	assert.True(t, NegotiationStateFinalized.IsTerminal())
	assert.False(t, NegotiationStateVerified.IsTerminal())
}
