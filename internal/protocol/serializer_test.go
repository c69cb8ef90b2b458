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

package protocol

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOffer(t *testing.T) *dsapi.Offer {
	ctx := context.Background()
	p, err := dsapi.NewPermission(ctx, dsapi.ActionUse, "urn:dataset:1",
		dsapi.Constraint{LeftOperand: dsapi.LeftOperandCount, Operator: dsapi.OperatorLTEQ, RightOperand: "5"},
		dsapi.Constraint{LeftOperand: dsapi.LeftOperandPurpose, Operator: dsapi.OperatorIsAnyOf, RightOperand: "research"},
	)
	require.NoError(t, err)
	o, err := dsapi.NewOffer(ctx, "urn:uuid:offer1", "urn:dataset:1", "urn:provider", "urn:consumer", *p)
	require.NoError(t, err)
	return o
}

func TestContractRequestProtocolShape(t *testing.T) {
	ctx := context.Background()
	msg, err := dsapi.NewContractRequestMessage(ctx, "urn:uuid:c1", "", "https://consumer.example.com/consumer", testOffer(t))
	require.NoError(t, err)

	b, err := ToProtocolJSON(ctx, msg, msg.ProtocolType())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"@context": ["https://w3id.org/dspace/2024/1/context.json"],
		"@type": "dspace:ContractRequestMessage",
		"dspace:consumerPid": "urn:uuid:c1",
		"dspace:callbackAddress": "https://consumer.example.com/consumer",
		"dspace:offer": {
			"@type": "odrl:Offer",
			"@id": "urn:uuid:offer1",
			"odrl:target": "urn:dataset:1",
			"odrl:assigner": "urn:provider",
			"odrl:assignee": "urn:consumer",
			"odrl:permission": [{
				"odrl:action": "odrl:use",
				"odrl:target": "urn:dataset:1",
				"odrl:constraint": [
					{"odrl:leftOperand": "odrl:count", "odrl:operator": "odrl:lteq", "odrl:rightOperand": "5"},
					{"odrl:leftOperand": "odrl:purpose", "odrl:operator": "odrl:isAnyOf", "odrl:rightOperand": "research"}
				]
			}]
		}
	}`, string(b))

	var parsed dsapi.ContractRequestMessage
	require.NoError(t, FromProtocolJSON(ctx, b, dsapi.TypeContractRequestMessage, &parsed))
	assert.Equal(t, msg.ConsumerPID, parsed.ConsumerPID)
	assert.True(t, msg.Offer.Equal(parsed.Offer))
}

func TestAgreementProtocolRoundTrip(t *testing.T) {
	ctx := context.Background()
	offer := testOffer(t)
	agreement, err := dsapi.NewAgreement(ctx, offer.Target, offer.Assignee, offer.Assigner, offer.Permissions)
	require.NoError(t, err)
	msg, err := dsapi.NewContractAgreementMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", "https://provider.example.com", agreement)
	require.NoError(t, err)

	b, err := ToProtocolJSON(ctx, msg, msg.ProtocolType())
	require.NoError(t, err)

	var parsed dsapi.ContractAgreementMessage
	require.NoError(t, FromProtocolJSON(ctx, b, dsapi.TypeContractAgreementMessage, &parsed))
	assert.True(t, agreement.Equal(parsed.Agreement))
	assert.Equal(t, agreement.Timestamp.Time().UnixMilli(), parsed.Agreement.Timestamp.Time().UnixMilli())
}

func TestMessagesProtocolRoundTrip(t *testing.T) {
	ctx := context.Background()
	da := &dsapi.DataAddress{
		EndpointType: dsapi.EndpointTypeHTTP,
		Endpoint:     "https://provider.example.com/artifacts/abc",
		EndpointProperties: []dsapi.EndpointProperty{
			{Name: dsapi.EndpointPropAuthorization, Value: "Bearer xyz"},
		},
	}

	messages := []dsapi.ProtocolMessage{}
	add := func(m dsapi.ProtocolMessage, err error) {
		require.NoError(t, err)
		messages = append(messages, m)
	}
	add(dsapi.NewContractOfferMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", "", testOffer(t)))
	add(dsapi.NewContractAgreementVerificationMessage(ctx, "urn:uuid:c1", "urn:uuid:p1"))
	add(dsapi.NewContractNegotiationEventMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", dsapi.NegotiationEventFinalized))
	add(dsapi.NewContractNegotiationTerminationMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", "409", "no longer needed"))
	add(dsapi.NewContractNegotiationErrorMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", "400", []string{"bad"}, []string{"details"}))
	add(dsapi.NewTransferRequestMessage(ctx, "urn:uuid:c1", "urn:uuid:a1", dsapi.FormatHTTPPull, "https://consumer.example.com/consumer", nil))
	add(dsapi.NewTransferStartMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", da))
	add(dsapi.NewTransferCompletionMessage(ctx, "urn:uuid:c1", "urn:uuid:p1"))
	add(dsapi.NewTransferSuspensionMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", "1", "maintenance"))
	add(dsapi.NewTransferTerminationMessage(ctx, "urn:uuid:c1", "urn:uuid:p1", "2", "done"))
	add(dsapi.NewTransferError(ctx, "urn:uuid:c1", "urn:uuid:p1", "403", "denied"))

	for _, m := range messages {
		b, err := ToProtocolJSON(ctx, m, m.ProtocolType())
		require.NoError(t, err)

		parsed := newEmpty(m)
		require.NoError(t, FromProtocolJSON(ctx, b, m.ProtocolType(), parsed), m.ProtocolType())
		assert.Equal(t, m, parsed, m.ProtocolType())
	}
}

func newEmpty(m dsapi.ProtocolMessage) dsapi.ProtocolMessage {
	switch m.(type) {
	case *dsapi.ContractOfferMessage:
		return &dsapi.ContractOfferMessage{}
	case *dsapi.ContractAgreementVerificationMessage:
		return &dsapi.ContractAgreementVerificationMessage{}
	case *dsapi.ContractNegotiationEventMessage:
		return &dsapi.ContractNegotiationEventMessage{}
	case *dsapi.ContractNegotiationTerminationMessage:
		return &dsapi.ContractNegotiationTerminationMessage{}
	case *dsapi.ContractNegotiationErrorMessage:
		return &dsapi.ContractNegotiationErrorMessage{}
	case *dsapi.TransferRequestMessage:
		return &dsapi.TransferRequestMessage{}
	case *dsapi.TransferStartMessage:
		return &dsapi.TransferStartMessage{}
	case *dsapi.TransferCompletionMessage:
		return &dsapi.TransferCompletionMessage{}
	case *dsapi.TransferSuspensionMessage:
		return &dsapi.TransferSuspensionMessage{}
	case *dsapi.TransferTerminationMessage:
		return &dsapi.TransferTerminationMessage{}
	default:
		return &dsapi.TransferError{}
	}
}

func TestEventAndStateValuesPrefixed(t *testing.T) {
	ctx := context.Background()
	ack := (&dsapi.ContractNegotiation{ConsumerPID: "c", ProviderPID: "p", State: dsapi.NegotiationStateAgreed}).Ack()
	b, err := ToProtocolJSON(ctx, ack, ack.ProtocolType())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "dspace:AGREED", raw["dspace:state"])
	assert.Equal(t, "dspace:ContractNegotiation", raw["@type"])

	var parsed dsapi.ContractNegotiationAck
	require.NoError(t, FromProtocolJSON(ctx, b, dsapi.TypeContractNegotiation, &parsed))
	assert.Equal(t, dsapi.NegotiationStateAgreed, parsed.State)
}

func TestFromProtocolJSONUnprefixedType(t *testing.T) {
	var parsed dsapi.TransferCompletionMessage
	err := FromProtocolJSON(context.Background(), []byte(`{
		"@type": "TransferCompletionMessage",
		"dspace:consumerPid": "c",
		"providerPid": "p"
	}`), dsapi.TypeTransferCompletionMessage, &parsed)
	require.NoError(t, err)
	assert.Equal(t, "c", parsed.ConsumerPID)
	assert.Equal(t, "p", parsed.ProviderPID)
}

func TestFromProtocolJSONErrors(t *testing.T) {
	ctx := context.Background()
	var parsed dsapi.TransferCompletionMessage

	err := FromProtocolJSON(ctx, []byte(`!json`), dsapi.TypeTransferCompletionMessage, &parsed)
	assert.Regexp(t, "DS010406", err)

	err = FromProtocolJSON(ctx, []byte(`null`), dsapi.TypeTransferCompletionMessage, &parsed)
	assert.Regexp(t, "DS010406", err)

	err = FromProtocolJSON(ctx, []byte(`{"@type":"dspace:TransferStartMessage"}`), dsapi.TypeTransferCompletionMessage, &parsed)
	assert.Regexp(t, "DS010405", err)

	err = FromProtocolJSON(ctx, []byte(`{"@type":"dspace:TransferCompletionMessage","dspace:consumerPid":12345}`), dsapi.TypeTransferCompletionMessage, &parsed)
	assert.Regexp(t, "DS010406", err)
}

func TestToProtocolJSONErrors(t *testing.T) {
	ctx := context.Background()

	_, err := ToProtocolJSON(ctx, map[string]any{"bad": make(chan int)}, "Bad")
	assert.Regexp(t, "DS011008", err)

	_, err = ToProtocolJSON(ctx, []string{"not", "an", "object"}, "Bad")
	assert.Regexp(t, "DS011008", err)
}

func TestTimestampSurvivesProtocolProfile(t *testing.T) {
	ctx := context.Background()
	ts, err := dstypes.ParseTimeString("2025-03-01T10:00:00Z")
	require.NoError(t, err)
	a := &dsapi.Agreement{ID: "a1", Target: "t", Assignee: "c", Assigner: "p", Timestamp: ts,
		Permissions: []dsapi.Permission{{Action: dsapi.ActionUse}}}

	b, err := ToProtocolJSON(ctx, a, "Agreement")
	require.NoError(t, err)
	var parsed dsapi.Agreement
	require.NoError(t, FromProtocolJSON(ctx, b, "Agreement", &parsed))
	assert.Equal(t, ts, parsed.Timestamp)
}
