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

package connectorapi

import (
	"net/http"
	"testing"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testOffer(t *testing.T) *dsapi.Offer {
	p := dsapi.Permission{Action: dsapi.ActionUse, Target: "urn:dataset:1"}
	return &dsapi.Offer{ID: "urn:uuid:offer1", Target: "urn:dataset:1", Assigner: "urn:provider", Permissions: []dsapi.Permission{p}}
}

func cn(id string, state dsapi.NegotiationState) *dsapi.ContractNegotiation {
	return &dsapi.ContractNegotiation{ID: id, ConsumerPID: id, ProviderPID: "p1", State: state, Role: dsapi.RoleConsumer}
}

func TestRequestNegotiation(t *testing.T) {
	_, server, mm := newTestAPIServer(t)
	mm.negotiation.On("RequestNegotiation", mock.Anything, "http://provider/protocol", mock.MatchedBy(func(o *dsapi.Offer) bool {
		return o.Target == "urn:dataset:1"
	}), "urn:uuid:mine").Return(cn("c1", dsapi.NegotiationStateRequested), nil)

	var res dsapi.ContractNegotiation
	status := call(t, http.MethodPost, server.URL+"/api/v1/negotiations/request", &NegotiationRequest{
		CounterpartAddress: "http://provider/protocol",
		Offer:              testOffer(t),
		PID:                "urn:uuid:mine",
	}, &res)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "c1", res.ID)
	assert.Equal(t, dsapi.NegotiationStateRequested, res.State)
}

func TestOfferNegotiationMissingAddress(t *testing.T) {
	_, server, _ := newTestAPIServer(t)
	var er errorResponse
	status := call(t, http.MethodPost, server.URL+"/api/v1/negotiations/offer", &NegotiationRequest{Offer: testOffer(t)}, &er)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Regexp(t, "DS010400.*counterpartAddress", er.Error)
}

func TestNegotiationActions(t *testing.T) {
	ctx, server, mm := newTestAPIServer(t)
	mm.negotiation.On("AcceptOffer", mock.Anything, "c1").Return(cn("c1", dsapi.NegotiationStateAccepted), nil)
	mm.negotiation.On("VerifyNegotiation", mock.Anything, "c1").Return(cn("c1", dsapi.NegotiationStateVerified), nil)
	mm.negotiation.On("ApproveNegotiation", mock.Anything, "p1").
		Return(nil, i18n.NewError(ctx, msgs.MsgStateIllegalTransition, "OFFERED", "AGREED", "contract negotiation"))
	mm.negotiation.On("FinalizeNegotiation", mock.Anything, "p1").
		Return(nil, i18n.NewError(ctx, msgs.MsgRemoteRequestFailed, "http://consumer"))
	mm.negotiation.On("CounterRequest", mock.Anything, "c1", mock.Anything).Return(cn("c1", dsapi.NegotiationStateRequested), nil)
	mm.negotiation.On("CounterOffer", mock.Anything, "p1", mock.Anything).
		Return(nil, i18n.NewError(ctx, msgs.MsgStateRoleForbidden, "consumer", "contract negotiation", "REQUESTED", "OFFERED"))
	mm.negotiation.On("TerminateNegotiation", mock.Anything, "c1", "DECLINED", "too expensive").
		Return(cn("c1", dsapi.NegotiationStateTerminated), nil)

	var res dsapi.ContractNegotiation
	assert.Equal(t, http.StatusOK, call(t, http.MethodPost, server.URL+"/api/v1/negotiations/c1/accept", nil, &res))
	assert.Equal(t, dsapi.NegotiationStateAccepted, res.State)
	assert.Equal(t, http.StatusOK, call(t, http.MethodPost, server.URL+"/api/v1/negotiations/c1/verify", nil, &res))
	assert.Equal(t, dsapi.NegotiationStateVerified, res.State)
	assert.Equal(t, http.StatusOK, call(t, http.MethodPost, server.URL+"/api/v1/negotiations/c1/counter-request", &OfferRequest{Offer: testOffer(t)}, &res))

	var er errorResponse
	assert.Equal(t, http.StatusConflict, call(t, http.MethodPost, server.URL+"/api/v1/negotiations/p1/approve", nil, &er))
	assert.Regexp(t, "DS010500", er.Error)
	assert.Equal(t, http.StatusBadGateway, call(t, http.MethodPost, server.URL+"/api/v1/negotiations/p1/finalize", nil, &er))
	assert.Regexp(t, "DS010601", er.Error)
	assert.Equal(t, http.StatusConflict, call(t, http.MethodPost, server.URL+"/api/v1/negotiations/p1/counter-offer", &OfferRequest{Offer: testOffer(t)}, &er))
	assert.Regexp(t, "DS010501", er.Error)

	assert.Equal(t, http.StatusOK, call(t, http.MethodPost, server.URL+"/api/v1/negotiations/c1/terminate", &TerminateRequest{
		Code:   "DECLINED",
		Reason: []string{"too expensive"},
	}, &res))
	assert.Equal(t, dsapi.NegotiationStateTerminated, res.State)
}

func TestNegotiationQueries(t *testing.T) {
	ctx, server, mm := newTestAPIServer(t)
	mm.negotiation.On("ListNegotiations", mock.Anything, dsapi.RoleProvider).
		Return([]*dsapi.ContractNegotiation{cn("p1", dsapi.NegotiationStateAgreed)}, nil)
	mm.negotiation.On("ListNegotiations", mock.Anything, dsapi.Role("")).
		Return([]*dsapi.ContractNegotiation{cn("p1", dsapi.NegotiationStateAgreed), cn("c1", dsapi.NegotiationStateRequested)}, nil)
	mm.negotiation.On("GetNegotiation", mock.Anything, "c2").
		Return(nil, i18n.NewError(ctx, msgs.MsgNegotiationNotFound, "c2"))
	mm.negotiation.On("GetNegotiationHistory", mock.Anything, "c1").
		Return([]*dsapi.ContractNegotiation{cn("c1", dsapi.NegotiationStateRequested), cn("c1", dsapi.NegotiationStateOffered)}, nil)
	agreement, err := dsapi.NewAgreement(ctx, "urn:dataset:1", "urn:consumer", "urn:provider", testOffer(t).Permissions)
	require.NoError(t, err)
	mm.negotiation.On("GetAgreement", mock.Anything, agreement.ID).Return(agreement, nil)

	var list []*dsapi.ContractNegotiation
	assert.Equal(t, http.StatusOK, call(t, http.MethodGet, server.URL+"/api/v1/negotiations?role=provider", nil, &list))
	assert.Len(t, list, 1)
	assert.Equal(t, http.StatusOK, call(t, http.MethodGet, server.URL+"/api/v1/negotiations", nil, &list))
	assert.Len(t, list, 2)
	assert.Equal(t, http.StatusOK, call(t, http.MethodGet, server.URL+"/api/v1/negotiations/c1/history", nil, &list))
	assert.Equal(t, dsapi.NegotiationStateOffered, list[1].State)

	var er errorResponse
	assert.Equal(t, http.StatusNotFound, call(t, http.MethodGet, server.URL+"/api/v1/negotiations/c2", nil, &er))

	var a dsapi.Agreement
	assert.Equal(t, http.StatusOK, call(t, http.MethodGet, server.URL+"/api/v1/agreements/"+agreement.ID, nil, &a))
	assert.Equal(t, "urn:dataset:1", a.Target)
}
