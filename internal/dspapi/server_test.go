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

package dspapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/protocol"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/mocks/componentsmocks"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/confutil"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/router"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockManagers struct {
	negotiation *componentsmocks.NegotiationManager
	transfer    *componentsmocks.TransferManager
}

func newTestProtocolServer(t *testing.T) (context.Context, *httptest.Server, *mockManagers) {
	ctx := context.Background()
	mm := &mockManagers{
		negotiation: componentsmocks.NewNegotiationManager(t),
		transfer:    componentsmocks.NewTransferManager(t),
	}
	mac := componentsmocks.NewAllComponents(t)
	mac.On("NegotiationManager").Return(mm.negotiation)
	mac.On("TransferManager").Return(mm.transfer)

	s := newProtocolServer(ctx, router.NewUnboundRouter(ctx), mac)
	server := httptest.NewServer(s)
	t.Cleanup(server.Close)
	return ctx, server, mm
}

func postProtocol(t *testing.T, url string, msg dsapi.ProtocolMessage) (int, []byte) {
	data, err := protocol.ToProtocolJSON(context.Background(), msg, msg.ProtocolType())
	require.NoError(t, err)
	return post(t, url, data)
}

func post(t *testing.T, url string, data []byte) (int, []byte) {
	res, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, body
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, body
}

func TestNewProtocolServer(t *testing.T) {
	mac := componentsmocks.NewAllComponents(t)
	mac.On("NegotiationManager").Return(componentsmocks.NewNegotiationManager(t))
	mac.On("TransferManager").Return(componentsmocks.NewTransferManager(t))

	s, err := NewProtocolServer(context.Background(), &dsconf.HTTPServerConfig{
		Address: confutil.P("127.0.0.1"),
		Port:    confutil.P(0),
	}, mac)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	defer s.Stop()
	assert.NotNil(t, s.Addr())
}

func TestNewProtocolServerMissingPort(t *testing.T) {
	_, err := NewProtocolServer(context.Background(), &dsconf.HTTPServerConfig{}, componentsmocks.NewAllComponents(t))
	assert.Regexp(t, "DS011005", err)
}

func TestErrorKindMapsToStatus(t *testing.T) {
	ctx := context.Background()
	for _, tc := range []struct {
		err    error
		status int
		code   string
	}{
		{err: i18n.NewError(ctx, msgs.MsgValidationMissingField, "offer", "ContractRequestMessage"), status: http.StatusBadRequest, code: "ValidationFailure"},
		{err: i18n.NewError(ctx, msgs.MsgStateIllegalTransition, "FINALIZED", "REQUESTED", "contract negotiation"), status: http.StatusConflict, code: "IllegalStateTransition"},
		{err: i18n.NewError(ctx, msgs.MsgRemoteRequestFailed, "http://x"), status: http.StatusBadGateway, code: "RemoteExchangeFailure"},
		{err: i18n.NewError(ctx, msgs.MsgPolicyViolation, "COUNT", "too many"), status: http.StatusForbidden, code: "PolicyViolation"},
		{err: i18n.NewError(ctx, msgs.MsgNegotiationNotFound, "p1"), status: http.StatusNotFound, code: "NotFound"},
		{err: i18n.NewError(ctx, msgs.MsgContextCanceled), status: http.StatusInternalServerError, code: "Internal"},
	} {
		rec := httptest.NewRecorder()
		writeError(ctx, rec, tc.err, "c1", "p1", false)
		assert.Equal(t, tc.status, rec.Code)

		var em dsapi.ContractNegotiationErrorMessage
		require.NoError(t, protocol.FromProtocolJSON(ctx, rec.Body.Bytes(), dsapi.TypeContractNegotiationErrorMessage, &em))
		assert.Equal(t, tc.code, em.Code)
		assert.Equal(t, "c1", em.ConsumerPID)
		assert.Equal(t, "p1", em.ProviderPID)
		assert.Equal(t, tc.err.Error(), em.Reason[0])
	}
}

func TestWriteErrorTransfer(t *testing.T) {
	ctx := context.Background()
	rec := httptest.NewRecorder()
	writeError(ctx, rec, i18n.NewError(ctx, msgs.MsgTransferNotFound, "p1"), "", "p1", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var te dsapi.TransferError
	require.NoError(t, protocol.FromProtocolJSON(ctx, rec.Body.Bytes(), dsapi.TypeTransferError, &te))
	assert.Equal(t, "NotFound", te.Code)
	assert.Equal(t, "p1", te.ProviderPID)
}

func TestWrongMessageType(t *testing.T) {
	ctx, server, _ := newTestProtocolServer(t)
	msg, err := dsapi.NewContractAgreementVerificationMessage(ctx, "c1", "p1")
	require.NoError(t, err)

	status, body := postProtocol(t, server.URL+"/negotiations/request", msg)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Regexp(t, "DS010405", string(body))
}

func TestUnparseableBody(t *testing.T) {
	_, server, _ := newTestProtocolServer(t)
	status, body := post(t, server.URL+"/transfers/request", []byte(`{!!`))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Regexp(t, "TransferError", string(body))
}

func TestMethodNotAllowed(t *testing.T) {
	_, server, _ := newTestProtocolServer(t)
	res, _ := get(t, server.URL+"/negotiations/p1/termination")
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

var _ components.Managers = (*componentsmocks.AllComponents)(nil)
