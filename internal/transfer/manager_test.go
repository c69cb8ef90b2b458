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

package transfer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/metrics"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/protocol"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/mocks/componentsmocks"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/confutil"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/persistence"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/persistence/mockpersistence"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCredentials = "Basic dGVzdDp0ZXN0"

type mockComponents struct {
	db             *mockpersistence.SQLMockProvider
	allComponents  *componentsmocks.AllComponents
	protocolClient *componentsmocks.ProtocolClient
	blobStore      *componentsmocks.BlobStore
	negotiation    *componentsmocks.NegotiationManager
	catalog        *componentsmocks.CatalogManager
	gate           *componentsmocks.EnforcementGate
}

func newTestTransferManager(t *testing.T, realDB bool) (context.Context, *transferManager, *mockComponents, func()) {
	ctx, cancelCtx := context.WithCancel(context.Background())

	mc := &mockComponents{
		allComponents:  componentsmocks.NewAllComponents(t),
		protocolClient: componentsmocks.NewProtocolClient(t),
		blobStore:      componentsmocks.NewBlobStore(t),
		negotiation:    componentsmocks.NewNegotiationManager(t),
		catalog:        componentsmocks.NewCatalogManager(t),
		gate:           componentsmocks.NewEnforcementGate(t),
	}

	var p persistence.Persistence
	var pDone func()
	if realDB {
		var err error
		p, pDone, err = persistence.NewUnitTestPersistence(ctx)
		require.NoError(t, err)
	} else {
		mp, err := mockpersistence.NewSQLMockProvider()
		require.NoError(t, err)
		mc.db = mp
		p = mp.P
		pDone = func() {
			require.NoError(t, mp.Mock.ExpectationsWereMet())
		}
	}

	mc.allComponents.On("Persistence").Return(p)
	mc.allComponents.On("ProtocolClient").Return(mc.protocolClient)
	mc.allComponents.On("BlobStore").Return(mc.blobStore)
	mc.allComponents.On("Metrics").Return(metrics.InitMetrics(ctx, prometheus.NewRegistry()))
	mc.allComponents.On("NegotiationManager").Return(mc.negotiation)
	mc.allComponents.On("CatalogManager").Return(mc.catalog)
	mc.allComponents.On("EnforcementGate").Return(mc.gate)
	mc.blobStore.On("BucketExists", mock.Anything, "downloads").Return(true, nil)

	tm := NewTransferManager(ctx, &dsconf.ConnectorIdentityConfig{
		NodeName:        confutil.P("node1"),
		CallbackAddress: confutil.P("http://node1/protocol/"),
		Credentials:     confutil.P(testCredentials),
	}, &dsconf.TransferConfig{
		MaxArtifactSize: confutil.P("1Kb"),
	}).(*transferManager)
	require.NoError(t, tm.PreInit(mc.allComponents))
	require.NoError(t, tm.PostInit(mc.allComponents))
	require.NoError(t, tm.Start())

	return ctx, tm, mc, func() {
		tm.Stop()
		cancelCtx()
		pDone()
	}
}

func testAgreement() *dsapi.Agreement {
	return &dsapi.Agreement{
		ID:       "urn:uuid:agreement1",
		Target:   "urn:dataset:1",
		Assignee: "consumer1",
		Assigner: "provider1",
		Permissions: []dsapi.Permission{
			{Action: dsapi.ActionUse, Target: "urn:dataset:1"},
		},
	}
}

func ackResponse(t *testing.T, consumerPID, providerPID string, state dsapi.TransferState) *components.ProtocolResponse {
	data, err := protocol.ToProtocolJSON(context.Background(), &dsapi.TransferProcessAck{
		ConsumerPID: consumerPID,
		ProviderPID: providerPID,
		State:       state,
	}, dsapi.TypeTransferProcess)
	require.NoError(t, err)
	return &components.ProtocolResponse{Success: true, StatusCode: 200, Data: data}
}

func okResponse() *components.ProtocolResponse {
	return &components.ProtocolResponse{Success: true, StatusCode: 200}
}

func (mc *mockComponents) expectSend(address, msgType string) *mock.Call {
	return mc.protocolClient.On("SendRequestProtocol", mock.Anything, address,
		mock.MatchedBy(func(m dsapi.ProtocolMessage) bool { return m.ProtocolType() == msgType }),
		testCredentials)
}

func seedTransfer(t *testing.T, ctx context.Context, tm *transferManager, role dsapi.Role, state dsapi.TransferState) *dsapi.TransferProcess {
	tp, err := tm.create(ctx, &dsapi.TransferProcess{
		ConsumerPID:     dstypes.NewPID(),
		ProviderPID:     dstypes.NewPID(),
		AgreementID:     "urn:uuid:agreement1",
		DatasetID:       "urn:dataset:1",
		Format:          dsapi.FormatHTTPPull,
		CallbackAddress: "http://counterpart",
		State:           state,
		Role:            role,
	})
	require.NoError(t, err)
	return tp
}

func TestStartCreatesDownloadBucket(t *testing.T) {
	ctx := context.Background()
	blobStore := componentsmocks.NewBlobStore(t)
	blobStore.On("BucketExists", ctx, "downloads").Return(false, nil)
	blobStore.On("CreateBucket", ctx, "downloads").Return(nil)
	tm := NewTransferManager(ctx, &dsconf.ConnectorIdentityConfig{}, &dsconf.TransferConfig{}).(*transferManager)
	tm.blobStore = blobStore
	require.NoError(t, tm.Start())
}

func TestRequestTransferOK(t *testing.T) {
	ctx, tm, mc, done := newTestTransferManager(t, true)
	defer done()

	mc.negotiation.On("GetAgreement", mock.Anything, "urn:uuid:agreement1").Return(testAgreement(), nil)
	res := &components.ProtocolResponse{}
	mc.expectSend("http://provider1/transfers/request", dsapi.TypeTransferRequestMessage).
		Run(func(args mock.Arguments) {
			msg := args[2].(*dsapi.TransferRequestMessage)
			assert.Equal(t, "http://node1/protocol/consumer", msg.CallbackAddress)
			assert.Equal(t, dsapi.FormatHTTPPull, msg.Format)
			*res = *ackResponse(t, msg.ConsumerPID, "urn:uuid:provider-minted", dsapi.TransferStateRequested)
		}).
		Return(res, nil)

	tp, err := tm.RequestTransfer(ctx, "http://provider1", "urn:uuid:agreement1", dsapi.FormatHTTPPull, nil, "")
	require.NoError(t, err)
	assert.Equal(t, dsapi.TransferStateRequested, tp.State)
	assert.Equal(t, "urn:uuid:provider-minted", tp.ProviderPID)

	stored, err := tm.GetTransferByPID(ctx, dsapi.RoleConsumer, tp.ConsumerPID)
	require.NoError(t, err)
	assert.Equal(t, "urn:uuid:provider-minted", stored.ProviderPID)
	assert.Equal(t, "urn:dataset:1", stored.DatasetID)
	assert.Equal(t, "urn:uuid:agreement1", stored.AgreementID)
	assert.Equal(t, int64(1), stored.Version)
}

func TestRequestTransferUnsupportedFormat(t *testing.T) {
	ctx, tm, mc, done := newTestTransferManager(t, true)
	defer done()

	mc.negotiation.On("GetAgreement", mock.Anything, "urn:uuid:agreement1").Return(testAgreement(), nil)
	_, err := tm.RequestTransfer(ctx, "http://provider1", "urn:uuid:agreement1", "HttpData-PUSH", nil, "")
	assert.Regexp(t, "DS010408", err)
	assert.Equal(t, dstypes.ErrorKindValidationFailure, dstypes.ErrorKindOf(err))
}

func TestRequestTransferNoAgreement(t *testing.T) {
	ctx, tm, mc, done := newTestTransferManager(t, true)
	defer done()

	mc.negotiation.On("GetAgreement", mock.Anything, "unknown").Return(nil, i18n.NewError(ctx, msgs.MsgAgreementNotFound, "unknown"))
	_, err := tm.RequestTransfer(ctx, "http://provider1", "unknown", dsapi.FormatHTTPPull, nil, "")
	assert.Regexp(t, "DS010902", err)
}

func TestRequestTransferRemoteFailure(t *testing.T) {
	ctx, tm, mc, done := newTestTransferManager(t, true)
	defer done()

	mc.negotiation.On("GetAgreement", mock.Anything, "urn:uuid:agreement1").Return(testAgreement(), nil)
	mc.expectSend("http://provider1/transfers/request", dsapi.TypeTransferRequestMessage).
		Return(&components.ProtocolResponse{StatusCode: 400, Message: "no"}, nil)

	_, err := tm.RequestTransfer(ctx, "http://provider1", "urn:uuid:agreement1", dsapi.FormatHTTPPull, nil, "")
	assert.Regexp(t, "DS010600", err)

	tps, err := tm.ListTransfers(ctx, dsapi.RoleConsumer)
	require.NoError(t, err)
	assert.Empty(t, tps)
}

func TestRequestTransferRetryReusesConsumerPID(t *testing.T) {
	ctx, tm, mc, done := newTestTransferManager(t, true)
	defer done()

	consumerPID := dstypes.NewPID()
	samePID := func(args mock.Arguments) {
		assert.Equal(t, consumerPID, args[2].(*dsapi.TransferRequestMessage).ConsumerPID)
	}
	mc.negotiation.On("GetAgreement", mock.Anything, "urn:uuid:agreement1").Return(testAgreement(), nil)
	mc.expectSend("http://provider1/transfers/request", dsapi.TypeTransferRequestMessage).
		Run(samePID).
		Return(&components.ProtocolResponse{StatusCode: 503, Message: "busy"}, nil).Once()
	mc.expectSend("http://provider1/transfers/request", dsapi.TypeTransferRequestMessage).
		Run(samePID).
		Return(ackResponse(t, consumerPID, "urn:uuid:provider-minted", dsapi.TransferStateRequested), nil).Once()

	_, err := tm.RequestTransfer(ctx, "http://provider1", "urn:uuid:agreement1", dsapi.FormatHTTPPull, nil, consumerPID)
	assert.Regexp(t, "DS010600", err)

	tp, err := tm.RequestTransfer(ctx, "http://provider1", "urn:uuid:agreement1", dsapi.FormatHTTPPull, nil, consumerPID)
	require.NoError(t, err)
	assert.Equal(t, consumerPID, tp.ConsumerPID)

	// already stored, so nothing more is sent
	again, err := tm.RequestTransfer(ctx, "http://provider1", "urn:uuid:agreement1", dsapi.FormatHTTPPull, nil, consumerPID)
	require.NoError(t, err)
	assert.Equal(t, tp.ID, again.ID)

	tps, err := tm.ListTransfers(ctx, dsapi.RoleConsumer)
	require.NoError(t, err)
	assert.Len(t, tps, 1)
}

func TestProviderFlowWithArtifactToken(t *testing.T) {
	ctx, tm, mc, done := newTestTransferManager(t, true)
	defer done()

	mc.negotiation.On("CheckAgreementFinalized", mock.Anything, "urn:uuid:agreement1").Return(nil)
	mc.negotiation.On("GetAgreement", mock.Anything, "urn:uuid:agreement1").Return(testAgreement(), nil)

	req := &dsapi.TransferRequestMessage{
		ConsumerPID:     dstypes.NewPID(),
		AgreementID:     "urn:uuid:agreement1",
		Format:          dsapi.FormatHTTPPull,
		CallbackAddress: "http://consumer1/consumer",
	}
	tp, err := tm.HandleTransferRequest(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, dsapi.TransferStateRequested, tp.State)
	assert.Equal(t, dsapi.RoleProvider, tp.Role)
	assert.Equal(t, "urn:dataset:1", tp.DatasetID)

	again, err := tm.HandleTransferRequest(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, tp.ProviderPID, again.ProviderPID)

	var sent *dsapi.TransferStartMessage
	mc.expectSend(fmt.Sprintf("http://consumer1/consumer/transfers/%s/start", req.ConsumerPID), dsapi.TypeTransferStartMessage).
		Run(func(args mock.Arguments) {
			sent = args[2].(*dsapi.TransferStartMessage)
		}).
		Return(okResponse(), nil)
	started, err := tm.StartTransfer(ctx, tp.ID)
	require.NoError(t, err)
	assert.Equal(t, dsapi.TransferStateStarted, started.State)
	require.NotNil(t, sent)
	require.NotNil(t, sent.DataAddress)
	assert.Equal(t, dsapi.EndpointTypeHTTP, sent.DataAddress.EndpointType)
	assert.True(t, strings.HasPrefix(sent.DataAddress.Endpoint, "http://node1/protocol/artifacts/"))

	token := strings.TrimPrefix(sent.DataAddress.Endpoint, "http://node1/protocol/artifacts/")
	consumerPID, providerPID, err := dstypes.DecodeArtifactToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, req.ConsumerPID, consumerPID)
	assert.Equal(t, tp.ProviderPID, providerPID)

	grant := &components.AccessGrant{AgreementID: "urn:uuid:agreement1", TransferID: tp.ID, Action: dsapi.ActionUse}
	mc.gate.On("CheckAccess", mock.Anything, mock.MatchedBy(func(tp *dsapi.TransferProcess) bool {
		return tp.ProviderPID == providerPID && tp.State == dsapi.TransferStateStarted
	}), components.AccessDownload).Return(grant, nil)
	mc.catalog.On("ReadArtifact", mock.Anything, "urn:dataset:1").Return(&components.BlobObject{ContentType: "text/plain", Data: []byte("hello")}, nil)
	mc.gate.On("RecordConsumption", mock.Anything, grant).Once()
	obj, err := tm.ServeArtifact(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(obj.Data))
}

func TestHandleTransferRequestNotFinalized(t *testing.T) {
	ctx, tm, mc, done := newTestTransferManager(t, true)
	defer done()

	mc.negotiation.On("CheckAgreementFinalized", mock.Anything, "urn:uuid:agreement1").
		Return(i18n.NewError(ctx, msgs.MsgValidationNegotiationNotFinal, "urn:uuid:agreement1"))
	_, err := tm.HandleTransferRequest(ctx, &dsapi.TransferRequestMessage{
		ConsumerPID:     dstypes.NewPID(),
		AgreementID:     "urn:uuid:agreement1",
		Format:          dsapi.FormatHTTPPull,
		CallbackAddress: "http://consumer1/consumer",
	})
	assert.Regexp(t, "DS010412", err)
}

func TestHandleTransferRequestPushRejected(t *testing.T) {
	ctx, tm, _, done := newTestTransferManager(t, true)
	defer done()

	_, err := tm.HandleTransferRequest(ctx, &dsapi.TransferRequestMessage{
		ConsumerPID:     dstypes.NewPID(),
		AgreementID:     "urn:uuid:agreement1",
		Format:          "HttpData-PUSH",
		CallbackAddress: "http://consumer1/consumer",
	})
	assert.Regexp(t, "DS010408", err)
}

func TestServeArtifactBadToken(t *testing.T) {
	ctx, tm, _, done := newTestTransferManager(t, true)
	defer done()

	_, err := tm.ServeArtifact(ctx, "!!!")
	assert.Regexp(t, "DS010305", err)

	_, err = tm.ServeArtifact(ctx, dstypes.EncodeArtifactToken("urn:uuid:a", "urn:uuid:b"))
	assert.Regexp(t, "DS010901", err)
}

func TestServeArtifactDenied(t *testing.T) {
	ctx, tm, mc, done := newTestTransferManager(t, true)
	defer done()

	tp := seedTransfer(t, ctx, tm, dsapi.RoleProvider, dsapi.TransferStateRequested)
	mc.gate.On("CheckAccess", mock.Anything, mock.Anything, components.AccessDownload).
		Return(nil, i18n.NewError(ctx, msgs.MsgPolicyTransferNotStarted, tp.ID, tp.State))
	_, err := tm.ServeArtifact(ctx, dstypes.EncodeArtifactToken(tp.ConsumerPID, tp.ProviderPID))
	assert.Regexp(t, "DS010702", err)
	assert.Equal(t, dstypes.ErrorKindPolicyViolation, dstypes.ErrorKindOf(err))
}

func TestConsumerCannotStartRequestedTransfer(t *testing.T) {
	ctx, tm, _, done := newTestTransferManager(t, true)
	defer done()

	tp := seedTransfer(t, ctx, tm, dsapi.RoleConsumer, dsapi.TransferStateRequested)
	_, err := tm.StartTransfer(ctx, tp.ID)
	assert.Regexp(t, "DS010501", err)

	// the provider side also refuses a start message from the consumer
	tp = seedTransfer(t, ctx, tm, dsapi.RoleProvider, dsapi.TransferStateRequested)
	_, err = tm.HandleStart(ctx, dsapi.RoleProvider, tp.ProviderPID, &dsapi.TransferStartMessage{
		ConsumerPID: tp.ConsumerPID,
		ProviderPID: tp.ProviderPID,
	})
	assert.Regexp(t, "DS010501", err)
}

func TestConsumerFlowDownloadAndView(t *testing.T) {
	ctx, tm, mc, done := newTestTransferManager(t, true)
	defer done()

	tp := seedTransfer(t, ctx, tm, dsapi.RoleConsumer, dsapi.TransferStateRequested)

	// view before anything is started is refused by the gate
	mc.gate.On("CheckAccess", mock.Anything, mock.MatchedBy(func(tp *dsapi.TransferProcess) bool {
		return !tp.IsDownloaded
	}), components.AccessView).Return(nil, i18n.NewError(ctx, msgs.MsgPolicyNotDownloaded, tp.ID)).Once()
	_, err := tm.ViewData(ctx, tp.ID)
	assert.Regexp(t, "DS010703", err)

	started, err := tm.HandleStart(ctx, dsapi.RoleConsumer, tp.ConsumerPID, &dsapi.TransferStartMessage{
		ConsumerPID: tp.ConsumerPID,
		ProviderPID: tp.ProviderPID,
		DataAddress: &dsapi.DataAddress{
			EndpointType: dsapi.EndpointTypeHTTP,
			Endpoint:     "http://provider1/artifacts/tok1",
			EndpointProperties: []dsapi.EndpointProperty{
				{Name: dsapi.EndpointPropAuthorization, Value: "Bearer xyz"},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, dsapi.TransferStateStarted, started.State)

	downloadGrant := &components.AccessGrant{AgreementID: tp.AgreementID, TransferID: tp.ID, Action: dsapi.ActionUse}
	mc.gate.On("CheckAccess", mock.Anything, mock.Anything, components.AccessDownload).Return(downloadGrant, nil).Once()
	mc.gate.On("RecordConsumption", mock.Anything, downloadGrant).Once()
	obj := &components.BlobObject{ContentType: "text/plain", Data: []byte("some data")}
	mc.protocolClient.On("PullData", mock.Anything, "http://provider1/artifacts/tok1", "Bearer xyz", int64(1024)).Return(obj, nil)
	mc.blobStore.On("Put", mock.Anything, "downloads", tp.ID, obj).Return(nil)
	downloaded, err := tm.DownloadData(ctx, tp.ID)
	require.NoError(t, err)
	assert.True(t, downloaded.IsDownloaded)
	assert.Equal(t, tp.ID, downloaded.DataID)
	assert.Equal(t, dsapi.TransferStateStarted, downloaded.State)
	assert.Equal(t, int64(3), downloaded.Version)

	viewGrant := &components.AccessGrant{AgreementID: tp.AgreementID, TransferID: tp.ID, Action: dsapi.ActionRead}
	mc.gate.On("CheckAccess", mock.Anything, mock.MatchedBy(func(tp *dsapi.TransferProcess) bool {
		return tp.IsDownloaded
	}), components.AccessView).Return(viewGrant, nil).Once()
	mc.gate.On("RecordConsumption", mock.Anything, viewGrant).Once()
	mc.blobStore.On("Get", mock.Anything, "downloads", tp.ID).Return(obj, nil)
	viewed, err := tm.ViewData(ctx, tp.ID)
	require.NoError(t, err)
	assert.Equal(t, "some data", string(viewed.Data))

	mc.expectSend(fmt.Sprintf("http://counterpart/transfers/%s/completion", tp.ProviderPID), dsapi.TypeTransferCompletionMessage).
		Return(okResponse(), nil)
	completed, err := tm.CompleteTransfer(ctx, tp.ID)
	require.NoError(t, err)
	assert.Equal(t, dsapi.TransferStateCompleted, completed.State)

	history, err := tm.GetTransferHistory(ctx, tp.ID)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.False(t, history[1].IsDownloaded)
	assert.True(t, history[2].IsDownloaded)
	assert.Equal(t, dsapi.TransferStateCompleted, history[3].State)
}

func TestDownloadNoDataAddress(t *testing.T) {
	ctx, tm, _, done := newTestTransferManager(t, true)
	defer done()

	tp := seedTransfer(t, ctx, tm, dsapi.RoleConsumer, dsapi.TransferStateStarted)
	_, err := tm.DownloadData(ctx, tp.ID)
	assert.Regexp(t, "DS010413", err)
}

func TestDownloadDeniedReleasesNothing(t *testing.T) {
	ctx, tm, mc, done := newTestTransferManager(t, true)
	defer done()

	tp := seedTransfer(t, ctx, tm, dsapi.RoleConsumer, dsapi.TransferStateRequested)
	tp, err := tm.HandleStart(ctx, dsapi.RoleConsumer, tp.ConsumerPID, &dsapi.TransferStartMessage{
		ConsumerPID: tp.ConsumerPID,
		ProviderPID: tp.ProviderPID,
		DataAddress: &dsapi.DataAddress{Endpoint: "http://provider1/artifacts/tok1"},
	})
	require.NoError(t, err)

	mc.gate.On("CheckAccess", mock.Anything, mock.Anything, components.AccessDownload).
		Return(nil, i18n.NewError(ctx, msgs.MsgPolicyViolation, "count", "Access count exceeded"))
	_, err = tm.DownloadData(ctx, tp.ID)
	assert.Regexp(t, "DS010700.*Access count exceeded", err)

	stored, err := tm.GetTransfer(ctx, tp.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsDownloaded)
}

func TestFailedReleaseRecordsNoConsumption(t *testing.T) {
	ctx, tm, mc, done := newTestTransferManager(t, true)
	defer done()

	tp := seedTransfer(t, ctx, tm, dsapi.RoleConsumer, dsapi.TransferStateRequested)
	tp, err := tm.HandleStart(ctx, dsapi.RoleConsumer, tp.ConsumerPID, &dsapi.TransferStartMessage{
		ConsumerPID: tp.ConsumerPID,
		ProviderPID: tp.ProviderPID,
		DataAddress: &dsapi.DataAddress{Endpoint: "http://provider1/artifacts/tok1"},
	})
	require.NoError(t, err)

	grant := &components.AccessGrant{AgreementID: tp.AgreementID, TransferID: tp.ID, Action: dsapi.ActionUse}
	mc.gate.On("CheckAccess", mock.Anything, mock.Anything, components.AccessDownload).Return(grant, nil)
	mc.protocolClient.On("PullData", mock.Anything, "http://provider1/artifacts/tok1", "", int64(1024)).
		Return(nil, i18n.NewError(ctx, msgs.MsgRemoteRequestFailed, "http://provider1/artifacts/tok1")).Once()
	_, err = tm.DownloadData(ctx, tp.ID)
	assert.Regexp(t, "DS010601", err)

	obj := &components.BlobObject{Data: []byte("some data")}
	mc.protocolClient.On("PullData", mock.Anything, "http://provider1/artifacts/tok1", "", int64(1024)).Return(obj, nil).Once()
	mc.blobStore.On("Put", mock.Anything, "downloads", tp.ID, obj).Return(fmt.Errorf("pop")).Once()
	_, err = tm.DownloadData(ctx, tp.ID)
	assert.Regexp(t, "pop", err)

	stored, err := tm.GetTransfer(ctx, tp.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsDownloaded)

	provider := seedTransfer(t, ctx, tm, dsapi.RoleProvider, dsapi.TransferStateStarted)
	mc.catalog.On("ReadArtifact", mock.Anything, provider.DatasetID).Return(nil, fmt.Errorf("gone"))
	_, err = tm.ServeArtifact(ctx, dstypes.EncodeArtifactToken(provider.ConsumerPID, provider.ProviderPID))
	assert.Regexp(t, "gone", err)

	mc.gate.AssertNotCalled(t, "RecordConsumption", mock.Anything, mock.Anything)
}

func TestSuspendAndResume(t *testing.T) {
	ctx, tm, mc, done := newTestTransferManager(t, true)
	defer done()

	tp := seedTransfer(t, ctx, tm, dsapi.RoleProvider, dsapi.TransferStateStarted)
	mc.expectSend(fmt.Sprintf("http://counterpart/transfers/%s/suspension", tp.ConsumerPID), dsapi.TypeTransferSuspensionMessage).
		Run(func(args mock.Arguments) {
			msg := args[2].(*dsapi.TransferSuspensionMessage)
			assert.Equal(t, "maintenance", msg.Code)
			assert.Equal(t, []string{"back soon"}, msg.Reason)
		}).
		Return(okResponse(), nil)
	suspended, err := tm.SuspendTransfer(ctx, tp.ID, "maintenance", "back soon")
	require.NoError(t, err)
	assert.Equal(t, dsapi.TransferStateSuspended, suspended.State)

	// the consumer may restart a suspended transfer
	resumed, err := tm.HandleStart(ctx, dsapi.RoleProvider, tp.ProviderPID, &dsapi.TransferStartMessage{
		ConsumerPID: tp.ConsumerPID,
		ProviderPID: tp.ProviderPID,
	})
	require.NoError(t, err)
	assert.Equal(t, dsapi.TransferStateStarted, resumed.State)

	consumer := seedTransfer(t, ctx, tm, dsapi.RoleConsumer, dsapi.TransferStateSuspended)
	mc.expectSend(fmt.Sprintf("http://counterpart/transfers/%s/start", consumer.ProviderPID), dsapi.TypeTransferStartMessage).
		Return(okResponse(), nil)
	restarted, err := tm.StartTransfer(ctx, consumer.ID)
	require.NoError(t, err)
	assert.Equal(t, dsapi.TransferStateStarted, restarted.State)
}

func TestRemoteFailureLeavesTransferUnchanged(t *testing.T) {
	ctx, tm, mc, done := newTestTransferManager(t, true)
	defer done()

	tp := seedTransfer(t, ctx, tm, dsapi.RoleConsumer, dsapi.TransferStateStarted)
	mc.expectSend(fmt.Sprintf("http://counterpart/transfers/%s/termination", tp.ProviderPID), dsapi.TypeTransferTerminationMessage).
		Return(&components.ProtocolResponse{StatusCode: 503, Message: "busy"}, nil)

	_, err := tm.TerminateTransfer(ctx, tp.ID, "cancel")
	assert.Regexp(t, "DS010600", err)
	assert.True(t, dstypes.IsRetryable(dstypes.ErrorKindOf(err)))

	stored, err := tm.GetTransfer(ctx, tp.ID)
	require.NoError(t, err)
	assert.Equal(t, dsapi.TransferStateStarted, stored.State)
	assert.Equal(t, int64(1), stored.Version)
}

func TestInboundTerminalAndMismatch(t *testing.T) {
	ctx, tm, _, done := newTestTransferManager(t, true)
	defer done()

	tp := seedTransfer(t, ctx, tm, dsapi.RoleConsumer, dsapi.TransferStateStarted)
	_, err := tm.HandleCompletion(ctx, dsapi.RoleConsumer, tp.ConsumerPID, &dsapi.TransferCompletionMessage{
		ConsumerPID: tp.ConsumerPID,
		ProviderPID: "urn:uuid:other",
	})
	assert.Regexp(t, "DS010410", err)

	completed, err := tm.HandleCompletion(ctx, dsapi.RoleConsumer, tp.ConsumerPID, &dsapi.TransferCompletionMessage{
		ConsumerPID: tp.ConsumerPID,
		ProviderPID: tp.ProviderPID,
	})
	require.NoError(t, err)
	assert.Equal(t, dsapi.TransferStateCompleted, completed.State)

	_, err = tm.HandleTermination(ctx, dsapi.RoleConsumer, tp.ConsumerPID, &dsapi.TransferTerminationMessage{
		ConsumerPID: tp.ConsumerPID,
		ProviderPID: tp.ProviderPID,
	})
	assert.Regexp(t, "DS010500", err)

	_, err = tm.HandleSuspension(ctx, dsapi.RoleConsumer, "unknown", &dsapi.TransferSuspensionMessage{
		ConsumerPID: "unknown",
		ProviderPID: tp.ProviderPID,
	})
	assert.Regexp(t, "DS010901", err)
}

func TestTransferOptimisticConcurrency(t *testing.T) {
	ctx, tm, _, done := newTestTransferManager(t, true)
	defer done()

	tp := seedTransfer(t, ctx, tm, dsapi.RoleProvider, dsapi.TransferStateStarted)
	for i := 0; i < 4; i++ {
		next := tp.CopyWithNewState(tp.State, "node1")
		require.NoError(t, tm.write(ctx, tp, next))
		tp = next
	}
	require.Equal(t, int64(5), tp.Version)

	first := tp.CopyWithNewState(dsapi.TransferStateSuspended, "writer1")
	second := tp.CopyWithNewState(dsapi.TransferStateCompleted, "writer2")
	require.NoError(t, tm.write(ctx, tp, first))
	assert.Equal(t, int64(6), first.Version)

	err := tm.write(ctx, tp, second)
	assert.Regexp(t, "DS010800", err)
	assert.Equal(t, dstypes.ErrorKindConcurrentModification, dstypes.ErrorKindOf(err))

	stored, err := tm.GetTransfer(ctx, tp.ID)
	require.NoError(t, err)
	assert.Equal(t, dsapi.TransferStateSuspended, stored.State)
	assert.Equal(t, int64(6), stored.Version)
}

func TestListTransfersDBError(t *testing.T) {
	ctx, tm, mc, done := newTestTransferManager(t, false)
	defer done()

	mc.db.Mock.ExpectQuery("SELECT.*transfer_processes").WillReturnError(fmt.Errorf("pop"))
	_, err := tm.ListTransfers(ctx, dsapi.RoleProvider)
	assert.Regexp(t, "pop", err)
}
