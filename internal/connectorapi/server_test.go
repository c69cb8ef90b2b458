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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/mocks/componentsmocks"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/confutil"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/router"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockManagers struct {
	negotiation *componentsmocks.NegotiationManager
	transfer    *componentsmocks.TransferManager
	catalog     *componentsmocks.CatalogManager
	usage       *componentsmocks.UsageTracker
}

func mockAllComponents(t *testing.T) (*componentsmocks.AllComponents, *mockManagers) {
	mm := &mockManagers{
		negotiation: componentsmocks.NewNegotiationManager(t),
		transfer:    componentsmocks.NewTransferManager(t),
		catalog:     componentsmocks.NewCatalogManager(t),
		usage:       componentsmocks.NewUsageTracker(t),
	}
	mac := componentsmocks.NewAllComponents(t)
	mac.On("NegotiationManager").Return(mm.negotiation)
	mac.On("TransferManager").Return(mm.transfer)
	mac.On("CatalogManager").Return(mm.catalog)
	mac.On("UsageTracker").Return(mm.usage)
	return mac, mm
}

func newTestAPIServer(t *testing.T) (context.Context, *httptest.Server, *mockManagers) {
	ctx := context.Background()
	mac, mm := mockAllComponents(t)
	server := httptest.NewServer(newAPIServer(ctx, router.NewUnboundRouter(ctx), mac))
	t.Cleanup(server.Close)
	return ctx, server, mm
}

func call(t *testing.T, method, url string, body any, out any) int {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	}
	return res.StatusCode
}

func TestNewAPIServer(t *testing.T) {
	mac, _ := mockAllComponents(t)
	s, err := NewAPIServer(context.Background(), &dsconf.HTTPServerConfig{
		Address: confutil.P("127.0.0.1"),
		Port:    confutil.P(0),
	}, mac)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	defer s.Stop()
	assert.NotNil(t, s.Addr())
}

func TestNewAPIServerMissingPort(t *testing.T) {
	_, err := NewAPIServer(context.Background(), &dsconf.HTTPServerConfig{}, componentsmocks.NewAllComponents(t))
	assert.Regexp(t, "DS011005", err)
}

func TestBadJSONBody(t *testing.T) {
	_, server, _ := newTestAPIServer(t)
	var er errorResponse
	status := call(t, http.MethodPost, server.URL+"/api/v1/negotiations/request", "{!!", &er)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Regexp(t, "DS010414", er.Error)
}

func TestBadRoleParam(t *testing.T) {
	_, server, _ := newTestAPIServer(t)
	var er errorResponse
	status := call(t, http.MethodGet, server.URL+"/api/v1/transfers?role=observer", nil, &er)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Regexp(t, "DS010402", er.Error)
}

func TestArtifactsAndUsage(t *testing.T) {
	ctx, server, mm := newTestAPIServer(t)
	mm.catalog.On("RegisterArtifact", mock.Anything, mock.MatchedBy(func(a *components.Artifact) bool {
		return a.DatasetID == "urn:dataset:1" && a.ArtifactType == components.ArtifactTypeFile
	}), mock.MatchedBy(func(o *components.BlobObject) bool {
		return string(o.Data) == "hello"
	})).Return(&components.Artifact{DatasetID: "urn:dataset:1", ArtifactType: components.ArtifactTypeFile}, nil)
	mm.catalog.On("GetArtifactForDataset", mock.Anything, "urn:dataset:2").
		Return(nil, i18n.NewError(ctx, msgs.MsgArtifactNotFound, "urn:dataset:2"))
	mm.usage.On("CurrentCount", mock.Anything, "a1").Return(int64(3), nil)
	mm.usage.On("ResetCount", mock.Anything, "a1").Return(nil)

	var artifact components.Artifact
	status := call(t, http.MethodPost, server.URL+"/api/v1/artifacts", &ArtifactRegistration{
		Artifact: &components.Artifact{DatasetID: "urn:dataset:1", ArtifactType: components.ArtifactTypeFile},
		Content:  &components.BlobObject{ContentType: "text/plain", Data: []byte("hello")},
	}, &artifact)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "urn:dataset:1", artifact.DatasetID)

	var er errorResponse
	status = call(t, http.MethodPost, server.URL+"/api/v1/artifacts", `{}`, &er)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Regexp(t, "DS010400.*artifact", er.Error)

	status = call(t, http.MethodGet, server.URL+"/api/v1/artifacts/urn:dataset:2", nil, &er)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Regexp(t, "DS010903", er.Error)

	var uc UsageCount
	status = call(t, http.MethodGet, server.URL+"/api/v1/usage/a1", nil, &uc)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, UsageCount{AgreementID: "a1", Count: 3}, uc)

	status = call(t, http.MethodDelete, server.URL+"/api/v1/usage/a1", nil, nil)
	assert.Equal(t, http.StatusNoContent, status)
}
