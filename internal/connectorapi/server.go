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
	"context"
	"encoding/json"
	"net"
	"net/http"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/router"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

const (
	apiPrefix   = "/api/v1"
	maxBodySize = 64 * 1024 * 1024
)

// APIServer is the local operator API that drives this connector's side of
// negotiations and transfers. It is not exposed to counterparts.
type APIServer interface {
	http.Handler
	Start() error
	Stop()
	Addr() net.Addr
}

type apiServer struct {
	bgCtx       context.Context
	router      router.Router
	negotiation components.NegotiationManager
	transfer    components.TransferManager
	catalog     components.CatalogManager
	usage       components.UsageTracker
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewAPIServer(ctx context.Context, conf *dsconf.HTTPServerConfig, c components.Managers) (_ APIServer, err error) {
	r, err := router.NewRouter(ctx, "API", conf)
	if err != nil {
		return nil, err
	}
	return newAPIServer(ctx, r, c), nil
}

func newAPIServer(ctx context.Context, r router.Router, c components.Managers) *apiServer {
	s := &apiServer{
		bgCtx:       ctx,
		router:      r,
		negotiation: c.NegotiationManager(),
		transfer:    c.TransferManager(),
		catalog:     c.CatalogManager(),
		usage:       c.UsageTracker(),
	}
	s.registerNegotiationRoutes()
	s.registerTransferRoutes()
	s.registerArtifactRoutes()
	return s
}

func (s *apiServer) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(res, req)
}

func (s *apiServer) Start() error {
	return s.router.Start()
}

func (s *apiServer) Stop() {
	s.router.Stop()
}

func (s *apiServer) Addr() net.Addr {
	return s.router.Addr()
}

// handler is the shape of every JSON route: a status and a body to encode, or an error
type handler func(ctx context.Context, req *http.Request) (int, any, error)

func (s *apiServer) handle(path string, h handler, methods ...string) {
	s.router.HandleFunc(apiPrefix+path, func(res http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		status, body, err := h(ctx, req)
		if err != nil {
			status = dstypes.ErrorKindOf(err).HTTPStatus()
			log.L(ctx).Errorf("%s %s failed (status=%d): %s", req.Method, req.URL.Path, status, err)
			body = &errorResponse{Error: err.Error()}
		}
		writeJSON(ctx, res, status, body)
	}, methods...)
}

func writeJSON(ctx context.Context, res http.ResponseWriter, status int, body any) {
	if body == nil {
		res.WriteHeader(status)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	if err := json.NewEncoder(res).Encode(body); err != nil {
		log.L(ctx).Errorf("Failed to write response: %s", err)
	}
}

func readJSON(ctx context.Context, req *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(nil, req.Body, maxBodySize)).Decode(v); err != nil {
		return i18n.NewError(ctx, msgs.MsgValidationPlainParse, err)
	}
	return nil
}

func roleParam(ctx context.Context, req *http.Request) (dsapi.Role, error) {
	role := req.URL.Query().Get("role")
	if role == "" {
		return "", nil
	}
	r, err := dstypes.ParseEnum[dsapi.Role](role)
	if err != nil {
		return "", i18n.NewError(ctx, msgs.MsgValidationInvalidEnum, role, "role")
	}
	return r, nil
}
