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
	"context"
	"net"
	"net/http"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/router"
)

// ProtocolServer receives the protocol messages counterparts send, on both the
// provider endpoints and the consumer callback endpoints beneath /consumer
type ProtocolServer interface {
	http.Handler
	Start() error
	Stop()
	Addr() net.Addr
}

type protocolServer struct {
	bgCtx       context.Context
	router      router.Router
	negotiation components.NegotiationManager
	transfer    components.TransferManager
}

func NewProtocolServer(ctx context.Context, conf *dsconf.HTTPServerConfig, c components.Managers) (_ ProtocolServer, err error) {
	r, err := router.NewRouter(ctx, "Protocol", conf)
	if err != nil {
		return nil, err
	}
	return newProtocolServer(ctx, r, c), nil
}

func newProtocolServer(ctx context.Context, r router.Router, c components.Managers) *protocolServer {
	s := &protocolServer{
		bgCtx:       ctx,
		router:      r,
		negotiation: c.NegotiationManager(),
		transfer:    c.TransferManager(),
	}
	s.registerNegotiationRoutes()
	s.registerTransferRoutes()
	log.L(ctx).Debugf("Protocol routes registered")
	return s
}

func (s *protocolServer) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(res, req)
}

func (s *protocolServer) Start() error {
	return s.router.Start()
}

func (s *protocolServer) Stop() {
	s.router.Stop()
}

func (s *protocolServer) Addr() net.Addr {
	return s.router.Addr()
}
