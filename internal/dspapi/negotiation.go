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
	"net/http"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/router"
)

// negotiationRoute decodes a message of type T, passes it with the {pid} path
// variable to invoke, and answers with the resulting negotiation's ack
func negotiationRoute[T any, M interface {
	*T
	dsapi.ProtocolMessage
}](localRole dsapi.Role, status int, invoke func(ctx context.Context, pid string, msg M) (*dsapi.ContractNegotiation, error)) func(http.ResponseWriter, *http.Request) {
	return func(res http.ResponseWriter, req *http.Request) {
		pid := router.PathVar(req, "pid")
		msg := M(new(T))
		ctx := log.WithLogField(req.Context(), "dsp", msg.ProtocolType())
		consumerPID, providerPID := pidsFor(localRole, pid)
		if err := readMessage(ctx, req, msg); err != nil {
			writeError(ctx, res, err, consumerPID, providerPID, false)
			return
		}
		cn, err := invoke(ctx, pid, msg)
		if err != nil {
			writeError(ctx, res, err, consumerPID, providerPID, false)
			return
		}
		writeProtocol(ctx, res, status, cn.Ack(), dsapi.TypeContractNegotiation)
	}
}

func pidsFor(localRole dsapi.Role, pid string) (consumerPID, providerPID string) {
	if localRole == dsapi.RoleConsumer {
		return pid, ""
	}
	return "", pid
}

func (s *protocolServer) registerNegotiationRoutes() {
	nm := s.negotiation
	provider, consumer := dsapi.RoleProvider, dsapi.RoleConsumer

	s.router.HandleFunc("/negotiations/request", negotiationRoute(provider, http.StatusCreated,
		func(ctx context.Context, _ string, msg *dsapi.ContractRequestMessage) (*dsapi.ContractNegotiation, error) {
			return nm.HandleContractRequest(ctx, "", msg)
		}), http.MethodPost)
	s.router.HandleFunc("/negotiations/{pid}", s.getNegotiation, http.MethodGet)
	s.router.HandleFunc("/negotiations/{pid}/request", negotiationRoute(provider, http.StatusOK, nm.HandleContractRequest), http.MethodPost)
	s.router.HandleFunc("/negotiations/{pid}/agreement/verification", negotiationRoute(provider, http.StatusOK, nm.HandleVerification), http.MethodPost)
	s.router.HandleFunc("/negotiations/{pid}/events", negotiationRoute(provider, http.StatusOK,
		func(ctx context.Context, pid string, msg *dsapi.ContractNegotiationEventMessage) (*dsapi.ContractNegotiation, error) {
			return nm.HandleEvent(ctx, provider, pid, msg)
		}), http.MethodPost)
	s.router.HandleFunc("/negotiations/{pid}/termination", negotiationRoute(provider, http.StatusOK,
		func(ctx context.Context, pid string, msg *dsapi.ContractNegotiationTerminationMessage) (*dsapi.ContractNegotiation, error) {
			return nm.HandleTermination(ctx, provider, pid, msg)
		}), http.MethodPost)

	s.router.HandleFunc("/consumer/negotiations/offers", negotiationRoute(consumer, http.StatusCreated,
		func(ctx context.Context, _ string, msg *dsapi.ContractOfferMessage) (*dsapi.ContractNegotiation, error) {
			return nm.HandleContractOffer(ctx, "", msg)
		}), http.MethodPost)
	s.router.HandleFunc("/consumer/negotiations/{pid}/offers", negotiationRoute(consumer, http.StatusOK, nm.HandleContractOffer), http.MethodPost)
	s.router.HandleFunc("/consumer/negotiations/{pid}/agreement", negotiationRoute(consumer, http.StatusOK, nm.HandleAgreement), http.MethodPost)
	s.router.HandleFunc("/consumer/negotiations/{pid}/events", negotiationRoute(consumer, http.StatusOK,
		func(ctx context.Context, pid string, msg *dsapi.ContractNegotiationEventMessage) (*dsapi.ContractNegotiation, error) {
			return nm.HandleEvent(ctx, consumer, pid, msg)
		}), http.MethodPost)
	s.router.HandleFunc("/consumer/negotiations/{pid}/termination", negotiationRoute(consumer, http.StatusOK,
		func(ctx context.Context, pid string, msg *dsapi.ContractNegotiationTerminationMessage) (*dsapi.ContractNegotiation, error) {
			return nm.HandleTermination(ctx, consumer, pid, msg)
		}), http.MethodPost)
}

func (s *protocolServer) getNegotiation(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	pid := router.PathVar(req, "pid")
	cn, err := s.negotiation.GetNegotiationByPID(ctx, dsapi.RoleProvider, pid)
	if err != nil {
		writeError(ctx, res, err, "", pid, false)
		return
	}
	writeProtocol(ctx, res, http.StatusOK, cn.Ack(), dsapi.TypeContractNegotiation)
}
