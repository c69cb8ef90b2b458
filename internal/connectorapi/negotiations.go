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
	"net/http"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/router"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

type NegotiationRequest struct {
	// Protocol base URL of the counterpart, either the provider (consumer initiated) or the consumer
	CounterpartAddress string       `json:"counterpartAddress"`
	Offer              *dsapi.Offer `json:"offer"`
	// Our own pid for the negotiation, to retry a request that failed
	PID                string       `json:"pid,omitempty"`
}

type OfferRequest struct {
	Offer *dsapi.Offer `json:"offer"`
}

type TerminateRequest struct {
	Code   string   `json:"code"`
	Reason []string `json:"reason,omitempty"`
}

func (s *apiServer) registerNegotiationRoutes() {
	nm := s.negotiation
	s.handle("/negotiations", s.listNegotiations, http.MethodGet)
	s.handle("/negotiations/request", s.startNegotiation(nm.RequestNegotiation), http.MethodPost)
	s.handle("/negotiations/offer", s.startNegotiation(nm.OfferNegotiation), http.MethodPost)
	s.handle("/negotiations/{id}", negotiationAction(nm.GetNegotiation), http.MethodGet)
	s.handle("/negotiations/{id}/history", func(ctx context.Context, req *http.Request) (int, any, error) {
		history, err := nm.GetNegotiationHistory(ctx, router.PathVar(req, "id"))
		return http.StatusOK, history, err
	}, http.MethodGet)
	s.handle("/negotiations/{id}/counter-request", negotiationOffer(nm.CounterRequest), http.MethodPost)
	s.handle("/negotiations/{id}/counter-offer", negotiationOffer(nm.CounterOffer), http.MethodPost)
	s.handle("/negotiations/{id}/accept", negotiationAction(nm.AcceptOffer), http.MethodPost)
	s.handle("/negotiations/{id}/approve", negotiationAction(nm.ApproveNegotiation), http.MethodPost)
	s.handle("/negotiations/{id}/verify", negotiationAction(nm.VerifyNegotiation), http.MethodPost)
	s.handle("/negotiations/{id}/finalize", negotiationAction(nm.FinalizeNegotiation), http.MethodPost)
	s.handle("/negotiations/{id}/terminate", func(ctx context.Context, req *http.Request) (int, any, error) {
		var tr TerminateRequest
		if err := readJSON(ctx, req, &tr); err != nil {
			return -1, nil, err
		}
		cn, err := nm.TerminateNegotiation(ctx, router.PathVar(req, "id"), tr.Code, tr.Reason...)
		return http.StatusOK, cn, err
	}, http.MethodPost)
	s.handle("/agreements/{id}", func(ctx context.Context, req *http.Request) (int, any, error) {
		agreement, err := nm.GetAgreement(ctx, router.PathVar(req, "id"))
		return http.StatusOK, agreement, err
	}, http.MethodGet)
}

func (s *apiServer) listNegotiations(ctx context.Context, req *http.Request) (int, any, error) {
	role, err := roleParam(ctx, req)
	if err != nil {
		return -1, nil, err
	}
	cns, err := s.negotiation.ListNegotiations(ctx, role)
	return http.StatusOK, cns, err
}

func (s *apiServer) startNegotiation(start func(ctx context.Context, address string, offer *dsapi.Offer, pid string) (*dsapi.ContractNegotiation, error)) handler {
	return func(ctx context.Context, req *http.Request) (int, any, error) {
		var nr NegotiationRequest
		if err := readJSON(ctx, req, &nr); err != nil {
			return -1, nil, err
		}
		if nr.CounterpartAddress == "" {
			return -1, nil, i18n.NewError(ctx, msgs.MsgValidationMissingField, "counterpartAddress", "NegotiationRequest")
		}
		cn, err := start(ctx, nr.CounterpartAddress, nr.Offer, nr.PID)
		return http.StatusCreated, cn, err
	}
}

func negotiationAction(action func(ctx context.Context, id string) (*dsapi.ContractNegotiation, error)) handler {
	return func(ctx context.Context, req *http.Request) (int, any, error) {
		cn, err := action(ctx, router.PathVar(req, "id"))
		return http.StatusOK, cn, err
	}
}

func negotiationOffer(action func(ctx context.Context, id string, offer *dsapi.Offer) (*dsapi.ContractNegotiation, error)) handler {
	return func(ctx context.Context, req *http.Request) (int, any, error) {
		var or OfferRequest
		if err := readJSON(ctx, req, &or); err != nil {
			return -1, nil, err
		}
		cn, err := action(ctx, router.PathVar(req, "id"), or.Offer)
		return http.StatusOK, cn, err
	}
}
