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
	"strconv"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/router"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

type TransferRequest struct {
	ProviderAddress string             `json:"providerAddress"`
	AgreementID     string             `json:"agreementId"`
	Format          string             `json:"format,omitempty"`
	DataAddress     *dsapi.DataAddress `json:"dataAddress,omitempty"`
	// Reuse the consumerPid of a failed attempt to retry it
	ConsumerPID     string             `json:"consumerPid,omitempty"`
}

func (s *apiServer) registerTransferRoutes() {
	tm := s.transfer
	s.handle("/transfers", s.listTransfers, http.MethodGet)
	s.handle("/transfers/request", s.requestTransfer, http.MethodPost)
	s.handle("/transfers/{id}", transferAction(tm.GetTransfer), http.MethodGet)
	s.handle("/transfers/{id}/history", func(ctx context.Context, req *http.Request) (int, any, error) {
		history, err := tm.GetTransferHistory(ctx, router.PathVar(req, "id"))
		return http.StatusOK, history, err
	}, http.MethodGet)
	s.handle("/transfers/{id}/start", transferAction(tm.StartTransfer), http.MethodPost)
	s.handle("/transfers/{id}/complete", transferAction(tm.CompleteTransfer), http.MethodPost)
	s.handle("/transfers/{id}/suspend", transferCoded(tm.SuspendTransfer), http.MethodPost)
	s.handle("/transfers/{id}/terminate", transferCoded(tm.TerminateTransfer), http.MethodPost)
	s.handle("/transfers/{id}/download", transferAction(tm.DownloadData), http.MethodPost)
	s.router.HandleFunc(apiPrefix+"/transfers/{id}/data", s.viewData, http.MethodGet)
}

func (s *apiServer) listTransfers(ctx context.Context, req *http.Request) (int, any, error) {
	role, err := roleParam(ctx, req)
	if err != nil {
		return -1, nil, err
	}
	tps, err := s.transfer.ListTransfers(ctx, role)
	return http.StatusOK, tps, err
}

func (s *apiServer) requestTransfer(ctx context.Context, req *http.Request) (int, any, error) {
	var tr TransferRequest
	if err := readJSON(ctx, req, &tr); err != nil {
		return -1, nil, err
	}
	if tr.ProviderAddress == "" {
		return -1, nil, i18n.NewError(ctx, msgs.MsgValidationMissingField, "providerAddress", "TransferRequest")
	}
	if tr.Format == "" {
		tr.Format = dsapi.FormatHTTPPull
	}
	tp, err := s.transfer.RequestTransfer(ctx, tr.ProviderAddress, tr.AgreementID, tr.Format, tr.DataAddress, tr.ConsumerPID)
	return http.StatusCreated, tp, err
}

func transferAction(action func(ctx context.Context, id string) (*dsapi.TransferProcess, error)) handler {
	return func(ctx context.Context, req *http.Request) (int, any, error) {
		tp, err := action(ctx, router.PathVar(req, "id"))
		return http.StatusOK, tp, err
	}
}

func transferCoded(action func(ctx context.Context, id, code string, reason ...string) (*dsapi.TransferProcess, error)) handler {
	return func(ctx context.Context, req *http.Request) (int, any, error) {
		var tr TerminateRequest
		if err := readJSON(ctx, req, &tr); err != nil {
			return -1, nil, err
		}
		tp, err := action(ctx, router.PathVar(req, "id"), tr.Code, tr.Reason...)
		return http.StatusOK, tp, err
	}
}

// viewData returns the downloaded bytes as stored, with their original content type
func (s *apiServer) viewData(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	obj, err := s.transfer.ViewData(ctx, router.PathVar(req, "id"))
	if err != nil {
		status := dstypes.ErrorKindOf(err).HTTPStatus()
		log.L(ctx).Errorf("View of transfer data failed (status=%d): %s", status, err)
		writeJSON(ctx, res, status, &errorResponse{Error: err.Error()})
		return
	}
	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	res.Header().Set("Content-Type", contentType)
	res.Header().Set("Content-Length", strconv.Itoa(len(obj.Data)))
	res.WriteHeader(http.StatusOK)
	_, _ = res.Write(obj.Data)
}
