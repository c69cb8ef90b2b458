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
	"strconv"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/router"
)

func transferRoute[T any, M interface {
	*T
	dsapi.ProtocolMessage
}](localRole dsapi.Role, status int, invoke func(ctx context.Context, pid string, msg M) (*dsapi.TransferProcess, error)) func(http.ResponseWriter, *http.Request) {
	return func(res http.ResponseWriter, req *http.Request) {
		pid := router.PathVar(req, "pid")
		msg := M(new(T))
		ctx := log.WithLogField(req.Context(), "dsp", msg.ProtocolType())
		consumerPID, providerPID := pidsFor(localRole, pid)
		if err := readMessage(ctx, req, msg); err != nil {
			writeError(ctx, res, err, consumerPID, providerPID, true)
			return
		}
		tp, err := invoke(ctx, pid, msg)
		if err != nil {
			writeError(ctx, res, err, consumerPID, providerPID, true)
			return
		}
		writeProtocol(ctx, res, status, tp.Ack(), dsapi.TypeTransferProcess)
	}
}

// inRole adapts a handler taking the local role to a route
func inRole[M any](localRole dsapi.Role, fn func(ctx context.Context, localRole dsapi.Role, pid string, msg M) (*dsapi.TransferProcess, error)) func(ctx context.Context, pid string, msg M) (*dsapi.TransferProcess, error) {
	return func(ctx context.Context, pid string, msg M) (*dsapi.TransferProcess, error) {
		return fn(ctx, localRole, pid, msg)
	}
}

func (s *protocolServer) registerTransferRoutes() {
	tm := s.transfer
	provider, consumer := dsapi.RoleProvider, dsapi.RoleConsumer

	s.router.HandleFunc("/transfers/request", transferRoute(provider, http.StatusCreated,
		func(ctx context.Context, _ string, msg *dsapi.TransferRequestMessage) (*dsapi.TransferProcess, error) {
			return tm.HandleTransferRequest(ctx, msg)
		}), http.MethodPost)
	s.router.HandleFunc("/transfers/{pid}", s.getTransfer, http.MethodGet)

	for _, r := range []struct {
		prefix string
		role   dsapi.Role
	}{
		{prefix: "/transfers", role: provider},
		{prefix: "/consumer/transfers", role: consumer},
	} {
		s.router.HandleFunc(r.prefix+"/{pid}/start", transferRoute(r.role, http.StatusOK, inRole(r.role, tm.HandleStart)), http.MethodPost)
		s.router.HandleFunc(r.prefix+"/{pid}/completion", transferRoute(r.role, http.StatusOK, inRole(r.role, tm.HandleCompletion)), http.MethodPost)
		s.router.HandleFunc(r.prefix+"/{pid}/suspension", transferRoute(r.role, http.StatusOK, inRole(r.role, tm.HandleSuspension)), http.MethodPost)
		s.router.HandleFunc(r.prefix+"/{pid}/termination", transferRoute(r.role, http.StatusOK, inRole(r.role, tm.HandleTermination)), http.MethodPost)
	}

	s.router.HandleFunc("/artifacts/{token}", s.serveArtifact, http.MethodGet)
}

func (s *protocolServer) getTransfer(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	pid := router.PathVar(req, "pid")
	tp, err := s.transfer.GetTransferByPID(ctx, dsapi.RoleProvider, pid)
	if err != nil {
		writeError(ctx, res, err, "", pid, true)
		return
	}
	writeProtocol(ctx, res, http.StatusOK, tp.Ack(), dsapi.TypeTransferProcess)
}

// serveArtifact is the pull endpoint handed out in a provider's data address.
// The token in the path is the only credential.
func (s *protocolServer) serveArtifact(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	obj, err := s.transfer.ServeArtifact(ctx, router.PathVar(req, "token"))
	if err != nil {
		kind := dstypes.ErrorKindOf(err)
		log.L(ctx).Errorf("Artifact request refused (%s): %s", kind, err)
		res.Header().Set("Content-Type", "text/plain")
		res.WriteHeader(kind.HTTPStatus())
		_, _ = res.Write([]byte(err.Error()))
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
