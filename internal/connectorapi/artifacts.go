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

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/router"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// ArtifactRegistration publishes a dataset. Content is required for FILE artifacts
// and ignored for EXTERNAL ones.
type ArtifactRegistration struct {
	Artifact *components.Artifact   `json:"artifact"`
	Content  *components.BlobObject `json:"content,omitempty"`
}

type UsageCount struct {
	AgreementID string `json:"agreementId"`
	Count       int64  `json:"count"`
}

func (s *apiServer) registerArtifactRoutes() {
	s.handle("/artifacts", s.registerArtifact, http.MethodPost)
	s.handle("/artifacts/{datasetId}", func(ctx context.Context, req *http.Request) (int, any, error) {
		artifact, err := s.catalog.GetArtifactForDataset(ctx, router.PathVar(req, "datasetId"))
		return http.StatusOK, artifact, err
	}, http.MethodGet)
	s.handle("/usage/{agreementId}", func(ctx context.Context, req *http.Request) (int, any, error) {
		agreementID := router.PathVar(req, "agreementId")
		count, err := s.usage.CurrentCount(ctx, agreementID)
		return http.StatusOK, &UsageCount{AgreementID: agreementID, Count: count}, err
	}, http.MethodGet)
	s.handle("/usage/{agreementId}", func(ctx context.Context, req *http.Request) (int, any, error) {
		return http.StatusNoContent, nil, s.usage.ResetCount(ctx, router.PathVar(req, "agreementId"))
	}, http.MethodDelete)
}

func (s *apiServer) registerArtifact(ctx context.Context, req *http.Request) (int, any, error) {
	var ar ArtifactRegistration
	if err := readJSON(ctx, req, &ar); err != nil {
		return -1, nil, err
	}
	if ar.Artifact == nil {
		return -1, nil, i18n.NewError(ctx, msgs.MsgValidationMissingField, "artifact", "ArtifactRegistration")
	}
	artifact, err := s.catalog.RegisterArtifact(ctx, ar.Artifact, ar.Content)
	return http.StatusCreated, artifact, err
}
