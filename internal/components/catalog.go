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

package components

import (
	"context"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
)

type ArtifactType string

const (
	ArtifactTypeFile     ArtifactType = "FILE"
	ArtifactTypeExternal ArtifactType = "EXTERNAL"
)

func (t ArtifactType) Enum() dstypes.Enum[ArtifactType] {
	return dstypes.Enum[ArtifactType](t)
}

func (t ArtifactType) Options() []string {
	return []string{
		string(ArtifactTypeFile),
		string(ArtifactTypeExternal),
	}
}

// Artifact is the data behind a dataset. FILE artifacts live in the blob store,
// EXTERNAL artifacts are fetched from a URL on each access.
type Artifact struct {
	DatasetID     string            `json:"datasetId"`
	ArtifactType  ArtifactType      `json:"artifactType"`
	Bucket        string            `json:"bucket,omitempty"`
	ObjectKey     string            `json:"objectKey,omitempty"`
	ExternalURL   string            `json:"externalUrl,omitempty"`
	Authorization string            `json:"authorization,omitempty"`
	ContentType   string            `json:"contentType,omitempty"`
	Created       dstypes.Timestamp `json:"created"`
}

type CatalogManager interface {
	ManagerLifecycle
	RegisterArtifact(ctx context.Context, artifact *Artifact, data *BlobObject) (*Artifact, error)
	GetArtifactForDataset(ctx context.Context, datasetID string) (*Artifact, error)
	// ValidateOffer checks the offer target resolves to a registered dataset
	ValidateOffer(ctx context.Context, offer *dsapi.Offer) error
	ReadArtifact(ctx context.Context, datasetID string) (*BlobObject, error)
}
