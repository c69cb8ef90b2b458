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

package catalog

import (
	"context"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/confutil"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/persistence"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"gorm.io/gorm/clause"
)

type catalogManager struct {
	bgCtx context.Context
	conf  *dsconf.TransferConfig

	artifactBucket  string
	maxArtifactSize int64

	persistence    persistence.Persistence
	blobStore      components.BlobStore
	protocolClient components.ProtocolClient
}

func NewCatalogManager(bgCtx context.Context, conf *dsconf.TransferConfig) components.CatalogManager {
	return &catalogManager{
		bgCtx:           bgCtx,
		conf:            conf,
		artifactBucket:  confutil.StringNotEmpty(conf.ArtifactBucket, *dsconf.TransferDefaults.ArtifactBucket),
		maxArtifactSize: confutil.ByteSize(conf.MaxArtifactSize, 0, *dsconf.TransferDefaults.MaxArtifactSize),
	}
}

func (cm *catalogManager) PreInit(pic components.PreInitComponents) error {
	cm.persistence = pic.Persistence()
	cm.blobStore = pic.BlobStore()
	cm.protocolClient = pic.ProtocolClient()
	return nil
}

func (cm *catalogManager) PostInit(c components.AllComponents) error {
	return nil
}

func (cm *catalogManager) Start() error {
	exists, err := cm.blobStore.BucketExists(cm.bgCtx, cm.artifactBucket)
	if err == nil && !exists {
		err = cm.blobStore.CreateBucket(cm.bgCtx, cm.artifactBucket)
	}
	return err
}

func (cm *catalogManager) Stop() {}

type dbArtifact struct {
	DatasetID     string            `gorm:"column:dataset_id;primaryKey"`
	ArtifactType  string            `gorm:"column:artifact_type"`
	Bucket        string            `gorm:"column:bucket"`
	ObjectKey     string            `gorm:"column:object_key"`
	ExternalURL   string            `gorm:"column:external_url"`
	Authorization string            `gorm:"column:authorization"`
	ContentType   string            `gorm:"column:content_type"`
	Created       dstypes.Timestamp `gorm:"column:created"`
}

func (dbArtifact) TableName() string {
	return "artifacts"
}

func (a *dbArtifact) toAPI() *components.Artifact {
	return &components.Artifact{
		DatasetID:     a.DatasetID,
		ArtifactType:  components.ArtifactType(a.ArtifactType),
		Bucket:        a.Bucket,
		ObjectKey:     a.ObjectKey,
		ExternalURL:   a.ExternalURL,
		Authorization: a.Authorization,
		ContentType:   a.ContentType,
		Created:       a.Created,
	}
}

// RegisterArtifact publishes the data behind a dataset, replacing any previous registration.
// FILE artifacts have their bytes stored in the artifact bucket under the dataset id.
func (cm *catalogManager) RegisterArtifact(ctx context.Context, artifact *components.Artifact, data *components.BlobObject) (*components.Artifact, error) {
	if artifact.DatasetID == "" {
		return nil, i18n.NewError(ctx, msgs.MsgValidationMissingField, "datasetId", "Artifact")
	}
	artifactType, err := dstypes.ParseEnum[components.ArtifactType](string(artifact.ArtifactType))
	if err != nil {
		return nil, err
	}

	dbA := &dbArtifact{
		DatasetID:    artifact.DatasetID,
		ArtifactType: string(artifactType),
		ContentType:  artifact.ContentType,
		Created:      dstypes.TimestampNow(),
	}
	switch artifactType {
	case components.ArtifactTypeFile:
		if data == nil {
			return nil, i18n.NewError(ctx, msgs.MsgValidationMissingField, "data", "Artifact")
		}
		dbA.Bucket = cm.artifactBucket
		dbA.ObjectKey = artifact.DatasetID
		if data.ContentType == "" {
			data.ContentType = artifact.ContentType
		}
		if err := cm.blobStore.Put(ctx, dbA.Bucket, dbA.ObjectKey, data); err != nil {
			return nil, err
		}
	case components.ArtifactTypeExternal:
		if artifact.ExternalURL == "" {
			return nil, i18n.NewError(ctx, msgs.MsgValidationMissingField, "externalUrl", "Artifact")
		}
		dbA.ExternalURL = artifact.ExternalURL
		dbA.Authorization = artifact.Authorization
	}

	err = cm.persistence.DB().
		WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dataset_id"}},
			UpdateAll: true,
		}).
		Create(dbA).
		Error
	if err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Registered %s artifact for dataset %s", dbA.ArtifactType, dbA.DatasetID)
	return dbA.toAPI(), nil
}

func (cm *catalogManager) GetArtifactForDataset(ctx context.Context, datasetID string) (*components.Artifact, error) {
	var artifacts []*dbArtifact
	err := cm.persistence.DB().
		WithContext(ctx).
		Where("dataset_id = ?", datasetID).
		Limit(1).
		Find(&artifacts).
		Error
	if err != nil {
		return nil, err
	}
	if len(artifacts) == 0 {
		return nil, i18n.NewError(ctx, msgs.MsgArtifactNotFound, datasetID)
	}
	return artifacts[0].toAPI(), nil
}

func (cm *catalogManager) ValidateOffer(ctx context.Context, offer *dsapi.Offer) error {
	if offer == nil {
		return i18n.NewError(ctx, msgs.MsgValidationMissingField, "offer", "ContractRequestMessage")
	}
	if err := offer.Validate(ctx); err != nil {
		return err
	}
	if _, err := cm.GetArtifactForDataset(ctx, offer.Target); err != nil {
		if dstypes.ErrorKindOf(err) == dstypes.ErrorKindNotFound {
			return i18n.NewError(ctx, msgs.MsgValidationOfferUnknownTarget, offer.Target)
		}
		return err
	}
	return nil
}

func (cm *catalogManager) ReadArtifact(ctx context.Context, datasetID string) (*components.BlobObject, error) {
	artifact, err := cm.GetArtifactForDataset(ctx, datasetID)
	if err != nil {
		return nil, err
	}
	var obj *components.BlobObject
	switch artifact.ArtifactType {
	case components.ArtifactTypeFile:
		obj, err = cm.blobStore.Get(ctx, artifact.Bucket, artifact.ObjectKey)
	case components.ArtifactTypeExternal:
		obj, err = cm.protocolClient.PullData(ctx, artifact.ExternalURL, artifact.Authorization, cm.maxArtifactSize)
	default:
		err = i18n.NewError(ctx, msgs.MsgArtifactTypeUnknown, artifact.ArtifactType, datasetID)
	}
	if err != nil {
		return nil, err
	}
	if obj.ContentType == "" {
		obj.ContentType = artifact.ContentType
	}
	return obj, nil
}
