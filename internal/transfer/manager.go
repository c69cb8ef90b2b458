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

package transfer

import (
	"context"
	"fmt"
	"strings"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/metrics"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/protocol"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/confutil"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/persistence"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"gorm.io/gorm"
)

const exchangeKind = "transfer"

type transferManager struct {
	bgCtx context.Context

	nodeName        string
	callbackAddress string
	credentials     string
	downloadBucket  string
	maxArtifactSize int64

	persistence    persistence.Persistence
	protocolClient components.ProtocolClient
	blobStore      components.BlobStore
	metrics        metrics.ConnectorMetrics
	negotiation    components.NegotiationManager
	catalog        components.CatalogManager
	gate           components.EnforcementGate
}

func NewTransferManager(bgCtx context.Context, identity *dsconf.ConnectorIdentityConfig, conf *dsconf.TransferConfig) components.TransferManager {
	return &transferManager{
		bgCtx:           bgCtx,
		nodeName:        confutil.StringOrEmpty(identity.NodeName, ""),
		callbackAddress: strings.TrimSuffix(confutil.StringOrEmpty(identity.CallbackAddress, ""), "/"),
		credentials:     confutil.StringOrEmpty(identity.Credentials, ""),
		downloadBucket:  confutil.StringNotEmpty(conf.DownloadBucket, *dsconf.TransferDefaults.DownloadBucket),
		maxArtifactSize: confutil.ByteSize(conf.MaxArtifactSize, 0, *dsconf.TransferDefaults.MaxArtifactSize),
	}
}

func (tm *transferManager) PreInit(pic components.PreInitComponents) error {
	tm.persistence = pic.Persistence()
	tm.protocolClient = pic.ProtocolClient()
	tm.blobStore = pic.BlobStore()
	tm.metrics = pic.Metrics()
	return nil
}

func (tm *transferManager) PostInit(c components.AllComponents) error {
	tm.negotiation = c.NegotiationManager()
	tm.catalog = c.CatalogManager()
	tm.gate = c.EnforcementGate()
	return nil
}

func (tm *transferManager) Start() error {
	exists, err := tm.blobStore.BucketExists(tm.bgCtx, tm.downloadBucket)
	if err == nil && !exists {
		err = tm.blobStore.CreateBucket(tm.bgCtx, tm.downloadBucket)
	}
	return err
}

func (tm *transferManager) Stop() {}

func (tm *transferManager) consumerCallback() string {
	return tm.callbackAddress + "/consumer"
}

// artifactAddress is the pull endpoint this provider serves for a transfer
func (tm *transferManager) artifactAddress(tp *dsapi.TransferProcess) *dsapi.DataAddress {
	return &dsapi.DataAddress{
		EndpointType: dsapi.EndpointTypeHTTP,
		Endpoint:     fmt.Sprintf("%s/artifacts/%s", tm.callbackAddress, dstypes.EncodeArtifactToken(tp.ConsumerPID, tp.ProviderPID)),
	}
}

func counterpartURL(tp *dsapi.TransferProcess, verb string) string {
	pid := tp.ProviderPID
	if tp.Role == dsapi.RoleProvider {
		pid = tp.ConsumerPID
	}
	return fmt.Sprintf("%s/transfers/%s/%s", strings.TrimSuffix(tp.CallbackAddress, "/"), pid, verb)
}

func (tm *transferManager) send(ctx context.Context, address string, msg dsapi.ProtocolMessage, ack *dsapi.TransferProcessAck) error {
	log.L(ctx).Debugf("Sending %s to %s", msg.ProtocolType(), address)
	res, err := tm.protocolClient.SendRequestProtocol(ctx, address, msg, tm.credentials)
	if err != nil {
		return err
	}
	if ack != nil {
		err = protocol.ParseResponse(ctx, address, res, dsapi.TypeTransferProcess, ack)
		if err == nil {
			if verr := ack.Validate(ctx); verr != nil {
				err = i18n.WrapError(ctx, verr, msgs.MsgRemoteResponseInvalid, address, verr)
			}
		}
	} else {
		err = protocol.CheckResponse(ctx, address, res)
	}
	if err != nil {
		tm.metrics.IncRemoteFailure(exchangeKind, msg.ProtocolType())
		log.L(ctx).Errorf("%s to %s failed: %s", msg.ProtocolType(), address, err)
	}
	return err
}

type transition struct {
	actor dsapi.Role
	to    dsapi.TransferState
	// send runs once the transition is known to be legal. Nothing is persisted if it fails.
	send   func(ctx context.Context, tp *dsapi.TransferProcess) error
	update func(next *dsapi.TransferProcess)
}

func (tm *transferManager) applyTransition(ctx context.Context, tp *dsapi.TransferProcess, t *transition) (*dsapi.TransferProcess, error) {
	ctx = log.WithExchange(ctx, exchangeKind, tp.LocalPID())
	if err := CheckTransition(ctx, t.actor, tp.State, t.to); err != nil {
		return nil, err
	}
	if t.send != nil {
		if err := t.send(ctx, tp); err != nil {
			return nil, err
		}
	}
	next := tp.CopyWithNewState(t.to, tm.nodeName)
	if t.update != nil {
		t.update(next)
	}
	if err := tm.write(ctx, tp, next); err != nil {
		return nil, err
	}
	tm.metrics.IncTransition(exchangeKind, string(tp.State), string(next.State))
	log.L(ctx).Infof("Transfer process %s -> %s (version=%d)", tp.State, next.State, next.Version)
	return next, nil
}

func (tm *transferManager) write(ctx context.Context, prev, next *dsapi.TransferProcess) error {
	return tm.persistence.Transaction(ctx, func(ctx context.Context, dbTX persistence.DBTX) error {
		return tm.updateTransfer(ctx, dbTX, prev, next)
	})
}

func (tm *transferManager) create(ctx context.Context, tp *dsapi.TransferProcess) (*dsapi.TransferProcess, error) {
	now := dstypes.TimestampNow()
	tp.ID = tp.LocalPID()
	tp.Created = now
	tp.CreatedBy = tm.nodeName
	tp.LastModified = now
	tp.LastModifiedBy = tm.nodeName
	ctx = log.WithExchange(ctx, exchangeKind, tp.ID)
	err := tm.persistence.Transaction(ctx, func(ctx context.Context, dbTX persistence.DBTX) error {
		return tm.insertTransfer(ctx, dbTX, tp)
	})
	if err != nil {
		return nil, err
	}
	tm.metrics.IncTransition(exchangeKind, "", string(tp.State))
	log.L(ctx).Infof("Transfer process created in state %s as %s for agreement %s", tp.State, tp.Role, tp.AgreementID)
	return tp, nil
}

func (tm *transferManager) GetTransfer(ctx context.Context, id string) (*dsapi.TransferProcess, error) {
	return tm.getTransfer(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("id = ?", id)
	}, id)
}

func (tm *transferManager) GetTransferByPID(ctx context.Context, localRole dsapi.Role, pid string) (*dsapi.TransferProcess, error) {
	column := "provider_pid"
	if localRole == dsapi.RoleConsumer {
		column = "consumer_pid"
	}
	return tm.getTransfer(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where(column+" = ?", pid).Where("role = ?", localRole)
	}, pid)
}

func (tm *transferManager) ListTransfers(ctx context.Context, role dsapi.Role) ([]*dsapi.TransferProcess, error) {
	return tm.queryTransfers(ctx, tm.persistence.NOTX(), func(q *gorm.DB) *gorm.DB {
		if role != "" {
			q = q.Where("role = ?", role)
		}
		return q
	})
}
