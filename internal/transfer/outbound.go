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
	"strings"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"gorm.io/gorm"
)

// RequestTransfer asks the provider for a transfer under an agreement. Passing
// the consumerPID of an earlier attempt makes the request safe to retry.
func (tm *transferManager) RequestTransfer(ctx context.Context, providerAddress, agreementID, format string, dataAddress *dsapi.DataAddress, consumerPID string) (*dsapi.TransferProcess, error) {
	agreement, err := tm.negotiation.GetAgreement(ctx, agreementID)
	if err != nil {
		return nil, err
	}
	if consumerPID == "" {
		consumerPID = dstypes.NewPID()
	} else {
		existing, err := tm.queryTransfers(ctx, tm.persistence.NOTX(), func(q *gorm.DB) *gorm.DB {
			return q.Where("consumer_pid = ?", consumerPID).Where("role = ?", dsapi.RoleConsumer).Limit(1)
		})
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return existing[0], nil
		}
	}
	ctx = log.WithExchange(ctx, exchangeKind, consumerPID)
	msg, err := dsapi.NewTransferRequestMessage(ctx, consumerPID, agreementID, format, tm.consumerCallback(), dataAddress)
	if err != nil {
		return nil, err
	}

	address := strings.TrimSuffix(providerAddress, "/") + "/transfers/request"
	var ack dsapi.TransferProcessAck
	if err := tm.send(ctx, address, msg, &ack); err != nil {
		return nil, err
	}
	if ack.ConsumerPID != consumerPID {
		return nil, i18n.NewError(ctx, msgs.MsgValidationPIDMismatch, "consumerPid", ack.ConsumerPID, consumerPID)
	}

	return tm.create(ctx, &dsapi.TransferProcess{
		ConsumerPID:     consumerPID,
		ProviderPID:     ack.ProviderPID,
		AgreementID:     agreementID,
		DatasetID:       agreement.Target,
		DataAddress:     dataAddress,
		Format:          format,
		CallbackAddress: providerAddress,
		State:           dsapi.TransferStateRequested,
		Role:            dsapi.RoleConsumer,
	})
}

// StartTransfer starts a requested transfer as provider, or restarts a
// suspended one in either role. A provider with no consumer supplied address
// hands out its own pull endpoint for the transfer.
func (tm *transferManager) StartTransfer(ctx context.Context, id string) (*dsapi.TransferProcess, error) {
	tp, err := tm.GetTransfer(ctx, id)
	if err != nil {
		return nil, err
	}
	dataAddress := tp.DataAddress
	if tp.Role == dsapi.RoleProvider && dataAddress == nil {
		dataAddress = tm.artifactAddress(tp)
	}
	return tm.applyTransition(ctx, tp, &transition{
		actor: tp.Role,
		to:    dsapi.TransferStateStarted,
		send: func(ctx context.Context, tp *dsapi.TransferProcess) error {
			var sendAddress *dsapi.DataAddress
			if tp.Role == dsapi.RoleProvider {
				sendAddress = dataAddress
			}
			msg, err := dsapi.NewTransferStartMessage(ctx, tp.ConsumerPID, tp.ProviderPID, sendAddress)
			if err == nil {
				err = tm.send(ctx, counterpartURL(tp, "start"), msg, nil)
			}
			return err
		},
		update: func(next *dsapi.TransferProcess) {
			next.DataAddress = dataAddress
		},
	})
}

func (tm *transferManager) CompleteTransfer(ctx context.Context, id string) (*dsapi.TransferProcess, error) {
	tp, err := tm.GetTransfer(ctx, id)
	if err != nil {
		return nil, err
	}
	return tm.applyTransition(ctx, tp, &transition{
		actor: tp.Role,
		to:    dsapi.TransferStateCompleted,
		send: func(ctx context.Context, tp *dsapi.TransferProcess) error {
			msg, err := dsapi.NewTransferCompletionMessage(ctx, tp.ConsumerPID, tp.ProviderPID)
			if err == nil {
				err = tm.send(ctx, counterpartURL(tp, "completion"), msg, nil)
			}
			return err
		},
	})
}

func (tm *transferManager) SuspendTransfer(ctx context.Context, id, code string, reason ...string) (*dsapi.TransferProcess, error) {
	tp, err := tm.GetTransfer(ctx, id)
	if err != nil {
		return nil, err
	}
	return tm.applyTransition(ctx, tp, &transition{
		actor: tp.Role,
		to:    dsapi.TransferStateSuspended,
		send: func(ctx context.Context, tp *dsapi.TransferProcess) error {
			msg, err := dsapi.NewTransferSuspensionMessage(ctx, tp.ConsumerPID, tp.ProviderPID, code, reason...)
			if err == nil {
				err = tm.send(ctx, counterpartURL(tp, "suspension"), msg, nil)
			}
			return err
		},
	})
}

func (tm *transferManager) TerminateTransfer(ctx context.Context, id, code string, reason ...string) (*dsapi.TransferProcess, error) {
	tp, err := tm.GetTransfer(ctx, id)
	if err != nil {
		return nil, err
	}
	return tm.applyTransition(ctx, tp, &transition{
		actor: tp.Role,
		to:    dsapi.TransferStateTerminated,
		send: func(ctx context.Context, tp *dsapi.TransferProcess) error {
			msg, err := dsapi.NewTransferTerminationMessage(ctx, tp.ConsumerPID, tp.ProviderPID, code, reason...)
			if err == nil {
				err = tm.send(ctx, counterpartURL(tp, "termination"), msg, nil)
			}
			return err
		},
	})
}

// DownloadData pulls the artifact of a started transfer into the download
// bucket, keyed by the transfer id
func (tm *transferManager) DownloadData(ctx context.Context, id string) (*dsapi.TransferProcess, error) {
	tp, err := tm.GetTransfer(ctx, id)
	if err != nil {
		return nil, err
	}
	ctx = log.WithExchange(ctx, exchangeKind, tp.LocalPID())
	if tp.DataAddress == nil || tp.DataAddress.Endpoint == "" {
		return nil, i18n.NewError(ctx, msgs.MsgValidationDataAddressMissing, tp.ID)
	}
	grant, err := tm.gate.CheckAccess(ctx, tp, components.AccessDownload)
	if err != nil {
		return nil, err
	}
	obj, err := tm.protocolClient.PullData(ctx, tp.DataAddress.Endpoint, tp.DataAddress.Property(dsapi.EndpointPropAuthorization), tm.maxArtifactSize)
	if err != nil {
		return nil, err
	}
	if err := tm.blobStore.Put(ctx, tm.downloadBucket, tp.ID, obj); err != nil {
		return nil, err
	}
	next := tp.CopyWithNewState(tp.State, tm.nodeName)
	next.IsDownloaded = true
	next.DataID = tp.ID
	if err := tm.write(ctx, tp, next); err != nil {
		return nil, err
	}
	tm.gate.RecordConsumption(ctx, grant)
	log.L(ctx).Infof("Downloaded %d bytes for transfer %s", len(obj.Data), tp.ID)
	return next, nil
}

func (tm *transferManager) ViewData(ctx context.Context, id string) (*components.BlobObject, error) {
	tp, err := tm.GetTransfer(ctx, id)
	if err != nil {
		return nil, err
	}
	ctx = log.WithExchange(ctx, exchangeKind, tp.LocalPID())
	grant, err := tm.gate.CheckAccess(ctx, tp, components.AccessView)
	if err != nil {
		return nil, err
	}
	obj, err := tm.blobStore.Get(ctx, tm.downloadBucket, tp.DataID)
	if err != nil {
		return nil, err
	}
	tm.gate.RecordConsumption(ctx, grant)
	return obj, nil
}
