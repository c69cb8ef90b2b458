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

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"gorm.io/gorm"
)

func (tm *transferManager) loadForMessage(ctx context.Context, localRole dsapi.Role, pid, consumerPID, providerPID string) (*dsapi.TransferProcess, error) {
	tp, err := tm.GetTransferByPID(ctx, localRole, pid)
	if err != nil {
		return nil, err
	}
	if consumerPID != tp.ConsumerPID {
		return nil, i18n.NewError(ctx, msgs.MsgValidationPIDMismatch, "consumerPid", consumerPID, tp.ConsumerPID)
	}
	if providerPID != tp.ProviderPID {
		return nil, i18n.NewError(ctx, msgs.MsgValidationPIDMismatch, "providerPid", providerPID, tp.ProviderPID)
	}
	return tp, nil
}

// HandleTransferRequest accepts a pull request against an agreement whose
// negotiation has been finalized. A re-delivered request returns the
// transfer process created the first time.
func (tm *transferManager) HandleTransferRequest(ctx context.Context, msg *dsapi.TransferRequestMessage) (*dsapi.TransferProcess, error) {
	if err := msg.Validate(ctx); err != nil {
		return nil, err
	}
	if err := tm.negotiation.CheckAgreementFinalized(ctx, msg.AgreementID); err != nil {
		return nil, err
	}
	agreement, err := tm.negotiation.GetAgreement(ctx, msg.AgreementID)
	if err != nil {
		return nil, err
	}

	existing, err := tm.queryTransfers(ctx, tm.persistence.NOTX(), func(q *gorm.DB) *gorm.DB {
		return q.Where("consumer_pid = ?", msg.ConsumerPID).Where("role = ?", dsapi.RoleProvider).Limit(1)
	})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing[0], nil
	}

	return tm.create(ctx, &dsapi.TransferProcess{
		ConsumerPID:     msg.ConsumerPID,
		ProviderPID:     dstypes.NewPID(),
		AgreementID:     msg.AgreementID,
		DatasetID:       agreement.Target,
		DataAddress:     msg.DataAddress,
		Format:          msg.Format,
		CallbackAddress: msg.CallbackAddress,
		State:           dsapi.TransferStateRequested,
		Role:            dsapi.RoleProvider,
	})
}

func (tm *transferManager) HandleStart(ctx context.Context, localRole dsapi.Role, pid string, msg *dsapi.TransferStartMessage) (*dsapi.TransferProcess, error) {
	if err := msg.Validate(ctx); err != nil {
		return nil, err
	}
	tp, err := tm.loadForMessage(ctx, localRole, pid, msg.ConsumerPID, msg.ProviderPID)
	if err != nil {
		return nil, err
	}
	return tm.applyTransition(ctx, tp, &transition{
		actor: localRole.Counterpart(),
		to:    dsapi.TransferStateStarted,
		update: func(next *dsapi.TransferProcess) {
			if localRole == dsapi.RoleConsumer && msg.DataAddress != nil {
				next.DataAddress = msg.DataAddress
			}
		},
	})
}

func (tm *transferManager) HandleCompletion(ctx context.Context, localRole dsapi.Role, pid string, msg *dsapi.TransferCompletionMessage) (*dsapi.TransferProcess, error) {
	if err := msg.Validate(ctx); err != nil {
		return nil, err
	}
	tp, err := tm.loadForMessage(ctx, localRole, pid, msg.ConsumerPID, msg.ProviderPID)
	if err != nil {
		return nil, err
	}
	return tm.applyTransition(ctx, tp, &transition{
		actor: localRole.Counterpart(),
		to:    dsapi.TransferStateCompleted,
	})
}

func (tm *transferManager) HandleSuspension(ctx context.Context, localRole dsapi.Role, pid string, msg *dsapi.TransferSuspensionMessage) (*dsapi.TransferProcess, error) {
	if err := msg.Validate(ctx); err != nil {
		return nil, err
	}
	tp, err := tm.loadForMessage(ctx, localRole, pid, msg.ConsumerPID, msg.ProviderPID)
	if err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Transfer %s suspended by counterpart code=%s reason=%v", tp.ID, msg.Code, msg.Reason)
	return tm.applyTransition(ctx, tp, &transition{
		actor: localRole.Counterpart(),
		to:    dsapi.TransferStateSuspended,
	})
}

func (tm *transferManager) HandleTermination(ctx context.Context, localRole dsapi.Role, pid string, msg *dsapi.TransferTerminationMessage) (*dsapi.TransferProcess, error) {
	if err := msg.Validate(ctx); err != nil {
		return nil, err
	}
	tp, err := tm.loadForMessage(ctx, localRole, pid, msg.ConsumerPID, msg.ProviderPID)
	if err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Transfer %s terminated by counterpart code=%s reason=%v", tp.ID, msg.Code, msg.Reason)
	return tm.applyTransition(ctx, tp, &transition{
		actor: localRole.Counterpart(),
		to:    dsapi.TransferStateTerminated,
	})
}

// ServeArtifact resolves the capability token back to the provider's transfer
// process, and releases the dataset's bytes once the gate allows it
func (tm *transferManager) ServeArtifact(ctx context.Context, token string) (*components.BlobObject, error) {
	consumerPID, providerPID, err := dstypes.DecodeArtifactToken(ctx, token)
	if err != nil {
		return nil, err
	}
	tp, err := tm.getTransfer(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("consumer_pid = ?", consumerPID).
			Where("provider_pid = ?", providerPID).
			Where("role = ?", dsapi.RoleProvider)
	}, providerPID)
	if err != nil {
		return nil, err
	}
	ctx = log.WithExchange(ctx, exchangeKind, tp.LocalPID())
	grant, err := tm.gate.CheckAccess(ctx, tp, components.AccessDownload)
	if err != nil {
		return nil, err
	}
	obj, err := tm.catalog.ReadArtifact(ctx, tp.DatasetID)
	if err != nil {
		return nil, err
	}
	tm.gate.RecordConsumption(ctx, grant)
	log.L(ctx).Infof("Serving %d bytes of dataset %s", len(obj.Data), tp.DatasetID)
	return obj, nil
}
