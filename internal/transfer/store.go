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

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/persistence"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"gorm.io/gorm"
)

type dbTransfer struct {
	ID              string              `gorm:"column:id;primaryKey"`
	ConsumerPID     string              `gorm:"column:consumer_pid"`
	ProviderPID     string              `gorm:"column:provider_pid"`
	AgreementID     string              `gorm:"column:agreement_id"`
	DatasetID       string              `gorm:"column:dataset_id"`
	DataAddress     dstypes.RawJSON     `gorm:"column:data_address"`
	Format          string              `gorm:"column:format"`
	CallbackAddress string              `gorm:"column:callback_address"`
	State           dsapi.TransferState `gorm:"column:state"`
	Role            dsapi.Role          `gorm:"column:role"`
	IsDownloaded    bool                `gorm:"column:is_downloaded"`
	DataID          string              `gorm:"column:data_id"`
	Created         dstypes.Timestamp   `gorm:"column:created"`
	CreatedBy       string              `gorm:"column:created_by"`
	LastModified    dstypes.Timestamp   `gorm:"column:last_modified"`
	LastModifiedBy  string              `gorm:"column:last_modified_by"`
	Version         int64               `gorm:"column:version"`
}

func (dbTransfer) TableName() string {
	return "transfer_processes"
}

type dbTransferSnapshot struct {
	TransferID string              `gorm:"column:transfer_id;primaryKey"`
	Version    int64               `gorm:"column:version;primaryKey"`
	State      dsapi.TransferState `gorm:"column:state"`
	ModifiedBy string              `gorm:"column:modified_by"`
	Created    dstypes.Timestamp   `gorm:"column:created"`
	Data       dstypes.RawJSON     `gorm:"column:data"`
}

func (dbTransferSnapshot) TableName() string {
	return "transfer_snapshots"
}

func transferToDB(tp *dsapi.TransferProcess) *dbTransfer {
	dbt := &dbTransfer{
		ID:              tp.ID,
		ConsumerPID:     tp.ConsumerPID,
		ProviderPID:     tp.ProviderPID,
		AgreementID:     tp.AgreementID,
		DatasetID:       tp.DatasetID,
		Format:          tp.Format,
		CallbackAddress: tp.CallbackAddress,
		State:           tp.State,
		Role:            tp.Role,
		IsDownloaded:    tp.IsDownloaded,
		DataID:          tp.DataID,
		Created:         tp.Created,
		CreatedBy:       tp.CreatedBy,
		LastModified:    tp.LastModified,
		LastModifiedBy:  tp.LastModifiedBy,
		Version:         tp.Version,
	}
	if tp.DataAddress != nil {
		dbt.DataAddress = dstypes.JSONString(tp.DataAddress)
	}
	return dbt
}

func (dbt *dbTransfer) toAPI() (*dsapi.TransferProcess, error) {
	tp := &dsapi.TransferProcess{
		ID:              dbt.ID,
		ConsumerPID:     dbt.ConsumerPID,
		ProviderPID:     dbt.ProviderPID,
		AgreementID:     dbt.AgreementID,
		DatasetID:       dbt.DatasetID,
		Format:          dbt.Format,
		CallbackAddress: dbt.CallbackAddress,
		State:           dbt.State,
		Role:            dbt.Role,
		IsDownloaded:    dbt.IsDownloaded,
		DataID:          dbt.DataID,
		Created:         dbt.Created,
		CreatedBy:       dbt.CreatedBy,
		LastModified:    dbt.LastModified,
		LastModifiedBy:  dbt.LastModifiedBy,
		Version:         dbt.Version,
	}
	if len(dbt.DataAddress) > 0 {
		tp.DataAddress = &dsapi.DataAddress{}
		if err := dbt.DataAddress.Unmarshal(tp.DataAddress); err != nil {
			return nil, err
		}
	}
	return tp, nil
}

func (tm *transferManager) queryTransfers(ctx context.Context, dbTX persistence.DBTX, where func(q *gorm.DB) *gorm.DB) ([]*dsapi.TransferProcess, error) {
	var dbts []*dbTransfer
	q := dbTX.DB().WithContext(ctx)
	if where != nil {
		q = where(q)
	}
	if err := q.Order("created").Find(&dbts).Error; err != nil {
		return nil, err
	}
	tps := make([]*dsapi.TransferProcess, len(dbts))
	for i, dbt := range dbts {
		tp, err := dbt.toAPI()
		if err != nil {
			return nil, err
		}
		tps[i] = tp
	}
	return tps, nil
}

func (tm *transferManager) getTransfer(ctx context.Context, where func(q *gorm.DB) *gorm.DB, notFound string) (*dsapi.TransferProcess, error) {
	tps, err := tm.queryTransfers(ctx, tm.persistence.NOTX(), func(q *gorm.DB) *gorm.DB {
		return where(q).Limit(1)
	})
	if err != nil {
		return nil, err
	}
	if len(tps) == 0 {
		return nil, i18n.NewError(ctx, msgs.MsgTransferNotFound, notFound)
	}
	return tps[0], nil
}

func newSnapshot(tp *dsapi.TransferProcess) *dbTransferSnapshot {
	return &dbTransferSnapshot{
		TransferID: tp.ID,
		Version:    tp.Version,
		State:      tp.State,
		ModifiedBy: tp.LastModifiedBy,
		Created:    tp.LastModified,
		Data:       dstypes.JSONString(tp),
	}
}

func (tm *transferManager) insertTransfer(ctx context.Context, dbTX persistence.DBTX, tp *dsapi.TransferProcess) error {
	tp.Version = 1
	err := dbTX.DB().WithContext(ctx).Create(transferToDB(tp)).Error
	if err == nil {
		err = dbTX.DB().WithContext(ctx).Create(newSnapshot(tp)).Error
	}
	return err
}

// updateTransfer writes next over prev only if prev is still the stored
// version, then records the snapshot
func (tm *transferManager) updateTransfer(ctx context.Context, dbTX persistence.DBTX, prev, next *dsapi.TransferProcess) error {
	if prev.State.IsTerminal() {
		return i18n.NewError(ctx, msgs.MsgValidationTerminalRecord, "Transfer process", prev.ID, prev.State)
	}
	next.Version = prev.Version + 1
	dbt := transferToDB(next)
	res := dbTX.DB().
		WithContext(ctx).
		Model(&dbTransfer{}).
		Where("id = ?", prev.ID).
		Where("version = ?", prev.Version).
		Updates(map[string]any{
			"state":            dbt.State,
			"provider_pid":     dbt.ProviderPID,
			"data_address":     dbt.DataAddress,
			"is_downloaded":    dbt.IsDownloaded,
			"data_id":          dbt.DataID,
			"last_modified":    dbt.LastModified,
			"last_modified_by": dbt.LastModifiedBy,
			"version":          dbt.Version,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return i18n.NewError(ctx, msgs.MsgConcurrentModification, "Transfer process", prev.ID, prev.Version)
	}
	return dbTX.DB().WithContext(ctx).Create(newSnapshot(next)).Error
}

func (tm *transferManager) GetTransferHistory(ctx context.Context, id string) ([]*dsapi.TransferProcess, error) {
	var snapshots []*dbTransferSnapshot
	err := tm.persistence.DB().
		WithContext(ctx).
		Where("transfer_id = ?", id).
		Order("version").
		Find(&snapshots).
		Error
	if err != nil {
		return nil, err
	}
	history := make([]*dsapi.TransferProcess, len(snapshots))
	for i, s := range snapshots {
		history[i] = &dsapi.TransferProcess{}
		if err := s.Data.Unmarshal(history[i]); err != nil {
			return nil, err
		}
	}
	return history, nil
}
