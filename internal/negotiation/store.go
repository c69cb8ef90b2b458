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

package negotiation

import (
	"context"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/persistence"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type dbNegotiation struct {
	ID              string                 `gorm:"column:id;primaryKey"`
	ConsumerPID     string                 `gorm:"column:consumer_pid"`
	ProviderPID     string                 `gorm:"column:provider_pid"`
	CallbackAddress string                 `gorm:"column:callback_address"`
	State           dsapi.NegotiationState `gorm:"column:state"`
	Offer           dstypes.RawJSON        `gorm:"column:offer"`
	AgreementID     string                 `gorm:"column:agreement_id"`
	Assigner        string                 `gorm:"column:assigner"`
	Role            dsapi.Role             `gorm:"column:role"`
	Created         dstypes.Timestamp      `gorm:"column:created"`
	CreatedBy       string                 `gorm:"column:created_by"`
	LastModified    dstypes.Timestamp      `gorm:"column:last_modified"`
	LastModifiedBy  string                 `gorm:"column:last_modified_by"`
	Version         int64                  `gorm:"column:version"`
}

func (dbNegotiation) TableName() string {
	return "contract_negotiations"
}

type dbNegotiationSnapshot struct {
	NegotiationID string                 `gorm:"column:negotiation_id;primaryKey"`
	Version       int64                  `gorm:"column:version;primaryKey"`
	State         dsapi.NegotiationState `gorm:"column:state"`
	ModifiedBy    string                 `gorm:"column:modified_by"`
	Created       dstypes.Timestamp      `gorm:"column:created"`
	Data          dstypes.RawJSON        `gorm:"column:data"`
}

func (dbNegotiationSnapshot) TableName() string {
	return "negotiation_snapshots"
}

type dbAgreement struct {
	ID          string            `gorm:"column:id;primaryKey"`
	Target      string            `gorm:"column:target"`
	Assignee    string            `gorm:"column:assignee"`
	Assigner    string            `gorm:"column:assigner"`
	Timestamp   dstypes.Timestamp `gorm:"column:timestamp"`
	Permissions dstypes.RawJSON   `gorm:"column:permissions"`
}

func (dbAgreement) TableName() string {
	return "agreements"
}

func negotiationToDB(cn *dsapi.ContractNegotiation) *dbNegotiation {
	dbn := &dbNegotiation{
		ID:              cn.ID,
		ConsumerPID:     cn.ConsumerPID,
		ProviderPID:     cn.ProviderPID,
		CallbackAddress: cn.CallbackAddress,
		State:           cn.State,
		AgreementID:     cn.AgreementID,
		Assigner:        cn.Assigner,
		Role:            cn.Role,
		Created:         cn.Created,
		CreatedBy:       cn.CreatedBy,
		LastModified:    cn.LastModified,
		LastModifiedBy:  cn.LastModifiedBy,
		Version:         cn.Version,
	}
	if cn.Offer != nil {
		dbn.Offer = dstypes.JSONString(cn.Offer)
	}
	return dbn
}

func (dbn *dbNegotiation) toAPI() (*dsapi.ContractNegotiation, error) {
	cn := &dsapi.ContractNegotiation{
		ID:              dbn.ID,
		ConsumerPID:     dbn.ConsumerPID,
		ProviderPID:     dbn.ProviderPID,
		CallbackAddress: dbn.CallbackAddress,
		State:           dbn.State,
		AgreementID:     dbn.AgreementID,
		Assigner:        dbn.Assigner,
		Role:            dbn.Role,
		Created:         dbn.Created,
		CreatedBy:       dbn.CreatedBy,
		LastModified:    dbn.LastModified,
		LastModifiedBy:  dbn.LastModifiedBy,
		Version:         dbn.Version,
	}
	if len(dbn.Offer) > 0 {
		cn.Offer = &dsapi.Offer{}
		if err := dbn.Offer.Unmarshal(cn.Offer); err != nil {
			return nil, err
		}
	}
	return cn, nil
}

func (nm *negotiationManager) queryNegotiations(ctx context.Context, dbTX persistence.DBTX, where func(q *gorm.DB) *gorm.DB) ([]*dsapi.ContractNegotiation, error) {
	var dbns []*dbNegotiation
	q := dbTX.DB().WithContext(ctx)
	if where != nil {
		q = where(q)
	}
	if err := q.Order("created").Find(&dbns).Error; err != nil {
		return nil, err
	}
	cns := make([]*dsapi.ContractNegotiation, len(dbns))
	for i, dbn := range dbns {
		cn, err := dbn.toAPI()
		if err != nil {
			return nil, err
		}
		cns[i] = cn
	}
	return cns, nil
}

func (nm *negotiationManager) getNegotiation(ctx context.Context, dbTX persistence.DBTX, column, value string, role dsapi.Role) (*dsapi.ContractNegotiation, error) {
	cns, err := nm.queryNegotiations(ctx, dbTX, func(q *gorm.DB) *gorm.DB {
		q = q.Where(column+" = ?", value)
		if role != "" {
			q = q.Where("role = ?", role)
		}
		return q.Limit(1)
	})
	if err != nil {
		return nil, err
	}
	if len(cns) == 0 {
		return nil, i18n.NewError(ctx, msgs.MsgNegotiationNotFound, value)
	}
	return cns[0], nil
}

func newSnapshot(cn *dsapi.ContractNegotiation) *dbNegotiationSnapshot {
	return &dbNegotiationSnapshot{
		NegotiationID: cn.ID,
		Version:       cn.Version,
		State:         cn.State,
		ModifiedBy:    cn.LastModifiedBy,
		Created:       cn.LastModified,
		Data:          dstypes.JSONString(cn),
	}
}

// insertNegotiation stores a new negotiation at version 1
func (nm *negotiationManager) insertNegotiation(ctx context.Context, dbTX persistence.DBTX, cn *dsapi.ContractNegotiation) error {
	cn.Version = 1
	err := dbTX.DB().WithContext(ctx).Create(negotiationToDB(cn)).Error
	if err == nil {
		err = dbTX.DB().WithContext(ctx).Create(newSnapshot(cn)).Error
	}
	return err
}

// updateNegotiation replaces prev with next, provided nobody else has written
// since prev was loaded. Each accepted write advances the version by one and
// leaves a snapshot behind.
func (nm *negotiationManager) updateNegotiation(ctx context.Context, dbTX persistence.DBTX, prev, next *dsapi.ContractNegotiation) error {
	if prev.State.IsTerminal() {
		return i18n.NewError(ctx, msgs.MsgValidationTerminalRecord, "Contract negotiation", prev.ID, prev.State)
	}
	next.Version = prev.Version + 1
	dbn := negotiationToDB(next)
	res := dbTX.DB().
		WithContext(ctx).
		Model(&dbNegotiation{}).
		Where("id = ?", prev.ID).
		Where("version = ?", prev.Version).
		Updates(map[string]any{
			"state":            dbn.State,
			"provider_pid":     dbn.ProviderPID,
			"consumer_pid":     dbn.ConsumerPID,
			"callback_address": dbn.CallbackAddress,
			"offer":            dbn.Offer,
			"agreement_id":     dbn.AgreementID,
			"assigner":         dbn.Assigner,
			"last_modified":    dbn.LastModified,
			"last_modified_by": dbn.LastModifiedBy,
			"version":          dbn.Version,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return i18n.NewError(ctx, msgs.MsgConcurrentModification, "Contract negotiation", prev.ID, prev.Version)
	}
	return dbTX.DB().WithContext(ctx).Create(newSnapshot(next)).Error
}

// insertAgreement is idempotent for a re-delivered agreement, which never changes
func (nm *negotiationManager) insertAgreement(ctx context.Context, dbTX persistence.DBTX, a *dsapi.Agreement) error {
	return dbTX.DB().
		WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dbAgreement{
			ID:          a.ID,
			Target:      a.Target,
			Assignee:    a.Assignee,
			Assigner:    a.Assigner,
			Timestamp:   a.Timestamp,
			Permissions: dstypes.JSONString(a.Permissions),
		}).
		Error
}

func (nm *negotiationManager) GetAgreement(ctx context.Context, id string) (*dsapi.Agreement, error) {
	var dbas []*dbAgreement
	err := nm.persistence.DB().
		WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&dbas).
		Error
	if err != nil {
		return nil, err
	}
	if len(dbas) == 0 {
		return nil, i18n.NewError(ctx, msgs.MsgAgreementNotFound, id)
	}
	a := &dsapi.Agreement{
		ID:        dbas[0].ID,
		Target:    dbas[0].Target,
		Assignee:  dbas[0].Assignee,
		Assigner:  dbas[0].Assigner,
		Timestamp: dbas[0].Timestamp,
	}
	if err := dbas[0].Permissions.Unmarshal(&a.Permissions); err != nil {
		return nil, err
	}
	return a, nil
}

// GetNegotiationHistory returns every accepted snapshot of a negotiation, oldest first
func (nm *negotiationManager) GetNegotiationHistory(ctx context.Context, id string) ([]*dsapi.ContractNegotiation, error) {
	var snapshots []*dbNegotiationSnapshot
	err := nm.persistence.DB().
		WithContext(ctx).
		Where("negotiation_id = ?", id).
		Order("version").
		Find(&snapshots).
		Error
	if err != nil {
		return nil, err
	}
	history := make([]*dsapi.ContractNegotiation, len(snapshots))
	for i, s := range snapshots {
		history[i] = &dsapi.ContractNegotiation{}
		if err := s.Data.Unmarshal(history[i]); err != nil {
			return nil, err
		}
	}
	return history, nil
}
