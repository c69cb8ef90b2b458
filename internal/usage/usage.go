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

package usage

import (
	"context"
	"sync"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/flushwriter"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/metrics"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/persistence"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type usageTracker struct {
	bgCtx context.Context
	conf  *dsconf.UsageConfig

	persistence persistence.Persistence
	metrics     metrics.ConnectorMetrics
	writer      flushwriter.Writer[*consumptionWrite, struct{}]

	// published events not yet confirmed flushed, per agreement
	pendingMux sync.Mutex
	pending    map[string]int64
}

// consumptionWrite routes all events for one agreement to the same writer worker,
// so increments for an agreement are applied in order.
type consumptionWrite struct {
	*components.ConsumptionEvent
}

func (cw *consumptionWrite) WriteKey() string {
	return cw.AgreementID
}

type dbUsageCounter struct {
	AgreementID string            `gorm:"column:agreement_id;primaryKey"`
	AccessCount int64             `gorm:"column:access_count"`
	LastAccess  dstypes.Timestamp `gorm:"column:last_access"`
}

func (dbUsageCounter) TableName() string {
	return "usage_counters"
}

func NewUsageTracker(bgCtx context.Context, conf *dsconf.UsageConfig) components.UsageTracker {
	return &usageTracker{
		bgCtx:   bgCtx,
		conf:    conf,
		pending: make(map[string]int64),
	}
}

func (ut *usageTracker) PreInit(pic components.PreInitComponents) error {
	ut.persistence = pic.Persistence()
	ut.metrics = pic.Metrics()
	ut.writer = flushwriter.NewWriter(ut.bgCtx, "usage", ut.writeConsumptionBatch, ut.persistence, &ut.conf.Writer, &dsconf.UsageDefaults.Writer)
	return nil
}

func (ut *usageTracker) PostInit(c components.AllComponents) error {
	return nil
}

func (ut *usageTracker) Start() error {
	ut.writer.Start()
	return nil
}

func (ut *usageTracker) Stop() {
	ut.writer.Shutdown()
}

func (ut *usageTracker) addPending(agreementID string, delta int64) {
	ut.pendingMux.Lock()
	defer ut.pendingMux.Unlock()
	n := ut.pending[agreementID] + delta
	if n <= 0 {
		delete(ut.pending, agreementID)
	} else {
		ut.pending[agreementID] = n
	}
}

func (ut *usageTracker) pendingCount(agreementID string) int64 {
	ut.pendingMux.Lock()
	defer ut.pendingMux.Unlock()
	return ut.pending[agreementID]
}

// Publish counts the event immediately, so a following CurrentCount sees it
// while the write is still batched. Between the batch committing and the
// pending tally dropping the event may be counted twice, which only ever
// errs towards denying access.
func (ut *usageTracker) Publish(ctx context.Context, ev *components.ConsumptionEvent) {
	ut.addPending(ev.AgreementID, 1)
	// Keep the request's log fields, but not its cancellation
	bgCtx := log.WithLogger(ut.bgCtx, log.L(ctx))
	go func() {
		defer ut.addPending(ev.AgreementID, -1)
		op := ut.writer.Queue(bgCtx, &consumptionWrite{ev})
		if _, err := op.WaitFlushed(bgCtx); err != nil {
			log.L(bgCtx).Warnf("Consumption event for agreement %s not recorded: %s", ev.AgreementID, err)
		}
	}()
}

// writeConsumptionBatch folds the batch into one increment per agreement
func (ut *usageTracker) writeConsumptionBatch(ctx context.Context, dbTX persistence.DBTX, values []*consumptionWrite) ([]flushwriter.Result[struct{}], error) {
	byAgreement := make(map[string]*dbUsageCounter)
	var ordered []*dbUsageCounter
	for _, v := range values {
		c := byAgreement[v.AgreementID]
		if c == nil {
			c = &dbUsageCounter{AgreementID: v.AgreementID}
			byAgreement[v.AgreementID] = c
			ordered = append(ordered, c)
		}
		c.AccessCount++
		if v.Timestamp > c.LastAccess {
			c.LastAccess = v.Timestamp
		}
	}

	err := dbTX.DB().
		WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "agreement_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"access_count": gorm.Expr("usage_counters.access_count + excluded.access_count"),
				"last_access":  gorm.Expr("excluded.last_access"),
			}),
		}).
		Create(ordered).
		Error
	if err != nil {
		return nil, err
	}
	dbTX.AddPostCommit(func(ctx context.Context) {
		ut.metrics.AddUsageEvents(len(values))
	})
	return make([]flushwriter.Result[struct{}], len(values)), nil
}

func (ut *usageTracker) CurrentCount(ctx context.Context, agreementID string) (int64, error) {
	var counters []*dbUsageCounter
	err := ut.persistence.DB().
		WithContext(ctx).
		Where("agreement_id = ?", agreementID).
		Limit(1).
		Find(&counters).
		Error
	if err != nil {
		return 0, err
	}
	count := ut.pendingCount(agreementID)
	if len(counters) > 0 {
		count += counters[0].AccessCount
	}
	return count, nil
}

func (ut *usageTracker) ResetCount(ctx context.Context, agreementID string) error {
	err := ut.persistence.DB().
		WithContext(ctx).
		Where("agreement_id = ?", agreementID).
		Delete(&dbUsageCounter{}).
		Error
	if err == nil {
		log.L(ctx).Infof("Access count reset for agreement %s", agreementID)
	}
	return err
}
