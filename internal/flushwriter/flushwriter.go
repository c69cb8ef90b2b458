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

package flushwriter

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/confutil"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/persistence"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// Writeable values are routed to a worker by their key, so writes for the
// same key are applied in the order they were queued.
type Writeable interface {
	WriteKey() string
}

type Operation[R any] interface {
	// WaitFlushed blocks until the batch holding this operation committed or failed
	WaitFlushed(ctx context.Context) (R, error)
}

// BatchHandler runs inside one DB transaction for a whole batch. Returning an
// error rolls back the batch and fails every operation in it.
type BatchHandler[T Writeable, R any] func(ctx context.Context, dbTX persistence.DBTX, values []T) ([]Result[R], error)

type Writer[T Writeable, R any] interface {
	Start()
	Queue(ctx context.Context, value T) Operation[R]
	// QueueWithFlush closes the batch as soon as this operation joins it
	QueueWithFlush(ctx context.Context, value T) Operation[R]
	// Shutdown drains in-flight batches before returning
	Shutdown()
}

type Result[R any] struct {
	Err error
	R   R
}

type op[T Writeable, R any] struct {
	id       string
	key      string
	flush    bool
	shutdown bool
	value    T
	done     chan Result[R]
}

type writer[T Writeable, R any] struct {
	bgCtx        context.Context
	cancelCtx    context.CancelFunc
	p            persistence.Persistence
	handler      BatchHandler[T, R]
	name         string
	batchTimeout time.Duration
	batchMaxSize int
	queues       []chan *op[T, R]
	workersDone  []chan struct{}
}

func NewWriter[T Writeable, R any](bgCtx context.Context, name string, handler BatchHandler[T, R], p persistence.Persistence, conf, defs *dsconf.FlushWriterConfig) Writer[T, R] {
	workerCount := confutil.IntMin(conf.WorkerCount, 1, *defs.WorkerCount)
	w := &writer[T, R]{
		p:            p,
		handler:      handler,
		name:         name,
		batchMaxSize: confutil.IntMin(conf.BatchMaxSize, 1, *defs.BatchMaxSize),
		batchTimeout: confutil.DurationMin(conf.BatchTimeout, 0, *defs.BatchTimeout),
		queues:       make([]chan *op[T, R], workerCount),
		workersDone:  make([]chan struct{}, workerCount),
	}
	w.bgCtx, w.cancelCtx = context.WithCancel(bgCtx)
	return w
}

func (w *writer[T, R]) Start() {
	log.L(w.bgCtx).Debugf("Starting %d workers for %s writer", len(w.queues), w.name)
	for i := range w.queues {
		w.queues[i] = make(chan *op[T, R], w.batchMaxSize)
		w.workersDone[i] = make(chan struct{})
		go w.worker(i)
	}
}

func (w *writer[T, R]) Queue(ctx context.Context, value T) Operation[R] {
	return w.queue(ctx, value, false)
}

func (w *writer[T, R]) QueueWithFlush(ctx context.Context, value T) Operation[R] {
	return w.queue(ctx, value, true)
}

func (o *op[T, R]) WaitFlushed(ctx context.Context) (R, error) {
	select {
	case r := <-o.done:
		return r.R, r.Err
	case <-ctx.Done():
		return *new(R), i18n.NewError(ctx, msgs.MsgContextCanceled)
	}
}

func (w *writer[T, R]) queue(ctx context.Context, value T, flush bool) *op[T, R] {
	o := &op[T, R]{
		id:    dstypes.ShortID(),
		key:   value.WriteKey(),
		value: value,
		flush: flush,
		done:  make(chan Result[R], 1),
	}
	if o.key == "" {
		o.done <- Result[R]{Err: i18n.NewError(ctx, msgs.MsgFlushWriterOpInvalid)}
		return o
	}
	if w.bgCtx.Err() != nil {
		o.done <- Result[R]{Err: i18n.NewError(ctx, msgs.MsgFlushWriterQuiescing)}
		return o
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(o.key))
	idx := h.Sum32() % uint32(len(w.queues))
	select {
	case w.queues[idx] <- o:
	case <-ctx.Done():
		// the caller gave up, and gets a context error from WaitFlushed
	case <-w.bgCtx.Done():
		o.done <- Result[R]{Err: i18n.NewError(ctx, msgs.MsgFlushWriterQuiescing)}
	}
	return o
}

type batch[T Writeable, R any] struct {
	id       string
	opened   time.Time
	ops      []*op[T, R]
	deadline context.Context
	cancel   context.CancelFunc
}

func (w *writer[T, R]) worker(i int) {
	defer close(w.workersDone[i])
	ctx := log.WithLogField(w.bgCtx, "writer", fmt.Sprintf("%s_%.2d", w.name, i))
	var b *batch[T, R]
	batchCount := 0
	for {
		wait := ctx
		if b != nil {
			wait = b.deadline
		}
		var closeBatch bool
		var shutdown *op[T, R]
		select {
		case o := <-w.queues[i]:
			if o.shutdown {
				shutdown, closeBatch = o, true
				break
			}
			if b == nil {
				batchCount++
				b = &batch[T, R]{id: fmt.Sprintf("%.2d_%.6d", i, batchCount), opened: time.Now()}
				b.deadline, b.cancel = context.WithTimeout(ctx, w.batchTimeout)
			}
			b.ops = append(b.ops, o)
			closeBatch = o.flush || len(b.ops) >= w.batchMaxSize
		case <-wait.Done():
			if ctx.Err() != nil {
				log.L(ctx).Debugf("Writer ending")
				return
			}
			closeBatch = true
		}
		if closeBatch && b != nil {
			b.cancel()
			log.L(ctx).Debugf("Running batch %s (len=%d,age=%dms)", b.id, len(b.ops), time.Since(b.opened).Milliseconds())
			w.runBatch(ctx, b)
			b = nil
		}
		if shutdown != nil {
			close(shutdown.done)
			return
		}
	}
}

func (w *writer[T, R]) runBatch(ctx context.Context, b *batch[T, R]) {
	values := make([]T, len(b.ops))
	for i, o := range b.ops {
		values[i] = o.value
	}
	var results []Result[R]
	err := w.p.Transaction(ctx, func(ctx context.Context, dbTX persistence.DBTX) (err error) {
		results, err = w.handler(ctx, dbTX, values)
		return err
	})
	if err == nil && len(results) != len(values) {
		err = i18n.NewError(ctx, msgs.MsgFlushWriterInvalidResults)
	}
	if err != nil {
		log.L(ctx).Errorf("Batch %s failed: %s", b.id, err)
	}
	for i, o := range b.ops {
		if err != nil {
			o.done <- Result[R]{Err: err}
		} else {
			o.done <- results[i]
		}
	}
}

func (w *writer[T, R]) Shutdown() {
	for i, q := range w.queues {
		if q == nil {
			continue
		}
		o := &op[T, R]{shutdown: true, done: make(chan Result[R])}
		select {
		case q <- o:
			<-o.done
		case <-w.bgCtx.Done():
		}
		<-w.workersDone[i]
	}
	w.cancelCtx()
}
