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

package persistence

import (
	"context"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"gorm.io/gorm"
)

type DBTX interface {
	DB() *gorm.DB
	// FullTransaction is false for NOTX, where hooks cannot be registered
	FullTransaction() bool
	// AddPreCommit runs before commit, and an error rolls the transaction back
	AddPreCommit(func(ctx context.Context, tx DBTX) error)
	// AddPostCommit runs only after a successful commit
	AddPostCommit(func(ctx context.Context))
	// AddFinalizer always runs, with the result of the transaction
	AddFinalizer(func(ctx context.Context, err error))
}

type transaction struct {
	txCtx       context.Context
	gdb         *gorm.DB
	preCommits  []func(ctx context.Context, tx DBTX) error
	postCommits []func(ctx context.Context)
	finalizers  []func(ctx context.Context, err error)
}

func (t *transaction) DB() *gorm.DB {
	return t.gdb
}

func (t *transaction) FullTransaction() bool {
	return true
}

func (t *transaction) AddPreCommit(fn func(ctx context.Context, tx DBTX) error) {
	t.preCommits = append(t.preCommits, fn)
}

func (t *transaction) AddPostCommit(fn func(ctx context.Context)) {
	t.postCommits = append(t.postCommits, fn)
}

func (t *transaction) AddFinalizer(fn func(ctx context.Context, err error)) {
	t.finalizers = append(t.finalizers, fn)
}

type notx struct {
	gdb *gorm.DB
}

func (n *notx) DB() *gorm.DB {
	return n.gdb
}

func (n *notx) FullTransaction() bool {
	return false
}

func (n *notx) AddPreCommit(func(ctx context.Context, tx DBTX) error) {
	panic(i18n.NewError(context.Background(), msgs.MsgPersistenceNoHooksInNOTX))
}

func (n *notx) AddPostCommit(func(ctx context.Context)) {
	panic(i18n.NewError(context.Background(), msgs.MsgPersistenceNoHooksInNOTX))
}

func (n *notx) AddFinalizer(func(ctx context.Context, err error)) {
	panic(i18n.NewError(context.Background(), msgs.MsgPersistenceNoHooksInNOTX))
}
