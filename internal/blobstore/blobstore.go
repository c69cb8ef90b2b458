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

package blobstore

import (
	"context"
	"errors"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/confutil"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/dgraph-io/badger/v3"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// Key layout in the badger keyspace:
//
//	b/{bucket}          bucket marker
//	o/{bucket}/{key}    object bytes
//	m/{bucket}/{key}    object content type
const (
	bucketPrefix  = "b/"
	objectPrefix  = "o/"
	contentPrefix = "m/"
)

type blobStore struct {
	db *badger.DB
}

func NewBlobStore(ctx context.Context, conf *dsconf.BlobStoreConfig) (_ components.BlobStore, err error) {
	inMemory := confutil.Bool(conf.InMemory, *dsconf.BlobStoreDefaults.InMemory)
	opts := badger.DefaultOptions(conf.Path)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.
		WithSyncWrites(confutil.Bool(conf.SyncWrites, *dsconf.BlobStoreDefaults.SyncWrites)).
		WithLogger(badgerLogger{ctx: ctx})

	bs := &blobStore{}
	if bs.db, err = badger.Open(opts); err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgComponentBlobStoreInitError)
	}
	log.L(ctx).Infof("Blob store opened (inMemory=%t path=%s)", inMemory, conf.Path)
	return bs, nil
}

func bucketKey(bucket string) []byte {
	return []byte(bucketPrefix + bucket)
}

func objectKey(bucket, key string) []byte {
	return []byte(objectPrefix + bucket + "/" + key)
}

func contentTypeKey(bucket, key string) []byte {
	return []byte(contentPrefix + bucket + "/" + key)
}

func keyExists(txn *badger.Txn, k []byte) (bool, error) {
	_, err := txn.Get(k)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (bs *blobStore) BucketExists(ctx context.Context, bucket string) (exists bool, err error) {
	err = bs.db.View(func(txn *badger.Txn) error {
		exists, err = keyExists(txn, bucketKey(bucket))
		return err
	})
	if err != nil {
		return false, i18n.WrapError(ctx, err, msgs.MsgBlobStoreError, bucket, "")
	}
	return exists, nil
}

func (bs *blobStore) CreateBucket(ctx context.Context, bucket string) error {
	err := bs.db.Update(func(txn *badger.Txn) error {
		return txn.Set(bucketKey(bucket), []byte{})
	})
	if err != nil {
		return i18n.WrapError(ctx, err, msgs.MsgBlobStoreError, bucket, "")
	}
	log.L(ctx).Infof("Created bucket %s", bucket)
	return nil
}

func (bs *blobStore) Exists(ctx context.Context, bucket, key string) (exists bool, err error) {
	err = bs.db.View(func(txn *badger.Txn) error {
		exists, err = keyExists(txn, objectKey(bucket, key))
		return err
	})
	if err != nil {
		return false, i18n.WrapError(ctx, err, msgs.MsgBlobStoreError, bucket, key)
	}
	return exists, nil
}

func (bs *blobStore) Get(ctx context.Context, bucket, key string) (*components.BlobObject, error) {
	var obj *components.BlobObject
	var bucketFound bool
	err := bs.db.View(func(txn *badger.Txn) (err error) {
		if bucketFound, err = keyExists(txn, bucketKey(bucket)); err != nil || !bucketFound {
			return err
		}
		item, err := txn.Get(objectKey(bucket, key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		} else if err != nil {
			return err
		}
		obj = &components.BlobObject{}
		if obj.Data, err = item.ValueCopy(nil); err != nil {
			return err
		}
		ctItem, err := txn.Get(contentTypeKey(bucket, key))
		if err == nil {
			var ct []byte
			ct, err = ctItem.ValueCopy(nil)
			obj.ContentType = string(ct)
		} else if errors.Is(err, badger.ErrKeyNotFound) {
			err = nil
		}
		return err
	})
	switch {
	case err != nil:
		return nil, i18n.WrapError(ctx, err, msgs.MsgBlobStoreError, bucket, key)
	case !bucketFound:
		return nil, i18n.NewError(ctx, msgs.MsgBlobBucketNotFound, bucket)
	case obj == nil:
		return nil, i18n.NewError(ctx, msgs.MsgBlobNotFound, key, bucket)
	}
	return obj, nil
}

func (bs *blobStore) Put(ctx context.Context, bucket, key string, obj *components.BlobObject) error {
	var bucketFound bool
	err := bs.db.Update(func(txn *badger.Txn) (err error) {
		if bucketFound, err = keyExists(txn, bucketKey(bucket)); err != nil || !bucketFound {
			return err
		}
		if err = txn.Set(objectKey(bucket, key), obj.Data); err != nil {
			return err
		}
		return txn.Set(contentTypeKey(bucket, key), []byte(obj.ContentType))
	})
	if err != nil {
		return i18n.WrapError(ctx, err, msgs.MsgBlobStoreError, bucket, key)
	}
	if !bucketFound {
		return i18n.NewError(ctx, msgs.MsgBlobBucketNotFound, bucket)
	}
	log.L(ctx).Debugf("Stored %d bytes at %s/%s", len(obj.Data), bucket, key)
	return nil
}

func (bs *blobStore) Close() {
	if err := bs.db.Close(); err != nil {
		log.L(context.Background()).Warnf("Blob store close failed: %s", err)
	}
}

// badgerLogger routes badger's internal logging through the context logger,
// demoting its info chatter to debug.
type badgerLogger struct {
	ctx context.Context
}

func (l badgerLogger) Errorf(f string, v ...interface{})   { log.L(l.ctx).Errorf(f, v...) }
func (l badgerLogger) Warningf(f string, v ...interface{}) { log.L(l.ctx).Warnf(f, v...) }
func (l badgerLogger) Infof(f string, v ...interface{})    { log.L(l.ctx).Debugf(f, v...) }
func (l badgerLogger) Debugf(f string, v ...interface{})   { log.L(l.ctx).Tracef(f, v...) }
