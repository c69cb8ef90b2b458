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

package cache

import (
	"sync/atomic"

	cacheimpl "github.com/Code-Hex/go-generics-cache"
	"github.com/Code-Hex/go-generics-cache/policy/lru"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/confutil"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
)

// Cache is a bounded LRU, safe for concurrent use
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, val V)
	Delete(key K)
	Capacity() int
	Clear()
}

type lruCache[K comparable, V any] struct {
	current  atomic.Pointer[cacheimpl.Cache[K, V]]
	capacity int
}

func NewCache[K comparable, V any](conf *dsconf.CacheConfig, defs *dsconf.CacheConfig) Cache[K, V] {
	c := &lruCache[K, V]{
		capacity: confutil.IntMin(conf.Capacity, 1, *defs.Capacity),
	}
	c.Clear()
	return c
}

func (c *lruCache[K, V]) Get(key K) (V, bool) {
	return c.current.Load().Get(key)
}

func (c *lruCache[K, V]) Set(key K, val V) {
	c.current.Load().Set(key, val)
}

func (c *lruCache[K, V]) Delete(key K) {
	c.current.Load().Delete(key)
}

// Clear swaps in an empty cache, as the library has no clear of its own
func (c *lruCache[K, V]) Clear() {
	c.current.Store(cacheimpl.New[K, V](cacheimpl.AsLRU[K, V](lru.WithCapacity(c.capacity))))
}

func (c *lruCache[K, V]) Capacity() int {
	return c.capacity
}
