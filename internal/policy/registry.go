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

package policy

import (
	"sync"
	"time"
)

// Registry dispatches a policy to the evaluator for its type
type Registry struct {
	mux        sync.RWMutex
	evaluators map[PolicyType]Evaluator
}

func NewRegistry(evaluators ...Evaluator) *Registry {
	r := &Registry{evaluators: make(map[PolicyType]Evaluator)}
	for _, e := range evaluators {
		r.Register(e)
	}
	return r
}

// NewDefaultRegistry holds the four built-in evaluators, sharing a clock
func NewDefaultRegistry(now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return NewRegistry(
		NewAccessCountEvaluator(now),
		NewTemporalEvaluator(now),
		NewSpatialEvaluator(now),
		NewPurposeEvaluator(now),
	)
}

// Register replaces any evaluator already held for the same type
func (r *Registry) Register(e Evaluator) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.evaluators[e.Type()] = e
}

func (r *Registry) Get(pt PolicyType) (Evaluator, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	e, ok := r.evaluators[pt]
	return e, ok
}

// Evaluate denies a policy with no registered evaluator
func (r *Registry) Evaluate(p *Policy, req *PolicyRequest) *PolicyDecision {
	e, ok := r.Get(p.Type)
	if !ok {
		return deny(p, "No evaluator registered for policy type '%s'", p.Type)
	}
	return e.Evaluate(p, req)
}
