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
	"strings"
	"time"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
)

type Evaluator interface {
	Type() PolicyType
	Evaluate(p *Policy, req *PolicyRequest) *PolicyDecision
}

const msgPolicyNotValid = "Policy is not valid at the current time"

// validNow is run by every evaluator before its own rule
func validNow(p *Policy, now time.Time) bool {
	if !p.Enabled {
		return false
	}
	if p.ValidFrom != nil && now.Before(*p.ValidFrom) {
		return false
	}
	if p.ValidTo != nil && !now.Before(*p.ValidTo) {
		return false
	}
	return true
}

type accessCountEvaluator struct {
	now func() time.Time
}

func NewAccessCountEvaluator(now func() time.Time) Evaluator {
	return &accessCountEvaluator{now: now}
}

func (e *accessCountEvaluator) Type() PolicyType { return PolicyTypeAccessCount }

func (e *accessCountEvaluator) Evaluate(p *Policy, req *PolicyRequest) *PolicyDecision {
	if !validNow(p, e.now()) {
		return deny(p, msgPolicyNotValid)
	}
	limit, ok := int64Attr(p.Attributes, AttrCount)
	if !ok {
		return deny(p, "Access count limit not configured")
	}
	current, _ := int64Attr(req.Attributes, AttrCurrentCount)
	var passed bool
	switch op := operatorAttr(p.Attributes); op {
	case dsapi.OperatorLT:
		passed = current < limit
	case dsapi.OperatorLTEQ:
		passed = current <= limit
	case "":
		return deny(p, "Operator not set")
	default:
		return deny(p, "Operator %s is not supported for access count", op)
	}
	if !passed {
		return deny(p, "Access count exceeded")
	}
	return allow(p, "Access count check passed")
}

type temporalEvaluator struct {
	now func() time.Time
}

func NewTemporalEvaluator(now func() time.Time) Evaluator {
	return &temporalEvaluator{now: now}
}

func (e *temporalEvaluator) Type() PolicyType { return PolicyTypeTemporal }

func (e *temporalEvaluator) Evaluate(p *Policy, req *PolicyRequest) *PolicyDecision {
	now := e.now()
	if !validNow(p, now) {
		return deny(p, msgPolicyNotValid)
	}
	op := operatorAttr(p.Attributes)
	if op == "" {
		return deny(p, "Operator not set")
	}
	limit, ok := timeAttr(p.Attributes, AttrDateTime)
	if !ok {
		return deny(p, "Date time not configured")
	}
	accessTime, ok := timeAttr(req.Attributes, AttrAccessTime)
	if !ok {
		accessTime = now
	}
	switch op {
	case dsapi.OperatorGTEQ:
		if accessTime.Before(limit) {
			return deny(p, "Access time is before the allowed time")
		}
	case dsapi.OperatorLTEQ:
		if accessTime.After(limit) {
			return deny(p, "Access time is after the allowed time")
		}
	default:
		return deny(p, "Operator %s is not supported for date time", op)
	}
	return allow(p, "Access time check passed")
}

type spatialEvaluator struct {
	now func() time.Time
}

func NewSpatialEvaluator(now func() time.Time) Evaluator {
	return &spatialEvaluator{now: now}
}

func (e *spatialEvaluator) Type() PolicyType { return PolicyTypeSpatial }

func (e *spatialEvaluator) Evaluate(p *Policy, req *PolicyRequest) *PolicyDecision {
	if !validNow(p, e.now()) {
		return deny(p, msgPolicyNotValid)
	}
	op := operatorAttr(p.Attributes)
	allowed := stringsAttr(p.Attributes, AttrAllowedLocations)
	if op == "" || len(allowed) == 0 {
		return allow(p, "No spatial restriction configured")
	}
	location := strings.TrimSpace(stringAttr(req.Attributes, AttrLocation))
	if location == "" {
		return deny(p, "Location not provided")
	}
	switch op {
	case dsapi.OperatorEQ:
		if !strings.EqualFold(allowed[0], location) {
			return deny(p, "Location %s is not allowed", location)
		}
	case dsapi.OperatorIsAnyOf:
		if !contains(allowed, location) {
			return deny(p, "Location %s is not allowed", location)
		}
	default:
		return deny(p, "Operator %s is not supported for spatial", op)
	}
	return allow(p, "Location check passed")
}

type purposeEvaluator struct {
	now func() time.Time
}

func NewPurposeEvaluator(now func() time.Time) Evaluator {
	return &purposeEvaluator{now: now}
}

func (e *purposeEvaluator) Type() PolicyType { return PolicyTypePurpose }

func (e *purposeEvaluator) Evaluate(p *Policy, req *PolicyRequest) *PolicyDecision {
	if !validNow(p, e.now()) {
		return deny(p, msgPolicyNotValid)
	}
	purpose := strings.TrimSpace(stringAttr(req.Attributes, AttrPurpose))
	denied := stringsAttr(p.Attributes, AttrDeniedPurposes)
	allowed := stringsAttr(p.Attributes, AttrAllowedPurposes)
	if contains(denied, purpose) {
		return deny(p, "Purpose %s is denied", purpose)
	}
	if len(allowed) > 0 && !contains(allowed, purpose) {
		return deny(p, "Purpose %s is not allowed", purpose)
	}
	return allow(p, "Purpose check passed")
}
