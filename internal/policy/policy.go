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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
)

type PolicyType string

const (
	PolicyTypeAccessCount PolicyType = "ACCESS_COUNT"
	PolicyTypeTemporal    PolicyType = "TEMPORAL"
	PolicyTypeSpatial     PolicyType = "SPATIAL"
	PolicyTypePurpose     PolicyType = "PURPOSE"
)

func (pt PolicyType) Enum() dstypes.Enum[PolicyType] {
	return dstypes.Enum[PolicyType](pt)
}

func (pt PolicyType) Options() []string {
	return []string{
		string(PolicyTypeAccessCount),
		string(PolicyTypeTemporal),
		string(PolicyTypeSpatial),
		string(PolicyTypePurpose),
	}
}

// Policy attribute keys
const (
	AttrOperator         = "operator"
	AttrCount            = "count"
	AttrDateTime         = "dateTime"
	AttrAllowedLocations = "allowedLocations"
	AttrAllowedPurposes  = "allowedPurposes"
	AttrDeniedPurposes   = "deniedPurposes"
)

// Request attribute keys
const (
	AttrCurrentCount = "currentCount"
	AttrAccessTime   = "accessTime"
	AttrLocation     = "location"
	AttrPurpose      = "purpose"
)

// Policy is a rule configuration consumed by one evaluator. ValidFrom is
// inclusive and ValidTo exclusive; nil leaves that end open.
type Policy struct {
	ID         string         `json:"id"`
	Type       PolicyType     `json:"type"`
	Attributes map[string]any `json:"attributes"`
	Enabled    bool           `json:"enabled"`
	ValidFrom  *time.Time     `json:"validFrom,omitempty"`
	ValidTo    *time.Time     `json:"validTo,omitempty"`
}

type PolicyRequest struct {
	AgreementID string         `json:"agreementId"`
	ResourceID  string         `json:"resourceId"`
	UserID      string         `json:"userId"`
	Action      dsapi.Action   `json:"action"`
	Attributes  map[string]any `json:"attributes"`
}

type PolicyDecision struct {
	Allowed    bool       `json:"allowed"`
	Message    string     `json:"message"`
	PolicyID   string     `json:"policyId"`
	PolicyType PolicyType `json:"policyType"`
}

func allow(p *Policy, message string) *PolicyDecision {
	return &PolicyDecision{Allowed: true, Message: message, PolicyID: p.ID, PolicyType: p.Type}
}

func deny(p *Policy, message string, args ...any) *PolicyDecision {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	return &PolicyDecision{Allowed: false, Message: message, PolicyID: p.ID, PolicyType: p.Type}
}

var leftOperandTypes = map[dsapi.LeftOperand]PolicyType{
	dsapi.LeftOperandCount:    PolicyTypeAccessCount,
	dsapi.LeftOperandDateTime: PolicyTypeTemporal,
	dsapi.LeftOperandSpatial:  PolicyTypeSpatial,
	dsapi.LeftOperandPurpose:  PolicyTypePurpose,
}

// FromConstraint translates an agreement constraint into the policy its
// evaluator consumes. The policy is always enabled, with an open window.
func FromConstraint(id string, c *dsapi.Constraint) *Policy {
	value := c.RightOperand
	if value == "" {
		value = c.RightOperandReference
	}
	p := &Policy{
		ID:         id,
		Type:       leftOperandTypes[c.LeftOperand],
		Enabled:    true,
		Attributes: map[string]any{AttrOperator: c.Operator},
	}
	switch p.Type {
	case PolicyTypeAccessCount:
		p.Attributes[AttrCount] = value
	case PolicyTypeTemporal:
		p.Attributes[AttrDateTime] = value
	case PolicyTypeSpatial:
		p.Attributes[AttrAllowedLocations] = c.RightOperandValues()
	case PolicyTypePurpose:
		if c.Operator == dsapi.OperatorIsNoneOf {
			p.Attributes[AttrDeniedPurposes] = c.RightOperandValues()
		} else {
			p.Attributes[AttrAllowedPurposes] = c.RightOperandValues()
		}
	}
	return p
}

func operatorAttr(attrs map[string]any) dsapi.Operator {
	switch v := attrs[AttrOperator].(type) {
	case dsapi.Operator:
		return v
	case string:
		op, _ := dsapi.Operator(v).Enum().Validate()
		return op
	default:
		return ""
	}
}

func int64Attr(attrs map[string]any, key string) (int64, bool) {
	switch v := attrs[key].(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

func timeAttr(attrs map[string]any, key string) (time.Time, bool) {
	switch v := attrs[key].(type) {
	case time.Time:
		return v, true
	case dstypes.Timestamp:
		return v.Time(), true
	case string:
		ts, err := dstypes.ParseTimeString(strings.TrimSpace(v))
		return ts.Time(), err == nil
	default:
		return time.Time{}, false
	}
}

func stringAttr(attrs map[string]any, key string) string {
	s, _ := attrs[key].(string)
	return s
}

func stringsAttr(attrs map[string]any, key string) []string {
	switch v := attrs[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return (&dsapi.Constraint{RightOperand: v}).RightOperandValues()
	default:
		return nil
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
