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

package enforcement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/metrics"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/policy"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/cache"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/confutil"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

const policyTypeBypass = "BYPASS"

type enforcementGate struct {
	bgCtx context.Context

	enabled  bool
	location string
	purpose  string
	now      func() time.Time

	registry   *policy.Registry
	agreements cache.Cache[string, *dsapi.Agreement]

	metrics     metrics.ConnectorMetrics
	negotiation components.NegotiationManager
	usage       components.UsageTracker
}

func NewEnforcementGate(bgCtx context.Context, identity *dsconf.ConnectorIdentityConfig, conf *dsconf.EnforcementConfig) components.EnforcementGate {
	return &enforcementGate{
		bgCtx:      bgCtx,
		enabled:    confutil.Bool(conf.Enabled, *dsconf.EnforcementDefaults.Enabled),
		location:   confutil.StringOrEmpty(identity.Location, ""),
		purpose:    confutil.StringOrEmpty(conf.Purpose, ""),
		now:        time.Now,
		registry:   policy.NewDefaultRegistry(time.Now),
		agreements: cache.NewCache[string, *dsapi.Agreement](&conf.AgreementCache, &dsconf.EnforcementDefaults.AgreementCache),
	}
}

func (eg *enforcementGate) PreInit(pic components.PreInitComponents) error {
	eg.metrics = pic.Metrics()
	return nil
}

func (eg *enforcementGate) PostInit(c components.AllComponents) error {
	eg.negotiation = c.NegotiationManager()
	eg.usage = c.UsageTracker()
	return nil
}

func (eg *enforcementGate) Start() error {
	if !eg.enabled {
		log.L(eg.bgCtx).Warnf("Usage control enforcement is DISABLED. Every access to a started transfer will be granted")
	}
	return nil
}

func (eg *enforcementGate) Stop() {}

// agreement is immutable once stored, so a cached copy never goes stale
func (eg *enforcementGate) agreement(ctx context.Context, id string) (*dsapi.Agreement, error) {
	if a, ok := eg.agreements.Get(id); ok {
		return a, nil
	}
	a, err := eg.negotiation.GetAgreement(ctx, id)
	if err != nil {
		return nil, err
	}
	eg.agreements.Set(id, a)
	return a, nil
}

func grantFor(tp *dsapi.TransferProcess, action dsapi.Action) *components.AccessGrant {
	return &components.AccessGrant{
		AgreementID: tp.AgreementID,
		TransferID:  tp.ID,
		Action:      action,
	}
}

func (eg *enforcementGate) CheckAccess(ctx context.Context, tp *dsapi.TransferProcess, kind components.AccessKind) (*components.AccessGrant, error) {
	ctx = log.WithLogField(ctx, "access", string(kind))
	if tp.State != dsapi.TransferStateStarted {
		return nil, i18n.NewError(ctx, msgs.MsgPolicyTransferNotStarted, tp.ID, tp.State)
	}
	if kind == components.AccessView && !tp.IsDownloaded {
		return nil, i18n.NewError(ctx, msgs.MsgPolicyNotDownloaded, tp.ID)
	}

	if !eg.enabled {
		log.L(ctx).Warnf("Enforcement disabled, granting %s of transfer %s without evaluating agreement %s", kind, tp.ID, tp.AgreementID)
		eg.metrics.IncEnforcementDecision(true, policyTypeBypass)
		return grantFor(tp, dsapi.ActionUse), nil
	}

	a, err := eg.agreement(ctx, tp.AgreementID)
	if err != nil {
		return nil, err
	}
	if len(a.Permissions) == 0 {
		return nil, i18n.NewError(ctx, msgs.MsgPolicyAgreementEmpty, a.ID)
	}

	attrs, err := eg.requestAttributes(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	var denials []*policy.PolicyDecision
	for i := range a.Permissions {
		perm := &a.Permissions[i]
		req := &policy.PolicyRequest{
			AgreementID: a.ID,
			ResourceID:  a.Target,
			UserID:      a.Assignee,
			Action:      perm.Action,
			Attributes:  attrs,
		}
		denied := eg.evaluatePermission(ctx, a.ID, i, perm, req)
		if denied == nil {
			log.L(ctx).Infof("Access granted by permission %d of agreement %s", i, a.ID)
			return grantFor(tp, perm.Action), nil
		}
		denials = append(denials, denied)
	}

	if len(denials) == 1 {
		return nil, i18n.NewError(ctx, msgs.MsgPolicyViolation, denials[0].PolicyType, denials[0].Message)
	}
	reasons := make([]string, len(denials))
	for i, d := range denials {
		reasons[i] = fmt.Sprintf("%s: %s", d.PolicyType, d.Message)
	}
	return nil, i18n.NewError(ctx, msgs.MsgPolicyNoPermissionGranted, a.ID, strings.Join(reasons, "; "))
}

// evaluatePermission returns the first failing decision, or nil when every
// constraint of the permission allows the request
func (eg *enforcementGate) evaluatePermission(ctx context.Context, agreementID string, idx int, perm *dsapi.Permission, req *policy.PolicyRequest) *policy.PolicyDecision {
	for j := range perm.Constraints {
		p := policy.FromConstraint(fmt.Sprintf("%s/permission/%d/constraint/%d", agreementID, idx, j), &perm.Constraints[j])
		decision := eg.registry.Evaluate(p, req)
		eg.metrics.IncEnforcementDecision(decision.Allowed, string(decision.PolicyType))
		if !decision.Allowed {
			log.L(ctx).Infof("Policy %s (%s) denied: %s", decision.PolicyID, decision.PolicyType, decision.Message)
			return decision
		}
		log.L(ctx).Debugf("Policy %s (%s) allowed: %s", decision.PolicyID, decision.PolicyType, decision.Message)
	}
	return nil
}

func (eg *enforcementGate) requestAttributes(ctx context.Context, agreementID string) (map[string]any, error) {
	count, err := eg.usage.CurrentCount(ctx, agreementID)
	if err != nil {
		return nil, err
	}
	attrs := map[string]any{
		policy.AttrCurrentCount: count,
		policy.AttrAccessTime:   eg.now(),
	}
	if eg.location != "" {
		attrs[policy.AttrLocation] = eg.location
	}
	if eg.purpose != "" {
		attrs[policy.AttrPurpose] = eg.purpose
	}
	return attrs, nil
}

func (eg *enforcementGate) RecordConsumption(ctx context.Context, grant *components.AccessGrant) {
	eg.usage.Publish(ctx, &components.ConsumptionEvent{
		AgreementID: grant.AgreementID,
		TransferID:  grant.TransferID,
		Action:      grant.Action,
		Timestamp:   dstypes.TimestampFromTime(eg.now()),
	})
}
