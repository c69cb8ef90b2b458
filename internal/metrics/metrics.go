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

package metrics

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

type ConnectorMetrics interface {
	IncTransition(kind, from, to string)
	IncRemoteFailure(kind, messageType string)
	IncEnforcementDecision(allowed bool, policyType string)
	AddUsageEvents(count int)
}

var METRICS_NAMESPACE = "dsconnector"

type connectorMetrics struct {
	transitions          *prometheus.CounterVec
	remoteFailures       *prometheus.CounterVec
	enforcementDecisions *prometheus.CounterVec
	usageEvents          prometheus.Counter
}

func InitMetrics(ctx context.Context, registry *prometheus.Registry) *connectorMetrics {
	metrics := &connectorMetrics{}

	metrics.transitions = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "transitions_total",
		Help: "Accepted state transitions", Namespace: METRICS_NAMESPACE, Subsystem: "state"},
		[]string{"kind", "from", "to"})
	metrics.remoteFailures = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "remote_failures_total",
		Help: "Protocol messages the counterpart rejected or never received", Namespace: METRICS_NAMESPACE, Subsystem: "protocol"},
		[]string{"kind", "message_type"})
	metrics.enforcementDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "decisions_total",
		Help: "Enforcement gate decisions", Namespace: METRICS_NAMESPACE, Subsystem: "enforcement"},
		[]string{"allowed", "policy_type"})
	metrics.usageEvents = prometheus.NewCounter(prometheus.CounterOpts{Name: "events_total",
		Help: "Consumption events persisted", Namespace: METRICS_NAMESPACE, Subsystem: "usage"})

	registry.MustRegister(metrics.transitions, metrics.remoteFailures, metrics.enforcementDecisions, metrics.usageEvents)
	return metrics
}

func (m *connectorMetrics) IncTransition(kind, from, to string) {
	m.transitions.WithLabelValues(kind, from, to).Inc()
}

func (m *connectorMetrics) IncRemoteFailure(kind, messageType string) {
	m.remoteFailures.WithLabelValues(kind, messageType).Inc()
}

func (m *connectorMetrics) IncEnforcementDecision(allowed bool, policyType string) {
	m.enforcementDecisions.WithLabelValues(strconv.FormatBool(allowed), policyType).Inc()
}

func (m *connectorMetrics) AddUsageEvents(count int) {
	m.usageEvents.Add(float64(count))
}
