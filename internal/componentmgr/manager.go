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

package componentmgr

import (
	"context"
	"net"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/blobstore"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/catalog"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/connectorapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/dspapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/enforcement"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/metrics"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/negotiation"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/protocol"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/transfer"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/usage"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/persistence"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/prometheus/client_golang/prometheus"
)

type ComponentManager interface {
	components.AllComponents
	Init() error
	StartManagers() error
	CompleteStart() error
	Stop()
	ProtocolAddr() net.Addr
	APIAddr() net.Addr
}

type componentManager struct {
	bgCtx context.Context
	// config
	conf *dsconf.ConnectorConfig
	// pre-init
	persistence     persistence.Persistence
	blobStore       components.BlobStore
	protocolClient  components.ProtocolClient
	metricsRegistry *prometheus.Registry
	metrics         metrics.ConnectorMetrics
	// managers
	catalogManager     components.CatalogManager
	usageTracker       components.UsageTracker
	negotiationManager components.NegotiationManager
	transferManager    components.TransferManager
	enforcementGate    components.EnforcementGate
	// servers
	protocolServer dspapi.ProtocolServer
	apiServer      connectorapi.APIServer
	metricsServer  metrics.MetricsServer
	// keep track of everything we started, stopped in reverse order
	started []namedStoppable
	opened  []namedCloseable
}

// things that have a running component that is active in the background and hence "stops"
type stoppable interface {
	Stop()
}

// things that hold connections or files open and need to "close"
type closeable interface {
	Close()
}

type namedStoppable struct {
	name string
	s    stoppable
}

type namedCloseable struct {
	name string
	c    closeable
}

type managerInit struct {
	name string
	m    components.ManagerLifecycle
}

func NewComponentManager(bgCtx context.Context, conf *dsconf.ConnectorConfig) ComponentManager {
	log.InitConfig(&conf.Log)
	return &componentManager{
		bgCtx: bgCtx,
		conf:  conf,
	}
}

func (cm *componentManager) managers() []managerInit {
	return []managerInit{
		{"catalog_manager", cm.catalogManager},
		{"usage_tracker", cm.usageTracker},
		{"negotiation_manager", cm.negotiationManager},
		{"transfer_manager", cm.transferManager},
		{"enforcement_gate", cm.enforcementGate},
	}
}

func (cm *componentManager) Init() (err error) {
	if cm.conf.Connector.NodeName == nil || *cm.conf.Connector.NodeName == "" {
		return i18n.NewError(cm.bgCtx, msgs.MsgConfigNodeNameMissing)
	}
	if cm.conf.Connector.CallbackAddress == nil || *cm.conf.Connector.CallbackAddress == "" {
		return i18n.NewError(cm.bgCtx, msgs.MsgConfigCallbackAddressMissing)
	}

	cm.persistence, err = persistence.NewPersistence(cm.bgCtx, &cm.conf.DB)
	err = cm.addIfOpened("database", cm.persistence, err, msgs.MsgComponentDBInitError)
	if err == nil {
		cm.blobStore, err = blobstore.NewBlobStore(cm.bgCtx, &cm.conf.BlobStore)
		err = cm.addIfOpened("blob_store", cm.blobStore, err, msgs.MsgComponentBlobStoreInitError)
	}
	if err == nil {
		cm.protocolClient, err = protocol.NewProtocolClient(cm.bgCtx, &cm.conf.ProtocolClient)
		err = cm.wrapIfErr(err, msgs.MsgComponentClientInitError)
	}
	if err == nil {
		cm.metricsRegistry = prometheus.NewRegistry()
		cm.metrics = metrics.InitMetrics(cm.bgCtx, cm.metricsRegistry)
		cm.metricsServer, err = metrics.NewMetricsServer(cm.bgCtx, cm.metricsRegistry, &cm.conf.MetricsServer)
		err = cm.wrapIfErr(err, msgs.MsgComponentMetricsServerInitError)
	}

	// pre-init managers
	if err == nil {
		identity := &cm.conf.Connector
		cm.catalogManager = catalog.NewCatalogManager(cm.bgCtx, &cm.conf.Transfer)
		cm.usageTracker = usage.NewUsageTracker(cm.bgCtx, &cm.conf.Usage)
		cm.negotiationManager = negotiation.NewNegotiationManager(cm.bgCtx, identity, &cm.conf.Negotiation)
		cm.transferManager = transfer.NewTransferManager(cm.bgCtx, identity, &cm.conf.Transfer)
		cm.enforcementGate = enforcement.NewEnforcementGate(cm.bgCtx, identity, &cm.conf.Enforcement)
	}
	for _, mi := range cm.managers() {
		if err == nil {
			err = mi.m.PreInit(cm)
			err = cm.wrapIfErr(err, msgs.MsgComponentManagerInitError, mi.name)
		}
	}

	// post-init the managers
	for _, mi := range cm.managers() {
		if err == nil {
			err = mi.m.PostInit(cm)
			err = cm.wrapIfErr(err, msgs.MsgComponentManagerInitError, mi.name)
		}
	}

	// the servers bind to the managers, so are built last
	if err == nil {
		cm.protocolServer, err = dspapi.NewProtocolServer(cm.bgCtx, &cm.conf.ProtocolServer, cm)
		err = cm.wrapIfErr(err, msgs.MsgComponentProtocolServerInitError)
	}
	if err == nil {
		cm.apiServer, err = connectorapi.NewAPIServer(cm.bgCtx, &cm.conf.APIServer, cm)
		err = cm.wrapIfErr(err, msgs.MsgComponentAPIServerInitError)
	}
	return err
}

func (cm *componentManager) StartManagers() (err error) {
	for _, mi := range cm.managers() {
		if err == nil {
			err = mi.m.Start()
			err = cm.addIfStarted(mi.name, mi.m, err, msgs.MsgComponentStartError, mi.name)
		}
	}
	return err
}

// CompleteStart opens the servers once every manager is running, so no
// counterpart message arrives at a manager that is not ready for it
func (cm *componentManager) CompleteStart() error {
	err := cm.protocolServer.Start()
	err = cm.addIfStarted("protocol_server", cm.protocolServer, err, msgs.MsgComponentStartError, "protocol_server")
	if err == nil {
		err = cm.apiServer.Start()
		err = cm.addIfStarted("api_server", cm.apiServer, err, msgs.MsgComponentStartError, "api_server")
	}
	if err == nil {
		err = cm.metricsServer.Start()
		err = cm.addIfStarted("metrics_server", cm.metricsServer, err, msgs.MsgComponentStartError, "metrics_server")
	}
	if err == nil {
		log.L(cm.bgCtx).Infof("Startup complete node=%s protocol=%s api=%s", *cm.conf.Connector.NodeName, cm.ProtocolAddr(), cm.APIAddr())
	}
	return err
}

func (cm *componentManager) wrapIfErr(err error, failMsg i18n.ErrorMessageKey, inserts ...any) error {
	if err != nil {
		return i18n.WrapError(cm.bgCtx, err, failMsg, inserts...)
	}
	return nil
}

func (cm *componentManager) addIfStarted(desc string, c stoppable, err error, failMsg i18n.ErrorMessageKey, inserts ...any) error {
	if err != nil {
		return i18n.WrapError(cm.bgCtx, err, failMsg, inserts...)
	}
	cm.started = append(cm.started, namedStoppable{name: desc, s: c})
	return nil
}

func (cm *componentManager) addIfOpened(desc string, c closeable, err error, failMsg i18n.ErrorMessageKey) error {
	if err != nil {
		return i18n.WrapError(cm.bgCtx, err, failMsg)
	}
	cm.opened = append(cm.opened, namedCloseable{name: desc, c: c})
	return nil
}

func (cm *componentManager) Stop() {
	log.L(cm.bgCtx).Info("Stopping")
	for i := len(cm.started) - 1; i >= 0; i-- {
		log.L(cm.bgCtx).Infof("Stopping %s", cm.started[i].name)
		cm.started[i].s.Stop()
		log.L(cm.bgCtx).Debugf("Stopped %s", cm.started[i].name)
	}
	cm.started = nil
	for i := len(cm.opened) - 1; i >= 0; i-- {
		log.L(cm.bgCtx).Infof("Closing %s", cm.opened[i].name)
		cm.opened[i].c.Close()
	}
	cm.opened = nil
	log.L(cm.bgCtx).Debug("Stopped")
}

func (cm *componentManager) ProtocolAddr() net.Addr {
	if cm.protocolServer == nil {
		return nil
	}
	return cm.protocolServer.Addr()
}

func (cm *componentManager) APIAddr() net.Addr {
	if cm.apiServer == nil {
		return nil
	}
	return cm.apiServer.Addr()
}

func (cm *componentManager) Config() *dsconf.ConnectorConfig {
	return cm.conf
}

func (cm *componentManager) Persistence() persistence.Persistence {
	return cm.persistence
}

func (cm *componentManager) BlobStore() components.BlobStore {
	return cm.blobStore
}

func (cm *componentManager) ProtocolClient() components.ProtocolClient {
	return cm.protocolClient
}

func (cm *componentManager) Metrics() metrics.ConnectorMetrics {
	return cm.metrics
}

func (cm *componentManager) CatalogManager() components.CatalogManager {
	return cm.catalogManager
}

func (cm *componentManager) UsageTracker() components.UsageTracker {
	return cm.usageTracker
}

func (cm *componentManager) NegotiationManager() components.NegotiationManager {
	return cm.negotiationManager
}

func (cm *componentManager) TransferManager() components.TransferManager {
	return cm.transferManager
}

func (cm *componentManager) EnforcementGate() components.EnforcementGate {
	return cm.enforcementGate
}
