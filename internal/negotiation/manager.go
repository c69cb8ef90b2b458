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

package negotiation

import (
	"context"
	"fmt"
	"strings"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/metrics"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/protocol"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/confutil"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/persistence"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/retry"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"gorm.io/gorm"
)

const exchangeKind = "negotiation"

type negotiationManager struct {
	bgCtx context.Context

	nodeName           string
	callbackAddress    string
	credentials        string
	providerAutoAgree  bool
	consumerAutoAccept bool
	autoRetry          *retry.Retry

	persistence    persistence.Persistence
	protocolClient components.ProtocolClient
	metrics        metrics.ConnectorMetrics
	catalog        components.CatalogManager
}

func NewNegotiationManager(bgCtx context.Context, identity *dsconf.ConnectorIdentityConfig, conf *dsconf.NegotiationConfig) components.NegotiationManager {
	return &negotiationManager{
		bgCtx:              bgCtx,
		nodeName:           confutil.StringOrEmpty(identity.NodeName, ""),
		callbackAddress:    strings.TrimSuffix(confutil.StringOrEmpty(identity.CallbackAddress, ""), "/"),
		credentials:        confutil.StringOrEmpty(identity.Credentials, ""),
		providerAutoAgree:  confutil.Bool(conf.ProviderAutoAgree, *dsconf.NegotiationDefaults.ProviderAutoAgree),
		consumerAutoAccept: confutil.Bool(conf.ConsumerAutoAccept, *dsconf.NegotiationDefaults.ConsumerAutoAccept),
		autoRetry:          retry.NewRetry(&conf.AutoRetry),
	}
}

func (nm *negotiationManager) PreInit(pic components.PreInitComponents) error {
	nm.persistence = pic.Persistence()
	nm.protocolClient = pic.ProtocolClient()
	nm.metrics = pic.Metrics()
	return nil
}

func (nm *negotiationManager) PostInit(c components.AllComponents) error {
	nm.catalog = c.CatalogManager()
	return nil
}

func (nm *negotiationManager) Start() error { return nil }

func (nm *negotiationManager) Stop() {}

// consumerCallback is where providers reach this connector acting as a consumer
func (nm *negotiationManager) consumerCallback() string {
	return nm.callbackAddress + "/consumer"
}

// counterpartURL addresses the counterpart's view of the negotiation, by the pid it minted
func counterpartURL(cn *dsapi.ContractNegotiation, verb string) string {
	pid := cn.ProviderPID
	if cn.Role == dsapi.RoleProvider {
		pid = cn.ConsumerPID
	}
	return fmt.Sprintf("%s/negotiations/%s/%s", strings.TrimSuffix(cn.CallbackAddress, "/"), pid, verb)
}

// send delivers a message and checks the counterpart accepted it. When ack is
// supplied, the counterpart's description of the negotiation is parsed into it.
func (nm *negotiationManager) send(ctx context.Context, address string, msg dsapi.ProtocolMessage, ack *dsapi.ContractNegotiationAck) error {
	log.L(ctx).Debugf("Sending %s to %s", msg.ProtocolType(), address)
	res, err := nm.protocolClient.SendRequestProtocol(ctx, address, msg, nm.credentials)
	if err != nil {
		return err
	}
	if ack != nil {
		err = protocol.ParseResponse(ctx, address, res, dsapi.TypeContractNegotiation, ack)
		if err == nil {
			if verr := ack.Validate(ctx); verr != nil {
				err = i18n.WrapError(ctx, verr, msgs.MsgRemoteResponseInvalid, address, verr)
			}
		}
	} else {
		err = protocol.CheckResponse(ctx, address, res)
	}
	if err != nil {
		nm.metrics.IncRemoteFailure(exchangeKind, msg.ProtocolType())
		log.L(ctx).Errorf("%s to %s failed: %s", msg.ProtocolType(), address, err)
	}
	return err
}

// transition describes one state change of an existing negotiation
type transition struct {
	actor dsapi.Role
	to    dsapi.NegotiationState
	// send is called after the transition is checked, and before anything is
	// persisted. A failure leaves the stored negotiation untouched.
	send func(ctx context.Context, cn *dsapi.ContractNegotiation) error
	// update applies any further changes to the new snapshot
	update func(next *dsapi.ContractNegotiation)
	// agreement is stored in the same database transaction as the new snapshot
	agreement *dsapi.Agreement
}

func (nm *negotiationManager) applyTransition(ctx context.Context, cn *dsapi.ContractNegotiation, t *transition) (*dsapi.ContractNegotiation, error) {
	ctx = log.WithExchange(ctx, exchangeKind, cn.LocalPID())
	if err := CheckTransition(ctx, t.actor, cn.State, t.to); err != nil {
		return nil, err
	}
	// Outbound transitions are driven by this connector, so only in its own role
	if t.send != nil && t.actor != cn.Role {
		return nil, i18n.NewError(ctx, msgs.MsgStateRoleForbidden, cn.Role, "contract negotiation", cn.State, t.to)
	}
	if t.send != nil {
		if err := t.send(ctx, cn); err != nil {
			return nil, err
		}
	}
	next := cn.CopyWithNewState(t.to, nm.nodeName)
	if t.update != nil {
		t.update(next)
	}
	err := nm.persistence.Transaction(ctx, func(ctx context.Context, dbTX persistence.DBTX) error {
		if t.agreement != nil {
			if err := nm.insertAgreement(ctx, dbTX, t.agreement); err != nil {
				return err
			}
		}
		return nm.updateNegotiation(ctx, dbTX, cn, next)
	})
	if err != nil {
		return nil, err
	}
	nm.metrics.IncTransition(exchangeKind, string(cn.State), string(next.State))
	log.L(ctx).Infof("Contract negotiation %s -> %s (version=%d)", cn.State, next.State, next.Version)
	return next, nil
}

// create persists a negotiation seen for the first time
func (nm *negotiationManager) create(ctx context.Context, cn *dsapi.ContractNegotiation) (*dsapi.ContractNegotiation, error) {
	now := dstypes.TimestampNow()
	cn.ID = cn.LocalPID()
	cn.Created = now
	cn.CreatedBy = nm.nodeName
	cn.LastModified = now
	cn.LastModifiedBy = nm.nodeName
	ctx = log.WithExchange(ctx, exchangeKind, cn.ID)
	err := nm.persistence.Transaction(ctx, func(ctx context.Context, dbTX persistence.DBTX) error {
		return nm.insertNegotiation(ctx, dbTX, cn)
	})
	if err != nil {
		return nil, err
	}
	nm.metrics.IncTransition(exchangeKind, "", string(cn.State))
	log.L(ctx).Infof("Contract negotiation created in state %s as %s", cn.State, cn.Role)
	return cn, nil
}

// runAuto performs an automatic step in the background, as the counterpart may
// still be persisting its view of the negotiation when the step begins
func (nm *negotiationManager) runAuto(ctx context.Context, description, id string, step func(ctx context.Context, id string) (*dsapi.ContractNegotiation, error)) {
	bgCtx := log.WithLogger(nm.bgCtx, log.L(ctx))
	go func() {
		err := nm.autoRetry.Do(bgCtx, func(attempt int) (bool, error) {
			_, err := step(bgCtx, id)
			return dstypes.IsRetryable(dstypes.ErrorKindOf(err)), err
		})
		if err != nil {
			log.L(bgCtx).Errorf("Automatic %s of negotiation %s failed: %s", description, id, err)
		}
	}()
}

func (nm *negotiationManager) GetNegotiation(ctx context.Context, id string) (*dsapi.ContractNegotiation, error) {
	return nm.getNegotiation(ctx, nm.persistence.NOTX(), "id", id, "")
}

func (nm *negotiationManager) GetNegotiationByPID(ctx context.Context, localRole dsapi.Role, pid string) (*dsapi.ContractNegotiation, error) {
	column := "provider_pid"
	if localRole == dsapi.RoleConsumer {
		column = "consumer_pid"
	}
	return nm.getNegotiation(ctx, nm.persistence.NOTX(), column, pid, localRole)
}

func (nm *negotiationManager) ListNegotiations(ctx context.Context, role dsapi.Role) ([]*dsapi.ContractNegotiation, error) {
	return nm.queryNegotiations(ctx, nm.persistence.NOTX(), func(q *gorm.DB) *gorm.DB {
		if role != "" {
			q = q.Where("role = ?", role)
		}
		return q
	})
}

func (nm *negotiationManager) CheckAgreementFinalized(ctx context.Context, agreementID string) error {
	if _, err := nm.GetAgreement(ctx, agreementID); err != nil {
		return err
	}
	cns, err := nm.queryNegotiations(ctx, nm.persistence.NOTX(), func(q *gorm.DB) *gorm.DB {
		return q.Where("agreement_id = ?", agreementID).Where("state = ?", dsapi.NegotiationStateFinalized)
	})
	if err != nil {
		return err
	}
	if len(cns) == 0 {
		return i18n.NewError(ctx, msgs.MsgValidationNegotiationNotFinal, agreementID)
	}
	return nil
}
