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

package dsapi

import (
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
)

type TransferState string

const (
	TransferStateRequested  TransferState = "REQUESTED"
	TransferStateStarted    TransferState = "STARTED"
	TransferStateCompleted  TransferState = "COMPLETED"
	TransferStateSuspended  TransferState = "SUSPENDED"
	TransferStateTerminated TransferState = "TERMINATED"
)

func (s TransferState) Enum() dstypes.Enum[TransferState] {
	return dstypes.Enum[TransferState](s)
}

func (s TransferState) Options() []string {
	return []string{
		string(TransferStateRequested),
		string(TransferStateStarted),
		string(TransferStateCompleted),
		string(TransferStateSuspended),
		string(TransferStateTerminated),
	}
}

func (s TransferState) IsTerminal() bool {
	return s == TransferStateCompleted || s == TransferStateTerminated
}

const (
	FormatHTTPPull = "HttpData-PULL"

	EndpointTypeHTTP          = "https://w3id.org/idsa/v4.1/HTTP"
	EndpointPropAuthorization = "authorization"
	EndpointPropAuthType      = "authType"
)

type EndpointProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type DataAddress struct {
	EndpointType       string             `json:"endpointType,omitempty"`
	Endpoint           string             `json:"endpoint"`
	EndpointProperties []EndpointProperty `json:"endpointProperties,omitempty"`
}

func (da *DataAddress) Property(name string) string {
	if da == nil {
		return ""
	}
	for _, p := range da.EndpointProperties {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

type TransferProcess struct {
	ID              string            `json:"id"`
	ConsumerPID     string            `json:"consumerPid"`
	ProviderPID     string            `json:"providerPid"`
	AgreementID     string            `json:"agreementId"`
	DatasetID       string            `json:"datasetId,omitempty"`
	DataAddress     *DataAddress      `json:"dataAddress,omitempty"`
	Format          string            `json:"format"`
	CallbackAddress string            `json:"callbackAddress,omitempty"`
	State           TransferState     `json:"state"`
	Role            Role              `json:"role"`
	IsDownloaded    bool              `json:"isDownloaded"`
	DataID          string            `json:"dataId,omitempty"`
	Created         dstypes.Timestamp `json:"created"`
	CreatedBy       string            `json:"createdBy,omitempty"`
	LastModified    dstypes.Timestamp `json:"lastModified"`
	LastModifiedBy  string            `json:"lastModifiedBy,omitempty"`
	Version         int64             `json:"version"`
}

func (tp *TransferProcess) LocalPID() string {
	if tp.Role == RoleConsumer {
		return tp.ConsumerPID
	}
	return tp.ProviderPID
}

// CopyWithNewState returns a new snapshot in the given state, leaving the
// receiver untouched.
func (tp *TransferProcess) CopyWithNewState(state TransferState, modifiedBy string) *TransferProcess {
	c := *tp
	c.State = state
	if tp.DataAddress != nil {
		da := *tp.DataAddress
		da.EndpointProperties = append([]EndpointProperty(nil), tp.DataAddress.EndpointProperties...)
		c.DataAddress = &da
	}
	c.LastModified = dstypes.TimestampNow()
	c.LastModifiedBy = modifiedBy
	return &c
}
