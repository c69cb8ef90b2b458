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

package dspapi

import (
	"context"
	"io"
	"net/http"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/protocol"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

const maxMessageSize = 1024 * 1024

// readMessage parses a protocol profile request body into msg, and validates it
func readMessage(ctx context.Context, req *http.Request, msg dsapi.ProtocolMessage) error {
	data, err := io.ReadAll(io.LimitReader(req.Body, maxMessageSize))
	if err != nil {
		return i18n.NewError(ctx, msgs.MsgValidationProtocolParse, err)
	}
	if err := protocol.FromProtocolJSON(ctx, data, msg.ProtocolType(), msg); err != nil {
		return err
	}
	return msg.Validate(ctx)
}

func writeProtocol(ctx context.Context, res http.ResponseWriter, status int, v any, protocolType string) {
	data, err := protocol.ToProtocolJSON(ctx, v, protocolType)
	if err != nil {
		log.L(ctx).Errorf("Failed to serialize %s: %s", protocolType, err)
		res.WriteHeader(http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	_, _ = res.Write(data)
}

// writeError answers with the protocol error message for the exchange kind,
// using the error kind for the status code and the code field
func writeError(ctx context.Context, res http.ResponseWriter, err error, consumerPID, providerPID string, transfer bool) {
	kind := dstypes.ErrorKindOf(err)
	status := kind.HTTPStatus()
	log.L(ctx).Errorf("Protocol request failed (%s, status=%d): %s", kind, status, err)
	if transfer {
		writeProtocol(ctx, res, status, &dsapi.TransferError{
			ConsumerPID: consumerPID,
			ProviderPID: providerPID,
			Code:        string(kind),
			Reason:      []string{err.Error()},
		}, dsapi.TypeTransferError)
		return
	}
	writeProtocol(ctx, res, status, &dsapi.ContractNegotiationErrorMessage{
		ConsumerPID: consumerPID,
		ProviderPID: providerPID,
		Code:        string(kind),
		Reason:      []string{err.Error()},
	}, dsapi.TypeContractNegotiationErrorMessage)
}
