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

package protocol

import (
	"context"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// CheckResponse turns an unsuccessful exchange into a RemoteExchangeFailure
func CheckResponse(ctx context.Context, address string, res *components.ProtocolResponse) error {
	if res.Success {
		return nil
	}
	if res.StatusCode == 0 {
		return i18n.NewError(ctx, msgs.MsgRemoteRequestFailed, address)
	}
	return i18n.NewError(ctx, msgs.MsgRemoteExchangeFailed, address, res.StatusCode, res.Message)
}

// ParseResponse checks the exchange succeeded and parses the protocol profile reply into out
func ParseResponse(ctx context.Context, address string, res *components.ProtocolResponse, protocolType string, out any) error {
	if err := CheckResponse(ctx, address, res); err != nil {
		return err
	}
	if err := FromProtocolJSON(ctx, res.Data, protocolType, out); err != nil {
		return i18n.WrapError(ctx, err, msgs.MsgRemoteResponseInvalid, address, err)
	}
	return nil
}
