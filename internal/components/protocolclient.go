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

package components

import (
	"context"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
)

// ProtocolResponse is the outcome of one outbound protocol exchange.
// Success is false for any non-2xx status and when the counterpart was unreachable,
// in which case StatusCode is zero.
type ProtocolResponse struct {
	Success    bool
	StatusCode int
	Data       []byte
	Message    string
}

type ProtocolClient interface {
	// SendRequestProtocol POSTs the message in the protocol profile. An error is returned only
	// when the message cannot be serialized.
	SendRequestProtocol(ctx context.Context, address string, msg dsapi.ProtocolMessage, credentials string) (*ProtocolResponse, error)
	// PullData GETs artifact bytes from a counterpart endpoint, bounded by maxSize.
	PullData(ctx context.Context, address, authorization string, maxSize int64) (*BlobObject, error)
}
