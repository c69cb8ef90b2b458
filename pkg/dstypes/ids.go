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

package dstypes

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

const pidPrefix = "urn:uuid:"

// NewPID mints a correlation identifier for a negotiation, transfer or
// agreement. Random v4 UUIDs keep capability tokens built from pids unguessable.
func NewPID() string {
	return pidPrefix + uuid.NewString()
}

// DerivedPID names something minted from existing state, so that building it
// again from the same inputs gives the same pid
func DerivedPID(parts ...string) string {
	return pidPrefix + uuid.NewSHA1(uuid.NameSpaceURL, []byte(strings.Join(parts, "|"))).String()
}

// ShortID is for log correlation only
func ShortID() string {
	u := uuid.New()
	return base64.RawURLEncoding.EncodeToString(u[0:8])
}

// EncodeArtifactToken builds the bearer capability that addresses the artifact
// of a transfer process on the provider's pull endpoint.
func EncodeArtifactToken(consumerPID, providerPID string) string {
	return base64.URLEncoding.EncodeToString([]byte(consumerPID + "|" + providerPID))
}

func DecodeArtifactToken(ctx context.Context, token string) (consumerPID, providerPID string, err error) {
	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", "", i18n.WrapError(ctx, err, msgs.MsgTypesInvalidArtifactToken)
	}
	consumerPID, providerPID, ok := strings.Cut(string(b), "|")
	if !ok || consumerPID == "" || providerPID == "" || strings.Contains(providerPID, "|") {
		return "", "", i18n.NewError(ctx, msgs.MsgTypesInvalidArtifactToken)
	}
	return consumerPID, providerPID, nil
}
