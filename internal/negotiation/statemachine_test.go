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
	"testing"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/stretchr/testify/assert"
)

var allStates = []dsapi.NegotiationState{
	dsapi.NegotiationStateRequested,
	dsapi.NegotiationStateOffered,
	dsapi.NegotiationStateAccepted,
	dsapi.NegotiationStateAgreed,
	dsapi.NegotiationStateVerified,
	dsapi.NegotiationStateFinalized,
	dsapi.NegotiationStateTerminated,
}

func TestTransitionTable(t *testing.T) {
	ctx := context.Background()
	legal := map[[2]dsapi.NegotiationState]bool{
		{dsapi.NegotiationStateRequested, dsapi.NegotiationStateOffered}:    true,
		{dsapi.NegotiationStateRequested, dsapi.NegotiationStateAgreed}:     true,
		{dsapi.NegotiationStateRequested, dsapi.NegotiationStateTerminated}: true,
		{dsapi.NegotiationStateOffered, dsapi.NegotiationStateRequested}:    true,
		{dsapi.NegotiationStateOffered, dsapi.NegotiationStateAccepted}:     true,
		{dsapi.NegotiationStateOffered, dsapi.NegotiationStateTerminated}:   true,
		{dsapi.NegotiationStateAccepted, dsapi.NegotiationStateAgreed}:      true,
		{dsapi.NegotiationStateAccepted, dsapi.NegotiationStateTerminated}:  true,
		{dsapi.NegotiationStateAgreed, dsapi.NegotiationStateVerified}:      true,
		{dsapi.NegotiationStateAgreed, dsapi.NegotiationStateTerminated}:    true,
		{dsapi.NegotiationStateVerified, dsapi.NegotiationStateFinalized}:   true,
		{dsapi.NegotiationStateVerified, dsapi.NegotiationStateTerminated}:  true,
	}
	for _, from := range allStates {
		for _, to := range allStates {
			errC := CheckTransition(ctx, dsapi.RoleConsumer, from, to)
			errP := CheckTransition(ctx, dsapi.RoleProvider, from, to)
			if !legal[[2]dsapi.NegotiationState{from, to}] {
				assert.Regexp(t, "DS010500", errC, "%s -> %s", from, to)
				assert.Regexp(t, "DS010500", errP, "%s -> %s", from, to)
				assert.Equal(t, dstypes.ErrorKindIllegalStateTransition, dstypes.ErrorKindOf(errC))
			} else {
				// at least one role can drive every legal transition
				assert.True(t, errC == nil || errP == nil, "%s -> %s", from, to)
			}
		}
	}
}

func TestTerminatedReachableFromEveryNonTerminalState(t *testing.T) {
	for _, from := range allStates {
		err := CheckTransition(context.Background(), dsapi.RoleConsumer, from, dsapi.NegotiationStateTerminated)
		if from.IsTerminal() {
			assert.Error(t, err)
		} else {
			assert.NoError(t, err)
		}
	}
}

func TestRoleAsymmetry(t *testing.T) {
	ctx := context.Background()

	err := CheckTransition(ctx, dsapi.RoleConsumer, dsapi.NegotiationStateAccepted, dsapi.NegotiationStateAgreed)
	assert.Regexp(t, "DS010501", err)
	assert.Equal(t, dstypes.ErrorKindIllegalStateTransition, dstypes.ErrorKindOf(err))
	assert.NoError(t, CheckTransition(ctx, dsapi.RoleProvider, dsapi.NegotiationStateAccepted, dsapi.NegotiationStateAgreed))

	err = CheckTransition(ctx, dsapi.RoleProvider, dsapi.NegotiationStateAgreed, dsapi.NegotiationStateVerified)
	assert.Regexp(t, "DS010501", err)
	assert.NoError(t, CheckTransition(ctx, dsapi.RoleConsumer, dsapi.NegotiationStateAgreed, dsapi.NegotiationStateVerified))
}
