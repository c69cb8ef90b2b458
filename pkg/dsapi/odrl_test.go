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
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConstraints() (Constraint, Constraint) {
	return Constraint{LeftOperand: LeftOperandCount, Operator: OperatorLTEQ, RightOperand: "5"},
		Constraint{LeftOperand: LeftOperandPurpose, Operator: OperatorIsAnyOf, RightOperand: "research, education"}
}

func testOffer(t *testing.T) *Offer {
	a, b := testConstraints()
	p, err := NewPermission(context.Background(), ActionUse, "urn:dataset:1", a, b)
	require.NoError(t, err)
	o, err := NewOffer(context.Background(), "", "urn:dataset:1", "urn:provider", "urn:consumer", *p)
	require.NoError(t, err)
	return o
}

func TestEnumOptions(t *testing.T) {
	assert.NotEmpty(t, LeftOperand("").Enum().V().Options())
	assert.NotEmpty(t, Operator("").Options())
	assert.NotEmpty(t, Action("").Options())
	assert.NotEmpty(t, Role("").Options())
	assert.NotEmpty(t, NegotiationState("").Options())
	assert.NotEmpty(t, TransferState("").Options())
	assert.NotEmpty(t, NegotiationEventType("").Options())
	assert.Equal(t, RoleProvider, RoleConsumer.Counterpart())
	assert.Equal(t, RoleConsumer, RoleProvider.Counterpart())
}

func TestNewConstraint(t *testing.T) {
	ctx := context.Background()
	c, err := NewConstraint(ctx, LeftOperandDateTime, OperatorGTEQ, "2024-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, OperatorGTEQ, c.Operator)

	_, err = NewConstraint(ctx, "colour", OperatorEQ, "red")
	assert.Regexp(t, "DS010402.*leftOperand", err)

	_, err = NewConstraint(ctx, LeftOperandCount, "approx", "5")
	assert.Regexp(t, "DS010402.*operator", err)

	_, err = NewConstraint(ctx, LeftOperandCount, OperatorLT, "")
	assert.Regexp(t, "DS010404", err)

	err = (&Constraint{LeftOperand: LeftOperandCount, Operator: OperatorLT, RightOperand: "1", RightOperandReference: "urn:ref"}).Validate(ctx)
	assert.Regexp(t, "DS010404", err)
}

func TestRightOperandValues(t *testing.T) {
	_, b := testConstraints()
	assert.Equal(t, []string{"research", "education"}, b.RightOperandValues())
	assert.Nil(t, (&Constraint{}).RightOperandValues())
}

func TestPermissionEqualIsSetBased(t *testing.T) {
	a, b := testConstraints()
	p1 := &Permission{Action: ActionUse, Target: "t", Constraints: []Constraint{a, b}}
	p2 := &Permission{Action: ActionUse, Target: "t", Constraints: []Constraint{b, a}}
	p3 := &Permission{Action: ActionUse, Target: "t", Constraints: []Constraint{b, a, b}}
	p4 := &Permission{Action: ActionUse, Target: "t", Constraints: []Constraint{a}}
	p5 := &Permission{Action: ActionRead, Target: "t", Constraints: []Constraint{a, b}}
	assert.True(t, p1.Equal(p2))
	assert.True(t, p1.Equal(p3))
	assert.False(t, p1.Equal(p4))
	assert.False(t, p1.Equal(p5))
	assert.False(t, p1.Equal(nil))
	assert.True(t, (*Permission)(nil).Equal(nil))

	// the original order is untouched by comparison
	assert.Equal(t, a, p1.Constraints[0])
}

func TestOfferEqualIsSetBased(t *testing.T) {
	a, b := testConstraints()
	o1 := &Offer{ID: "o1", Target: "t", Permissions: []Permission{
		{Action: ActionUse, Constraints: []Constraint{a}},
		{Action: ActionRead, Constraints: []Constraint{b}},
	}}
	o2 := &Offer{ID: "o1", Target: "t", Permissions: []Permission{
		{Action: ActionRead, Constraints: []Constraint{b}},
		{Action: ActionUse, Constraints: []Constraint{a}},
	}}
	assert.True(t, o1.Equal(o2))
	o2.Assignee = "someone"
	assert.False(t, o1.Equal(o2))
}

func TestOfferValidation(t *testing.T) {
	ctx := context.Background()
	o := testOffer(t)
	assert.Contains(t, o.ID, "urn:uuid:")

	_, err := NewOffer(ctx, "o1", "", "", "", o.Permissions...)
	assert.Regexp(t, "DS010400.*target.*Offer", err)

	_, err = NewOffer(ctx, "o1", "urn:dataset:1", "", "")
	assert.Regexp(t, "DS010403.*Offer", err)

	_, err = NewOffer(ctx, "o1", "urn:dataset:1", "", "", Permission{Action: "dance"})
	assert.Regexp(t, "DS010402", err)
}

func TestOfferCopyIsIndependent(t *testing.T) {
	o := testOffer(t)
	c := o.Copy()
	assert.True(t, o.Equal(c))
	c.Permissions[0].Constraints[0].RightOperand = "99"
	assert.Equal(t, "5", o.Permissions[0].Constraints[0].RightOperand)
	assert.Nil(t, (*Offer)(nil).Copy())
}

func TestNewAgreement(t *testing.T) {
	ctx := context.Background()
	o := testOffer(t)
	a, err := NewAgreement(ctx, o.Target, "urn:consumer", "urn:provider", o.Permissions)
	require.NoError(t, err)
	assert.Contains(t, a.ID, "urn:uuid:")
	assert.NotZero(t, a.Timestamp)

	_, err = NewAgreement(ctx, o.Target, "", "urn:provider", o.Permissions)
	assert.Regexp(t, "DS010400.*assignee", err)

	_, err = NewAgreement(ctx, o.Target, "urn:consumer", "urn:provider", nil)
	assert.Regexp(t, "DS010403.*Agreement", err)
}

func TestPlainProfileRoundTrip(t *testing.T) {
	o := testOffer(t)
	b, err := json.Marshal(o)
	require.NoError(t, err)
	var o2 Offer
	require.NoError(t, json.Unmarshal(b, &o2))
	assert.True(t, o.Equal(&o2))

	a, err := NewAgreement(context.Background(), o.Target, "urn:consumer", "urn:provider", o.Permissions)
	require.NoError(t, err)
	b, err = json.Marshal(a)
	require.NoError(t, err)
	var a2 Agreement
	require.NoError(t, json.Unmarshal(b, &a2))
	assert.True(t, a.Equal(&a2))
	assert.Equal(t, *a, a2)
}
