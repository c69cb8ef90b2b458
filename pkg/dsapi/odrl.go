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
	"sort"
	"strings"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

type LeftOperand string

const (
	LeftOperandCount    LeftOperand = "count"
	LeftOperandDateTime LeftOperand = "dateTime"
	LeftOperandSpatial  LeftOperand = "spatial"
	LeftOperandPurpose  LeftOperand = "purpose"
)

func (lo LeftOperand) Enum() dstypes.Enum[LeftOperand] {
	return dstypes.Enum[LeftOperand](lo)
}

func (lo LeftOperand) Options() []string {
	return []string{
		string(LeftOperandCount),
		string(LeftOperandDateTime),
		string(LeftOperandSpatial),
		string(LeftOperandPurpose),
	}
}

type Operator string

const (
	OperatorEQ       Operator = "eq"
	OperatorGT       Operator = "gt"
	OperatorLT       Operator = "lt"
	OperatorGTEQ     Operator = "gteq"
	OperatorLTEQ     Operator = "lteq"
	OperatorIsAnyOf  Operator = "isAnyOf"
	OperatorIsA      Operator = "isA"
	OperatorIsNoneOf Operator = "isNoneOf"
	OperatorIsAllOf  Operator = "isAllOf"
)

func (op Operator) Enum() dstypes.Enum[Operator] {
	return dstypes.Enum[Operator](op)
}

func (op Operator) Options() []string {
	return []string{
		string(OperatorEQ),
		string(OperatorGT),
		string(OperatorLT),
		string(OperatorGTEQ),
		string(OperatorLTEQ),
		string(OperatorIsAnyOf),
		string(OperatorIsA),
		string(OperatorIsNoneOf),
		string(OperatorIsAllOf),
	}
}

type Action string

const (
	ActionUse       Action = "use"
	ActionAnonymize Action = "anonymize"
	ActionRead      Action = "read"
	ActionModify    Action = "modify"
	ActionDelete    Action = "delete"
)

func (a Action) Enum() dstypes.Enum[Action] {
	return dstypes.Enum[Action](a)
}

func (a Action) Options() []string {
	return []string{
		string(ActionUse),
		string(ActionAnonymize),
		string(ActionRead),
		string(ActionModify),
		string(ActionDelete),
	}
}

// Constraint is an immutable ODRL constraint. List operators (isAnyOf etc.)
// carry their values comma separated in RightOperand.
type Constraint struct {
	LeftOperand           LeftOperand `json:"leftOperand"`
	Operator              Operator    `json:"operator"`
	RightOperand          string      `json:"rightOperand,omitempty"`
	RightOperandReference string      `json:"rightOperandReference,omitempty"`
}

func NewConstraint(ctx context.Context, leftOperand LeftOperand, operator Operator, rightOperand string) (*Constraint, error) {
	c := &Constraint{LeftOperand: leftOperand, Operator: operator, RightOperand: rightOperand}
	if err := c.Validate(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Constraint) Validate(ctx context.Context) error {
	if _, err := c.LeftOperand.Enum().Validate(); err != nil {
		return i18n.WrapError(ctx, err, msgs.MsgValidationInvalidEnum, c.LeftOperand, "leftOperand")
	}
	if _, err := c.Operator.Enum().Validate(); err != nil {
		return i18n.WrapError(ctx, err, msgs.MsgValidationInvalidEnum, c.Operator, "operator")
	}
	if (c.RightOperand == "") == (c.RightOperandReference == "") {
		return i18n.NewError(ctx, msgs.MsgValidationRightOperand)
	}
	return nil
}

// RightOperandValues splits a list operand
func (c *Constraint) RightOperandValues() []string {
	var values []string
	for _, v := range strings.Split(c.RightOperand, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func (c *Constraint) key() string {
	return strings.Join([]string{string(c.LeftOperand), string(c.Operator), c.RightOperand, c.RightOperandReference}, "\x00")
}

type Permission struct {
	Action      Action       `json:"action"`
	Target      string       `json:"target,omitempty"`
	Constraints []Constraint `json:"constraint,omitempty"`
}

func NewPermission(ctx context.Context, action Action, target string, constraints ...Constraint) (*Permission, error) {
	p := &Permission{Action: action, Target: target, Constraints: constraints}
	if err := p.Validate(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Permission) Validate(ctx context.Context) error {
	if _, err := p.Action.Enum().Validate(); err != nil {
		return i18n.WrapError(ctx, err, msgs.MsgValidationInvalidEnum, p.Action, "action")
	}
	for i := range p.Constraints {
		if err := p.Constraints[i].Validate(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Equal compares the constraints as a set, so order and duplicates do not matter
func (p *Permission) Equal(other *Permission) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Action == other.Action && p.Target == other.Target &&
		equalSets(constraintKeys(p.Constraints), constraintKeys(other.Constraints))
}

func (p *Permission) key() string {
	ck := constraintKeys(p.Constraints)
	return string(p.Action) + "\x01" + p.Target + "\x01" + strings.Join(ck, "\x02")
}

func constraintKeys(cs []Constraint) []string {
	keys := make([]string, len(cs))
	for i := range cs {
		keys[i] = cs[i].key()
	}
	return dedupSorted(keys)
}

func permissionKeys(ps []Permission) []string {
	keys := make([]string, len(ps))
	for i := range ps {
		keys[i] = ps[i].key()
	}
	return dedupSorted(keys)
}

func dedupSorted(keys []string) []string {
	sort.Strings(keys)
	out := keys[:0]
	for i, k := range keys {
		if i == 0 || k != keys[i-1] {
			out = append(out, k)
		}
	}
	return out
}

func equalSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func copyPermissions(ps []Permission) []Permission {
	if ps == nil {
		return nil
	}
	out := make([]Permission, len(ps))
	for i, p := range ps {
		out[i] = p
		out[i].Constraints = append([]Constraint(nil), p.Constraints...)
	}
	return out
}

type Offer struct {
	ID          string       `json:"id"`
	Target      string       `json:"target,omitempty"`
	Assignee    string       `json:"assignee,omitempty"`
	Assigner    string       `json:"assigner,omitempty"`
	Permissions []Permission `json:"permission"`
}

// NewOffer mints an id when none is supplied
func NewOffer(ctx context.Context, id, target, assigner, assignee string, permissions ...Permission) (*Offer, error) {
	if id == "" {
		id = dstypes.NewPID()
	}
	o := &Offer{ID: id, Target: target, Assigner: assigner, Assignee: assignee, Permissions: permissions}
	if err := o.Validate(ctx); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Offer) Validate(ctx context.Context) error {
	if err := requireFields(ctx, "Offer", "id", o.ID, "target", o.Target); err != nil {
		return err
	}
	if len(o.Permissions) == 0 {
		return i18n.NewError(ctx, msgs.MsgValidationNoPermissions, "Offer")
	}
	for i := range o.Permissions {
		if err := o.Permissions[i].Validate(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Copy returns an independent offer, for embedding in a new negotiation turn
func (o *Offer) Copy() *Offer {
	if o == nil {
		return nil
	}
	c := *o
	c.Permissions = copyPermissions(o.Permissions)
	return &c
}

func (o *Offer) Equal(other *Offer) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.ID == other.ID && o.Target == other.Target &&
		o.Assignee == other.Assignee && o.Assigner == other.Assigner &&
		equalSets(permissionKeys(o.Permissions), permissionKeys(other.Permissions))
}

// Agreement is minted once by the provider and never modified
type Agreement struct {
	ID          string            `json:"id"`
	Target      string            `json:"target"`
	Assignee    string            `json:"assignee"`
	Assigner    string            `json:"assigner"`
	Timestamp   dstypes.Timestamp `json:"timestamp"`
	Permissions []Permission      `json:"permission"`
}

func NewAgreement(ctx context.Context, target, assignee, assigner string, permissions []Permission) (*Agreement, error) {
	a := &Agreement{
		ID:          dstypes.NewPID(),
		Target:      target,
		Assignee:    assignee,
		Assigner:    assigner,
		Timestamp:   dstypes.TimestampNow(),
		Permissions: copyPermissions(permissions),
	}
	if err := a.Validate(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Agreement) Validate(ctx context.Context) error {
	if err := requireFields(ctx, "Agreement", "id", a.ID, "target", a.Target, "assignee", a.Assignee, "assigner", a.Assigner); err != nil {
		return err
	}
	if len(a.Permissions) == 0 {
		return i18n.NewError(ctx, msgs.MsgValidationNoPermissions, "Agreement")
	}
	for i := range a.Permissions {
		if err := a.Permissions[i].Validate(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *Agreement) Equal(other *Agreement) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.ID == other.ID && a.Target == other.Target &&
		a.Assignee == other.Assignee && a.Assigner == other.Assigner &&
		a.Timestamp == other.Timestamp &&
		equalSets(permissionKeys(a.Permissions), permissionKeys(other.Permissions))
}

// requireFields takes alternating name/value pairs and fails on the first empty value
func requireFields(ctx context.Context, typeName string, nameValues ...string) error {
	for i := 0; i+1 < len(nameValues); i += 2 {
		if nameValues[i+1] == "" {
			return i18n.NewError(ctx, msgs.MsgValidationMissingField, nameValues[i], typeName)
		}
	}
	return nil
}
