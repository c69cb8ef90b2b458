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
	"encoding/json"
	"strings"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

const (
	DSPContext = "https://w3id.org/dspace/2024/1/context.json"

	PrefixDSpace = "dspace:"
	PrefixODRL   = "odrl:"

	keyContext = "@context"
	keyType    = "@type"
	keyID      = "@id"
)

// Keys in the ODRL vocabulary. Everything else belongs to the dataspace protocol namespace.
var odrlKeys = map[string]bool{
	"permission":            true,
	"constraint":            true,
	"action":                true,
	"target":                true,
	"assignee":              true,
	"assigner":              true,
	"leftOperand":           true,
	"operator":              true,
	"rightOperand":          true,
	"rightOperandReference": true,
}

// Keys whose string values are vocabulary terms and carry the namespace prefix on the wire
var prefixedValueKeys = map[string]string{
	"action":      PrefixODRL,
	"leftOperand": PrefixODRL,
	"operator":    PrefixODRL,
	"state":       PrefixDSpace,
	"eventType":   PrefixDSpace,
}

// Nested objects that are typed on the wire
var nestedTypes = map[string]string{
	"offer":              PrefixODRL + "Offer",
	"agreement":          PrefixODRL + "Agreement",
	"dataAddress":        PrefixDSpace + "DataAddress",
	"endpointProperties": PrefixDSpace + "EndpointProperty",
}

func keyPrefix(k string) string {
	if odrlKeys[k] {
		return PrefixODRL
	}
	return PrefixDSpace
}

// ToProtocolJSON renders v in the protocol profile: namespace-prefixed keys and vocabulary
// values, "@id" for identifiers, and a top level "@context" and "@type".
func ToProtocolJSON(ctx context.Context, v any, protocolType string) ([]byte, error) {
	plain, err := toGeneric(v)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgSerializationFailed, protocolType)
	}
	obj, ok := plain.(map[string]any)
	if !ok {
		return nil, i18n.NewError(ctx, msgs.MsgSerializationFailed, protocolType)
	}
	out := toProtocolObject(obj, "")
	out[keyContext] = []any{DSPContext}
	out[keyType] = PrefixDSpace + protocolType
	return json.Marshal(out)
}

func toGeneric(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	err = json.Unmarshal(b, &generic)
	return generic, err
}

func toProtocolObject(obj map[string]any, typeName string) map[string]any {
	out := make(map[string]any, len(obj)+1)
	if typeName != "" {
		out[keyType] = typeName
	}
	for k, v := range obj {
		if k == "id" {
			out[keyID] = v
			continue
		}
		out[keyPrefix(k)+k] = toProtocolValue(k, v)
	}
	return out
}

func toProtocolValue(k string, v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return toProtocolObject(tv, nestedTypes[k])
	case []any:
		items := make([]any, len(tv))
		for i, item := range tv {
			items[i] = toProtocolValue(k, item)
		}
		return items
	case string:
		if prefix, ok := prefixedValueKeys[k]; ok && tv != "" && !strings.HasPrefix(tv, prefix) {
			return prefix + tv
		}
	}
	return v
}

// FromProtocolJSON parses a protocol profile document into out. The top level "@type" must
// match protocolType, with or without its namespace prefix.
func FromProtocolJSON(ctx context.Context, data []byte, protocolType string, out any) error {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return i18n.NewError(ctx, msgs.MsgValidationProtocolParse, err)
	}
	if obj == nil {
		return i18n.NewError(ctx, msgs.MsgValidationProtocolParse, "null")
	}
	msgType, _ := obj[keyType].(string)
	if stripPrefix(msgType) != protocolType {
		return i18n.NewError(ctx, msgs.MsgValidationProtocolType, msgType, protocolType)
	}
	plain, err := json.Marshal(fromProtocolObject(obj))
	if err == nil {
		err = json.Unmarshal(plain, out)
	}
	if err != nil {
		return i18n.NewError(ctx, msgs.MsgValidationProtocolParse, err)
	}
	return nil
}

func stripPrefix(s string) string {
	if strings.HasPrefix(s, PrefixDSpace) {
		return s[len(PrefixDSpace):]
	}
	return strings.TrimPrefix(s, PrefixODRL)
}

func fromProtocolObject(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		switch k {
		case keyContext, keyType:
			continue
		case keyID:
			out["id"] = v
			continue
		}
		plainKey := stripPrefix(k)
		out[plainKey] = fromProtocolValue(plainKey, v)
	}
	return out
}

func fromProtocolValue(k string, v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return fromProtocolObject(tv)
	case []any:
		items := make([]any, len(tv))
		for i, item := range tv {
			items[i] = fromProtocolValue(k, item)
		}
		return items
	case string:
		if _, ok := prefixedValueKeys[k]; ok {
			return stripPrefix(tv)
		}
	}
	return v
}
