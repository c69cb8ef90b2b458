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
	"errors"
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// ErrorKind classifies failures so callers can decide between retrying,
// reloading, choosing another transition, or giving up.
type ErrorKind string

const (
	ErrorKindIllegalStateTransition ErrorKind = "IllegalStateTransition"
	ErrorKindRemoteExchangeFailure  ErrorKind = "RemoteExchangeFailure"
	ErrorKindPolicyViolation        ErrorKind = "PolicyViolation"
	ErrorKindValidationFailure      ErrorKind = "ValidationFailure"
	ErrorKindConcurrentModification ErrorKind = "ConcurrentModification"
	ErrorKindNotFound               ErrorKind = "NotFound"
	ErrorKindInternal               ErrorKind = "Internal"
)

var kindsByKeyGroup = map[string]ErrorKind{
	"DS0103": ErrorKindValidationFailure,
	"DS0104": ErrorKindValidationFailure,
	"DS0105": ErrorKindIllegalStateTransition,
	"DS0106": ErrorKindRemoteExchangeFailure,
	"DS0107": ErrorKindPolicyViolation,
	"DS0108": ErrorKindConcurrentModification,
	"DS0109": ErrorKindNotFound,
}

// ErrorKindOf classifies an error by the group of the first connector
// message key found walking outwards-in along its wrap chain.
func ErrorKindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		if ffe, ok := e.(i18n.FFError); ok {
			key := string(ffe.MessageKey())
			if len(key) >= 6 {
				if kind, ok := kindsByKeyGroup[key[0:6]]; ok {
					return kind
				}
			}
		}
	}
	return ErrorKindInternal
}

func IsRetryable(kind ErrorKind) bool {
	switch kind {
	case ErrorKindRemoteExchangeFailure, ErrorKindConcurrentModification:
		return true
	default:
		return false
	}
}

func (k ErrorKind) HTTPStatus() int {
	switch k {
	case ErrorKindValidationFailure:
		return http.StatusBadRequest
	case ErrorKindIllegalStateTransition, ErrorKindConcurrentModification:
		return http.StatusConflict
	case ErrorKindRemoteExchangeFailure:
		return http.StatusBadGateway
	case ErrorKindPolicyViolation:
		return http.StatusForbidden
	case ErrorKindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
