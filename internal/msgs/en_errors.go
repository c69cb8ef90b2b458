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

package msgs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

const connectorPrefix = "DS01"

var registered sync.Once
var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	registered.Do(func() {
		i18n.RegisterPrefix(connectorPrefix, "Dataspace Connector")
	})
	if !strings.HasPrefix(key, connectorPrefix) {
		panic(fmt.Errorf("must have prefix '%s': %s", connectorPrefix, key))
	}
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

// The two digits after the prefix group each key by error kind, and
// dstypes.ErrorKindOf relies on that grouping.
var (
	// Components DS0100XX
	MsgComponentDBInitError             = ffe("DS010000", "Error initializing database")
	MsgComponentBlobStoreInitError      = ffe("DS010001", "Error initializing blob store")
	MsgComponentProtocolServerInitError = ffe("DS010002", "Error initializing protocol server")
	MsgComponentAPIServerInitError      = ffe("DS010003", "Error initializing API server")
	MsgComponentMetricsServerInitError  = ffe("DS010004", "Error initializing metrics server")
	MsgComponentStartError              = ffe("DS010005", "Error starting %s")
	MsgComponentClientInitError         = ffe("DS010006", "Error initializing protocol client")
	MsgComponentUsageInitError          = ffe("DS010007", "Error initializing usage tracking")
	MsgComponentManagerInitError        = ffe("DS010008", "Error initializing %s")

	// Config DS0101XX
	MsgConfigFileMissing            = ffe("DS010100", "Config file not found at path: %s")
	MsgConfigFileReadError          = ffe("DS010101", "Failed to read config file %s with error: %s")
	MsgConfigFileParseError         = ffe("DS010102", "Failed to parse config file: %s")
	MsgConfigEnvParseError          = ffe("DS010103", "Failed to parse environment overrides: %s")
	MsgConfigNodeNameMissing        = ffe("DS010104", "connector.nodeName must be configured")
	MsgConfigCallbackAddressMissing = ffe("DS010105", "connector.callbackAddress must be configured")

	// Persistence DS0102XX
	MsgPersistenceInvalidType          = ffe("DS010200", "Invalid persistence type: %s")
	MsgPersistenceMissingDSN           = ffe("DS010201", "Missing database connection Data Source Name (DSN)")
	MsgPersistenceInitFailed           = ffe("DS010202", "Database init failed")
	MsgPersistenceMigrationFailed      = ffe("DS010203", "Database migration failed")
	MsgPersistenceMissingMigrationDir  = ffe("DS010204", "Missing database migration directory for autoMigrate")
	MsgPersistenceErrorInDBTransaction = ffe("DS010205", "Database transaction panicked: %v")
	MsgPersistenceInvalidDSNTemplate   = ffe("DS010206", "Invalid DSN template")
	MsgPersistenceDSNParamLoadFile     = ffe("DS010207", "Failed to load DSN parameter '%s' from file '%s'")
	MsgPersistenceNoHooksInNOTX        = ffe("DS010208", "Transaction hooks cannot be used outside of a database transaction")

	// Types DS0103XX
	MsgTypesEnumValueInvalid     = ffe("DS010300", "Value must be one of %s", 400)
	MsgTypesScanFail             = ffe("DS010301", "Unable to scan type %T into type %T", 400)
	MsgTypesTimeParseFail        = ffe("DS010302", "Cannot parse time as RFC3339, Unix, or UnixNano: '%s'", 400)
	MsgTypesRestoreFailed        = ffe("DS010303", "Failed to restore type '%T' into '%T'", 400)
	MsgTypesNilJSON              = ffe("DS010304", "Cannot unmarshal JSON into nil value", 400)
	MsgTypesInvalidArtifactToken = ffe("DS010305", "Invalid artifact token", 400)

	// Validation DS0104XX
	MsgValidationMissingField           = ffe("DS010400", "Missing required field '%s' in %s", 400)
	MsgValidationRequestNeedsPIDOrOffer = ffe("DS010401", "ContractRequestMessage requires either a providerPid or an offer", 400)
	MsgValidationInvalidEnum            = ffe("DS010402", "Invalid value '%s' for %s", 400)
	MsgValidationNoPermissions          = ffe("DS010403", "%s must contain at least one permission", 400)
	MsgValidationRightOperand           = ffe("DS010404", "Constraint requires exactly one of rightOperand or rightOperandReference", 400)
	MsgValidationProtocolType           = ffe("DS010405", "Unexpected message type '%s' (expected '%s')", 400)
	MsgValidationProtocolParse          = ffe("DS010406", "Failed to parse protocol message: %s", 400)
	MsgValidationTerminalRecord         = ffe("DS010407", "%s %s is in terminal state %s and cannot be modified", 400)
	MsgValidationUnsupportedFormat      = ffe("DS010408", "Unsupported transfer format '%s'", 400)
	MsgValidationEventType              = ffe("DS010409", "Event '%s' cannot be received by a %s", 400)
	MsgValidationPIDMismatch            = ffe("DS010410", "Message %s '%s' does not match %s", 400)
	MsgValidationOfferUnknownTarget     = ffe("DS010411", "Offer target '%s' is not available in the catalog", 400)
	MsgValidationNegotiationNotFinal    = ffe("DS010412", "Agreement '%s' does not belong to a finalized negotiation", 400)
	MsgValidationDataAddressMissing     = ffe("DS010413", "Transfer %s has no data address to pull from", 400)
	MsgValidationPlainParse             = ffe("DS010414", "Failed to parse JSON: %s", 400)
	MsgValidationOfferRequired          = ffe("DS010415", "An offer is required to %s", 400)

	// State transitions DS0105XX
	MsgStateIllegalTransition = ffe("DS010500", "Illegal state transition %s -> %s for %s", 409)
	MsgStateRoleForbidden     = ffe("DS010501", "A %s may not transition %s %s -> %s", 409)

	// Remote exchange DS0106XX
	MsgRemoteExchangeFailed  = ffe("DS010600", "Counterpart at %s returned failure (status=%d): %s", 502)
	MsgRemoteRequestFailed   = ffe("DS010601", "Failed to send request to %s", 502)
	MsgRemoteResponseInvalid = ffe("DS010602", "Invalid response from counterpart at %s: %s", 502)
	MsgRemoteDataPullFailed  = ffe("DS010603", "Failed to pull data from %s (status=%d)", 502)
	MsgRemoteDataTooLarge    = ffe("DS010604", "Data at %s exceeds the maximum size of %d bytes", 502)

	// Policy enforcement DS0107XX
	MsgPolicyViolation           = ffe("DS010700", "Access denied by %s policy: %s", 403)
	MsgPolicyNoPermissionGranted = ffe("DS010701", "Access denied, no permission of agreement %s is satisfied: %s", 403)
	MsgPolicyTransferNotStarted  = ffe("DS010702", "Transfer %s is in state %s, data access requires STARTED", 403)
	MsgPolicyNotDownloaded       = ffe("DS010703", "Data for transfer %s has not been downloaded", 403)
	MsgPolicyAgreementEmpty      = ffe("DS010704", "Agreement %s grants no permissions", 403)

	// Concurrency DS0108XX
	MsgConcurrentModification = ffe("DS010800", "%s %s was modified concurrently (expected version %d)", 409)

	// Not found DS0109XX
	MsgNegotiationNotFound = ffe("DS010900", "Contract negotiation not found: %s", 404)
	MsgTransferNotFound    = ffe("DS010901", "Transfer process not found: %s", 404)
	MsgAgreementNotFound   = ffe("DS010902", "Agreement not found: %s", 404)
	MsgArtifactNotFound    = ffe("DS010903", "No artifact registered for dataset %s", 404)
	MsgBlobNotFound        = ffe("DS010904", "Object %s not found in bucket %s", 404)
	MsgBlobBucketNotFound  = ffe("DS010905", "Bucket %s does not exist", 404)

	// Internal DS0110XX
	MsgFlushWriterQuiescing      = ffe("DS011000", "Writer shutting down")
	MsgFlushWriterOpInvalid      = ffe("DS011001", "Invalid write operation")
	MsgFlushWriterInvalidResults = ffe("DS011002", "Invalid results from batch write handler")
	MsgContextCanceled           = ffe("DS011003", "Context canceled")
	MsgBlobStoreError            = ffe("DS011004", "Blob store operation failed on %s/%s")
	MsgHTTPServerMissingPort     = ffe("DS011005", "HTTP server port must be specified for '%s'")
	MsgHTTPServerStartFailed     = ffe("DS011006", "Failed to start server on '%s'")
	MsgRestClientInvalidURL      = ffe("DS011007", "Invalid HTTP URL: %s")
	MsgSerializationFailed       = ffe("DS011008", "Failed to serialize %s")
	MsgArtifactTypeUnknown       = ffe("DS011009", "Unknown artifact type '%s' for dataset %s")
)
