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

type TransferManager interface {
	ManagerLifecycle

	// Consumer initiated
	RequestTransfer(ctx context.Context, providerAddress, agreementID, format string, dataAddress *dsapi.DataAddress, consumerPID string) (*dsapi.TransferProcess, error)
	DownloadData(ctx context.Context, id string) (*dsapi.TransferProcess, error)
	ViewData(ctx context.Context, id string) (*BlobObject, error)

	// Either role. A consumer may only restart a SUSPENDED transfer.
	StartTransfer(ctx context.Context, id string) (*dsapi.TransferProcess, error)
	CompleteTransfer(ctx context.Context, id string) (*dsapi.TransferProcess, error)
	SuspendTransfer(ctx context.Context, id, code string, reason ...string) (*dsapi.TransferProcess, error)
	TerminateTransfer(ctx context.Context, id, code string, reason ...string) (*dsapi.TransferProcess, error)

	// Inbound, received on the provider's protocol endpoints
	HandleTransferRequest(ctx context.Context, msg *dsapi.TransferRequestMessage) (*dsapi.TransferProcess, error)
	ServeArtifact(ctx context.Context, token string) (*BlobObject, error)

	// Inbound on either side. localRole is the role this connector plays in the exchange.
	HandleStart(ctx context.Context, localRole dsapi.Role, pid string, msg *dsapi.TransferStartMessage) (*dsapi.TransferProcess, error)
	HandleCompletion(ctx context.Context, localRole dsapi.Role, pid string, msg *dsapi.TransferCompletionMessage) (*dsapi.TransferProcess, error)
	HandleSuspension(ctx context.Context, localRole dsapi.Role, pid string, msg *dsapi.TransferSuspensionMessage) (*dsapi.TransferProcess, error)
	HandleTermination(ctx context.Context, localRole dsapi.Role, pid string, msg *dsapi.TransferTerminationMessage) (*dsapi.TransferProcess, error)

	GetTransfer(ctx context.Context, id string) (*dsapi.TransferProcess, error)
	GetTransferByPID(ctx context.Context, localRole dsapi.Role, pid string) (*dsapi.TransferProcess, error)
	ListTransfers(ctx context.Context, role dsapi.Role) ([]*dsapi.TransferProcess, error)
	GetTransferHistory(ctx context.Context, id string) ([]*dsapi.TransferProcess, error)
}
