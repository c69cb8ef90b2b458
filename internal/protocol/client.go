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
	"io"
	"net/http"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/components"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsapi"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsresty"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	contentTypeJSON     = "application/json"
)

type protocolClient struct {
	client *resty.Client
}

func NewProtocolClient(ctx context.Context, conf *dsconf.HTTPClientConfig) (components.ProtocolClient, error) {
	client, err := dsresty.New(ctx, conf)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgComponentClientInitError)
	}
	return &protocolClient{client: client}, nil
}

func (pc *protocolClient) SendRequestProtocol(ctx context.Context, address string, msg dsapi.ProtocolMessage, credentials string) (*components.ProtocolResponse, error) {
	body, err := ToProtocolJSON(ctx, msg, msg.ProtocolType())
	if err != nil {
		return nil, err
	}

	req := pc.client.R().
		SetContext(ctx).
		SetHeader(headerContentType, contentTypeJSON).
		SetBody(body)
	if credentials != "" {
		req.SetHeader(headerAuthorization, credentials)
	}
	res, err := req.Post(address)
	if err != nil {
		log.L(ctx).Errorf("%s to %s failed: %s", msg.ProtocolType(), address, err)
		return &components.ProtocolResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	pr := &components.ProtocolResponse{
		Success:    res.IsSuccess(),
		StatusCode: res.StatusCode(),
		Data:       res.Body(),
	}
	if !pr.Success {
		pr.Message = dsresty.ResponseSnippet(res)
	}
	return pr, nil
}

// PullData reads at most maxSize bytes, failing rather than truncating when the
// counterpart serves more.
func (pc *protocolClient) PullData(ctx context.Context, address, authorization string, maxSize int64) (*components.BlobObject, error) {
	req := pc.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)
	if authorization != "" {
		req.SetHeader(headerAuthorization, authorization)
	}
	res, err := req.Get(address)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgRemoteRequestFailed, address)
	}
	dsresty.OnAfterResponse(pc.client, res)
	body := res.RawBody()
	defer func() { _ = body.Close() }()

	if res.StatusCode() < http.StatusOK || res.StatusCode() >= http.StatusMultipleChoices {
		return nil, i18n.NewError(ctx, msgs.MsgRemoteDataPullFailed, address, res.StatusCode())
	}
	data, err := io.ReadAll(io.LimitReader(body, maxSize+1))
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgRemoteRequestFailed, address)
	}
	if int64(len(data)) > maxSize {
		return nil, i18n.NewError(ctx, msgs.MsgRemoteDataTooLarge, address, maxSize)
	}
	return &components.BlobObject{
		ContentType: res.Header().Get(headerContentType),
		Data:        data,
	}, nil
}
