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

package dsresty

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/internal/msgs"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/confutil"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dstypes"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/log"
	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/sirupsen/logrus"
)

type retryCtxKey struct{}

type retryCtx struct {
	id       string
	start    time.Time
	attempts uint
}

// OnAfterResponse must be invoked manually by callers using SetDoNotParseResponse(true),
// as resty skips the middleware on that path.
func OnAfterResponse(c *resty.Client, resp *resty.Response) {
	if c == nil || resp == nil {
		return
	}
	rCtx := resp.Request.Context()
	level := logrus.DebugLevel
	status := resp.StatusCode()
	if status >= 300 {
		level = logrus.ErrorLevel
	}
	var elapsed time.Duration
	if rc, ok := rCtx.Value(retryCtxKey{}).(*retryCtx); ok {
		elapsed = time.Since(rc.start)
	}
	log.L(rCtx).Logf(level, "<== %s %s [%d] (%dms)", resp.Request.Method, resp.Request.URL, status, elapsed.Milliseconds())
}

// New creates a Resty client from configuration. An empty URL yields a client with no base URL,
// where every request supplies an absolute address.
func New(ctx context.Context, conf *dsconf.HTTPClientConfig) (client *resty.Client, err error) {
	connTimeout := confutil.DurationMin(conf.ConnectionTimeout, 0, *dsconf.DefaultHTTPConfig.ConnectionTimeout)
	httpTransport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   connTimeout,
			KeepAlive: connTimeout,
		}).DialContext,
		ForceAttemptHTTP2: true,
	}

	_url := strings.TrimSuffix(conf.URL, "/")
	if _url != "" {
		u, err := url.Parse(_url)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return nil, i18n.WrapError(ctx, err, msgs.MsgRestClientInvalidURL, _url)
		}
	}

	client = resty.NewWithClient(&http.Client{Transport: httpTransport})
	if _url != "" {
		client.SetBaseURL(_url)
		log.L(ctx).Debugf("Created REST client to %s", _url)
	}

	client.SetTimeout(confutil.DurationMin(conf.RequestTimeout, 0, *dsconf.DefaultHTTPConfig.RequestTimeout))

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		rCtx := req.Context()
		if rCtx.Value(retryCtxKey{}) == nil {
			r := &retryCtx{
				id:    dstypes.ShortID(),
				start: time.Now(),
			}
			rCtx = context.WithValue(rCtx, retryCtxKey{}, r)
			rCtx = log.WithLogField(rCtx, "breq", r.id)
			req.SetContext(rCtx)
		}

		log.L(rCtx).Debugf("==> %s %s%s", req.Method, _url, req.URL)
		log.L(rCtx).Tracef("==> (body) %+v", req.Body)
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, r *resty.Response) error { OnAfterResponse(c, r); return nil })

	for k, v := range conf.HTTPHeaders {
		if vs, ok := v.(string); ok {
			client.SetHeader(k, vs)
		}
	}

	if conf.Auth.Username != "" && conf.Auth.Password != "" {
		client.SetHeader("Authorization", BasicAuth(conf.Auth.Username, conf.Auth.Password))
	}

	if conf.Retry.Enabled {
		var retryStatusCodeRegex *regexp.Regexp
		if conf.Retry.ErrorStatusCodes != "" {
			retryStatusCodeRegex = regexp.MustCompile(conf.Retry.ErrorStatusCodes)
		}

		retryCount := confutil.IntMin(conf.Retry.Count, 0, *dsconf.DefaultHTTPConfig.Retry.Count)
		minTimeout := confutil.DurationMin(conf.Retry.InitialDelay, 0, *dsconf.DefaultHTTPConfig.Retry.InitialDelay)
		maxTimeout := confutil.DurationMin(conf.Retry.MaximumDelay, 0, *dsconf.DefaultHTTPConfig.Retry.MaximumDelay)

		client.
			SetRetryCount(retryCount).
			SetRetryWaitTime(minTimeout).
			SetRetryMaxWaitTime(maxTimeout).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if r == nil || r.IsSuccess() {
					return false
				}

				if r.StatusCode() > 0 && retryStatusCodeRegex != nil && !retryStatusCodeRegex.MatchString(r.Status()) {
					return false
				}

				rCtx := r.Request.Context()
				if rc, ok := rCtx.Value(retryCtxKey{}).(*retryCtx); ok {
					rc.attempts++
					log.L(rCtx).Infof("retry %d/%d (min=%dms/max=%dms) status=%d", rc.attempts, retryCount, minTimeout.Milliseconds(), maxTimeout.Milliseconds(), r.StatusCode())
				}
				return true
			})
	}

	return client, nil
}

func BasicAuth(username, password string) string {
	return fmt.Sprintf("Basic %s", base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", username, password))))
}

// ResponseSnippet returns the body of a response truncated for inclusion in an error.
func ResponseSnippet(res *resty.Response) string {
	var respData string
	if res != nil {
		if res.RawBody() != nil {
			defer func() { _ = res.RawBody().Close() }()
			if r, err := io.ReadAll(res.RawBody()); err == nil {
				respData = string(r)
			}
		}
		if respData == "" {
			respData = res.String()
		}
		if len(respData) > 256 {
			respData = respData[0:256] + "..."
		}
	}
	return respData
}
