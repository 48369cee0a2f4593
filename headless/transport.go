// Copyright (C) 2023  Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package headless

import (
	"bytes"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultConnectTimeout = 10 * time.Second
	UserAgent             = "headless cli"
)

// NewHTTPClient returns a client tuned for short-lived calls to a local
// headless service. Requests are logged at debug level when cfg.Debug is set.
func NewHTTPClient(cfg Config, log *zap.Logger) (*http.Client, error) {
	defaultTransport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return nil, ErrUnsupportedDefaultTransport
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}

	transport := defaultTransport.Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext

	var rt http.RoundTripper = transport
	if cfg.Debug {
		rt = &loggingRoundTripper{next: rt, log: log}
	}
	rt = &userAgentRoundTripper{next: rt, userAgent: UserAgent}

	return &http.Client{Transport: rt}, nil
}

type userAgentRoundTripper struct {
	next      http.RoundTripper
	userAgent string
}

func (t *userAgentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// A round tripper must not modify the caller's request.
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(req)
}

type loggingRoundTripper struct {
	next http.RoundTripper
	log  *zap.Logger
}

func (t *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	log := t.log.With(zap.String("request-id", uuid.NewString()))

	log.Debug("sending request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Any("headers", req.Header),
	)

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		log.Debug("request failed",
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	log.Debug("response received",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.String("size", humanize.Bytes(uint64(len(body)))),
	)

	return resp, nil
}
