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
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultHost    = "http://localhost:8000"
	WalletIDHeader = "X-Wallet-Id"
)

// Config holds what every call shares. A zero ConnectTimeout falls back to
// DefaultConnectTimeout.
type Config struct {
	Host           string
	Debug          bool
	ConnectTimeout time.Duration
}

type Client struct {
	host string
	http *http.Client
	log  *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) (*Client, error) {
	httpClient, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, err
	}
	return NewClientWithHTTPClient(cfg.Host, httpClient, log), nil
}

func NewClientWithHTTPClient(host string, httpClient *http.Client, log *zap.Logger) *Client {
	return &Client{
		host: host,
		http: httpClient,
		log:  log,
	}
}

// Call sends the request described by the operation and returns the response
// body as-is. The HTTP status is not interpreted: error payloads returned by
// the service are handed back like any other body.
func (c *Client) Call(ctx context.Context, op Operation) (string, error) {
	req, err := op.Request()
	if err != nil {
		return "", err
	}

	body, err := c.send(ctx, req)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) send(ctx context.Context, r Request) ([]byte, error) {
	u, err := BuildURL(c.host, r.Path)
	if err != nil {
		return nil, err
	}
	if len(r.Query) > 0 {
		q := u.Query()
		for k, values := range r.Query {
			for _, v := range values {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	var reqBody io.Reader
	if r.Body != nil {
		reqBody = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("couldn't create the request for %s: %w", r.Path, err)
	}
	if r.WalletID != "" {
		req.Header.Set(WalletIDHeader, r.WalletID)
	}
	if r.ContentType != "" {
		req.Header.Set("Content-Type", r.ContentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: fmt.Sprintf("send request to %s", r.Path), Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: fmt.Sprintf("read response from %s", r.Path), Err: err}
	}

	c.log.Debug("headless service responded",
		zap.String("method", r.Method),
		zap.String("path", r.Path),
		zap.Int("status", resp.StatusCode),
	)

	return body, nil
}
