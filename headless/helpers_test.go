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

package headless_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/r4mmer/headless-cli/headless"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

// fakeService is a stand-in for the headless service that records every
// request it receives.
type fakeService struct {
	*httptest.Server
	router *mux.Router

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeService(t *testing.T) *fakeService {
	t.Helper()

	s := &fakeService{
		router: mux.NewRouter(),
	}
	s.Server = httptest.NewServer(s.record(s.router))
	t.Cleanup(s.Close)
	return s
}

func (s *fakeService) Handle(method, path string, status int, body string) {
	s.router.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}).Methods(method)
}

func (s *fakeService) Requests() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedRequest(nil), s.requests...)
}

func (s *fakeService) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   string(body),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func newTestClient(t *testing.T, host string, debug bool) *headless.Client {
	t.Helper()

	client, err := headless.NewClient(headless.Config{
		Host:  host,
		Debug: debug,
	}, zap.NewNop())
	require.NoError(t, err)
	return client
}
