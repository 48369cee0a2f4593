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

package cmd_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	cmd "github.com/r4mmer/headless-cli/cmd/headless-cli/commands"
	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/flags"
	vgrand "github.com/r4mmer/headless-cli/libs/rand"
	"github.com/r4mmer/headless-cli/paths"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type receivedRequest struct {
	Method   string
	Path     string
	WalletID string
	Body     string
}

// stubService answers every request with the same status and body.
type stubService struct {
	*httptest.Server

	mu       sync.Mutex
	requests []receivedRequest
}

func newStubService(t *testing.T, status int, body string) *stubService {
	t.Helper()

	s := &stubService{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqBody, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, receivedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			WalletID: r.Header.Get("X-Wallet-Id"),
			Body:     string(reqBody),
		})
		s.mu.Unlock()

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *stubService) Requests() []receivedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]receivedRequest(nil), s.requests...)
}

func TestRoot(t *testing.T) {
	t.Run("Calling the service succeeds", testRootCallingServiceSucceeds)
	t.Run("Error responses are printed verbatim", testRootErrorResponsesArePrintedVerbatim)
	t.Run("Host is read from the configuration file", testRootHostIsReadFromConfigurationFile)
	t.Run("Host from the environment overrides the configuration file", testRootHostFromEnvironmentOverridesConfigurationFile)
	t.Run("Host flag overrides the environment", testRootHostFlagOverridesEnvironment)
	t.Run("Unsupported output fails", testRootUnsupportedOutputFails)
	t.Run("Unreachable service fails", testRootUnreachableServiceFails)
}

func testRootCallingServiceSucceeds(t *testing.T) {
	// given
	walletID := vgrand.RandomStr(10)
	svc := newStubService(t, http.StatusOK, `{"success":true,"total":2}`)
	w := &bytes.Buffer{}
	c := cmd.BuildCmdRoot(w, &cmd.RootFlags{})

	// when
	err := executeCmd(t, c, "wallet", "simple-send", "address", "10", "-w", walletID, "--host", svc.URL, "--home", t.TempDir())

	// then
	require.NoError(t, err)
	assert.Equal(t, "{\"success\":true,\"total\":2}\n", w.String())
	assert.Equal(t, []receivedRequest{
		{
			Method:   http.MethodPost,
			Path:     "/wallet/simple-send-tx",
			WalletID: walletID,
			Body:     `{"address":"address","value":10}`,
		},
	}, svc.Requests())
}

func testRootErrorResponsesArePrintedVerbatim(t *testing.T) {
	// given
	svc := newStubService(t, http.StatusBadRequest, `{"success":false,"message":"Invalid wallet"}`)
	w := &bytes.Buffer{}
	c := cmd.BuildCmdRoot(w, &cmd.RootFlags{})

	// when
	err := executeCmd(t, c, "wallet", "status", "--host", svc.URL, "--home", t.TempDir())

	// then
	require.NoError(t, err)
	assert.Equal(t, "{\"success\":false,\"message\":\"Invalid wallet\"}\n", w.String())
}

func testRootHostIsReadFromConfigurationFile(t *testing.T) {
	// given
	svc := newStubService(t, http.StatusOK, `{}`)
	home := t.TempDir()
	writeRootConfigFile(t, home, "host = \""+svc.URL+"\"\n")
	w := &bytes.Buffer{}
	c := cmd.BuildCmdRoot(w, &cmd.RootFlags{})

	// when
	err := executeCmd(t, c, "wallet", "status", "--home", home)

	// then
	require.NoError(t, err)
	require.Len(t, svc.Requests(), 1)
	assert.Equal(t, "default", svc.Requests()[0].WalletID)
}

func testRootHostFromEnvironmentOverridesConfigurationFile(t *testing.T) {
	// given
	svc := newStubService(t, http.StatusOK, `{}`)
	home := t.TempDir()
	writeRootConfigFile(t, home, "host = \"http://127.0.0.1:1\"\n")
	t.Setenv("HEADLESS_HOST", svc.URL)
	w := &bytes.Buffer{}
	c := cmd.BuildCmdRoot(w, &cmd.RootFlags{})

	// when
	err := executeCmd(t, c, "wallet", "status", "--home", home)

	// then
	require.NoError(t, err)
	assert.Len(t, svc.Requests(), 1)
}

func testRootHostFlagOverridesEnvironment(t *testing.T) {
	// given
	svc := newStubService(t, http.StatusOK, `{}`)
	t.Setenv("HEADLESS_HOST", "http://127.0.0.1:1")
	w := &bytes.Buffer{}
	c := cmd.BuildCmdRoot(w, &cmd.RootFlags{})

	// when
	err := executeCmd(t, c, "wallet", "status", "--host", svc.URL, "--home", t.TempDir())

	// then
	require.NoError(t, err)
	assert.Len(t, svc.Requests(), 1)
}

func testRootUnsupportedOutputFails(t *testing.T) {
	// given
	svc := newStubService(t, http.StatusOK, `{}`)
	w := &bytes.Buffer{}
	c := cmd.BuildCmdRoot(w, &cmd.RootFlags{})

	// when
	err := executeCmd(t, c, "wallet", "status", "--output", "yaml", "--host", svc.URL, "--home", t.TempDir())

	// then
	assert.ErrorIs(t, err, flags.ErrUnsupportedOutput)
	assert.Empty(t, svc.Requests())
	assert.Empty(t, w.String())
}

func testRootUnreachableServiceFails(t *testing.T) {
	// given
	svc := newStubService(t, http.StatusOK, `{}`)
	host := svc.URL
	svc.Close()
	w := &bytes.Buffer{}
	c := cmd.BuildCmdRoot(w, &cmd.RootFlags{})

	// when
	err := executeCmd(t, c, "wallet", "status", "--host", host, "--home", t.TempDir())

	// then
	require.Error(t, err)
	assert.ErrorContains(t, err, "couldn't call the headless service")
	assert.Empty(t, w.String())
}

func writeRootConfigFile(t *testing.T, home, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(home, paths.ConfigFileName), []byte(content), 0o600))
}
