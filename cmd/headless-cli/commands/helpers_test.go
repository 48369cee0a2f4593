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
	"context"
	"testing"

	cmd "github.com/r4mmer/headless-cli/cmd/headless-cli/commands"
	"github.com/r4mmer/headless-cli/headless"

	"github.com/spf13/cobra"
)

// callRecorder is a CallHandler stand-in answering every call with the same
// response.
type callRecorder struct {
	resp string
	err  error
	ops  []headless.Operation
}

func (r *callRecorder) Handle(_ context.Context, op headless.Operation) (string, error) {
	r.ops = append(r.ops, op)
	if r.err != nil {
		return "", r.err
	}
	return r.resp, nil
}

func newCallRecorder(resp string) *callRecorder {
	return &callRecorder{
		resp: resp,
	}
}

// executeCmd runs the command with the given arguments. The output of the
// command goes to the writer it has been built with.
func executeCmd(t *testing.T, c *cobra.Command, args ...string) error {
	t.Helper()

	c.SetArgs(args)
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SilenceUsage = true
	c.SilenceErrors = true

	return c.ExecuteContext(context.Background())
}

func newRootFlags(output string) *cmd.RootFlags {
	return &cmd.RootFlags{
		Host:   "http://localhost:8000",
		Output: output,
	}
}

func ptr[T any](v T) *T {
	return &v
}
