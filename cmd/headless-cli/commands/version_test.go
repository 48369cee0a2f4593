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
	"testing"

	cmd "github.com/r4mmer/headless-cli/cmd/headless-cli/commands"
	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/flags"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	handler := func() *cmd.VersionResponse {
		return &cmd.VersionResponse{
			Version: "v1.2.3",
			Hash:    "0123abcd",
		}
	}

	t.Run("in interactive", func(tt *testing.T) {
		// given
		w := &bytes.Buffer{}
		c := cmd.BuildCmdVersion(w, handler, newRootFlags(flags.InteractiveOutput))

		// when
		err := executeCmd(tt, c)

		// then
		require.NoError(tt, err)
		assert.Contains(tt, w.String(), "v1.2.3")
		assert.Contains(tt, w.String(), "0123abcd")
	})

	t.Run("in JSON", func(tt *testing.T) {
		// given
		w := &bytes.Buffer{}
		c := cmd.BuildCmdVersion(w, handler, newRootFlags(flags.JSONOutput))

		// when
		err := executeCmd(tt, c)

		// then
		require.NoError(tt, err)
		assert.JSONEq(tt, `{"version":"v1.2.3","hash":"0123abcd"}`, w.String())
	})
}

func TestShellCompletion(t *testing.T) {
	// given
	w := &bytes.Buffer{}
	c := cmd.BuildCmdRoot(w, &cmd.RootFlags{})

	// when
	err := executeCmd(t, c, "shell", "completion", "bash")

	// then
	require.NoError(t, err)
	assert.Contains(t, w.String(), "headless-cli")
}
