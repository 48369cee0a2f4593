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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/r4mmer/headless-cli/paths"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	t.Run("Create paths without path returns the default implementation", testCreatingPathsWithoutPathReturnsDefaultImplementation)
	t.Run("Create paths with a path returns the custom implementation", testCreatingPathsWithPathReturnsCustomImplementation)
}

func testCreatingPathsWithoutPathReturnsDefaultImplementation(t *testing.T) {
	p := paths.New("")

	assert.IsType(t, &paths.DefaultPaths{}, p)
}

func testCreatingPathsWithPathReturnsCustomImplementation(t *testing.T) {
	p := paths.New(t.TempDir())

	assert.IsType(t, &paths.CustomPaths{}, p)
}

func TestCustomPaths(t *testing.T) {
	t.Run("Getting the config file creates the home", testCustomPathsGettingConfigFileCreatesHome)
	t.Run("Looking up a missing config file fails", testCustomPathsLookingUpMissingConfigFileFails)
	t.Run("Looking up an existing config file succeeds", testCustomPathsLookingUpExistingConfigFileSucceeds)
}

func testCustomPathsGettingConfigFileCreatesHome(t *testing.T) {
	// given
	home := filepath.Join(t.TempDir(), "nested", "home")
	p := paths.New(home)

	// when
	path, err := p.ConfigFile()

	// then
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, paths.ConfigFileName), path)
	assert.DirExists(t, home)
}

func testCustomPathsLookingUpMissingConfigFileFails(t *testing.T) {
	// given
	p := paths.New(t.TempDir())

	// when
	path, found := p.LookupConfigFile()

	// then
	assert.False(t, found)
	assert.Empty(t, path)
}

func testCustomPathsLookingUpExistingConfigFileSucceeds(t *testing.T) {
	// given
	home := t.TempDir()
	expectedPath := filepath.Join(home, paths.ConfigFileName)
	require.NoError(t, os.WriteFile(expectedPath, []byte("host = \"http://localhost:8000\"\n"), 0o600))
	p := paths.New(home)

	// when
	path, found := p.LookupConfigFile()

	// then
	assert.True(t, found)
	assert.Equal(t, expectedPath, path)
}
