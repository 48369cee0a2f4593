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

package cli_test

import (
	"testing"

	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/cli"

	"github.com/stretchr/testify/assert"
)

func TestLongDesc(t *testing.T) {
	// when
	desc := cli.LongDesc(`
		Start a wallet.

		It requires {{.Software}} to reach the service.
	`)

	// then
	assert.Equal(t, "Start a wallet.\n\nIt requires headless-cli to reach the service.", desc)
}

func TestExamples(t *testing.T) {
	// when
	examples := cli.Examples(`
		# Get the balance
		{{.Software}} wallet balance

		# Get the balance of a token
		{{.Software}} wallet balance --token TOKEN
	`)

	// then
	assert.Equal(t, "  # Get the balance\n  headless-cli wallet balance\n\n  # Get the balance of a token\n  headless-cli wallet balance --token TOKEN", examples)
}
