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

package cmd

import (
	"io"

	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/cli"
	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/flags"

	"github.com/spf13/cobra"
)

var configLong = cli.LongDesc(`
	Manage the configuration file of {{.Software}}.
`)

func NewCmdConfig(w io.Writer, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		Long:  configLong,
		// The configuration file is not loaded, so a broken one can still be
		// replaced.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return flags.ValidateOutput(rf.Output)
		},
	}

	cmd.AddCommand(NewCmdConfigInit(w, rf))
	cmd.AddCommand(NewCmdConfigLocate(w, rf))
	return cmd
}
