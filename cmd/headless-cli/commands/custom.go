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

	"github.com/spf13/cobra"
)

var customLong = cli.LongDesc(`
	Commands built on top of the headless wallet service, that don't map to a
	single call.
`)

func NewCmdCustom(w io.Writer, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "custom",
		Short: "Commands built on top of the headless wallet service",
		Long:  customLong,
	}

	cmd.AddCommand(NewCmdCustomListTokens(w, rf))
	cmd.AddCommand(NewCmdCustomCurl(w, rf))
	cmd.AddCommand(NewCmdCustomIsAddressMine(w, rf))
	return cmd
}
