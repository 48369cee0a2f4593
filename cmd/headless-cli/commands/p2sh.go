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

var p2shLong = cli.LongDesc(`
	Build, sign and push transaction proposals of a multisig wallet. A proposal
	is created by one participant, signed by enough participants, then the
	signatures are assembled and the transaction is pushed.
`)

func NewCmdP2SH(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "p2sh",
		Short: "Manage multisig transaction proposals",
		Long:  p2shLong,
	}

	cmd.AddCommand(BuildCmdP2SHTxProposal(w, handler, wf))
	cmd.AddCommand(BuildCmdP2SHGetMySignatures(w, handler, wf))
	cmd.AddCommand(BuildCmdP2SHSign(w, handler, wf, false))
	cmd.AddCommand(BuildCmdP2SHSign(w, handler, wf, true))
	cmd.AddCommand(BuildCmdP2SHCreateToken(w, handler, wf))
	cmd.AddCommand(BuildCmdP2SHMintTokens(w, handler, wf))
	cmd.AddCommand(BuildCmdP2SHMeltTokens(w, handler, wf))
	return cmd
}
