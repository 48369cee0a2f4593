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

var walletLong = cli.LongDesc(`
	Interact with a wallet started on the headless service. The wallet is
	selected with the --wallet-id flag.
`)

// defaultWalletID is the identifier used when --wallet-id is omitted.
const defaultWalletID = "default"

// WalletFlags holds the flags shared by every wallet command.
type WalletFlags struct {
	WalletID string
}

func NewCmdWallet(w io.Writer, rf *RootFlags) *cobra.Command {
	wf := &WalletFlags{}

	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Interact with a started wallet",
		Long:  walletLong,
	}

	cmd.PersistentFlags().StringVarP(&wf.WalletID,
		"wallet-id", "w",
		defaultWalletID,
		"Identifier of the wallet",
	)

	h := NewCallHandler(rf)

	cmd.AddCommand(BuildCmdWalletStatus(w, h, wf))
	cmd.AddCommand(BuildCmdWalletBalance(w, h, wf))
	cmd.AddCommand(BuildCmdWalletAddress(w, h, wf))
	cmd.AddCommand(BuildCmdWalletAddressIndex(w, h, wf))
	cmd.AddCommand(BuildCmdWalletAddresses(w, h, wf))
	cmd.AddCommand(BuildCmdWalletAddressInfo(w, h, wf))
	cmd.AddCommand(BuildCmdWalletTxHistory(w, h, wf))
	cmd.AddCommand(BuildCmdWalletTransaction(w, h, wf))
	cmd.AddCommand(BuildCmdWalletDecode(w, h, wf))
	cmd.AddCommand(BuildCmdWalletTxConfirmation(w, h, wf))
	cmd.AddCommand(BuildCmdWalletSimpleSend(w, h, wf))
	cmd.AddCommand(BuildCmdWalletSend(w, h, wf))
	cmd.AddCommand(BuildCmdWalletCreateToken(w, h, wf))
	cmd.AddCommand(BuildCmdWalletMintTokens(w, h, wf))
	cmd.AddCommand(BuildCmdWalletMeltTokens(w, h, wf))
	cmd.AddCommand(BuildCmdWalletUTXOFilter(w, h, wf))
	cmd.AddCommand(BuildCmdWalletUTXOConsolidation(w, h, wf))
	cmd.AddCommand(BuildCmdWalletCreateNFT(w, h, wf))
	cmd.AddCommand(BuildCmdWalletStop(w, h, wf))
	cmd.AddCommand(NewCmdP2SH(w, h, wf))

	return cmd
}
