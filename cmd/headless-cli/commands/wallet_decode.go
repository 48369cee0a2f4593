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
	"github.com/r4mmer/headless-cli/headless"

	"github.com/spf13/cobra"
)

var (
	walletDecodeLong = cli.LongDesc(`
		Decode a transaction, or a partial transaction of a multisig proposal, and
		show which inputs and outputs belong to the wallet.
	`)

	walletDecodeExample = cli.Examples(`
		# Decode a transaction
		{{.Software}} wallet decode --wallet-id WALLET_ID --tx-hex TX_HEX

		# Decode a partial transaction
		{{.Software}} wallet decode --wallet-id WALLET_ID --partial-tx PARTIAL_TX
	`)
)

func BuildCmdWalletDecode(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &WalletDecodeFlags{}

	cmd := &cobra.Command{
		Use:     "decode",
		Short:   "Decode a transaction",
		Long:    walletDecodeLong,
		Example: walletDecodeExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.WalletID = wf.WalletID

			req, err := f.Validate()
			if err != nil {
				return err
			}

			resp, err := handler(cmd.Context(), req)
			if err != nil {
				return err
			}

			PrintRawResponse(w, resp)
			return nil
		},
	}

	flags.OptionalStringVarP(cmd.Flags(), &f.TxHex,
		"tx-hex", "t",
		"Transaction to decode, hex-encoded",
	)
	flags.OptionalStringVarP(cmd.Flags(), &f.PartialTx,
		"partial-tx", "p",
		"Partial transaction to decode",
	)

	return cmd
}

type WalletDecodeFlags struct {
	WalletID  string
	TxHex     flags.OptionalString
	PartialTx flags.OptionalString
}

// Validate doesn't require any of the transaction flags: the service
// reports the missing one.
func (f *WalletDecodeFlags) Validate() (headless.DecodeParams, error) {
	if len(f.WalletID) == 0 {
		return headless.DecodeParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	return headless.DecodeParams{
		WalletID:  f.WalletID,
		TxHex:     f.TxHex.Get(),
		PartialTx: f.PartialTx.Get(),
	}, nil
}
