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
	walletBalanceLong = cli.LongDesc(`
		Get the available and locked balance of a wallet. Without token, the
		balance of the native token is returned.
	`)

	walletBalanceExample = cli.Examples(`
		# Get the balance of the native token
		{{.Software}} wallet balance --wallet-id WALLET_ID

		# Get the balance of a custom token
		{{.Software}} wallet balance --wallet-id WALLET_ID --token TOKEN
	`)
)

func BuildCmdWalletBalance(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &WalletBalanceFlags{}

	cmd := &cobra.Command{
		Use:     "balance",
		Short:   "Get the balance of a wallet",
		Long:    walletBalanceLong,
		Example: walletBalanceExample,
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

	flags.OptionalStringVarP(cmd.Flags(), &f.Token,
		"token", "t",
		"Token to get the balance of",
	)

	return cmd
}

type WalletBalanceFlags struct {
	WalletID string
	Token    flags.OptionalString
}

func (f *WalletBalanceFlags) Validate() (headless.BalanceParams, error) {
	if len(f.WalletID) == 0 {
		return headless.BalanceParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	return headless.BalanceParams{
		WalletID: f.WalletID,
		Token:    f.Token.Get(),
	}, nil
}
