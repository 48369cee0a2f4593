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
	walletStatusLong = cli.LongDesc(`
		Get the status of a wallet: whether it's ready, syncing or errored.
	`)

	walletStatusExample = cli.Examples(`
		# Get the status of a wallet
		{{.Software}} wallet status --wallet-id WALLET_ID
	`)

	walletStopLong = cli.LongDesc(`
		Stop a wallet. The wallet has to be started again before being used.
	`)

	walletStopExample = cli.Examples(`
		# Stop a wallet
		{{.Software}} wallet stop --wallet-id WALLET_ID
	`)
)

func BuildCmdWalletStatus(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Get the status of a wallet",
		Long:    walletStatusLong,
		Example: walletStatusExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := &WalletStatusFlags{WalletID: wf.WalletID}

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

	return cmd
}

type WalletStatusFlags struct {
	WalletID string
}

func (f *WalletStatusFlags) Validate() (headless.StatusParams, error) {
	if len(f.WalletID) == 0 {
		return headless.StatusParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	return headless.StatusParams{
		WalletID: f.WalletID,
	}, nil
}

func BuildCmdWalletStop(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stop",
		Short:   "Stop a wallet",
		Long:    walletStopLong,
		Example: walletStopExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(wf.WalletID) == 0 {
				return flags.MustBeSpecifiedError("wallet-id")
			}

			resp, err := handler(cmd.Context(), headless.StopParams{WalletID: wf.WalletID})
			if err != nil {
				return err
			}

			PrintRawResponse(w, resp)
			return nil
		},
	}

	return cmd
}
