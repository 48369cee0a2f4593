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
	fireblocksStartLong = cli.LongDesc(`
		Start a wallet from the extended public key of a Fireblocks account. The
		Fireblocks credentials are configured on the service.
	`)

	fireblocksStartExample = cli.Examples(`
		# Start a wallet from a Fireblocks extended public key
		{{.Software}} fireblocks start XPUB --wallet-id my-wallet
	`)
)

func NewCmdFireblocks(w io.Writer, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fireblocks",
		Short: "Manage wallets backed by a Fireblocks account",
		Long:  "Manage wallets backed by a Fireblocks account",
	}

	cmd.AddCommand(NewCmdFireblocksStart(w, rf))
	return cmd
}

func NewCmdFireblocksStart(w io.Writer, rf *RootFlags) *cobra.Command {
	return BuildCmdFireblocksStart(w, NewCallHandler(rf))
}

func BuildCmdFireblocksStart(w io.Writer, handler CallHandler) *cobra.Command {
	f := &FireblocksStartFlags{}

	cmd := &cobra.Command{
		Use:     "start XPUB",
		Short:   "Start a wallet from a Fireblocks extended public key",
		Long:    fireblocksStartLong,
		Example: fireblocksStartExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "XPUB"); err != nil {
				return err
			}
			f.XPub = args[0]

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

	cmd.Flags().StringVar(&f.WalletID,
		"wallet-id",
		defaultWalletID,
		"Identifier of the wallet to start",
	)

	return cmd
}

type FireblocksStartFlags struct {
	WalletID string
	XPub   string
}

func (f *FireblocksStartFlags) Validate() (headless.FireblocksStartParams, error) {
	if len(f.XPub) == 0 {
		return headless.FireblocksStartParams{}, flags.ArgMustBeSpecifiedError("XPUB")
	}

	if len(f.WalletID) == 0 {
		return headless.FireblocksStartParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	return headless.FireblocksStartParams{
		WalletID: f.WalletID,
		XPub:   f.XPub,
	}, nil
}
