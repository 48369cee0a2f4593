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
	hsmStartLong = cli.LongDesc(`
		Start a wallet whose keys are held by a hardware security module
		configured on the service.
	`)

	hsmStartExample = cli.Examples(`
		# Start a wallet from an HSM key
		{{.Software}} hsm start HSM_KEY --wallet-id my-wallet
	`)
)

func NewCmdHSM(w io.Writer, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hsm",
		Short: "Manage wallets backed by a hardware security module",
		Long:  "Manage wallets backed by a hardware security module",
	}

	cmd.AddCommand(NewCmdHSMStart(w, rf))
	return cmd
}

func NewCmdHSMStart(w io.Writer, rf *RootFlags) *cobra.Command {
	return BuildCmdHSMStart(w, NewCallHandler(rf))
}

func BuildCmdHSMStart(w io.Writer, handler CallHandler) *cobra.Command {
	f := &HSMStartFlags{}

	cmd := &cobra.Command{
		Use:     "start HSM_KEY",
		Short:   "Start a wallet from an HSM key",
		Long:    hsmStartLong,
		Example: hsmStartExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "HSM_KEY"); err != nil {
				return err
			}
			f.HSMKey = args[0]

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

type HSMStartFlags struct {
	WalletID string
	HSMKey   string
}

func (f *HSMStartFlags) Validate() (headless.HSMStartParams, error) {
	if len(f.HSMKey) == 0 {
		return headless.HSMStartParams{}, flags.ArgMustBeSpecifiedError("HSM_KEY")
	}

	if len(f.WalletID) == 0 {
		return headless.HSMStartParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	return headless.HSMStartParams{
		WalletID: f.WalletID,
		HSMKey:   f.HSMKey,
	}, nil
}
