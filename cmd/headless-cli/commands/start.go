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
	startLong = cli.LongDesc(`
		Start a wallet on the headless service, from a seed configured on the
		service. Once started, the wallet is referred to by its wallet ID in the
		other commands.

		The scan policy options are forwarded to the service only when specified,
		so the service defaults apply otherwise.
	`)

	startExample = cli.Examples(`
		# Start the default wallet from the default seed
		{{.Software}} start

		# Start a wallet with a passphrase
		{{.Software}} start --wallet-id my-wallet --seed-key my-seed --passphrase PASSPHRASE

		# Start a wallet with a gap limit scan policy
		{{.Software}} start --wallet-id my-wallet --scan-policy gap-limit --gap-limit 50
	`)
)

func NewCmdStart(w io.Writer, rf *RootFlags) *cobra.Command {
	return BuildCmdStart(w, NewCallHandler(rf))
}

func BuildCmdStart(w io.Writer, handler CallHandler) *cobra.Command {
	f := &StartFlags{}

	cmd := &cobra.Command{
		Use:     "start",
		Short:   "Start a wallet",
		Long:    startLong,
		Example: startExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
	cmd.Flags().StringVar(&f.SeedKey,
		"seed-key",
		"default",
		"Key of the seed configured on the service",
	)
	flags.OptionalStringVarP(cmd.Flags(), &f.Passphrase,
		"passphrase", "p",
		"Passphrase of the seed",
	)
	flags.OptionalStringVar(cmd.Flags(), &f.ScanPolicy,
		"scan-policy",
		"Address scanning policy: gap-limit or index-limit",
	)
	flags.OptionalUint32Var(cmd.Flags(), &f.GapLimit,
		"gap-limit",
		"Number of unused addresses to look ahead, with the gap-limit policy",
	)
	flags.OptionalUint32Var(cmd.Flags(), &f.PolicyStartIndex,
		"policy-start-index",
		"First address index to load, with the index-limit policy",
	)
	flags.OptionalUint32Var(cmd.Flags(), &f.PolicyEndIndex,
		"policy-end-index",
		"Last address index to load, with the index-limit policy",
	)
	flags.OptionalStringVar(cmd.Flags(), &f.HistorySyncMode,
		"history-sync-mode",
		"How the service synchronises the wallet history",
	)

	return cmd
}

type StartFlags struct {
	WalletID         string
	SeedKey          string
	Passphrase       flags.OptionalString
	ScanPolicy       flags.OptionalString
	GapLimit         flags.OptionalUint32
	PolicyStartIndex flags.OptionalUint32
	PolicyEndIndex   flags.OptionalUint32
	HistorySyncMode  flags.OptionalString
}

func (f *StartFlags) Validate() (headless.StartParams, error) {
	if len(f.WalletID) == 0 {
		return headless.StartParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.SeedKey) == 0 {
		return headless.StartParams{}, flags.MustBeSpecifiedError("seed-key")
	}

	return headless.StartParams{
		WalletID:         f.WalletID,
		SeedKey:          f.SeedKey,
		Passphrase:       f.Passphrase.Get(),
		ScanPolicy:       f.ScanPolicy.Get(),
		GapLimit:         f.GapLimit.Get(),
		PolicyStartIndex: f.PolicyStartIndex.Get(),
		PolicyEndIndex:   f.PolicyEndIndex.Get(),
		HistorySyncMode:  f.HistorySyncMode.Get(),
	}, nil
}
