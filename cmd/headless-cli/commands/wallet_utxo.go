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
	"github.com/spf13/pflag"
)

var (
	walletUTXOFilterExample = cli.Examples(`
		# List the available UTXOs of a token
		{{.Software}} wallet utxo-filter --wallet-id WALLET_ID --token TOKEN --only-available-utxos

		# List at most 10 UTXOs of an address, bigger than 100
		{{.Software}} wallet utxo-filter --wallet-id WALLET_ID --filter-address ADDRESS --amount-bigger-than 100 --max-utxos 10
	`)

	walletUTXOConsolidationLong = cli.LongDesc(`
		Consolidate the UTXOs matching the filters into a single output. The
		service consolidates on an address of the wallet.
	`)

	walletUTXOConsolidationExample = cli.Examples(`
		# Consolidate the UTXOs smaller than 10
		{{.Software}} wallet utxo-consolidation --wallet-id WALLET_ID --amount-smaller-than 10
	`)
)

// UTXOFilterFlags holds the flags selecting unspent outputs.
type UTXOFilterFlags struct {
	MaxUTXOs          flags.OptionalUint32
	Token             flags.OptionalString
	FilterAddress     flags.OptionalString
	AmountSmallerThan flags.OptionalUint32
	AmountBiggerThan  flags.OptionalUint32
	MaximumAmount     flags.OptionalUint32
}

func (u *UTXOFilterFlags) register(fs *pflag.FlagSet) {
	flags.OptionalUint32Var(fs, &u.MaxUTXOs,
		"max-utxos",
		"Maximum number of UTXOs",
	)
	flags.OptionalStringVar(fs, &u.Token,
		"token",
		"Only select the UTXOs of this token",
	)
	flags.OptionalStringVar(fs, &u.FilterAddress,
		"filter-address",
		"Only select the UTXOs of this address",
	)
	flags.OptionalUint32Var(fs, &u.AmountSmallerThan,
		"amount-smaller-than",
		"Only select the UTXOs with a smaller amount",
	)
	flags.OptionalUint32Var(fs, &u.AmountBiggerThan,
		"amount-bigger-than",
		"Only select the UTXOs with a bigger amount",
	)
	flags.OptionalUint32Var(fs, &u.MaximumAmount,
		"maximum-amount",
		"Stop selecting UTXOs once their total reaches this amount",
	)
}

func (u *UTXOFilterFlags) filter() headless.UTXOFilter {
	return headless.UTXOFilter{
		MaxUTXOs:          u.MaxUTXOs.Get(),
		Token:             u.Token.Get(),
		FilterAddress:     u.FilterAddress.Get(),
		AmountSmallerThan: u.AmountSmallerThan.Get(),
		AmountBiggerThan:  u.AmountBiggerThan.Get(),
		MaximumAmount:     u.MaximumAmount.Get(),
	}
}

func BuildCmdWalletUTXOFilter(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &WalletUTXOFilterFlags{}

	cmd := &cobra.Command{
		Use:     "utxo-filter",
		Short:   "List the UTXOs matching filters",
		Long:    "List the unspent outputs of the wallet matching the filters.",
		Example: walletUTXOFilterExample,
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

	f.Filter.register(cmd.Flags())
	flags.OptionalBoolVar(cmd.Flags(), &f.OnlyAvailableUTXOs,
		"only-available-utxos",
		"Exclude the locked UTXOs",
	)

	return cmd
}

type WalletUTXOFilterFlags struct {
	WalletID           string
	Filter             UTXOFilterFlags
	OnlyAvailableUTXOs flags.OptionalBool
}

func (f *WalletUTXOFilterFlags) Validate() (headless.UTXOFilterParams, error) {
	if len(f.WalletID) == 0 {
		return headless.UTXOFilterParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	return headless.UTXOFilterParams{
		WalletID:           f.WalletID,
		Filter:             f.Filter.filter(),
		OnlyAvailableUTXOs: f.OnlyAvailableUTXOs.Get(),
	}, nil
}

func BuildCmdWalletUTXOConsolidation(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &WalletUTXOConsolidationFlags{}

	cmd := &cobra.Command{
		Use:     "utxo-consolidation",
		Short:   "Consolidate the UTXOs matching filters",
		Long:    walletUTXOConsolidationLong,
		Example: walletUTXOConsolidationExample,
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

	f.Filter.register(cmd.Flags())

	return cmd
}

type WalletUTXOConsolidationFlags struct {
	WalletID string
	Filter   UTXOFilterFlags
}

func (f *WalletUTXOConsolidationFlags) Validate() (headless.UTXOConsolidationParams, error) {
	if len(f.WalletID) == 0 {
		return headless.UTXOConsolidationParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	return headless.UTXOConsolidationParams{
		WalletID: f.WalletID,
		Filter:   f.Filter.filter(),
	}, nil
}
