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
	walletTxHistoryExample = cli.Examples(`
		# Get the whole transaction history
		{{.Software}} wallet tx-history --wallet-id WALLET_ID

		# Get the 10 most recent transactions
		{{.Software}} wallet tx-history --wallet-id WALLET_ID --limit 10
	`)

	walletTransactionExample = cli.Examples(`
		# Get a transaction of the wallet
		{{.Software}} wallet transaction TX_ID --wallet-id WALLET_ID
	`)

	walletTxConfirmationLong = cli.LongDesc(`
		Get the number of blocks confirming a transaction of the wallet.
	`)

	walletTxConfirmationExample = cli.Examples(`
		# Get the confirmation blocks of a transaction
		{{.Software}} wallet tx-confirmation TX_ID --wallet-id WALLET_ID
	`)
)

func BuildCmdWalletTxHistory(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &WalletTxHistoryFlags{}

	cmd := &cobra.Command{
		Use:     "tx-history",
		Short:   "Get the transaction history of a wallet",
		Long:    "Get the transaction history of a wallet, most recent first.",
		Example: walletTxHistoryExample,
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

	flags.OptionalUint32VarP(cmd.Flags(), &f.Limit,
		"limit", "l",
		"Maximum number of transactions to return",
	)

	return cmd
}

type WalletTxHistoryFlags struct {
	WalletID string
	Limit    flags.OptionalUint32
}

func (f *WalletTxHistoryFlags) Validate() (headless.TxHistoryParams, error) {
	if len(f.WalletID) == 0 {
		return headless.TxHistoryParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	return headless.TxHistoryParams{
		WalletID: f.WalletID,
		Limit:    f.Limit.Get(),
	}, nil
}

func BuildCmdWalletTransaction(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &WalletTransactionFlags{}

	cmd := &cobra.Command{
		Use:     "transaction TX_ID",
		Short:   "Get a transaction of a wallet",
		Long:    "Get a transaction of the wallet by its identifier.",
		Example: walletTransactionExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "TX_ID"); err != nil {
				return err
			}
			f.WalletID = wf.WalletID
			f.ID = args[0]

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

type WalletTransactionFlags struct {
	WalletID string
	ID       string
}

// Validate is shared by the commands reading a single transaction.
func (f *WalletTransactionFlags) Validate() (headless.TransactionParams, error) {
	if len(f.WalletID) == 0 {
		return headless.TransactionParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.ID) == 0 {
		return headless.TransactionParams{}, flags.ArgMustBeSpecifiedError("TX_ID")
	}

	return headless.TransactionParams{
		WalletID: f.WalletID,
		ID:       f.ID,
	}, nil
}

func BuildCmdWalletTxConfirmation(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &WalletTransactionFlags{}

	cmd := &cobra.Command{
		Use:     "tx-confirmation TX_ID",
		Short:   "Get the confirmation blocks of a transaction",
		Long:    walletTxConfirmationLong,
		Example: walletTxConfirmationExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "TX_ID"); err != nil {
				return err
			}
			f.WalletID = wf.WalletID
			f.ID = args[0]

			req, err := f.Validate()
			if err != nil {
				return err
			}

			resp, err := handler(cmd.Context(), headless.TxConfirmationParams(req))
			if err != nil {
				return err
			}

			PrintRawResponse(w, resp)
			return nil
		},
	}

	return cmd
}
