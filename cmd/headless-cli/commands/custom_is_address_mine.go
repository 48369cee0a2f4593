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
	"context"
	"fmt"
	"io"

	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/cli"
	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/flags"
	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/printer"
	"github.com/r4mmer/headless-cli/headless"
	vgzap "github.com/r4mmer/headless-cli/libs/zap"

	"github.com/spf13/cobra"
)

var (
	isAddressMineLong = cli.LongDesc(`
		Tell whether the address belongs to the wallet.
	`)

	isAddressMineExample = cli.Examples(`
		# Check an address
		{{.Software}} custom is-address-mine ADDRESS --wallet-id WALLET_ID
	`)
)

type IsAddressMineResponse struct {
	IsMine bool `json:"isMine"`
}

type IsAddressMineHandler func(ctx context.Context, p headless.IsAddressMineParams) (*IsAddressMineResponse, error)

func NewCmdCustomIsAddressMine(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context, p headless.IsAddressMineParams) (*IsAddressMineResponse, error) {
		client, log, err := newHeadlessClient(rf)
		if err != nil {
			return nil, err
		}
		defer vgzap.Sync(log)()

		mine, err := client.IsAddressMine(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("couldn't check the address: %w", err)
		}
		return &IsAddressMineResponse{
			IsMine: mine,
		}, nil
	}

	return BuildCmdCustomIsAddressMine(w, h, rf)
}

func BuildCmdCustomIsAddressMine(w io.Writer, handler IsAddressMineHandler, rf *RootFlags) *cobra.Command {
	f := &CustomIsAddressMineFlags{}

	cmd := &cobra.Command{
		Use:     "is-address-mine ADDRESS",
		Short:   "Tell whether an address belongs to the wallet",
		Long:    isAddressMineLong,
		Example: isAddressMineExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "ADDRESS"); err != nil {
				return err
			}
			f.Address = args[0]

			req, err := f.Validate()
			if err != nil {
				return err
			}

			resp, err := handler(cmd.Context(), req)
			if err != nil {
				return err
			}

			switch rf.Output {
			case flags.InteractiveOutput:
				_, _ = fmt.Fprintln(w, resp.IsMine)
			case flags.JSONOutput:
				return printer.FprintJSON(w, resp)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.WalletID,
		"wallet-id", "w",
		defaultWalletID,
		"Identifier of the wallet",
	)

	return cmd
}

type CustomIsAddressMineFlags struct {
	WalletID string
	Address  string
}

func (f *CustomIsAddressMineFlags) Validate() (headless.IsAddressMineParams, error) {
	if len(f.WalletID) == 0 {
		return headless.IsAddressMineParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.Address) == 0 {
		return headless.IsAddressMineParams{}, flags.ArgMustBeSpecifiedError("ADDRESS")
	}

	return headless.IsAddressMineParams{
		WalletID: f.WalletID,
		Address:  f.Address,
	}, nil
}
