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
	walletSimpleSendLong = cli.LongDesc(`
		Send an amount of a token to a single address. Without token, the native
		token is sent.
	`)

	walletSimpleSendExample = cli.Examples(`
		# Send 10 units of the native token
		{{.Software}} wallet simple-send ADDRESS 10 --wallet-id WALLET_ID

		# Send 10 units of a custom token, with the change on a given address
		{{.Software}} wallet simple-send ADDRESS 10 --wallet-id WALLET_ID --token TOKEN --change-address CHANGE_ADDRESS
	`)

	walletSendLong = cli.LongDesc(`
		Send a transaction described by a JSON body. The body is forwarded as-is
		to the service, which validates it.
	`)

	walletSendExample = cli.Examples(`
		# Send a transaction with two outputs
		{{.Software}} wallet send --wallet-id WALLET_ID '{"outputs":[{"address":"ADDRESS_1","value":1},{"address":"ADDRESS_2","value":2}]}'
	`)
)

func BuildCmdWalletSimpleSend(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &WalletSimpleSendFlags{}

	cmd := &cobra.Command{
		Use:     "simple-send ADDRESS VALUE",
		Short:   "Send a token to an address",
		Long:    walletSimpleSendLong,
		Example: walletSimpleSendExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "ADDRESS", "VALUE"); err != nil {
				return err
			}
			f.WalletID = wf.WalletID
			f.Address = args[0]
			f.RawValue = args[1]

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

	flags.OptionalStringVarP(cmd.Flags(), &f.ChangeAddress,
		"change-address", "c",
		"Address receiving the change",
	)
	flags.OptionalStringVarP(cmd.Flags(), &f.Token,
		"token", "t",
		"Token to send",
	)

	return cmd
}

type WalletSimpleSendFlags struct {
	WalletID      string
	Address       string
	RawValue      string
	ChangeAddress flags.OptionalString
	Token         flags.OptionalString
}

func (f *WalletSimpleSendFlags) Validate() (headless.SimpleSendParams, error) {
	if len(f.WalletID) == 0 {
		return headless.SimpleSendParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.Address) == 0 {
		return headless.SimpleSendParams{}, flags.ArgMustBeSpecifiedError("ADDRESS")
	}

	value, err := flags.ParseUint32Arg("VALUE", f.RawValue)
	if err != nil {
		return headless.SimpleSendParams{}, err
	}

	return headless.SimpleSendParams{
		WalletID:      f.WalletID,
		Address:       f.Address,
		Value:         value,
		ChangeAddress: f.ChangeAddress.Get(),
		Token:         f.Token.Get(),
	}, nil
}

func BuildCmdWalletSend(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &WalletSendFlags{}

	cmd := &cobra.Command{
		Use:     "send BODY",
		Short:   "Send a transaction from a JSON body",
		Long:    walletSendLong,
		Example: walletSendExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "BODY"); err != nil {
				return err
			}
			f.WalletID = wf.WalletID
			f.Body = args[0]

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

type WalletSendFlags struct {
	WalletID string
	Body     string
}

func (f *WalletSendFlags) Validate() (headless.SendParams, error) {
	if len(f.WalletID) == 0 {
		return headless.SendParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.Body) == 0 {
		return headless.SendParams{}, flags.ArgMustBeSpecifiedError("BODY")
	}

	return headless.SendParams{
		WalletID: f.WalletID,
		Body:     f.Body,
	}, nil
}
