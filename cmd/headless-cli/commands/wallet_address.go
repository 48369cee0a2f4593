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
	walletAddressLong = cli.LongDesc(`
		Get an address of a wallet. Without index, the current unused address is
		returned. Marking the address as used makes the service move to the next
		address.
	`)

	walletAddressExample = cli.Examples(`
		# Get the current address
		{{.Software}} wallet address --wallet-id WALLET_ID

		# Get the address at index 5
		{{.Software}} wallet address --wallet-id WALLET_ID --index 5

		# Get the current address and move to the next one
		{{.Software}} wallet address --wallet-id WALLET_ID --mark-as-used
	`)

	walletAddressIndexExample = cli.Examples(`
		# Get the index of an address
		{{.Software}} wallet address-index ADDRESS --wallet-id WALLET_ID
	`)

	walletAddressesExample = cli.Examples(`
		# List the addresses of a wallet
		{{.Software}} wallet addresses --wallet-id WALLET_ID
	`)

	walletAddressInfoLong = cli.LongDesc(`
		Get the amounts received, sent, available and locked on an address of the
		wallet. Without token, the amounts of the native token are returned.
	`)

	walletAddressInfoExample = cli.Examples(`
		# Get the information of an address
		{{.Software}} wallet address-info ADDRESS --wallet-id WALLET_ID

		# Get the information of an address for a custom token
		{{.Software}} wallet address-info ADDRESS --wallet-id WALLET_ID --token TOKEN
	`)
)

func BuildCmdWalletAddress(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &WalletAddressFlags{}

	cmd := &cobra.Command{
		Use:     "address",
		Short:   "Get an address of a wallet",
		Long:    walletAddressLong,
		Example: walletAddressExample,
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

	flags.OptionalUint32VarP(cmd.Flags(), &f.Index,
		"index", "i",
		"Index of the address",
	)
	flags.OptionalBoolVarP(cmd.Flags(), &f.MarkAsUsed,
		"mark-as-used", "m",
		"Mark the returned address as used",
	)

	return cmd
}

type WalletAddressFlags struct {
	WalletID   string
	Index      flags.OptionalUint32
	MarkAsUsed flags.OptionalBool
}

func (f *WalletAddressFlags) Validate() (headless.AddressParams, error) {
	if len(f.WalletID) == 0 {
		return headless.AddressParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	return headless.AddressParams{
		WalletID:   f.WalletID,
		Index:      f.Index.Get(),
		MarkAsUsed: f.MarkAsUsed.Get(),
	}, nil
}

func BuildCmdWalletAddressIndex(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &WalletAddressIndexFlags{}

	cmd := &cobra.Command{
		Use:     "address-index ADDRESS",
		Short:   "Get the index of an address",
		Long:    "Get the derivation index of an address of the wallet.",
		Example: walletAddressIndexExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "ADDRESS"); err != nil {
				return err
			}
			f.WalletID = wf.WalletID
			f.Address = args[0]

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

type WalletAddressIndexFlags struct {
	WalletID string
	Address  string
}

func (f *WalletAddressIndexFlags) Validate() (headless.AddressIndexParams, error) {
	if len(f.WalletID) == 0 {
		return headless.AddressIndexParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.Address) == 0 {
		return headless.AddressIndexParams{}, flags.ArgMustBeSpecifiedError("ADDRESS")
	}

	return headless.AddressIndexParams{
		WalletID: f.WalletID,
		Address:  f.Address,
	}, nil
}

func BuildCmdWalletAddresses(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "addresses",
		Short:   "List the addresses of a wallet",
		Long:    "List the addresses of the wallet loaded by the service.",
		Example: walletAddressesExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(wf.WalletID) == 0 {
				return flags.MustBeSpecifiedError("wallet-id")
			}

			resp, err := handler(cmd.Context(), headless.AddressesParams{WalletID: wf.WalletID})
			if err != nil {
				return err
			}

			PrintRawResponse(w, resp)
			return nil
		},
	}

	return cmd
}

func BuildCmdWalletAddressInfo(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &WalletAddressInfoFlags{}

	cmd := &cobra.Command{
		Use:     "address-info ADDRESS",
		Short:   "Get the information of an address",
		Long:    walletAddressInfoLong,
		Example: walletAddressInfoExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "ADDRESS"); err != nil {
				return err
			}
			f.WalletID = wf.WalletID
			f.Address = args[0]

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
		"Token to get the amounts of",
	)

	return cmd
}

type WalletAddressInfoFlags struct {
	WalletID string
	Address  string
	Token    flags.OptionalString
}

func (f *WalletAddressInfoFlags) Validate() (headless.AddressInfoParams, error) {
	if len(f.WalletID) == 0 {
		return headless.AddressInfoParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.Address) == 0 {
		return headless.AddressInfoParams{}, flags.ArgMustBeSpecifiedError("ADDRESS")
	}

	return headless.AddressInfoParams{
		WalletID: f.WalletID,
		Address:  f.Address,
		Token:    f.Token.Get(),
	}, nil
}
