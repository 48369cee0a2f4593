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
	p2shCreateTokenExample = cli.Examples(`
		# Propose to create 100 units of a token
		{{.Software}} wallet p2sh create-token "My token" MTK 100 --wallet-id WALLET_ID
	`)

	p2shMintTokensExample = cli.Examples(`
		# Propose to mint 10 units of a token
		{{.Software}} wallet p2sh mint-tokens TOKEN 10 --wallet-id WALLET_ID
	`)

	p2shMeltTokensExample = cli.Examples(`
		# Propose to melt 10 units of a token
		{{.Software}} wallet p2sh melt-tokens TOKEN 10 --wallet-id WALLET_ID
	`)
)

func BuildCmdP2SHCreateToken(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &P2SHCreateTokenFlags{}

	cmd := &cobra.Command{
		Use:     "create-token NAME SYMBOL AMOUNT",
		Short:   "Propose to create a custom token",
		Long:    "Create a transaction proposal creating a custom token.",
		Example: p2shCreateTokenExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "NAME", "SYMBOL", "AMOUNT"); err != nil {
				return err
			}
			f.WalletID = wf.WalletID
			f.Name = args[0]
			f.Symbol = args[1]
			f.RawAmount = args[2]

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

	flags.OptionalStringVar(cmd.Flags(), &f.Address,
		"address",
		"Address receiving the created tokens",
	)
	flags.OptionalStringVar(cmd.Flags(), &f.ChangeAddress,
		"change-address",
		"Address receiving the change",
	)
	f.Authorities.register(cmd.Flags())

	return cmd
}

type P2SHCreateTokenFlags struct {
	WalletID      string
	Name          string
	Symbol        string
	RawAmount     string
	Address       flags.OptionalString
	ChangeAddress flags.OptionalString
	Authorities   TokenAuthorityFlags
}

func (f *P2SHCreateTokenFlags) Validate() (headless.P2SHCreateTokenParams, error) {
	if len(f.WalletID) == 0 {
		return headless.P2SHCreateTokenParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.Name) == 0 {
		return headless.P2SHCreateTokenParams{}, flags.ArgMustBeSpecifiedError("NAME")
	}

	if len(f.Symbol) == 0 {
		return headless.P2SHCreateTokenParams{}, flags.ArgMustBeSpecifiedError("SYMBOL")
	}

	amount, err := flags.ParseUint32Arg("AMOUNT", f.RawAmount)
	if err != nil {
		return headless.P2SHCreateTokenParams{}, err
	}

	return headless.P2SHCreateTokenParams{
		WalletID:      f.WalletID,
		Name:          f.Name,
		Symbol:        f.Symbol,
		Amount:        amount,
		Address:       f.Address.Get(),
		ChangeAddress: f.ChangeAddress.Get(),
		Authorities:   f.Authorities.authorities(),
	}, nil
}

func BuildCmdP2SHMintTokens(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &P2SHMintTokensFlags{}

	cmd := &cobra.Command{
		Use:     "mint-tokens TOKEN AMOUNT",
		Short:   "Propose to mint units of a custom token",
		Long:    "Create a transaction proposal minting units of a custom token.",
		Example: p2shMintTokensExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "TOKEN", "AMOUNT"); err != nil {
				return err
			}
			f.WalletID = wf.WalletID
			f.Token = args[0]
			f.RawAmount = args[1]

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

	flags.OptionalStringVar(cmd.Flags(), &f.Address,
		"address",
		"Address receiving the minted tokens",
	)
	flags.OptionalStringVar(cmd.Flags(), &f.ChangeAddress,
		"change-address",
		"Address receiving the change",
	)
	flags.OptionalBoolVar(cmd.Flags(), &f.CreateMint,
		"create-mint",
		"Keep a mint authority after minting",
	)
	registerMintAuthorityAddressFlags(cmd.Flags(), &f.MintAuthorityAddress, &f.AllowExternalMintAuthorityAddress)

	return cmd
}

type P2SHMintTokensFlags struct {
	WalletID                          string
	Token                             string
	RawAmount                         string
	Address                           flags.OptionalString
	ChangeAddress                     flags.OptionalString
	CreateMint                        flags.OptionalBool
	MintAuthorityAddress              flags.OptionalString
	AllowExternalMintAuthorityAddress flags.OptionalBool
}

func (f *P2SHMintTokensFlags) Validate() (headless.P2SHMintTokensParams, error) {
	if len(f.WalletID) == 0 {
		return headless.P2SHMintTokensParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.Token) == 0 {
		return headless.P2SHMintTokensParams{}, flags.ArgMustBeSpecifiedError("TOKEN")
	}

	amount, err := flags.ParseUint32Arg("AMOUNT", f.RawAmount)
	if err != nil {
		return headless.P2SHMintTokensParams{}, err
	}

	return headless.P2SHMintTokensParams{
		WalletID:                          f.WalletID,
		Token:                             f.Token,
		Amount:                            amount,
		Address:                           f.Address.Get(),
		ChangeAddress:                     f.ChangeAddress.Get(),
		CreateMint:                        f.CreateMint.Get(),
		MintAuthorityAddress:              f.MintAuthorityAddress.Get(),
		AllowExternalMintAuthorityAddress: f.AllowExternalMintAuthorityAddress.Get(),
	}, nil
}

func BuildCmdP2SHMeltTokens(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &P2SHMeltTokensFlags{}

	cmd := &cobra.Command{
		Use:     "melt-tokens TOKEN AMOUNT",
		Short:   "Propose to melt units of a custom token",
		Long:    "Create a transaction proposal melting units of a custom token.",
		Example: p2shMeltTokensExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "TOKEN", "AMOUNT"); err != nil {
				return err
			}
			f.WalletID = wf.WalletID
			f.Token = args[0]
			f.RawAmount = args[1]

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

	flags.OptionalStringVar(cmd.Flags(), &f.DepositAddress,
		"deposit-address",
		"Address receiving the deposit released by the melt",
	)
	flags.OptionalStringVar(cmd.Flags(), &f.ChangeAddress,
		"change-address",
		"Address receiving the change",
	)
	flags.OptionalBoolVar(cmd.Flags(), &f.CreateMelt,
		"create-melt",
		"Keep a melt authority after melting",
	)
	registerMeltAuthorityAddressFlags(cmd.Flags(), &f.MeltAuthorityAddress, &f.AllowExternalMeltAuthorityAddress)

	return cmd
}

type P2SHMeltTokensFlags struct {
	WalletID                          string
	Token                             string
	RawAmount                         string
	DepositAddress                    flags.OptionalString
	ChangeAddress                     flags.OptionalString
	CreateMelt                        flags.OptionalBool
	MeltAuthorityAddress              flags.OptionalString
	AllowExternalMeltAuthorityAddress flags.OptionalBool
}

func (f *P2SHMeltTokensFlags) Validate() (headless.P2SHMeltTokensParams, error) {
	if len(f.WalletID) == 0 {
		return headless.P2SHMeltTokensParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.Token) == 0 {
		return headless.P2SHMeltTokensParams{}, flags.ArgMustBeSpecifiedError("TOKEN")
	}

	amount, err := flags.ParseUint32Arg("AMOUNT", f.RawAmount)
	if err != nil {
		return headless.P2SHMeltTokensParams{}, err
	}

	return headless.P2SHMeltTokensParams{
		WalletID:                          f.WalletID,
		Token:                             f.Token,
		Amount:                            amount,
		DepositAddress:                    f.DepositAddress.Get(),
		ChangeAddress:                     f.ChangeAddress.Get(),
		CreateMelt:                        f.CreateMelt.Get(),
		MeltAuthorityAddress:              f.MeltAuthorityAddress.Get(),
		AllowExternalMeltAuthorityAddress: f.AllowExternalMeltAuthorityAddress.Get(),
	}, nil
}
