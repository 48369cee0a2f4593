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
	walletCreateTokenLong = cli.LongDesc(`
		Create a custom token. By default, the service gives the mint and melt
		authorities to the wallet.

		The data outputs are added to the transaction in the given order.
	`)

	walletCreateTokenExample = cli.Examples(`
		# Create 100 units of a token
		{{.Software}} wallet create-token "My token" MTK 100 --wallet-id WALLET_ID

		# Create a token without melt authority, with data outputs
		{{.Software}} wallet create-token "My token" MTK 100 --wallet-id WALLET_ID --create-melt=false --data first --data second
	`)

	walletMintTokensExample = cli.Examples(`
		# Mint 10 units of a token
		{{.Software}} wallet mint-tokens TOKEN 10 --wallet-id WALLET_ID

		# Mint 10 units of a token on a given address
		{{.Software}} wallet mint-tokens TOKEN 10 --wallet-id WALLET_ID --address ADDRESS
	`)

	walletMeltTokensExample = cli.Examples(`
		# Melt 10 units of a token
		{{.Software}} wallet melt-tokens TOKEN 10 --wallet-id WALLET_ID

		# Melt 10 units of a token and send the deposit back to a given address
		{{.Software}} wallet melt-tokens TOKEN 10 --wallet-id WALLET_ID --deposit-address ADDRESS
	`)

	walletCreateNFTLong = cli.LongDesc(`
		Create an NFT. The data is stored in the first output of the transaction,
		usually a link to the NFT content.
	`)

	walletCreateNFTExample = cli.Examples(`
		# Create an NFT
		{{.Software}} wallet create-nft "My NFT" MNFT 1 ipfs://CID --wallet-id WALLET_ID
	`)
)

// TokenAuthorityFlags holds the flags controlling the mint and melt
// authorities of a token creation.
type TokenAuthorityFlags struct {
	CreateMint                        flags.OptionalBool
	MintAuthorityAddress              flags.OptionalString
	AllowExternalMintAuthorityAddress flags.OptionalBool
	CreateMelt                        flags.OptionalBool
	MeltAuthorityAddress              flags.OptionalString
	AllowExternalMeltAuthorityAddress flags.OptionalBool
}

func (a *TokenAuthorityFlags) register(fs *pflag.FlagSet) {
	flags.OptionalBoolVar(fs, &a.CreateMint,
		"create-mint",
		"Create a mint authority, the service defaults to true",
	)
	registerMintAuthorityAddressFlags(fs, &a.MintAuthorityAddress, &a.AllowExternalMintAuthorityAddress)
	flags.OptionalBoolVar(fs, &a.CreateMelt,
		"create-melt",
		"Create a melt authority, the service defaults to true",
	)
	registerMeltAuthorityAddressFlags(fs, &a.MeltAuthorityAddress, &a.AllowExternalMeltAuthorityAddress)
}

func (a *TokenAuthorityFlags) authorities() headless.TokenAuthorities {
	return headless.TokenAuthorities{
		CreateMint:                        a.CreateMint.Get(),
		MintAuthorityAddress:              a.MintAuthorityAddress.Get(),
		AllowExternalMintAuthorityAddress: a.AllowExternalMintAuthorityAddress.Get(),
		CreateMelt:                        a.CreateMelt.Get(),
		MeltAuthorityAddress:              a.MeltAuthorityAddress.Get(),
		AllowExternalMeltAuthorityAddress: a.AllowExternalMeltAuthorityAddress.Get(),
	}
}

func registerMintAuthorityAddressFlags(fs *pflag.FlagSet, address *flags.OptionalString, allowExternal *flags.OptionalBool) {
	flags.OptionalStringVar(fs, address,
		"mint-authority-address",
		"Address receiving the mint authority",
	)
	flags.OptionalBoolVar(fs, allowExternal,
		"allow-external-mint-authority-address",
		"Allow the mint authority address to be outside of the wallet",
	)
}

func registerMeltAuthorityAddressFlags(fs *pflag.FlagSet, address *flags.OptionalString, allowExternal *flags.OptionalBool) {
	flags.OptionalStringVar(fs, address,
		"melt-authority-address",
		"Address receiving the melt authority",
	)
	flags.OptionalBoolVar(fs, allowExternal,
		"allow-external-melt-authority-address",
		"Allow the melt authority address to be outside of the wallet",
	)
}

// dataOrNil keeps an unset --data flag out of the request.
func dataOrNil(data []string) []string {
	if len(data) == 0 {
		return nil
	}
	return data
}

func BuildCmdWalletCreateToken(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &WalletCreateTokenFlags{}

	cmd := &cobra.Command{
		Use:     "create-token NAME SYMBOL AMOUNT",
		Short:   "Create a custom token",
		Long:    walletCreateTokenLong,
		Example: walletCreateTokenExample,
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
	cmd.Flags().StringArrayVarP(&f.Data,
		"data", "d",
		nil,
		"Data output to add to the transaction, can be repeated",
	)

	return cmd
}

type WalletCreateTokenFlags struct {
	WalletID      string
	Name          string
	Symbol        string
	RawAmount     string
	Address       flags.OptionalString
	ChangeAddress flags.OptionalString
	Authorities   TokenAuthorityFlags
	Data          []string
}

func (f *WalletCreateTokenFlags) Validate() (headless.CreateTokenParams, error) {
	if len(f.WalletID) == 0 {
		return headless.CreateTokenParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.Name) == 0 {
		return headless.CreateTokenParams{}, flags.ArgMustBeSpecifiedError("NAME")
	}

	if len(f.Symbol) == 0 {
		return headless.CreateTokenParams{}, flags.ArgMustBeSpecifiedError("SYMBOL")
	}

	amount, err := flags.ParseUint32Arg("AMOUNT", f.RawAmount)
	if err != nil {
		return headless.CreateTokenParams{}, err
	}

	return headless.CreateTokenParams{
		WalletID:      f.WalletID,
		Name:          f.Name,
		Symbol:        f.Symbol,
		Amount:        amount,
		Address:       f.Address.Get(),
		ChangeAddress: f.ChangeAddress.Get(),
		Authorities:   f.Authorities.authorities(),
		Data:          dataOrNil(f.Data),
	}, nil
}

func BuildCmdWalletMintTokens(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &WalletMintTokensFlags{}

	cmd := &cobra.Command{
		Use:     "mint-tokens TOKEN AMOUNT",
		Short:   "Mint units of a custom token",
		Long:    "Mint units of a custom token the wallet holds the mint authority of.",
		Example: walletMintTokensExample,
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
	registerMintAuthorityAddressFlags(cmd.Flags(), &f.MintAuthorityAddress, &f.AllowExternalMintAuthorityAddress)
	flags.OptionalBoolVarP(cmd.Flags(), &f.UnshiftData,
		"unshift-data", "u",
		"Put the data outputs first in the transaction",
	)
	cmd.Flags().StringArrayVarP(&f.Data,
		"data", "d",
		nil,
		"Data output to add to the transaction, can be repeated",
	)

	return cmd
}

type WalletMintTokensFlags struct {
	WalletID                          string
	Token                             string
	RawAmount                         string
	Address                           flags.OptionalString
	ChangeAddress                     flags.OptionalString
	MintAuthorityAddress              flags.OptionalString
	AllowExternalMintAuthorityAddress flags.OptionalBool
	UnshiftData                       flags.OptionalBool
	Data                              []string
}

func (f *WalletMintTokensFlags) Validate() (headless.MintTokensParams, error) {
	if len(f.WalletID) == 0 {
		return headless.MintTokensParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.Token) == 0 {
		return headless.MintTokensParams{}, flags.ArgMustBeSpecifiedError("TOKEN")
	}

	amount, err := flags.ParseUint32Arg("AMOUNT", f.RawAmount)
	if err != nil {
		return headless.MintTokensParams{}, err
	}

	return headless.MintTokensParams{
		WalletID:                          f.WalletID,
		Token:                             f.Token,
		Amount:                            amount,
		Address:                           f.Address.Get(),
		ChangeAddress:                     f.ChangeAddress.Get(),
		MintAuthorityAddress:              f.MintAuthorityAddress.Get(),
		AllowExternalMintAuthorityAddress: f.AllowExternalMintAuthorityAddress.Get(),
		UnshiftData:                       f.UnshiftData.Get(),
		Data:                              dataOrNil(f.Data),
	}, nil
}

func BuildCmdWalletMeltTokens(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &WalletMeltTokensFlags{}

	cmd := &cobra.Command{
		Use:     "melt-tokens TOKEN AMOUNT",
		Short:   "Melt units of a custom token",
		Long:    "Melt units of a custom token the wallet holds the melt authority of.",
		Example: walletMeltTokensExample,
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
		"Address the tokens are melted from",
	)
	flags.OptionalStringVar(cmd.Flags(), &f.DepositAddress,
		"deposit-address",
		"Address receiving the deposit released by the melt",
	)
	flags.OptionalStringVar(cmd.Flags(), &f.ChangeAddress,
		"change-address",
		"Address receiving the change",
	)
	registerMeltAuthorityAddressFlags(cmd.Flags(), &f.MeltAuthorityAddress, &f.AllowExternalMeltAuthorityAddress)
	flags.OptionalBoolVarP(cmd.Flags(), &f.UnshiftData,
		"unshift-data", "u",
		"Put the data outputs first in the transaction",
	)
	cmd.Flags().StringArrayVarP(&f.Data,
		"data", "d",
		nil,
		"Data output to add to the transaction, can be repeated",
	)

	return cmd
}

type WalletMeltTokensFlags struct {
	WalletID                          string
	Token                             string
	RawAmount                         string
	Address                           flags.OptionalString
	DepositAddress                    flags.OptionalString
	ChangeAddress                     flags.OptionalString
	MeltAuthorityAddress              flags.OptionalString
	AllowExternalMeltAuthorityAddress flags.OptionalBool
	UnshiftData                       flags.OptionalBool
	Data                              []string
}

func (f *WalletMeltTokensFlags) Validate() (headless.MeltTokensParams, error) {
	if len(f.WalletID) == 0 {
		return headless.MeltTokensParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.Token) == 0 {
		return headless.MeltTokensParams{}, flags.ArgMustBeSpecifiedError("TOKEN")
	}

	amount, err := flags.ParseUint32Arg("AMOUNT", f.RawAmount)
	if err != nil {
		return headless.MeltTokensParams{}, err
	}

	return headless.MeltTokensParams{
		WalletID:                          f.WalletID,
		Token:                             f.Token,
		Amount:                            amount,
		Address:                           f.Address.Get(),
		DepositAddress:                    f.DepositAddress.Get(),
		ChangeAddress:                     f.ChangeAddress.Get(),
		MeltAuthorityAddress:              f.MeltAuthorityAddress.Get(),
		AllowExternalMeltAuthorityAddress: f.AllowExternalMeltAuthorityAddress.Get(),
		UnshiftData:                       f.UnshiftData.Get(),
		Data:                              dataOrNil(f.Data),
	}, nil
}

func BuildCmdWalletCreateNFT(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &WalletCreateNFTFlags{}

	cmd := &cobra.Command{
		Use:     "create-nft NAME SYMBOL AMOUNT DATA",
		Short:   "Create an NFT",
		Long:    walletCreateNFTLong,
		Example: walletCreateNFTExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "NAME", "SYMBOL", "AMOUNT", "DATA"); err != nil {
				return err
			}
			f.WalletID = wf.WalletID
			f.Name = args[0]
			f.Symbol = args[1]
			f.RawAmount = args[2]
			f.Data = args[3]

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
		"Address receiving the created NFT",
	)
	flags.OptionalStringVar(cmd.Flags(), &f.ChangeAddress,
		"change-address",
		"Address receiving the change",
	)
	f.Authorities.register(cmd.Flags())

	return cmd
}

type WalletCreateNFTFlags struct {
	WalletID      string
	Name          string
	Symbol        string
	RawAmount     string
	Data          string
	Address       flags.OptionalString
	ChangeAddress flags.OptionalString
	Authorities   TokenAuthorityFlags
}

func (f *WalletCreateNFTFlags) Validate() (headless.CreateNFTParams, error) {
	if len(f.WalletID) == 0 {
		return headless.CreateNFTParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.Name) == 0 {
		return headless.CreateNFTParams{}, flags.ArgMustBeSpecifiedError("NAME")
	}

	if len(f.Symbol) == 0 {
		return headless.CreateNFTParams{}, flags.ArgMustBeSpecifiedError("SYMBOL")
	}

	amount, err := flags.ParseUint32Arg("AMOUNT", f.RawAmount)
	if err != nil {
		return headless.CreateNFTParams{}, err
	}

	if len(f.Data) == 0 {
		return headless.CreateNFTParams{}, flags.ArgMustBeSpecifiedError("DATA")
	}

	return headless.CreateNFTParams{
		WalletID:      f.WalletID,
		Name:          f.Name,
		Symbol:        f.Symbol,
		Amount:        amount,
		Data:          f.Data,
		Address:       f.Address.Get(),
		ChangeAddress: f.ChangeAddress.Get(),
		Authorities:   f.Authorities.authorities(),
	}, nil
}
