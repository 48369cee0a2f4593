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
	p2shGetMySignaturesLong = cli.LongDesc(`
		Sign a transaction proposal with the keys of the wallet. The returned
		signatures are sent to the participant assembling the transaction.
	`)

	p2shGetMySignaturesExample = cli.Examples(`
		# Sign a transaction proposal
		{{.Software}} wallet p2sh get-my-signatures TX_HEX --wallet-id WALLET_ID
	`)

	p2shSignLong = cli.LongDesc(`
		Assemble the signatures collected from the participants into the
		transaction proposal.
	`)

	p2shSignExample = cli.Examples(`
		# Assemble the signatures of two participants
		{{.Software}} wallet p2sh sign TX_HEX --wallet-id WALLET_ID --signature SIGNATURE_1 --signature SIGNATURE_2
	`)

	p2shSignAndPushLong = cli.LongDesc(`
		Assemble the signatures collected from the participants into the
		transaction proposal, then push the transaction to the network.
	`)

	p2shSignAndPushExample = cli.Examples(`
		# Assemble the signatures of two participants and push the transaction
		{{.Software}} wallet p2sh sign-and-push TX_HEX --wallet-id WALLET_ID --signature SIGNATURE_1 --signature SIGNATURE_2
	`)
)

func BuildCmdP2SHGetMySignatures(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &P2SHGetMySignaturesFlags{}

	cmd := &cobra.Command{
		Use:     "get-my-signatures TX_HEX",
		Short:   "Sign a transaction proposal",
		Long:    p2shGetMySignaturesLong,
		Example: p2shGetMySignaturesExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "TX_HEX"); err != nil {
				return err
			}
			f.WalletID = wf.WalletID
			f.TxHex = args[0]

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

type P2SHGetMySignaturesFlags struct {
	WalletID string
	TxHex    string
}

func (f *P2SHGetMySignaturesFlags) Validate() (headless.GetMySignaturesParams, error) {
	if len(f.WalletID) == 0 {
		return headless.GetMySignaturesParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.TxHex) == 0 {
		return headless.GetMySignaturesParams{}, flags.ArgMustBeSpecifiedError("TX_HEX")
	}

	return headless.GetMySignaturesParams{
		WalletID: f.WalletID,
		TxHex:    f.TxHex,
	}, nil
}

// BuildCmdP2SHSign builds `sign`, or `sign-and-push` when push is set.
func BuildCmdP2SHSign(w io.Writer, handler CallHandler, wf *WalletFlags, push bool) *cobra.Command {
	f := &P2SHSignFlags{Push: push}

	cmd := &cobra.Command{
		Use:     "sign TX_HEX",
		Short:   "Assemble the signatures of a transaction proposal",
		Long:    p2shSignLong,
		Example: p2shSignExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "TX_HEX"); err != nil {
				return err
			}
			f.WalletID = wf.WalletID
			f.TxHex = args[0]

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

	if push {
		cmd.Use = "sign-and-push TX_HEX"
		cmd.Short = "Assemble the signatures of a transaction proposal and push it"
		cmd.Long = p2shSignAndPushLong
		cmd.Example = p2shSignAndPushExample
	}

	cmd.Flags().StringArrayVarP(&f.Signatures,
		"signature", "s",
		nil,
		"Signature of a participant, can be repeated",
	)

	return cmd
}

type P2SHSignFlags struct {
	WalletID   string
	TxHex      string
	Signatures []string
	Push       bool
}

func (f *P2SHSignFlags) Validate() (headless.SignProposalParams, error) {
	if len(f.WalletID) == 0 {
		return headless.SignProposalParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.TxHex) == 0 {
		return headless.SignProposalParams{}, flags.ArgMustBeSpecifiedError("TX_HEX")
	}

	if len(f.Signatures) == 0 {
		return headless.SignProposalParams{}, flags.MustBeSpecifiedError("signature")
	}

	return headless.SignProposalParams{
		WalletID:   f.WalletID,
		TxHex:      f.TxHex,
		Signatures: f.Signatures,
		Push:       f.Push,
	}, nil
}
