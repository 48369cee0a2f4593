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
	"strconv"
	"strings"

	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/cli"
	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/flags"
	"github.com/r4mmer/headless-cli/headless"

	"github.com/spf13/cobra"
)

var (
	p2shTxProposalLong = cli.LongDesc(`
		Create a transaction proposal. An output is specified as ADDRESS:VALUE,
		or ADDRESS:VALUE:TOKEN for a custom token. An input is specified as
		HASH:INDEX. Without inputs, the service selects them.
	`)

	p2shTxProposalExample = cli.Examples(`
		# Propose to send 10 units of the native token
		{{.Software}} wallet p2sh tx-proposal --wallet-id WALLET_ID --to ADDRESS:10

		# Propose to send a custom token from a given input
		{{.Software}} wallet p2sh tx-proposal --wallet-id WALLET_ID --to ADDRESS:10:TOKEN --input TX_ID:0
	`)
)

func BuildCmdP2SHTxProposal(w io.Writer, handler CallHandler, wf *WalletFlags) *cobra.Command {
	f := &P2SHTxProposalFlags{}

	cmd := &cobra.Command{
		Use:     "tx-proposal",
		Short:   "Create a transaction proposal",
		Long:    p2shTxProposalLong,
		Example: p2shTxProposalExample,
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

	cmd.Flags().StringArrayVar(&f.RawOutputs,
		"to",
		nil,
		"Output of the transaction, as ADDRESS:VALUE[:TOKEN], can be repeated",
	)
	cmd.Flags().StringArrayVar(&f.RawInputs,
		"input",
		nil,
		"Input of the transaction, as HASH:INDEX, can be repeated",
	)
	flags.OptionalStringVar(cmd.Flags(), &f.ChangeAddress,
		"change-address",
		"Address receiving the change",
	)

	return cmd
}

type P2SHTxProposalFlags struct {
	WalletID      string
	RawOutputs    []string
	RawInputs     []string
	ChangeAddress flags.OptionalString
}

func (f *P2SHTxProposalFlags) Validate() (headless.TxProposalParams, error) {
	if len(f.WalletID) == 0 {
		return headless.TxProposalParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.RawOutputs) == 0 {
		return headless.TxProposalParams{}, flags.MustBeSpecifiedError("to")
	}

	outputs := make([]headless.ProposalOutput, 0, len(f.RawOutputs))
	for _, raw := range f.RawOutputs {
		output, err := parseProposalOutput(raw)
		if err != nil {
			return headless.TxProposalParams{}, err
		}
		outputs = append(outputs, output)
	}

	var inputs []headless.ProposalInput
	if len(f.RawInputs) != 0 {
		inputs = make([]headless.ProposalInput, 0, len(f.RawInputs))
		for _, raw := range f.RawInputs {
			input, err := parseProposalInput(raw)
			if err != nil {
				return headless.TxProposalParams{}, err
			}
			inputs = append(inputs, input)
		}
	}

	return headless.TxProposalParams{
		WalletID:      f.WalletID,
		Outputs:       outputs,
		Inputs:        inputs,
		ChangeAddress: f.ChangeAddress.Get(),
	}, nil
}

func parseProposalOutput(raw string) (headless.ProposalOutput, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return headless.ProposalOutput{}, flags.InvalidFlagFormatError("to")
	}
	if len(parts[0]) == 0 {
		return headless.ProposalOutput{}, flags.InvalidFlagFormatError("to")
	}

	value, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return headless.ProposalOutput{}, flags.InvalidFlagFormatError("to")
	}

	output := headless.ProposalOutput{
		Address: parts[0],
		Value:   uint32(value),
	}
	if len(parts) == 3 {
		if len(parts[2]) == 0 {
			return headless.ProposalOutput{}, flags.InvalidFlagFormatError("to")
		}
		token := parts[2]
		output.Token = &token
	}
	return output, nil
}

func parseProposalInput(raw string) (headless.ProposalInput, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 || len(parts[0]) == 0 {
		return headless.ProposalInput{}, flags.InvalidFlagFormatError("input")
	}

	index, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return headless.ProposalInput{}, flags.InvalidFlagFormatError("input")
	}

	return headless.ProposalInput{
		Hash:  parts[0],
		Index: uint32(index),
	}, nil
}
