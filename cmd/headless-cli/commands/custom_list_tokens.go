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
	"encoding/json"
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
	listTokensLong = cli.LongDesc(`
		List the tokens that ever touched an address of the wallet, according to
		its transaction history. The native token is reported as "00".
	`)

	listTokensExample = cli.Examples(`
		# List the tokens of a wallet
		{{.Software}} custom list-tokens --wallet-id WALLET_ID
	`)
)

type ListTokensHandler func(ctx context.Context, p headless.ListTokensParams) ([]string, error)

func NewCmdCustomListTokens(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context, p headless.ListTokensParams) ([]string, error) {
		client, log, err := newHeadlessClient(rf)
		if err != nil {
			return nil, err
		}
		defer vgzap.Sync(log)()

		tokens, err := headless.ListTokens(ctx, client, p, log)
		if err != nil {
			return nil, fmt.Errorf("couldn't list the tokens: %w", err)
		}
		return tokens, nil
	}

	return BuildCmdCustomListTokens(w, h, rf)
}

func BuildCmdCustomListTokens(w io.Writer, handler ListTokensHandler, rf *RootFlags) *cobra.Command {
	f := &CustomListTokensFlags{}

	cmd := &cobra.Command{
		Use:     "list-tokens",
		Short:   "List the tokens of a wallet",
		Long:    listTokensLong,
		Example: listTokensExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := f.Validate()
			if err != nil {
				return err
			}

			tokens, err := handler(cmd.Context(), req)
			if err != nil {
				return err
			}

			switch rf.Output {
			case flags.InteractiveOutput:
				return PrintListTokensResponse(w, tokens)
			case flags.JSONOutput:
				return printer.FprintJSON(w, tokens)
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

type CustomListTokensFlags struct {
	WalletID string
}

func (f *CustomListTokensFlags) Validate() (headless.ListTokensParams, error) {
	if len(f.WalletID) == 0 {
		return headless.ListTokensParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	return headless.ListTokensParams{
		WalletID: f.WalletID,
	}, nil
}

// PrintListTokensResponse prints the tokens as a compact JSON array, so the
// output stays usable by scripts.
func PrintListTokensResponse(w io.Writer, tokens []string) error {
	if tokens == nil {
		tokens = []string{}
	}

	buf, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("couldn't format the tokens: %w", err)
	}

	_, _ = fmt.Fprintln(w, string(buf))
	return nil
}
