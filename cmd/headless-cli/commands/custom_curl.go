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
	"fmt"
	"io"

	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/cli"
	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/flags"
	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/printer"
	"github.com/r4mmer/headless-cli/headless"

	"github.com/spf13/cobra"
)

var (
	curlLong = cli.LongDesc(`
		Print the curl command calling the given path of the headless service
		for the wallet. Nothing is sent to the service.
	`)

	curlExample = cli.Examples(`
		# Print the command fetching the status of a wallet
		{{.Software}} custom curl /wallet/status --wallet-id WALLET_ID

		# Print the command posting an empty JSON body
		{{.Software}} custom curl /wallet/simple-send-tx --wallet-id WALLET_ID --post --data
	`)
)

type CurlResponse struct {
	Command string `json:"command"`
}

type CurlHandler func(p headless.CurlParams) (*CurlResponse, error)

func NewCmdCustomCurl(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(p headless.CurlParams) (*CurlResponse, error) {
		command, err := headless.Curl(rf.Host, p)
		if err != nil {
			return nil, fmt.Errorf("couldn't build the curl command: %w", err)
		}
		return &CurlResponse{
			Command: command,
		}, nil
	}

	return BuildCmdCustomCurl(w, h, rf)
}

func BuildCmdCustomCurl(w io.Writer, handler CurlHandler, rf *RootFlags) *cobra.Command {
	f := &CustomCurlFlags{}

	cmd := &cobra.Command{
		Use:     "curl PATH",
		Short:   "Print the curl command calling the service",
		Long:    curlLong,
		Example: curlExample,
		RunE: func(_ *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "PATH"); err != nil {
				return err
			}
			f.Path = args[0]

			req, err := f.Validate()
			if err != nil {
				return err
			}

			resp, err := handler(req)
			if err != nil {
				return err
			}

			switch rf.Output {
			case flags.InteractiveOutput:
				_, _ = fmt.Fprintln(w, resp.Command)
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
	cmd.Flags().BoolVarP(&f.Post,
		"post", "p",
		false,
		"Use the POST method",
	)
	cmd.Flags().BoolVarP(&f.Data,
		"data", "d",
		false,
		"Send an empty JSON body, only with --post",
	)

	return cmd
}

type CustomCurlFlags struct {
	WalletID string
	Path     string
	Post     bool
	Data     bool
}

func (f *CustomCurlFlags) Validate() (headless.CurlParams, error) {
	if len(f.WalletID) == 0 {
		return headless.CurlParams{}, flags.MustBeSpecifiedError("wallet-id")
	}

	if len(f.Path) == 0 {
		return headless.CurlParams{}, flags.ArgMustBeSpecifiedError("PATH")
	}

	return headless.CurlParams{
		WalletID: f.WalletID,
		Path:     f.Path,
		Post:     f.Post,
		Data:     f.Data,
	}, nil
}
