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
	configurationStringLong = cli.LongDesc(`
		Get the configuration string of a token, used to register the token in
		other wallets.
	`)

	configurationStringExample = cli.Examples(`
		# Get the configuration string of a token
		{{.Software}} configuration-string TOKEN
	`)
)

func NewCmdConfigurationString(w io.Writer, rf *RootFlags) *cobra.Command {
	return BuildCmdConfigurationString(w, NewCallHandler(rf))
}

func BuildCmdConfigurationString(w io.Writer, handler CallHandler) *cobra.Command {
	f := &ConfigurationStringFlags{}

	cmd := &cobra.Command{
		Use:     "configuration-string TOKEN",
		Short:   "Get the configuration string of a token",
		Long:    configurationStringLong,
		Example: configurationStringExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "TOKEN"); err != nil {
				return err
			}
			f.Token = args[0]

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

type ConfigurationStringFlags struct {
	Token string
}

func (f *ConfigurationStringFlags) Validate() (headless.ConfigurationStringParams, error) {
	if len(f.Token) == 0 {
		return headless.ConfigurationStringParams{}, flags.ArgMustBeSpecifiedError("TOKEN")
	}

	return headless.ConfigurationStringParams{
		Token: f.Token,
	}, nil
}
