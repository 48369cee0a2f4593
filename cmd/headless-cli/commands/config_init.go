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
	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/printer"
	"github.com/r4mmer/headless-cli/config"
	"github.com/r4mmer/headless-cli/paths"

	"github.com/spf13/cobra"
)

var (
	initConfigLong = cli.LongDesc(`
		Write the default configuration to the configuration file. An existing
		file is only replaced with --force.
	`)

	initConfigExample = cli.Examples(`
		# Write the default configuration
		{{.Software}} config init

		# Replace the existing configuration
		{{.Software}} config init --force

		# Write the default configuration in a custom home
		{{.Software}} config init --home PATH_TO_HOME
	`)
)

type InitConfigResponse struct {
	Path string `json:"path"`
}

type InitConfigHandler func(home string, f *InitConfigFlags) (*InitConfigResponse, error)

func NewCmdConfigInit(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(home string, f *InitConfigFlags) (*InitConfigResponse, error) {
		path, err := config.WriteDefault(paths.New(home), f.Force)
		if err != nil {
			return nil, err
		}
		return &InitConfigResponse{
			Path: path,
		}, nil
	}

	return BuildCmdConfigInit(w, h, rf)
}

func BuildCmdConfigInit(w io.Writer, handler InitConfigHandler, rf *RootFlags) *cobra.Command {
	f := &InitConfigFlags{}

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Write the default configuration file",
		Long:    initConfigLong,
		Example: initConfigExample,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := handler(rf.Home, f)
			if err != nil {
				return err
			}

			switch rf.Output {
			case flags.InteractiveOutput:
				PrintInitConfigResponse(w, resp)
			case flags.JSONOutput:
				return printer.FprintJSON(w, resp)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&f.Force,
		"force", "f",
		false,
		"Overwrite the existing configuration file",
	)

	return cmd
}

type InitConfigFlags struct {
	Force bool
}

func PrintInitConfigResponse(w io.Writer, resp *InitConfigResponse) {
	p := printer.NewInteractivePrinter(w)

	str := p.String()
	defer p.Print(str)

	str.CheckMark().Text("The configuration file has been written at: ").SuccessText(resp.Path).NextLine()
}
