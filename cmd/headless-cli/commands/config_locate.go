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
	"github.com/r4mmer/headless-cli/paths"

	"github.com/spf13/cobra"
)

var (
	locateConfigLong = cli.LongDesc(`
		Locate the configuration file, and tell whether it exists.
	`)

	locateConfigExample = cli.Examples(`
		# Locate the configuration file
		{{.Software}} config locate
	`)
)

type LocateConfigResponse struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

type LocateConfigHandler func(home string) (*LocateConfigResponse, error)

func NewCmdConfigLocate(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(home string) (*LocateConfigResponse, error) {
		p := paths.New(home)

		if path, found := p.LookupConfigFile(); found {
			return &LocateConfigResponse{
				Path:   path,
				Exists: true,
			}, nil
		}

		path, err := p.ConfigFile()
		if err != nil {
			return nil, err
		}
		return &LocateConfigResponse{
			Path: path,
		}, nil
	}

	return BuildCmdConfigLocate(w, h, rf)
}

func BuildCmdConfigLocate(w io.Writer, handler LocateConfigHandler, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "locate",
		Short:   "Locate the configuration file",
		Long:    locateConfigLong,
		Example: locateConfigExample,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := handler(rf.Home)
			if err != nil {
				return err
			}

			switch rf.Output {
			case flags.InteractiveOutput:
				PrintLocateConfigResponse(w, resp)
			case flags.JSONOutput:
				return printer.FprintJSON(w, resp)
			}
			return nil
		},
	}

	return cmd
}

func PrintLocateConfigResponse(w io.Writer, resp *LocateConfigResponse) {
	p := printer.NewInteractivePrinter(w)

	str := p.String()
	defer p.Print(str)

	str.Text("The configuration file is located at: ").SuccessText(resp.Path).NextLine()
	if !resp.Exists {
		str.WarningBangMark().WarningText("It doesn't exist yet. Run ").Code(cli.Software + " config init").WarningText(" to create it.").NextLine()
	}
}
