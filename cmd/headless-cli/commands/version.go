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
	"github.com/r4mmer/headless-cli/version"

	"github.com/spf13/cobra"
)

var (
	versionLong = cli.LongDesc(`
		Get the version of the software, and the commit it has been built from.
	`)

	versionExample = cli.Examples(`
		# Get the version of the software
		{{.Software}} version
	`)
)

type VersionResponse struct {
	Version string `json:"version"`
	Hash    string `json:"hash"`
}

type VersionHandler func() *VersionResponse

func NewCmdVersion(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func() *VersionResponse {
		return &VersionResponse{
			Version: version.Get(),
			Hash:    version.GetCommitHash(),
		}
	}

	return BuildCmdVersion(w, h, rf)
}

func BuildCmdVersion(w io.Writer, handler VersionHandler, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Get the version of the software",
		Long:    versionLong,
		Example: versionExample,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			resp := handler()

			switch rf.Output {
			case flags.InteractiveOutput:
				PrintVersionResponse(w, resp)
			case flags.JSONOutput:
				return printer.FprintJSON(w, resp)
			}
			return nil
		},
	}

	return cmd
}

func PrintVersionResponse(w io.Writer, resp *VersionResponse) {
	p := printer.NewInteractivePrinter(w)

	str := p.String()
	defer p.Print(str)

	str.Text(cli.Software).Text(" ").Bold(resp.Version)
	if len(resp.Hash) != 0 {
		str.Text(" (").Text(resp.Hash).Text(")")
	}
	str.NextLine()
}
