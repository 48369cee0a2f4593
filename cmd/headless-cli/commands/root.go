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
	"time"

	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/cli"
	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/flags"
	"github.com/r4mmer/headless-cli/config"
	"github.com/r4mmer/headless-cli/paths"

	"github.com/spf13/cobra"
)

var rootLong = cli.LongDesc(`
	Command line client for the headless wallet service. Every command maps to
	one call to the service, and the response is printed as-is.

	Settings are read from the command line flags, then from the environment
	variables prefixed with HEADLESS_, then from the configuration file.
`)

type RootFlags struct {
	Home     string
	Host     string
	Debug    bool
	Output   string
	LogLevel string
	Timeout  time.Duration
}

func (rf *RootFlags) apply(cfg *config.Config) {
	rf.Host = cfg.Host
	rf.Debug = cfg.Debug
	rf.Output = cfg.Output
	rf.LogLevel = cfg.Level.String()
	rf.Timeout = cfg.Timeout.Get()
}

func NewCmdRoot(w io.Writer) *cobra.Command {
	return BuildCmdRoot(w, &RootFlags{})
}

func BuildCmdRoot(w io.Writer, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:           cli.Software,
		Short:         "Command line client for the headless wallet",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), paths.New(rf.Home))
			if err != nil {
				return err
			}
			rf.apply(cfg)

			return flags.ValidateOutput(rf.Output)
		},
	}

	cmd.PersistentFlags().StringVar(&rf.Home,
		"home",
		"",
		"Specify the location of a custom home for the configuration file",
	)
	cmd.PersistentFlags().StringVar(&rf.Host,
		"host",
		config.DefaultHost,
		"URL of the headless wallet service",
	)
	cmd.PersistentFlags().BoolVar(&rf.Debug,
		"debug",
		false,
		"Log every request and response sent to the service",
	)
	cmd.PersistentFlags().StringVarP(&rf.Output,
		"output", "o",
		config.DefaultOutput,
		"Specify the output format: json,interactive",
	)
	cmd.PersistentFlags().StringVar(&rf.LogLevel,
		"level",
		config.DefaultLevel,
		"Set the log level: debug,info,warn,error",
	)

	autoCompleteOutput(cmd)
	autoCompleteLogLevel(cmd)

	// Root commands
	cmd.AddCommand(NewCmdStart(w, rf))
	cmd.AddCommand(NewCmdMultisigPubkey(w, rf))
	cmd.AddCommand(NewCmdConfigurationString(w, rf))
	cmd.AddCommand(NewCmdVersion(w, rf))

	// Sub-commands
	cmd.AddCommand(NewCmdWallet(w, rf))
	cmd.AddCommand(NewCmdHSM(w, rf))
	cmd.AddCommand(NewCmdFireblocks(w, rf))
	cmd.AddCommand(NewCmdCustom(w, rf))
	cmd.AddCommand(NewCmdConfig(w, rf))
	cmd.AddCommand(NewCmdShell(w))

	return cmd
}
