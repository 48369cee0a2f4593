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
	multisigPubkeyLong = cli.LongDesc(`
		Get the multisig public key (xpub) derived from a seed configured on the
		service. It's shared with the other participants of a multisig wallet.
	`)

	multisigPubkeyExample = cli.Examples(`
		# Get the multisig public key of a seed
		{{.Software}} multisig-pubkey SEED_KEY
	`)
)

func NewCmdMultisigPubkey(w io.Writer, rf *RootFlags) *cobra.Command {
	return BuildCmdMultisigPubkey(w, NewCallHandler(rf))
}

func BuildCmdMultisigPubkey(w io.Writer, handler CallHandler) *cobra.Command {
	f := &MultisigPubkeyFlags{}

	cmd := &cobra.Command{
		Use:     "multisig-pubkey SEED_KEY",
		Short:   "Get the multisig public key of a seed",
		Long:    multisigPubkeyLong,
		Example: multisigPubkeyExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.RequireArgs(args, "SEED_KEY"); err != nil {
				return err
			}
			f.SeedKey = args[0]

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

	flags.OptionalStringVarP(cmd.Flags(), &f.Passphrase,
		"passphrase", "p",
		"Passphrase of the seed",
	)

	return cmd
}

type MultisigPubkeyFlags struct {
	SeedKey    string
	Passphrase flags.OptionalString
}

func (f *MultisigPubkeyFlags) Validate() (headless.MultisigPubkeyParams, error) {
	if len(f.SeedKey) == 0 {
		return headless.MultisigPubkeyParams{}, flags.ArgMustBeSpecifiedError("SEED_KEY")
	}

	return headless.MultisigPubkeyParams{
		SeedKey:    f.SeedKey,
		Passphrase: f.Passphrase.Get(),
	}, nil
}
