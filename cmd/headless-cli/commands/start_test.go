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

package cmd_test

import (
	"bytes"
	"io"
	"testing"

	cmd "github.com/r4mmer/headless-cli/cmd/headless-cli/commands"
	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/flags"
	"github.com/r4mmer/headless-cli/headless"
	vgrand "github.com/r4mmer/headless-cli/libs/rand"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartFlags(t *testing.T) {
	t.Run("Valid flags succeeds", testStartFlagsValidFlagsSucceeds)
	t.Run("Missing wallet ID fails", testStartFlagsMissingWalletIDFails)
	t.Run("Missing seed key fails", testStartFlagsMissingSeedKeyFails)
}

func testStartFlagsValidFlagsSucceeds(t *testing.T) {
	// given
	walletID := vgrand.RandomStr(10)
	seedKey := vgrand.RandomStr(10)
	f := &cmd.StartFlags{
		WalletID: walletID,
		SeedKey:  seedKey,
	}

	// when
	req, err := f.Validate()

	// then
	require.NoError(t, err)
	assert.Equal(t, headless.StartParams{
		WalletID: walletID,
		SeedKey:  seedKey,
	}, req)
}

func testStartFlagsMissingWalletIDFails(t *testing.T) {
	// given
	f := &cmd.StartFlags{
		SeedKey: vgrand.RandomStr(10),
	}

	// when
	req, err := f.Validate()

	// then
	assert.ErrorIs(t, err, flags.MustBeSpecifiedError("wallet-id"))
	assert.Empty(t, req)
}

func testStartFlagsMissingSeedKeyFails(t *testing.T) {
	// given
	f := &cmd.StartFlags{
		WalletID: vgrand.RandomStr(10),
	}

	// when
	req, err := f.Validate()

	// then
	assert.ErrorIs(t, err, flags.MustBeSpecifiedError("seed-key"))
	assert.Empty(t, req)
}

func TestRootServiceCommands(t *testing.T) {
	walletID := vgrand.RandomStr(10)
	seedKey := vgrand.RandomStr(10)
	passphrase := vgrand.RandomStr(10)
	token := vgrand.RandomStr(20)
	hsmKey := vgrand.RandomStr(10)
	xpub := vgrand.RandomStr(64)

	tcs := []struct {
		name       string
		build      func(w io.Writer, handler cmd.CallHandler) *cobra.Command
		args       []string
		expectedOp headless.Operation
	}{
		{
			name:  "start with defaults",
			build: cmd.BuildCmdStart,
			expectedOp: headless.StartParams{
				WalletID: "default",
				SeedKey:  "default",
			},
		}, {
			name:  "start with every option",
			build: cmd.BuildCmdStart,
			args: []string{
				"--wallet-id", walletID,
				"--seed-key", seedKey,
				"-p", passphrase,
				"--scan-policy", "gap-limit",
				"--gap-limit", "20",
				"--policy-start-index", "0",
				"--policy-end-index", "10",
				"--history-sync-mode", "polling_http_api",
			},
			expectedOp: headless.StartParams{
				WalletID:         walletID,
				SeedKey:          seedKey,
				Passphrase:       &passphrase,
				ScanPolicy:       ptr("gap-limit"),
				GapLimit:         ptr(uint32(20)),
				PolicyStartIndex: ptr(uint32(0)),
				PolicyEndIndex:   ptr(uint32(10)),
				HistorySyncMode:  ptr("polling_http_api"),
			},
		}, {
			name:       "multisig-pubkey",
			build:      cmd.BuildCmdMultisigPubkey,
			args:       []string{seedKey, "--passphrase", passphrase},
			expectedOp: headless.MultisigPubkeyParams{SeedKey: seedKey, Passphrase: &passphrase},
		}, {
			name:       "configuration-string",
			build:      cmd.BuildCmdConfigurationString,
			args:       []string{token},
			expectedOp: headless.ConfigurationStringParams{Token: token},
		}, {
			name:       "hsm start",
			build:      cmd.BuildCmdHSMStart,
			args:       []string{hsmKey, "--wallet-id", walletID},
			expectedOp: headless.HSMStartParams{WalletID: walletID, HSMKey: hsmKey},
		}, {
			name:       "fireblocks start",
			build:      cmd.BuildCmdFireblocksStart,
			args:       []string{xpub},
			expectedOp: headless.FireblocksStartParams{WalletID: "default", XPub: xpub},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(tt *testing.T) {
			// given
			resp := `{"success":true}`
			recorder := newCallRecorder(resp)
			w := &bytes.Buffer{}
			c := tc.build(w, recorder.Handle)

			// when
			err := executeCmd(tt, c, tc.args...)

			// then
			require.NoError(tt, err)
			require.Len(tt, recorder.ops, 1)
			assert.Equal(tt, tc.expectedOp, recorder.ops[0])
			assert.Equal(tt, resp+"\n", w.String())
		})
	}
}

func TestRootServiceCommandsFailures(t *testing.T) {
	tcs := []struct {
		name          string
		build         func(w io.Writer, handler cmd.CallHandler) *cobra.Command
		args          []string
		expectedError error
	}{
		{
			name:          "start with empty wallet ID",
			build:         cmd.BuildCmdStart,
			args:          []string{"--wallet-id", ""},
			expectedError: flags.MustBeSpecifiedError("wallet-id"),
		}, {
			name:          "start with invalid gap limit",
			build:         cmd.BuildCmdStart,
			args:          []string{"--gap-limit", "many"},
			expectedError: flags.InvalidFlagFormatError("gap-limit"),
		}, {
			name:          "multisig-pubkey without seed key",
			build:         cmd.BuildCmdMultisigPubkey,
			expectedError: flags.ArgMustBeSpecifiedError("SEED_KEY"),
		}, {
			name:          "configuration-string without token",
			build:         cmd.BuildCmdConfigurationString,
			expectedError: flags.ArgMustBeSpecifiedError("TOKEN"),
		}, {
			name:          "hsm start without key",
			build:         cmd.BuildCmdHSMStart,
			expectedError: flags.ArgMustBeSpecifiedError("HSM_KEY"),
		}, {
			name:          "fireblocks start with too many arguments",
			build:         cmd.BuildCmdFireblocksStart,
			args:          []string{"first", "second"},
			expectedError: flags.TooManyArgsError("XPUB"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(tt *testing.T) {
			// given
			recorder := newCallRecorder("{}")
			w := &bytes.Buffer{}
			c := tc.build(w, recorder.Handle)

			// when
			err := executeCmd(tt, c, tc.args...)

			// then
			assert.ErrorContains(tt, err, tc.expectedError.Error())
			assert.Empty(tt, recorder.ops)
			assert.Empty(tt, w.String())
		})
	}
}
