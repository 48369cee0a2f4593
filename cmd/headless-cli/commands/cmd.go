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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/flags"
	"github.com/r4mmer/headless-cli/cmd/headless-cli/commands/printer"
	"github.com/r4mmer/headless-cli/headless"
	vgterm "github.com/r4mmer/headless-cli/libs/term"
	vgzap "github.com/r4mmer/headless-cli/libs/zap"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type Error struct {
	Err string `json:"error"`
}

type Writer struct {
	Out io.Writer
	Err io.Writer
}

// Execute runs the command line and exits with status 1 on failure. Errors
// are printed on the standard output, like responses.
func Execute(w *Writer) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rf := &RootFlags{}
	c := BuildCmdRoot(w.Out, rf)

	execErr := c.ExecuteContext(ctx)
	if execErr == nil {
		return
	}

	defer os.Exit(1)

	if errors.Is(execErr, flags.ErrUnsupportedOutput) {
		_, _ = fmt.Fprintln(w.Out, execErr)
		return
	}

	switch rf.Output {
	case flags.JSONOutput:
		fprintErrorJSON(w, execErr)
	default:
		fprintErrorInteractive(w, execErr)
	}
}

func fprintErrorInteractive(w *Writer, execErr error) {
	if vgterm.HasTTY() {
		p := printer.NewInteractivePrinter(w.Out)
		p.Print(p.String().CrossMark().DangerText("Error: ").DangerText(execErr.Error()).NextLine())
	} else {
		_, _ = fmt.Fprintln(w.Out, execErr)
	}
}

func fprintErrorJSON(w *Writer, err error) {
	jsonErr := printer.FprintJSON(w.Out, Error{
		Err: err.Error(),
	})
	if jsonErr != nil {
		_, _ = fmt.Fprintf(w.Err, "couldn't format error as JSON: %v\n", jsonErr)
		_, _ = fmt.Fprintf(w.Err, "original error: %v\n", err)
	}
}

func autoCompleteLogLevel(cmd *cobra.Command) {
	err := cmd.RegisterFlagCompletionFunc("level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return vgzap.SupportedLogLevels, cobra.ShellCompDirectiveDefault
	})
	if err != nil {
		panic(err)
	}
}

func autoCompleteOutput(cmd *cobra.Command) {
	err := cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return flags.AvailableOutputs, cobra.ShellCompDirectiveDefault
	})
	if err != nil {
		panic(err)
	}
}

// Logs go to the standard error so the standard output only carries the
// responses.
func buildCmdLogger(output, level string) (*zap.Logger, error) {
	if output == flags.InteractiveOutput {
		return vgzap.BuildStandardConsoleLogger(level, os.Stderr)
	}

	return vgzap.BuildStandardJSONLogger(level, os.Stderr)
}

// CallHandler sends the operation to the headless service and returns the
// response body as-is.
type CallHandler func(ctx context.Context, op headless.Operation) (string, error)

func NewCallHandler(rf *RootFlags) CallHandler {
	return func(ctx context.Context, op headless.Operation) (string, error) {
		client, log, err := newHeadlessClient(rf)
		if err != nil {
			return "", err
		}
		defer vgzap.Sync(log)()

		resp, err := client.Call(ctx, op)
		if err != nil {
			return "", fmt.Errorf("couldn't call the headless service: %w", err)
		}
		return resp, nil
	}
}

func newHeadlessClient(rf *RootFlags) (*headless.Client, *zap.Logger, error) {
	level := rf.LogLevel
	if rf.Debug {
		level = zap.DebugLevel.String()
	}

	log, err := buildCmdLogger(rf.Output, level)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't build the logger: %w", err)
	}

	client, err := headless.NewClient(headless.Config{
		Host:           rf.Host,
		Debug:          rf.Debug,
		ConnectTimeout: rf.Timeout,
	}, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, fmt.Errorf("couldn't build the headless client: %w", err)
	}

	return client, log, nil
}

// PrintRawResponse prints the response of the headless service untouched,
// whatever the output, since it's already what the service decided to say.
func PrintRawResponse(w io.Writer, resp string) {
	_, _ = fmt.Fprintln(w, resp)
}
