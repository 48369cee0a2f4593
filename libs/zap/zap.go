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

package zap

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var SupportedLogLevels = []string{
	zapcore.DebugLevel.String(),
	zapcore.InfoLevel.String(),
	zapcore.WarnLevel.String(),
	zapcore.ErrorLevel.String(),
}

type Logger interface {
	Sync() error
}

// Sync returns a function flushing the logger, meant to be deferred.
func Sync(logger Logger) func() {
	return func() {
		// Syncing stderr returns EINVAL on some platforms, there is nothing
		// the user can act on, so it's only reported.
		if err := logger.Sync(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "couldn't flush the logger: %v\n", err)
		}
	}
}

func EnsureIsSupportedLogLevel(level string) error {
	for _, supportedLevel := range SupportedLogLevels {
		if level == supportedLevel {
			return nil
		}
	}
	return fmt.Errorf("unsupported log level %q, supported levels: %v", level, SupportedLogLevels)
}

// BuildStandardConsoleLogger builds a human-readable logger writing to w.
func BuildStandardConsoleLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zapcore.EncoderConfig{
		CallerKey:      "C",
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeName:     zapcore.FullNameEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		LevelKey:       "L",
		LineEnding:     zapcore.DefaultLineEnding,
		MessageKey:     "M",
		NameKey:        "N",
		TimeKey:        "T",
	}

	return build(zapcore.NewConsoleEncoder(encoderConfig), lvl, w), nil
}

// BuildStandardJSONLogger builds a machine-readable logger writing to w.
func BuildStandardJSONLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zapcore.EncoderConfig{
		CallerKey:      "caller",
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeName:     zapcore.FullNameEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		LevelKey:       "level",
		LineEnding:     zapcore.DefaultLineEnding,
		MessageKey:     "message",
		NameKey:        "logger",
		StacktraceKey:  "stacktrace",
		TimeKey:        "@timestamp",
	}

	return build(zapcore.NewJSONEncoder(encoderConfig), lvl, w), nil
}

func build(encoder zapcore.Encoder, level zapcore.Level, w io.Writer) *zap.Logger {
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core, zap.AddCaller())
}

func parseLevel(level string) (zapcore.Level, error) {
	if err := EnsureIsSupportedLogLevel(level); err != nil {
		return zapcore.InfoLevel, err
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("couldn't parse log level: %w", err)
	}
	return lvl, nil
}
