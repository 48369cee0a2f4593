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

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/r4mmer/headless-cli/config/encoding"
	"github.com/r4mmer/headless-cli/paths"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "HEADLESS"

	DefaultHost           = "http://localhost:8000"
	DefaultOutput         = "interactive"
	DefaultLevel          = "info"
	DefaultConnectTimeout = 10 * time.Second
)

var ErrConfigFileAlreadyExists = errors.New("the configuration file already exists")

// Keys are shared by the configuration file, the environment and the
// persistent flags of the same name.
var Keys = []string{"host", "debug", "output", "level", "timeout"}

// Config holds the settings shared by every command.
type Config struct {
	Host    string            `mapstructure:"host" toml:"host"`
	Debug   bool              `mapstructure:"debug" toml:"debug"`
	Output  string            `mapstructure:"output" toml:"output"`
	Level   encoding.LogLevel `mapstructure:"level" toml:"level"`
	Timeout encoding.Duration `mapstructure:"timeout" toml:"timeout"`
}

func NewDefaultConfig() Config {
	cfg := Config{
		Host:    DefaultHost,
		Debug:   false,
		Output:  DefaultOutput,
		Timeout: encoding.Duration{Duration: DefaultConnectTimeout},
	}
	_ = cfg.Level.UnmarshalText([]byte(DefaultLevel))
	return cfg
}

// Load resolves the configuration. A flag explicitly set on the command line
// takes precedence over the environment, which takes precedence over the
// configuration file, which takes precedence over the defaults.
func Load(fs *pflag.FlagSet, p paths.Paths) (*Config, error) {
	v := viper.New()

	defaults := NewDefaultConfig()
	v.SetDefault("host", defaults.Host)
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("level", DefaultLevel)
	v.SetDefault("timeout", defaults.Timeout.String())

	if path, found := p.LookupConfigFile(); found {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read the configuration file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for _, key := range Keys {
			flag := fs.Lookup(key)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("couldn't bind flag %q: %w", key, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))); err != nil {
		return nil, fmt.Errorf("couldn't decode the configuration: %w", err)
	}

	return cfg, nil
}

// WriteDefault writes the default configuration to the configuration file.
// An existing file is only replaced when overwrite is set.
func WriteDefault(p paths.Paths, overwrite bool) (string, error) {
	path, err := p.ConfigFile()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil && !overwrite {
		return "", fmt.Errorf("%w: %s", ErrConfigFileAlreadyExists, path)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("couldn't open the configuration file %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := toml.NewEncoder(f).Encode(NewDefaultConfig()); err != nil {
		return "", fmt.Errorf("couldn't write the configuration file %s: %w", path, err)
	}

	return path, nil
}
