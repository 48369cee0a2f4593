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

package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	AppName        = "headless-cli"
	ConfigFileName = "config.toml"
)

// Paths locates the files the CLI reads and writes.
type Paths interface {
	// ConfigFile returns the path of the configuration file, creating the
	// parent directories when needed.
	ConfigFile() (string, error)
	// LookupConfigFile returns the path of the configuration file only if it
	// exists.
	LookupConfigFile() (string, bool)
}

// New instantiates the specific implementation of the Paths interface based on
// the value of the customHome. If a customHome is specified the custom
// implementation CustomPaths is returned, the standard DefaultPaths otherwise.
func New(customHome string) Paths {
	if len(customHome) != 0 {
		return &CustomPaths{
			CustomHome: customHome,
		}
	}

	return &DefaultPaths{}
}

// DefaultPaths follows the XDG base directory specification.
type DefaultPaths struct{}

func (p *DefaultPaths) ConfigFile() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join(AppName, ConfigFileName))
	if err != nil {
		return "", fmt.Errorf("couldn't get the XDG configuration file path: %w", err)
	}
	return path, nil
}

func (p *DefaultPaths) LookupConfigFile() (string, bool) {
	path, err := xdg.SearchConfigFile(filepath.Join(AppName, ConfigFileName))
	if err != nil {
		return "", false
	}
	return path, true
}

// CustomPaths keeps every file under a user-defined home.
type CustomPaths struct {
	CustomHome string
}

func (p *CustomPaths) ConfigFile() (string, error) {
	if err := os.MkdirAll(p.CustomHome, 0o700); err != nil {
		return "", fmt.Errorf("couldn't create the home folder %s: %w", p.CustomHome, err)
	}
	return filepath.Join(p.CustomHome, ConfigFileName), nil
}

func (p *CustomPaths) LookupConfigFile() (string, bool) {
	path := filepath.Join(p.CustomHome, ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}
