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

package headless

import (
	"errors"
	"net/url"
)

var ErrHostIsNotAbsoluteURL = errors.New("the host must be an absolute URL with a scheme and a host")

// BuildURL resolves path against host, used as base URL.
func BuildURL(host, path string) (*url.URL, error) {
	base, err := url.Parse(host)
	if err != nil {
		return nil, &URLError{Host: host, Path: path, Err: err}
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, &URLError{Host: host, Path: path, Err: ErrHostIsNotAbsoluteURL}
	}

	ref, err := url.Parse(path)
	if err != nil {
		return nil, &URLError{Host: host, Path: path, Err: err}
	}

	return base.ResolveReference(ref), nil
}
