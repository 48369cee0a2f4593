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
	"fmt"
)

var ErrUnsupportedDefaultTransport = errors.New("the default HTTP transport is not a *http.Transport")

// URLError is returned when the host and path can't be assembled into a URL.
// It's reported before any request is sent.
type URLError struct {
	Host string
	Path string
	Err  error
}

func (e *URLError) Error() string {
	return fmt.Sprintf("couldn't build URL from host %q and path %q: %v", e.Host, e.Path, e.Err)
}

func (e *URLError) Unwrap() error {
	return e.Err
}

// TransportError wraps failures surfaced by the HTTP client: connection
// refused, timeouts, TLS errors. HTTP error statuses are not transport errors.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("couldn't %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response that has to be read locally is not
// the expected JSON document.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("couldn't decode response from %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
