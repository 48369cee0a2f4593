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
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// CurlParams describes the call to render as a curl command.
type CurlParams struct {
	WalletID string
	Path     string
	Post     bool
	Data     bool
}

// Curl renders the curl command equivalent to the described call. Nothing is
// sent over the network.
func Curl(host string, p CurlParams) (string, error) {
	u, err := BuildURL(host, p.Path)
	if err != nil {
		return "", err
	}

	method := ""
	if p.Post {
		method = " -X POST"
		if p.Data {
			method += " -d '{}'"
		}
	}

	headers := orderedmap.New[string, string]()
	headers.Set(WalletIDHeader, p.WalletID)
	if p.Post && p.Data {
		headers.Set("Content-Type", jsonContentType)
	}

	rendered := make([]string, 0, headers.Len())
	for pair := headers.Oldest(); pair != nil; pair = pair.Next() {
		rendered = append(rendered, fmt.Sprintf(`-H "%s: %s"`, pair.Key, pair.Value))
	}

	return fmt.Sprintf("curl%s %s %s", method, strings.Join(rendered, " "), u.String()), nil
}
