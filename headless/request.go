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
	"net/http"
	"net/url"
	"strconv"

	vgjson "github.com/r4mmer/headless-cli/libs/json"
)

const jsonContentType = "application/json"

// Request describes a single call to the headless service.
type Request struct {
	Method      string
	Path        string
	WalletID    string
	Query       url.Values
	Body        []byte
	ContentType string
}

// Operation is implemented by every parameter bundle that maps to exactly one
// call on the headless service.
type Operation interface {
	Request() (Request, error)
}

func getRequest(path, walletID string, query url.Values) Request {
	return Request{
		Method:   http.MethodGet,
		Path:     path,
		WalletID: walletID,
		Query:    query,
	}
}

func postJSONRequest(path, walletID string, body Dict) (Request, error) {
	data, err := vgjson.Compact(body)
	if err != nil {
		return Request{}, fmt.Errorf("couldn't encode the request body for %s: %w", path, err)
	}
	return Request{
		Method:      http.MethodPost,
		Path:        path,
		WalletID:    walletID,
		Body:        data,
		ContentType: jsonContentType,
	}, nil
}

func postRawRequest(path, walletID, body string) Request {
	return Request{
		Method:      http.MethodPost,
		Path:        path,
		WalletID:    walletID,
		Body:        []byte(body),
		ContentType: jsonContentType,
	}
}

func setOptionalQueryString(q url.Values, key string, v *string) {
	if v != nil {
		q.Set(key, *v)
	}
}

func setOptionalQueryInt(q url.Values, key string, v *uint32) {
	if v != nil {
		q.Set(key, strconv.FormatUint(uint64(*v), 10))
	}
}

func setOptionalQueryBool(q url.Values, key string, v *bool) {
	if v != nil {
		q.Set(key, strconv.FormatBool(*v))
	}
}
