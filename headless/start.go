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
	"net/url"
)

// StartParams starts a wallet from a seed key configured on the service.
type StartParams struct {
	WalletID         string
	SeedKey          string
	Passphrase       *string
	ScanPolicy       *string
	GapLimit         *uint32
	PolicyStartIndex *uint32
	PolicyEndIndex   *uint32
	HistorySyncMode  *string
}

func (p StartParams) Request() (Request, error) {
	body := NewDict().
		Set("seedKey", NewString(p.SeedKey)).
		Set("wallet-id", NewString(p.WalletID)).
		SetOptionalString("passphrase", p.Passphrase).
		SetOptionalString("scanPolicy", p.ScanPolicy).
		SetOptionalInt("gapLimit", p.GapLimit).
		SetOptionalInt("policyStartIndex", p.PolicyStartIndex).
		SetOptionalInt("policyEndIndex", p.PolicyEndIndex).
		SetOptionalString("historySyncMode", p.HistorySyncMode)

	return postJSONRequest("/start", "", body)
}

type MultisigPubkeyParams struct {
	SeedKey    string
	Passphrase *string
}

func (p MultisigPubkeyParams) Request() (Request, error) {
	body := NewDict().
		Set("seedKey", NewString(p.SeedKey)).
		SetOptionalString("passphrase", p.Passphrase)

	return postJSONRequest("/multisig-pubkey", "", body)
}

type ConfigurationStringParams struct {
	Token string
}

func (p ConfigurationStringParams) Request() (Request, error) {
	q := url.Values{}
	q.Set("token", p.Token)
	return getRequest("/configuration-string", "", q), nil
}

// HSMStartParams starts a wallet whose keys are held by a hardware security
// module.
type HSMStartParams struct {
	WalletID string
	HSMKey   string
}

func (p HSMStartParams) Request() (Request, error) {
	body := NewDict().
		Set("hsm-key", NewString(p.HSMKey)).
		Set("wallet-id", NewString(p.WalletID))

	return postJSONRequest("/hsm/start", "", body)
}

// FireblocksStartParams starts a wallet backed by a Fireblocks account.
type FireblocksStartParams struct {
	WalletID string
	XPub     string
}

func (p FireblocksStartParams) Request() (Request, error) {
	body := NewDict().
		Set("xpub", NewString(p.XPub)).
		Set("wallet-id", NewString(p.WalletID))

	return postJSONRequest("/fireblocks/start", "", body)
}
