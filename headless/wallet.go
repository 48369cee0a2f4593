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
	"net/http"
	"net/url"
)

type StatusParams struct {
	WalletID string
}

func (p StatusParams) Request() (Request, error) {
	return getRequest("/wallet/status", p.WalletID, nil), nil
}

type BalanceParams struct {
	WalletID string
	Token    *string
}

func (p BalanceParams) Request() (Request, error) {
	q := url.Values{}
	setOptionalQueryString(q, "token", p.Token)
	return getRequest("/wallet/balance", p.WalletID, q), nil
}

type AddressParams struct {
	WalletID   string
	Index      *uint32
	MarkAsUsed *bool
}

func (p AddressParams) Request() (Request, error) {
	q := url.Values{}
	setOptionalQueryInt(q, "index", p.Index)
	setOptionalQueryBool(q, "mark_as_used", p.MarkAsUsed)
	return getRequest("/wallet/address", p.WalletID, q), nil
}

type AddressIndexParams struct {
	WalletID string
	Address  string
}

func (p AddressIndexParams) Request() (Request, error) {
	q := url.Values{}
	q.Set("address", p.Address)
	return getRequest("/wallet/address-index", p.WalletID, q), nil
}

type AddressesParams struct {
	WalletID string
}

func (p AddressesParams) Request() (Request, error) {
	return getRequest("/wallet/addresses", p.WalletID, nil), nil
}

type AddressInfoParams struct {
	WalletID string
	Address  string
	Token    *string
}

func (p AddressInfoParams) Request() (Request, error) {
	q := url.Values{}
	q.Set("address", p.Address)
	setOptionalQueryString(q, "token", p.Token)
	return getRequest("/wallet/address-info", p.WalletID, q), nil
}

type TxHistoryParams struct {
	WalletID string
	Limit    *uint32
}

func (p TxHistoryParams) Request() (Request, error) {
	q := url.Values{}
	setOptionalQueryInt(q, "limit", p.Limit)
	return getRequest("/wallet/tx-history", p.WalletID, q), nil
}

type TransactionParams struct {
	WalletID string
	ID       string
}

func (p TransactionParams) Request() (Request, error) {
	q := url.Values{}
	q.Set("id", p.ID)
	return getRequest("/wallet/transaction", p.WalletID, q), nil
}

type DecodeParams struct {
	WalletID  string
	TxHex     *string
	PartialTx *string
}

func (p DecodeParams) Request() (Request, error) {
	body := NewDict().
		SetOptionalString("txHex", p.TxHex).
		SetOptionalString("partial_tx", p.PartialTx)
	return postJSONRequest("/wallet/decode", p.WalletID, body)
}

type TxConfirmationParams struct {
	WalletID string
	ID       string
}

func (p TxConfirmationParams) Request() (Request, error) {
	q := url.Values{}
	q.Set("id", p.ID)
	return getRequest("/wallet/tx-confirmation-blocks", p.WalletID, q), nil
}

type SimpleSendParams struct {
	WalletID      string
	Address       string
	Value         uint32
	ChangeAddress *string
	Token         *string
}

func (p SimpleSendParams) Request() (Request, error) {
	body := NewDict().
		Set("address", NewString(p.Address)).
		Set("value", NewInt(p.Value)).
		SetOptionalString("change_address", p.ChangeAddress).
		SetOptionalString("token", p.Token)
	return postJSONRequest("/wallet/simple-send-tx", p.WalletID, body)
}

// SendParams forwards a caller-provided transaction body untouched. The body
// is not validated locally.
type SendParams struct {
	WalletID string
	Body     string
}

func (p SendParams) Request() (Request, error) {
	return postRawRequest("/wallet/send-tx", p.WalletID, p.Body), nil
}

// TokenAuthorities are the mint and melt authority options shared by the
// token creation calls.
type TokenAuthorities struct {
	CreateMint                        *bool
	MintAuthorityAddress              *string
	AllowExternalMintAuthorityAddress *bool
	CreateMelt                        *bool
	MeltAuthorityAddress              *string
	AllowExternalMeltAuthorityAddress *bool
}

func (a TokenAuthorities) apply(d Dict) Dict {
	return d.
		SetOptionalBool("create_mint", a.CreateMint).
		SetOptionalString("mint_authority_address", a.MintAuthorityAddress).
		SetOptionalBool("allow_external_mint_authority_address", a.AllowExternalMintAuthorityAddress).
		SetOptionalBool("create_melt", a.CreateMelt).
		SetOptionalString("melt_authority_address", a.MeltAuthorityAddress).
		SetOptionalBool("allow_external_melt_authority_address", a.AllowExternalMeltAuthorityAddress)
}

type CreateTokenParams struct {
	WalletID      string
	Name          string
	Symbol        string
	Amount        uint32
	Address       *string
	ChangeAddress *string
	Authorities   TokenAuthorities
	Data          []string
}

func (p CreateTokenParams) Request() (Request, error) {
	body := NewDict().
		Set("name", NewString(p.Name)).
		Set("symbol", NewString(p.Symbol)).
		Set("amount", NewInt(p.Amount)).
		SetOptionalString("address", p.Address).
		SetOptionalString("change_address", p.ChangeAddress).
		SetOptionalStrings("data", p.Data)
	return postJSONRequest("/wallet/create-token", p.WalletID, p.Authorities.apply(body))
}

type MintTokensParams struct {
	WalletID                          string
	Token                             string
	Amount                            uint32
	Address                           *string
	ChangeAddress                     *string
	MintAuthorityAddress              *string
	AllowExternalMintAuthorityAddress *bool
	UnshiftData                       *bool
	Data                              []string
}

func (p MintTokensParams) Request() (Request, error) {
	body := NewDict().
		Set("token", NewString(p.Token)).
		Set("amount", NewInt(p.Amount)).
		SetOptionalString("address", p.Address).
		SetOptionalString("change_address", p.ChangeAddress).
		SetOptionalString("mint_authority_address", p.MintAuthorityAddress).
		SetOptionalBool("allow_external_mint_authority_address", p.AllowExternalMintAuthorityAddress).
		SetOptionalBool("unshift_data", p.UnshiftData).
		SetOptionalStrings("data", p.Data)
	return postJSONRequest("/wallet/mint-tokens", p.WalletID, body)
}

type MeltTokensParams struct {
	WalletID                          string
	Token                             string
	Amount                            uint32
	Address                           *string
	DepositAddress                    *string
	ChangeAddress                     *string
	MeltAuthorityAddress              *string
	AllowExternalMeltAuthorityAddress *bool
	UnshiftData                       *bool
	Data                              []string
}

func (p MeltTokensParams) Request() (Request, error) {
	// The service reads the camel-cased key on this endpoint only.
	body := NewDict().
		Set("token", NewString(p.Token)).
		Set("amount", NewInt(p.Amount)).
		SetOptionalString("address", p.Address).
		SetOptionalString("deposit_address", p.DepositAddress).
		SetOptionalString("change_address", p.ChangeAddress).
		SetOptionalString("melt_authority_address", p.MeltAuthorityAddress).
		SetOptionalBool("allow_external_melt_authority_address", p.AllowExternalMeltAuthorityAddress).
		SetOptionalBool("unshiftData", p.UnshiftData).
		SetOptionalStrings("data", p.Data)
	return postJSONRequest("/wallet/melt-tokens", p.WalletID, body)
}

// UTXOFilter narrows the unspent outputs considered by the UTXO calls.
type UTXOFilter struct {
	MaxUTXOs          *uint32
	Token             *string
	FilterAddress     *string
	AmountSmallerThan *uint32
	AmountBiggerThan  *uint32
	MaximumAmount     *uint32
}

func (f UTXOFilter) apply(d Dict) Dict {
	return d.
		SetOptionalInt("max_utxos", f.MaxUTXOs).
		SetOptionalString("token", f.Token).
		SetOptionalString("filter_address", f.FilterAddress).
		SetOptionalInt("amount_smaller_than", f.AmountSmallerThan).
		SetOptionalInt("amount_bigger_than", f.AmountBiggerThan).
		SetOptionalInt("maximum_amount", f.MaximumAmount)
}

type UTXOFilterParams struct {
	WalletID           string
	Filter             UTXOFilter
	OnlyAvailableUTXOs *bool
}

func (p UTXOFilterParams) Request() (Request, error) {
	body := p.Filter.apply(NewDict()).
		SetOptionalBool("only_available_utxos", p.OnlyAvailableUTXOs)
	return postJSONRequest("/wallet/utxo-filter", p.WalletID, body)
}

type UTXOConsolidationParams struct {
	WalletID string
	Filter   UTXOFilter
}

func (p UTXOConsolidationParams) Request() (Request, error) {
	return postJSONRequest("/wallet/utxo-consolidation", p.WalletID, p.Filter.apply(NewDict()))
}

type CreateNFTParams struct {
	WalletID      string
	Name          string
	Symbol        string
	Amount        uint32
	Data          string
	Address       *string
	ChangeAddress *string
	Authorities   TokenAuthorities
}

func (p CreateNFTParams) Request() (Request, error) {
	body := NewDict().
		Set("name", NewString(p.Name)).
		Set("symbol", NewString(p.Symbol)).
		Set("amount", NewInt(p.Amount)).
		Set("data", NewString(p.Data)).
		SetOptionalString("address", p.Address).
		SetOptionalString("change_address", p.ChangeAddress)
	return postJSONRequest("/wallet/create-nft", p.WalletID, p.Authorities.apply(body))
}

type StopParams struct {
	WalletID string
}

func (p StopParams) Request() (Request, error) {
	return Request{
		Method:   http.MethodPost,
		Path:     "/wallet/stop",
		WalletID: p.WalletID,
	}, nil
}
