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
	"context"
	"encoding/json"
)

type HistoryTx struct {
	TxID        string          `json:"tx_id"`
	Version     uint32          `json:"version"`
	Weight      float64         `json:"weight"`
	Timestamp   uint64          `json:"timestamp"`
	IsVoided    bool            `json:"is_voided"`
	Inputs      []HistoryInput  `json:"inputs"`
	Outputs     []HistoryOutput `json:"outputs"`
	Parents     []string        `json:"parents"`
	TokenName   *string         `json:"token_name,omitempty"`
	TokenSymbol *string         `json:"token_symbol,omitempty"`
	Tokens      []string        `json:"tokens,omitempty"`
}

// DecodedScript is the service's reading of an output script. Address is nil
// when the script could not be decoded.
type DecodedScript struct {
	Address  *string `json:"address,omitempty"`
	Timelock *uint64 `json:"timelock,omitempty"`
	Data     *string `json:"data,omitempty"`
}

type HistoryOutput struct {
	Value     uint64        `json:"value"`
	TokenData uint32        `json:"token_data"`
	Script    string        `json:"script"`
	Decoded   DecodedScript `json:"decoded"`
	Token     string        `json:"token"`
	SpentBy   *string       `json:"spent_by,omitempty"`
}

type HistoryInput struct {
	Value     uint64        `json:"value"`
	TokenData uint32        `json:"token_data"`
	Script    string        `json:"script"`
	Decoded   DecodedScript `json:"decoded"`
	Token     string        `json:"token"`
	TxID      string        `json:"tx_id"`
	Index     uint32        `json:"index"`
}

type addressesResponse struct {
	Addresses []string `json:"addresses"`
}

type AddressInfo struct {
	Success              bool    `json:"success"`
	TotalAmountReceived  *uint64 `json:"total_amount_received,omitempty"`
	TotalAmountSent      *uint64 `json:"total_amount_sent,omitempty"`
	TotalAmountAvailable *uint64 `json:"total_amount_available,omitempty"`
	TotalAmountLocked    *uint64 `json:"total_amount_locked,omitempty"`
	Token                *string `json:"token,omitempty"`
	Index                *uint32 `json:"index,omitempty"`
	Error                *string `json:"error,omitempty"`
}

// TxHistory returns the whole transaction history of the wallet.
func (c *Client) TxHistory(ctx context.Context, walletID string) ([]HistoryTx, error) {
	var history []HistoryTx
	if err := c.callJSON(ctx, TxHistoryParams{WalletID: walletID}, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (c *Client) Addresses(ctx context.Context, walletID string) ([]string, error) {
	resp := addressesResponse{}
	if err := c.callJSON(ctx, AddressesParams{WalletID: walletID}, &resp); err != nil {
		return nil, err
	}
	return resp.Addresses, nil
}

func (c *Client) AddressInfo(ctx context.Context, p AddressInfoParams) (AddressInfo, error) {
	info := AddressInfo{}
	if err := c.callJSON(ctx, p, &info); err != nil {
		return AddressInfo{}, err
	}
	return info, nil
}

// IsAddressMine reports whether the service knows the address as one of the
// wallet's own.
func (c *Client) IsAddressMine(ctx context.Context, p IsAddressMineParams) (bool, error) {
	info, err := c.AddressInfo(ctx, AddressInfoParams{
		WalletID: p.WalletID,
		Address:  p.Address,
	})
	if err != nil {
		return false, err
	}
	return info.Success, nil
}

type IsAddressMineParams struct {
	WalletID string
	Address  string
}

func (c *Client) callJSON(ctx context.Context, op Operation, out interface{}) error {
	req, err := op.Request()
	if err != nil {
		return err
	}

	body, err := c.send(ctx, req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Path: req.Path, Err: err}
	}
	return nil
}
