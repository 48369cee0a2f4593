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
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/token_source_mock.go -package mocks github.com/r4mmer/headless-cli/headless TokenSource
type TokenSource interface {
	TxHistory(ctx context.Context, walletID string) ([]HistoryTx, error)
	Addresses(ctx context.Context, walletID string) ([]string, error)
}

type ListTokensParams struct {
	WalletID string
}

// ListTokens returns the sorted identifiers of every token that ever touched
// an address owned by the wallet.
func ListTokens(ctx context.Context, src TokenSource, p ListTokensParams, log *zap.Logger) ([]string, error) {
	var (
		history   []HistoryTx
		addresses []string
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		h, err := src.TxHistory(egCtx, p.WalletID)
		if err != nil {
			return fmt.Errorf("couldn't retrieve the transaction history: %w", err)
		}
		history = h
		return nil
	})
	eg.Go(func() error {
		a, err := src.Addresses(egCtx, p.WalletID)
		if err != nil {
			return fmt.Errorf("couldn't retrieve the wallet addresses: %w", err)
		}
		addresses = a
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	tokens := OwnedTokens(history, addresses)

	log.Debug("tokens found",
		zap.String("wallet-id", p.WalletID),
		zap.Int("count", len(tokens)),
	)

	return tokens, nil
}

// OwnedTokens collects the tokens of the inputs and outputs that belong to one
// of the addresses. Entries without a decoded address are ignored.
func OwnedTokens(history []HistoryTx, addresses []string) []string {
	owned := make(map[string]struct{}, len(addresses))
	for _, address := range addresses {
		owned[address] = struct{}{}
	}

	found := map[string]struct{}{}
	collect := func(decoded DecodedScript, token string) {
		if decoded.Address == nil {
			return
		}
		if _, ok := owned[*decoded.Address]; ok {
			found[token] = struct{}{}
		}
	}

	for _, tx := range history {
		for _, output := range tx.Outputs {
			collect(output.Decoded, output.Token)
		}
		for _, input := range tx.Inputs {
			collect(input.Decoded, input.Token)
		}
	}

	tokens := make([]string, 0, len(found))
	for token := range found {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
