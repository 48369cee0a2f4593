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

package headless_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/r4mmer/headless-cli/headless"
	"github.com/r4mmer/headless-cli/headless/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOwnedTokens(t *testing.T) {
	t.Run("Tokens of owned outputs and inputs are found", testTokensOfOwnedOutputsAndInputsAreFound)
	t.Run("Empty address set finds nothing", testEmptyAddressSetFindsNothing)
	t.Run("Undecoded addresses are skipped", testUndecodedAddressesAreSkipped)
}

func testTokensOfOwnedOutputsAndInputsAreFound(t *testing.T) {
	// given
	history := []headless.HistoryTx{
		{
			TxID: "tx1",
			Outputs: []headless.HistoryOutput{
				{Token: "T1", Decoded: headless.DecodedScript{Address: ptr("A")}},
				{Token: "T2", Decoded: headless.DecodedScript{Address: ptr("B")}},
			},
		}, {
			TxID: "tx2",
			Inputs: []headless.HistoryInput{
				{Token: "T3", Decoded: headless.DecodedScript{Address: ptr("A")}},
			},
			Outputs: []headless.HistoryOutput{
				{Token: "T1", Decoded: headless.DecodedScript{Address: ptr("A")}},
			},
		},
	}

	// when
	tokens := headless.OwnedTokens(history, []string{"A"})

	// then
	assert.Equal(t, []string{"T1", "T3"}, tokens)
}

func testEmptyAddressSetFindsNothing(t *testing.T) {
	// given
	history := []headless.HistoryTx{
		{
			Outputs: []headless.HistoryOutput{
				{Token: "T1", Decoded: headless.DecodedScript{Address: ptr("A")}},
			},
		},
	}

	// when
	tokens := headless.OwnedTokens(history, nil)

	// then
	assert.Empty(t, tokens)
	assert.NotNil(t, tokens)
}

func testUndecodedAddressesAreSkipped(t *testing.T) {
	// given
	history := []headless.HistoryTx{
		{
			Outputs: []headless.HistoryOutput{
				{Token: "T1"},
				{Token: "T2", Decoded: headless.DecodedScript{Address: ptr("A")}},
			},
			Inputs: []headless.HistoryInput{
				{Token: "T3"},
			},
		},
	}

	// when
	tokens := headless.OwnedTokens(history, []string{"A"})

	// then
	assert.Equal(t, []string{"T2"}, tokens)
}

func TestListTokens(t *testing.T) {
	t.Run("Listing tokens succeeds", testListingTokensSucceeds)
	t.Run("Listing tokens fails when history can't be retrieved", testListingTokensFailsWhenHistoryCannotBeRetrieved)
	t.Run("Listing tokens fails when addresses can't be retrieved", testListingTokensFailsWhenAddressesCannotBeRetrieved)
	t.Run("Listing tokens from the service succeeds", testListingTokensFromServiceSucceeds)
	t.Run("Listing tokens from the service fails on malformed history", testListingTokensFromServiceFailsOnMalformedHistory)
}

func testListingTokensSucceeds(t *testing.T) {
	// given
	ctrl := gomock.NewController(t)
	src := mocks.NewMockTokenSource(ctrl)

	// setup
	src.EXPECT().TxHistory(gomock.Any(), "w1").Times(1).Return([]headless.HistoryTx{
		{
			Outputs: []headless.HistoryOutput{
				{Token: "T1", Decoded: headless.DecodedScript{Address: ptr("A")}},
				{Token: "T2", Decoded: headless.DecodedScript{Address: ptr("B")}},
			},
		},
	}, nil)
	src.EXPECT().Addresses(gomock.Any(), "w1").Times(1).Return([]string{"A"}, nil)

	// when
	tokens, err := headless.ListTokens(context.Background(), src, headless.ListTokensParams{WalletID: "w1"}, zap.NewNop())

	// then
	require.NoError(t, err)
	assert.Equal(t, []string{"T1"}, tokens)
}

func testListingTokensFailsWhenHistoryCannotBeRetrieved(t *testing.T) {
	// given
	ctrl := gomock.NewController(t)
	src := mocks.NewMockTokenSource(ctrl)
	assertErr := errors.New("connection refused")

	// setup
	src.EXPECT().TxHistory(gomock.Any(), "w1").Times(1).Return(nil, assertErr)
	src.EXPECT().Addresses(gomock.Any(), "w1").MaxTimes(1).Return([]string{"A"}, nil)

	// when
	tokens, err := headless.ListTokens(context.Background(), src, headless.ListTokensParams{WalletID: "w1"}, zap.NewNop())

	// then
	require.ErrorIs(t, err, assertErr)
	assert.Nil(t, tokens)
}

func testListingTokensFailsWhenAddressesCannotBeRetrieved(t *testing.T) {
	// given
	ctrl := gomock.NewController(t)
	src := mocks.NewMockTokenSource(ctrl)
	assertErr := errors.New("connection refused")

	// setup
	src.EXPECT().TxHistory(gomock.Any(), "w1").MaxTimes(1).Return([]headless.HistoryTx{}, nil)
	src.EXPECT().Addresses(gomock.Any(), "w1").Times(1).Return(nil, assertErr)

	// when
	tokens, err := headless.ListTokens(context.Background(), src, headless.ListTokensParams{WalletID: "w1"}, zap.NewNop())

	// then
	require.ErrorIs(t, err, assertErr)
	assert.Nil(t, tokens)
}

func testListingTokensFromServiceSucceeds(t *testing.T) {
	// given
	service := newFakeService(t)
	service.Handle(http.MethodGet, "/wallet/tx-history", http.StatusOK, `[
		{
			"tx_id": "tx1", "version": 1, "weight": 8.0, "timestamp": 1, "is_voided": false, "parents": [],
			"inputs": [],
			"outputs": [
				{"value": 1, "token_data": 0, "script": "dqkU", "token": "00", "decoded": {"address": "H1"}},
				{"value": 1, "token_data": 1, "script": "dqkU", "token": "T1", "decoded": {"address": "H1"}},
				{"value": 1, "token_data": 1, "script": "dqkU", "token": "T2", "decoded": {}}
			]
		}
	]`)
	service.Handle(http.MethodGet, "/wallet/addresses", http.StatusOK, `{"addresses": ["H1", "H2"]}`)
	client := newTestClient(t, service.URL, false)

	// when
	tokens, err := headless.ListTokens(context.Background(), client, headless.ListTokensParams{WalletID: "w1"}, zap.NewNop())

	// then
	require.NoError(t, err)
	assert.Equal(t, []string{"00", "T1"}, tokens)
	for _, r := range service.Requests() {
		assert.Equal(t, "w1", r.Header.Get(headless.WalletIDHeader))
	}
}

func testListingTokensFromServiceFailsOnMalformedHistory(t *testing.T) {
	// given
	service := newFakeService(t)
	service.Handle(http.MethodGet, "/wallet/tx-history", http.StatusBadRequest, `{"success": false}`)
	service.Handle(http.MethodGet, "/wallet/addresses", http.StatusOK, `{"addresses": ["H1"]}`)
	client := newTestClient(t, service.URL, false)

	// when
	tokens, err := headless.ListTokens(context.Background(), client, headless.ListTokensParams{WalletID: "w1"}, zap.NewNop())

	// then
	var decodeErr *headless.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "/wallet/tx-history", decodeErr.Path)
	assert.Nil(t, tokens)
}

func TestIsAddressMine(t *testing.T) {
	t.Run("Owned address is reported as mine", testOwnedAddressIsReportedAsMine)
	t.Run("Unknown address is not reported as mine", testUnknownAddressIsNotReportedAsMine)
}

func testOwnedAddressIsReportedAsMine(t *testing.T) {
	// given
	service := newFakeService(t)
	service.Handle(http.MethodGet, "/wallet/address-info", http.StatusOK, `{"success": true, "index": 2, "total_amount_received": 10}`)
	client := newTestClient(t, service.URL, false)

	// when
	mine, err := client.IsAddressMine(context.Background(), headless.IsAddressMineParams{
		WalletID: "w1",
		Address:  "H1",
	})

	// then
	require.NoError(t, err)
	assert.True(t, mine)
	requests := service.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "address=H1", requests[0].Query)
}

func testUnknownAddressIsNotReportedAsMine(t *testing.T) {
	// given
	service := newFakeService(t)
	service.Handle(http.MethodGet, "/wallet/address-info", http.StatusOK, `{"success": false, "error": "Received address is not from the wallet."}`)
	client := newTestClient(t, service.URL, false)

	// when
	mine, err := client.IsAddressMine(context.Background(), headless.IsAddressMineParams{
		WalletID: "w1",
		Address:  "H9",
	})

	// then
	require.NoError(t, err)
	assert.False(t, mine)
}
