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
	"net/http"
	"net/url"
	"testing"

	"github.com/r4mmer/headless-cli/headless"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expectedRequest struct {
	method   string
	path     string
	walletID string
	query    url.Values
	body     string
}

func TestOperationRequests(t *testing.T) {
	t.Run("Start operations build the expected requests", testStartOperationsBuildExpectedRequests)
	t.Run("Wallet operations build the expected requests", testWalletOperationsBuildExpectedRequests)
	t.Run("Token operations build the expected requests", testTokenOperationsBuildExpectedRequests)
	t.Run("P2SH operations build the expected requests", testP2SHOperationsBuildExpectedRequests)
	t.Run("Send forwards the body untouched", testSendForwardsBodyUntouched)
	t.Run("Stop has no body", testStopHasNoBody)
}

func testStartOperationsBuildExpectedRequests(t *testing.T) {
	assertRequests(t, []struct {
		name     string
		op       headless.Operation
		expected expectedRequest
	}{
		{
			name: "start with required fields only",
			op: headless.StartParams{
				WalletID: "w1",
				SeedKey:  "default",
			},
			expected: expectedRequest{
				method: http.MethodPost,
				path:   "/start",
				body:   `{"seedKey":"default","wallet-id":"w1"}`,
			},
		}, {
			name: "start with every option",
			op: headless.StartParams{
				WalletID:         "w1",
				SeedKey:          "default",
				Passphrase:       ptr("secret"),
				ScanPolicy:       ptr("gap-limit"),
				GapLimit:         ptr(uint32(20)),
				PolicyStartIndex: ptr(uint32(0)),
				PolicyEndIndex:   ptr(uint32(100)),
				HistorySyncMode:  ptr("polling_http_api"),
			},
			expected: expectedRequest{
				method: http.MethodPost,
				path:   "/start",
				body: `{"seedKey":"default","wallet-id":"w1","passphrase":"secret","scanPolicy":"gap-limit",
					"gapLimit":20,"policyStartIndex":0,"policyEndIndex":100,"historySyncMode":"polling_http_api"}`,
			},
		}, {
			name: "multisig pubkey",
			op: headless.MultisigPubkeyParams{
				SeedKey: "default",
			},
			expected: expectedRequest{
				method: http.MethodPost,
				path:   "/multisig-pubkey",
				body:   `{"seedKey":"default"}`,
			},
		}, {
			name: "configuration string",
			op:   headless.ConfigurationStringParams{Token: "00"},
			expected: expectedRequest{
				method: http.MethodGet,
				path:   "/configuration-string",
				query:  url.Values{"token": {"00"}},
			},
		}, {
			name: "hsm start",
			op:   headless.HSMStartParams{WalletID: "w1", HSMKey: "k1"},
			expected: expectedRequest{
				method: http.MethodPost,
				path:   "/hsm/start",
				body:   `{"hsm-key":"k1","wallet-id":"w1"}`,
			},
		}, {
			name: "fireblocks start",
			op:   headless.FireblocksStartParams{WalletID: "w1", XPub: "xpub1"},
			expected: expectedRequest{
				method: http.MethodPost,
				path:   "/fireblocks/start",
				body:   `{"xpub":"xpub1","wallet-id":"w1"}`,
			},
		},
	})
}

func testWalletOperationsBuildExpectedRequests(t *testing.T) {
	assertRequests(t, []struct {
		name     string
		op       headless.Operation
		expected expectedRequest
	}{
		{
			name:     "status",
			op:       headless.StatusParams{WalletID: "w1"},
			expected: expectedRequest{method: http.MethodGet, path: "/wallet/status", walletID: "w1"},
		}, {
			name:     "balance without token",
			op:       headless.BalanceParams{WalletID: "w1"},
			expected: expectedRequest{method: http.MethodGet, path: "/wallet/balance", walletID: "w1"},
		}, {
			name: "balance with token",
			op:   headless.BalanceParams{WalletID: "w1", Token: ptr("00")},
			expected: expectedRequest{
				method:   http.MethodGet,
				path:     "/wallet/balance",
				walletID: "w1",
				query:    url.Values{"token": {"00"}},
			},
		}, {
			name: "address with index and mark as used",
			op:   headless.AddressParams{WalletID: "w1", Index: ptr(uint32(3)), MarkAsUsed: ptr(true)},
			expected: expectedRequest{
				method:   http.MethodGet,
				path:     "/wallet/address",
				walletID: "w1",
				query:    url.Values{"index": {"3"}, "mark_as_used": {"true"}},
			},
		}, {
			name: "address index",
			op:   headless.AddressIndexParams{WalletID: "w1", Address: "H1"},
			expected: expectedRequest{
				method:   http.MethodGet,
				path:     "/wallet/address-index",
				walletID: "w1",
				query:    url.Values{"address": {"H1"}},
			},
		}, {
			name:     "addresses",
			op:       headless.AddressesParams{WalletID: "w1"},
			expected: expectedRequest{method: http.MethodGet, path: "/wallet/addresses", walletID: "w1"},
		}, {
			name: "address info",
			op:   headless.AddressInfoParams{WalletID: "w1", Address: "H1", Token: ptr("t1")},
			expected: expectedRequest{
				method:   http.MethodGet,
				path:     "/wallet/address-info",
				walletID: "w1",
				query:    url.Values{"address": {"H1"}, "token": {"t1"}},
			},
		}, {
			name: "tx history with limit",
			op:   headless.TxHistoryParams{WalletID: "w1", Limit: ptr(uint32(5))},
			expected: expectedRequest{
				method:   http.MethodGet,
				path:     "/wallet/tx-history",
				walletID: "w1",
				query:    url.Values{"limit": {"5"}},
			},
		}, {
			name: "transaction",
			op:   headless.TransactionParams{WalletID: "w1", ID: "tx1"},
			expected: expectedRequest{
				method:   http.MethodGet,
				path:     "/wallet/transaction",
				walletID: "w1",
				query:    url.Values{"id": {"tx1"}},
			},
		}, {
			name: "decode",
			op:   headless.DecodeParams{WalletID: "w1", TxHex: ptr("00ff")},
			expected: expectedRequest{
				method:   http.MethodPost,
				path:     "/wallet/decode",
				walletID: "w1",
				body:     `{"txHex":"00ff"}`,
			},
		}, {
			name: "tx confirmation",
			op:   headless.TxConfirmationParams{WalletID: "w1", ID: "tx1"},
			expected: expectedRequest{
				method:   http.MethodGet,
				path:     "/wallet/tx-confirmation-blocks",
				walletID: "w1",
				query:    url.Values{"id": {"tx1"}},
			},
		}, {
			name: "simple send",
			op:   headless.SimpleSendParams{WalletID: "w1", Address: "H1", Value: 10},
			expected: expectedRequest{
				method:   http.MethodPost,
				path:     "/wallet/simple-send-tx",
				walletID: "w1",
				body:     `{"address":"H1","value":10}`,
			},
		}, {
			name: "utxo filter",
			op: headless.UTXOFilterParams{
				WalletID:           "w1",
				Filter:             headless.UTXOFilter{MaxUTXOs: ptr(uint32(5)), FilterAddress: ptr("H1")},
				OnlyAvailableUTXOs: ptr(true),
			},
			expected: expectedRequest{
				method:   http.MethodPost,
				path:     "/wallet/utxo-filter",
				walletID: "w1",
				body:     `{"max_utxos":5,"filter_address":"H1","only_available_utxos":true}`,
			},
		}, {
			name: "utxo consolidation",
			op: headless.UTXOConsolidationParams{
				WalletID: "w1",
				Filter:   headless.UTXOFilter{Token: ptr("00"), AmountBiggerThan: ptr(uint32(1))},
			},
			expected: expectedRequest{
				method:   http.MethodPost,
				path:     "/wallet/utxo-consolidation",
				walletID: "w1",
				body:     `{"token":"00","amount_bigger_than":1}`,
			},
		},
	})
}

func testTokenOperationsBuildExpectedRequests(t *testing.T) {
	assertRequests(t, []struct {
		name     string
		op       headless.Operation
		expected expectedRequest
	}{
		{
			name: "create token",
			op: headless.CreateTokenParams{
				WalletID: "w1",
				Name:     "Token",
				Symbol:   "TKN",
				Amount:   100,
				Authorities: headless.TokenAuthorities{
					CreateMint: ptr(true),
					CreateMelt: ptr(false),
				},
				Data: []string{"d1"},
			},
			expected: expectedRequest{
				method:   http.MethodPost,
				path:     "/wallet/create-token",
				walletID: "w1",
				body:     `{"name":"Token","symbol":"TKN","amount":100,"create_mint":true,"create_melt":false,"data":["d1"]}`,
			},
		}, {
			name: "mint tokens",
			op: headless.MintTokensParams{
				WalletID:    "w1",
				Token:       "t1",
				Amount:      5,
				UnshiftData: ptr(true),
			},
			expected: expectedRequest{
				method:   http.MethodPost,
				path:     "/wallet/mint-tokens",
				walletID: "w1",
				body:     `{"token":"t1","amount":5,"unshift_data":true}`,
			},
		}, {
			name: "melt tokens",
			op: headless.MeltTokensParams{
				WalletID:       "w1",
				Token:          "t1",
				Amount:         5,
				DepositAddress: ptr("H2"),
				UnshiftData:    ptr(false),
			},
			expected: expectedRequest{
				method:   http.MethodPost,
				path:     "/wallet/melt-tokens",
				walletID: "w1",
				body:     `{"token":"t1","amount":5,"deposit_address":"H2","unshiftData":false}`,
			},
		}, {
			name: "create nft",
			op: headless.CreateNFTParams{
				WalletID: "w1",
				Name:     "NFT",
				Symbol:   "NFT",
				Amount:   1,
				Data:     "ipfs://x",
				Address:  ptr("H1"),
			},
			expected: expectedRequest{
				method:   http.MethodPost,
				path:     "/wallet/create-nft",
				walletID: "w1",
				body:     `{"name":"NFT","symbol":"NFT","amount":1,"data":"ipfs://x","address":"H1"}`,
			},
		},
	})
}

func testP2SHOperationsBuildExpectedRequests(t *testing.T) {
	assertRequests(t, []struct {
		name     string
		op       headless.Operation
		expected expectedRequest
	}{
		{
			name: "tx proposal",
			op: headless.TxProposalParams{
				WalletID: "w1",
				Outputs: []headless.ProposalOutput{
					{Address: "H1", Value: 10},
					{Address: "H2", Value: 1, Token: ptr("t1")},
				},
				Inputs: []headless.ProposalInput{{Hash: "tx1", Index: 0}},
			},
			expected: expectedRequest{
				method:   http.MethodPost,
				path:     "/wallet/p2sh/tx-proposal",
				walletID: "w1",
				body: `{"outputs":[{"address":"H1","value":10},{"address":"H2","value":1,"token":"t1"}],
					"inputs":[{"hash":"tx1","index":0}]}`,
			},
		}, {
			name: "get my signatures",
			op:   headless.GetMySignaturesParams{WalletID: "w1", TxHex: "00ff"},
			expected: expectedRequest{
				method:   http.MethodPost,
				path:     "/wallet/p2sh/tx-proposal/get-my-signatures",
				walletID: "w1",
				body:     `{"txHex":"00ff"}`,
			},
		}, {
			name: "sign",
			op:   headless.SignProposalParams{WalletID: "w1", TxHex: "00ff", Signatures: []string{"s1", "s2"}},
			expected: expectedRequest{
				method:   http.MethodPost,
				path:     "/wallet/p2sh/tx-proposal/sign",
				walletID: "w1",
				body:     `{"txHex":"00ff","signatures":["s1","s2"]}`,
			},
		}, {
			name: "sign and push",
			op:   headless.SignProposalParams{WalletID: "w1", TxHex: "00ff", Signatures: []string{"s1"}, Push: true},
			expected: expectedRequest{
				method:   http.MethodPost,
				path:     "/wallet/p2sh/tx-proposal/sign-and-push",
				walletID: "w1",
				body:     `{"txHex":"00ff","signatures":["s1"]}`,
			},
		}, {
			name: "create token",
			op: headless.P2SHCreateTokenParams{
				WalletID:    "w1",
				Name:        "Token",
				Symbol:      "TKN",
				Amount:      100,
				Authorities: headless.TokenAuthorities{MintAuthorityAddress: ptr("H3")},
			},
			expected: expectedRequest{
				method:   http.MethodPost,
				path:     "/wallet/p2sh/tx-proposal/create-token",
				walletID: "w1",
				body:     `{"name":"Token","symbol":"TKN","amount":100,"mint_authority_address":"H3"}`,
			},
		}, {
			name: "mint tokens",
			op:   headless.P2SHMintTokensParams{WalletID: "w1", Token: "t1", Amount: 5, CreateMint: ptr(false)},
			expected: expectedRequest{
				method:   http.MethodPost,
				path:     "/wallet/p2sh/tx-proposal/mint-tokens",
				walletID: "w1",
				body:     `{"token":"t1","amount":5,"create_mint":false}`,
			},
		}, {
			name: "melt tokens",
			op:   headless.P2SHMeltTokensParams{WalletID: "w1", Token: "t1", Amount: 5, DepositAddress: ptr("H2")},
			expected: expectedRequest{
				method:   http.MethodPost,
				path:     "/wallet/p2sh/tx-proposal/melt-tokens",
				walletID: "w1",
				body:     `{"token":"t1","amount":5,"deposit_address":"H2"}`,
			},
		},
	})
}

func testSendForwardsBodyUntouched(t *testing.T) {
	// given
	body := `{"outputs": [ {"address":"H1","value":1} ], "<not>": "validated"`

	// when
	req, err := headless.SendParams{WalletID: "w1", Body: body}.Request()

	// then
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/wallet/send-tx", req.Path)
	assert.Equal(t, "application/json", req.ContentType)
	assert.Equal(t, body, string(req.Body))
}

func testStopHasNoBody(t *testing.T) {
	// when
	req, err := headless.StopParams{WalletID: "w1"}.Request()

	// then
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/wallet/stop", req.Path)
	assert.Equal(t, "w1", req.WalletID)
	assert.Nil(t, req.Body)
	assert.Empty(t, req.ContentType)
}

func assertRequests(t *testing.T, tcs []struct {
	name     string
	op       headless.Operation
	expected expectedRequest
},
) {
	t.Helper()

	for _, tc := range tcs {
		t.Run(tc.name, func(tt *testing.T) {
			// when
			req, err := tc.op.Request()

			// then
			require.NoError(tt, err)
			assert.Equal(tt, tc.expected.method, req.Method)
			assert.Equal(tt, tc.expected.path, req.Path)
			assert.Equal(tt, tc.expected.walletID, req.WalletID)
			if tc.expected.query == nil {
				assert.Empty(tt, req.Query)
			} else {
				assert.Equal(tt, tc.expected.query, req.Query)
			}
			if tc.expected.body == "" {
				assert.Nil(tt, req.Body)
			} else {
				assert.JSONEq(tt, tc.expected.body, string(req.Body))
				assert.Equal(tt, "application/json", req.ContentType)
			}
		})
	}
}
