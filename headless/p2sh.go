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

const p2shProposalPath = "/wallet/p2sh/tx-proposal"

// ProposalOutput is an output of a multisig transaction proposal.
type ProposalOutput struct {
	Address string
	Value   uint32
	Token   *string
}

func (o ProposalOutput) toValue() Value {
	return NewDict().
		Set("address", NewString(o.Address)).
		Set("value", NewInt(o.Value)).
		SetOptionalString("token", o.Token)
}

// ProposalInput references an unspent output by transaction hash and index.
type ProposalInput struct {
	Hash  string
	Index uint32
}

func (i ProposalInput) toValue() Value {
	return NewDict().
		Set("hash", NewString(i.Hash)).
		Set("index", NewInt(i.Index))
}

type TxProposalParams struct {
	WalletID      string
	Outputs       []ProposalOutput
	Inputs        []ProposalInput
	ChangeAddress *string
}

func (p TxProposalParams) Request() (Request, error) {
	outputs := make(List, 0, len(p.Outputs))
	for _, o := range p.Outputs {
		outputs = append(outputs, o.toValue())
	}

	body := NewDict().
		Set("outputs", outputs).
		SetOptionalString("change_address", p.ChangeAddress)

	if p.Inputs != nil {
		inputs := make(List, 0, len(p.Inputs))
		for _, i := range p.Inputs {
			inputs = append(inputs, i.toValue())
		}
		body.Set("inputs", inputs)
	}

	return postJSONRequest(p2shProposalPath, p.WalletID, body)
}

type GetMySignaturesParams struct {
	WalletID string
	TxHex    string
}

func (p GetMySignaturesParams) Request() (Request, error) {
	body := NewDict().Set("txHex", NewString(p.TxHex))
	return postJSONRequest(p2shProposalPath+"/get-my-signatures", p.WalletID, body)
}

// SignProposalParams assembles the collected signatures into the proposal.
// With Push set, the signed transaction is also pushed to the network.
type SignProposalParams struct {
	WalletID   string
	TxHex      string
	Signatures []string
	Push       bool
}

func (p SignProposalParams) Request() (Request, error) {
	path := p2shProposalPath + "/sign"
	if p.Push {
		path = p2shProposalPath + "/sign-and-push"
	}

	signatures := p.Signatures
	if signatures == nil {
		signatures = []string{}
	}

	body := NewDict().
		Set("txHex", NewString(p.TxHex)).
		Set("signatures", NewStringList(signatures))
	return postJSONRequest(path, p.WalletID, body)
}

type P2SHCreateTokenParams struct {
	WalletID      string
	Name          string
	Symbol        string
	Amount        uint32
	Address       *string
	ChangeAddress *string
	Authorities   TokenAuthorities
}

func (p P2SHCreateTokenParams) Request() (Request, error) {
	body := NewDict().
		Set("name", NewString(p.Name)).
		Set("symbol", NewString(p.Symbol)).
		Set("amount", NewInt(p.Amount)).
		SetOptionalString("address", p.Address).
		SetOptionalString("change_address", p.ChangeAddress)
	return postJSONRequest(p2shProposalPath+"/create-token", p.WalletID, p.Authorities.apply(body))
}

type P2SHMintTokensParams struct {
	WalletID                          string
	Token                             string
	Amount                            uint32
	Address                           *string
	ChangeAddress                     *string
	CreateMint                        *bool
	MintAuthorityAddress              *string
	AllowExternalMintAuthorityAddress *bool
}

func (p P2SHMintTokensParams) Request() (Request, error) {
	body := NewDict().
		Set("token", NewString(p.Token)).
		Set("amount", NewInt(p.Amount)).
		SetOptionalString("address", p.Address).
		SetOptionalString("change_address", p.ChangeAddress).
		SetOptionalBool("create_mint", p.CreateMint).
		SetOptionalString("mint_authority_address", p.MintAuthorityAddress).
		SetOptionalBool("allow_external_mint_authority_address", p.AllowExternalMintAuthorityAddress)
	return postJSONRequest(p2shProposalPath+"/mint-tokens", p.WalletID, body)
}

type P2SHMeltTokensParams struct {
	WalletID                          string
	Token                             string
	Amount                            uint32
	DepositAddress                    *string
	ChangeAddress                     *string
	CreateMelt                        *bool
	MeltAuthorityAddress              *string
	AllowExternalMeltAuthorityAddress *bool
}

func (p P2SHMeltTokensParams) Request() (Request, error) {
	body := NewDict().
		Set("token", NewString(p.Token)).
		Set("amount", NewInt(p.Amount)).
		SetOptionalString("deposit_address", p.DepositAddress).
		SetOptionalString("change_address", p.ChangeAddress).
		SetOptionalBool("create_melt", p.CreateMelt).
		SetOptionalString("melt_authority_address", p.MeltAuthorityAddress).
		SetOptionalBool("allow_external_melt_authority_address", p.AllowExternalMeltAuthorityAddress)
	return postJSONRequest(p2shProposalPath+"/melt-tokens", p.WalletID, body)
}
