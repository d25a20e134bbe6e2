// Copyright 2023 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package network

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/go-playground/validator/v10"
)

// Network definitions
var (
	NetworkBitcoinBlu = Params{
		Name:                "bitcoinblu",
		MessagePrefix:       "\x1aBitcoinBlu Signed Message:\n",
		Bech32Hrp:           "bb",
		Bip32PublicVersion:  0x0488b31f,
		Bip32PrivateVersion: 0x0488afe5,
		PubKeyHashByte:      0x19,
		ScriptHashByte:      0x56,
		WifByte:             0xbc,
		CoinType:            4353123,
		URIScheme:           "bitcoinblu",
		Symbol:              "BBLU",
		P2PPort:             8343,
		RPCPort:             8342,
	}
	NetworkBitcoin = Params{
		Name:                "bitcoin",
		MessagePrefix:       "\x18Bitcoin Signed Message:\n",
		Bech32Hrp:           "bc",
		Bip32PublicVersion:  0x0488b21e,
		Bip32PrivateVersion: 0x0488ade4,
		PubKeyHashByte:      0x00,
		ScriptHashByte:      0x05,
		WifByte:             0x80,
		CoinType:            0,
		URIScheme:           "bitcoin",
		Symbol:              "BTC",
		P2PPort:             8333,
		RPCPort:             8332,
	}

	NetworkInvalid = Params{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of known networks for use in lookup functions
var networks = []Params{
	NetworkBitcoinBlu,
	NetworkBitcoin,
}

var validate = validator.New()

// Networks returns a copy of the predefined networks
func Networks() []Params {
	ret := make([]Params, len(networks))
	copy(ret, networks)
	return ret
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Params {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByBech32Hrp returns a predefined network by its segwit human-readable prefix
func NetworkByBech32Hrp(hrp string) Params {
	for _, network := range networks {
		if network.Bech32Hrp == hrp {
			return network
		}
	}
	return NetworkInvalid
}

// Params describes the address and key encoding conventions of a
// Bitcoin-like network. Values are passed around by copy and never mutated.
type Params struct {
	Name                string `validate:"required"`
	MessagePrefix       string
	Bech32Hrp           string `validate:"required,alphanum,lowercase,max=83"`
	Bip32PublicVersion  uint32 `validate:"required"`
	Bip32PrivateVersion uint32 `validate:"required,nefield=Bip32PublicVersion"`
	PubKeyHashByte      uint8
	ScriptHashByte      uint8 `validate:"nefield=PubKeyHashByte"`
	WifByte             uint8
	CoinType            uint32
	URIScheme           string `validate:"omitempty,alpha,lowercase"`
	Symbol              string
	P2PPort             uint16
	RPCPort             uint16
}

func (p Params) String() string {
	return p.Name
}

// Validate checks that the parameter set is internally consistent. It is
// intended for caller-supplied networks; the predefined ones always pass.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid network parameters %q: %w", p.Name, err)
	}
	return nil
}

// SegwitPrefix returns the lowercase string every segwit address on this
// network starts with
func (p Params) SegwitPrefix() string {
	return p.Bech32Hrp + "1"
}

// ChainParams projects the parameters onto btcd's chaincfg.Params. A new
// value is built on every call and nothing is registered with chaincfg.
func (p Params) ChainParams() *chaincfg.Params {
	ret := &chaincfg.Params{
		Name:             p.Name,
		Bech32HRPSegwit:  p.Bech32Hrp,
		PubKeyHashAddrID: p.PubKeyHashByte,
		ScriptHashAddrID: p.ScriptHashByte,
		PrivateKeyID:     p.WifByte,
		HDCoinType:       p.CoinType,
	}
	if p.P2PPort != 0 {
		ret.DefaultPort = strconv.FormatUint(uint64(p.P2PPort), 10)
	}
	binary.BigEndian.PutUint32(ret.HDPublicKeyID[:], p.Bip32PublicVersion)
	binary.BigEndian.PutUint32(ret.HDPrivateKeyID[:], p.Bip32PrivateVersion)
	return ret
}
