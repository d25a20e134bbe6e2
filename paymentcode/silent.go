// Copyright 2026 Blink Labs Software
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

package paymentcode

import (
	"fmt"

	"github.com/blinklabs-io/destcheck/bech32"
	"github.com/blinklabs-io/destcheck/common"
	"github.com/blinklabs-io/destcheck/curve"
	"github.com/btcsuite/btcd/btcec/v2"
)

const (
	SilentPrefixMainnet = "sp"
	SilentPrefixTestnet = "tsp"
	// SilentMaxLength is the length bound for silent payment codes
	SilentMaxLength   = 1023
	SilentVersion0    = 0
	SilentPayloadSize = 2 * curve.CompressedKeySize
)

// SilentCode is a parsed BIP352 silent payment code
type SilentCode struct {
	Prefix   string
	Version  byte
	ScanKey  *btcec.PublicKey
	SpendKey *btcec.PublicKey
}

// IsTestnet reports whether the code is meant for a test network
func (c SilentCode) IsTestnet() bool {
	return c.Prefix == SilentPrefixTestnet
}

// ParseSilent decodes and validates a BIP352 silent payment code. Only
// version 0 is accepted.
func ParseSilent(code string) (SilentCode, error) {
	decoded, err := bech32.DecodeWithLimit(code, SilentMaxLength)
	if err != nil {
		return SilentCode{}, common.NewStructuralError(
			"invalid bech32m encoding",
			err,
		)
	}
	if decoded.Encoding != bech32.Bech32m {
		return SilentCode{}, common.NewStructuralError(
			"silent payment codes require a bech32m checksum",
			nil,
		)
	}
	if decoded.Prefix != SilentPrefixMainnet &&
		decoded.Prefix != SilentPrefixTestnet {
		return SilentCode{}, common.NewSemanticError(
			fmt.Sprintf("unexpected silent payment prefix %q", decoded.Prefix),
			nil,
		)
	}
	version := decoded.Words[0]
	if version != SilentVersion0 {
		return SilentCode{}, common.NewSemanticError(
			fmt.Sprintf("unsupported silent payment version %d", version),
			nil,
		)
	}
	payload, err := bech32.ConvertBits(decoded.Words[1:], 5, 8, false)
	if err != nil {
		return SilentCode{}, common.NewStructuralError(
			"invalid silent payment payload",
			err,
		)
	}
	if len(payload) != SilentPayloadSize {
		return SilentCode{}, common.NewSemanticError(
			fmt.Sprintf(
				"silent payment payload must be %d bytes, got %d",
				SilentPayloadSize,
				len(payload),
			),
			nil,
		)
	}
	scanKey, err := curve.ParseCompressed(payload[:curve.CompressedKeySize])
	if err != nil {
		return SilentCode{}, common.NewSemanticError("invalid scan key", err)
	}
	spendKey, err := curve.ParseCompressed(payload[curve.CompressedKeySize:])
	if err != nil {
		return SilentCode{}, common.NewSemanticError("invalid spend key", err)
	}
	return SilentCode{
		Prefix:   decoded.Prefix,
		Version:  version,
		ScanKey:  scanKey,
		SpendKey: spendKey,
	}, nil
}

// Silent checks BIP352 silent payment codes
type Silent struct{}

func (Silent) Name() string {
	return "bip352"
}

func (Silent) Check(code string) error {
	_, err := ParseSilent(code)
	return err
}
