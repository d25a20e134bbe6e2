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

package address

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/blinklabs-io/destcheck/bech32"
	"github.com/blinklabs-io/destcheck/common"
	"github.com/blinklabs-io/destcheck/curve"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	LegacyHashSize     = 20
	TaprootProgramSize = curve.XOnlyKeySize

	WitnessVersion0 = 0
	WitnessVersion1 = 1
)

// Kind identifies the script template a destination pays to
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPubKeyHash
	KindScriptHash
	KindWitnessV0
	KindTaproot
)

func (k Kind) String() string {
	switch k {
	case KindPubKeyHash:
		return "p2pkh"
	case KindScriptHash:
		return "p2sh"
	case KindWitnessV0:
		return "witness_v0"
	case KindTaproot:
		return "p2tr"
	default:
		return "unknown"
	}
}

// IsSegwit reports whether the destination uses a witness program
func (k Kind) IsSegwit() bool {
	return k == KindWitnessV0 || k == KindTaproot
}

// Destination is a decoded, validated address. Program holds the hash for
// legacy destinations and the witness program for segwit ones.
type Destination struct {
	Kind           Kind
	WitnessVersion byte
	Program        []byte
	Encoding       bech32.Encoding
}

func (d Destination) String() string {
	if d.Kind.IsSegwit() {
		return fmt.Sprintf(
			"%s(v%d, %d bytes, %s)",
			d.Kind,
			d.WitnessVersion,
			len(d.Program),
			d.Encoding,
		)
	}
	return fmt.Sprintf("%s(%x)", d.Kind, d.Program)
}

// Equal reports whether two destinations pay to the same script
func (d Destination) Equal(other Destination) bool {
	return d.Kind == other.Kind &&
		d.WitnessVersion == other.WitnessVersion &&
		bytes.Equal(d.Program, other.Program)
}

// decodeLegacy handles base58check P2PKH and P2SH addresses
func (v *Validator) decodeLegacy(addr string) (Destination, error) {
	decoded, version, err := base58.CheckDecode(addr)
	if err != nil {
		return Destination{}, common.NewStructuralError(
			"invalid base58check encoding",
			err,
		)
	}
	if len(decoded) != LegacyHashSize {
		return Destination{}, common.NewSemanticError(
			fmt.Sprintf(
				"legacy payload must be %d bytes, got %d",
				LegacyHashSize,
				len(decoded),
			),
			nil,
		)
	}
	switch version {
	case v.params.PubKeyHashByte:
		return Destination{Kind: KindPubKeyHash, Program: decoded}, nil
	case v.params.ScriptHashByte:
		return Destination{Kind: KindScriptHash, Program: decoded}, nil
	default:
		return Destination{}, common.NewSemanticError(
			fmt.Sprintf(
				"version byte 0x%02x does not belong to network %s",
				version,
				v.params.Name,
			),
			nil,
		)
	}
}

// decodeSegwit handles bech32/bech32m witness addresses
func (v *Validator) decodeSegwit(addr string) (Destination, error) {
	decoded, err := bech32.Decode(addr)
	if err != nil {
		return Destination{}, common.NewStructuralError(
			"invalid bech32 encoding",
			err,
		)
	}
	if decoded.Prefix != v.params.Bech32Hrp {
		return Destination{}, v.prefixMismatchError(decoded.Prefix)
	}
	version := decoded.Words[0]
	program, err := bech32.ConvertBits(decoded.Words[1:], 5, 8, false)
	if err != nil {
		return Destination{}, common.NewStructuralError(
			"invalid witness program",
			err,
		)
	}
	ret := Destination{
		WitnessVersion: version,
		Program:        program,
		Encoding:       decoded.Encoding,
	}
	switch version {
	case WitnessVersion0:
		if decoded.Encoding != bech32.Bech32 {
			return Destination{}, common.NewStructuralError(
				"witness version 0 requires a bech32 checksum",
				nil,
			)
		}
		if len(program) == 0 {
			return Destination{}, common.NewSemanticError(
				"empty witness program",
				nil,
			)
		}
		ret.Kind = KindWitnessV0
	case WitnessVersion1:
		if decoded.Encoding != bech32.Bech32m {
			return Destination{}, common.NewStructuralError(
				"witness version 1 requires a bech32m checksum",
				nil,
			)
		}
		if len(program) != TaprootProgramSize {
			return Destination{}, common.NewSemanticError(
				fmt.Sprintf(
					"witness version 1 program must be %d bytes, got %d",
					TaprootProgramSize,
					len(program),
				),
				nil,
			)
		}
		if !curve.IsValidXOnly(program) {
			return Destination{}, common.NewSemanticError(
				"witness program is not a valid x-only public key",
				nil,
			)
		}
		ret.Kind = KindTaproot
	default:
		// Later versions need an explicit policy before they are accepted
		return Destination{}, common.NewSemanticError(
			fmt.Sprintf("unsupported witness version %d", version),
			nil,
		)
	}
	return ret, nil
}

// hasSegwitPrefix reports whether addr claims to be a segwit address for the
// validator's network
func (v *Validator) hasSegwitPrefix(addr string) bool {
	return strings.HasPrefix(strings.ToLower(addr), v.params.SegwitPrefix())
}

func (v *Validator) prefixMismatchError(prefix string) error {
	return common.NewSemanticError(
		fmt.Sprintf(
			"prefix %q does not match network prefix %q",
			prefix,
			v.params.Bech32Hrp,
		),
		nil,
	)
}
