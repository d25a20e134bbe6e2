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
	"bytes"
	"fmt"

	"github.com/blinklabs-io/destcheck/common"
	"github.com/blinklabs-io/destcheck/curve"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	// ReusablePrefix is the base58check version byte of a BIP47 payment
	// code, which makes every code start with "PM8T"
	ReusablePrefix      = 0x47
	ReusablePayloadSize = 80
	ReusableVersion1    = 0x01

	ChainCodeSize = 32

	reusableKeyOffset       = 2
	reusableChainCodeOffset = reusableKeyOffset + curve.CompressedKeySize
	reusableReservedOffset  = reusableChainCodeOffset + ChainCodeSize

	// FeatureBitmessage is the BIP47 features bit announcing Bitmessage
	// notification support
	FeatureBitmessage = 0x01
)

// ReusableCode is a parsed BIP47 payment code
type ReusableCode struct {
	Version   byte
	Features  byte
	PublicKey *btcec.PublicKey
	ChainCode []byte
	Reserved  []byte
}

// SupportsBitmessage reports whether the Bitmessage feature bit is set
func (c ReusableCode) SupportsBitmessage() bool {
	return c.Features&FeatureBitmessage != 0
}

// ParseReusable decodes and validates a BIP47 payment code
func ParseReusable(code string) (ReusableCode, error) {
	payload, prefix, err := base58.CheckDecode(code)
	if err != nil {
		return ReusableCode{}, common.NewStructuralError(
			"invalid base58check encoding",
			err,
		)
	}
	if prefix != ReusablePrefix {
		return ReusableCode{}, common.NewSemanticError(
			fmt.Sprintf("unexpected payment code prefix 0x%02x", prefix),
			nil,
		)
	}
	if len(payload) != ReusablePayloadSize {
		return ReusableCode{}, common.NewStructuralError(
			fmt.Sprintf(
				"payment code payload must be %d bytes, got %d",
				ReusablePayloadSize,
				len(payload),
			),
			nil,
		)
	}
	if payload[0] != ReusableVersion1 {
		return ReusableCode{}, common.NewSemanticError(
			fmt.Sprintf("unsupported payment code version %d", payload[0]),
			nil,
		)
	}
	pubKey, err := curve.ParseCompressed(
		payload[reusableKeyOffset:reusableChainCodeOffset],
	)
	if err != nil {
		return ReusableCode{}, common.NewSemanticError(
			"payment code public key is not a valid curve point",
			err,
		)
	}
	return ReusableCode{
		Version:   payload[0],
		Features:  payload[1],
		PublicKey: pubKey,
		ChainCode: bytes.Clone(
			payload[reusableChainCodeOffset:reusableReservedOffset],
		),
		Reserved: bytes.Clone(payload[reusableReservedOffset:]),
	}, nil
}

// Reusable checks BIP47 reusable payment codes
type Reusable struct{}

func (Reusable) Name() string {
	return "bip47"
}

func (Reusable) Check(code string) error {
	_, err := ParseReusable(code)
	return err
}
