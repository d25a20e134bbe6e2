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

// Package curve answers secp256k1 point membership questions for encoded
// public keys.
package curve

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

const (
	CompressedKeySize = btcec.PubKeyBytesLenCompressed
	XOnlyKeySize      = schnorr.PubKeyBytesLen

	evenParityMarker = 0x02
)

// IsValidPoint reports whether b is a 33-byte compressed encoding of a point
// on the secp256k1 curve
func IsValidPoint(b []byte) bool {
	_, err := ParseCompressed(b)
	return err == nil
}

// IsValidXOnly reports whether x is a 32-byte x coordinate of a curve point,
// assuming even parity for the missing y coordinate
func IsValidXOnly(x []byte) bool {
	if len(x) != XOnlyKeySize {
		return false
	}
	point := make([]byte, 0, CompressedKeySize)
	point = append(point, evenParityMarker)
	point = append(point, x...)
	return IsValidPoint(point)
}

// ParseXOnly parses a BIP340 x-only public key
func ParseXOnly(x []byte) (*btcec.PublicKey, error) {
	return schnorr.ParsePubKey(x)
}

// ParseCompressed parses a 33-byte compressed public key and rejects every
// other serialization
func ParseCompressed(b []byte) (*btcec.PublicKey, error) {
	if len(b) != CompressedKeySize {
		return nil, fmt.Errorf(
			"compressed public key must be %d bytes, got %d",
			CompressedKeySize,
			len(b),
		)
	}
	return btcec.ParsePubKey(b)
}
