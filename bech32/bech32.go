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

// Package bech32 decodes and encodes bech32 and bech32m strings on top of
// btcutil's implementation, adding checksum variant detection and typed
// errors.
package bech32

import (
	"errors"
	"fmt"
	"strings"

	btcbech32 "github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	// MaxLength is the length bound for segwit addresses
	MaxLength = 90

	checksumLength = 6
	minHrpChar     = 33
	maxHrpChar     = 126
)

// Encoding identifies the checksum constant of a bech32-family string
type Encoding uint8

const (
	Bech32 Encoding = iota
	Bech32m
)

func (e Encoding) String() string {
	switch e {
	case Bech32:
		return "bech32"
	case Bech32m:
		return "bech32m"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// Decoded is the result of a successful decode. Words always contains at
// least one 5-bit value.
type Decoded struct {
	Prefix   string
	Words    []byte
	Encoding Encoding
}

// Decode decodes a bech32 or bech32m string of at most MaxLength characters
func Decode(input string) (Decoded, error) {
	return DecodeWithLimit(input, MaxLength)
}

// DecodeWithLimit decodes a bech32 or bech32m string of at most limit characters
func DecodeWithLimit(input string, limit int) (Decoded, error) {
	if len(input) > limit {
		return Decoded{}, &DecodeError{
			Reason: fmt.Sprintf(
				"length %d exceeds limit of %d",
				len(input),
				limit,
			),
		}
	}
	prefix, words, err := btcbech32.DecodeNoLimit(input)
	if err != nil {
		return Decoded{}, &DecodeError{Reason: "malformed string", Err: err}
	}
	if len(words) == 0 {
		return Decoded{}, &DecodeError{Reason: "empty data part"}
	}
	lower := strings.ToLower(input)
	enc, err := checksumEncoding(
		prefix,
		words,
		lower[len(lower)-checksumLength:],
	)
	if err != nil {
		return Decoded{}, &DecodeError{Reason: "checksum", Err: err}
	}
	return Decoded{
		Prefix:   strings.ToLower(prefix),
		Words:    words,
		Encoding: enc,
	}, nil
}

// checksumEncoding works out which checksum constant produced the given
// checksum by re-encoding under both variants
func checksumEncoding(
	prefix string,
	words []byte,
	checksum string,
) (Encoding, error) {
	for _, enc := range []Encoding{Bech32, Bech32m} {
		tmp, err := encode(prefix, words, enc)
		if err != nil {
			return 0, err
		}
		if tmp[len(tmp)-checksumLength:] == checksum {
			return enc, nil
		}
	}
	return 0, errors.New("checksum matches neither bech32 nor bech32m")
}

// Encode encodes prefix and 5-bit words as a bech32 string
func Encode(prefix string, words []byte) (string, error) {
	return EncodeWithLimit(prefix, words, Bech32, MaxLength)
}

// EncodeM encodes prefix and 5-bit words as a bech32m string
func EncodeM(prefix string, words []byte) (string, error) {
	return EncodeWithLimit(prefix, words, Bech32m, MaxLength)
}

// EncodeWithLimit encodes prefix and 5-bit words with the requested checksum
// variant. It rejects anything DecodeWithLimit would not accept back, so the
// two always round-trip.
func EncodeWithLimit(
	prefix string,
	words []byte,
	enc Encoding,
	limit int,
) (string, error) {
	if prefix == "" {
		return "", errors.New("empty prefix")
	}
	for i := range len(prefix) {
		if prefix[i] < minHrpChar || prefix[i] > maxHrpChar {
			return "", fmt.Errorf(
				"invalid prefix character 0x%02x at position %d",
				prefix[i],
				i,
			)
		}
	}
	if len(words) == 0 {
		return "", errors.New("empty data part")
	}
	for i, word := range words {
		if word > 31 {
			return "", fmt.Errorf(
				"invalid 5-bit word %d at position %d",
				word,
				i,
			)
		}
	}
	ret, err := encode(strings.ToLower(prefix), words, enc)
	if err != nil {
		return "", err
	}
	if len(ret) > limit {
		return "", fmt.Errorf(
			"encoded length %d exceeds limit of %d",
			len(ret),
			limit,
		)
	}
	return ret, nil
}

func encode(prefix string, words []byte, enc Encoding) (string, error) {
	switch enc {
	case Bech32:
		return btcbech32.Encode(prefix, words)
	case Bech32m:
		return btcbech32.EncodeM(prefix, words)
	default:
		return "", fmt.Errorf("unknown encoding: %s", enc)
	}
}

// ConvertBits regroups a sequence of fromBits-wide values into toBits-wide
// values. With pad set, a trailing partial group is zero-filled; without it,
// a trailing partial group must be short and all zero.
func ConvertBits(
	data []byte,
	fromBits uint8,
	toBits uint8,
	pad bool,
) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, fmt.Errorf(
			"invalid bit group sizes: from %d to %d",
			fromBits,
			toBits,
		)
	}
	ret, err := btcbech32.ConvertBits(data, fromBits, toBits, pad)
	if err != nil {
		return nil, &PaddingError{Err: err}
	}
	return ret, nil
}
