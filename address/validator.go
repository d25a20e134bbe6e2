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

// Package address validates spendable destinations for a single network.
//
// A Validator is bound to one network.Params value at construction and is
// safe for concurrent use. Decode returns a typed Destination or a
// *common.ValidationError; IsValid collapses every failure to false.
//
// Accepted forms:
//   - base58check P2PKH and P2SH with the network's version bytes and a
//     20-byte hash
//   - witness version 0 with any non-empty program and a bech32 checksum
//   - witness version 1 with a 32-byte program that is a valid x-only key and
//     a bech32m checksum
//
// Anything else, including input that is neither legacy nor prefixed with the
// network's segwit prefix, is rejected.
package address

import (
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/destcheck/bech32"
	"github.com/blinklabs-io/destcheck/network"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
)

type Validator struct {
	params network.Params
	logger *slog.Logger
}

type ValidatorOptionFunc func(*Validator)

// WithLogger specifies the logger used for rejection diagnostics
func WithLogger(logger *slog.Logger) ValidatorOptionFunc {
	return func(v *Validator) {
		v.logger = logger
	}
}

// NewValidator returns a Validator for the provided network
func NewValidator(
	params network.Params,
	options ...ValidatorOptionFunc,
) *Validator {
	v := &Validator{
		params: params,
	}
	for _, option := range options {
		option(v)
	}
	if v.logger == nil {
		v.logger = slog.Default()
	}
	return v
}

// Params returns the network the validator is bound to
func (v *Validator) Params() network.Params {
	return v.params
}

// Decode parses and validates addr
func (v *Validator) Decode(addr string) (Destination, error) {
	dest, legacyErr := v.decodeLegacy(addr)
	if legacyErr == nil {
		return dest, nil
	}
	if !v.hasSegwitPrefix(addr) {
		// Report well-formed bech32 for another network as a prefix
		// mismatch rather than as a base58 failure
		if decoded, err := bech32.Decode(addr); err == nil {
			return Destination{}, v.prefixMismatchError(decoded.Prefix)
		}
		return Destination{}, legacyErr
	}
	return v.decodeSegwit(addr)
}

// IsValid reports whether addr is a spendable destination on the
// validator's network. It never panics and never returns an error.
func (v *Validator) IsValid(addr string) (valid bool) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.Error(
				"recovered from panic while validating address",
				"panic", r,
			)
			valid = false
		}
	}()
	if _, err := v.Decode(addr); err != nil {
		v.logger.Debug(
			"address rejected",
			"network", v.params.Name,
			"error", err,
		)
		return false
	}
	return true
}

// OutputScript returns the scriptPubKey paying to addr
func (v *Validator) OutputScript(addr string) ([]byte, error) {
	dest, err := v.Decode(addr)
	if err != nil {
		return nil, err
	}
	return v.destinationScript(dest)
}

func (v *Validator) destinationScript(dest Destination) ([]byte, error) {
	switch dest.Kind {
	case KindPubKeyHash:
		tmpAddr, err := btcutil.NewAddressPubKeyHash(
			dest.Program,
			v.params.ChainParams(),
		)
		if err != nil {
			return nil, err
		}
		return txscript.PayToAddrScript(tmpAddr)
	case KindScriptHash:
		tmpAddr, err := btcutil.NewAddressScriptHashFromHash(
			dest.Program,
			v.params.ChainParams(),
		)
		if err != nil {
			return nil, err
		}
		return txscript.PayToAddrScript(tmpAddr)
	case KindWitnessV0, KindTaproot:
		return witnessScript(dest.WitnessVersion, dest.Program)
	default:
		return nil, fmt.Errorf("no script template for %s destination", dest.Kind)
	}
}

// witnessScript builds <version op> <direct push of program>. The push is
// written by hand because the script builder would turn a one byte program
// into a small integer opcode.
func witnessScript(version byte, program []byte) ([]byte, error) {
	var versionOp byte
	switch version {
	case WitnessVersion0:
		versionOp = txscript.OP_0
	case WitnessVersion1:
		versionOp = txscript.OP_1
	default:
		return nil, fmt.Errorf("unsupported witness version %d", version)
	}
	if len(program) == 0 || len(program) > txscript.OP_DATA_75 {
		return nil, fmt.Errorf(
			"witness program length %d cannot be pushed directly",
			len(program),
		)
	}
	ret := make([]byte, 0, 2+len(program))
	ret = append(ret, versionOp, byte(len(program)))
	return append(ret, program...), nil
}
