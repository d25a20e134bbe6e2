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

// Package destcheck validates payment destinations for Bitcoin-like networks.
//
// A destination is either an address of the configured network (legacy
// base58check or segwit bech32/bech32m) or a static payment code (BIP47 or
// BIP352). Validation is fail-closed: anything that cannot be positively
// identified is rejected.
//
// This package is the main entry point into this library. The address,
// paymentcode, bech32 and network packages can also be used on their own.
package destcheck

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/destcheck/address"
	"github.com/blinklabs-io/destcheck/bech32"
	"github.com/blinklabs-io/destcheck/network"
	"github.com/blinklabs-io/destcheck/paymentcode"
)

// ClassificationKind identifies what kind of destination was recognized
type ClassificationKind uint8

const (
	ClassificationUnknown ClassificationKind = iota
	ClassificationAddress
	ClassificationPaymentCode
)

func (k ClassificationKind) String() string {
	switch k {
	case ClassificationAddress:
		return "address"
	case ClassificationPaymentCode:
		return "payment code"
	default:
		return "unknown"
	}
}

// Classification describes a recognized destination. Destination is set for
// addresses and Scheme for payment codes.
type Classification struct {
	Kind        ClassificationKind
	Destination address.Destination
	Scheme      string
}

func (c Classification) String() string {
	switch c.Kind {
	case ClassificationAddress:
		return fmt.Sprintf("address %s", c.Destination)
	case ClassificationPaymentCode:
		return fmt.Sprintf("payment code (%s)", c.Scheme)
	default:
		return c.Kind.String()
	}
}

// The Checker type validates destinations for a single network. It is
// immutable after construction and safe for concurrent use.
type Checker struct {
	params               network.Params
	logger               *slog.Logger
	paymentCodeCheckers  []paymentcode.Checker
	addressValidator     *address.Validator
	paymentCodeValidator *paymentcode.Validator
}

// New returns a Checker for the specified network. An error is returned if
// the network parameters are inconsistent
func New(
	params network.Params,
	options ...CheckerOptionFunc,
) (*Checker, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	c := &Checker{
		params:              params,
		paymentCodeCheckers: paymentcode.DefaultCheckers(),
	}
	// Apply provided options functions
	for _, option := range options {
		option(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.addressValidator = address.NewValidator(
		params,
		address.WithLogger(c.logger),
	)
	c.paymentCodeValidator = paymentcode.NewValidator(
		paymentcode.WithCheckers(c.paymentCodeCheckers...),
		paymentcode.WithLogger(c.logger),
	)
	return c, nil
}

// Network returns the network parameters the Checker was built with
func (c *Checker) Network() network.Params {
	return c.params
}

// AddressValidator returns the underlying address validator
func (c *Checker) AddressValidator() *address.Validator {
	return c.addressValidator
}

// PaymentCodeValidator returns the underlying payment code validator
func (c *Checker) PaymentCodeValidator() *paymentcode.Validator {
	return c.paymentCodeValidator
}

func (c *Checker) IsAddressValid(addr string) bool {
	return c.addressValidator.IsValid(addr)
}

func (c *Checker) IsPaymentCodeValid(code string) bool {
	return c.paymentCodeValidator.IsValid(code)
}

// IsDestinationValid reports whether s is either a valid address or a valid
// payment code
func (c *Checker) IsDestinationValid(s string) bool {
	return c.IsAddressValid(s) || c.IsPaymentCodeValid(s)
}

// Classify identifies s as an address or a payment code. Addresses are tried
// first. When neither matches, the address and payment code errors are
// returned joined together.
func (c *Checker) Classify(s string) (Classification, error) {
	dest, addrErr := c.addressValidator.Decode(s)
	if addrErr == nil {
		return Classification{
			Kind:        ClassificationAddress,
			Destination: dest,
		}, nil
	}
	scheme, codeErr := c.paymentCodeValidator.Scheme(s)
	if codeErr == nil {
		return Classification{
			Kind:   ClassificationPaymentCode,
			Scheme: scheme,
		}, nil
	}
	return Classification{}, errors.Join(
		fmt.Errorf("address: %w", addrErr),
		fmt.Errorf("payment code: %w", codeErr),
	)
}

// IsAddressValid reports whether addr is a valid address on the network
// described by params
func IsAddressValid(addr string, params network.Params) bool {
	return address.NewValidator(params).IsValid(addr)
}

// IsReusablePaymentCodeValid reports whether code is a valid BIP47 payment code
func IsReusablePaymentCodeValid(code string) bool {
	return paymentcode.IsReusablePaymentCodeValid(code)
}

// IsSilentPaymentCodeValid reports whether code is a valid BIP352 silent
// payment code
func IsSilentPaymentCodeValid(code string) bool {
	return paymentcode.IsSilentPaymentCodeValid(code)
}

// IsPaymentCodeValid reports whether code is valid under either payment code
// scheme
func IsPaymentCodeValid(code string) bool {
	return paymentcode.IsPaymentCodeValid(code)
}

// IsDestinationValid reports whether s is a valid address on the network
// described by params or a valid payment code
func IsDestinationValid(s string, params network.Params) bool {
	return IsAddressValid(s, params) || IsPaymentCodeValid(s)
}

// DecodeBech32 decodes a bech32 or bech32m string of at most 90 characters
func DecodeBech32(input string) (bech32.Decoded, error) {
	return bech32.Decode(input)
}

// EncodeBech32 encodes 5-bit words with the bech32 checksum
func EncodeBech32(prefix string, words []byte) (string, error) {
	return bech32.Encode(prefix, words)
}
