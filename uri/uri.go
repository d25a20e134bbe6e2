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

// Package uri parses BIP21 payment URIs such as
// "bitcoinblu:bb1q...?amount=0.5&label=Alice".
//
// The destination part must be a valid address of the configured network or
// a valid payment code. Parameters prefixed with "req-" that are not
// understood make the whole URI invalid.
package uri

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/blinklabs-io/destcheck"
	"github.com/blinklabs-io/destcheck/common"
	"github.com/blinklabs-io/destcheck/network"
	"github.com/shopspring/decimal"
)

const (
	ParamAmount  = "amount"
	ParamLabel   = "label"
	ParamMessage = "message"

	requiredParamPrefix = "req-"

	// MaxAmountDecimals is the number of decimal places of the smallest unit
	MaxAmountDecimals = 8
)

var ErrSchemeMismatch = errors.New("URI scheme does not match network")

// PaymentURI is a parsed payment URI
type PaymentURI struct {
	Scheme      string
	Destination string
	Target      destcheck.Classification
	// Amount is nil when the URI does not carry one
	Amount  *decimal.Decimal
	Label   string
	Message string
	Extra   map[string]string
}

// AmountUnits returns the amount in the smallest unit, or 0 when no amount is
// present
func (p PaymentURI) AmountUnits() int64 {
	if p.Amount == nil {
		return 0
	}
	return p.Amount.Shift(MaxAmountDecimals).IntPart()
}

// Parser parses payment URIs for a single network
type Parser struct {
	checker *destcheck.Checker
}

func NewParser(checker *destcheck.Checker) *Parser {
	return &Parser{
		checker: checker,
	}
}

// Parse parses raw with a Checker built for params
func Parse(raw string, params network.Params) (PaymentURI, error) {
	checker, err := destcheck.New(params)
	if err != nil {
		return PaymentURI{}, err
	}
	return NewParser(checker).Parse(raw)
}

func (p *Parser) Parse(raw string) (PaymentURI, error) {
	params := p.checker.Network()
	if params.URIScheme == "" {
		return PaymentURI{}, fmt.Errorf(
			"network %s has no URI scheme",
			params.Name,
		)
	}
	scheme, rest, found := strings.Cut(raw, ":")
	if !found {
		return PaymentURI{}, common.NewStructuralError("missing URI scheme", nil)
	}
	if !strings.EqualFold(scheme, params.URIScheme) {
		return PaymentURI{}, common.NewSemanticError(
			fmt.Sprintf("unexpected scheme %q", scheme),
			ErrSchemeMismatch,
		)
	}
	path, query, _ := strings.Cut(rest, "?")
	dest, err := url.PathUnescape(path)
	if err != nil {
		return PaymentURI{}, common.NewStructuralError(
			"invalid destination escaping",
			err,
		)
	}
	if dest == "" {
		return PaymentURI{}, common.NewStructuralError("missing destination", nil)
	}
	target, err := p.checker.Classify(dest)
	if err != nil {
		return PaymentURI{}, common.NewSemanticError("invalid destination", err)
	}
	ret := PaymentURI{
		Scheme:      params.URIScheme,
		Destination: dest,
		Target:      target,
	}
	if err := ret.parseQuery(query); err != nil {
		return PaymentURI{}, err
	}
	return ret, nil
}

func (p *PaymentURI) parseQuery(query string) error {
	if query == "" {
		return nil
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return common.NewStructuralError("invalid query string", err)
	}
	for key, vals := range values {
		if len(vals) > 1 {
			return common.NewSemanticError(
				fmt.Sprintf("parameter %q given more than once", key),
				nil,
			)
		}
		val := vals[0]
		switch key {
		case ParamAmount:
			amount, err := parseAmount(val)
			if err != nil {
				return err
			}
			p.Amount = &amount
		case ParamLabel:
			p.Label = val
		case ParamMessage:
			p.Message = val
		default:
			if strings.HasPrefix(key, requiredParamPrefix) {
				return common.NewSemanticError(
					fmt.Sprintf("unsupported required parameter %q", key),
					nil,
				)
			}
			if p.Extra == nil {
				p.Extra = make(map[string]string)
			}
			p.Extra[key] = val
		}
	}
	return nil
}

// parseAmount accepts a plain positive decimal number in whole coins whose
// value in the smallest unit fits in an int64
func parseAmount(val string) (decimal.Decimal, error) {
	if val == "" || strings.Trim(val, "0123456789.") != "" ||
		strings.Count(val, ".") > 1 || val == "." {
		return decimal.Decimal{}, common.NewStructuralError(
			fmt.Sprintf("malformed amount %q", val),
			nil,
		)
	}
	amount, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Decimal{}, common.NewStructuralError(
			fmt.Sprintf("malformed amount %q", val),
			err,
		)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, common.NewSemanticError(
			"amount must be positive",
			nil,
		)
	}
	if !amount.Equal(amount.Truncate(MaxAmountDecimals)) {
		return decimal.Decimal{}, common.NewSemanticError(
			fmt.Sprintf(
				"amount has more than %d decimal places",
				MaxAmountDecimals,
			),
			nil,
		)
	}
	if !amount.Shift(MaxAmountDecimals).BigInt().IsInt64() {
		return decimal.Decimal{}, common.NewSemanticError(
			fmt.Sprintf("amount %s is too large", val),
			nil,
		)
	}
	return amount, nil
}
