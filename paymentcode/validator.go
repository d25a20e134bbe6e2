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

// Package paymentcode validates static payment identifiers.
//
// Two independent schemes are supported: BIP47 reusable payment codes
// (Reusable) and BIP352 silent payment codes (Silent). A Validator holds an
// ordered list of Checkers and accepts a code as soon as one of them does.
package paymentcode

import (
	"errors"
	"fmt"
	"log/slog"
)

// Checker is a single payment code scheme
type Checker interface {
	// Name identifies the scheme in diagnostics
	Name() string
	// Check returns nil if code is valid under the scheme
	Check(code string) error
}

type Validator struct {
	checkers []Checker
	logger   *slog.Logger
}

type ValidatorOptionFunc func(*Validator)

// WithCheckers replaces the default scheme list. Checkers are consulted in
// the given order.
func WithCheckers(checkers ...Checker) ValidatorOptionFunc {
	return func(v *Validator) {
		v.checkers = checkers
	}
}

// WithLogger specifies the logger used for rejection diagnostics
func WithLogger(logger *slog.Logger) ValidatorOptionFunc {
	return func(v *Validator) {
		v.logger = logger
	}
}

// NewValidator returns a Validator that checks BIP47 and then BIP352 unless
// WithCheckers says otherwise
func NewValidator(options ...ValidatorOptionFunc) *Validator {
	v := &Validator{
		checkers: DefaultCheckers(),
	}
	for _, option := range options {
		option(v)
	}
	if v.logger == nil {
		v.logger = slog.Default()
	}
	return v
}

// DefaultCheckers returns the supported schemes in evaluation order
func DefaultCheckers() []Checker {
	return []Checker{Reusable{}, Silent{}}
}

// Check returns nil as soon as one scheme accepts code. Otherwise it returns
// the failures of every scheme joined together.
func (v *Validator) Check(code string) error {
	if len(v.checkers) == 0 {
		return errors.New("no payment code schemes configured")
	}
	errs := make([]error, 0, len(v.checkers))
	for _, checker := range v.checkers {
		err := checkSafely(checker, code)
		if err == nil {
			return nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", checker.Name(), err))
	}
	return errors.Join(errs...)
}

// Scheme returns the name of the first scheme that accepts code
func (v *Validator) Scheme(code string) (string, error) {
	for _, checker := range v.checkers {
		if checkSafely(checker, code) == nil {
			return checker.Name(), nil
		}
	}
	return "", v.Check(code)
}

// IsValid reports whether any scheme accepts code. It never panics.
func (v *Validator) IsValid(code string) bool {
	for _, checker := range v.checkers {
		err := checkSafely(checker, code)
		if err == nil {
			return true
		}
		v.logger.Debug(
			"payment code rejected",
			"scheme", checker.Name(),
			"error", err,
		)
	}
	return false
}

// checkSafely runs a checker and turns a panic into an error
func checkSafely(checker Checker, code string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return checker.Check(code)
}

// IsReusablePaymentCodeValid reports whether code is a valid BIP47 payment code
func IsReusablePaymentCodeValid(code string) bool {
	return checkSafely(Reusable{}, code) == nil
}

// IsSilentPaymentCodeValid reports whether code is a valid BIP352 silent
// payment code
func IsSilentPaymentCodeValid(code string) bool {
	return checkSafely(Silent{}, code) == nil
}

// IsPaymentCodeValid reports whether code is valid under either scheme
func IsPaymentCodeValid(code string) bool {
	return IsReusablePaymentCodeValid(code) || IsSilentPaymentCodeValid(code)
}
