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

// Package common holds the error model shared by the address and payment
// code validators.
//
// Every rejection is a *ValidationError of one of two types. Structural
// errors mean the input could not be decoded at all (bad charset, mixed
// case, checksum, padding, length). Semantic errors mean it decoded but is
// not acceptable (wrong prefix or version byte, unsupported witness version,
// wrong payload length, not a curve point). Public predicates collapse both
// to false; the distinction is for diagnostics and tests.
package common

import (
	"errors"
	"fmt"
)

// Sentinel errors so callers can classify failures with errors.Is
var (
	ErrStructural = errors.New("structural decode failure")
	ErrSemantic   = errors.New("semantic validation failure")
)

type ValidationErrorType string

const (
	ValidationErrorTypeStructural ValidationErrorType = "structural"
	ValidationErrorTypeSemantic   ValidationErrorType = "semantic"
)

// ValidationError describes why an input was rejected
type ValidationError struct {
	Type    ValidationErrorType
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func (e *ValidationError) Is(target error) bool {
	switch e.Type {
	case ValidationErrorTypeStructural:
		return target == ErrStructural
	case ValidationErrorTypeSemantic:
		return target == ErrSemantic
	}
	return false
}

// NewStructuralError creates an error for input that could not be decoded
func NewStructuralError(message string, cause error) *ValidationError {
	return &ValidationError{
		Type:    ValidationErrorTypeStructural,
		Message: message,
		Cause:   cause,
	}
}

// NewSemanticError creates an error for input that decoded but is not acceptable
func NewSemanticError(message string, cause error) *ValidationError {
	return &ValidationError{
		Type:    ValidationErrorTypeSemantic,
		Message: message,
		Cause:   cause,
	}
}

// IsStructural reports whether err is or wraps a structural failure
func IsStructural(err error) bool {
	return errors.Is(err, ErrStructural)
}

// IsSemantic reports whether err is or wraps a semantic failure
func IsSemantic(err error) bool {
	return errors.Is(err, ErrSemantic)
}
