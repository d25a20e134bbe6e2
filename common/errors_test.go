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

package common

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorClassification(t *testing.T) {
	structural := NewStructuralError("bad checksum", io.ErrUnexpectedEOF)
	semantic := NewSemanticError("wrong prefix", nil)

	assert.True(t, IsStructural(structural))
	assert.False(t, IsSemantic(structural))
	assert.True(t, IsSemantic(semantic))
	assert.False(t, IsStructural(semantic))

	// Cause stays reachable
	assert.True(t, errors.Is(structural, io.ErrUnexpectedEOF))

	// Classification survives wrapping
	wrapped := fmt.Errorf("decoding address: %w", semantic)
	assert.True(t, IsSemantic(wrapped))
	var validationErr *ValidationError
	assert.True(t, errors.As(wrapped, &validationErr))
	assert.Equal(t, ValidationErrorTypeSemantic, validationErr.Type)
}

func TestValidationErrorMessage(t *testing.T) {
	assert.Equal(
		t,
		"semantic: wrong prefix",
		NewSemanticError("wrong prefix", nil).Error(),
	)
	assert.Equal(
		t,
		"structural: bad checksum (unexpected EOF)",
		NewStructuralError("bad checksum", io.ErrUnexpectedEOF).Error(),
	)
}

func TestValidationErrorUnknownType(t *testing.T) {
	err := &ValidationError{Type: "other", Message: "x"}
	assert.False(t, IsStructural(err))
	assert.False(t, IsSemantic(err))
}
