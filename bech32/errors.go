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

package bech32

import "fmt"

// DecodeError indicates a structurally invalid bech32 string
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bech32 decode: %s: %v", e.Reason, e.Err)
	}
	return "bech32 decode: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

// PaddingError indicates that regrouping bits would discard non-zero bits or
// leave an incomplete group
type PaddingError struct {
	Err error
}

func (e *PaddingError) Error() string {
	return fmt.Sprintf("bech32 padding: %v", e.Err)
}

func (e *PaddingError) Unwrap() error { return e.Err }
