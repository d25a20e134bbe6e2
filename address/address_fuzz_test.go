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

//go:build go1.18

package address

import (
	"testing"

	"github.com/blinklabs-io/destcheck/network"
)

func FuzzDecode(f *testing.F) {
	// Seed with valid address strings
	f.Add("bb1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqtfyrcj") // witness v0
	f.Add(
		"bb1p0xlxvlhemja6c4dqv22uapctqupfhlxm9h8z3k2e72q4k9hcz7vqr22txy",
	) // witness v1
	f.Add("B4T6pk2q5rdNmoYigB3PiZT5qJB6gZjQT4") // P2PKH
	f.Add("bc4ttNDQPrtpfF41AmMqJD45E4te55U9io") // P2SH
	f.Add("invalid_address_string")             // Invalid string

	v := NewValidator(network.NetworkBitcoinBlu)
	f.Fuzz(func(t *testing.T, addr string) {
		// Should not panic on any input - that's the test
		dest, err := v.Decode(addr)
		if err != nil {
			if v.IsValid(addr) {
				t.Fatalf("IsValid accepted %q after Decode failed: %s", addr, err)
			}
			return
		}
		if !v.IsValid(addr) {
			t.Fatalf("IsValid rejected %q after Decode succeeded", addr)
		}
		if _, err := v.OutputScript(addr); err != nil {
			t.Fatalf("no output script for decoded %s: %s", dest, err)
		}
	})
}
