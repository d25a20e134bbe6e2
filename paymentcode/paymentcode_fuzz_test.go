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

package paymentcode

import (
	"testing"
)

func FuzzIsPaymentCodeValid(f *testing.F) {
	f.Add(aliceCode)
	f.Add(silentMainnetCode)
	f.Add(silentTestnetCode)
	f.Add("")
	f.Add("sp1")
	f.Add("PM8T")
	f.Fuzz(func(t *testing.T, code string) {
		reusable := IsReusablePaymentCodeValid(code)
		silent := IsSilentPaymentCodeValid(code)
		if IsPaymentCodeValid(code) != (reusable || silent) {
			t.Fatalf("combined check disagrees for %q", code)
		}
		if reusable && silent {
			t.Fatalf("code %q accepted by both schemes", code)
		}
		if _, err := ParseReusable(code); (err == nil) != reusable {
			t.Fatalf("ParseReusable disagrees for %q", code)
		}
	})
}
