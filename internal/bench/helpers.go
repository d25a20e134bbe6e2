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

// Package bench provides benchmark fixtures for destination validation.
package bench

// Fixture is a named benchmark input
type Fixture struct {
	Name  string
	Input string
}

// AddressFixtures returns one address of each kind on the bitcoinblu network
func AddressFixtures() []Fixture {
	return []Fixture{
		{Name: "P2PKH", Input: "B4T6pk2q5rdNmoYigB3PiZT5qJB6gZjQT4"},
		{Name: "P2SH", Input: "bc4ttNDQPrtpfF41AmMqJD45E4te55U9io"},
		{
			Name:  "WitnessV0",
			Input: "bb1qqqqsyqcyq5rqwzqfpg9scrgwpugpzysnzs23v9ccrydpk8qarc0srl4tl4",
		},
		{
			Name:  "Taproot",
			Input: "bb1p0xlxvlhemja6c4dqv22uapctqupfhlxm9h8z3k2e72q4k9hcz7vqr22txy",
		},
		{
			Name:  "ForeignNetwork",
			Input: "bc1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq9e75rs",
		},
	}
}

// PaymentCodeFixtures returns one payment code per scheme
func PaymentCodeFixtures() []Fixture {
	return []Fixture{
		{
			Name:  "Reusable",
			Input: "PM8TJTLJbPRGxSbc8EJi42Wrr6QbNSaSSVJ5Y3E4pbCYiTHUskHg13935Ubb7q8tx9GVbh2UuRnBc3WSyJHhUrw8KhprKnn9eDznYGieTzFcwQRya4GA",
		},
		{
			Name:  "Silent",
			Input: "sp1qqfumuen7l8wthtz45p3ftn58pvrs9xlumvkuu2xet8egzkcklqtesq7xq3legs0d04knq32qd62uqlxct3mcujuvau7202avpxu4cuy7u5j4970g",
		},
	}
}
