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

package address

import (
	"testing"

	"github.com/blinklabs-io/destcheck/internal/test"
	"github.com/blinklabs-io/destcheck/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputScript(t *testing.T) {
	testDefs := []struct {
		address        string
		expectedScript string
	}{
		{
			address:        "B4T6pk2q5rdNmoYigB3PiZT5qJB6gZjQT4",
			expectedScript: "76a914000102030405060708090a0b0c0d0e0f1011121388ac",
		},
		{
			address:        "bc4ttNDQPrtpfF41AmMqJD45E4te55U9io",
			expectedScript: "a914000102030405060708090a0b0c0d0e0f1011121387",
		},
		{
			address:        "bb1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqtfyrcj",
			expectedScript: "00140000000000000000000000000000000000000000",
		},
		{
			address:        "bb1qqqqsyqcyq5rqwzqfpg9scrgwpugpzysnzs23v9ccrydpk8qarc0srl4tl4",
			expectedScript: "0020000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		},
		{
			address:        "bb1qqykevte9",
			expectedScript: "000101",
		},
		{
			address:        "bb1p0xlxvlhemja6c4dqv22uapctqupfhlxm9h8z3k2e72q4k9hcz7vqr22txy",
			expectedScript: "512079be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		},
	}
	v := NewValidator(network.NetworkBitcoinBlu)
	for _, testDef := range testDefs {
		script, err := v.OutputScript(testDef.address)
		require.NoError(t, err, testDef.address)
		assert.Equal(
			t,
			test.DecodeHexString(testDef.expectedScript),
			script,
			testDef.address,
		)
	}
}

func TestOutputScriptInvalid(t *testing.T) {
	v := NewValidator(network.NetworkBitcoinBlu)
	_, err := v.OutputScript("bc1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq9e75rs")
	assert.Error(t, err)
	_, err = v.destinationScript(Destination{})
	assert.Error(t, err)
	_, err = witnessScript(2, make([]byte, 32))
	assert.Error(t, err)
	_, err = witnessScript(0, nil)
	assert.Error(t, err)
}
