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

package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAddress    = "bb1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqtfyrcj"
	testBitcoin    = "bc1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq9e75rs"
	testReusable   = "PM8TJTLJbPRGxSbc8EJi42Wrr6QbNSaSSVJ5Y3E4pbCYiTHUskHg13935Ubb7q8tx9GVbh2UuRnBc3WSyJHhUrw8KhprKnn9eDznYGieTzFcwQRya4GA"
	testSilentCode = "sp1qqfumuen7l8wthtz45p3ftn58pvrs9xlumvkuu2xet8egzkcklqtesq7xq3legs0d04knq32qd62uqlxct3mcujuvau7202avpxu4cuy7u5j4970g"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAddressCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "address", testAddress)
	require.NoError(t, err)
	assert.Equal(
		t,
		testAddress+"\tvalid\twitness_v0(v0, 20 bytes, bech32)\n",
		stdout,
	)
}

func TestAddressCommandInvalid(t *testing.T) {
	stdout, stderr, err := runCommand(t, "address", testAddress, testBitcoin)
	require.ErrorIs(t, err, errInvalidInput)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], testAddress+"\tvalid"))
	assert.True(t, strings.HasPrefix(lines[1], testBitcoin+"\tinvalid"))
	assert.Contains(t, stderr, errInvalidInput.Error())
	assert.NotContains(t, stderr, "Usage:")
}

func TestNetworkFlagAndEnv(t *testing.T) {
	_, _, err := runCommand(t, "--network", "bitcoin", "address", testBitcoin)
	assert.NoError(t, err)
	t.Setenv("DESTCHECK_NETWORK", "bitcoin")
	_, _, err = runCommand(t, "address", testBitcoin)
	assert.NoError(t, err)
	_, _, err = runCommand(t, "-n", "bitcoinblu", "address", testBitcoin)
	assert.ErrorIs(t, err, errInvalidInput)
}

func TestUnknownNetwork(t *testing.T) {
	_, _, err := runCommand(t, "--network", "nope", "address", testAddress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid network specified: nope")
}

func TestInvalidLogLevel(t *testing.T) {
	t.Setenv("DESTCHECK_LOG_LEVEL", "loud")
	_, _, err := runCommand(t, "address", testAddress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestDebugLogging(t *testing.T) {
	t.Setenv("DESTCHECK_LOG_LEVEL", "debug")
	_, stderr, err := runCommand(t, "address", testBitcoin)
	require.Error(t, err)
	assert.Contains(t, stderr, "checked address")
	assert.Contains(t, stderr, "valid=false")
}

func TestPaymentCodeCommand(t *testing.T) {
	stdout, _, err := runCommand(
		t,
		"paymentcode",
		testReusable,
		testSilentCode,
	)
	require.NoError(t, err)
	assert.Equal(
		t,
		testReusable+"\tvalid\tbip47\n"+testSilentCode+"\tvalid\tbip352\n",
		stdout,
	)
	stdout, _, err = runCommand(t, "pc", testAddress)
	assert.ErrorIs(t, err, errInvalidInput)
	assert.Equal(t, testAddress+"\tinvalid\n", stdout)
}

func TestURICommand(t *testing.T) {
	stdout, _, err := runCommand(
		t,
		"uri",
		"bitcoinblu:"+testAddress+"?amount=1.5&label=Alice&zeta=1&alpha=2",
	)
	require.NoError(t, err)
	assert.Equal(
		t,
		"destination: "+testAddress+"\n"+
			"type: address witness_v0(v0, 20 bytes, bech32)\n"+
			"amount: 1.5 (150000000 units)\n"+
			"label: Alice\n"+
			"alpha: 2\n"+
			"zeta: 1\n",
		stdout,
	)
	_, _, err = runCommand(t, "uri", "bitcoin:"+testAddress)
	assert.Error(t, err)
}

func TestNetworksCommand(t *testing.T) {
	t.Setenv("DESTCHECK_NETWORK", "nope")
	stdout, _, err := runCommand(t, "networks")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, lines[1], "bitcoinblu")
	assert.Contains(t, lines[1], "0x19")
	assert.Contains(t, lines[2], "bitcoin")
}

func TestArgumentValidation(t *testing.T) {
	_, _, err := runCommand(t, "address")
	assert.Error(t, err)
	_, _, err = runCommand(t, "uri", "a", "b")
	assert.Error(t, err)
}
