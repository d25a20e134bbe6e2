// Copyright 2023 Blink Labs Software
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

package test

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// Sequence returns the byte values from start to end inclusive, counting
// down when end is smaller than start
func Sequence(start int, end int) []byte {
	if start < 0 || start > 255 || end < 0 || end > 255 {
		panic(fmt.Sprintf("sequence bounds out of byte range: %d..%d", start, end))
	}
	step := 1
	if end < start {
		step = -1
	}
	ret := make([]byte, 0, (end-start)*step+1)
	for i := start; ; i += step {
		ret = append(ret, byte(i))
		if i == end {
			break
		}
	}
	return ret
}

// Repeat returns a slice of length n filled with b
func Repeat(b byte, n int) []byte {
	ret := make([]byte, n)
	for i := range ret {
		ret[i] = b
	}
	return ret
}
