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

package cbor_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/txdraft/cbor"
)

type encodeTestDefinition struct {
	CborHex string
	Object  any
}

var encodeTests = []encodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{1, 2, 3},
	},
	// Map keys are sorted
	{
		CborHex: "a201020304",
		Object:  map[int]int{3: 4, 1: 2},
	},
	// Bytestring
	{
		CborHex: "43010203",
		Object:  []byte{1, 2, 3},
	},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeTests {
		cborData, err := cbor.Encode(test.Object)
		if err != nil {
			t.Fatalf("failed to encode object to CBOR: %s", err)
		}
		cborHex := hex.EncodeToString(cborData)
		if cborHex != test.CborHex {
			t.Fatalf(
				"object did not encode to expected CBOR\n  got: %s\n  wanted: %s",
				cborHex,
				test.CborHex,
			)
		}
	}
}

func TestEncodeByteString(t *testing.T) {
	testDefs := []struct {
		data     []byte
		expected string
	}{
		{data: nil, expected: "40"},
		{data: []byte{}, expected: "40"},
		{data: []byte{0x01, 0x00, 0x00}, expected: "43010000"},
		// Lengths above 23 use a one-byte length prefix
		{
			data:     make([]byte, 24),
			expected: "5818" + "000000000000000000000000000000000000000000000000",
		},
	}
	for _, testDef := range testDefs {
		cborData, err := cbor.EncodeByteString(testDef.data)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if got := hex.EncodeToString(cborData); got != testDef.expected {
			t.Fatalf(
				"did not get expected CBOR\n  got: %s\n  wanted: %s",
				got,
				testDef.expected,
			)
		}
	}
}
