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
	"errors"
	"reflect"
	"testing"

	"github.com/blinklabs-io/txdraft/cbor"
)

type decodeTestDefinition struct {
	CborHex   string
	Object    any
	BytesRead int
}

var decodeTests = []decodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{uint64(1), uint64(2), uint64(3)},
	},
	// Multiple CBOR objects
	{
		CborHex:   "81018102",
		Object:    []any{uint64(1)},
		BytesRead: 2,
	},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeTests {
		cborData, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		var dest any
		bytesRead, err := cbor.Decode(cborData, &dest)
		if err != nil {
			t.Fatalf("failed to decode CBOR: %s", err)
		}
		if test.BytesRead > 0 {
			if bytesRead != test.BytesRead {
				t.Fatalf(
					"expected to read %d bytes, read %d instead",
					test.BytesRead,
					bytesRead,
				)
			}
		}
		if !reflect.DeepEqual(dest, test.Object) {
			t.Fatalf(
				"CBOR did not decode to expected object\n  got: %#v\n  wanted: %#v",
				dest,
				test.Object,
			)
		}
	}
}

func TestDecodeFullTrailingData(t *testing.T) {
	cborData, _ := hex.DecodeString("81018102")
	var dest any
	err := cbor.DecodeFull(cborData, &dest)
	if err == nil {
		t.Fatalf("did not get expected error")
	}
	var trailingErr cbor.TrailingDataError
	if !errors.As(err, &trailingErr) {
		t.Fatalf("did not get expected error type: %T", err)
	}
	if trailingErr.Offset != 2 {
		t.Fatalf("did not get expected offset: got %d, wanted 2", trailingErr.Offset)
	}
}

func TestDecodeByteString(t *testing.T) {
	testDefs := []struct {
		cborHex     string
		expected    string
		expectError bool
	}{
		{cborHex: "43010000", expected: "010000"},
		{cborHex: "40", expected: ""},
		// Indefinite-length bytestring made of two chunks
		{cborHex: "5f4201024103ff", expected: "010203"},
		// Unsigned integer, not a bytestring
		{cborHex: "01", expectError: true},
		// Text string
		{cborHex: "6161", expectError: true},
		// Tagged bytestring
		{cborHex: "d8184101", expectError: true},
		// Trailing data
		{cborHex: "410100", expectError: true},
		// Truncated
		{cborHex: "4301", expectError: true},
		// Empty input
		{cborHex: "", expectError: true},
	}
	for _, testDef := range testDefs {
		cborData, _ := hex.DecodeString(testDef.cborHex)
		ret, err := cbor.DecodeByteString(cborData)
		if testDef.expectError {
			if err == nil {
				t.Fatalf("did not get expected error for %s", testDef.cborHex)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %s: %s", testDef.cborHex, err)
		}
		if got := hex.EncodeToString(ret); got != testDef.expected {
			t.Fatalf(
				"did not get expected bytes for %s: got %s, wanted %s",
				testDef.cborHex,
				got,
				testDef.expected,
			)
		}
	}
}
