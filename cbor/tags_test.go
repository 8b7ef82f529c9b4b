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

var wrappedCborTestDefs = []struct {
	cborHex string
	content string
}{
	{
		cborHex: "d81843820102",
		content: "820102",
	},
	{
		cborHex: "d81840",
		content: "",
	},
}

func TestWrappedCborDecode(t *testing.T) {
	for _, testDef := range wrappedCborTestDefs {
		cborData, _ := hex.DecodeString(testDef.cborHex)
		var tmp cbor.WrappedCbor
		if _, err := cbor.Decode(cborData, &tmp); err != nil {
			t.Fatalf("failed to decode CBOR hex %s: %s", testDef.cborHex, err)
		}
		if hex.EncodeToString(tmp.Bytes()) != testDef.content {
			t.Fatalf(
				"did not get expected content\n  got:    %x\n  wanted: %s",
				tmp.Bytes(),
				testDef.content,
			)
		}
	}
}

func TestWrappedCborEncode(t *testing.T) {
	for _, testDef := range wrappedCborTestDefs {
		content, _ := hex.DecodeString(testDef.content)
		cborData, err := cbor.Encode(cbor.WrappedCbor(content))
		if err != nil {
			t.Fatalf("failed to encode: %s", err)
		}
		if hex.EncodeToString(cborData) != testDef.cborHex {
			t.Fatalf(
				"did not get expected CBOR\n  got:    %x\n  wanted: %s",
				cborData,
				testDef.cborHex,
			)
		}
	}
}

func TestWrappedCborDecodeErrors(t *testing.T) {
	for _, cborHex := range []string{
		// Wrong tag number
		"d81943820102",
		// Tag content is not a bytestring
		"d818820102",
		// Not a tag
		"43820102",
	} {
		cborData, _ := hex.DecodeString(cborHex)
		var tmp cbor.WrappedCbor
		if _, err := cbor.Decode(cborData, &tmp); err == nil {
			t.Fatalf("did not get expected error decoding %s", cborHex)
		}
	}
}
