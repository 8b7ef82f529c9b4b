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

package cbor

import "testing"

func FuzzDecodeByteString(f *testing.F) {
	f.Add([]byte{0x40})                         // empty bytestring
	f.Add([]byte{0x44, 0x01, 0x02, 0x03, 0x04}) // bytestring
	f.Add([]byte{0x5f, 0x41, 0x01, 0xff})       // indefinite bytestring
	f.Add([]byte{0x58, 0x02, 0x41, 0x01})       // nested bytestring
	f.Add([]byte{0x58})                         // truncated length
	f.Add([]byte{0x00})                         // integer 0

	f.Fuzz(func(t *testing.T, data []byte) {
		ret, err := DecodeByteString(data)
		if err != nil {
			return
		}
		// Anything accepted must re-encode to a bytestring with the same content
		encoded, err := EncodeByteString(ret)
		if err != nil {
			t.Fatalf("unexpected error re-encoding: %s", err)
		}
		again, err := DecodeByteString(encoded)
		if err != nil {
			t.Fatalf("unexpected error decoding re-encoded data: %s", err)
		}
		if string(again) != string(ret) {
			t.Fatalf("bytestring content changed across re-encoding")
		}
	})
}
