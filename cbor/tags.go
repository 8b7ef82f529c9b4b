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

import (
	"fmt"

	_cbor "github.com/fxamacker/cbor/v2"
)

const (
	// Useful tag numbers
	CborTagCbor = 24
)

// WrappedCbor corresponds to CBOR tag 24 and is used to encode nested CBOR data
type WrappedCbor []byte

func (w WrappedCbor) Bytes() []byte {
	return w[:]
}

func (w WrappedCbor) MarshalCBOR() ([]byte, error) {
	content := []byte(w)
	if content == nil {
		content = []byte{}
	}
	return Encode(_cbor.Tag{Number: CborTagCbor, Content: content})
}

func (w *WrappedCbor) UnmarshalCBOR(data []byte) error {
	var tmpTag _cbor.RawTag
	if err := DecodeFull(data, &tmpTag); err != nil {
		return err
	}
	if tmpTag.Number != CborTagCbor {
		return fmt.Errorf(
			"expected CBOR tag %d, found %d",
			CborTagCbor,
			tmpTag.Number,
		)
	}
	content, err := DecodeByteString(tmpTag.Content)
	if err != nil {
		return fmt.Errorf("decode tag %d content: %w", CborTagCbor, err)
	}
	*w = WrappedCbor(content)
	return nil
}
