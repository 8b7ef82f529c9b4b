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

package primitive

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// HexError describes a malformed hex string.
type HexError struct {
	// Offset of the first offending character, or the string length for odd-length input.
	Offset    int
	Char      byte
	OddLength bool
}

func (e *HexError) Error() string {
	if e.OddLength {
		return fmt.Sprintf("odd length hex string (%d characters)", e.Offset)
	}
	return fmt.Sprintf("invalid hex character %q at offset %d", e.Char, e.Offset)
}

// ErrHexLength is returned when a decoded hex value does not have the expected size.
var ErrHexLength = errors.New("unexpected decoded length")

// DecodeHex decodes a hex string, reporting the offset of the first bad character.
func DecodeHex(s string) ([]byte, error) {
	for i := range len(s) {
		if !isHexChar(s[i]) {
			return nil, &HexError{Offset: i, Char: s[i]}
		}
	}
	if len(s)%2 != 0 {
		return nil, &HexError{Offset: len(s), OddLength: true}
	}
	ret, err := hex.DecodeString(s)
	if err != nil {
		// Already validated above
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return ret, nil
}

// DecodeHexSize decodes a hex string and checks the decoded length.
func DecodeHexSize(s string, size int) ([]byte, error) {
	ret, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	if len(ret) != size {
		return nil, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrHexLength,
			size,
			len(ret),
		)
	}
	return ret, nil
}

func isHexChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') ||
		(c >= 'A' && c <= 'F')
}
