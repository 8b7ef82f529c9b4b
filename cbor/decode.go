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
	"bytes"
	"errors"
	"fmt"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedDecMode     _cbor.DecMode
	cachedDecModeErr  error
	cachedDecModeOnce sync.Once
)

// getDecMode returns a cached DecMode, initializing it on first use.
// Uses sync.Once for thread-safe lazy initialization.
// Returns the cached error if initialization failed.
func getDecMode() (_cbor.DecMode, error) {
	cachedDecModeOnce.Do(func() {
		decOptions := _cbor.DecOptions{
			ExtraReturnErrors: _cbor.ExtraDecErrorUnknownField,
			MaxNestedLevels:   256,
		}
		cachedDecMode, cachedDecModeErr = decOptions.DecMode()
	})
	return cachedDecMode, cachedDecModeErr
}

func Decode(dataBytes []byte, dest any) (int, error) {
	data := bytes.NewReader(dataBytes)
	decMode, err := getDecMode()
	if err != nil {
		return 0, err
	}
	if decMode == nil {
		return 0, errors.New("CBOR decoder mode not initialized")
	}
	dec := decMode.NewDecoder(data)
	err = dec.Decode(dest)
	return dec.NumBytesRead(), err
}

// TrailingDataError indicates that a CBOR item did not span all of the provided data
type TrailingDataError struct {
	Offset int
	Length int
}

func (e TrailingDataError) Error() string {
	return fmt.Sprintf(
		"unexpected trailing data at offset %d (%d bytes remaining)",
		e.Offset,
		e.Length-e.Offset,
	)
}

// DecodeFull decodes a single CBOR item and fails if any bytes remain afterward
func DecodeFull(dataBytes []byte, dest any) error {
	bytesRead, err := Decode(dataBytes, dest)
	if err != nil {
		return err
	}
	if bytesRead != len(dataBytes) {
		return TrailingDataError{Offset: bytesRead, Length: len(dataBytes)}
	}
	return nil
}

// DecodeByteString returns the content of a CBOR bytestring that spans all of the
// provided data. Definite and indefinite-length bytestrings are accepted
func DecodeByteString(dataBytes []byte) ([]byte, error) {
	majorType, ok := MajorType(dataBytes)
	if !ok {
		return nil, errors.New("empty CBOR data")
	}
	if majorType != CborTypeByteString {
		return nil, fmt.Errorf(
			"expected CBOR bytestring, found major type %d at offset 0",
			majorType>>5,
		)
	}
	var ret []byte
	if err := DecodeFull(dataBytes, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}
