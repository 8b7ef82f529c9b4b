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
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

const PoolIdPrefix = "pool"

// PoolIdFromString parses a pool id given either as "pool1..." bech32 or as hex
func PoolIdFromString(poolId string) (Blake2b224, error) {
	if strings.HasPrefix(poolId, PoolIdPrefix+"1") {
		hrp, decoded, err := decodeBech32(poolId)
		if err != nil {
			return Blake2b224{}, fmt.Errorf("invalid pool id: %w", err)
		}
		if hrp != PoolIdPrefix {
			return Blake2b224{}, fmt.Errorf("invalid pool id prefix: %s", hrp)
		}
		if len(decoded) != Blake2b224Size {
			return Blake2b224{}, fmt.Errorf(
				"invalid pool id: %w: expected %d bytes, got %d",
				ErrHexLength,
				Blake2b224Size,
				len(decoded),
			)
		}
		return NewBlake2b224(decoded), nil
	}
	return NewBlake2b224FromHex(poolId)
}

// AddressBytes returns the raw bytes of an address string. It detects if the
// string has mixed case and assumes it is a base58 (Byron) address, otherwise
// it assumes it is bech32 encoded
func AddressBytes(addr string) ([]byte, error) {
	if addr == "" {
		return nil, errors.New("empty address")
	}
	if strings.ToLower(addr) != addr {
		decoded := base58.Decode(addr)
		if len(decoded) == 0 {
			return nil, errors.New("invalid base58 address")
		}
		return decoded, nil
	}
	_, decoded, err := decodeBech32(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address: %w", err)
	}
	if len(decoded) == 0 {
		return nil, errors.New("invalid address: no payload")
	}
	return decoded, nil
}

func decodeBech32(s string) (string, []byte, error) {
	// Cardano addresses routinely exceed the 90 character bech32 limit
	hrp, data, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return "", nil, err
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, decoded, nil
}
