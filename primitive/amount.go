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
	"math/big"
	"strconv"
)

const (
	// LovelaceUnit is the unit name used for the native coin in asset lists
	LovelaceUnit = "lovelace"

	PolicyIdHexLength = Blake2b224Size * 2
	// Asset names are limited to 32 bytes by the ledger
	MaxAssetNameSize = 32
)

// ErrNegativeAmount is returned when a negative value is given for an unsigned amount
var ErrNegativeAmount = errors.New("amount must not be negative")

// ParseQuantity parses a decimal asset quantity that must fit in a uint64
func ParseQuantity(s string) (uint64, error) {
	ret, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return ret, nil
}

// ParseBigAmount parses a non-negative decimal integer of arbitrary size. Pool pledge
// and cost are carried this way because they are not bounded by native integer types
// on the wire
func ParseBigAmount(s string) (*big.Int, error) {
	ret, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	if ret.Sign() < 0 {
		return nil, ErrNegativeAmount
	}
	return ret, nil
}

// Unit identifies an asset either as LovelaceUnit or as a policy id followed by a
// hex-encoded asset name
type Unit struct {
	PolicyId  Blake2b224
	AssetName []byte
}

func (u Unit) IsLovelace() bool {
	return u.PolicyId == Blake2b224{} && u.AssetName == nil
}

func (u Unit) String() string {
	if u.IsLovelace() {
		return LovelaceUnit
	}
	return u.PolicyId.String() + fmt.Sprintf("%x", u.AssetName)
}

// ParseUnit splits an asset unit string into its policy id and asset name
func ParseUnit(unit string) (Unit, error) {
	if unit == LovelaceUnit || unit == "" {
		return Unit{}, nil
	}
	if len(unit) < PolicyIdHexLength {
		return Unit{}, fmt.Errorf("invalid asset unit %q: too short", unit)
	}
	policyId, err := NewBlake2b224FromHex(unit[:PolicyIdHexLength])
	if err != nil {
		return Unit{}, fmt.Errorf("invalid policy id in unit %q: %w", unit, err)
	}
	assetName, err := DecodeHex(unit[PolicyIdHexLength:])
	if err != nil {
		return Unit{}, fmt.Errorf("invalid asset name in unit %q: %w", unit, err)
	}
	if assetName == nil {
		assetName = []byte{}
	}
	if len(assetName) > MaxAssetNameSize {
		return Unit{}, fmt.Errorf(
			"asset name in unit %q exceeds %d bytes",
			unit,
			MaxAssetNameSize,
		)
	}
	return Unit{PolicyId: policyId, AssetName: assetName}, nil
}
