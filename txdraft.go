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

// Package txdraft exposes the script finishing routines and transaction body checks
// through functions that only take and return strings, so they can be called across
// a process or foreign-function boundary.
package txdraft

import (
	"encoding/json"

	"github.com/blinklabs-io/txdraft/script"
	"github.com/blinklabs-io/txdraft/txbody"
)

// Normalize returns the double-wrapped form of a compiled script given in either
// wrapped form. A script that is already double-wrapped is returned unchanged
func Normalize(scriptHex string) (string, error) {
	return script.Normalize(scriptHex)
}

// ApplyParams applies the given Plutus data parameters, in order, to a compiled script
// and returns the double-wrapped result. Parameters use the detailed JSON schema
func ApplyParams(params []string, scriptHex string) (string, error) {
	return script.ApplyParams(params, scriptHex)
}

// ValidateBody decodes a transaction body from JSON and checks its shape
func ValidateBody(bodyJson string) error {
	var body txbody.TransactionBody
	if err := json.Unmarshal([]byte(bodyJson), &body); err != nil {
		return err
	}
	return body.Validate()
}
