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

// Package script prepares compiled Plutus scripts for inclusion in a transaction.
//
// Compiled scripts are flat-encoded UPLC programs wrapped in CBOR bytestrings.
// Tooling emits them with either one or two layers of wrapping, while the
// ledger expects two. Normalize converts either form into the double-wrapped
// form and leaves already double-wrapped scripts untouched.
//
// ApplyParams specializes a parameterized validator by applying Plutus data
// arguments, given in the detailed JSON schema, to its top-level term:
//
//	applied, err := script.ApplyParams(
//	    []string{`{"bytes": "1234"}`, `{"int": 42}`},
//	    compiledHex,
//	)
//
// Errors are reported as *DecodeError, *ScriptFormatError, *SchemaError or
// *ApplicationError, which can also be matched with errors.Is against ErrDecode,
// ErrScriptFormat, ErrSchema and ErrApplication. No call retries internally or
// returns a partially applied script.
//
// All functions are safe for concurrent use.
package script
