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

// Package txbody holds the in-memory model of an unsigned transaction draft.
//
// Variant entities (TxIn, ScriptSource, DatumSource, Withdrawal, Certificate, Relay)
// are sealed interfaces implemented by a fixed set of value types, so a type switch
// over them can be exhaustive.
//
// Every entity maps to a JSON object with lowerCamelCase field names. Variants carry
// a "type" discriminant:
//
//	{"type": "PubKey", "txIn": {"txHash": "...", "txIndex": 0}}
//	{"type": "Inline", "txHash": "...", "txIndex": 1, "spendingScriptHash": "...",
//	 "languageVersion": "v2", "scriptSize": 1234}
//
// The JSON mapping is done with explicit wire structs rather than reflection over the
// model, and decoding errors are *FieldError values naming the JSON path of the
// offending field.
//
// Validate checks the shape of a draft without any ledger state. Conversions to the
// utxorpc Cardano types are provided for UTxOs, outputs and certificates.
package txbody
