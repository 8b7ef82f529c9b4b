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

// Package cbor provides CBOR encoding/decoding utilities for transaction drafts
// and script envelopes.
//
// This package wraps github.com/fxamacker/cbor/v2 with deterministic encoding and
// strict single-item decoding.
//
// # Key Functions
//
//   - Encode: deterministic encoding (core deterministic map key ordering)
//   - Decode: decodes one item and reports how many bytes were consumed
//   - DecodeFull: like Decode, but fails on trailing data
//   - EncodeByteString / DecodeByteString: the bytestring envelope used around
//     compiled Plutus scripts
//   - WrappedCbor: tag 24 embedded CBOR, as used by UTxO script references
//   - Dump: indented structure of arbitrary CBOR for debugging
//
// # Script Envelopes
//
// Compiled Plutus scripts are flat-encoded programs wrapped in a CBOR bytestring.
// The ledger expects that wrapping to be applied twice:
//
//	flat := ...                                  // 01 00 00 32 ...
//	single, _ := cbor.EncodeByteString(flat)     // 58 45 01 00 00 32 ...
//	double, _ := cbor.EncodeByteString(single)   // 58 47 58 45 01 00 00 32 ...
package cbor
