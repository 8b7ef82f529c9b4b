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

// Package flat implements the parts of the UPLC flat encoding needed to apply
// arguments to compiled scripts.
//
// A program is encoded as a version (three naturals) followed by a term and
// final padding. Scan walks a program without building a term tree and records
// the bit range of its top-level term. ApplyData wraps that term in Apply nodes
// and appends constant arguments. The term is re-encoded while it is copied,
// because byte string, string and data constants are padded to a byte boundary
// relative to the start of the program.
package flat
