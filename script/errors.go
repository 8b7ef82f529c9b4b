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

package script

import (
	"errors"
	"fmt"
)

// Sentinel errors so callers can use errors.Is regardless of the detailed error type.
var (
	ErrDecode       = errors.New("decode error")
	ErrScriptFormat = errors.New("script format error")
	ErrSchema       = errors.New("plutus data schema error")
	ErrApplication  = errors.New("script application error")
)

// DecodeError indicates that script input is not valid hex.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode script hex: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (*DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// ScriptFormatError indicates that the decoded bytes are not a CBOR-wrapped script.
type ScriptFormatError struct {
	Err error
}

func (e *ScriptFormatError) Error() string {
	return fmt.Sprintf("not a CBOR-wrapped script: %v", e.Err)
}

func (e *ScriptFormatError) Unwrap() error { return e.Err }

func (*ScriptFormatError) Is(target error) bool {
	return target == ErrScriptFormat
}

// SchemaError indicates a malformed Plutus data parameter. Path is a JSON path
// such as "$[0].fields[1].bytes".
type SchemaError struct {
	Path string
	Err  error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid plutus data at %s: %v", e.Path, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

func (*SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// ApplicationError indicates that the parameters could not be applied to the script.
type ApplicationError struct {
	Err error
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("apply params to script: %v", e.Err)
}

func (e *ApplicationError) Unwrap() error { return e.Err }

func (*ApplicationError) Is(target error) bool {
	return target == ErrApplication
}
