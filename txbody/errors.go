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

package txbody

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned when a JSON variant discriminant is missing or not recognized.
var ErrUnknownVariant = errors.New("unknown variant")

// FieldError describes a problem with a single field of a transaction body. Path uses
// the JSON field names, for example "inputs[2].scriptTxIn.redeemer.data".
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldErrorf(path string, format string, args ...any) error {
	return &FieldError{Path: path, Err: fmt.Errorf(format, args...)}
}

func joinPath(path string, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func indexPath(path string, idx int) string {
	return fmt.Sprintf("%s[%d]", path, idx)
}

func isNull(data json.RawMessage) bool {
	return len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// variantType extracts the "type" discriminant from a JSON object.
func variantType(data json.RawMessage, path string) (string, error) {
	var tmp struct {
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return "", &FieldError{Path: path, Err: err}
	}
	if tmp.Type == nil {
		return "", &FieldError{
			Path: joinPath(path, "type"),
			Err:  fmt.Errorf("%w: missing discriminant", ErrUnknownVariant),
		}
	}
	return *tmp.Type, nil
}

func unknownVariant(path string, name string, expected ...string) error {
	return &FieldError{
		Path: joinPath(path, "type"),
		Err: fmt.Errorf(
			"%w %q, expected one of %s",
			ErrUnknownVariant,
			name,
			strings.Join(expected, ", "),
		),
	}
}

func unmarshalField(data json.RawMessage, dest any, path string) error {
	if err := json.Unmarshal(data, dest); err != nil {
		var fieldErr *FieldError
		if errors.As(err, &fieldErr) {
			return err
		}
		return &FieldError{Path: path, Err: err}
	}
	return nil
}

// decodeList decodes each element of a JSON array with the provided function.
func decodeList[T any](
	items []json.RawMessage,
	path string,
	decode func(json.RawMessage, string) (T, error),
) ([]T, error) {
	ret := make([]T, 0, len(items))
	for i, item := range items {
		tmp, err := decode(item, indexPath(path, i))
		if err != nil {
			return nil, err
		}
		ret = append(ret, tmp)
	}
	return ret, nil
}
