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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/blinklabs-io/txdraft/primitive"
)

// Keys of the detailed JSON schema for Plutus data.
const (
	datumKeyBytes       = "bytes"
	datumKeyInt         = "int"
	datumKeyList        = "list"
	datumKeyMap         = "map"
	datumKeyConstructor = "constructor"
	datumKeyFields      = "fields"
	datumKeyMapKey      = "k"
	datumKeyMapValue    = "v"
)

// DecodeDatumJSON decodes a Plutus data value given in the detailed JSON schema:
//
//	{"bytes": "<hex>"}
//	{"int": 42} or {"int": "-123456789012345678901234567890"}
//	{"list": [<data>, ...]}
//	{"map": [[<key>, <value>], ...]} or {"map": [{"k": <key>, "v": <value>}, ...]}
//	{"constructor": 0, "fields": [<data>, ...]}
func DecodeDatumJSON(jsonData string) (data.PlutusData, error) {
	return decodeDatumJSON(jsonData, "$")
}

func decodeDatumJSON(jsonData string, path string) (data.PlutusData, error) {
	dec := json.NewDecoder(strings.NewReader(jsonData))
	// Keep numbers as strings so large integers don't lose precision
	dec.UseNumber()
	var tmp any
	if err := dec.Decode(&tmp); err != nil {
		return nil, &SchemaError{
			Path: path,
			Err:  fmt.Errorf("invalid JSON: %w", err),
		}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, schemaErrorf(path, "unexpected data after JSON value")
	}
	return datumFromJSON(tmp, path)
}

func schemaErrorf(path string, format string, args ...any) error {
	return &SchemaError{Path: path, Err: fmt.Errorf(format, args...)}
}

func datumFromJSON(value any, path string) (data.PlutusData, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, schemaErrorf(path, "expected object, found %s", jsonTypeName(value))
	}
	if _, ok := obj[datumKeyConstructor]; ok {
		return constrFromJSON(obj, path)
	}
	if len(obj) != 1 {
		return nil, schemaErrorf(
			path,
			"expected exactly one of %q, %q, %q, %q or %q, found keys %s",
			datumKeyBytes,
			datumKeyInt,
			datumKeyList,
			datumKeyMap,
			datumKeyConstructor,
			objectKeys(obj),
		)
	}
	for key, item := range obj {
		itemPath := path + "." + key
		switch key {
		case datumKeyBytes:
			return bytesFromJSON(item, itemPath)
		case datumKeyInt:
			return intFromJSON(item, itemPath)
		case datumKeyList:
			items, err := listFromJSON(item, itemPath)
			if err != nil {
				return nil, err
			}
			return data.NewList(items...), nil
		case datumKeyMap:
			return mapFromJSON(item, itemPath)
		default:
			return nil, schemaErrorf(path, "unknown key %q", key)
		}
	}
	// Unreachable, the object has exactly one key
	return nil, schemaErrorf(path, "empty object")
}

func bytesFromJSON(value any, path string) (data.PlutusData, error) {
	tmpHex, ok := value.(string)
	if !ok {
		return nil, schemaErrorf(path, "expected hex string, found %s", jsonTypeName(value))
	}
	tmpBytes, err := primitive.DecodeHex(tmpHex)
	if err != nil {
		return nil, &SchemaError{Path: path, Err: err}
	}
	return data.NewByteString(tmpBytes), nil
}

func intFromJSON(value any, path string) (data.PlutusData, error) {
	var tmpStr string
	switch v := value.(type) {
	case json.Number:
		tmpStr = v.String()
	case string:
		tmpStr = v
	default:
		return nil, schemaErrorf(path, "expected integer, found %s", jsonTypeName(value))
	}
	ret, ok := new(big.Int).SetString(tmpStr, 10)
	if !ok {
		return nil, schemaErrorf(path, "invalid integer %q", tmpStr)
	}
	return data.NewInteger(ret), nil
}

func listFromJSON(value any, path string) ([]data.PlutusData, error) {
	tmpList, ok := value.([]any)
	if !ok {
		return nil, schemaErrorf(path, "expected array, found %s", jsonTypeName(value))
	}
	ret := make([]data.PlutusData, 0, len(tmpList))
	for i, item := range tmpList {
		tmpData, err := datumFromJSON(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		ret = append(ret, tmpData)
	}
	return ret, nil
}

func mapFromJSON(value any, path string) (data.PlutusData, error) {
	tmpList, ok := value.([]any)
	if !ok {
		return nil, schemaErrorf(path, "expected array, found %s", jsonTypeName(value))
	}
	pairs := make([][2]data.PlutusData, 0, len(tmpList))
	for i, entry := range tmpList {
		entryPath := fmt.Sprintf("%s[%d]", path, i)
		var keyValue, valueValue any
		var keyPath, valuePath string
		switch v := entry.(type) {
		case []any:
			if len(v) != 2 {
				return nil, schemaErrorf(
					entryPath,
					"expected [key, value] pair, found %d items",
					len(v),
				)
			}
			keyValue, valueValue = v[0], v[1]
			keyPath, valuePath = entryPath+"[0]", entryPath+"[1]"
		case map[string]any:
			var hasKey, hasValue bool
			keyValue, hasKey = v[datumKeyMapKey]
			valueValue, hasValue = v[datumKeyMapValue]
			if !hasKey || !hasValue || len(v) != 2 {
				return nil, schemaErrorf(
					entryPath,
					"expected object with keys %q and %q, found keys %s",
					datumKeyMapKey,
					datumKeyMapValue,
					objectKeys(v),
				)
			}
			keyPath, valuePath = entryPath+".k", entryPath+".v"
		default:
			return nil, schemaErrorf(
				entryPath,
				"expected map entry, found %s",
				jsonTypeName(entry),
			)
		}
		tmpKey, err := datumFromJSON(keyValue, keyPath)
		if err != nil {
			return nil, err
		}
		tmpValue, err := datumFromJSON(valueValue, valuePath)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]data.PlutusData{tmpKey, tmpValue})
	}
	return data.NewMap(pairs), nil
}

func constrFromJSON(obj map[string]any, path string) (data.PlutusData, error) {
	fieldsValue, ok := obj[datumKeyFields]
	if !ok || len(obj) != 2 {
		return nil, schemaErrorf(
			path,
			"expected object with keys %q and %q, found keys %s",
			datumKeyConstructor,
			datumKeyFields,
			objectKeys(obj),
		)
	}
	tagPath := path + "." + datumKeyConstructor
	var tagStr string
	switch v := obj[datumKeyConstructor].(type) {
	case json.Number:
		tagStr = v.String()
	default:
		return nil, schemaErrorf(
			tagPath,
			"expected non-negative integer, found %s",
			jsonTypeName(v),
		)
	}
	tag, err := strconv.ParseUint(tagStr, 10, strconv.IntSize)
	if err != nil {
		return nil, schemaErrorf(tagPath, "invalid constructor index %q", tagStr)
	}
	fields, err := listFromJSON(fieldsValue, path+"."+datumKeyFields)
	if err != nil {
		return nil, err
	}
	return data.NewConstr(uint(tag), fields...), nil
}

func objectKeys(obj map[string]any) string {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, strconv.Quote(key))
	}
	slices.Sort(keys)
	return "[" + strings.Join(keys, ", ") + "]"
}

func jsonTypeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
