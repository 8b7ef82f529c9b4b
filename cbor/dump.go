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

package cbor

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"

	_cbor "github.com/fxamacker/cbor/v2"
)

// Dump decodes a single CBOR item and returns an indented representation of its
// structure for debugging purposes. Map entries are sorted by key so that the output
// is stable.
func Dump(data []byte) (string, error) {
	var tmpData any
	if err := DecodeFull(data, &tmpData); err != nil {
		return "", err
	}
	var ret bytes.Buffer
	dumpItem(&ret, tmpData, "")
	return ret.String(), nil
}

func dumpItem(ret *bytes.Buffer, data any, prefix string) {
	switch v := data.(type) {
	case uint64:
		fmt.Fprintf(ret, "%s0x%x (%d),\n", prefix, v, v)
	case int64:
		fmt.Fprintf(ret, "%s%d,\n", prefix, v)
	case big.Int:
		fmt.Fprintf(ret, "%s<bignum> %s,\n", prefix, v.String())
	case []byte:
		fmt.Fprintf(ret, "%s<bytes> (length %d),\n", prefix, len(v))
	case _cbor.ByteString:
		fmt.Fprintf(ret, "%s<bytes> (length %d),\n", prefix, len(v))
	case string:
		fmt.Fprintf(ret, "%s%q,\n", prefix, v)
	case []any:
		ret.WriteString(prefix + "[\n")
		for _, val := range v {
			dumpItem(ret, val, prefix+"  ")
		}
		ret.WriteString(prefix + "],\n")
	case map[any]any:
		keys := make([]any, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprintf("%#v", keys[i]) < fmt.Sprintf("%#v", keys[j])
		})
		ret.WriteString(prefix + "{\n")
		for _, key := range keys {
			fmt.Fprintf(ret, "%s  key:\n", prefix)
			dumpItem(ret, key, prefix+"    ")
			fmt.Fprintf(ret, "%s  value:\n", prefix)
			dumpItem(ret, v[key], prefix+"    ")
		}
		ret.WriteString(prefix + "},\n")
	case _cbor.Tag:
		fmt.Fprintf(ret, "%stag %d (\n", prefix, v.Number)
		dumpItem(ret, v.Content, prefix+"  ")
		ret.WriteString(prefix + "),\n")
	default:
		fmt.Fprintf(ret, "%s%#v,\n", prefix, v)
	}
}
