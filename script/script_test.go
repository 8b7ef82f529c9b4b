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

package script_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/blinklabs-io/txdraft/cbor"
	"github.com/blinklabs-io/txdraft/internal/test"
	"github.com/blinklabs-io/txdraft/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// Expected results of applying {"bytes": "1234"} and {"int": 42} in both orders
const (
	testScriptAppliedBytesIntHex = "585558530100003332323232323222533300432323253330073370e900018041baa0011324a2600c0022c60120026012002600600229309b2b118021baa0015734aae7555cf2ba1574498103421234004c0102182a0001"
	testScriptAppliedIntBytesHex = "585558530100003332323232323222533300432323253330073370e900018041baa0011324a2600c0022c60120026012002600600229309b2b118021baa0015734aae7555cf2ba1574498102182a004c01034212340001"
	// test.ScriptAppliedHex with {"int": 1} applied on top
	testScriptAppliedTwiceHex = "585458520100003332323232323222533300432323253330073370e900018041baa0011324a2600c0022c60120026012002600600229309b2b118021baa0015734aae7555cf2ba1574498103421234004c0101010001"
	// Trace validator with {"bytes": "1234"}, {"int": 42} and {"int": -1} applied in turn
	testTraceApplied1Hex = "586f586d010000322233573892011176616c69646174696e6720657363726f7700333573466e3d220103cafe01000014c105d8799f07ff00335738920109626164206f776e657200333320014bd62901aa008102bbcc0019b80480152f7b42254101ff00337369325164c1034212340001"
	testTraceApplied2Hex = "58755873010000332223357389211176616c69646174696e6720657363726f7700333573466e3d220103cafe01000014c105d8799f07ff00335738920109626164206f776e657200333320014bd62901aa008102bbcc0019b80480152f7b42254101ff00337369325164c103421234004c0102182a0001"
	testTraceApplied3Hex = "587b587901000033322233573892011176616c69646174696e6720657363726f7700333573466e3d220103cafe01000014c105d8799f07ff00335738920109626164206f776e657200333320014bd62901aa008102bbcc0019b80480152f7b42254101ff00337369325164c103421234004c0102182a004c0101200001"
)

func TestNormalize(t *testing.T) {
	testDefs := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single-wrapped",
			input:    test.ScriptSingleHex,
			expected: test.ScriptDoubleHex,
		},
		{
			name:     "double-wrapped",
			input:    test.ScriptDoubleHex,
			expected: test.ScriptDoubleHex,
		},
		{
			name:     "double-wrapped uppercase is returned verbatim",
			input:    strings.ToUpper(test.ScriptDoubleHex),
			expected: strings.ToUpper(test.ScriptDoubleHex),
		},
		{
			name:     "empty bytestring",
			input:    "40",
			expected: "4140",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			normalized, err := script.Normalize(testDef.input)
			require.NoError(t, err)
			assert.Equal(t, testDef.expected, normalized)
			// Idempotence
			again, err := script.Normalize(normalized)
			require.NoError(t, err)
			assert.Equal(t, normalized, again)
			// Both layers must parse
			raw := test.DecodeHexString(normalized)
			inner, err := cbor.DecodeByteString(raw)
			require.NoError(t, err)
			_, err = cbor.DecodeByteString(inner)
			require.NoError(t, err)
		})
	}
}

func TestNormalizeErrors(t *testing.T) {
	testDefs := []struct {
		name     string
		input    string
		expected error
	}{
		{name: "invalid hex character", input: "58zz", expected: script.ErrDecode},
		{name: "odd length hex", input: "584", expected: script.ErrDecode},
		{name: "empty input", input: "", expected: script.ErrScriptFormat},
		{name: "not a bytestring", input: "01000032", expected: script.ErrScriptFormat},
		{name: "truncated bytestring", input: "5845010000", expected: script.ErrScriptFormat},
		{name: "trailing data", input: test.ScriptDoubleHex + "00", expected: script.ErrScriptFormat},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := script.Normalize(testDef.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, testDef.expected)
		})
	}
}

func TestNormalizeDecodeErrorOffset(t *testing.T) {
	_, err := script.Normalize("5845zz")
	var decodeErr *script.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Error(), "offset 4")
}

func TestNormalizeBytes(t *testing.T) {
	normalized, err := script.NormalizeBytes(test.DecodeHexString(test.ScriptSingleHex))
	require.NoError(t, err)
	assert.Equal(t, test.DecodeHexString(test.ScriptDoubleHex), normalized)
}

func TestProgram(t *testing.T) {
	for _, input := range []string{test.ScriptSingleHex, test.ScriptDoubleHex} {
		program, err := script.Program(input)
		require.NoError(t, err)
		assert.Equal(t, test.DecodeHexString(test.ScriptSingleHex)[2:], program)
	}
}

func TestApplyParams(t *testing.T) {
	testDefs := []struct {
		name     string
		params   []string
		input    string
		expected string
	}{
		{
			name:     "single param",
			params:   []string{`{"bytes":"1234"}`},
			input:    test.ScriptSingleHex,
			expected: test.ScriptAppliedHex,
		},
		{
			name:     "single param on double-wrapped script",
			params:   []string{`{"bytes": "1234"}`},
			input:    test.ScriptDoubleHex,
			expected: test.ScriptAppliedHex,
		},
		{
			name:     "two params",
			params:   []string{`{"bytes":"1234"}`, `{"int":42}`},
			input:    test.ScriptSingleHex,
			expected: testScriptAppliedBytesIntHex,
		},
		{
			name:     "two params reversed",
			params:   []string{`{"int":"42"}`, `{"bytes":"1234"}`},
			input:    test.ScriptSingleHex,
			expected: testScriptAppliedIntBytesHex,
		},
		{
			name:     "one param on already applied script",
			params:   []string{`{"int":1}`},
			input:    test.ScriptAppliedHex,
			expected: testScriptAppliedTwiceHex,
		},
		{
			name:     "trace validator one param",
			params:   []string{`{"bytes":"1234"}`},
			input:    test.ScriptTraceSingleHex,
			expected: testTraceApplied1Hex,
		},
		{
			name:     "trace validator two params",
			params:   []string{`{"bytes":"1234"}`, `{"int":42}`},
			input:    test.ScriptTraceDoubleHex,
			expected: testTraceApplied2Hex,
		},
		{
			name:     "trace validator three params",
			params:   []string{`{"bytes":"1234"}`, `{"int":42}`, `{"int":-1}`},
			input:    test.ScriptTraceSingleHex,
			expected: testTraceApplied3Hex,
		},
		{
			name:     "no params normalizes",
			params:   nil,
			input:    test.ScriptSingleHex,
			expected: test.ScriptDoubleHex,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			applied, err := script.ApplyParams(testDef.params, testDef.input)
			require.NoError(t, err)
			assert.Equal(t, testDef.expected, applied)
		})
	}
}

func TestApplyParamsSequential(t *testing.T) {
	params := []string{`{"bytes":"1234"}`, `{"int":42}`, `{"int":-1}`}
	for _, input := range []string{test.ScriptSingleHex, test.ScriptTraceSingleHex} {
		batched, err := script.ApplyParams(params, input)
		require.NoError(t, err)
		current := input
		for _, param := range params {
			current, err = script.ApplyParams([]string{param}, current)
			require.NoError(t, err)
		}
		assert.Equal(t, batched, current)
	}
}

func TestApplyParamsOrderSensitive(t *testing.T) {
	a := `{"bytes":"1234"}`
	b := `{"int":42}`
	ab, err := script.ApplyParams([]string{a, b}, test.ScriptSingleHex)
	require.NoError(t, err)
	ba, err := script.ApplyParams([]string{b, a}, test.ScriptSingleHex)
	require.NoError(t, err)
	assert.NotEqual(t, ab, ba)
}

func TestApplyParamsEmptyIsNormalize(t *testing.T) {
	for _, input := range []string{test.ScriptSingleHex, test.ScriptDoubleHex} {
		applied, err := script.ApplyParams([]string{}, input)
		require.NoError(t, err)
		normalized, err := script.Normalize(input)
		require.NoError(t, err)
		assert.Equal(t, normalized, applied)
	}
}

func TestApplyParamsErrors(t *testing.T) {
	testDefs := []struct {
		name     string
		params   []string
		input    string
		expected error
		path     string
	}{
		{
			name:     "malformed hex",
			params:   []string{`{"bytes":"1234"}`},
			input:    "not hex",
			expected: script.ErrDecode,
		},
		{
			name:     "not a script",
			params:   []string{`{"bytes":"1234"}`},
			input:    "00",
			expected: script.ErrScriptFormat,
		},
		{
			name:     "malformed param",
			params:   []string{`{"int":1}`, `{"constructor":0,"fields":[{"bytes":"zz"}]}`},
			input:    test.ScriptSingleHex,
			expected: script.ErrSchema,
			path:     "$[1].fields[0].bytes",
		},
		{
			name:     "param is not JSON",
			params:   []string{`{"bytes":`},
			input:    test.ScriptSingleHex,
			expected: script.ErrSchema,
			path:     "$[0]",
		},
		{
			// Wrapped bytes that are not a flat program
			name:     "invalid program",
			params:   []string{`{"int":1}`},
			input:    "420100",
			expected: script.ErrScriptFormat,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			applied, err := script.ApplyParams(testDef.params, testDef.input)
			require.Error(t, err)
			assert.Empty(t, applied)
			assert.ErrorIs(t, err, testDef.expected)
			if testDef.path != "" {
				var schemaErr *script.SchemaError
				require.True(t, errors.As(err, &schemaErr))
				assert.Equal(t, testDef.path, schemaErr.Path)
			}
		})
	}
}

func TestHash(t *testing.T) {
	testDefs := []struct {
		scriptType uint
		expected   string
	}{
		{scriptType: script.ScriptRefTypePlutusV1, expected: "8b9272d09caa9d7196db89d5a681f30f470a195ed8374e66e0ee8a0b"},
		{scriptType: script.ScriptRefTypePlutusV2, expected: "5066154a102ee037390c5236f78db23239b49c5748d3d349f3ccf04b"},
		{scriptType: script.ScriptRefTypePlutusV3, expected: "8015df3bd9e3ab472ebd9725c19a5dcaddff93ce50190db7ebc15ec0"},
	}
	for _, testDef := range testDefs {
		for _, input := range []string{test.ScriptSingleHex, test.ScriptDoubleHex} {
			hash, err := script.Hash(input, testDef.scriptType)
			require.NoError(t, err)
			assert.Equal(t, testDef.expected, hash.String())
		}
	}
	_, err := script.Hash(test.ScriptSingleHex, script.ScriptRefTypeNativeScript)
	require.Error(t, err)
}

func TestConcurrentCalls(t *testing.T) {
	defer goleak.VerifyNone(t)
	var wg sync.WaitGroup
	results := make([]string, 32)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = script.ApplyParams(
				[]string{`{"bytes":"1234"}`},
				test.ScriptSingleHex,
			)
		}(i)
	}
	wg.Wait()
	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, test.ScriptAppliedHex, results[i])
	}
}
