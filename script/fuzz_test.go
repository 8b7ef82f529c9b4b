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
	"testing"

	"github.com/blinklabs-io/txdraft/internal/test"
	"github.com/blinklabs-io/txdraft/script"
)

func FuzzNormalize(f *testing.F) {
	f.Add(test.ScriptSingleHex)
	f.Add(test.ScriptDoubleHex)
	f.Add(test.ScriptAppliedHex)
	f.Add("40")
	f.Add("")
	f.Add("zz")
	f.Fuzz(func(t *testing.T, input string) {
		normalized, err := script.Normalize(input)
		if err != nil {
			return
		}
		again, err := script.Normalize(normalized)
		if err != nil {
			t.Fatalf("normalizing %q again failed: %s", normalized, err)
		}
		if again != normalized {
			t.Fatalf("normalize is not idempotent: %q != %q", again, normalized)
		}
	})
}

func FuzzApplyParams(f *testing.F) {
	f.Add(`{"bytes":"1234"}`, test.ScriptSingleHex)
	f.Add(`{"int":42}`, test.ScriptDoubleHex)
	f.Add(`{"constructor":0,"fields":[]}`, test.ScriptAppliedHex)
	f.Add(`{"list":[{"bytes":""}]}`, test.ScriptTraceSingleHex)
	f.Fuzz(func(t *testing.T, param string, scriptHex string) {
		// Must never panic
		_, _ = script.ApplyParams([]string{param}, scriptHex)
	})
}
