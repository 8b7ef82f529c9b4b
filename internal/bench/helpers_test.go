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

package bench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBodyFixtureValidates(t *testing.T) {
	for _, size := range []int{0, 1, 300} {
		require.NoError(t, BodyFixture(size).Validate(), "size %d", size)
	}
}

func TestBodyFixtureJson(t *testing.T) {
	bodyJson, err := BodyFixtureJson(2)
	require.NoError(t, err)
	require.Contains(t, bodyJson, `"changeAddress"`)
}
