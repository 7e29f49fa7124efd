// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package str

import (
	"regexp"
	"testing"
)

func TestUnitEscapeAndGlobify(t *testing.T) {
	var tests = []struct {
		name       string
		pattern    string
		candidate  string
		shouldPass bool
	}{
		{
			name:       "StarMatchesAnyProject",
			pattern:    "*",
			candidate:  "my-project-123",
			shouldPass: true,
		},
		{
			name:       "StarNeedsAtLeastOneCharacter",
			pattern:    "*",
			candidate:  "",
			shouldPass: false,
		},
		{
			name:       "PrefixGlob",
			pattern:    "prod-*",
			candidate:  "prod-billing",
			shouldPass: true,
		},
		{
			name:       "PrefixGlobDoesNotMatchOther",
			pattern:    "prod-*",
			candidate:  "dev-billing",
			shouldPass: false,
		},
		{
			name:       "LiteralMatchIsAnchored",
			pattern:    "network-1",
			candidate:  "network-10",
			shouldPass: false,
		},
		{
			name:       "RegexMetacharactersAreLiteral",
			pattern:    "net.work",
			candidate:  "netXwork",
			shouldPass: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			matched, err := regexp.MatchString(EscapeAndGlobify(test.pattern), test.candidate)
			if err != nil {
				t.Fatalf("regexp.MatchString %v", err)
			}
			if matched != test.shouldPass {
				t.Errorf("pattern '%s' candidate '%s' got %v want %v", test.pattern, test.candidate, matched, test.shouldPass)
			}
		})
	}
}
