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

package glo

import (
	"encoding/json"
	"testing"
)

func TestUnitEntryString(t *testing.T) {
	var testCases = []struct {
		name         string
		entry        Entry
		wantSeverity string
	}{
		{
			name: "DefaultSeverityIsInfo",
			entry: Entry{
				StepName: "dumpinventory",
				Message:  "step_done",
			},
			wantSeverity: "INFO",
		},
		{
			name: "SeverityIsKept",
			entry: Entry{
				StepName: "scanviolations",
				Severity: "CRITICAL",
				Message:  "step_failed",
			},
			wantSeverity: "CRITICAL",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var decoded map[string]interface{}
			err := json.Unmarshal([]byte(tc.entry.String()), &decoded)
			if err != nil {
				t.Fatalf("entry.String is not valid JSON %v", err)
			}
			if decoded["severity"] != tc.wantSeverity {
				t.Errorf("got severity %v want %s", decoded["severity"], tc.wantSeverity)
			}
			if decoded["step_name"] != tc.entry.StepName {
				t.Errorf("got step_name %v want %s", decoded["step_name"], tc.entry.StepName)
			}
		})
	}
}
