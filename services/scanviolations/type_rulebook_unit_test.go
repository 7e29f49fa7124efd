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

package scanviolations

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestUnitBuildRuleBook(t *testing.T) {
	var testCases = []struct {
		name          string
		rulesYAML     string
		wantRuleCount int
		wantError     bool
		wantErrorMsg  string
	}{
		{
			name: "validBlacklistRule",
			rulesYAML: `rules:
  - name: reserved network tags
    project_id: '*'
    network: 'network-1'
    blacklist:
      - 'reserved-tag'`,
			wantRuleCount: 1,
		},
		{
			name: "validWhitelistRule",
			rulesYAML: `rules:
  - name: allowed tags only
    project_id: 'project-1'
    network: '*'
    whitelist:
      - 'web'
      - 'ssh'`,
			wantRuleCount: 1,
		},
		{
			name: "faultyRuleNoLists",
			rulesYAML: `rules:
  - name: no lists at all
    project_id: '*'
    network: '*'`,
			wantError:    true,
			wantErrorMsg: "faulty rule no lists at all",
		},
		{
			name: "faultyRuleMissingProjectID",
			rulesYAML: `rules:
  - name: missing project
    network: '*'
    blacklist:
      - 'tag'`,
			wantError:    true,
			wantErrorMsg: "faulty rule missing project",
		},
		{
			name: "faultyRuleMissingNetwork",
			rulesYAML: `rules:
  - name: missing network
    project_id: '*'
    blacklist:
      - 'tag'`,
			wantError:    true,
			wantErrorMsg: "faulty rule missing network",
		},
		{
			name:          "emptyRuleBook",
			rulesYAML:     `rules: []`,
			wantRuleCount: 0,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var ruleDefinitions RuleDefinitions
			err := yaml.Unmarshal([]byte(tc.rulesYAML), &ruleDefinitions)
			if err != nil {
				t.Fatalf("yaml.Unmarshal %v", err)
			}
			ruleBook, err := BuildRuleBook(ruleDefinitions)
			if tc.wantError {
				if err == nil {
					t.Errorf("Did not get the expected error %s", tc.wantErrorMsg)
					return
				}
				if !strings.Contains(err.Error(), tc.wantErrorMsg) {
					t.Errorf("Error message should contain %s got %s", tc.wantErrorMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("Got an unexpected error %v", err)
				return
			}
			if len(ruleBook.Rules) != tc.wantRuleCount {
				t.Errorf("Want %d rules got %d", tc.wantRuleCount, len(ruleBook.Rules))
			}
			for i, rule := range ruleBook.Rules {
				if rule.RuleIndex != int64(i) {
					t.Errorf("Want rule index %d got %d", i, rule.RuleIndex)
				}
			}
		})
	}
}

func TestUnitBuildRuleBookGlobPatterns(t *testing.T) {
	projectID := "*"
	network := "network-*"
	ruleDefinitions := RuleDefinitions{
		Rules: []RuleDefinition{
			{
				Name:      "glob rule",
				ProjectID: &projectID,
				Network:   &network,
				Blacklist: []string{"tag"},
			},
		},
	}
	ruleBook, err := BuildRuleBook(ruleDefinitions)
	if err != nil {
		t.Fatalf("BuildRuleBook %v", err)
	}
	rule := ruleBook.Rules[0]
	if rule.ProjectIDPattern != "^.+$" {
		t.Errorf("Want project pattern ^.+$ got %s", rule.ProjectIDPattern)
	}
	if rule.NetworkPattern != "^network-.+$" {
		t.Errorf("Want network pattern ^network-.+$ got %s", rule.NetworkPattern)
	}
}
