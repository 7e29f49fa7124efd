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
	"fmt"
	"regexp"

	"github.com/BrunoReboul/bsp/utilities/str"
)

// RuleDefinitions the structure of the network tag rules YAML file
type RuleDefinitions struct {
	Rules []RuleDefinition `yaml:"rules"`
}

// RuleDefinition one rule as written in the rule book file
// project_id and network support the star glob, matching one or more characters
type RuleDefinition struct {
	Name      string   `yaml:"name"`
	ProjectID *string  `yaml:"project_id"`
	Network   *string  `yaml:"network"`
	Whitelist []string `yaml:"whitelist"`
	Blacklist []string `yaml:"blacklist"`
}

// RuleBook the compiled rules, in file order
type RuleBook struct {
	Rules []Rule
}

// Rule one compiled rule
type Rule struct {
	RuleName         string
	RuleIndex        int64
	Whitelist        []string
	Blacklist        []string
	ProjectIDPattern string
	NetworkPattern   string
	projectIDRegexp  *regexp.Regexp
	networkRegexp    *regexp.Regexp
}

// BuildRuleBook compile the rule definitions, a faulty rule fails the build
func BuildRuleBook(ruleDefinitions RuleDefinitions) (ruleBook RuleBook, err error) {
	for i, ruleDefinition := range ruleDefinitions.Rules {
		if (len(ruleDefinition.Whitelist) == 0 && len(ruleDefinition.Blacklist) == 0) ||
			ruleDefinition.ProjectID == nil ||
			ruleDefinition.Network == nil {
			return ruleBook, fmt.Errorf("faulty rule %s", ruleDefinition.Name)
		}
		rule := Rule{
			RuleName:         ruleDefinition.Name,
			RuleIndex:        int64(i),
			Whitelist:        ruleDefinition.Whitelist,
			Blacklist:        ruleDefinition.Blacklist,
			ProjectIDPattern: str.EscapeAndGlobify(*ruleDefinition.ProjectID),
			NetworkPattern:   str.EscapeAndGlobify(*ruleDefinition.Network),
		}
		rule.projectIDRegexp, err = regexp.Compile(rule.ProjectIDPattern)
		if err != nil {
			return ruleBook, fmt.Errorf("faulty rule %s regexp.Compile project_id %v", ruleDefinition.Name, err)
		}
		rule.networkRegexp, err = regexp.Compile(rule.NetworkPattern)
		if err != nil {
			return ruleBook, fmt.Errorf("faulty rule %s regexp.Compile network %v", ruleDefinition.Name, err)
		}
		ruleBook.Rules = append(ruleBook.Rules, rule)
	}
	return ruleBook, nil
}
