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
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/BrunoReboul/bsp/utilities/str"
	"github.com/BrunoReboul/bsp/utilities/vdb"
)

// networkAndProjectRegexp extract the project then the network from a network interface URL
var networkAndProjectRegexp = regexp.MustCompile(`compute/.*/projects/([^/]*).*networks/([^/]*)`)

// FindViolations check one asset against one rule, one violation per breached network interface
func (rule *Rule) FindViolations(asset Asset, cycleID string, evaluationTime time.Time) (violations []vdb.Violation) {
	tags := asset.Resource.Data.Tags.Items
	for _, networkInterface := range asset.Resource.Data.NetworkInterfaces {
		networkAndProject := networkAndProjectRegexp.FindStringSubmatch(networkInterface.Network)
		if networkAndProject == nil {
			continue
		}
		projectID := networkAndProject[1]
		network := networkAndProject[2]
		if !rule.networkRegexp.MatchString(network) || !rule.projectIDRegexp.MatchString(projectID) {
			continue
		}
		var offendingTags []string
		for _, tag := range tags {
			if str.Find(rule.Blacklist, tag) {
				offendingTags = append(offendingTags, tag)
				continue
			}
			if len(rule.Whitelist) > 0 && !str.Find(rule.Whitelist, tag) {
				offendingTags = append(offendingTags, tag)
			}
		}
		if len(offendingTags) == 0 {
			continue
		}
		ruleMode := "whitelist"
		for _, tag := range offendingTags {
			if str.Find(rule.Blacklist, tag) {
				ruleMode = "blacklist"
				break
			}
		}
		violationDataJSON, _ := json.Marshal(map[string]interface{}{
			"project":      projectID,
			"network":      network,
			"tags":         tags,
			"instanceName": asset.Resource.Data.Name,
		})
		violations = append(violations, vdb.Violation{
			CycleID:        cycleID,
			RuleName:       rule.RuleName,
			RuleIndex:      rule.RuleIndex,
			ViolationType:  "INSTANCE_NETWORK_TAG_VIOLATION",
			ResourceName:   asset.Name,
			ResourceType:   "instance",
			ProjectID:      projectID,
			Network:        network,
			Tag:            strings.Join(offendingTags, ","),
			RuleMode:       ruleMode,
			RuleSeverity:   "medium",
			RuleMatch:      "project_id:" + rule.ProjectIDPattern + " network:" + rule.NetworkPattern,
			EvaluationTime: evaluationTime,
			ViolationData:  string(violationDataJSON),
		})
	}
	return violations
}
