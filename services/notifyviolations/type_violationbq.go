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

package notifyviolations

import (
	"time"

	"github.com/BrunoReboul/bsp/utilities/vdb"
)

// violationBQ violation shaped to the violations table schema
type violationBQ struct {
	CycleID        string       `bigquery:"cycleID"`
	RuleName       string       `bigquery:"ruleName"`
	RuleIndex      int64        `bigquery:"ruleIndex"`
	ViolationType  string       `bigquery:"violationType"`
	EvaluationTime time.Time    `bigquery:"evaluationTime"`
	Asset          assetBQ      `bigquery:"asset"`
	Rule           ruleConfigBQ `bigquery:"rule"`
	ViolationData  string       `bigquery:"violationData"`
}

type assetBQ struct {
	Name              string `bigquery:"name"`
	AssetType         string `bigquery:"assetType"`
	ProjectID         string `bigquery:"projectID"`
	Network           string `bigquery:"network"`
	Tag               string `bigquery:"tag"`
	Owner             string `bigquery:"owner"`
	ViolationResolver string `bigquery:"violationResolver"`
}

type ruleConfigBQ struct {
	Mode     string `bigquery:"mode"`
	Severity string `bigquery:"severity"`
	Match    string `bigquery:"match"`
}

// toViolationBQ shape a violation row for the violations table
func toViolationBQ(violation vdb.Violation) violationBQ {
	var vBQ violationBQ
	vBQ.CycleID = violation.CycleID
	vBQ.RuleName = violation.RuleName
	vBQ.RuleIndex = violation.RuleIndex
	vBQ.ViolationType = violation.ViolationType
	vBQ.EvaluationTime = violation.EvaluationTime
	vBQ.Asset.Name = violation.ResourceName
	vBQ.Asset.AssetType = violation.ResourceType
	vBQ.Asset.ProjectID = violation.ProjectID
	vBQ.Asset.Network = violation.Network
	vBQ.Asset.Tag = violation.Tag
	vBQ.Asset.Owner = violation.Owner
	vBQ.Asset.ViolationResolver = violation.ViolationResolver
	vBQ.Rule.Mode = violation.RuleMode
	vBQ.Rule.Severity = violation.RuleSeverity
	vBQ.Rule.Match = violation.RuleMatch
	vBQ.ViolationData = violation.ViolationData
	return vBQ
}
