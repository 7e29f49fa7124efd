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

package vdb

import "time"

// Violation one rule breach found by the scanner on one asset
type Violation struct {
	CycleID           string    `json:"cycleID"`
	RuleName          string    `json:"ruleName"`
	RuleIndex         int64     `json:"ruleIndex"`
	ViolationType     string    `json:"violationType"`
	ResourceName      string    `json:"resourceName"`
	ResourceType      string    `json:"resourceType"`
	ProjectID         string    `json:"projectID"`
	Network           string    `json:"network"`
	Tag               string    `json:"tag"`
	Owner             string    `json:"owner,omitempty"`
	ViolationResolver string    `json:"violationResolver,omitempty"`
	RuleMode          string    `json:"ruleMode"`
	RuleSeverity      string    `json:"ruleSeverity"`
	RuleMatch         string    `json:"ruleMatch"`
	EvaluationTime    time.Time `json:"evaluationTime"`
	ViolationData     string    `json:"violationData"`
}
