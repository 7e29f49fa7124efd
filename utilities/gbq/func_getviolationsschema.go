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

package gbq

import "cloud.google.com/go/bigquery"

// GetViolationsSchema defines violations table schema
func GetViolationsSchema() bigquery.Schema {
	return bigquery.Schema{
		{Name: "cycleID", Required: true, Type: bigquery.StringFieldType, Description: "The pipeline cycle that found this violation"},
		{Name: "ruleName", Required: true, Type: bigquery.StringFieldType},
		{Name: "ruleIndex", Required: true, Type: bigquery.IntegerFieldType, Description: "The position of the rule in the rule book"},
		{Name: "violationType", Required: true, Type: bigquery.StringFieldType},
		{Name: "evaluationTime", Required: true, Type: bigquery.TimestampFieldType},
		{
			Name:        "asset",
			Type:        bigquery.RecordFieldType,
			Description: "The non compliant asset",
			Schema: bigquery.Schema{
				{Name: "name", Required: true, Type: bigquery.StringFieldType},
				{Name: "assetType", Required: false, Type: bigquery.StringFieldType},
				{Name: "projectID", Required: false, Type: bigquery.StringFieldType},
				{Name: "network", Required: false, Type: bigquery.StringFieldType},
				{Name: "tag", Required: false, Type: bigquery.StringFieldType},
				{Name: "owner", Required: false, Type: bigquery.StringFieldType},
				{Name: "violationResolver", Required: false, Type: bigquery.StringFieldType},
			},
		},
		{
			Name:        "rule",
			Type:        bigquery.RecordFieldType,
			Description: "The rule settings used to assess the asset",
			Schema: bigquery.Schema{
				{Name: "mode", Required: false, Type: bigquery.StringFieldType},
				{Name: "severity", Required: false, Type: bigquery.StringFieldType},
				{Name: "match", Required: false, Type: bigquery.StringFieldType},
			},
		},
		{Name: "violationData", Required: false, Type: bigquery.StringFieldType, Description: "The violation detail as a JSON document"},
	}
}
