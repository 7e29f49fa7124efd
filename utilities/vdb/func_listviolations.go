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

import (
	"context"
	"database/sql"
	"fmt"
)

const listViolationsStatement = `SELECT
	cycle_id, rule_name, rule_index, violation_type,
	resource_name, resource_type, project_id, network, tag,
	owner, violation_resolver,
	rule_mode, rule_severity, rule_match, evaluation_time, violation_data
FROM violations WHERE cycle_id = ? ORDER BY rule_index, resource_name`

// ListViolations retreive the scanner findings for one cycle
func ListViolations(ctx context.Context, db *sql.DB, cycleID string) (violations []Violation, err error) {
	rows, err := db.QueryContext(ctx, listViolationsStatement, cycleID)
	if err != nil {
		return nil, fmt.Errorf("db.QueryContext %v", err)
	}
	defer rows.Close()
	for rows.Next() {
		var violation Violation
		err = rows.Scan(
			&violation.CycleID,
			&violation.RuleName,
			&violation.RuleIndex,
			&violation.ViolationType,
			&violation.ResourceName,
			&violation.ResourceType,
			&violation.ProjectID,
			&violation.Network,
			&violation.Tag,
			&violation.Owner,
			&violation.ViolationResolver,
			&violation.RuleMode,
			&violation.RuleSeverity,
			&violation.RuleMatch,
			&violation.EvaluationTime,
			&violation.ViolationData)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan %v", err)
		}
		violations = append(violations, violation)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("rows.Err %v", err)
	}
	return violations, nil
}
