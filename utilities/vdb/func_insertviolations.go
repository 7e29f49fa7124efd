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

const insertViolationStatement = `INSERT INTO violations (
	cycle_id, rule_name, rule_index, violation_type,
	resource_name, resource_type, project_id, network, tag,
	owner, violation_resolver,
	rule_mode, rule_severity, rule_match, evaluation_time, violation_data
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// InsertViolations record the scanner findings for one cycle in a single transaction
func InsertViolations(ctx context.Context, db *sql.DB, violations []Violation) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTx %v", err)
	}
	stmt, err := tx.PrepareContext(ctx, insertViolationStatement)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("tx.PrepareContext %v", err)
	}
	defer stmt.Close()
	for _, violation := range violations {
		_, err = stmt.ExecContext(ctx,
			violation.CycleID,
			violation.RuleName,
			violation.RuleIndex,
			violation.ViolationType,
			violation.ResourceName,
			violation.ResourceType,
			violation.ProjectID,
			violation.Network,
			violation.Tag,
			violation.Owner,
			violation.ViolationResolver,
			violation.RuleMode,
			violation.RuleSeverity,
			violation.RuleMatch,
			violation.EvaluationTime,
			violation.ViolationData)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("stmt.ExecContext %v", err)
		}
	}
	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("tx.Commit %v", err)
	}
	return nil
}
