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

const createViolationsTableStatement = `CREATE TABLE IF NOT EXISTS violations (
	id BIGINT NOT NULL AUTO_INCREMENT,
	cycle_id VARCHAR(64) NOT NULL,
	rule_name VARCHAR(255) NOT NULL,
	rule_index BIGINT NOT NULL,
	violation_type VARCHAR(255) NOT NULL,
	resource_name VARCHAR(1024) NOT NULL,
	resource_type VARCHAR(255) NOT NULL,
	project_id VARCHAR(255),
	network VARCHAR(255),
	tag VARCHAR(255),
	owner VARCHAR(255),
	violation_resolver VARCHAR(255),
	rule_mode VARCHAR(32),
	rule_severity VARCHAR(32),
	rule_match TEXT,
	evaluation_time DATETIME NOT NULL,
	violation_data TEXT,
	PRIMARY KEY (id),
	INDEX idx_cycle_id (cycle_id)
)`

// CreateViolationsTable create the violations table when missing
func CreateViolationsTable(ctx context.Context, db *sql.DB) (err error) {
	_, err = db.ExecContext(ctx, createViolationsTableStatement)
	if err != nil {
		return fmt.Errorf("db.ExecContext create table violations %v", err)
	}
	return nil
}
