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

	// register the mysql driver
	_ "github.com/go-sql-driver/mysql"
)

// Open connect to the violations database and check the connection
func Open(ctx context.Context, host string, user string, databaseName string) (db *sql.DB, err error) {
	db, err = sql.Open("mysql", GetDataSourceName(host, user, databaseName))
	if err != nil {
		return nil, fmt.Errorf("sql.Open %v", err)
	}
	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("db.PingContext %v", err)
	}
	return db, nil
}
