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
	"os"

	"github.com/go-sql-driver/mysql"
)

// GetDataSourceName build the mysql data source name from settings, environment variables win over settings
func GetDataSourceName(host string, user string, databaseName string) string {
	config := mysql.NewConfig()
	config.Net = "tcp"
	config.Addr = host
	config.User = user
	config.DBName = databaseName
	config.Passwd = os.Getenv("CLOUD_SQL_DB_PASSWORD")
	config.ParseTime = true
	config.AllowNativePasswords = true
	if value := os.Getenv("CLOUD_SQL_DB_HOST"); value != "" {
		config.Addr = value
	}
	if value := os.Getenv("CLOUD_SQL_DB_USER"); value != "" {
		config.User = value
	}
	if value := os.Getenv("CLOUD_SQL_DB_NAME"); value != "" {
		config.DBName = value
	}
	return config.FormatDSN()
}
