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
	"strings"
	"testing"
)

func TestUnitGetDataSourceName(t *testing.T) {
	var testCases = []struct {
		name         string
		host         string
		user         string
		databaseName string
		env          map[string]string
		wantContains []string
	}{
		{
			name:         "fromSettings",
			host:         "10.0.0.5:3306",
			user:         "bsp",
			databaseName: "violations_db",
			wantContains: []string{"bsp", "tcp(10.0.0.5:3306)", "/violations_db"},
		},
		{
			name:         "envVarsWinOverSettings",
			host:         "10.0.0.5:3306",
			user:         "bsp",
			databaseName: "violations_db",
			env: map[string]string{
				"CLOUD_SQL_DB_HOST": "127.0.0.1:3307",
				"CLOUD_SQL_DB_USER": "override_user",
				"CLOUD_SQL_DB_NAME": "override_db",
			},
			wantContains: []string{"override_user", "tcp(127.0.0.1:3307)", "/override_db"},
		},
		{
			name:         "passwordOnlyComesFromEnv",
			host:         "10.0.0.5:3306",
			user:         "bsp",
			databaseName: "violations_db",
			env: map[string]string{
				"CLOUD_SQL_DB_PASSWORD": "s3cret",
			},
			wantContains: []string{"bsp:s3cret@"},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			for key, value := range tc.env {
				os.Setenv(key, value)
			}
			defer func() {
				for key := range tc.env {
					os.Unsetenv(key)
				}
			}()
			dataSourceName := GetDataSourceName(tc.host, tc.user, tc.databaseName)
			for _, want := range tc.wantContains {
				if !strings.Contains(dataSourceName, want) {
					t.Errorf("want data source name to contain %s got %s", want, dataSourceName)
				}
			}
		})
	}
}
