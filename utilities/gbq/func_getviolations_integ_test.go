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

import (
	"context"
	"log"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/BrunoReboul/bsp/utilities/itst"
	"google.golang.org/api/option"
)

const testDatasetName = "bsp_test_violations_dataset"

func TestIntegGetViolations(t *testing.T) {
	projectID, creds := itst.GetIntegrationTestsProjectID()
	ctx := context.Background()
	bigQueryClient, err := bigquery.NewClient(ctx, projectID, option.WithCredentials(creds))
	if err != nil {
		log.Fatalln(err)
	}

	// Clean up before testing
	bigQueryClient.Dataset(testDatasetName).DeleteWithContents(ctx)

	testCases := []struct {
		name string
	}{
		{
			name: "Step1_CreateDatasetAndTable",
		},
		{
			name: "Step2_DatasetAndTableUptodate",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			table, err := GetViolations(ctx, bigQueryClient, "EU", testDatasetName)
			if err != nil {
				t.Errorf("GetViolations %v", err)
				return
			}
			tableMetadata, err := table.Metadata(ctx)
			if err != nil {
				t.Errorf("table.Metadata %v", err)
				return
			}
			if tableMetadata.TimePartitioning == nil || tableMetadata.TimePartitioning.Expiration != 0 {
				t.Errorf("want DAY partitioning with no expiration got %+v", tableMetadata.TimePartitioning)
			}
		})
	}

	// Clean up after testing
	err = bigQueryClient.Dataset(testDatasetName).DeleteWithContents(ctx)
	if err != nil {
		log.Printf("delete test dataset %v", err)
	}
}
