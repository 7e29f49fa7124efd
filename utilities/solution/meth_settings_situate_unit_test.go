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

package solution

import (
	"testing"

	"gopkg.in/yaml.v2"
)

func TestUnitSituate(t *testing.T) {
	type testcases []struct {
		Name        string
		Settings    Settings
		Environment string
		Want        map[string]string
	}
	var testCases testcases

	yamlBytes := []byte(`---
- name: perEnvironmentMaps
  settings:
    hosting:
      projectIDs:
        dev: bspdev
        prd: bspprd
      gcs:
        buckets:
          CAIExport:
            names:
              dev: bsp-cai-exports-dev
              prd: bsp-cai-exports-prd
  environment: dev
  want:
    projectID: bspdev
    CAIExportBucketName: bsp-cai-exports-dev
    CAIExportBucketDeleteAgeInDays: "3"
    snapshotFileName: snapshot.jsonl
    networkTagRulesFileName: network_tag_rules.yaml
    schedule: 0 * * * *
- name: scalarsWinOverMaps
  settings:
    hosting:
      projectID: pinned
      projectIDs:
        dev: bspdev
      gcs:
        buckets:
          CAIExport:
            name: pinned-bucket
            deleteAgeInDays: 99
    inventory:
      snapshotFileName: assets.jsonl
  environment: dev
  want:
    projectID: pinned
    CAIExportBucketName: pinned-bucket
    CAIExportBucketDeleteAgeInDays: "99"
    snapshotFileName: assets.jsonl`)

	err := yaml.Unmarshal(yamlBytes, &testCases)
	if err != nil {
		t.Fatalf("yaml.Unmarshal testcases %v", err)
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			settings := tc.Settings
			settings.Situate(tc.Environment)
			got := map[string]string{
				"projectID":           settings.Hosting.ProjectID,
				"CAIExportBucketName": settings.Hosting.GCS.Buckets.CAIExport.Name,
			}
			if want, ok := tc.Want["projectID"]; ok && got["projectID"] != want {
				t.Errorf("projectID got %s want %s", got["projectID"], want)
			}
			if want, ok := tc.Want["CAIExportBucketName"]; ok && got["CAIExportBucketName"] != want {
				t.Errorf("CAIExportBucketName got %s want %s", got["CAIExportBucketName"], want)
			}
			if want, ok := tc.Want["snapshotFileName"]; ok && settings.Inventory.SnapshotFileName != want {
				t.Errorf("snapshotFileName got %s want %s", settings.Inventory.SnapshotFileName, want)
			}
			if want, ok := tc.Want["networkTagRulesFileName"]; ok && settings.Scanner.NetworkTagRulesFileName != want {
				t.Errorf("networkTagRulesFileName got %s want %s", settings.Scanner.NetworkTagRulesFileName, want)
			}
			if want, ok := tc.Want["schedule"]; ok && settings.Hosting.SCH.Schedule != want {
				t.Errorf("schedule got %s want %s", settings.Hosting.SCH.Schedule, want)
			}
			if tc.Name == "perEnvironmentMaps" && settings.Hosting.GCS.Buckets.CAIExport.DeleteAgeInDays != 3 {
				t.Errorf("deleteAgeInDays got %d want 3", settings.Hosting.GCS.Buckets.CAIExport.DeleteAgeInDays)
			}
			if tc.Name == "scalarsWinOverMaps" && settings.Hosting.GCS.Buckets.CAIExport.DeleteAgeInDays != 99 {
				t.Errorf("deleteAgeInDays got %d want 99", settings.Hosting.GCS.Buckets.CAIExport.DeleteAgeInDays)
			}
		})
	}
}
