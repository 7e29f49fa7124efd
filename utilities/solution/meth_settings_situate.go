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

// Situate set settings from settings based on a given situation
// Situation is the environment name (string)
// Set settings are: projectID and bucket names
// Scalar values already set win over the per environment maps
func (settings *Settings) Situate(environmentName string) {
	if settings.Hosting.ProjectID == "" {
		settings.Hosting.ProjectID = settings.Hosting.ProjectIDs[environmentName]
	}
	if settings.Hosting.GCS.Buckets.CAIExport.Name == "" {
		settings.Hosting.GCS.Buckets.CAIExport.Name = settings.Hosting.GCS.Buckets.CAIExport.Names[environmentName]
	}
	if settings.Hosting.GCS.Buckets.CAIExport.DeleteAgeInDays == 0 {
		settings.Hosting.GCS.Buckets.CAIExport.DeleteAgeInDays = 3
	}
	if settings.Inventory.SnapshotFileName == "" {
		settings.Inventory.SnapshotFileName = "snapshot.jsonl"
	}
	if settings.Scanner.NetworkTagRulesFileName == "" {
		settings.Scanner.NetworkTagRulesFileName = "network_tag_rules.yaml"
	}
	if settings.Notifier.Channels.CloudLogging.LogID == "" {
		settings.Notifier.Channels.CloudLogging.LogID = "bsp-violations"
	}
	if settings.Hosting.SCH.JobName == "" {
		settings.Hosting.SCH.JobName = "bsp-trigger"
	}
	if settings.Hosting.SCH.Schedule == "" {
		settings.Hosting.SCH.Schedule = "0 * * * *"
	}
	if settings.Hosting.SCH.Region == "" {
		settings.Hosting.SCH.Region = "europe-west1"
	}
}
