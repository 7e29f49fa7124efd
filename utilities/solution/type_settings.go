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

// Settings the structure of the bsp_conf.yaml configuration document
// The document is replaced wholesale on every cycle, there is no partial update
type Settings struct {
	Hosting struct {
		ProjectID  string            `yaml:"projectID,omitempty" valid:"isNotZeroValue"`
		ProjectIDs map[string]string `yaml:"projectIDs"`
		GCS        struct {
			Buckets struct {
				CAIExport struct {
					Name            string `yaml:",omitempty" valid:"isNotZeroValue"`
					Names           map[string]string
					DeleteAgeInDays int64 `yaml:"deleteAgeInDays,omitempty"`
				} `yaml:"CAIExport"`
			}
		}
		Bigquery struct {
			Dataset struct {
				Name     string `valid:"isNotZeroValue"`
				Location string `valid:"isNotZeroValue"`
			}
			Tables struct {
				Violations struct {
					Name string `valid:"isNotZeroValue"`
				}
			}
		}
		Pubsub struct {
			TopicNames struct {
				Violations      string `yaml:"violations" valid:"isNotZeroValue"`
				PipelineTrigger string `yaml:"pipelineTrigger" valid:"isNotZeroValue"`
			} `yaml:"topicNames"`
		}
		FireStore struct {
			CollectionIDs struct {
				Cycles string `valid:"isNotZeroValue"`
			} `yaml:"collectionIDs"`
		}
		CloudSQL struct {
			Host         string `valid:"isNotZeroValue"`
			User         string `valid:"isNotZeroValue"`
			DatabaseName string `yaml:"databaseName" valid:"isNotZeroValue"`
		} `yaml:"cloudSQL"`
		SCH struct {
			JobName  string `yaml:"jobName"`
			Schedule string
			Region   string
		} `yaml:"sch"`
	}
	Inventory struct {
		Parent           string   `valid:"isNotZeroValue"`
		ContentType      string   `yaml:"contentType" valid:"isCAIContentType"`
		AssetTypes       []string `yaml:"assetTypes"`
		SnapshotFileName string   `yaml:"snapshotFileName"`
	}
	Scanner struct {
		NetworkTagRulesFileName string `yaml:"networkTagRulesFileName"`
	}
	Notifier struct {
		Channels struct {
			Pubsub struct {
				Enabled bool
			}
			Bigquery struct {
				Enabled bool
			}
			CloudLogging struct {
				Enabled bool
				LogID   string `yaml:"logID"`
			} `yaml:"cloudLogging"`
		}
	}
	Monitoring struct {
		LabelKeyNames struct {
			Owner             string
			ViolationResolver string `yaml:"violationResolver"`
		} `yaml:"labelKeyNames"`
	}
}
