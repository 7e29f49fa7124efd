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

// ConfFileName name of the pipeline configuration document, in the bucket and on the local path
const ConfFileName = "bsp_conf.yaml"

// ConfObjectName location of the configuration document in the configuration bucket
const ConfObjectName = "configs/" + ConfFileName

// SituatedConfFileName dump of the settings after situating them on the environment
const SituatedConfFileName = "bsp_conf_situated.yaml"

// DefaultConfFolderPath fixed local folder where the configuration document is fetched
const DefaultConfFolderPath = "/configs"

// DefaultKeyFilePath fixed local path of the service account key file
const DefaultKeyFilePath = "/key/credentials.json"

// DefaultRulesFolderPath local folder mirroring the rules prefix of the configuration bucket
const DefaultRulesFolderPath = "rules"

// RulesPrefix prefix of the rule set in the configuration bucket
const RulesPrefix = "rules/"

// DevelopmentEnvironmentName name of the default environment
const DevelopmentEnvironmentName = "dev"

// PipelineRetriesNumber how many times a transient step failure is retried before the cycle fails
const PipelineRetriesNumber = 3

// PipelineRetryWaitSec seconds to wait before retrying a transient step failure
const PipelineRetryWaitSec = 5

// Cycle statuses
const (
	CycleStatusInProgress = "INPROGRESS"
	CycleStatusSuccess    = "SUCCESS"
	CycleStatusFailure    = "FAILURE"
)
