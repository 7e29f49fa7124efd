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

/*
Package fetchconfigs download the configuration document and the rules folder from the configs bucket

Triggered by

The pipeline orchestrator, as the first step of each cycle.

Instances

Only one.

Output

- the configuration document on the local configs folder
- the rules folder mirrored on the local configs folder, stale local files are deleted

Automatic retrying

Yes, transient errors only.

*/
package fetchconfigs
