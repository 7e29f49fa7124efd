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
Package scanviolations check the asset snapshot against the rule book

Triggered by

The pipeline orchestrator, once the inventory step has completed.

Instances

Only one.

Rules

- network tag rules: a YAML rule book, whitelist and blacklist of network tags per project and network, with glob patterns
- constraints: optional REGO modules evaluated with Open Policy Agent

Output

Violation rows in the violations database, one per breach.

Automatic retrying

Yes, transient errors only. A faulty rule book is not transient and fails the cycle.

*/
package scanviolations
