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
Package notifyviolations deliver the cycle findings on the configured channels

Triggered by

The pipeline orchestrator, once the scanner step has completed.

Instances

Only one.

Channels

- PubSub: one message per violation on the violations topic. No topic configured means the channel is off
- BigQuery: one row per violation in the violations table
- Cloud Logging: one WARNING entry per violation

Automatic retrying

Yes, transient errors only.

*/
package notifyviolations
