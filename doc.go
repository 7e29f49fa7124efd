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
Package batchscanpipeline BSP Batch Scan Pipeline

## What

Audit Google Cloud resources compliance against a set of rules on a schedule. Once per cycle, BSP fetches the configuration document and the rule set from a GCS bucket, dumps a fresh inventory of the assets, scans the inventory against the rules, and notifies the violations found to the configured channels.

### Pipeline steps, in order

1. Activate the service account credentials
2. Fetch the configuration document and the rule set
3. Dump the inventory, aka the assets snapshot of the cycle
4. Scan the snapshot against the rule set, persist the violations
5. Notify the violations: Pub/Sub, BigQuery, Cloud Logging

Each step runs to completion before the next starts. A step failure fails the cycle: transient errors are retried with a bounded wait, other errors mark the cycle FAILURE and stop the pipeline.

## Why

- Batch scanning complements real-time feeds: it catches drift on resources that never emit a change event
- Value is delivered only when a detected violation reaches someone who can fix it

## How

One binary `bsp` driven by command flags:
  - `-init` provision the pipeline prerequisites: bucket, topics, BigQuery dataset and violations table, hourly scheduler job
  - `-run` execute the full cycle
  - `-fetch` `-inventory` `-scan` `-notify` execute a single step
*/
package batchscanpipeline
