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
Package dumpinventory request CAI to perform an export and materialize the local asset snapshot

Triggered by

The pipeline orchestrator, once the configurations have been fetched.

Instances

Only one.

Output

- a CAI export delivered asynchonously in the CAI export bucket, named after the cycle
- the asset snapshot file on the local configs folder, one JSON document per line
- the cycle document in FireStore, status IN_PROGRESS

Automatic retrying

Yes, transient errors only.

*/
package dumpinventory
