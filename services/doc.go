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
Package services structure

All pipeline step packages share a consistent structure

## Two functions and one type

### `Initialize` function

- Goal
  - Prepare a step once per process invocation
- Implementation
  - Cache objects expensive to create, like clients
  - Retreive settings once
  - Cached objects and retreived settings are exposed in one variable of type `Global`

### `Global` type

- A `struct` carrying cached objects and retreived settings prepared by the `Initialize` function and used by the `Run` function

### `Run` function

- Goal
  - Execute the operations of one step for one cycle
- Implementation
  - Is executed once per cycle, after `Initialize`
  - Uses cached objects and retreived settings carried by a variable of type `Global`
  - Performs the task a given step is targetted to do that is described before the `package` key word

*/
package services
