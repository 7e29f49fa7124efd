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

package gcs

import "github.com/BrunoReboul/bsp/utilities/str"

// PlanMirror compute the actions to make a local folder mirror a bucket prefix
// Every remote file is copied, replace wholesale semantics
// Local files absent from the remote list are stale and planned for deletion
func PlanMirror(remoteRelativePaths []string, localRelativePaths []string) (toCopy []string, toDelete []string) {
	toCopy = append(toCopy, remoteRelativePaths...)
	for _, localRelativePath := range localRelativePaths {
		if !str.Find(remoteRelativePaths, localRelativePath) {
			toDelete = append(toDelete, localRelativePath)
		}
	}
	return toCopy, toDelete
}
