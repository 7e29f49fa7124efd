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

package erm

import (
	"fmt"
	"time"
)

// RunWithRetries run a pipeline step, retrying transient errors up to retriesNumber times
// Non transient errors are returned immediately
func RunWithRetries(stepName string, retriesNumber int, wait time.Duration, step func() error) (err error) {
	for i := 0; i <= retriesNumber; i++ {
		err = step()
		if err == nil {
			return nil
		}
		if IsNotTransientElseWait(err, wait) {
			return fmt.Errorf("%s: %v", stepName, err)
		}
	}
	return fmt.Errorf("%s: too many transient errors, last was %v", stepName, err)
}
