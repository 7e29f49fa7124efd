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

package bspcli

import (
	"regexp"
	"testing"
)

func TestUnitGetNewCycleID(t *testing.T) {
	cycleIDRegexp := regexp.MustCompile(`^\d{8}T\d{6}Z-[0-9a-f]{8}$`)
	cycleID1 := getNewCycleID()
	if !cycleIDRegexp.MatchString(cycleID1) {
		t.Errorf("Want a cycle ID matching %s got %s", cycleIDRegexp.String(), cycleID1)
	}
	cycleID2 := getNewCycleID()
	if cycleID1 == cycleID2 {
		t.Errorf("Want unique cycle IDs got twice %s", cycleID1)
	}
}
