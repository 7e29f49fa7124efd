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

package gfs

import (
	"context"
	"log"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/BrunoReboul/bsp/utilities/itst"
	"github.com/BrunoReboul/bsp/utilities/solution"
	"google.golang.org/api/option"
)

const testCyclesCollectionID = "bsp_test_cycles"

func TestIntegCycleRecordUpdateGet(t *testing.T) {
	projectID, creds := itst.GetIntegrationTestsProjectID()
	ctx := context.Background()
	firestoreClient, err := firestore.NewClient(ctx, projectID, option.WithCredentials(creds))
	if err != nil {
		log.Fatalln(err)
	}

	cycle := Cycle{
		CycleID:     "19700101T000000Z-bsptest0",
		Status:      solution.CycleStatusInProgress,
		StartTime:   time.Now().UTC(),
		Environment: "test",
	}
	// Clean up before testing
	firestoreClient.Doc(testCyclesCollectionID + "/" + cycle.CycleID).Delete(ctx)

	t.Run("Step1_RecordCycle", func(t *testing.T) {
		err := RecordCycle(ctx, firestoreClient, testCyclesCollectionID, cycle, solution.PipelineRetriesNumber)
		if err != nil {
			t.Errorf("RecordCycle %v", err)
		}
	})
	t.Run("Step2_GetCycleFound", func(t *testing.T) {
		retreivedCycle, found, err := GetCycle(ctx, firestoreClient, testCyclesCollectionID, cycle.CycleID, solution.PipelineRetriesNumber)
		if err != nil {
			t.Errorf("GetCycle %v", err)
		}
		if !found {
			t.Errorf("cycle document not found %s", cycle.CycleID)
		}
		if retreivedCycle.Status != solution.CycleStatusInProgress {
			t.Errorf("want status %s got %s", solution.CycleStatusInProgress, retreivedCycle.Status)
		}
	})
	t.Run("Step3_UpdateCycleStatus", func(t *testing.T) {
		cycle.Status = solution.CycleStatusSuccess
		cycle.CompleteTime = time.Now().UTC()
		cycle.AssetCount = 2
		cycle.ViolationCount = 1
		err := UpdateCycleStatus(ctx, firestoreClient, testCyclesCollectionID, cycle, solution.PipelineRetriesNumber)
		if err != nil {
			t.Errorf("UpdateCycleStatus %v", err)
		}
		retreivedCycle, found, err := GetCycle(ctx, firestoreClient, testCyclesCollectionID, cycle.CycleID, solution.PipelineRetriesNumber)
		if err != nil {
			t.Errorf("GetCycle %v", err)
		}
		if !found {
			t.Errorf("cycle document not found %s", cycle.CycleID)
		}
		if retreivedCycle.Status != solution.CycleStatusSuccess {
			t.Errorf("want status %s got %s", solution.CycleStatusSuccess, retreivedCycle.Status)
		}
		if retreivedCycle.ViolationCount != 1 {
			t.Errorf("want violationCount 1 got %d", retreivedCycle.ViolationCount)
		}
	})
	t.Run("Step4_GetCycleNotFound", func(t *testing.T) {
		_, found, err := GetCycle(ctx, firestoreClient, testCyclesCollectionID, "19700101T000000Z-missing0", solution.PipelineRetriesNumber)
		if err != nil {
			t.Errorf("GetCycle %v", err)
		}
		if found {
			t.Errorf("found a cycle document that should not exist")
		}
	})

	// Clean up after testing
	firestoreClient.Doc(testCyclesCollectionID + "/" + cycle.CycleID).Delete(ctx)
}
