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
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/BrunoReboul/bsp/utilities/glo"
)

// RecordCycle create or overwrite the cycle document, with retries on transient
func RecordCycle(ctx context.Context,
	firestoreClient *firestore.Client,
	collectionID string,
	cycle Cycle,
	retriesNumber time.Duration) (err error) {
	var i time.Duration
	documentPath := fmt.Sprintf("%s/%s", collectionID, cycle.CycleID)
	for i = 0; i < retriesNumber; i++ {
		_, err = firestoreClient.Doc(documentPath).Set(ctx, cycle)
		if err != nil {
			log.Println(glo.Entry{
				Severity:    "WARNING",
				Message:     "recordCycle cannot set firestore doc",
				Description: fmt.Sprintf("iteration %d firestoreClient.Doc(documentPath).Set %s %v", i, documentPath, err),
				CycleID:     cycle.CycleID,
			})
			time.Sleep(i * 100 * time.Millisecond)
		} else {
			return nil
		}
	}
	return fmt.Errorf("too many transient errors on firestoreClient.Doc(%s).Set %v", documentPath, err)
}

// UpdateCycleStatus update status and counters on an existing cycle document, with retries on transient
func UpdateCycleStatus(ctx context.Context,
	firestoreClient *firestore.Client,
	collectionID string,
	cycle Cycle,
	retriesNumber time.Duration) (err error) {
	var i time.Duration
	documentPath := fmt.Sprintf("%s/%s", collectionID, cycle.CycleID)
	updates := []firestore.Update{
		{Path: "status", Value: cycle.Status},
		{Path: "completeTime", Value: cycle.CompleteTime},
		{Path: "assetCount", Value: cycle.AssetCount},
		{Path: "violationCount", Value: cycle.ViolationCount},
	}
	if cycle.Comment != "" {
		updates = append(updates, firestore.Update{Path: "comment", Value: cycle.Comment})
	}
	for i = 0; i < retriesNumber; i++ {
		_, err = firestoreClient.Doc(documentPath).Update(ctx, updates)
		if err != nil {
			if strings.Contains(strings.ToLower(strings.Replace(err.Error(), " ", "", -1)), "notfound") {
				return fmt.Errorf("cycle document not found %s", documentPath)
			}
			log.Println(glo.Entry{
				Severity:    "WARNING",
				Message:     "updateCycleStatus cannot update firestore doc",
				Description: fmt.Sprintf("iteration %d firestoreClient.Doc(documentPath).Update %s %v", i, documentPath, err),
				CycleID:     cycle.CycleID,
			})
			time.Sleep(i * 100 * time.Millisecond)
		} else {
			return nil
		}
	}
	return fmt.Errorf("too many transient errors on firestoreClient.Doc(%s).Update %v", documentPath, err)
}
