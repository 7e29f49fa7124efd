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

// GetCycle retreive a cycle document with retries on transient, found is false when the document does not exist
func GetCycle(ctx context.Context,
	firestoreClient *firestore.Client,
	collectionID string,
	cycleID string,
	retriesNumber time.Duration) (cycle Cycle, found bool, err error) {
	var i time.Duration
	var documentSnap *firestore.DocumentSnapshot
	documentPath := fmt.Sprintf("%s/%s", collectionID, cycleID)
	for i = 0; i < retriesNumber; i++ {
		documentSnap, err = firestoreClient.Doc(documentPath).Get(ctx)
		if err != nil {
			// Retry are for transient, not for doc not found
			if strings.Contains(strings.ToLower(strings.Replace(err.Error(), " ", "", -1)), "notfound") {
				return cycle, false, nil
			}
			log.Println(glo.Entry{
				Severity:    "WARNING",
				Message:     "redo_on_transient",
				Description: fmt.Sprintf("iteration %d firestoreClient.Doc(documentPath).Get %s %v", i, documentPath, err),
				CycleID:     cycleID,
			})
			time.Sleep(i * 100 * time.Millisecond)
		} else {
			if !documentSnap.Exists() {
				return cycle, false, nil
			}
			err = documentSnap.DataTo(&cycle)
			if err != nil {
				return cycle, false, fmt.Errorf("documentSnap.DataTo %v", err)
			}
			return cycle, true, nil
		}
	}
	return cycle, false, fmt.Errorf("too many transient errors on firestoreClient.Doc(%s).Get %v", documentPath, err)
}
