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

package dumpinventory

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	asset "cloud.google.com/go/asset/apiv1"
	"cloud.google.com/go/firestore"
	"github.com/BrunoReboul/bsp/utilities/gfs"
	"github.com/BrunoReboul/bsp/utilities/glo"
	"github.com/BrunoReboul/bsp/utilities/solution"
	"google.golang.org/api/iterator"
	assetpb "google.golang.org/genproto/googleapis/cloud/asset/v1"
	"google.golang.org/protobuf/encoding/protojson"
)

// Global structure for global variables to cache clients and settings between steps
type Global struct {
	ctx                context.Context
	assetClient        *asset.Client
	firestoreClient    *firestore.Client
	settings           *solution.Settings
	snapshotFilePath   string
	cyclesCollectionID string
	environment        string
}

// Initialize cache clients and settings
func Initialize(ctx context.Context,
	global *Global,
	assetClient *asset.Client,
	firestoreClient *firestore.Client,
	settings *solution.Settings,
	confFolderPath string,
	environment string) {
	global.ctx = ctx
	global.assetClient = assetClient
	global.firestoreClient = firestoreClient
	global.settings = settings
	global.snapshotFilePath = filepath.Join(confFolderPath, settings.Inventory.SnapshotFileName)
	global.cyclesCollectionID = settings.Hosting.FireStore.CollectionIDs.Cycles
	global.environment = environment
}

// Run record the cycle, request the CAI export, then materialize the local asset snapshot
func Run(global *Global, cycleID string) (assetCount int64, err error) {
	start := time.Now()
	cycle := gfs.Cycle{
		CycleID:     cycleID,
		Status:      solution.CycleStatusInProgress,
		StartTime:   start,
		Environment: global.environment,
	}
	err = gfs.RecordCycle(global.ctx, global.firestoreClient, global.cyclesCollectionID, cycle, solution.PipelineRetriesNumber)
	if err != nil {
		return 0, fmt.Errorf("gfs.RecordCycle %v", err)
	}

	err = exportAssets(global, cycleID)
	if err != nil {
		return 0, err
	}

	assetCount, err = writeSnapshot(global)
	if err != nil {
		return 0, err
	}
	log.Println(glo.Entry{
		StepName:       "dumpinventory",
		CycleID:        cycleID,
		AssetCount:     assetCount,
		Message:        fmt.Sprintf("asset snapshot written %s", global.snapshotFilePath),
		LatencySeconds: time.Since(start).Seconds(),
	})
	return assetCount, nil
}

// exportAssets request the CAI export, do NOT wait for the asynchonous operation to complete
func exportAssets(global *Global, cycleID string) (err error) {
	var gcsDestinationURI assetpb.GcsDestination_Uri
	gcsDestinationURI.Uri = fmt.Sprintf("gs://%s/%s.dump",
		global.settings.Hosting.GCS.Buckets.CAIExport.Name,
		cycleID)

	var gcsDestination assetpb.GcsDestination
	gcsDestination.ObjectUri = &gcsDestinationURI

	var outputConfigGCSDestination assetpb.OutputConfig_GcsDestination
	outputConfigGCSDestination.GcsDestination = &gcsDestination

	var outputConfig assetpb.OutputConfig
	outputConfig.Destination = &outputConfigGCSDestination

	request := &assetpb.ExportAssetsRequest{}
	switch global.settings.Inventory.ContentType {
	case "RESOURCE":
		request.ContentType = assetpb.ContentType_RESOURCE
	case "IAM_POLICY":
		request.ContentType = assetpb.ContentType_IAM_POLICY
	default:
		return fmt.Errorf("unsupported content type: %s", global.settings.Inventory.ContentType)
	}
	request.Parent = global.settings.Inventory.Parent
	request.AssetTypes = global.settings.Inventory.AssetTypes
	request.OutputConfig = &outputConfig

	operation, err := global.assetClient.ExportAssets(global.ctx, request)
	if err != nil {
		return fmt.Errorf("assetClient.ExportAssets: %v", err)
	}
	log.Printf("gcloud asset operations describe %s", operation.Name())
	return nil
}

// writeSnapshot list assets and write them locally, one JSON document per line
func writeSnapshot(global *Global) (assetCount int64, err error) {
	request := &assetpb.ListAssetsRequest{}
	switch global.settings.Inventory.ContentType {
	case "RESOURCE":
		request.ContentType = assetpb.ContentType_RESOURCE
	case "IAM_POLICY":
		request.ContentType = assetpb.ContentType_IAM_POLICY
	default:
		return 0, fmt.Errorf("unsupported content type: %s", global.settings.Inventory.ContentType)
	}
	request.Parent = global.settings.Inventory.Parent
	request.AssetTypes = global.settings.Inventory.AssetTypes

	err = os.MkdirAll(filepath.Dir(global.snapshotFilePath), 0755)
	if err != nil {
		return 0, fmt.Errorf("os.MkdirAll %v", err)
	}
	snapshotFile, err := os.Create(global.snapshotFilePath)
	if err != nil {
		return 0, fmt.Errorf("os.Create %v", err)
	}
	defer snapshotFile.Close()
	writer := bufio.NewWriter(snapshotFile)

	assetIterator := global.assetClient.ListAssets(global.ctx, request)
	for {
		listedAsset, err := assetIterator.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("assetIterator.Next: %v", err)
		}
		assetJSON, err := protojson.Marshal(listedAsset)
		if err != nil {
			return 0, fmt.Errorf("protojson.Marshal: %v", err)
		}
		_, err = writer.Write(append(assetJSON, '\n'))
		if err != nil {
			return 0, fmt.Errorf("writer.Write: %v", err)
		}
		assetCount++
	}
	err = writer.Flush()
	if err != nil {
		return 0, fmt.Errorf("writer.Flush: %v", err)
	}
	return assetCount, nil
}
