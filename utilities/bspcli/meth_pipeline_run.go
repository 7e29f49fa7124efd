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
	"fmt"
	"log"
	"time"

	"github.com/BrunoReboul/bsp/services/dumpinventory"
	"github.com/BrunoReboul/bsp/services/fetchconfigs"
	"github.com/BrunoReboul/bsp/services/notifyviolations"
	"github.com/BrunoReboul/bsp/services/scanviolations"
	"github.com/BrunoReboul/bsp/utilities/erm"
	"github.com/BrunoReboul/bsp/utilities/gfs"
	"github.com/BrunoReboul/bsp/utilities/glo"
	"github.com/BrunoReboul/bsp/utilities/solution"
	"github.com/BrunoReboul/bsp/utilities/vdb"
)

// Run execute the requested commands, steps strictly in order: fetch, inventory, scan, notify
func (pipeline *Pipeline) Run() (err error) {
	start := time.Now()
	retryWait := time.Duration(solution.PipelineRetryWaitSec) * time.Second

	if pipeline.Commands.RunAll || pipeline.Commands.Fetch || pipeline.Commands.Initialize {
		var fetchGlobal fetchconfigs.Global
		fetchconfigs.Initialize(pipeline.Ctx, &fetchGlobal, pipeline.Services.StorageClient, pipeline.BucketName, pipeline.ConfFolderPath)
		err = erm.RunWithRetries("fetchconfigs", solution.PipelineRetriesNumber, retryWait, func() error {
			return fetchconfigs.Run(&fetchGlobal)
		})
		if err != nil {
			return err
		}
	}

	err = pipeline.loadSettings()
	if err != nil {
		return err
	}

	if pipeline.Commands.Initialize {
		return pipeline.deploy()
	}

	if pipeline.CycleID == "" {
		pipeline.CycleID = getNewCycleID()
	} else {
		_, found, err := gfs.GetCycle(pipeline.Ctx, pipeline.Services.FirestoreClient,
			pipeline.Settings.Hosting.FireStore.CollectionIDs.Cycles, pipeline.CycleID, solution.PipelineRetriesNumber)
		if err != nil {
			return fmt.Errorf("gfs.GetCycle %v", err)
		}
		if !found {
			return fmt.Errorf("unknown cycle %s", pipeline.CycleID)
		}
	}

	cycleRecorded := false
	var assetCount, violationCount int64
	failCycle := func(stepErr error) error {
		if !cycleRecorded {
			return stepErr
		}
		cycle := gfs.Cycle{
			CycleID:        pipeline.CycleID,
			Status:         solution.CycleStatusFailure,
			CompleteTime:   time.Now(),
			AssetCount:     assetCount,
			ViolationCount: violationCount,
			Comment:        stepErr.Error(),
		}
		updateErr := gfs.UpdateCycleStatus(pipeline.Ctx, pipeline.Services.FirestoreClient,
			pipeline.Settings.Hosting.FireStore.CollectionIDs.Cycles, cycle, solution.PipelineRetriesNumber)
		if updateErr != nil {
			log.Printf("ERROR - gfs.UpdateCycleStatus %v", updateErr)
		}
		return stepErr
	}

	if pipeline.Commands.RunAll || pipeline.Commands.Inventory {
		var inventoryGlobal dumpinventory.Global
		dumpinventory.Initialize(pipeline.Ctx, &inventoryGlobal,
			pipeline.Services.AssetClient,
			pipeline.Services.FirestoreClient,
			&pipeline.Settings,
			pipeline.ConfFolderPath,
			pipeline.EnvironmentName)
		err = erm.RunWithRetries("dumpinventory", solution.PipelineRetriesNumber, retryWait, func() error {
			var stepErr error
			assetCount, stepErr = dumpinventory.Run(&inventoryGlobal, pipeline.CycleID)
			return stepErr
		})
		// the cycle document is recorded first within the step, mark the cycle failed even on a partial step
		cycleRecorded = true
		if err != nil {
			return failCycle(err)
		}
	}

	if pipeline.Commands.RunAll || pipeline.Commands.Scan || pipeline.Commands.Notify {
		pipeline.Services.DB, err = vdb.Open(pipeline.Ctx,
			pipeline.Settings.Hosting.CloudSQL.Host,
			pipeline.Settings.Hosting.CloudSQL.User,
			pipeline.Settings.Hosting.CloudSQL.DatabaseName)
		if err != nil {
			return failCycle(fmt.Errorf("vdb.Open %v", err))
		}
		defer pipeline.Services.DB.Close()
	}

	if pipeline.Commands.RunAll || pipeline.Commands.Scan {
		var scanGlobal scanviolations.Global
		scanviolations.Initialize(pipeline.Ctx, &scanGlobal,
			pipeline.Services.DB,
			&pipeline.Settings,
			pipeline.ConfFolderPath)
		err = erm.RunWithRetries("scanviolations", solution.PipelineRetriesNumber, retryWait, func() error {
			var stepErr error
			violationCount, stepErr = scanviolations.Run(&scanGlobal, pipeline.CycleID)
			return stepErr
		})
		if err != nil {
			return failCycle(err)
		}
	}

	if pipeline.Commands.RunAll || pipeline.Commands.Notify {
		var notifyGlobal notifyviolations.Global
		notifyviolations.Initialize(pipeline.Ctx, &notifyGlobal,
			pipeline.Services.DB,
			pipeline.Services.PubSubClient,
			pipeline.Services.BigQueryClient,
			pipeline.Services.LoggingClient,
			&pipeline.Settings)
		err = erm.RunWithRetries("notifyviolations", solution.PipelineRetriesNumber, retryWait, func() error {
			_, stepErr := notifyviolations.Run(&notifyGlobal, pipeline.CycleID)
			return stepErr
		})
		if err != nil {
			return failCycle(err)
		}
	}

	if cycleRecorded {
		cycle := gfs.Cycle{
			CycleID:        pipeline.CycleID,
			Status:         solution.CycleStatusSuccess,
			CompleteTime:   time.Now(),
			AssetCount:     assetCount,
			ViolationCount: violationCount,
		}
		err = gfs.UpdateCycleStatus(pipeline.Ctx, pipeline.Services.FirestoreClient,
			pipeline.Settings.Hosting.FireStore.CollectionIDs.Cycles, cycle, solution.PipelineRetriesNumber)
		if err != nil {
			return fmt.Errorf("gfs.UpdateCycleStatus %v", err)
		}
	}

	log.Println(glo.Entry{
		StepName:       "bspcli",
		Severity:       "NOTICE",
		CycleID:        pipeline.CycleID,
		Environment:    pipeline.EnvironmentName,
		AssetCount:     assetCount,
		ViolationCount: violationCount,
		Message:        "cycle done",
		LatencySeconds: time.Since(start).Seconds(),
	})
	return nil
}
