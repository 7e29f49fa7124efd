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

package scanviolations

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/BrunoReboul/bsp/utilities/ffo"
	"github.com/BrunoReboul/bsp/utilities/glo"
	"github.com/BrunoReboul/bsp/utilities/solution"
	"github.com/BrunoReboul/bsp/utilities/vdb"
)

// Global structure for global variables to cache clients and settings between steps
type Global struct {
	ctx              context.Context
	db               *sql.DB
	settings         *solution.Settings
	confFolderPath   string
	rulesFolderPath  string
	snapshotFilePath string
}

// Initialize cache clients and settings
func Initialize(ctx context.Context,
	global *Global,
	db *sql.DB,
	settings *solution.Settings,
	confFolderPath string) {
	global.ctx = ctx
	global.db = db
	global.settings = settings
	global.confFolderPath = confFolderPath
	global.rulesFolderPath = filepath.Join(confFolderPath, solution.DefaultRulesFolderPath)
	global.snapshotFilePath = filepath.Join(confFolderPath, settings.Inventory.SnapshotFileName)
}

// Run build the rule book, check the asset snapshot, record the findings
func Run(global *Global, cycleID string) (violationCount int64, err error) {
	start := time.Now()
	evaluationTime := start.UTC()

	var ruleDefinitions RuleDefinitions
	rulesFilePath := filepath.Join(global.rulesFolderPath, global.settings.Scanner.NetworkTagRulesFileName)
	err = ffo.ReadUnmarshalYAML(rulesFilePath, &ruleDefinitions)
	if err != nil {
		return 0, fmt.Errorf("ffo.ReadUnmarshalYAML %s %v", rulesFilePath, err)
	}
	ruleBook, err := BuildRuleBook(ruleDefinitions)
	if err != nil {
		return 0, fmt.Errorf("buildRuleBook %v", err)
	}

	assets, err := readSnapshot(global.snapshotFilePath)
	if err != nil {
		return 0, err
	}

	var violations []vdb.Violation
	for _, asset := range assets {
		owner, violationResolver := getAssetContacts(asset,
			global.settings.Monitoring.LabelKeyNames.Owner,
			global.settings.Monitoring.LabelKeyNames.ViolationResolver)
		for i := range ruleBook.Rules {
			assetViolations := ruleBook.Rules[i].FindViolations(asset, cycleID, evaluationTime)
			for j := range assetViolations {
				assetViolations[j].Owner = owner
				assetViolations[j].ViolationResolver = violationResolver
			}
			violations = append(violations, assetViolations...)
		}
	}

	constraintViolations, err := evaluateConstraints(global, assets, cycleID, evaluationTime)
	if err != nil {
		return 0, fmt.Errorf("evaluateConstraints %v", err)
	}
	violations = append(violations, constraintViolations...)

	err = vdb.CreateViolationsTable(global.ctx, global.db)
	if err != nil {
		return 0, fmt.Errorf("vdb.CreateViolationsTable %v", err)
	}
	err = vdb.InsertViolations(global.ctx, global.db, violations)
	if err != nil {
		return 0, fmt.Errorf("vdb.InsertViolations %v", err)
	}
	violationCount = int64(len(violations))
	log.Println(glo.Entry{
		StepName:       "scanviolations",
		CycleID:        cycleID,
		AssetCount:     int64(len(assets)),
		ViolationCount: violationCount,
		Message:        fmt.Sprintf("scanned %d assets with %d rules", len(assets), len(ruleBook.Rules)),
		LatencySeconds: time.Since(start).Seconds(),
	})
	return violationCount, nil
}

// readSnapshot load the asset snapshot file, one JSON document per line
func readSnapshot(snapshotFilePath string) (assets []Asset, err error) {
	snapshotFile, err := os.Open(snapshotFilePath)
	if err != nil {
		return nil, fmt.Errorf("os.Open %s %v", snapshotFilePath, err)
	}
	defer snapshotFile.Close()
	scanner := bufio.NewScanner(snapshotFile)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var asset Asset
		err = json.Unmarshal(line, &asset)
		if err != nil {
			return nil, fmt.Errorf("json.Unmarshal snapshot line %v", err)
		}
		assets = append(assets, asset)
	}
	err = scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("scanner.Err %v", err)
	}
	return assets, nil
}
