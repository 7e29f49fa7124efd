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

package notifyviolations

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/logging"
	"cloud.google.com/go/pubsub"
	"github.com/BrunoReboul/bsp/utilities/gbq"
	"github.com/BrunoReboul/bsp/utilities/glo"
	"github.com/BrunoReboul/bsp/utilities/gps"
	"github.com/BrunoReboul/bsp/utilities/solution"
	"github.com/BrunoReboul/bsp/utilities/vdb"
)

// Global structure for global variables to cache clients and settings between steps
type Global struct {
	ctx            context.Context
	db             *sql.DB
	pubSubClient   *pubsub.Client
	inserter       *bigquery.Inserter
	loggingClient  *logging.Client
	settings       *solution.Settings
	violationTopic string
}

// Initialize cache clients and settings
func Initialize(ctx context.Context,
	global *Global,
	db *sql.DB,
	pubSubClient *pubsub.Client,
	bigQueryClient *bigquery.Client,
	loggingClient *logging.Client,
	settings *solution.Settings) {
	global.ctx = ctx
	global.db = db
	global.pubSubClient = pubSubClient
	global.loggingClient = loggingClient
	global.settings = settings
	global.violationTopic = settings.Hosting.Pubsub.TopicNames.Violations
	if bigQueryClient != nil {
		global.inserter = bigQueryClient.
			Dataset(settings.Hosting.Bigquery.Dataset.Name).
			Table(settings.Hosting.Bigquery.Tables.Violations.Name).
			Inserter()
	}
}

// Run read the cycle findings and deliver them on the configured channels
func Run(global *Global, cycleID string) (notifiedCount int64, err error) {
	start := time.Now()
	violations, err := vdb.ListViolations(global.ctx, global.db, cycleID)
	if err != nil {
		return 0, fmt.Errorf("vdb.ListViolations %v", err)
	}

	if global.settings.Notifier.Channels.Pubsub.Enabled {
		err = notifyPubsub(global, violations)
		if err != nil {
			return 0, err
		}
	}
	if global.settings.Notifier.Channels.Bigquery.Enabled {
		err = notifyBigquery(global, violations)
		if err != nil {
			return 0, err
		}
	}
	if global.settings.Notifier.Channels.CloudLogging.Enabled {
		notifyCloudLogging(global, violations)
	}

	notifiedCount = int64(len(violations))
	log.Println(glo.Entry{
		StepName:       "notifyviolations",
		CycleID:        cycleID,
		ViolationCount: notifiedCount,
		Message:        fmt.Sprintf("notified %d violations", notifiedCount),
		LatencySeconds: time.Since(start).Seconds(),
	})
	return notifiedCount, nil
}

// notifyPubsub one message per violation, no topic configured means the channel is off
func notifyPubsub(global *Global, violations []vdb.Violation) (err error) {
	if global.violationTopic == "" {
		log.Println(glo.Entry{
			StepName: "notifyviolations",
			Severity: "WARNING",
			Message:  "no topic found, not running the pubsub channel",
		})
		return nil
	}
	for _, violation := range violations {
		violationJSON, err := json.Marshal(violation)
		if err != nil {
			return fmt.Errorf("json.Marshal violation %v", err)
		}
		_, err = gps.PublishJSON(global.ctx, global.pubSubClient, global.violationTopic, violationJSON)
		if err != nil {
			return fmt.Errorf("gps.PublishJSON %v", err)
		}
	}
	return nil
}

// notifyBigquery one row per violation in the violations table
func notifyBigquery(global *Global, violations []vdb.Violation) (err error) {
	if len(violations) == 0 {
		return nil
	}
	var savers []*bigquery.StructSaver
	schema := gbq.GetViolationsSchema()
	for _, violation := range violations {
		vBQ := toViolationBQ(violation)
		insertID := fmt.Sprintf("%s%d%s%s", violation.CycleID, violation.RuleIndex, violation.ResourceName, violation.Tag)
		savers = append(savers, &bigquery.StructSaver{Struct: vBQ, Schema: schema, InsertID: insertID})
	}
	if err := global.inserter.Put(global.ctx, savers); err != nil {
		return fmt.Errorf("inserter.Put %v", err)
	}
	return nil
}

// notifyCloudLogging one WARNING entry per violation
func notifyCloudLogging(global *Global, violations []vdb.Violation) {
	logger := global.loggingClient.Logger(global.settings.Notifier.Channels.CloudLogging.LogID)
	for _, violation := range violations {
		logger.Log(logging.Entry{
			Severity: logging.Warning,
			Payload:  violation,
		})
	}
	logger.Flush()
}
