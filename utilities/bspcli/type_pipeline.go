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
	"context"
	"database/sql"

	asset "cloud.google.com/go/asset/apiv1"
	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/firestore"
	"cloud.google.com/go/logging"
	"cloud.google.com/go/pubsub"
	pubsubapi "cloud.google.com/go/pubsub/apiv1"
	scheduler "cloud.google.com/go/scheduler/apiv1"
	"cloud.google.com/go/storage"
	"github.com/BrunoReboul/bsp/utilities/solution"
	"google.golang.org/api/option"
)

// Pipeline settings, cached clients, and commands for one invocation
type Pipeline struct {
	Ctx      context.Context
	Commands struct {
		Initialize bool
		RunAll     bool
		Fetch      bool
		Inventory  bool
		Scan       bool
		Notify     bool
	}
	EnvironmentName     string
	KeyFilePath         string
	ConfFolderPath      string
	CycleID             string
	ServiceAccountEmail string
	ProjectID           string
	BucketName          string
	ClientOption        option.ClientOption
	Settings            solution.Settings
	Services            struct {
		StorageClient         *storage.Client
		AssetClient           *asset.Client
		FirestoreClient       *firestore.Client
		PubSubClient          *pubsub.Client
		PubSubPublisherClient *pubsubapi.PublisherClient
		BigQueryClient        *bigquery.Client
		LoggingClient         *logging.Client
		CloudSchedulerClient  *scheduler.CloudSchedulerClient
		DB                    *sql.DB
	}
}

// NewPipeline create pipeline structure
func NewPipeline() *Pipeline {
	return &Pipeline{}
}
