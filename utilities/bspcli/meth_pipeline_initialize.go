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
	"log"

	asset "cloud.google.com/go/asset/apiv1"
	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/firestore"
	"cloud.google.com/go/logging"
	"cloud.google.com/go/pubsub"
	pubsubapi "cloud.google.com/go/pubsub/apiv1"
	scheduler "cloud.google.com/go/scheduler/apiv1"
	"cloud.google.com/go/storage"
	"github.com/BrunoReboul/bsp/utilities/aut"
)

// Initialize activate the service account credentials and cache the clients
func (pipeline *Pipeline) Initialize(ctx context.Context) {
	pipeline.Ctx = ctx

	var err error
	clientOption, serviceAccountEmail, keyProjectID, err := aut.GetClientOption(ctx,
		pipeline.KeyFilePath,
		[]string{"https://www.googleapis.com/auth/cloud-platform"})
	if err != nil {
		log.Fatalf("ERROR - aut.GetClientOption %v", err)
	}
	if pipeline.ServiceAccountEmail != "" && pipeline.ServiceAccountEmail != serviceAccountEmail {
		log.Fatalf("ERROR - ACCOUNT %s does not match the key file client_email %s",
			pipeline.ServiceAccountEmail, serviceAccountEmail)
	}
	pipeline.ServiceAccountEmail = serviceAccountEmail
	if pipeline.ProjectID == "" {
		pipeline.ProjectID = keyProjectID
	}
	pipeline.ClientOption = clientOption
	log.Printf("bsp activated credentials %s on project %s", pipeline.ServiceAccountEmail, pipeline.ProjectID)

	pipeline.Services.StorageClient, err = storage.NewClient(ctx, clientOption)
	if err != nil {
		log.Fatalf("ERROR - storage.NewClient %v", err)
	}
	pipeline.Services.AssetClient, err = asset.NewClient(ctx, clientOption)
	if err != nil {
		log.Fatalf("ERROR - asset.NewClient %v", err)
	}
	pipeline.Services.FirestoreClient, err = firestore.NewClient(ctx, pipeline.ProjectID, clientOption)
	if err != nil {
		log.Fatalf("ERROR - firestore.NewClient %v", err)
	}
	pipeline.Services.PubSubClient, err = pubsub.NewClient(ctx, pipeline.ProjectID, clientOption)
	if err != nil {
		log.Fatalf("ERROR - pubsub.NewClient %v", err)
	}
	pipeline.Services.PubSubPublisherClient, err = pubsubapi.NewPublisherClient(ctx, clientOption)
	if err != nil {
		log.Fatalf("ERROR - pubsubapi.NewPublisherClient %v", err)
	}
	pipeline.Services.BigQueryClient, err = bigquery.NewClient(ctx, pipeline.ProjectID, clientOption)
	if err != nil {
		log.Fatalf("ERROR - bigquery.NewClient %v", err)
	}
	pipeline.Services.LoggingClient, err = logging.NewClient(ctx, pipeline.ProjectID, clientOption)
	if err != nil {
		log.Fatalf("ERROR - logging.NewClient %v", err)
	}
	pipeline.Services.CloudSchedulerClient, err = scheduler.NewCloudSchedulerClient(ctx, clientOption)
	if err != nil {
		log.Fatalf("ERROR - scheduler.NewCloudSchedulerClient %v", err)
	}
}
