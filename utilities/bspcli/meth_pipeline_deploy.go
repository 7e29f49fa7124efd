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

	"github.com/BrunoReboul/bsp/utilities/aut"
	"github.com/BrunoReboul/bsp/utilities/gbq"
	"github.com/BrunoReboul/bsp/utilities/gcs"
	"github.com/BrunoReboul/bsp/utilities/gps"
	"github.com/BrunoReboul/bsp/utilities/sch"
)

// deploy provision the hosting resources: bucket, topics, bigquery dataset and table, scheduler job
func (pipeline *Pipeline) deploy() (err error) {
	bucketDeployment := gcs.BucketDeployment{
		Ctx:           pipeline.Ctx,
		StorageClient: pipeline.Services.StorageClient,
		ProjectID:     pipeline.ProjectID,
	}
	bucketDeployment.Settings.BucketName = pipeline.Settings.Hosting.GCS.Buckets.CAIExport.Name
	bucketDeployment.Settings.DeleteAgeInDays = pipeline.Settings.Hosting.GCS.Buckets.CAIExport.DeleteAgeInDays
	err = bucketDeployment.Deploy()
	if err != nil {
		return fmt.Errorf("bucketDeployment.Deploy %v", err)
	}

	var topicList []string
	err = gps.GetTopicList(pipeline.Ctx, pipeline.Services.PubSubPublisherClient, pipeline.ProjectID, &topicList)
	if err != nil {
		return fmt.Errorf("gps.GetTopicList %v", err)
	}
	for _, topicName := range []string{
		pipeline.Settings.Hosting.Pubsub.TopicNames.Violations,
		pipeline.Settings.Hosting.Pubsub.TopicNames.PipelineTrigger,
	} {
		err = gps.CreateTopic(pipeline.Ctx, pipeline.Services.PubSubPublisherClient, &topicList, topicName, pipeline.ProjectID)
		if err != nil {
			return fmt.Errorf("gps.CreateTopic %s %v", topicName, err)
		}
	}

	_, err = gbq.GetViolations(pipeline.Ctx,
		pipeline.Services.BigQueryClient,
		pipeline.Settings.Hosting.Bigquery.Dataset.Location,
		pipeline.Settings.Hosting.Bigquery.Dataset.Name)
	if err != nil {
		return fmt.Errorf("gbq.GetViolations %v", err)
	}

	jobDeployment := sch.NewJobDeployment()
	jobDeployment.Ctx = pipeline.Ctx
	jobDeployment.CloudSchedulerClient = pipeline.Services.CloudSchedulerClient
	jobDeployment.ProjectID = pipeline.ProjectID
	jobDeployment.Settings.JobName = pipeline.Settings.Hosting.SCH.JobName
	jobDeployment.Settings.TopicName = pipeline.Settings.Hosting.Pubsub.TopicNames.PipelineTrigger
	jobDeployment.Settings.Schedule = pipeline.Settings.Hosting.SCH.Schedule
	jobDeployment.Settings.Region = pipeline.Settings.Hosting.SCH.Region
	err = jobDeployment.Deploy()
	if err != nil {
		return fmt.Errorf("jobDeployment.Deploy %v", err)
	}

	err = aut.CleanServiceAccountKeys(pipeline.Ctx, pipeline.KeyFilePath, pipeline.ProjectID, pipeline.ClientOption)
	if err != nil {
		return fmt.Errorf("aut.CleanServiceAccountKeys %v", err)
	}

	log.Println("bsp init done")
	return nil
}
