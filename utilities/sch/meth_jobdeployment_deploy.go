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

package sch

import (
	"fmt"
	"log"
	"strings"

	schedulerpb "google.golang.org/genproto/googleapis/cloud/scheduler/v1"
)

// Deploy get the cloud scheduler job, create it when missing
func (jobDeployment *JobDeployment) Deploy() (err error) {
	log.Printf("sch cloud scheduler job %s", jobDeployment.Settings.JobName)
	name := fmt.Sprintf("projects/%s/locations/%s/jobs/%s",
		jobDeployment.ProjectID,
		jobDeployment.Settings.Region,
		jobDeployment.Settings.JobName)
	var getJobRequest schedulerpb.GetJobRequest
	getJobRequest.Name = name
	retreivedJob, err := jobDeployment.CloudSchedulerClient.GetJob(jobDeployment.Ctx, &getJobRequest)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "notfound") {
			var pubsubTarget schedulerpb.PubsubTarget
			pubsubTarget.TopicName = fmt.Sprintf("projects/%s/topics/%s",
				jobDeployment.ProjectID,
				jobDeployment.Settings.TopicName)
			pubsubTarget.Data = []byte(fmt.Sprintf("cron schedule %s", jobDeployment.Settings.Schedule))

			var jobPubsubTarget schedulerpb.Job_PubsubTarget
			jobPubsubTarget.PubsubTarget = &pubsubTarget

			var job schedulerpb.Job
			job.Name = name
			job.Description = "Batch Scan Pipeline"
			job.Target = &jobPubsubTarget
			job.Schedule = jobDeployment.Settings.Schedule

			var createJobRequest schedulerpb.CreateJobRequest
			createJobRequest.Parent = fmt.Sprintf("projects/%s/locations/%s",
				jobDeployment.ProjectID,
				jobDeployment.Settings.Region)
			createJobRequest.Job = &job

			retreivedJob, err := jobDeployment.CloudSchedulerClient.CreateJob(jobDeployment.Ctx, &createJobRequest)
			if err != nil {
				return fmt.Errorf("CloudSchedulerClient.CreateJob %v", err)
			}
			log.Printf("sch cloud scheduler job created %s", retreivedJob.Name)
			return nil
		}
		return fmt.Errorf("CloudSchedulerClient.GetJob %v", err)
	}
	log.Printf("sch cloud scheduler job found %s", retreivedJob.Name)
	return nil
}
