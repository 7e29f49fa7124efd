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
	"context"

	scheduler "cloud.google.com/go/scheduler/apiv1"
)

// JobDeployment settings and artifacts to deploy a cloud scheduler job
type JobDeployment struct {
	Ctx                  context.Context
	CloudSchedulerClient *scheduler.CloudSchedulerClient
	ProjectID            string
	Settings             struct {
		JobName   string
		TopicName string
		Schedule  string
		Region    string
	}
}

// NewJobDeployment create deployment structure
func NewJobDeployment() *JobDeployment {
	return &JobDeployment{}
}
