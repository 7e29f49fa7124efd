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

package gcs

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/storage"
)

// BucketDeployment settings and artifacts to deploy a bucket
type BucketDeployment struct {
	Ctx           context.Context
	StorageClient *storage.Client
	ProjectID     string
	Settings      struct {
		BucketName      string
		DeleteAgeInDays int64
	}
}

// Deploy get the bucket, create it when missing, align the delete lifecycle rule otherwise
func (bucketDeployment *BucketDeployment) Deploy() (err error) {
	log.Printf("gcs bucket %s", bucketDeployment.Settings.BucketName)

	var lifecycleRule storage.LifecycleRule
	lifecycleRule.Action.Type = "Delete"
	lifecycleRule.Condition.AgeInDays = bucketDeployment.Settings.DeleteAgeInDays

	bucket := bucketDeployment.StorageClient.Bucket(bucketDeployment.Settings.BucketName)
	retreivedAttrs, err := bucket.Attrs(bucketDeployment.Ctx)
	if err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "doesn't exist") {
			return fmt.Errorf("bucket.Attrs %v", err)
		}
		var bucketAttrs storage.BucketAttrs
		bucketAttrs.StorageClass = "STANDARD"
		bucketAttrs.Labels = map[string]string{"name": strings.ToLower(bucketDeployment.Settings.BucketName)}
		bucketAttrs.Lifecycle = storage.Lifecycle{Rules: []storage.LifecycleRule{lifecycleRule}}
		bucketAttrs.UniformBucketLevelAccess = storage.UniformBucketLevelAccess{Enabled: true}

		err = bucket.Create(bucketDeployment.Ctx, bucketDeployment.ProjectID, &bucketAttrs)
		if err != nil {
			return fmt.Errorf("bucket.Create %v", err)
		}
		log.Printf("gcs bucket created %s", bucketDeployment.Settings.BucketName)
		return nil
	}
	log.Printf("gcs bucket found %s", retreivedAttrs.Name)

	foundDeleteRule := false
	for _, rule := range retreivedAttrs.Lifecycle.Rules {
		if rule.Action.Type == "Delete" && rule.Condition.AgeInDays == bucketDeployment.Settings.DeleteAgeInDays {
			foundDeleteRule = true
		}
	}
	if !foundDeleteRule {
		var bucketAttrsToUpdate storage.BucketAttrsToUpdate
		bucketAttrsToUpdate.Lifecycle = &storage.Lifecycle{Rules: []storage.LifecycleRule{lifecycleRule}}
		_, err = bucket.Update(bucketDeployment.Ctx, bucketAttrsToUpdate)
		if err != nil {
			return fmt.Errorf("bucket.Update %v", err)
		}
		log.Printf("gcs bucket %s delete lifecycle rule aligned to %d days", bucketDeployment.Settings.BucketName, bucketDeployment.Settings.DeleteAgeInDays)
	}
	return nil
}
