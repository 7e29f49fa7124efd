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

package aut

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"

	"google.golang.org/api/iam/v1"
	"google.golang.org/api/option"
)

// CleanServiceAccountKeys delete the stale user managed keys of the pipeline service account
// The key found in the key file is kept, SYSTEM_MANAGED keys are ignored
func CleanServiceAccountKeys(ctx context.Context, keyJSONFilePath string, projectID string, clientOption option.ClientOption) (err error) {
	keyJSONdata, err := ioutil.ReadFile(keyJSONFilePath)
	if err != nil {
		return fmt.Errorf("ioutil.ReadFile(keyJSONFilePath) %v", err)
	}
	var key key
	err = json.Unmarshal(keyJSONdata, &key)
	if err != nil {
		return fmt.Errorf("json.Unmarshal(keyJSONdata, &key) %v", err)
	}
	iamService, err := iam.NewService(ctx, clientOption)
	if err != nil {
		return fmt.Errorf("iam.NewService %v", err)
	}
	resource := "projects/-/serviceAccounts/" + key.ClientEmail
	response, err := iamService.Projects.ServiceAccounts.Keys.List(resource).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("iamService.Projects.ServiceAccounts.Keys.List %v", err)
	}
	currentKeyName := "projects/" + projectID + "/serviceAccounts/" + key.ClientEmail + "/keys/" + key.PrivateKeyID
	for _, serviceAccountKey := range response.Keys {
		if serviceAccountKey.Name == currentKeyName {
			log.Printf("Keep key ValidAfterTime %s named %s", serviceAccountKey.ValidAfterTime, serviceAccountKey.Name)
			continue
		}
		if serviceAccountKey.KeyType == "SYSTEM_MANAGED" {
			log.Printf("Ignore SYSTEM_MANAGED key named %s", serviceAccountKey.Name)
			continue
		}
		log.Printf("Delete KeyType %s ValidAfterTime %s key name %s", serviceAccountKey.KeyType, serviceAccountKey.ValidAfterTime, serviceAccountKey.Name)
		_, err = iamService.Projects.ServiceAccounts.Keys.Delete(serviceAccountKey.Name).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("iamService.Projects.ServiceAccounts.Keys.Delete %v", err)
		}
	}
	return nil
}
