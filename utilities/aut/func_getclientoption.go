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

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// GetClientOption activate the service account found in the key file and
// return the client option to be used by every GCP client of the pipeline,
// with the service account email and the project ID found in the key
func GetClientOption(ctx context.Context, keyJSONFilePath string, scopes []string) (clientOption option.ClientOption, serviceAccountEmail string, projectID string, err error) {
	keyJSONdata, err := ioutil.ReadFile(keyJSONFilePath)
	if err != nil {
		return clientOption, "", "", fmt.Errorf("ioutil.ReadFile(keyJSONFilePath) %v", err)
	}
	var key key
	err = json.Unmarshal(keyJSONdata, &key)
	if err != nil {
		return clientOption, "", "", fmt.Errorf("json.Unmarshal(keyJSONdata, &key) %v", err)
	}
	jwtConfig, err := google.JWTConfigFromJSON(keyJSONdata, scopes...)
	if err != nil {
		return clientOption, "", "", fmt.Errorf("google.JWTConfigFromJSON %v", err)
	}
	httpClient := jwtConfig.Client(ctx)
	clientOption = option.WithHTTPClient(httpClient)
	return clientOption, key.ClientEmail, key.ProjectID, nil
}
