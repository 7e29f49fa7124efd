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

// Asset one line of the asset snapshot file
type Asset struct {
	Name      string        `json:"name"`
	AssetType string        `json:"assetType"`
	Resource  AssetResource `json:"resource"`
}

// AssetResource resource metadata as exported by CAI with the RESOURCE content type
type AssetResource struct {
	Data AssetResourceData `json:"data"`
}

// AssetResourceData the fields of a compute instance used by the network tag rules
type AssetResourceData struct {
	Name              string             `json:"name"`
	NetworkInterfaces []NetworkInterface `json:"networkInterfaces"`
	Tags              Tags               `json:"tags"`
	Labels            map[string]string  `json:"labels"`
}

// NetworkInterface one compute instance network interface
type NetworkInterface struct {
	Network string `json:"network"`
}

// Tags the network tags of a compute instance
type Tags struct {
	Items []string `json:"items"`
}
