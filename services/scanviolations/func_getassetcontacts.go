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

// getAssetContacts retrieve the owner and the violation resolver contacts from the asset labels
func getAssetContacts(asset Asset, ownerLabelKeyName string, violationResolverLabelKeyName string) (owner string, violationResolver string) {
	labels := asset.Resource.Data.Labels
	if labels == nil {
		return "", ""
	}
	if ownerLabelKeyName != "" {
		owner = labels[ownerLabelKeyName]
	}
	if violationResolverLabelKeyName != "" {
		violationResolver = labels[violationResolverLabelKeyName]
	}
	return owner, violationResolver
}
