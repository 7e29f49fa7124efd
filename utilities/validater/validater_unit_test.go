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

package validater

import (
	"testing"
)

func TestUnitValidateStruct(t *testing.T) {
	type inventorySettings struct {
		Parent      string `valid:"isNotZeroValue"`
		ContentType string `valid:"isCAIContentType"`
	}
	type settings struct {
		BucketName string `valid:"isNotZeroValue"`
		AssetTypes []string
		Inventory  inventorySettings
	}

	var testCases = []struct {
		name       string
		settings   settings
		shouldPass bool
	}{
		{
			name: "ValidSettings",
			settings: settings{
				BucketName: "bsp-exports",
				Inventory: inventorySettings{
					Parent:      "organizations/123456789012",
					ContentType: "RESOURCE",
				},
			},
			shouldPass: true,
		},
		{
			name: "MissingBucketName",
			settings: settings{
				Inventory: inventorySettings{
					Parent:      "organizations/123456789012",
					ContentType: "IAM_POLICY",
				},
			},
			shouldPass: false,
		},
		{
			name: "UnsupportedContentType",
			settings: settings{
				BucketName: "bsp-exports",
				Inventory: inventorySettings{
					Parent:      "organizations/123456789012",
					ContentType: "ORG_POLICY",
				},
			},
			shouldPass: false,
		},
		{
			name: "NestedMissingParent",
			settings: settings{
				BucketName: "bsp-exports",
				Inventory: inventorySettings{
					ContentType: "RESOURCE",
				},
			},
			shouldPass: false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(&tc.settings, "settings")
			if tc.shouldPass && err != nil {
				t.Errorf("Should pass and got %v", err)
			}
			if !tc.shouldPass && err == nil {
				t.Errorf("Should NOT pass and got no error")
			}
		})
	}
}
