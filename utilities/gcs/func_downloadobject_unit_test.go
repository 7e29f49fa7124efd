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
	"strings"
	"testing"
)

func TestUnitVerifyCRC32C(t *testing.T) {
	// 0xE3069283 is the Castagnoli check value for "123456789"
	var testCases = []struct {
		name    string
		content string
		want    uint32
		wantErr bool
	}{
		{
			name:    "checksumMatches",
			content: "123456789",
			want:    0xE3069283,
			wantErr: false,
		},
		{
			name:    "checksumMismatch",
			content: "123456789 corrupted in flight",
			want:    0xE3069283,
			wantErr: true,
		},
		{
			name:    "emptyContentZeroChecksum",
			content: "",
			want:    0,
			wantErr: false,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := verifyCRC32C("configs/bsp_conf.yaml", []byte(tc.content), tc.want)
			if (err != nil) != tc.wantErr {
				t.Errorf("content '%s' got err %v wantErr %v", tc.content, err, tc.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "CRC32C mismatch") {
				t.Errorf("got err '%v' want a CRC32C mismatch error", err)
			}
		})
	}
}
