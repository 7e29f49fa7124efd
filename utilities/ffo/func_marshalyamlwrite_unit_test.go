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

package ffo

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
)

func TestUnitMarshalYAMLWrite(t *testing.T) {
	type situated struct {
		Environment string `yaml:"environment"`
		BucketName  string `yaml:"bucketName"`
	}
	written := situated{
		Environment: "dev",
		BucketName:  "bucket-1",
	}
	path := filepath.Join(t.TempDir(), "situated.yaml")
	err := MarshalYAMLWrite(path, written)
	if err != nil {
		t.Fatalf("MarshalYAMLWrite %v", err)
	}
	bytes, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatalf("ioutil.ReadFile %v", err)
	}
	if !strings.HasPrefix(string(bytes), YAMLDisclaimer) {
		t.Errorf("missing the yaml disclaimer on top of the written file")
	}
	var read situated
	err = ReadUnmarshalYAML(path, &read)
	if err != nil {
		t.Fatalf("ReadUnmarshalYAML %v", err)
	}
	if read != written {
		t.Errorf("got %+v want %+v", read, written)
	}
}
