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

package bspcli

import (
	"fmt"
	"path/filepath"

	"github.com/BrunoReboul/bsp/utilities/ffo"
	"github.com/BrunoReboul/bsp/utilities/solution"
)

// loadSettings read the fetched configuration document, situate it on the environment, validate it
func (pipeline *Pipeline) loadSettings() (err error) {
	confFilePath := filepath.Join(pipeline.ConfFolderPath, solution.ConfFileName)
	err = ffo.ReadUnmarshalYAML(confFilePath, &pipeline.Settings)
	if err != nil {
		return fmt.Errorf("ffo.ReadUnmarshalYAML %s %v", confFilePath, err)
	}
	pipeline.Settings.Situate(pipeline.EnvironmentName)
	err = pipeline.Settings.Validate()
	if err != nil {
		return fmt.Errorf("settings.Validate %v", err)
	}
	// Dump the situated settings so the effective values of the cycle can be inspected
	situatedFilePath := filepath.Join(pipeline.ConfFolderPath, solution.SituatedConfFileName)
	err = ffo.MarshalYAMLWrite(situatedFilePath, pipeline.Settings)
	if err != nil {
		return fmt.Errorf("ffo.MarshalYAMLWrite %s %v", situatedFilePath, err)
	}
	return nil
}
