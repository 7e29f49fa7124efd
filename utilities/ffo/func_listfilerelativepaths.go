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
	"os"
	"path/filepath"
	"strings"
)

// ListFileRelativePaths walks a folder and returns the slash separated relative paths of its files
// An absent folder yields an empty list, not an error: a mirror target may not exist yet
func ListFileRelativePaths(folderPath string) (relativePaths []string, err error) {
	if _, err := os.Stat(folderPath); os.IsNotExist(err) {
		return relativePaths, nil
	}
	err = filepath.Walk(folderPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		relativePath, err := filepath.Rel(folderPath, path)
		if err != nil {
			return err
		}
		relativePaths = append(relativePaths, strings.Replace(relativePath, string(os.PathSeparator), "/", -1))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return relativePaths, nil
}
