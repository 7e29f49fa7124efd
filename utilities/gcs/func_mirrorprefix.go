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
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/BrunoReboul/bsp/utilities/ffo"
)

// MirrorPrefix make a local folder mirror a bucket prefix exactly
// Remote files are downloaded wholesale, stale local files are deleted
func MirrorPrefix(ctx context.Context, bucket *storage.BucketHandle, prefix string, localFolderPath string) (copied int, deleted int, err error) {
	objectNames, err := ListObjectNames(ctx, bucket, prefix)
	if err != nil {
		return 0, 0, fmt.Errorf("ListObjectNames %v", err)
	}
	var remoteRelativePaths []string
	for _, objectName := range objectNames {
		relativePath := strings.TrimPrefix(objectName, prefix)
		if relativePath == "" {
			// the prefix itself may exist as a zero length folder placeholder object
			continue
		}
		remoteRelativePaths = append(remoteRelativePaths, relativePath)
	}
	localRelativePaths, err := ffo.ListFileRelativePaths(localFolderPath)
	if err != nil {
		return 0, 0, fmt.Errorf("ffo.ListFileRelativePaths %v", err)
	}
	toCopy, toDelete := PlanMirror(remoteRelativePaths, localRelativePaths)
	for _, relativePath := range toCopy {
		localPath := filepath.Join(localFolderPath, filepath.FromSlash(relativePath))
		err = DownloadObject(ctx, bucket, prefix+relativePath, localPath)
		if err != nil {
			return copied, deleted, fmt.Errorf("DownloadObject %v", err)
		}
		copied++
	}
	for _, relativePath := range toDelete {
		localPath := filepath.Join(localFolderPath, filepath.FromSlash(relativePath))
		err = os.Remove(localPath)
		if err != nil {
			return copied, deleted, fmt.Errorf("os.Remove(%s) %v", localPath, err)
		}
		log.Printf("Deleted stale local file %s", localPath)
		deleted++
	}
	return copied, deleted, nil
}
