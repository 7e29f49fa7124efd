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

package fetchconfigs

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
	"github.com/BrunoReboul/bsp/utilities/gcs"
	"github.com/BrunoReboul/bsp/utilities/glo"
	"github.com/BrunoReboul/bsp/utilities/solution"
)

// Global structure for global variables to cache clients and settings between steps
type Global struct {
	ctx             context.Context
	storageClient   *storage.Client
	bucketName      string
	confFolderPath  string
	rulesFolderPath string
}

// Initialize cache clients and settings
func Initialize(ctx context.Context, global *Global, storageClient *storage.Client, bucketName string, confFolderPath string) {
	global.ctx = ctx
	global.storageClient = storageClient
	global.bucketName = bucketName
	global.confFolderPath = confFolderPath
	global.rulesFolderPath = filepath.Join(confFolderPath, solution.DefaultRulesFolderPath)
}

// Run download the configuration document, then mirror the rules folder
func Run(global *Global) (err error) {
	start := time.Now()
	bucket := global.storageClient.Bucket(global.bucketName)

	confFilePath := filepath.Join(global.confFolderPath, solution.ConfFileName)
	err = gcs.DownloadObject(global.ctx, bucket, solution.ConfObjectName, confFilePath)
	if err != nil {
		return fmt.Errorf("gcs.DownloadObject %s %v", solution.ConfObjectName, err)
	}
	log.Println(glo.Entry{
		StepName: "fetchconfigs",
		Message:  fmt.Sprintf("configuration document downloaded %s", confFilePath),
	})

	copied, deleted, err := gcs.MirrorPrefix(global.ctx, bucket, solution.RulesPrefix, global.rulesFolderPath)
	if err != nil {
		return fmt.Errorf("gcs.MirrorPrefix %s %v", solution.RulesPrefix, err)
	}
	log.Println(glo.Entry{
		StepName:       "fetchconfigs",
		Message:        fmt.Sprintf("rules folder mirrored %s copied %d deleted %d", global.rulesFolderPath, copied, deleted),
		LatencySeconds: time.Since(start).Seconds(),
	})
	return nil
}
