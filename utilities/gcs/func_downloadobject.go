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
	"hash/crc32"
	"io/ioutil"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
)

// DownloadObject replace the file at localPath with the content of the given object
// The fetched bytes are checked against the object CRC32C before the local file is replaced
func DownloadObject(ctx context.Context, bucket *storage.BucketHandle, objectName string, localPath string) (err error) {
	reader, err := bucket.Object(objectName).NewReader(ctx)
	if err != nil {
		return fmt.Errorf("bucket.Object(%s).NewReader %v", objectName, err)
	}
	defer reader.Close()
	content, err := ioutil.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("ioutil.ReadAll %s %v", objectName, err)
	}
	err = verifyCRC32C(objectName, content, reader.Attrs.CRC32C)
	if err != nil {
		return err
	}
	err = os.MkdirAll(filepath.Dir(localPath), 0755)
	if err != nil {
		return fmt.Errorf("os.MkdirAll %v", err)
	}
	err = ioutil.WriteFile(localPath, content, 0644)
	if err != nil {
		return fmt.Errorf("ioutil.WriteFile %s %v", localPath, err)
	}
	return nil
}

// verifyCRC32C check the fetched bytes against the object checksum
func verifyCRC32C(objectName string, content []byte, want uint32) (err error) {
	crc32c := crc32.Checksum(content, crc32.MakeTable(crc32.Castagnoli))
	if crc32c != want {
		return fmt.Errorf("CRC32C mismatch on %s got %d want %d", objectName, crc32c, want)
	}
	return nil
}
