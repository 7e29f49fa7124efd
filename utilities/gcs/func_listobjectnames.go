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

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// ListObjectNames retreive the names of the objects below a given prefix
func ListObjectNames(ctx context.Context, bucket *storage.BucketHandle, prefix string) (objectNames []string, err error) {
	objectsIterator := bucket.Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		objectAttrs, err := objectsIterator.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return objectNames, fmt.Errorf("objectsIterator.Next %v", err)
		}
		objectNames = append(objectNames, objectAttrs.Name)
	}
	return objectNames, nil
}
