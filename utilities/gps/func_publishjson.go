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

package gps

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
)

// PublishJSON publish a json document to a topic and wait for the server ack
func PublishJSON(ctx context.Context, pubSubClient *pubsub.Client, topicName string, docJSON []byte) (msgID string, err error) {
	pubSubMessage := &pubsub.Message{
		Data: docJSON,
	}
	msgID, err = pubSubClient.Topic(topicName).Publish(ctx, pubSubMessage).Get(ctx)
	if err != nil {
		return "", fmt.Errorf("topic(%s).Publish.Get: %v", topicName, err)
	}
	return msgID, nil
}
