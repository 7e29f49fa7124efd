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
	"flag"
	"log"
	"os"

	"github.com/BrunoReboul/bsp/utilities/ffo"
	"github.com/BrunoReboul/bsp/utilities/solution"
)

// CheckArguments check cli arguments and environment variables
func (pipeline *Pipeline) CheckArguments() {
	flag.BoolVar(&pipeline.Commands.Initialize, "init", false, "initial setup to be launched first: bucket, topics, bigquery dataset and table, scheduler job")
	flag.BoolVar(&pipeline.Commands.RunAll, "run", false, "run a full cycle: fetch, inventory, scan, notify")
	flag.BoolVar(&pipeline.Commands.Fetch, "fetch", false, "fetch the configuration document and the rules folder")
	flag.BoolVar(&pipeline.Commands.Inventory, "inventory", false, "dump the asset inventory")
	flag.BoolVar(&pipeline.Commands.Scan, "scan", false, "scan the asset snapshot against the rule book, requires -cycle")
	flag.BoolVar(&pipeline.Commands.Notify, "notify", false, "notify the cycle findings, requires -cycle")
	flag.StringVar(&pipeline.ConfFolderPath, "conf", solution.DefaultConfFolderPath, "path to the local configs folder")
	flag.StringVar(&pipeline.KeyFilePath, "key", solution.DefaultKeyFilePath, "path to the service account key file")
	flag.StringVar(&pipeline.CycleID, "cycle", "", "cycle ID, a new one is forged when not provided")
	flag.StringVar(&pipeline.EnvironmentName, "environment", solution.DevelopmentEnvironmentName, "environment name")
	flag.Parse()

	pipeline.ServiceAccountEmail = os.Getenv("ACCOUNT")
	pipeline.ProjectID = os.Getenv("PROJECT")
	pipeline.BucketName = os.Getenv("BUCKET_NAME")

	if !pipeline.Commands.Initialize &&
		!pipeline.Commands.RunAll &&
		!pipeline.Commands.Fetch &&
		!pipeline.Commands.Inventory &&
		!pipeline.Commands.Scan &&
		!pipeline.Commands.Notify {
		log.Fatalln("Missing command, use one of -init -run -fetch -inventory -scan -notify")
	}
	if pipeline.BucketName == "" {
		log.Fatalln("Missing BUCKET_NAME environment variable")
	}
	if (pipeline.Commands.Scan || pipeline.Commands.Notify) &&
		!pipeline.Commands.RunAll &&
		!pipeline.Commands.Inventory &&
		pipeline.CycleID == "" {
		log.Fatalln("Missing -cycle argument, scan and notify need the cycle to work on")
	}
	ffo.CheckPath(pipeline.KeyFilePath)
}
