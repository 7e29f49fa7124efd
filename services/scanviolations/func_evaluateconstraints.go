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

package scanviolations

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BrunoReboul/bsp/utilities/vdb"
	"github.com/open-policy-agent/opa/rego"
)

// evaluateConstraints audit the asset snapshot with the REGO modules found in the rules rego folder
// no rego folder, or an empty one, means no constraint to assess
func evaluateConstraints(global *Global, assets []Asset, cycleID string, evaluationTime time.Time) (violations []vdb.Violation, err error) {
	regoFolderPath := filepath.Join(global.rulesFolderPath, "rego")
	files, err := ioutil.ReadDir(regoFolderPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("ioutil.ReadDir %v", err)
	}
	foundRegoModule := false
	for _, file := range files {
		if strings.HasSuffix(file.Name(), ".rego") {
			foundRegoModule = true
		}
	}
	if !foundRegoModule {
		return nil, nil
	}

	assetsJSONDocument, err := json.Marshal(map[string]interface{}{"assets": assets})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal assets %v", err)
	}
	writableFolderPath := filepath.Join(global.confFolderPath, "opa")
	err = os.MkdirAll(writableFolderPath, 0755)
	if err != nil {
		return nil, fmt.Errorf("os.MkdirAll %v", err)
	}
	assetsFilePath := filepath.Join(writableFolderPath, "data.json")
	err = ioutil.WriteFile(assetsFilePath, assetsJSONDocument, 0644)
	if err != nil {
		return nil, fmt.Errorf("ioutil.WriteFile %v", err)
	}

	regoInstance := rego.New(rego.Query("audit"),
		rego.Load([]string{regoFolderPath, writableFolderPath}, nil),
		rego.Package("validator.gcp.lib"))
	resultSet, err := regoInstance.Eval(global.ctx)
	if err != nil {
		return nil, fmt.Errorf("rego.Eval %v", err)
	}
	return inspectResultSet(resultSet, cycleID, evaluationTime), nil
}

// inspectResultSet explore rego query output and craft violation rows
func inspectResultSet(resultSet rego.ResultSet, cycleID string, evaluationTime time.Time) (violations []vdb.Violation) {
	if len(resultSet) == 0 {
		return nil
	}
	expressions := resultSet[0].Expressions
	if len(expressions) == 0 {
		return nil
	}
	var valuesInterface interface{} = expressions[0].Value
	values, ok := valuesInterface.([]interface{})
	if !ok {
		return nil
	}
	for i := 0; i < len(values); i++ {
		var valueInterface interface{} = values[i]
		value, ok := valueInterface.(map[string]interface{})
		if !ok {
			continue
		}
		violation := vdb.Violation{
			CycleID:        cycleID,
			RuleIndex:      int64(i),
			ViolationType:  "CONSTRAINT_VIOLATION",
			ResourceType:   "constraint",
			EvaluationTime: evaluationTime,
		}
		var assetInterface interface{} = value["asset"]
		if assetName, ok := assetInterface.(string); ok {
			violation.ResourceName = assetName
		}
		var constraintInterface interface{} = value["constraint"]
		if constraintName, ok := constraintInterface.(string); ok {
			violation.RuleName = constraintName
		}
		var violationInterface interface{} = value["violation"]
		if ruleViolation, ok := violationInterface.(map[string]interface{}); ok {
			var msgInterface interface{} = ruleViolation["msg"]
			if msg, ok := msgInterface.(string); ok {
				violation.RuleMatch = msg
			}
			var detailsInterface interface{} = ruleViolation["details"]
			if details, ok := detailsInterface.(map[string]interface{}); ok {
				detailsJSON, _ := json.Marshal(details)
				violation.ViolationData = string(detailsJSON)
			}
			var severityInterface interface{} = ruleViolation["severity"]
			if severity, ok := severityInterface.(string); ok {
				violation.RuleSeverity = severity
			}
		}
		violations = append(violations, violation)
	}
	return violations
}
