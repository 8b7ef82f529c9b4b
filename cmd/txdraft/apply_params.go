// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/txdraft"
)

type applyParamsFlags struct {
	flagset    *flag.FlagSet
	params     stringListFlag
	paramsFile string
}

func newApplyParamsFlags() *applyParamsFlags {
	f := &applyParamsFlags{
		flagset: flag.NewFlagSet("apply-params", flag.ExitOnError),
	}
	f.flagset.Var(
		&f.params,
		"param",
		"Plutus data parameter in detailed JSON schema (may be given multiple times, applied in order)",
	)
	f.flagset.StringVar(
		&f.paramsFile,
		"params-file",
		"",
		"file containing a JSON array of parameters, applied before any -param values",
	)
	return f
}

func runApplyParams(f *globalFlags, logger *slog.Logger) {
	applyFlags := newApplyParamsFlags()
	err := applyFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	var params []string
	if applyFlags.paramsFile != "" {
		fileParams, err := readParamsFile(applyFlags.paramsFile)
		if err != nil {
			fail(logger, "failed to read params file", err)
		}
		params = append(params, fileParams...)
	}
	params = append(params, applyFlags.params...)
	scriptHex, err := readInput(applyFlags.flagset.Args())
	if err != nil {
		fail(logger, "failed to read script", err)
	}
	logger.Debug("applying params", "count", len(params))
	applied, err := txdraft.ApplyParams(params, scriptHex)
	if err != nil {
		fail(logger, "failed to apply params", err)
	}
	fmt.Println(applied)
}

// readParamsFile reads a JSON array and returns each element as its own JSON document
func readParamsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tmpParams []json.RawMessage
	if err := json.Unmarshal(data, &tmpParams); err != nil {
		return nil, fmt.Errorf("expected a JSON array of parameters: %w", err)
	}
	ret := make([]string, len(tmpParams))
	for i, param := range tmpParams {
		ret[i] = string(param)
	}
	return ret, nil
}
