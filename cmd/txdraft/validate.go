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
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/txdraft"
	"github.com/blinklabs-io/txdraft/txbody"
)

type validateFlags struct {
	flagset *flag.FlagSet
}

func newValidateFlags() *validateFlags {
	f := &validateFlags{
		flagset: flag.NewFlagSet("validate", flag.ExitOnError),
	}
	return f
}

func runValidate(f *globalFlags, logger *slog.Logger) {
	validateFlags := newValidateFlags()
	err := validateFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	var bodyJson string
	args := validateFlags.flagset.Args()
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fail(logger, "failed to read transaction body", err)
		}
		bodyJson = string(data)
	} else {
		bodyJson, err = readInput(args)
		if err != nil {
			fail(logger, "failed to read transaction body", err)
		}
	}
	err = txdraft.ValidateBody(bodyJson)
	if err == nil {
		fmt.Println("OK")
		return
	}
	// Report each problem on its own line
	var problems []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		problems = joined.Unwrap()
	} else {
		problems = []error{err}
	}
	for _, problem := range problems {
		var fieldErr *txbody.FieldError
		if errors.As(problem, &fieldErr) {
			logger.Error("invalid field", "path", fieldErr.Path, "error", fieldErr.Err)
		} else {
			logger.Error("invalid transaction body", "error", problem)
		}
	}
	os.Exit(1)
}
