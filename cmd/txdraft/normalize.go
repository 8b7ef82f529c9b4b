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
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/txdraft"
)

type normalizeFlags struct {
	flagset *flag.FlagSet
}

func newNormalizeFlags() *normalizeFlags {
	f := &normalizeFlags{
		flagset: flag.NewFlagSet("normalize", flag.ExitOnError),
	}
	return f
}

func runNormalize(f *globalFlags, logger *slog.Logger) {
	normalizeFlags := newNormalizeFlags()
	err := normalizeFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	scriptHex, err := readInput(normalizeFlags.flagset.Args())
	if err != nil {
		fail(logger, "failed to read script", err)
	}
	logger.Debug("normalizing script", "length", len(scriptHex)/2)
	normalized, err := txdraft.Normalize(scriptHex)
	if err != nil {
		fail(logger, "failed to normalize script", err)
	}
	logger.Debug(
		"normalized script",
		"changed", normalized != scriptHex,
		"length", len(normalized)/2,
	)
	fmt.Println(normalized)
}
