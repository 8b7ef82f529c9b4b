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

	"github.com/blinklabs-io/txdraft/script"
	"github.com/blinklabs-io/txdraft/txbody"
)

type hashFlags struct {
	flagset  *flag.FlagSet
	language string
}

func newHashFlags() *hashFlags {
	f := &hashFlags{
		flagset: flag.NewFlagSet("hash", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.language,
		"language",
		"v3",
		"Plutus language version of the script (v1, v2 or v3)",
	)
	return f
}

func runHash(f *globalFlags, logger *slog.Logger) {
	hashFlags := newHashFlags()
	err := hashFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	version, err := txbody.ParseLanguageVersion(hashFlags.language)
	if err != nil {
		fail(logger, "invalid language version", err)
	}
	scriptHex, err := readInput(hashFlags.flagset.Args())
	if err != nil {
		fail(logger, "failed to read script", err)
	}
	scriptHash, err := script.Hash(scriptHex, uint(version))
	if err != nil {
		fail(logger, "failed to hash script", err)
	}
	fmt.Println(scriptHash.String())
}
