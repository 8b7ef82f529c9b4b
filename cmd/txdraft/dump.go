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

	"github.com/blinklabs-io/txdraft/cbor"
	"github.com/blinklabs-io/txdraft/primitive"
)

type dumpFlags struct {
	flagset *flag.FlagSet
}

func newDumpFlags() *dumpFlags {
	f := &dumpFlags{
		flagset: flag.NewFlagSet("dump", flag.ExitOnError),
	}
	return f
}

func runDump(f *globalFlags, logger *slog.Logger) {
	dumpFlags := newDumpFlags()
	err := dumpFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	cborHex, err := readInput(dumpFlags.flagset.Args())
	if err != nil {
		fail(logger, "failed to read CBOR", err)
	}
	cborData, err := primitive.DecodeHex(cborHex)
	if err != nil {
		fail(logger, "failed to decode hex", err)
	}
	dump, err := cbor.Dump(cborData)
	if err != nil {
		fail(logger, "failed to decode CBOR", err)
	}
	fmt.Print(dump)
}
