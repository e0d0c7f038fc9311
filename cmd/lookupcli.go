// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"dialcodes/commons"
	"dialcodes/commons/countrycodes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

type Config struct {
	Verify  bool
	Reverse bool
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := Config{}
	fs := flag.NewFlagSet("lookupcli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.Verify, "verify", false, "Cross-check the table against phone number metadata")
	fs.BoolVar(&cfg.Reverse, "reverse", false, "Treat arguments as dialing prefixes and list their country codes")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	table, err := commons.LoadCountryCodes()
	if err != nil {
		fmt.Fprintf(stderr, "failed to build country code table: %v\n", err)
		return 2
	}
	status := 0

	if cfg.Verify {
		for _, d := range countrycodes.VerifyMetadata(table) {
			fmt.Fprintf(stderr, "mismatch: %s\n", d)
			status = 1
		}
	}

	for _, arg := range fs.Args() {
		if cfg.Reverse {
			codes := table.CodesForPrefix(arg)
			if len(codes) == 0 {
				fmt.Fprintf(stdout, "%s not found\n", arg)
				status = 1
				continue
			}
			fmt.Fprintf(stdout, "%s %s\n", arg, strings.Join(codes, ","))
			continue
		}

		prefix, ok := table.Lookup(arg)
		if !ok {
			fmt.Fprintf(stdout, "%s not found\n", arg)
			status = 1
			continue
		}
		fmt.Fprintf(stdout, "%s %s\n", arg, prefix)
	}
	return status
}

func main() {
	if len(os.Args) < 2 {
		commons.Logger.Warn("Usage: lookupcli [-verify] [-reverse] CODE...")
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// go run ./cmd/lookupcli.go HK US ZZ
