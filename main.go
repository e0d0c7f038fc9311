// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"dialcodes/commons"
	"dialcodes/commons/countrycodes"
	"dialcodes/smoketest"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// run writes the smoke report to stdout and all logging to stderr.
// It returns non-zero only when the table cannot be built.
func run(args []string, stdout, stderr io.Writer) int {
	commons.LoadEnvFile()
	commons.InitLogger()
	commons.Logger.SetOutput(stderr)

	if slices.Contains(args, "--debug") {
		commons.Logger.SetLevel(log.DEBUG)
		commons.Logger.Warn("Debug mode is enabled.")
	}

	table, err := commons.LoadCountryCodes()
	if err != nil {
		commons.Logger.Errorf("Failed to build country code table: %v", err)
		return 1
	}
	commons.Logger.Debugf("Country code table ready with %d entries", table.Len())

	if slices.Contains(args, "--verify-metadata") {
		verifyMetadata(table)
	}

	runID := uuid.New()
	commons.Logger.Debugf("Starting smoke run %s", runID)
	result, err := smoketest.Run(stdout, table)
	if err != nil {
		commons.Logger.Errorf("Smoke run %s could not write output: %v", runID, err)
	}
	if result.Mismatch != nil {
		commons.Logger.Warnf("Smoke run %s: mapping mismatch: %v", runID, result.Mismatch)
	} else {
		commons.Logger.Infof("Smoke run %s passed", runID)
	}

	if slices.Contains(args, "--list") {
		for _, e := range table.Entries() {
			fmt.Fprintf(stdout, "%s %s\n", e.Code, e.Prefix)
		}
	}
	return 0
}

func verifyMetadata(table *countrycodes.Table) {
	discrepancies := countrycodes.VerifyMetadata(table)
	for _, d := range discrepancies {
		commons.Logger.Warnf("Country code metadata mismatch: %s", d)
	}
	if len(discrepancies) == 0 {
		commons.Logger.Infof("All %d country codes agree with phone number metadata", table.Len())
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
