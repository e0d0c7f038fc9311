// SPDX-License-Identifier: GPL-3.0-only

// Package smoketest prints a handful of dialing prefixes and checks the
// Hong Kong SAR entry against its expected value.
package smoketest

import (
	"fmt"
	"io"
)

const (
	ExpectedCode   = "HK"
	ExpectedPrefix = "+852"
)

// Printed in this order after the header line.
var sampleCodes = []string{"HK", "US", "CN"}

type Lookuper interface {
	Lookup(code string) (string, bool)
}

// MappingMismatch reports that a known code no longer maps to its expected prefix.
type MappingMismatch struct {
	Code     string
	Expected string
	Got      string
	Found    bool
}

func (m *MappingMismatch) Error() string {
	if !m.Found {
		return fmt.Sprintf("%s: expected %s, code not found", m.Code, m.Expected)
	}
	return fmt.Sprintf("%s: expected %s, got %s", m.Code, m.Expected, m.Got)
}

// Result holds the outcome of the HK check; Mismatch is nil when it passed.
type Result struct {
	Mismatch *MappingMismatch
}

// Check compares the stored prefix for code against expected.
func Check(t Lookuper, code, expected string) *MappingMismatch {
	got, ok := t.Lookup(code)
	if ok && got == expected {
		return nil
	}
	return &MappingMismatch{Code: code, Expected: expected, Got: got, Found: ok}
}

// Run writes the smoke report to w. A failed check is reported in the
// output and in Result; the error is only for failed writes.
func Run(w io.Writer, t Lookuper) (Result, error) {
	lw := &lineWriter{w: w}

	lw.printf("Testing Hong Kong SAR country code...")
	for _, code := range sampleCodes {
		prefix, ok := t.Lookup(code)
		if !ok {
			prefix = "not found"
		}
		lw.printf("%s code: %s", code, prefix)
	}

	mismatch := Check(t, ExpectedCode, ExpectedPrefix)
	if mismatch == nil {
		lw.printf("✅ Hong Kong SAR country code mapping is CORRECT (%s)", ExpectedPrefix)
	} else {
		lw.printf("❌ Hong Kong SAR country code mapping is INCORRECT")
	}
	lw.printf("Test completed. Use the test buttons in the form to verify functionality.")

	return Result{Mismatch: mismatch}, lw.err
}

type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) printf(format string, args ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format+"\n", args...)
}
