// SPDX-License-Identifier: GPL-3.0-only

package countrycodes

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
)

var (
	codePattern   = regexp.MustCompile(`^[A-Z]{2}$`)
	prefixPattern = regexp.MustCompile(`^\+[0-9]{1,3}$`)
)

func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

func ValidPrefix(prefix string) bool {
	return prefixPattern.MatchString(prefix)
}

func LoadJSON(filePath string) ([]Entry, error) {
	var raw RawData

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return raw.CountryCodes, nil
}

// Merge returns base with every entry of overwrite applied on top, sorted by code.
func Merge(base, overwrite []Entry) []Entry {
	entryMap := make(map[string]Entry, len(base)+len(overwrite))
	for _, e := range base {
		entryMap[e.Code] = e
	}
	for _, e := range overwrite {
		entryMap[e.Code] = e
	}

	merged := make([]Entry, 0, len(entryMap))
	for _, e := range entryMap {
		merged = append(merged, e)
	}
	sortEntries(merged)
	return merged
}

func New(entries []Entry) (*Table, error) {
	t := &Table{
		byCode:   make(map[string]string, len(entries)),
		byPrefix: make(map[string][]string),
	}

	for _, e := range entries {
		if !ValidCode(e.Code) {
			return nil, fmt.Errorf("%q: %w", e.Code, ErrInvalidCode)
		}
		if !ValidPrefix(e.Prefix) {
			return nil, fmt.Errorf("%s %q: %w", e.Code, e.Prefix, ErrInvalidPrefix)
		}
		if _, exists := t.byCode[e.Code]; exists {
			return nil, fmt.Errorf("%s: %w", e.Code, ErrDuplicateCode)
		}
		t.byCode[e.Code] = e.Prefix
		t.byPrefix[e.Prefix] = append(t.byPrefix[e.Prefix], e.Code)
	}

	for _, codes := range t.byPrefix {
		slices.Sort(codes)
	}
	return t, nil
}

// Lookup matches code exactly; no case folding is applied.
func (t *Table) Lookup(code string) (string, bool) {
	if t == nil {
		return "", false
	}
	prefix, ok := t.byCode[code]
	return prefix, ok
}

func (t *Table) CodesForPrefix(prefix string) []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.byPrefix[prefix])
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byCode)
}

// Entries returns a copy of the table sorted by code.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, 0, len(t.byCode))
	for code, prefix := range t.byCode {
		entries = append(entries, Entry{Code: code, Prefix: prefix})
	}
	sortEntries(entries)
	return entries
}

func sortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Code, b.Code)
	})
}
