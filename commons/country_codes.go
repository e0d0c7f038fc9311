// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"dialcodes/commons/countrycodes"
	"errors"
	"os"
)

// LoadCountryCodes builds the process table: the built-in entries, with the
// optional COUNTRY_CODES_OVERWRITE file applied on top.
func LoadCountryCodes() (*countrycodes.Table, error) {
	overwritePath := GetEnv("COUNTRY_CODES_OVERWRITE")
	if overwritePath == "" {
		return countrycodes.Default(), nil
	}

	if _, err := os.Stat(overwritePath); errors.Is(err, os.ErrNotExist) {
		Logger.Debugf("Country code overwrite %s not found, using built-in table", overwritePath)
		return countrycodes.Default(), nil
	}

	overwriteEntries, err := countrycodes.LoadJSON(overwritePath)
	if err != nil {
		Logger.Warnf("Failed to load country code overwrite data: %v", err)
		return countrycodes.Default(), nil
	}

	table, err := countrycodes.New(countrycodes.Merge(countrycodes.DefaultEntries(), overwriteEntries))
	if err != nil {
		return nil, err
	}
	Logger.Infof("Loaded %d country code overwrite entries, %d total", len(overwriteEntries), table.Len())
	return table, nil
}
