// SPDX-License-Identifier: GPL-3.0-only

package countrycodes

import "errors"

var (
	ErrInvalidCode   = errors.New("country code must be two uppercase letters")
	ErrInvalidPrefix = errors.New("dialing prefix must be '+' followed by 1-3 digits")
	ErrDuplicateCode = errors.New("duplicate country code")
)

type Entry struct {
	Code   string `json:"code"`
	Prefix string `json:"prefix"`
}

type RawData struct {
	CountryCodes []Entry `json:"country_codes"`
}

// Table is a read-only mapping from country code to dialing prefix.
// The zero value is an empty table.
type Table struct {
	byCode   map[string]string
	byPrefix map[string][]string
}
