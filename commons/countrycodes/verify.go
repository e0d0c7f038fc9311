// SPDX-License-Identifier: GPL-3.0-only

package countrycodes

import (
	"fmt"
	"strconv"

	"github.com/nyaruka/phonenumbers"
)

// Discrepancy is an entry whose prefix disagrees with libphonenumber's region metadata.
// Metadata is empty when the region is unknown to libphonenumber.
type Discrepancy struct {
	Code     string
	Prefix   string
	Metadata string
}

func (d Discrepancy) String() string {
	if d.Metadata == "" {
		return fmt.Sprintf("%s %s: region unknown to phone metadata", d.Code, d.Prefix)
	}
	return fmt.Sprintf("%s %s: phone metadata says %s", d.Code, d.Prefix, d.Metadata)
}

func MetadataPrefix(code string) (string, bool) {
	cc := phonenumbers.GetCountryCodeForRegion(code)
	if cc == 0 {
		return "", false
	}
	return "+" + strconv.Itoa(cc), true
}

// VerifyMetadata checks every entry of t against libphonenumber, in code order.
func VerifyMetadata(t *Table) []Discrepancy {
	var out []Discrepancy
	for _, e := range t.Entries() {
		want, _ := MetadataPrefix(e.Code)
		if want != e.Prefix {
			out = append(out, Discrepancy{Code: e.Code, Prefix: e.Prefix, Metadata: want})
		}
	}
	return out
}
