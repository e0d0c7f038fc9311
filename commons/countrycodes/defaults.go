// SPDX-License-Identifier: GPL-3.0-only

package countrycodes

import "sync"

var defaultEntries = []Entry{
	// Asia-Pacific
	{"CN", "+86"}, {"HK", "+852"}, {"TW", "+886"}, {"MO", "+853"},
	{"SG", "+65"}, {"MY", "+60"}, {"TH", "+66"}, {"VN", "+84"},
	{"PH", "+63"}, {"ID", "+62"}, {"KR", "+82"}, {"JP", "+81"},
	{"IN", "+91"}, {"AU", "+61"}, {"NZ", "+64"},
	// Europe
	{"GB", "+44"}, {"DE", "+49"}, {"FR", "+33"}, {"IT", "+39"},
	{"ES", "+34"}, {"NL", "+31"}, {"BE", "+32"}, {"CH", "+41"},
	{"AT", "+43"}, {"SE", "+46"}, {"NO", "+47"}, {"DK", "+45"}, {"FI", "+358"},
	// Americas
	{"US", "+1"}, {"CA", "+1"}, {"MX", "+52"}, {"BR", "+55"},
	{"AR", "+54"}, {"CL", "+56"}, {"CO", "+57"}, {"PE", "+51"},
	// Middle East & Africa
	{"AE", "+971"}, {"SA", "+966"}, {"IL", "+972"}, {"ZA", "+27"},
	{"EG", "+20"}, {"KE", "+254"}, {"NG", "+234"},
	// Other
	{"RU", "+7"}, {"TR", "+90"},
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// DefaultEntries returns a copy of the built-in entries.
func DefaultEntries() []Entry {
	entries := make([]Entry, len(defaultEntries))
	copy(entries, defaultEntries)
	return entries
}

// Default returns the built-in table. It is built on first use and shared afterwards.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := New(defaultEntries)
		if err != nil {
			panic("countrycodes: invalid built-in table: " + err.Error())
		}
		defaultTable = t
	})
	return defaultTable
}
