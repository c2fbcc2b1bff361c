// internal/pagination/query.go
package pagination

import (
	"net/url"
	"strconv"
)

// FromQuery reads page params from a URL query. The nested form
// page[number]=2&page[size]=10 wins over the flat page=2&page_size=10.
// Absent keys are left nil so they fall back to defaults.
func FromQuery(values url.Values) *Params {
	p := &Params{}
	if v, ok := lookup(values, "page[number]", "page"); ok {
		p.Number = v
	}
	if v, ok := lookup(values, "page[size]", "page_size"); ok {
		p.Size = v
	}
	return p
}

func lookup(values url.Values, keys ...string) (string, bool) {
	for _, k := range keys {
		if vs, ok := values[k]; ok && len(vs) > 0 {
			return vs[0], true
		}
	}
	return "", false
}

// ParseTotal parses an optional non-negative item count.
func ParseTotal(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
