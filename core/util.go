package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// ParseOrderings parses a comma separated list of fields, e.g. "name,-percentage".
// A leading "-" sorts that field in descending order. Empty items are skipped.
func ParseOrderings(s string) []Ordering {
	var res []Ordering
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		descending := strings.HasPrefix(field, "-")
		if descending {
			field = strings.TrimSpace(field[1:]) // drop "-"
		}
		if field == "" {
			continue
		}
		res = append(res, Ordering{Field: field, Ascending: !descending})
	}
	return res
}
