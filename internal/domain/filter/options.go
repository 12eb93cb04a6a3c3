package filter

import "sort"

// Options returns the distinct values of field across records, prefixed with All.
// Values keep first-occurrence order unless sorted is set, in which case they are
// sorted ascending and All stays first.
func Options[T any](records []T, field func(T) string, sorted bool) []string {
	seen := make(map[string]struct{}, len(records))
	values := make([]string, 0, len(records))
	for _, r := range records {
		v := field(r)
		if v == "" || v == All {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	if sorted {
		sort.Strings(values)
	}
	return append([]string{All}, values...)
}
