// Package filter implements the multi-field record filter shared by every listing.
//
// A Schema describes which parts of a record are searchable, which fields can be
// selected categorically, and which boolean toggles exist. Apply is a pure function
// of (records, schema, criteria): it never mutates its input and preserves order.
package filter

import (
	"fmt"
	"strings"
)

// All is the reserved categorical value meaning "do not constrain on this field".
const All = "all"

// Criteria is the set of filters currently active on a listing.
type Criteria struct {
	// Query is matched case-insensitively as a substring of searchable fields.
	Query string
	// Selected maps a categorical field name to its selected value.
	// An empty value or All leaves the field unconstrained.
	Selected map[string]string
	// Toggles maps a toggle name to its state. A false toggle is no constraint.
	Toggles map[string]bool
}

// Select returns a copy of c with field set to value.
func (c Criteria) Select(field, value string) Criteria {
	out := c.clone()
	out.Selected[field] = value
	return out
}

// Toggle returns a copy of c with the named toggle set.
func (c Criteria) Toggle(name string, on bool) Criteria {
	out := c.clone()
	out.Toggles[name] = on
	return out
}

// IsEmpty reports whether c constrains nothing.
func (c Criteria) IsEmpty() bool {
	if strings.TrimSpace(c.Query) != "" {
		return false
	}
	for _, v := range c.Selected {
		if !isAll(v) {
			return false
		}
	}
	for _, on := range c.Toggles {
		if on {
			return false
		}
	}
	return true
}

func (c Criteria) clone() Criteria {
	out := Criteria{
		Query:    c.Query,
		Selected: make(map[string]string, len(c.Selected)+1),
		Toggles:  make(map[string]bool, len(c.Toggles)+1),
	}
	for k, v := range c.Selected {
		out.Selected[k] = v
	}
	for k, v := range c.Toggles {
		out.Toggles[k] = v
	}
	return out
}

// Schema describes how records of type T are filtered.
type Schema[T any] struct {
	// Text returns the free-text searchable fields of a record (name, title, ...).
	Text []func(T) string
	// Lists returns searchable list fields of a record (skills, ...).
	Lists []func(T) []string
	// Fields maps categorical field names to their accessors.
	Fields map[string]func(T) string
	// Toggles maps toggle names to record predicates.
	Toggles map[string]func(T) bool
}

// Validate reports criteria that reference fields or toggles the schema does not declare.
func (s Schema[T]) Validate(c Criteria) error {
	for field := range c.Selected {
		if _, ok := s.Fields[field]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}
	for name := range c.Toggles {
		if _, ok := s.Toggles[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
	}
	return nil
}

// Match reports whether r satisfies every predicate in c.
// Selectors and toggles unknown to the schema are ignored; use Validate to reject them.
func (s Schema[T]) Match(r T, c Criteria) bool {
	return s.matchQuery(r, normalizeQuery(c.Query)) && s.matchFields(r, c) && s.matchToggles(r, c)
}

func (s Schema[T]) matchQuery(r T, q string) bool {
	if q == "" {
		return true
	}
	for _, get := range s.Text {
		if strings.Contains(strings.ToLower(get(r)), q) {
			return true
		}
	}
	for _, get := range s.Lists {
		for _, item := range get(r) {
			if strings.Contains(strings.ToLower(item), q) {
				return true
			}
		}
	}
	return false
}

func (s Schema[T]) matchFields(r T, c Criteria) bool {
	for field, want := range c.Selected {
		if isAll(want) {
			continue
		}
		get, ok := s.Fields[field]
		if !ok {
			continue
		}
		if get(r) != want {
			return false
		}
	}
	return true
}

func (s Schema[T]) matchToggles(r T, c Criteria) bool {
	for name, on := range c.Toggles {
		if !on {
			continue
		}
		pred, ok := s.Toggles[name]
		if !ok {
			continue
		}
		if !pred(r) {
			return false
		}
	}
	return true
}

// Apply returns the records matching c, in source order.
// The result is always a fresh, non-nil slice.
func Apply[T any](records []T, s Schema[T], c Criteria) []T {
	// Normalize once instead of per record.
	c.Query = normalizeQuery(c.Query)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if s.matchQuery(r, c.Query) && s.matchFields(r, c) && s.matchToggles(r, c) {
			out = append(out, r)
		}
	}
	return out
}

// Partition splits records by pred, preserving order in both halves.
func Partition[T any](records []T, pred func(T) bool) (in, out []T) {
	in = make([]T, 0, len(records))
	out = make([]T, 0, len(records))
	for _, r := range records {
		if pred(r) {
			in = append(in, r)
		} else {
			out = append(out, r)
		}
	}
	return in, out
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func isAll(v string) bool {
	return v == "" || v == All
}
