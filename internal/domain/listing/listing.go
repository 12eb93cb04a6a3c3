// Package listing binds the filter engine to the site's listing pages.
//
// Each page (alumni, jobs, events, campaigns) declares a filter.Schema over its
// record type, the option sets it offers, and the page shape returned to clients.
package listing

import "sort"

// Listing names, used as option cache keys, metric labels and URL segments.
const (
	Alumni    = "alumni"
	Jobs      = "jobs"
	Events    = "events"
	Campaigns = "campaigns"
)

// Names returns every listing name in display order.
func Names() []string {
	return []string{Alumni, Jobs, Events, Campaigns}
}

// OptionSource supplies option sets, possibly from a cache.
// compute derives the set from the current records.
type OptionSource interface {
	Options(listing, field string, compute func() []string) []string
}

// Direct computes option sets on every call.
type Direct struct{}

// Options implements OptionSource.
func (Direct) Options(_, _ string, compute func() []string) []string { return compute() }

// Descriptor lists the filter parameters a listing accepts.
type Descriptor struct {
	Name    string   `json:"name"`
	Fields  []string `json:"fields"`
	Toggles []string `json:"toggles"`
}

// Describe returns the descriptor of a listing, and false for unknown names.
func Describe(name string) (Descriptor, bool) {
	switch name {
	case Alumni:
		return describe(name, alumniSchema.Fields, alumniSchema.Toggles), true
	case Jobs:
		return describe(name, jobSchema.Fields, jobSchema.Toggles), true
	case Events:
		return describe(name, eventSchema.Fields, eventSchema.Toggles), true
	case Campaigns:
		return describe(name, campaignSchema.Fields, campaignSchema.Toggles), true
	}
	return Descriptor{}, false
}

// IsToggle reports whether param is a boolean toggle of the descriptor.
func (d Descriptor) IsToggle(param string) bool {
	for _, t := range d.Toggles {
		if t == param {
			return true
		}
	}
	return false
}

func describe[F, T any](name string, fields map[string]F, toggles map[string]T) Descriptor {
	d := Descriptor{Name: name, Fields: make([]string, 0, len(fields)), Toggles: make([]string, 0, len(toggles))}
	for f := range fields {
		d.Fields = append(d.Fields, f)
	}
	for t := range toggles {
		d.Toggles = append(d.Toggles, t)
	}
	sort.Strings(d.Fields)
	sort.Strings(d.Toggles)
	return d
}
