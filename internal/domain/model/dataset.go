package model

// Dataset is an immutable snapshot of everything the site displays.
// Providers build a fresh Dataset per load and never mutate a published one.
type Dataset struct {
	// Version fingerprints the content; equal content yields equal versions.
	Version string `json:"version" yaml:"-"`

	Home      Home            `json:"home" yaml:"home"`
	Alumni    []AlumniProfile `json:"alumni" yaml:"alumni" validate:"dive"`
	Jobs      []JobPosting    `json:"jobs" yaml:"jobs" validate:"dive"`
	Events    []Event         `json:"events" yaml:"events" validate:"dive"`
	Campaigns []Campaign      `json:"campaigns" yaml:"campaigns" validate:"dive"`
	Impact    []ImpactStat    `json:"impact" yaml:"impact" validate:"dive"`
	Analytics Analytics       `json:"analytics" yaml:"analytics"`
}

// Counts returns the number of records per listing.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		"alumni":    len(d.Alumni),
		"jobs":      len(d.Jobs),
		"events":    len(d.Events),
		"campaigns": len(d.Campaigns),
	}
}

// Normalize replaces nil lists with empty ones so every source encodes the
// same content identically and list fields never render as null.
func (d *Dataset) Normalize() {
	d.Home.Stats = orEmpty(d.Home.Stats)
	d.Home.Features = orEmpty(d.Home.Features)
	d.Alumni = orEmpty(d.Alumni)
	for i := range d.Alumni {
		d.Alumni[i].Skills = orEmpty(d.Alumni[i].Skills)
	}
	d.Jobs = orEmpty(d.Jobs)
	for i := range d.Jobs {
		d.Jobs[i].Skills = orEmpty(d.Jobs[i].Skills)
	}
	d.Events = orEmpty(d.Events)
	d.Campaigns = orEmpty(d.Campaigns)
	d.Impact = orEmpty(d.Impact)
	d.Analytics.KeyMetrics = orEmpty(d.Analytics.KeyMetrics)
	d.Analytics.Donations = orEmpty(d.Analytics.Donations)
	d.Analytics.Participation = orEmpty(d.Analytics.Participation)
	d.Analytics.Mentorship = orEmpty(d.Analytics.Mentorship)
	d.Analytics.Domains = orEmpty(d.Analytics.Domains)
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
