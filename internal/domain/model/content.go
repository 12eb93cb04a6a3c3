package model

// HeroStat is a headline figure on the homepage.
type HeroStat struct {
	Label string `json:"label" yaml:"label" validate:"required"`
	Value string `json:"value" yaml:"value" validate:"required"`
}

// Feature is a homepage feature card linking to a section of the site.
type Feature struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description" yaml:"description"`
	Link        string `json:"link" yaml:"link" validate:"required"`
}

// Home is the homepage content.
type Home struct {
	Stats    []HeroStat `json:"stats" yaml:"stats" validate:"dive"`
	Features []Feature  `json:"features" yaml:"features" validate:"dive"`
}

// DonationPoint is one month of the donation trend chart.
type DonationPoint struct {
	Month  string `json:"month" yaml:"month" validate:"required"`
	Amount int64  `json:"amount" yaml:"amount" validate:"gte=0"`
	Donors int    `json:"donors" yaml:"donors" validate:"gte=0"`
}

// ParticipationPoint is one event kind of the participation chart.
type ParticipationPoint struct {
	Name         string `json:"name" yaml:"name" validate:"required"`
	Participants int    `json:"participants" yaml:"participants" validate:"gte=0"`
	Events       int    `json:"events" yaml:"events" validate:"gte=0"`
}

// MentorshipPoint is one month of the mentorship chart.
type MentorshipPoint struct {
	Month    string `json:"month" yaml:"month" validate:"required"`
	Sessions int    `json:"sessions" yaml:"sessions" validate:"gte=0"`
	Matches  int    `json:"matches" yaml:"matches" validate:"gte=0"`
}

// DomainShare is one slice of the alumni distribution by industry.
type DomainShare struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Value int    `json:"value" yaml:"value" validate:"gte=0"`
	Color string `json:"color,omitempty" yaml:"color"`
}

// KeyMetric is a headline figure on the analytics dashboard.
type KeyMetric struct {
	Title  string `json:"title" yaml:"title" validate:"required"`
	Value  string `json:"value" yaml:"value" validate:"required"`
	Change string `json:"change" yaml:"change"`
}

// Analytics holds the raw series behind the analytics dashboard.
type Analytics struct {
	KeyMetrics    []KeyMetric          `json:"keyMetrics" yaml:"keyMetrics" validate:"dive"`
	Donations     []DonationPoint      `json:"donations" yaml:"donations" validate:"dive"`
	Participation []ParticipationPoint `json:"participation" yaml:"participation" validate:"dive"`
	Mentorship    []MentorshipPoint    `json:"mentorship" yaml:"mentorship" validate:"dive"`
	Domains       []DomainShare        `json:"domains" yaml:"domains" validate:"dive"`
}
