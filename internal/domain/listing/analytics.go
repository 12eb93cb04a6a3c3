package listing

import (
	"github.com/okian/alumnihub/internal/domain/model"
	"github.com/okian/alumnihub/internal/domain/progress"
	"github.com/okian/alumnihub/pkg/format"
)

// DomainSlice is one slice of the alumni distribution with its share of the total.
type DomainSlice struct {
	model.DomainShare
	Share float64 `json:"share"`
}

// Totals aggregates the analytics series.
type Totals struct {
	DonationAmount  int64  `json:"donationAmount"`
	DonationDisplay string `json:"donationDisplay"`
	Donors          int    `json:"donors"`
	DonorsDisplay   string `json:"donorsDisplay"`
	Participants    int    `json:"participants"`
	EventsHeld      int    `json:"eventsHeld"`
	Sessions        int    `json:"sessions"`
	Matches         int    `json:"matches"`
	Alumni          int    `json:"alumni"`
	AlumniDisplay   string `json:"alumniDisplay"`
}

// AnalyticsView is the dashboard payload: the raw series plus derived shares and totals.
type AnalyticsView struct {
	KeyMetrics    []model.KeyMetric          `json:"keyMetrics"`
	Donations     []model.DonationPoint      `json:"donations"`
	Participation []model.ParticipationPoint `json:"participation"`
	Mentorship    []model.MentorshipPoint    `json:"mentorship"`
	Domains       []DomainSlice              `json:"domains"`
	Totals        Totals                     `json:"totals"`
}

// BuildAnalytics derives the dashboard view from the raw series.
func BuildAnalytics(a model.Analytics) AnalyticsView {
	var t Totals
	for _, d := range a.Donations {
		t.DonationAmount += d.Amount
		t.Donors += d.Donors
	}
	for _, p := range a.Participation {
		t.Participants += p.Participants
		t.EventsHeld += p.Events
	}
	for _, m := range a.Mentorship {
		t.Sessions += m.Sessions
		t.Matches += m.Matches
	}
	for _, d := range a.Domains {
		t.Alumni += d.Value
	}
	t.DonationDisplay = format.USD(t.DonationAmount)
	t.DonorsDisplay = format.Count(int64(t.Donors))
	t.AlumniDisplay = format.Count(int64(t.Alumni))

	domains := make([]DomainSlice, 0, len(a.Domains))
	for _, d := range a.Domains {
		domains = append(domains, DomainSlice{DomainShare: d, Share: progress.Share(d.Value, t.Alumni)})
	}

	return AnalyticsView{
		KeyMetrics:    nonNil(a.KeyMetrics),
		Donations:     nonNil(a.Donations),
		Participation: nonNil(a.Participation),
		Mentorship:    nonNil(a.Mentorship),
		Domains:       domains,
		Totals:        t,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
