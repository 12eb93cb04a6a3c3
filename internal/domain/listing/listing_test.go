package listing_test

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/alumnihub/internal/adapters/repository"
	"github.com/okian/alumnihub/internal/domain/filter"
	"github.com/okian/alumnihub/internal/domain/listing"
	"github.com/okian/alumnihub/internal/domain/model"
)

type countingSource struct {
	calls map[string]int
}

func (s *countingSource) Options(l, field string, compute func() []string) []string {
	s.calls[l+"/"+field]++
	return compute()
}

func alumniIDs(items []model.AlumniProfile) []int {
	out := make([]int, 0, len(items))
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}

func TestAlumniPage(t *testing.T) {
	Convey("Given the bundled alumni", t, func() {
		ds := repository.BuiltinDataset()

		Convey("Searching python finds Emily Rodriguez and Michael Kim", func() {
			page, err := listing.BuildAlumniPage(ds.Alumni, filter.Criteria{Query: "python"}, listing.Direct{})
			So(err, ShouldBeNil)
			So(alumniIDs(page.Items), ShouldResemble, []int{3, 4})
			So(page.Items[0].Name, ShouldEqual, "Emily Rodriguez")
			So(page.Items[1].Name, ShouldEqual, "Michael Kim")
			So(page.Matched, ShouldEqual, 2)
			So(page.Total, ShouldEqual, 6)
		})

		Convey("Search covers name, company and position", func() {
			for q, want := range map[string][]int{
				"sarah":      {1},
				"GOOGLE":     {2},
				"consultant": {5},
			} {
				page, err := listing.BuildAlumniPage(ds.Alumni, filter.Criteria{Query: q}, listing.Direct{})
				So(err, ShouldBeNil)
				So(alumniIDs(page.Items), ShouldResemble, want)
			}
		})

		Convey("Industry and batch combine with AND", func() {
			c := filter.Criteria{}.Select(listing.FieldIndustry, "Consulting").Select(listing.FieldBatch, "2014")
			page, err := listing.BuildAlumniPage(ds.Alumni, c, listing.Direct{})
			So(err, ShouldBeNil)
			So(alumniIDs(page.Items), ShouldResemble, []int{6})
		})

		Convey("No match yields an empty, non-nil page", func() {
			page, err := listing.BuildAlumniPage(ds.Alumni, filter.Criteria{Query: "cobol"}, listing.Direct{})
			So(err, ShouldBeNil)
			So(page.Items, ShouldNotBeNil)
			So(page.Items, ShouldBeEmpty)
			So(page.Total, ShouldEqual, 6)
		})

		Convey("Options list industries in first-seen order and sort batches and companies", func() {
			page, err := listing.BuildAlumniPage(ds.Alumni, filter.Criteria{}, listing.Direct{})
			So(err, ShouldBeNil)
			So(page.Options.Industries, ShouldResemble, []string{"all", "Technology", "Finance", "Automotive", "Consulting"})
			So(page.Options.Batches, ShouldResemble, []string{"all", "2014", "2015", "2016", "2017", "2018", "2019"})
			So(page.Options.Companies, ShouldResemble, []string{
				"all", "Accenture", "Goldman Sachs", "Google", "McKinsey & Company", "Microsoft", "Tesla",
			})
		})

		Convey("Options are taken from the option source", func() {
			src := &countingSource{calls: map[string]int{}}
			_, err := listing.BuildAlumniPage(ds.Alumni, filter.Criteria{}, src)
			So(err, ShouldBeNil)
			So(src.calls, ShouldResemble, map[string]int{"alumni/industry": 1, "alumni/batch": 1, "alumni/company": 1})
		})

		Convey("Unknown fields are rejected", func() {
			_, err := listing.BuildAlumniPage(ds.Alumni, filter.Criteria{}.Select("salary", "high"), listing.Direct{})
			So(errors.Is(err, filter.ErrUnknownField), ShouldBeTrue)
		})
	})
}

func TestJobPage(t *testing.T) {
	Convey("Given the bundled jobs", t, func() {
		ds := repository.BuiltinDataset()

		Convey("Technology with remote only is the Microsoft posting", func() {
			c := filter.Criteria{}.Select(listing.FieldDomain, "Technology").Toggle(listing.ToggleRemote, true)
			page, err := listing.BuildJobPage(ds.Jobs, c, listing.Direct{})
			So(err, ShouldBeNil)
			So(page.Items, ShouldHaveLength, 1)
			So(page.Items[0].ID, ShouldEqual, 1)
			So(page.Items[0].Company, ShouldEqual, "Microsoft")
		})

		Convey("Remote only keeps remote postings in order", func() {
			page, err := listing.BuildJobPage(ds.Jobs, filter.Criteria{}.Toggle(listing.ToggleRemote, true), listing.Direct{})
			So(err, ShouldBeNil)
			ids := []int{}
			for _, j := range page.Items {
				ids = append(ids, j.ID)
			}
			So(ids, ShouldResemble, []int{1, 3, 5, 6})
		})

		Convey("Search matches skills", func() {
			page, err := listing.BuildJobPage(ds.Jobs, filter.Criteria{Query: "kubernetes"}, listing.Direct{})
			So(err, ShouldBeNil)
			So(page.Items, ShouldHaveLength, 1)
			So(page.Items[0].Title, ShouldEqual, "DevOps Engineer")
		})

		Convey("Options collapse repeated values", func() {
			page, err := listing.BuildJobPage(ds.Jobs, filter.Criteria{}, listing.Direct{})
			So(err, ShouldBeNil)
			So(page.Options.Types, ShouldResemble, []string{"all", "Full-time"})
			So(page.Options.Domains, ShouldHaveLength, 7)
			So(page.Options.Experiences, ShouldContain, "PhD + 2 years")
		})

		Convey("Toggles of other listings are rejected", func() {
			_, err := listing.BuildJobPage(ds.Jobs, filter.Criteria{}.Toggle(listing.ToggleFeatured, true), listing.Direct{})
			So(errors.Is(err, filter.ErrUnknownField), ShouldBeTrue)
		})
	})
}

func TestEventPage(t *testing.T) {
	Convey("Given the bundled events", t, func() {
		ds := repository.BuiltinDataset()

		Convey("Status completed is exactly the Entrepreneurship Workshop", func() {
			page, err := listing.BuildEventPage(ds.Events, filter.Criteria{}.Select(listing.FieldStatus, model.EventCompleted), listing.Direct{})
			So(err, ShouldBeNil)
			So(page.Matched, ShouldEqual, 1)
			So(page.Items[0].ID, ShouldEqual, 4)
			So(page.Items[0].Title, ShouldEqual, "Entrepreneurship Workshop")
			So(page.Completed, ShouldHaveLength, 1)
			So(page.Upcoming, ShouldBeEmpty)
		})

		Convey("Tabs partition the filtered events", func() {
			page, err := listing.BuildEventPage(ds.Events, filter.Criteria{}, listing.Direct{})
			So(err, ShouldBeNil)
			So(page.Upcoming, ShouldHaveLength, 4)
			So(page.Completed, ShouldHaveLength, 1)
			So(len(page.Upcoming)+len(page.Completed), ShouldEqual, page.Matched)
		})

		Convey("Category narrows both tabs", func() {
			page, err := listing.BuildEventPage(ds.Events, filter.Criteria{}.Select(listing.FieldCategory, "Technology"), listing.Direct{})
			So(err, ShouldBeNil)
			So(page.Upcoming, ShouldHaveLength, 2)
			So(page.Completed, ShouldBeEmpty)
		})

		Convey("Registration progress is attached", func() {
			page, _ := listing.BuildEventPage(ds.Events, filter.Criteria{Query: "workshop"}, listing.Direct{})
			So(page.Items, ShouldHaveLength, 1)
			So(page.Items[0].RegistrationProgress, ShouldEqual, 90.0)
			So(page.Items[0].RegistrationPercent, ShouldEqual, 90)
			So(page.Items[0].OverCapacity, ShouldBeFalse)
		})

		Convey("Options list categories and statuses", func() {
			page, _ := listing.BuildEventPage(ds.Events, filter.Criteria{}, listing.Direct{})
			So(page.Options.Categories, ShouldResemble, []string{"all", "Technology", "Networking", "Career", "Business"})
			So(page.Options.Statuses, ShouldResemble, []string{"all", "upcoming", "completed"})
		})
	})

	Convey("An over-subscribed event is not clamped", t, func() {
		v := listing.NewEventView(model.Event{Attendees: 60, MaxAttendees: 50})
		So(v.RegistrationProgress, ShouldEqual, 120.0)
		So(v.RegistrationPercent, ShouldEqual, 120)
		So(v.OverCapacity, ShouldBeTrue)
	})
}

func TestCampaignPage(t *testing.T) {
	Convey("Given the bundled campaigns", t, func() {
		ds := repository.BuiltinDataset()

		Convey("The scholarship fund is 70 percent funded", func() {
			page, err := listing.BuildCampaignPage(ds.Campaigns, ds.Impact, filter.Criteria{}, listing.Direct{})
			So(err, ShouldBeNil)
			first := page.All[0]
			So(first.ID, ShouldEqual, 1)
			So(first.Progress, ShouldEqual, 69.5)
			So(first.ProgressPercent, ShouldEqual, 70)
			So(first.RaisedDisplay, ShouldEqual, "$347,500")
			So(first.GoalDisplay, ShouldEqual, "$500,000")
		})

		Convey("Featured is the featured subset of the filtered campaigns", func() {
			page, _ := listing.BuildCampaignPage(ds.Campaigns, ds.Impact, filter.Criteria{}, listing.Direct{})
			So(page.All, ShouldHaveLength, 4)
			So(page.Featured, ShouldHaveLength, 2)
			So(page.Featured[0].ID, ShouldEqual, 1)
			So(page.Featured[1].ID, ShouldEqual, 4)
			So(page.Impact, ShouldHaveLength, 4)
		})

		Convey("Category applies to both tabs", func() {
			page, _ := listing.BuildCampaignPage(ds.Campaigns, nil, filter.Criteria{}.Select(listing.FieldCategory, "Infrastructure"), listing.Direct{})
			So(page.All, ShouldHaveLength, 1)
			So(page.Featured, ShouldBeEmpty)
			So(page.Impact, ShouldNotBeNil)
		})

		Convey("Search covers descriptions", func() {
			page, _ := listing.BuildCampaignPage(ds.Campaigns, nil, filter.Criteria{Query: "e-books"}, listing.Direct{})
			So(page.All, ShouldHaveLength, 1)
			So(page.All[0].ID, ShouldEqual, 4)
		})
	})

	Convey("Over-funded campaigns are clamped to 100", t, func() {
		v := listing.NewCampaignView(model.Campaign{Goal: 1000, Raised: 2500})
		So(v.ProgressPercent, ShouldEqual, 100)
	})
}

func TestAnalytics(t *testing.T) {
	Convey("Given the bundled analytics", t, func() {
		view := listing.BuildAnalytics(repository.BuiltinDataset().Analytics)

		Convey("Totals aggregate the series", func() {
			So(view.Totals.DonationAmount, ShouldEqual, int64(359000))
			So(view.Totals.DonationDisplay, ShouldEqual, "$359,000")
			So(view.Totals.Donors, ShouldEqual, 715)
			So(view.Totals.Participants, ShouldEqual, 1450)
			So(view.Totals.EventsHeld, ShouldEqual, 33)
			So(view.Totals.Sessions, ShouldEqual, 437)
			So(view.Totals.Matches, ShouldEqual, 126)
			So(view.Totals.Alumni, ShouldEqual, 1040)
			So(view.Totals.AlumniDisplay, ShouldEqual, "1,040")
			So(view.Totals.DonorsDisplay, ShouldEqual, "715")
		})

		Convey("Domain shares are percentages of the distribution", func() {
			So(view.Domains, ShouldHaveLength, 6)
			So(view.Domains[0].Name, ShouldEqual, "Technology")
			So(view.Domains[0].Share, ShouldEqual, 37.0)
		})
	})

	Convey("Empty analytics render as empty series", t, func() {
		view := listing.BuildAnalytics(model.Analytics{})
		So(view.KeyMetrics, ShouldNotBeNil)
		So(view.Domains, ShouldNotBeNil)
		So(view.Totals.Alumni, ShouldEqual, 0)
	})
}

func TestDescribe(t *testing.T) {
	Convey("Describe lists the accepted parameters", t, func() {
		d, ok := listing.Describe(listing.Jobs)
		So(ok, ShouldBeTrue)
		So(d.Fields, ShouldResemble, []string{"domain", "experience", "type"})
		So(d.Toggles, ShouldResemble, []string{"remote"})
		So(d.IsToggle("remote"), ShouldBeTrue)
		So(d.IsToggle("domain"), ShouldBeFalse)

		_, ok = listing.Describe("mentors")
		So(ok, ShouldBeFalse)

		So(listing.Names(), ShouldResemble, []string{"alumni", "jobs", "events", "campaigns"})
	})
}
