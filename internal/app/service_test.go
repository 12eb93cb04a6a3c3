package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	service "github.com/okian/alumnihub/internal/app"
	"github.com/okian/alumnihub/internal/domain/filter"
	"github.com/okian/alumnihub/internal/domain/listing"
	"github.com/okian/alumnihub/internal/domain/model"
	"github.com/okian/alumnihub/pkg/logger"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

// failingProvider fails every snapshot after the first n.
type failingProvider struct {
	ok     int
	calls  int
	closed bool
}

func (p *failingProvider) Snapshot(context.Context) (*model.Dataset, error) {
	p.calls++
	if p.calls <= p.ok {
		return &model.Dataset{Version: "v1"}, nil
	}
	return nil, errors.New("disk on fire")
}

func (p *failingProvider) Name() string { return "failing" }

func (p *failingProvider) Close() error {
	p.closed = true
	return nil
}

func startedService(opts ...service.Option) *service.Service {
	svc := service.New(opts...)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.Start(ctx); err != nil {
		panic(err)
	}
	return svc
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
			So(svc.GetStats()["optionCacheSize"], ShouldEqual, 256)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(service.WithOptionCacheSize(16), service.WithLogger(logger.Get()))

		Convey("Then the options should be applied", func() {
			So(svc.GetStats()["optionCacheSize"], ShouldEqual, 16)
		})
	})
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New()
		defer svc.Stop()
		ctx := context.Background()

		Convey("Reads fail before Start", func() {
			_, err := svc.ListAlumni(ctx, filter.Criteria{})
			So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			_, err = svc.Health(ctx)
			So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
		})

		Convey("When starting the service", func() {
			So(svc.Start(ctx), ShouldBeNil)

			Convey("Then it should be marked as started with the builtin provider", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
				So(stats["provider"], ShouldEqual, "builtin")
				So(stats["records"], ShouldResemble, map[string]int{"alumni": 6, "jobs": 6, "events": 5, "campaigns": 4})
			})

			Convey("And starting twice is harmless", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})

			Convey("And stopping marks it stopped", func() {
				svc.Stop()
				So(svc.GetStats()["started"], ShouldEqual, false)
				_, err := svc.Home(ctx)
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)

				Convey("And it can be started again on a fresh builtin provider", func() {
					So(svc.Start(ctx), ShouldBeNil)
					h, err := svc.Health(ctx)
					So(err, ShouldBeNil)
					So(h.Provider, ShouldEqual, "builtin")
				})
			})
		})
	})

	Convey("Given a provider that cannot load", t, func() {
		p := &failingProvider{}
		svc := service.New(service.WithProvider(p))

		Convey("Start fails", func() {
			So(svc.Start(context.Background()), ShouldNotBeNil)
			So(svc.GetStats()["started"], ShouldEqual, false)
		})
	})

	Convey("Given a provider that fails after start", t, func() {
		p := &failingProvider{ok: 1}
		svc := startedService(service.WithProvider(p))

		Convey("Reads surface the provider error", func() {
			_, err := svc.ListJobs(context.Background(), filter.Criteria{})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "disk on fire")
		})

		Convey("Stop closes the provider", func() {
			svc.Stop()
			So(p.closed, ShouldBeTrue)

			Convey("And a restart refuses the closed provider", func() {
				err := svc.Start(context.Background())
				So(errors.Is(err, service.ErrStopped), ShouldBeTrue)
				So(p.calls, ShouldEqual, 1)
			})
		})
	})
}

func TestService_Listings(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService()
		defer svc.Stop()
		ctx := context.Background()

		Convey("ListAlumni filters by query", func() {
			page, err := svc.ListAlumni(ctx, filter.Criteria{Query: "Python"})
			So(err, ShouldBeNil)
			So(page.Matched, ShouldEqual, 2)
			So(page.Options.Batches[0], ShouldEqual, filter.All)
		})

		Convey("ListJobs honours the remote toggle", func() {
			c := filter.Criteria{}.Select(listing.FieldDomain, "Technology").Toggle(listing.ToggleRemote, true)
			page, err := svc.ListJobs(ctx, c)
			So(err, ShouldBeNil)
			So(page.Matched, ShouldEqual, 1)
			So(page.Items[0].ID, ShouldEqual, 1)
		})

		Convey("ListEvents splits the tabs", func() {
			page, err := svc.ListEvents(ctx, filter.Criteria{}.Select(listing.FieldStatus, "completed"))
			So(err, ShouldBeNil)
			So(page.Completed, ShouldHaveLength, 1)
			So(page.Completed[0].ID, ShouldEqual, 4)
		})

		Convey("ListCampaigns attaches progress and impact", func() {
			page, err := svc.ListCampaigns(ctx, filter.Criteria{})
			So(err, ShouldBeNil)
			So(page.All[0].ProgressPercent, ShouldEqual, 70)
			So(page.Featured, ShouldHaveLength, 2)
			So(page.Impact, ShouldHaveLength, 4)
		})

		Convey("Unknown fields are reported", func() {
			_, err := svc.ListCampaigns(ctx, filter.Criteria{}.Toggle(listing.ToggleRemote, true))
			So(errors.Is(err, filter.ErrUnknownField), ShouldBeTrue)
		})

		Convey("Home and Analytics serve static content", func() {
			home, err := svc.Home(ctx)
			So(err, ShouldBeNil)
			So(home.Features, ShouldHaveLength, 6)

			view, err := svc.Analytics(ctx)
			So(err, ShouldBeNil)
			So(view.Totals.Alumni, ShouldEqual, 1040)
		})

		Convey("Health reports the dataset version", func() {
			h, err := svc.Health(ctx)
			So(err, ShouldBeNil)
			So(h.Status, ShouldEqual, "ok")
			So(h.Provider, ShouldEqual, "builtin")
			So(h.Version, ShouldHaveLength, 16)
		})

		Convey("Option sets are memoized across requests", func() {
			_, _ = svc.ListAlumni(ctx, filter.Criteria{})
			_, _ = svc.ListAlumni(ctx, filter.Criteria{Query: "x"})
			stats := svc.GetStats()
			So(stats["optionCacheEntries"], ShouldEqual, int64(3))
			So(stats["optionCacheMisses"], ShouldEqual, int64(3))
			So(stats["optionCacheHits"], ShouldEqual, int64(3))
		})
	})
}
