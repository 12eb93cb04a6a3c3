package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/alumnihub/internal/adapters/http/api"
	service "github.com/okian/alumnihub/internal/app"
	"github.com/okian/alumnihub/internal/domain/filter"
	"github.com/okian/alumnihub/internal/domain/listing"
	"github.com/okian/alumnihub/internal/domain/model"
	"github.com/okian/alumnihub/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// brokenDeps fails every call with err.
type brokenDeps struct {
	err error
}

func (b brokenDeps) ListAlumni(context.Context, filter.Criteria) (listing.AlumniPage, error) {
	return listing.AlumniPage{}, b.err
}

func (b brokenDeps) ListJobs(context.Context, filter.Criteria) (listing.JobPage, error) {
	return listing.JobPage{}, b.err
}

func (b brokenDeps) ListEvents(context.Context, filter.Criteria) (listing.EventPage, error) {
	return listing.EventPage{}, b.err
}

func (b brokenDeps) ListCampaigns(context.Context, filter.Criteria) (listing.CampaignPage, error) {
	return listing.CampaignPage{}, b.err
}

func (b brokenDeps) Home(context.Context) (model.Home, error) { return model.Home{}, b.err }

func (b brokenDeps) Analytics(context.Context) (listing.AnalyticsView, error) {
	return listing.AnalyticsView{}, b.err
}

func (b brokenDeps) Health(context.Context) (service.Health, error) { return service.Health{}, b.err }

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newMux(deps api.Dependencies, stats api.StatsProvider) http.Handler {
	mux := http.NewServeMux()
	api.NewServer(deps, stats).Register(context.Background(), mux)
	return api.RequestID(mux)
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decode[T any](w *httptest.ResponseRecorder) T {
	var v T
	So(json.NewDecoder(w.Body).Decode(&v), ShouldBeNil)
	return v
}

func TestListings(t *testing.T) {
	Convey("Given a server over a started service", t, func() {
		svc := service.New()
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()
		h := newMux(svc, svc)

		Convey("GET /api/alumni?q=python returns Emily and Michael", func() {
			w := get(h, "/api/alumni?q=python")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")
			page := decode[listing.AlumniPage](w)
			So(page.Matched, ShouldEqual, 2)
			So(page.Items[0].Name, ShouldEqual, "Emily Rodriguez")
			So(page.Items[1].Name, ShouldEqual, "Michael Kim")
		})

		Convey("GET /api/alumni with all selectors equals no selectors", func() {
			all := decode[listing.AlumniPage](get(h, "/api/alumni?industry=all&batch=all&company=all"))
			none := decode[listing.AlumniPage](get(h, "/api/alumni"))
			So(all, ShouldResemble, none)
			So(none.Options.Batches[0], ShouldEqual, "all")
		})

		Convey("GET /api/jobs with domain and remote returns job 1", func() {
			page := decode[listing.JobPage](get(h, "/api/jobs?domain=Technology&remote=true"))
			So(page.Items, ShouldHaveLength, 1)
			So(page.Items[0].ID, ShouldEqual, 1)
		})

		Convey("GET /api/events?status=completed returns the workshop", func() {
			page := decode[listing.EventPage](get(h, "/api/events?status=completed"))
			So(page.Completed, ShouldHaveLength, 1)
			So(page.Completed[0].ID, ShouldEqual, 4)
			So(page.Completed[0].RegistrationPercent, ShouldEqual, 90)
		})

		Convey("GET /api/campaigns?featured=true returns featured campaigns", func() {
			w := get(h, "/api/campaigns?featured=true")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"raisedDisplay":"$347,500"`)
			page := decode[listing.CampaignPage](w)
			So(page.All, ShouldHaveLength, 2)
			So(page.All[0].ProgressPercent, ShouldEqual, 70)
		})

		Convey("Empty results render as empty arrays", func() {
			w := get(h, "/api/jobs?q=zzz")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"items":[]`)
		})

		Convey("Bad requests are rejected with 400", func() {
			for _, target := range []string{
				"/api/alumni?salary=high",
				"/api/jobs?remote=maybe",
				"/api/events?featured=true",
				"/api/alumni?q=" + strings.Repeat("a", 201),
			} {
				w := get(h, target)
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(decode[errorResponse](w).Code, ShouldEqual, "bad_request")
			}
		})

		Convey("Non-GET methods are not found", func() {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/alumni", nil))
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("GET /api/home and /api/analytics serve page content", func() {
			home := decode[model.Home](get(h, "/api/home"))
			So(home.Stats, ShouldHaveLength, 4)

			view := decode[listing.AnalyticsView](get(h, "/api/analytics"))
			So(view.Totals.DonationDisplay, ShouldEqual, "$359,000")
			So(view.Domains[0].Share, ShouldEqual, 37.0)
		})

		Convey("GET /healthz reports the dataset", func() {
			w := get(h, "/healthz")
			So(w.Code, ShouldEqual, http.StatusOK)
			health := decode[service.Health](w)
			So(health.Status, ShouldEqual, "ok")
			So(health.Provider, ShouldEqual, "builtin")
			So(health.Records["events"], ShouldEqual, 5)
		})

		Convey("GET /metrics exposes Prometheus text", func() {
			_ = get(h, "/api/alumni")
			w := get(h, "/metrics")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "alumnihub_")
		})

		Convey("GET /stats returns service counters", func() {
			stats := decode[map[string]interface{}](get(h, "/stats"))
			So(stats["started"], ShouldEqual, true)
			So(stats["provider"], ShouldEqual, "builtin")
		})
	})
}

func TestErrorMapping(t *testing.T) {
	Convey("Given dependencies that fail", t, func() {
		Convey("A provider failure is a 500 without internals", func() {
			h := newMux(brokenDeps{err: errors.New("secret dsn leaked")}, &mockStatsProvider{})
			w := get(h, "/api/jobs")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			resp := decode[errorResponse](w)
			So(resp.Code, ShouldEqual, "internal_error")
			So(resp.Message, ShouldNotContainSubstring, "secret")
		})

		Convey("A stopped service is a 503", func() {
			h := newMux(brokenDeps{err: service.ErrNotStarted}, &mockStatsProvider{})
			So(get(h, "/api/home").Code, ShouldEqual, http.StatusServiceUnavailable)
			So(get(h, "/healthz").Code, ShouldEqual, http.StatusServiceUnavailable)
		})
	})
}

func TestRequestID(t *testing.T) {
	Convey("Given the request id middleware", t, func() {
		var seen string
		h := api.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = logger.RequestID(r.Context())
		}))

		Convey("It generates an id when none is sent", func() {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			So(w.Header().Get(api.RequestIDHeader), ShouldHaveLength, 36)
			So(seen, ShouldEqual, w.Header().Get(api.RequestIDHeader))
		})

		Convey("It propagates the caller's id", func() {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set(api.RequestIDHeader, "req-42")
			h.ServeHTTP(w, r)
			So(w.Header().Get(api.RequestIDHeader), ShouldEqual, "req-42")
			So(seen, ShouldEqual, "req-42")
		})
	})
}

func TestStatsHandler_HandleStats(t *testing.T) {
	Convey("Given a stats handler", t, func() {
		mockStats := &mockStatsProvider{
			stats: map[string]interface{}{
				"optionCacheHits": 1000,
				"started":         true,
			},
		}
		handler := api.NewStatsHandler(mockStats)

		Convey("When handling stats request", func() {
			req := httptest.NewRequest("GET", "/stats", nil)
			w := httptest.NewRecorder()

			Convey("Then it should return stats", func() {
				handler.HandleStats(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)

				var response map[string]interface{}
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response["optionCacheHits"], ShouldEqual, 1000)
				So(response["started"], ShouldEqual, true)
			})
		})
	})
}
