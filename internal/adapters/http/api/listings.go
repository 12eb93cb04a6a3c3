package api

import (
	"context"
	"net/http"

	"github.com/okian/alumnihub/internal/domain/filter"
	"github.com/okian/alumnihub/internal/domain/listing"
)

// ListingHandler serves one filterable listing.
type ListingHandler struct {
	desc listing.Descriptor
	list func(ctx context.Context, c filter.Criteria) (any, error)
}

// NewListingHandlers creates one handler per listing, keyed by listing name.
func NewListingHandlers(deps Dependencies) map[string]*ListingHandler {
	return map[string]*ListingHandler{
		listing.Alumni: newListingHandler(listing.Alumni, func(ctx context.Context, c filter.Criteria) (any, error) {
			return deps.ListAlumni(ctx, c)
		}),
		listing.Jobs: newListingHandler(listing.Jobs, func(ctx context.Context, c filter.Criteria) (any, error) {
			return deps.ListJobs(ctx, c)
		}),
		listing.Events: newListingHandler(listing.Events, func(ctx context.Context, c filter.Criteria) (any, error) {
			return deps.ListEvents(ctx, c)
		}),
		listing.Campaigns: newListingHandler(listing.Campaigns, func(ctx context.Context, c filter.Criteria) (any, error) {
			return deps.ListCampaigns(ctx, c)
		}),
	}
}

func newListingHandler(name string, list func(context.Context, filter.Criteria) (any, error)) *ListingHandler {
	d, _ := listing.Describe(name)
	return &ListingHandler{desc: d, list: list}
}

// HandleList handles GET /api/{listing} requests.
func (h *ListingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	op := "api.list_" + h.desc.Name
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	c, err := parseCriteria(r.URL.Query(), h.desc)
	if err != nil {
		fail(w, r, op, err)
		return
	}
	page, err := h.list(r.Context(), c)
	if err != nil {
		fail(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}
