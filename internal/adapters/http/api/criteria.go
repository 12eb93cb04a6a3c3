package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/okian/alumnihub/internal/domain/filter"
	"github.com/okian/alumnihub/internal/domain/listing"
)

// queryParam is the free-text search parameter of every listing.
const queryParam = "q"

// listRequest bounds the raw listing parameters before they reach the engine.
type listRequest struct {
	Query    string            `validate:"max=200"`
	Selected map[string]string `validate:"max=16,dive,keys,min=1,max=64,endkeys,max=128"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// parseCriteria turns query parameters into criteria for the listing d.
// Parameters named after a toggle of d are parsed as booleans; every other
// parameter but q is a categorical selector. Unknown selectors are left to
// the listing schema to reject.
func parseCriteria(values url.Values, d listing.Descriptor) (filter.Criteria, error) {
	req := listRequest{Selected: map[string]string{}}
	c := filter.Criteria{Selected: map[string]string{}, Toggles: map[string]bool{}}

	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		v := strings.TrimSpace(vals[0])
		switch {
		case key == queryParam:
			req.Query = v
		case d.IsToggle(key):
			if v == "" {
				continue
			}
			on, err := strconv.ParseBool(v)
			if err != nil {
				return filter.Criteria{}, fmt.Errorf("%w: %s must be true or false", ErrBadRequest, key)
			}
			c.Toggles[key] = on
		default:
			req.Selected[key] = v
		}
	}

	if err := requestValidator().Struct(req); err != nil {
		return filter.Criteria{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	c.Query = req.Query
	c.Selected = req.Selected
	return c, nil
}
