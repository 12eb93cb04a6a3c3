package repository

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/okian/alumnihub/internal/domain/model"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks every record of ds and rejects duplicate ids within a listing.
func Validate(ds *model.Dataset) error {
	if ds == nil {
		return fmt.Errorf("%w: nil dataset", ErrInvalidDataset)
	}
	if err := validatorInstance().Struct(ds); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}

	dups := []struct {
		listing string
		ids     []int
	}{
		{"alumni", ids(ds.Alumni, func(a model.AlumniProfile) int { return a.ID })},
		{"jobs", ids(ds.Jobs, func(j model.JobPosting) int { return j.ID })},
		{"events", ids(ds.Events, func(e model.Event) int { return e.ID })},
		{"campaigns", ids(ds.Campaigns, func(c model.Campaign) int { return c.ID })},
	}
	for _, d := range dups {
		seen := make(map[int]struct{}, len(d.ids))
		for _, id := range d.ids {
			if _, ok := seen[id]; ok {
				return fmt.Errorf("%w: duplicate %s id %d", ErrInvalidDataset, d.listing, id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}

func ids[T any](records []T, id func(T) int) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = id(r)
	}
	return out
}

// Fingerprint returns the content version of ds: FNV-64a over its JSON encoding.
// The Version field itself is excluded.
func Fingerprint(ds *model.Dataset) (string, error) {
	c := *ds
	c.Version = ""
	b, err := json.Marshal(&c)
	if err != nil {
		return "", fmt.Errorf("fingerprint dataset: %w", err)
	}
	h := fnv.New64a()
	_, _ = h.Write(b)
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
