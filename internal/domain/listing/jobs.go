package listing

import (
	"github.com/okian/alumnihub/internal/domain/filter"
	"github.com/okian/alumnihub/internal/domain/model"
)

// Job filter fields and toggles.
const (
	FieldDomain     = "domain"
	FieldType       = "type"
	FieldExperience = "experience"
	ToggleRemote    = "remote"
)

var jobSchema = filter.Schema[model.JobPosting]{
	Text: []func(model.JobPosting) string{
		func(j model.JobPosting) string { return j.Title },
		func(j model.JobPosting) string { return j.Company },
	},
	Lists: []func(model.JobPosting) []string{
		func(j model.JobPosting) []string { return j.Skills },
	},
	Fields: map[string]func(model.JobPosting) string{
		FieldDomain:     func(j model.JobPosting) string { return j.Domain },
		FieldType:       func(j model.JobPosting) string { return j.Type },
		FieldExperience: func(j model.JobPosting) string { return j.Experience },
	},
	Toggles: map[string]func(model.JobPosting) bool{
		ToggleRemote: func(j model.JobPosting) bool { return j.Remote },
	},
}

// JobOptions are the selectable values of the job filters.
type JobOptions struct {
	Domains     []string `json:"domains"`
	Types       []string `json:"types"`
	Experiences []string `json:"experiences"`
}

// JobPage is the job board view.
type JobPage struct {
	Items   []model.JobPosting `json:"items"`
	Total   int                `json:"total"`
	Matched int                `json:"matched"`
	Options JobOptions         `json:"options"`
}

// FilterJobs returns the postings matching c.
func FilterJobs(records []model.JobPosting, c filter.Criteria) ([]model.JobPosting, error) {
	if err := jobSchema.Validate(c); err != nil {
		return nil, err
	}
	return filter.Apply(records, jobSchema, c), nil
}

// BuildJobPage filters records and attaches the option sets.
func BuildJobPage(records []model.JobPosting, c filter.Criteria, src OptionSource) (JobPage, error) {
	items, err := FilterJobs(records, c)
	if err != nil {
		return JobPage{}, err
	}
	return JobPage{
		Items:   items,
		Total:   len(records),
		Matched: len(items),
		Options: JobOptions{
			Domains: src.Options(Jobs, FieldDomain, func() []string {
				return filter.Options(records, jobSchema.Fields[FieldDomain], false)
			}),
			Types: src.Options(Jobs, FieldType, func() []string {
				return filter.Options(records, jobSchema.Fields[FieldType], false)
			}),
			Experiences: src.Options(Jobs, FieldExperience, func() []string {
				return filter.Options(records, jobSchema.Fields[FieldExperience], false)
			}),
		},
	}, nil
}
