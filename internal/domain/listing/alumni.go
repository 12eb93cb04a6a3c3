package listing

import (
	"github.com/okian/alumnihub/internal/domain/filter"
	"github.com/okian/alumnihub/internal/domain/model"
)

// Alumni filter fields.
const (
	FieldIndustry = "industry"
	FieldBatch    = "batch"
	FieldCompany  = "company"
)

var alumniSchema = filter.Schema[model.AlumniProfile]{
	Text: []func(model.AlumniProfile) string{
		func(a model.AlumniProfile) string { return a.Name },
		func(a model.AlumniProfile) string { return a.Company },
		func(a model.AlumniProfile) string { return a.Position },
	},
	Lists: []func(model.AlumniProfile) []string{
		func(a model.AlumniProfile) []string { return a.Skills },
	},
	Fields: map[string]func(model.AlumniProfile) string{
		FieldIndustry: func(a model.AlumniProfile) string { return a.Industry },
		FieldBatch:    func(a model.AlumniProfile) string { return a.Batch },
		FieldCompany:  func(a model.AlumniProfile) string { return a.Company },
	},
}

// AlumniOptions are the selectable values of the alumni filters.
type AlumniOptions struct {
	Industries []string `json:"industries"`
	Batches    []string `json:"batches"`
	Companies  []string `json:"companies"`
}

// AlumniPage is the alumni directory view.
type AlumniPage struct {
	Items   []model.AlumniProfile `json:"items"`
	Total   int                   `json:"total"`
	Matched int                   `json:"matched"`
	Options AlumniOptions         `json:"options"`
}

// FilterAlumni returns the alumni matching c.
func FilterAlumni(records []model.AlumniProfile, c filter.Criteria) ([]model.AlumniProfile, error) {
	if err := alumniSchema.Validate(c); err != nil {
		return nil, err
	}
	return filter.Apply(records, alumniSchema, c), nil
}

// BuildAlumniPage filters records and attaches the option sets.
// Batches and companies are offered in ascending order.
func BuildAlumniPage(records []model.AlumniProfile, c filter.Criteria, src OptionSource) (AlumniPage, error) {
	items, err := FilterAlumni(records, c)
	if err != nil {
		return AlumniPage{}, err
	}
	return AlumniPage{
		Items:   items,
		Total:   len(records),
		Matched: len(items),
		Options: AlumniOptions{
			Industries: src.Options(Alumni, FieldIndustry, func() []string {
				return filter.Options(records, alumniSchema.Fields[FieldIndustry], false)
			}),
			Batches: src.Options(Alumni, FieldBatch, func() []string {
				return filter.Options(records, alumniSchema.Fields[FieldBatch], true)
			}),
			Companies: src.Options(Alumni, FieldCompany, func() []string {
				return filter.Options(records, alumniSchema.Fields[FieldCompany], true)
			}),
		},
	}, nil
}
