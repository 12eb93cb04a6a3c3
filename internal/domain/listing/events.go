package listing

import (
	"github.com/okian/alumnihub/internal/domain/filter"
	"github.com/okian/alumnihub/internal/domain/model"
	"github.com/okian/alumnihub/internal/domain/progress"
)

// Event filter fields.
const (
	FieldCategory = "category"
	FieldStatus   = "status"
)

var eventSchema = filter.Schema[model.Event]{
	Text: []func(model.Event) string{
		func(e model.Event) string { return e.Title },
		func(e model.Event) string { return e.Speaker },
	},
	Fields: map[string]func(model.Event) string{
		FieldCategory: func(e model.Event) string { return e.Category },
		FieldStatus:   func(e model.Event) string { return e.Status },
	},
}

// EventView is an event with its registration progress.
type EventView struct {
	model.Event
	// RegistrationProgress is attendees/capacity in percent and may exceed 100.
	RegistrationProgress float64 `json:"registrationProgress"`
	RegistrationPercent  int     `json:"registrationPercent"`
	OverCapacity         bool    `json:"overCapacity"`
}

// EventOptions are the selectable values of the event filters.
type EventOptions struct {
	Categories []string `json:"categories"`
	Statuses   []string `json:"statuses"`
}

// EventPage is the events view, split into upcoming and past tabs.
type EventPage struct {
	Items     []EventView  `json:"items"`
	Upcoming  []EventView  `json:"upcoming"`
	Completed []EventView  `json:"completed"`
	Total     int          `json:"total"`
	Matched   int          `json:"matched"`
	Options   EventOptions `json:"options"`
}

// NewEventView decorates e with its registration progress.
func NewEventView(e model.Event) EventView {
	p := progress.Registration(e.Attendees, e.MaxAttendees)
	return EventView{
		Event:                e,
		RegistrationProgress: p,
		RegistrationPercent:  progress.Round(p),
		OverCapacity:         e.MaxAttendees > 0 && e.Attendees > e.MaxAttendees,
	}
}

// FilterEvents returns the events matching c.
func FilterEvents(records []model.Event, c filter.Criteria) ([]model.Event, error) {
	if err := eventSchema.Validate(c); err != nil {
		return nil, err
	}
	return filter.Apply(records, eventSchema, c), nil
}

// BuildEventPage filters records, partitions them by status and attaches the option sets.
func BuildEventPage(records []model.Event, c filter.Criteria, src OptionSource) (EventPage, error) {
	matched, err := FilterEvents(records, c)
	if err != nil {
		return EventPage{}, err
	}
	items := make([]EventView, 0, len(matched))
	for _, e := range matched {
		items = append(items, NewEventView(e))
	}
	upcoming, rest := filter.Partition(items, func(v EventView) bool { return v.Status == model.EventUpcoming })
	completed, _ := filter.Partition(rest, func(v EventView) bool { return v.Status == model.EventCompleted })
	return EventPage{
		Items:     items,
		Upcoming:  upcoming,
		Completed: completed,
		Total:     len(records),
		Matched:   len(items),
		Options: EventOptions{
			Categories: src.Options(Events, FieldCategory, func() []string {
				return filter.Options(records, eventSchema.Fields[FieldCategory], false)
			}),
			Statuses: src.Options(Events, FieldStatus, func() []string {
				return filter.Options(records, eventSchema.Fields[FieldStatus], false)
			}),
		},
	}, nil
}
