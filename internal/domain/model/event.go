package model

// Event statuses. An event is listed under exactly one of the two tabs.
const (
	EventUpcoming  = "upcoming"
	EventCompleted = "completed"
)

// Event is a webinar, workshop, seminar or in-person gathering.
type Event struct {
	ID           int    `json:"id" yaml:"id" validate:"gt=0"`
	Title        string `json:"title" yaml:"title" validate:"required"`
	Type         string `json:"type" yaml:"type" validate:"required"`
	Date         string `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	Time         string `json:"time" yaml:"time"`
	Duration     string `json:"duration" yaml:"duration"`
	Location     string `json:"location" yaml:"location"`
	Speaker      string `json:"speaker" yaml:"speaker"`
	Description  string `json:"description" yaml:"description"`
	Attendees    int    `json:"attendees" yaml:"attendees" validate:"gte=0"`
	MaxAttendees int    `json:"maxAttendees" yaml:"maxAttendees" validate:"gt=0"`
	Price        string `json:"price" yaml:"price"`
	Category     string `json:"category" yaml:"category" validate:"required"`
	Status       string `json:"status" yaml:"status" validate:"oneof=upcoming completed"`
	Image        string `json:"image,omitempty" yaml:"image"`
}
