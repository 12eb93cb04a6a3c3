// Package model contains domain models passed between layers.
package model

// AlumniProfile is one entry of the alumni directory.
type AlumniProfile struct {
	ID       int      `json:"id" yaml:"id" validate:"gt=0"`
	Name     string   `json:"name" yaml:"name" validate:"required"`
	Avatar   string   `json:"avatar,omitempty" yaml:"avatar"`
	Company  string   `json:"company" yaml:"company" validate:"required"`
	Position string   `json:"position" yaml:"position"`
	Location string   `json:"location" yaml:"location"`
	Batch    string   `json:"batch" yaml:"batch" validate:"required"` // graduation year
	Industry string   `json:"industry" yaml:"industry" validate:"required"`
	Skills   []string `json:"skills" yaml:"skills"`
	LinkedIn string   `json:"linkedIn,omitempty" yaml:"linkedIn"`
	Email    string   `json:"email,omitempty" yaml:"email" validate:"omitempty,email"`
}
