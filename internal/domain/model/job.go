package model

// JobPosting is one opening on the job board.
type JobPosting struct {
	ID          int      `json:"id" yaml:"id" validate:"gt=0"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Company     string   `json:"company" yaml:"company" validate:"required"`
	Location    string   `json:"location" yaml:"location"`
	Type        string   `json:"type" yaml:"type" validate:"required"`
	Experience  string   `json:"experience" yaml:"experience"`
	Salary      string   `json:"salary" yaml:"salary"`
	Posted      string   `json:"posted" yaml:"posted"`
	Domain      string   `json:"domain" yaml:"domain" validate:"required"`
	Skills      []string `json:"skills" yaml:"skills"`
	Description string   `json:"description" yaml:"description"`
	Remote      bool     `json:"remote" yaml:"remote"`
	CompanyLogo string   `json:"companyLogo,omitempty" yaml:"companyLogo"`
}
