package model

// Campaign is a fundraising campaign shown on the donations page.
// Amounts are whole US dollars.
type Campaign struct {
	ID          int    `json:"id" yaml:"id" validate:"gt=0"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category" validate:"required"`
	Goal        int64  `json:"goal" yaml:"goal" validate:"gt=0"`
	Raised      int64  `json:"raised" yaml:"raised" validate:"gte=0"`
	Donors      int    `json:"donors" yaml:"donors" validate:"gte=0"`
	DaysLeft    int    `json:"daysLeft" yaml:"daysLeft" validate:"gte=0"`
	Image       string `json:"image,omitempty" yaml:"image"`
	Featured    bool   `json:"featured" yaml:"featured"`
}

// ImpactStat is a headline figure on the donations page.
type ImpactStat struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Value       string `json:"value" yaml:"value" validate:"required"`
	Description string `json:"description" yaml:"description"`
}
