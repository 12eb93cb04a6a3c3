package listing

import (
	"github.com/okian/alumnihub/internal/domain/filter"
	"github.com/okian/alumnihub/internal/domain/model"
	"github.com/okian/alumnihub/internal/domain/progress"
	"github.com/okian/alumnihub/pkg/format"
)

// Campaign toggles. Campaigns filter on FieldCategory.
const (
	ToggleFeatured = "featured"
)

var campaignSchema = filter.Schema[model.Campaign]{
	Text: []func(model.Campaign) string{
		func(c model.Campaign) string { return c.Title },
		func(c model.Campaign) string { return c.Description },
	},
	Fields: map[string]func(model.Campaign) string{
		FieldCategory: func(c model.Campaign) string { return c.Category },
	},
	Toggles: map[string]func(model.Campaign) bool{
		ToggleFeatured: func(c model.Campaign) bool { return c.Featured },
	},
}

// CampaignView is a campaign with its display figures.
type CampaignView struct {
	model.Campaign
	Progress        float64 `json:"progress"`
	ProgressPercent int     `json:"progressPercent"`
	RaisedDisplay   string  `json:"raisedDisplay"`
	GoalDisplay     string  `json:"goalDisplay"`
}

// CampaignOptions are the selectable values of the campaign filters.
type CampaignOptions struct {
	Categories []string `json:"categories"`
}

// CampaignPage is the donations view with featured and all-campaign tabs.
type CampaignPage struct {
	Featured []CampaignView     `json:"featured"`
	All      []CampaignView     `json:"all"`
	Total    int                `json:"total"`
	Matched  int                `json:"matched"`
	Impact   []model.ImpactStat `json:"impact"`
	Options  CampaignOptions    `json:"options"`
}

// NewCampaignView decorates c with its clamped progress and formatted amounts.
func NewCampaignView(c model.Campaign) CampaignView {
	p := progress.Donation(c.Raised, c.Goal)
	return CampaignView{
		Campaign:        c,
		Progress:        p,
		ProgressPercent: progress.Round(p),
		RaisedDisplay:   format.USD(c.Raised),
		GoalDisplay:     format.USD(c.Goal),
	}
}

// FilterCampaigns returns the campaigns matching c.
func FilterCampaigns(records []model.Campaign, c filter.Criteria) ([]model.Campaign, error) {
	if err := campaignSchema.Validate(c); err != nil {
		return nil, err
	}
	return filter.Apply(records, campaignSchema, c), nil
}

// BuildCampaignPage filters records, splits out featured campaigns and attaches the option sets.
func BuildCampaignPage(records []model.Campaign, impact []model.ImpactStat, c filter.Criteria, src OptionSource) (CampaignPage, error) {
	matched, err := FilterCampaigns(records, c)
	if err != nil {
		return CampaignPage{}, err
	}
	all := make([]CampaignView, 0, len(matched))
	for _, m := range matched {
		all = append(all, NewCampaignView(m))
	}
	featured, _ := filter.Partition(all, func(v CampaignView) bool { return v.Featured })
	if impact == nil {
		impact = []model.ImpactStat{}
	}
	return CampaignPage{
		Featured: featured,
		All:      all,
		Total:    len(records),
		Matched:  len(all),
		Impact:   impact,
		Options: CampaignOptions{
			Categories: src.Options(Campaigns, FieldCategory, func() []string {
				return filter.Options(records, campaignSchema.Fields[FieldCategory], false)
			}),
		},
	}, nil
}
