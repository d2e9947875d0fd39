package models

// PlaceholderProductID is the value shipped in the example campaign. It never names a real product.
const PlaceholderProductID = "YOUR_PRODUCT_UUID"

// Packages are the campaign tiers accepted by the pay-per-campaign flow.
var Packages = []string{"test", "starter", "growth", "scale"}

// MaxEstimatedPosts is the most posts the largest credit bundle can pay for.
const MaxEstimatedPosts = 14000 / CreditsPerPost

// CampaignRequest is the body of POST /agents/campaigns.
type CampaignRequest struct {
	ProductID       string   `json:"product_id" yaml:"product_id" validate:"required,ne=YOUR_PRODUCT_UUID"`
	Title           string   `json:"title" yaml:"title" validate:"notblank"`
	Keywords        []string `json:"keywords" yaml:"keywords" validate:"required,min=1,dive,notblank"`
	SearchContext   string   `json:"search_context" yaml:"search_context" validate:"notblank"`
	SelectedPackage string   `json:"selected_package,omitempty" yaml:"selected_package"`
	EstimatedPosts  int      `json:"estimated_posts,omitempty" yaml:"estimated_posts"`

	MentionAccounts  []string `json:"mention_accounts,omitempty" yaml:"mention_accounts"`
	ReplyStyleTags   []string `json:"reply_style_tags,omitempty" yaml:"reply_style_tags"`
	ReplyLength      string   `json:"reply_length,omitempty" yaml:"reply_length"`
	MinFollowerCount int      `json:"min_follower_count,omitempty" yaml:"min_follower_count"`
	MaxPostAgeDays   int      `json:"max_post_age_days,omitempty" yaml:"max_post_age_days"`
}

// ExampleCampaign returns the campaign submitted when no file is given.
// Its product_id is the placeholder, so it must be edited before it passes validation.
func ExampleCampaign() *CampaignRequest {
	return &CampaignRequest{
		ProductID: PlaceholderProductID,
		Title:     "Example Campaign",
		Keywords: []string{
			"AI tools",
			"productivity apps",
			"automation software",
		},
		SearchContext:    "People discussing AI productivity tools and automation challenges",
		SelectedPackage:  "test",
		EstimatedPosts:   4,
		MentionAccounts:  []string{"@productclank"},
		ReplyStyleTags:   []string{"friendly", "helpful"},
		ReplyLength:      "short",
		MinFollowerCount: 100,
		MaxPostAgeDays:   7,
	}
}
