package models

import (
	"reflect"
	"strings"
	"testing"
)

func valid() *CampaignRequest {
	c := ExampleCampaign()
	c.ProductID = "5b6f3c1e-8f4a-4a57-9e43-2d0c8f0b7a11"
	return c
}

func TestValidateAcceptsCompleteCampaign(t *testing.T) {
	for _, flow := range []Flow{FlowPackage, FlowFunded} {
		if problems := valid().Validate(flow); len(problems) != 0 {
			t.Errorf("flow %d: unexpected problems %v", flow, problems)
		}
	}
}

func TestValidateNamesEachField(t *testing.T) {
	tests := []struct {
		name   string
		flow   Flow
		mutate func(*CampaignRequest)
		field  string
	}{
		{"empty title", FlowPackage, func(c *CampaignRequest) { c.Title = "" }, "title"},
		{"blank title", FlowPackage, func(c *CampaignRequest) { c.Title = " \t" }, "title"},
		{"nil keywords", FlowPackage, func(c *CampaignRequest) { c.Keywords = nil }, "keywords"},
		{"empty keywords", FlowPackage, func(c *CampaignRequest) { c.Keywords = []string{} }, "keywords"},
		{"blank keyword", FlowPackage, func(c *CampaignRequest) { c.Keywords = []string{"ok", " "} }, "keywords[1]"},
		{"blank search context", FlowPackage, func(c *CampaignRequest) { c.SearchContext = "  " }, "search_context"},
		{"empty product", FlowPackage, func(c *CampaignRequest) { c.ProductID = "" }, "product_id"},
		{"placeholder product", FlowPackage, func(c *CampaignRequest) { c.ProductID = PlaceholderProductID }, "product_id"},
		{"missing package", FlowPackage, func(c *CampaignRequest) { c.SelectedPackage = "" }, "selected_package"},
		{"unknown package", FlowPackage, func(c *CampaignRequest) { c.SelectedPackage = "enterprise" }, "selected_package"},
		{"negative posts", FlowFunded, func(c *CampaignRequest) { c.EstimatedPosts = -1 }, "estimated_posts"},
		{"too many posts", FlowFunded, func(c *CampaignRequest) { c.EstimatedPosts = MaxEstimatedPosts + 1 }, "estimated_posts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)

			problems := c.Validate(tt.flow)
			if len(problems) != 1 {
				t.Fatalf("problems = %v, want exactly one", problems)
			}
			if !strings.HasPrefix(problems[0], tt.field+" ") {
				t.Errorf("problem %q does not name %s", problems[0], tt.field)
			}
		})
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	c := &CampaignRequest{ProductID: PlaceholderProductID, SelectedPackage: "nope"}

	problems := c.Validate(FlowPackage)
	want := []string{
		"product_id must be set to a valid product identifier",
		"title is required",
		"keywords must be a non-empty list",
		"search_context is required",
		"selected_package must be one of test, starter, growth, scale",
	}
	if !reflect.DeepEqual(problems, want) {
		t.Errorf("problems =\n%q\nwant\n%q", problems, want)
	}

	// Same input, same answer.
	if again := c.Validate(FlowPackage); !reflect.DeepEqual(again, problems) {
		t.Errorf("second run = %q", again)
	}
}

func TestFlowSpecificFieldsIgnoredByOtherFlow(t *testing.T) {
	c := valid()
	c.SelectedPackage = ""
	if problems := c.Validate(FlowFunded); len(problems) != 0 {
		t.Errorf("funded flow checked selected_package: %v", problems)
	}

	c = valid()
	c.EstimatedPosts = MaxEstimatedPosts + 1
	if problems := c.Validate(FlowPackage); len(problems) != 0 {
		t.Errorf("package flow checked estimated_posts: %v", problems)
	}
}

func TestEstimatedPostsMessageStatesRange(t *testing.T) {
	c := valid()
	c.EstimatedPosts = -3

	problems := c.Validate(FlowFunded)
	want := "estimated_posts must be between 0 and 1166 (0 means the default of 50)"
	if len(problems) != 1 || problems[0] != want {
		t.Errorf("problems = %q, want [%q]", problems, want)
	}

	c.EstimatedPosts = 0
	if problems := c.Validate(FlowFunded); len(problems) != 0 {
		t.Errorf("zero posts rejected: %v", problems)
	}
}
