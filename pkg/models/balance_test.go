package models

import "testing"

func TestCheckBalance(t *testing.T) {
	tests := []struct {
		credits, cost int
		want          bool
	}{
		{10, 48, false},
		{100, 48, true},
		{48, 48, true},
	}
	for _, tt := range tests {
		b := &CreditBalance{Credits: tt.credits}
		if got := b.CheckBalance(tt.cost); got != tt.want {
			t.Errorf("CheckBalance(%d) with %d credits = %v", tt.cost, tt.credits, got)
		}
	}
}

func TestEstimatedCredits(t *testing.T) {
	if got := EstimatedCredits(4); got != 48 {
		t.Errorf("EstimatedCredits(4) = %d", got)
	}
	if got := EstimatedCredits(0); got != DefaultEstimatedPosts*CreditsPerPost {
		t.Errorf("EstimatedCredits(0) = %d", got)
	}
}

func TestRecommendBundle(t *testing.T) {
	tests := []struct {
		credits int
		want    string
	}{
		{48, "nano"},
		{50, "nano"},
		{51, "micro"},
		{600, "medium"},
		{2600, "large"},
		{2601, "enterprise"},
		{1_000_000, "enterprise"},
	}
	for _, tt := range tests {
		if got := RecommendBundle(tt.credits).Name; got != tt.want {
			t.Errorf("RecommendBundle(%d) = %s, want %s", tt.credits, got, tt.want)
		}
	}

	if b, ok := LookupBundle("small"); !ok || b.Price != 25 || b.Credits != 550 {
		t.Errorf("LookupBundle(small) = %+v, %v", b, ok)
	}
	if _, ok := LookupBundle("tiny"); ok {
		t.Error("LookupBundle(tiny) found a bundle")
	}
}

func TestRefAcceptsStringsAndNumbers(t *testing.T) {
	for raw, want := range map[string]Ref{`"CMP-9"`: "CMP-9", `42`: "42", `null`: ""} {
		var r Ref
		if err := r.UnmarshalJSON([]byte(raw)); err != nil {
			t.Fatalf("%s: %v", raw, err)
		}
		if r != want {
			t.Errorf("%s decoded to %q, want %q", raw, r, want)
		}
	}
}
