package models

// CreditsPerPost is what the service charges for one generated reply.
const CreditsPerPost = 12

// DefaultEstimatedPosts is assumed when a funded campaign leaves estimated_posts unset.
const DefaultEstimatedPosts = 50

type CreditBalance struct {
	Credits int `json:"credits"`
}

// CheckBalance reports whether the balance covers cost credits.
func (cb *CreditBalance) CheckBalance(cost int) bool {
	if cb.Credits < cost {
		return false
	}

	return true
}

// EstimatedCredits returns the credit cost of a campaign expected to produce posts replies.
func EstimatedCredits(posts int) int {
	if posts <= 0 {
		posts = DefaultEstimatedPosts
	}
	return posts * CreditsPerPost
}
