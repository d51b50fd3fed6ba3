package domain

import "time"

// Review is a user-submitted rating and comment for a business.
// Reviews are never edited or deleted; the only mutation after creation is
// incrementing the Helpful counter.
type Review struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	Rating     float64   `json:"rating"` // 0.5-5.0 in half-star steps
	Comment    string    `json:"comment"`
	Helpful    int       `json:"helpful"`
	Verified   bool      `json:"verified"` // always false on creation
	CreatedAt  time.Time `json:"created_at"`
}

// MarkHelpful increments the helpful counter. There is no upper bound and no
// idempotence; callers guard against double votes.
func (r *Review) MarkHelpful() {
	r.Helpful++
}

// ValidRating reports whether a rating is within 0.5-5.0 on half-star
// granularity.
func ValidRating(rating float64) bool {
	if rating < 0.5 || rating > 5 {
		return false
	}
	doubled := rating * 2
	return doubled == float64(int(doubled))
}
