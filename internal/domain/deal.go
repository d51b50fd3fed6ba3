package domain

import "time"

// DealType classifies a promotional deal.
type DealType string

// Deal types.
const (
	DealPercentage DealType = "percentage"
	DealBOGO       DealType = "bogo"
	DealFixed      DealType = "fixed"
	DealFreebie    DealType = "freebie"
)

// Valid reports whether the deal type is one of the known values.
func (t DealType) Valid() bool {
	switch t {
	case DealPercentage, DealBOGO, DealFixed, DealFreebie:
		return true
	}
	return false
}

// Deal is a time-boxed promotional offer tied to a business.
//
// IsActive is an operator switch independent of the validity window; a deal is
// displayed as active only when the flag is set, the current time is inside
// [ValidFrom, ExpiresAt], and redemptions remain.
type Deal struct {
	ID                 string    `json:"id"`
	BusinessID         string    `json:"business_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	DiscountPercent    int       `json:"discount_percent"`
	OriginalPrice      float64   `json:"original_price,omitempty"`
	DealPrice          float64   `json:"deal_price,omitempty"`
	Code               string    `json:"code"`
	TermsAndConditions string    `json:"terms_and_conditions"`
	ValidFrom          time.Time `json:"valid_from"`
	ExpiresAt          time.Time `json:"expires_at"`
	IsActive           bool      `json:"is_active"`
	DealType           DealType  `json:"deal_type"`
	Redemptions        int       `json:"redemptions"`
	MaxRedemptions     int       `json:"max_redemptions"`
	CreatedAt          time.Time `json:"created_at"`
}

// IsActiveAt reports whether the deal should be displayed as active at t.
func (d *Deal) IsActiveAt(t time.Time) bool {
	return d.IsActive &&
		!t.Before(d.ValidFrom) &&
		!t.After(d.ExpiresAt) &&
		d.Redemptions < d.MaxRedemptions
}

// Redeem increments the redemption counter if capacity remains.
// Redemption deliberately ignores IsActive and the validity window; only the
// counter guards it. Returns false once Redemptions == MaxRedemptions.
func (d *Deal) Redeem() bool {
	if d.Redemptions >= d.MaxRedemptions {
		return false
	}
	d.Redemptions++
	return true
}
