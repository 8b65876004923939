package domain

import "time"

// Promotion is a discount code. Type is "percentage" or "fixed".
type Promotion struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string     `gorm:"size:50;uniqueIndex" json:"code"`
	Discount  float64    `json:"discount"`
	Type      string     `gorm:"size:20" json:"type"`
	Status    string     `gorm:"size:20;default:active" json:"status"`
	Uses      int        `gorm:"default:0" json:"uses"`
	Limit     int        `gorm:"column:use_limit" json:"limit"`
	Expires   *time.Time `json:"expires"`
	CreatedAt time.Time  `json:"created_at"`
}

func (Promotion) TableName() string {
	return "promotions"
}

const (
	PromotionStatusActive  = "active"
	PromotionStatusExpired = "expired"
)

// Expired reports whether the promotion's expiry has passed.
func (p *Promotion) Expired(now time.Time) bool {
	return p.Expires != nil && p.Expires.Before(now)
}

// LimitReached reports whether the use limit is exhausted.
func (p *Promotion) LimitReached() bool {
	return p.Limit > 0 && p.Uses >= p.Limit
}
