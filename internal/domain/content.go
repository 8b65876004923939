package domain

import "time"

// SiteContent is a key/value entry editable from the admin console
// (hero text, contact details, footer and so on).
type SiteContent struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"size:100;uniqueIndex" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SiteContent) TableName() string {
	return "site_content"
}

// DefaultSiteContent holds the fallback values returned when a key has
// never been edited.
var DefaultSiteContent = map[string]string{
	"hero_title":        "Queen Koba Skincare",
	"hero_subtitle":     "Luxurious skincare for melanin-rich skin",
	"about_title":       "Our Story",
	"about_description": "Queen Koba is dedicated to creating premium skincare products.",
	"contact_email":     "info@queenkoba.com",
	"contact_phone":     "0119 559 180",
	"contact_whatsapp":  "0119 559 180",
	"instagram_handle":  "@queenkoba",
	"footer_text":       "© 2024 Queen Koba. All rights reserved.",
}
