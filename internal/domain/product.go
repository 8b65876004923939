package domain

import "time"

// CurrencyPrice is a localized price entry derived from the USD base price.
type CurrencyPrice struct {
	Amount  float64 `json:"amount"`
	Symbol  string  `json:"symbol"`
	Country string  `json:"country"`
}

// PriceMap maps a currency code (KES, UGX, ...) to its localized price.
type PriceMap map[string]CurrencyPrice

// Product is a catalog item. Prices holds the pre-computed localized prices
// so the storefront never converts currencies on read.
type Product struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string    `gorm:"size:200;not null;index" json:"name"`
	Description        string    `gorm:"type:text" json:"description"`
	Category           string    `gorm:"size:50" json:"category"`
	BasePriceUSD       float64   `gorm:"not null" json:"base_price_usd"`
	Prices             PriceMap  `gorm:"serializer:json" json:"prices"`
	InStock            bool      `gorm:"default:true" json:"in_stock"`
	ImageURL           string    `gorm:"size:500" json:"image_url"`
	DiscountPercentage float64   `gorm:"default:0" json:"discount_percentage"`
	OnSale             bool      `gorm:"default:false" json:"on_sale"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
