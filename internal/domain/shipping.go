package domain

import "time"

// ShippingZone defines a delivery region and its flat rate.
type ShippingZone struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:100" json:"name"`
	Rate         float64   `json:"rate"`
	Currency     string    `gorm:"size:10" json:"currency"`
	DeliveryDays string    `gorm:"size:50" json:"delivery_days"`
	Active       bool      `gorm:"default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (ShippingZone) TableName() string {
	return "shipping_zones"
}
