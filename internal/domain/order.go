package domain

import "time"

// OrderItem is a cart line frozen at checkout time.
type OrderItem struct {
	ProductId    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Quantity     int     `json:"quantity"`
	PricePerItem float64 `json:"price_per_item"`
	ItemTotal    float64 `json:"item_total"`
}

// Order is a placed customer order. OrderRef is the short public reference
// shown to customers; ID is the internal key.
type Order struct {
	ID              int64             `json:"id,string"`
	OrderRef        string            `gorm:"column:order_id;size:50;uniqueIndex" json:"order_id"`
	UserId          int64             `gorm:"index;not null" json:"user_id,string"`
	Items           []OrderItem       `gorm:"serializer:json" json:"items"`
	TotalUSD        float64           `gorm:"column:total_usd" json:"total_usd"`
	ShippingAddress map[string]string `gorm:"serializer:json" json:"shipping_address"`
	PaymentMethod   string            `gorm:"size:50" json:"payment_method"`
	PaymentStatus   string            `gorm:"size:20;default:pending" json:"payment_status"`
	OrderStatus     string            `gorm:"size:20;default:processing" json:"order_status"`
	StatusNote      string            `gorm:"type:text" json:"status_note"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"

	OrderStatusProcessing = "processing"
)
