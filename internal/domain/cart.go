package domain

import "time"

// CartItem is one product line in a customer's cart. A (user, product) pair
// is unique; adding the same product again bumps Quantity.
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserId    int64     `gorm:"index;not null" json:"user_id,string"`
	ProductId int64     `gorm:"index;not null" json:"product_id"`
	Quantity  int       `gorm:"default:1" json:"quantity"`
	AddedAt   time.Time `json:"added_at"`

	Product *Product `gorm:"foreignKey:ProductId" json:"-"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
