package domain

import "time"

// Review is a product review awaiting moderation.
type Review struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductId     int64     `gorm:"index" json:"product_id"`
	ProductName   string    `gorm:"size:200" json:"product_name"`
	CustomerName  string    `gorm:"size:100" json:"customer_name"`
	CustomerEmail string    `gorm:"size:120" json:"customer_email"`
	Rating        int       `json:"rating"`
	Comment       string    `gorm:"type:text" json:"comment"`
	Status        string    `gorm:"size:20;default:pending" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)
