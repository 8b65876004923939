package domain

import "time"

// TicketReply is a single reply on a support ticket thread.
type TicketReply struct {
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// SupportTicket is a customer support request.
type SupportTicket struct {
	ID            int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName  string        `gorm:"size:100" json:"customer_name"`
	CustomerEmail string        `gorm:"size:120" json:"customer_email"`
	Subject       string        `gorm:"size:200" json:"subject"`
	Message       string        `gorm:"type:text" json:"message"`
	Priority      string        `gorm:"size:20;default:medium" json:"priority"`
	Status        string        `gorm:"size:20;default:open" json:"status"`
	Replies       []TicketReply `gorm:"serializer:json" json:"replies"`
	CreatedAt     time.Time     `json:"created_at"`
}

func (SupportTicket) TableName() string {
	return "support_tickets"
}
