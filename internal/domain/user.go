package domain

import "time"

// User covers both storefront customers and admin console operators,
// discriminated by Role.
type User struct {
	ID                int64     `json:"id,string" form:"id"`
	Name              string    `gorm:"size:100" json:"name" form:"name"`
	Username          string    `gorm:"size:80" json:"username" form:"username"`
	Email             string    `gorm:"size:120;uniqueIndex;not null" json:"email" form:"email"`
	Phone             string    `gorm:"size:20" json:"phone" form:"phone"`
	PasswordHash      string    `gorm:"size:255;not null" json:"-"`
	Role              string    `gorm:"size:20;default:customer;index" json:"role" form:"role"`
	Country           string    `gorm:"size:50;default:Kenya" json:"country" form:"country"`
	PreferredCurrency string    `gorm:"size:10;default:KES" json:"preferred_currency" form:"preferred_currency"`
	Status            string    `gorm:"size:20;default:active" json:"status" form:"status"`
	Permissions       []string  `gorm:"serializer:json" json:"permissions"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

const (
	RoleCustomer   = "customer"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// IsAdmin reports whether the user may access the admin console.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
