package models

import (
	"time"
)

// AdminUser is a shop staff account allowed into the admin console
type AdminUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for the AdminUser model
func (AdminUser) TableName() string {
	return "admin_users"
}

// All returns every model for auto-migration.
func All() []interface{} {
	return []interface{}{
		&AdminUser{},
		&Service{},
		&DeliveryArea{},
		&Quote{},
		&QuoteFile{},
		&Review{},
		&PortfolioItem{},
		&Settings{},
	}
}
