package models

import "time"

// Service is an offering listed on the public services page
type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Category    string    `gorm:"not null;default:'General'" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	Featured    bool      `gorm:"not null;default:false" json:"featured"`
	Active      bool      `gorm:"not null" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}

// DeliveryArea is a named zone with a flat delivery fee in LKR
type DeliveryArea struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Area      string    `gorm:"not null" json:"area"`
	FeeLKR    int       `gorm:"not null;default:0;check:fee_lkr >= 0" json:"fee_lkr"`
	Active    bool      `gorm:"not null" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the DeliveryArea model
func (DeliveryArea) TableName() string {
	return "delivery_areas"
}

// PortfolioItem is a sample of past work shown in the gallery
type PortfolioItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Category    string    `gorm:"not null;default:'Marketing'" json:"category"`
	Tag         string    `json:"tag"`
	Description string    `gorm:"type:text" json:"description"`
	Featured    bool      `gorm:"not null;default:false" json:"featured"`
	Active      bool      `gorm:"not null" json:"active"`
	ImageKey    string    `gorm:"not null" json:"image_key"`
	ImageURL    string    `gorm:"-" json:"image_url,omitempty"` // computed from the storage backend
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the PortfolioItem model
func (PortfolioItem) TableName() string {
	return "portfolio_items"
}
