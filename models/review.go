package models

import "time"

// Review is a customer testimonial. New reviews stay hidden until approved.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Approved  bool      `gorm:"not null;default:false;index" json:"approved"`
	Featured  bool      `gorm:"not null;default:false" json:"featured"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}
