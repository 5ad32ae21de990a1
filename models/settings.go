package models

import "time"

// SettingsID is the primary key of the single settings row.
const SettingsID = 1

// BusinessHours holds opening hours as display text
type BusinessHours struct {
	Weekday string `json:"weekday"`
	Weekend string `json:"weekend"`
}

// Settings holds the shop contact details shown across the site
type Settings struct {
	ID        uint          `gorm:"primaryKey" json:"-"`
	ShopName  string        `json:"shop_name"`
	Address   string        `json:"address"`
	Phone     string        `json:"phone"`
	WhatsApp  string        `json:"whatsapp"`
	Hours     BusinessHours `gorm:"embedded;embeddedPrefix:hours_" json:"hours"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TableName specifies the table name for the Settings model
func (Settings) TableName() string {
	return "settings"
}

// DefaultSettings returns the values shown before an admin has saved settings.
func DefaultSettings() Settings {
	return Settings{
		ID:       SettingsID,
		ShopName: "Suranga Printers – Fast Print",
		Address:  "Kandy - Jaffna Hwy, Dambulla",
		Phone:    "0662285425",
		WhatsApp: "94772285425",
		Hours: BusinessHours{
			Weekday: "8:30 AM – 7:00 PM",
			Weekend: "9:00 AM – 1:00 PM",
		},
	}
}
