package models

import (
	"time"
)

// QuoteStatus is the production stage of a quote/order.
type QuoteStatus string

const (
	StatusReceived       QuoteStatus = "Received"
	StatusDesigning      QuoteStatus = "Designing"
	StatusPrinting       QuoteStatus = "Printing"
	StatusReady          QuoteStatus = "Ready"
	StatusOutForDelivery QuoteStatus = "OutForDelivery"
	StatusCompleted      QuoteStatus = "Completed"
	StatusCancelled      QuoteStatus = "Cancelled"
)

// QuoteStatuses lists every status in the order the admin console presents them.
var QuoteStatuses = []QuoteStatus{
	StatusReceived,
	StatusDesigning,
	StatusPrinting,
	StatusReady,
	StatusOutForDelivery,
	StatusCompleted,
	StatusCancelled,
}

// Valid reports whether s is one of the known statuses.
func (s QuoteStatus) Valid() bool {
	for _, known := range QuoteStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether no further work is expected on the quote.
// Nothing enforces this; admins may still move a terminal quote.
func (s QuoteStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

const (
	ContactWhatsApp = "WhatsApp"
	ContactCall     = "Call"

	FulfillmentPickup   = "Pickup"
	FulfillmentDelivery = "Delivery"
)

// Quote represents a customer quote request that evolves into an order via its status
type Quote struct {
	ID                    uint        `gorm:"primaryKey" json:"id"`
	Reference             string      `gorm:"uniqueIndex;not null" json:"reference"` // public "Q-XXXXXXXX" id shown to the customer
	CustomerName          string      `gorm:"not null" json:"customer_name"`
	Phone                 string      `gorm:"not null" json:"phone"`
	ContactMethod         string      `gorm:"not null;default:'WhatsApp'" json:"contact_method"`
	ServiceName           string      `gorm:"not null" json:"service_name"` // free text, no FK to services
	Quantity              int         `gorm:"not null;check:quantity > 0" json:"quantity"`
	Size                  string      `json:"size"`
	Color                 string      `json:"color"`
	Paper                 string      `json:"paper"`
	Finishing             string      `json:"finishing"`
	Notes                 string      `gorm:"type:text" json:"notes"`
	Fulfillment           string      `gorm:"not null;default:'Pickup'" json:"fulfillment"`
	DeliveryArea          string      `json:"delivery_area"` // free text, no FK to delivery_areas
	DeliveryFeeLKR        int         `gorm:"not null;default:0;check:delivery_fee_lkr >= 0" json:"delivery_fee_lkr"`
	DeliveryFeeUnresolved bool        `gorm:"not null;default:false" json:"delivery_fee_unresolved"`
	Files                 []QuoteFile `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE" json:"files"`
	Status                QuoteStatus `gorm:"not null;default:'Received';index" json:"status"`
	AdminNote             string      `gorm:"type:text" json:"admin_note"`
	CreatedAt             time.Time   `gorm:"index" json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

// TableName specifies the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}

// QuoteFile is an attachment uploaded with a quote
type QuoteFile struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	QuoteID     uint   `gorm:"not null;index" json:"quote_id"`
	Filename    string `gorm:"not null" json:"filename"` // original client filename
	Key         string `gorm:"not null" json:"path"`     // storage key, server-relative for local storage
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	URL         string `gorm:"-" json:"url,omitempty"` // computed from the storage backend
}

// TableName specifies the table name for the QuoteFile model
func (QuoteFile) TableName() string {
	return "quote_files"
}
