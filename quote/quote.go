// Package quote holds the quote intake rules shared by the API server and the
// Go client: field validation, delivery fee lookup, the attachment cap and the
// multipart payload layout.
package quote

import (
	"strconv"
	"strings"

	"github.com/suranga-printers/print-shop-api/models"
)

// MaxFiles is the number of attachments a quote may carry.
const MaxFiles = 5

// FilesField is the multipart field name used for every attachment part.
const FilesField = "files"

// ValidationError is a rule violation detected before anything is persisted.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation failures, in the order the rules are checked.
var (
	ErrNameRequired         = &ValidationError{Code: "NAME_REQUIRED", Message: "name required"}
	ErrPhoneRequired        = &ValidationError{Code: "PHONE_REQUIRED", Message: "phone required"}
	ErrServiceRequired      = &ValidationError{Code: "SERVICE_REQUIRED", Message: "service required"}
	ErrInvalidQuantity      = &ValidationError{Code: "INVALID_QUANTITY", Message: "quantity must be at least 1"}
	ErrDeliveryAreaRequired = &ValidationError{Code: "DELIVERY_AREA_REQUIRED", Message: "delivery area required"}
	ErrInvalidContactMethod = &ValidationError{Code: "INVALID_CONTACT_METHOD", Message: "contact method must be WhatsApp or Call"}
	ErrInvalidFulfillment   = &ValidationError{Code: "INVALID_FULFILLMENT", Message: "fulfillment must be Pickup or Delivery"}
)

// Form is what a customer fills in on the quote page.
type Form struct {
	CustomerName  string `form:"customer_name" json:"customer_name"`
	Phone         string `form:"phone" json:"phone"`
	ContactMethod string `form:"contact_method" json:"contact_method"`
	ServiceName   string `form:"service_name" json:"service_name"`
	Quantity      int    `form:"quantity" json:"quantity"`
	Size          string `form:"size" json:"size"`
	Color         string `form:"color" json:"color"`
	Paper         string `form:"paper" json:"paper"`
	Finishing     string `form:"finishing" json:"finishing"`
	Notes         string `form:"notes" json:"notes"`
	Fulfillment   string `form:"fulfillment" json:"fulfillment"`
	DeliveryArea  string `form:"delivery_area" json:"delivery_area"`
}

// normalized trims the identifying fields and fills in the select defaults.
func (f Form) normalized() Form {
	f.CustomerName = strings.TrimSpace(f.CustomerName)
	f.Phone = strings.TrimSpace(f.Phone)
	f.ServiceName = strings.TrimSpace(f.ServiceName)
	f.DeliveryArea = strings.TrimSpace(f.DeliveryArea)
	if f.ContactMethod == "" {
		f.ContactMethod = models.ContactWhatsApp
	}
	if f.Fulfillment == "" {
		f.Fulfillment = models.FulfillmentPickup
	}
	return f
}

// Validate checks the form and returns the first rule that fails, or nil.
func Validate(f Form) error {
	f = f.normalized()

	switch {
	case f.CustomerName == "":
		return ErrNameRequired
	case f.Phone == "":
		return ErrPhoneRequired
	case f.ServiceName == "":
		return ErrServiceRequired
	case f.Quantity <= 0:
		return ErrInvalidQuantity
	case f.Fulfillment == models.FulfillmentDelivery && f.DeliveryArea == "":
		return ErrDeliveryAreaRequired
	}

	if f.ContactMethod != models.ContactWhatsApp && f.ContactMethod != models.ContactCall {
		return ErrInvalidContactMethod
	}
	if f.Fulfillment != models.FulfillmentPickup && f.Fulfillment != models.FulfillmentDelivery {
		return ErrInvalidFulfillment
	}
	return nil
}

// Fee is a computed delivery charge. Resolved is false when delivery was
// requested to an area missing from the active pricing table; Amount is then 0
// and the price has to be confirmed by the shop.
type Fee struct {
	Amount   int
	Resolved bool
}

// DeliveryFee prices fulfillment to area using the active entries of areas.
func DeliveryFee(fulfillment, area string, areas []models.DeliveryArea) Fee {
	if fulfillment != models.FulfillmentDelivery {
		return Fee{Amount: 0, Resolved: true}
	}
	for _, a := range areas {
		if a.Active && a.Area == area {
			return Fee{Amount: a.FeeLKR, Resolved: true}
		}
	}
	return Fee{Amount: 0, Resolved: false}
}

// CapFiles keeps the first MaxFiles entries and drops the rest.
func CapFiles[T any](files []T) []T {
	if len(files) <= MaxFiles {
		return files
	}
	return files[:MaxFiles:MaxFiles]
}

// Payload is a validated form with its computed delivery fee.
type Payload struct {
	Form
	DeliveryFeeLKR int
	FeeResolved    bool
}

// Field is one multipart form value.
type Field struct {
	Name  string
	Value string
}

// BuildPayload validates f and prices it against areas.
func BuildPayload(f Form, areas []models.DeliveryArea) (*Payload, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}

	f = f.normalized()
	if f.Fulfillment != models.FulfillmentDelivery {
		f.DeliveryArea = ""
	}
	fee := DeliveryFee(f.Fulfillment, f.DeliveryArea, areas)

	return &Payload{
		Form:           f,
		DeliveryFeeLKR: fee.Amount,
		FeeResolved:    fee.Resolved,
	}, nil
}

// Fields returns the multipart text fields in submission order.
func (p *Payload) Fields() []Field {
	return []Field{
		{"customer_name", p.CustomerName},
		{"phone", p.Phone},
		{"contact_method", p.ContactMethod},
		{"service_name", p.ServiceName},
		{"quantity", strconv.Itoa(p.Quantity)},
		{"size", p.Size},
		{"color", p.Color},
		{"paper", p.Paper},
		{"finishing", p.Finishing},
		{"notes", p.Notes},
		{"fulfillment", p.Fulfillment},
		{"delivery_area", p.DeliveryArea},
		{"delivery_fee_lkr", strconv.Itoa(p.DeliveryFeeLKR)},
	}
}

// Quote converts the payload into a new quote record in the Received state.
func (p *Payload) Quote() models.Quote {
	return models.Quote{
		CustomerName:          p.CustomerName,
		Phone:                 p.Phone,
		ContactMethod:         p.ContactMethod,
		ServiceName:           p.ServiceName,
		Quantity:              p.Quantity,
		Size:                  p.Size,
		Color:                 p.Color,
		Paper:                 p.Paper,
		Finishing:             p.Finishing,
		Notes:                 p.Notes,
		Fulfillment:           p.Fulfillment,
		DeliveryArea:          p.DeliveryArea,
		DeliveryFeeLKR:        p.DeliveryFeeLKR,
		DeliveryFeeUnresolved: !p.FeeResolved,
		Status:                models.StatusReceived,
	}
}
