package client

import (
	"context"
	"fmt"

	"github.com/suranga-printers/print-shop-api/models"
	"github.com/suranga-printers/print-shop-api/quote"
)

// QuoteForm is the customer quote page: catalog lookups, local validation,
// the delivery fee preview, and submission.
type QuoteForm struct {
	client *Client
	files  []File

	Form     quote.Form
	Services []models.Service
	Areas    []models.DeliveryArea

	// Reference is the backend-assigned id of the last successful submission
	Reference string
	// Warning is set when the backend could not price the delivery area
	Warning string
}

// NewQuoteForm returns a form with the page defaults
func NewQuoteForm(c *Client) *QuoteForm {
	return &QuoteForm{
		client: c,
		Form: quote.Form{
			ContactMethod: models.ContactWhatsApp,
			Fulfillment:   models.FulfillmentPickup,
			Quantity:      1,
		},
	}
}

// Load fetches services and delivery areas and preselects the first service.
// On failure the form keeps what it had.
func (f *QuoteForm) Load(ctx context.Context) error {
	services, err := f.client.ListServices(ctx)
	if err != nil {
		return err
	}
	areas, err := f.client.ListDeliveryAreas(ctx)
	if err != nil {
		return err
	}

	f.Services = services
	f.Areas = areas
	if f.Form.ServiceName == "" && len(services) > 0 {
		f.Form.ServiceName = services[0].Name
	}
	return nil
}

// SetFiles keeps the first quote.MaxFiles files and drops the rest
func (f *QuoteForm) SetFiles(files []File) {
	f.files = quote.CapFiles(files)
}

// Files returns the attachments that will be sent
func (f *QuoteForm) Files() []File {
	return f.files
}

// Fee previews the delivery charge from the loaded areas
func (f *QuoteForm) Fee() quote.Fee {
	return quote.DeliveryFee(f.Form.Fulfillment, f.Form.DeliveryArea, f.Areas)
}

// Submit validates locally and sends the quote. A validation failure returns
// a *quote.ValidationError without any request being made. On success the
// job details and attachments are cleared while the contact fields stay.
func (f *QuoteForm) Submit(ctx context.Context) (*models.Quote, error) {
	f.Reference = ""
	f.Warning = ""

	payload, err := quote.BuildPayload(f.Form, f.Areas)
	if err != nil {
		return nil, err
	}

	created, err := f.client.SubmitQuote(ctx, payload, f.files)
	if err != nil {
		return nil, err
	}

	f.Reference = created.Reference
	if created.DeliveryFeeUnresolved {
		f.Warning = fmt.Sprintf("The delivery fee for %q will be confirmed by the shop", created.DeliveryArea)
	}

	f.Form.Size = ""
	f.Form.Color = ""
	f.Form.Paper = ""
	f.Form.Finishing = ""
	f.Form.Notes = ""
	f.Form.DeliveryArea = ""
	f.files = nil

	return created, nil
}
