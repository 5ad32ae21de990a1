package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/suranga-printers/print-shop-api/models"
	"github.com/suranga-printers/print-shop-api/quote"
)

// File is an attachment picked by the customer
type File struct {
	Name    string
	Content io.Reader
}

// ReviewInput is a public review submission
type ReviewInput struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, request{method: http.MethodGet, path: path}, out)
}

// ListServices returns the active services
func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	return services, c.get(ctx, "/services", &services)
}

// ListDeliveryAreas returns the active delivery areas and their fees
func (c *Client) ListDeliveryAreas(ctx context.Context) ([]models.DeliveryArea, error) {
	var areas []models.DeliveryArea
	return areas, c.get(ctx, "/delivery-areas", &areas)
}

// ListPortfolio returns the active gallery items
func (c *Client) ListPortfolio(ctx context.Context) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	return items, c.get(ctx, "/portfolio", &items)
}

// ListReviews returns the approved reviews
func (c *Client) ListReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	return reviews, c.get(ctx, "/reviews", &reviews)
}

// GetSettings returns the shop contact details
func (c *Client) GetSettings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	if err := c.get(ctx, "/settings", &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SubmitReview posts a review; it stays hidden until an admin approves it
func (c *Client) SubmitReview(ctx context.Context, input ReviewInput) (*models.Review, error) {
	req, err := jsonRequest(http.MethodPost, "/reviews", input)
	if err != nil {
		return nil, err
	}
	var review models.Review
	if err := c.do(ctx, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// SubmitQuote sends a validated payload with up to quote.MaxFiles attachments.
// Extra files are dropped.
func (c *Client) SubmitQuote(ctx context.Context, payload *quote.Payload, files []File) (*models.Quote, error) {
	if payload == nil {
		return nil, fmt.Errorf("quote payload is required")
	}

	fields := make([][2]string, 0, 13)
	for _, f := range payload.Fields() {
		fields = append(fields, [2]string{f.Name, f.Value})
	}

	var parts []part
	for _, f := range quote.CapFiles(files) {
		parts = append(parts, part{field: quote.FilesField, filename: f.Name, content: f.Content})
	}

	body, contentType, err := multipartBody(fields, parts)
	if err != nil {
		return nil, err
	}

	var created models.Quote
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/quotes",
		body:        body,
		contentType: contentType,
	}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
