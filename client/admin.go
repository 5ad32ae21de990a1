package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/suranga-printers/print-shop-api/models"
)

// ServiceInput creates or replaces a service
type ServiceInput struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description"`
	Featured    bool   `json:"featured"`
	Active      bool   `json:"active"`
}

// DeliveryAreaInput creates or replaces a delivery area
type DeliveryAreaInput struct {
	Area   string `json:"area"`
	FeeLKR int    `json:"fee_lkr"`
	Active bool   `json:"active"`
}

// PortfolioInput creates or replaces a portfolio item. Image is required on
// create and optional on update, where it replaces the current image.
type PortfolioInput struct {
	Title       string
	Category    string
	Tag         string
	Description string
	Featured    bool
	Active      bool
	Image       *File
}

// Dashboard is the admin overview
type Dashboard struct {
	Counts struct {
		Received       int64 `json:"received"`
		Printing       int64 `json:"printing"`
		OutForDelivery int64 `json:"out_for_delivery"`
		PendingReviews int64 `json:"pending_reviews"`
	} `json:"counts"`
	RecentQuotes   []models.Quote  `json:"recent_quotes"`
	PendingReviews []models.Review `json:"pending_reviews"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func idPath(prefix string, id uint) string {
	return prefix + "/" + strconv.FormatUint(uint64(id), 10)
}

func (c *Client) admin(ctx context.Context, method, path string, payload, out interface{}) error {
	req, err := jsonRequest(method, "/admin"+path, payload)
	if err != nil {
		return err
	}
	req.admin = true
	return c.do(ctx, req, out)
}

// Login exchanges admin credentials for a token stored in the session
func (c *Client) Login(ctx context.Context, email, password string) error {
	req, err := jsonRequest(http.MethodPost, "/admin/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}

	var resp loginResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return err
	}
	c.session.Set(resp.Token, resp.ExpiresAt)
	return nil
}

// Logout forgets the session token
func (c *Client) Logout() {
	c.session.Clear()
}

// GetDashboard returns the admin overview
func (c *Client) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var dash Dashboard
	if err := c.admin(ctx, http.MethodGet, "/dashboard", nil, &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

// ListQuotes returns quotes newest first, optionally filtered by status
func (c *Client) ListQuotes(ctx context.Context, status models.QuoteStatus) ([]models.Quote, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": {string(status)}}
	}

	var quotes []models.Quote
	err := c.do(ctx, request{method: http.MethodGet, path: "/admin/quotes", query: query, admin: true}, &quotes)
	return quotes, err
}

// GetQuote returns one quote with its attachments
func (c *Client) GetQuote(ctx context.Context, id uint) (*models.Quote, error) {
	var q models.Quote
	if err := c.admin(ctx, http.MethodGet, idPath("/quotes", id), nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// UpdateQuoteStatus moves a quote to status. Any status may follow any other.
func (c *Client) UpdateQuoteStatus(ctx context.Context, id uint, status models.QuoteStatus) (*models.Quote, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown quote status %q", status)
	}
	var q models.Quote
	err := c.admin(ctx, http.MethodPatch, idPath("/quotes", id), map[string]string{"status": string(status)}, &q)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// UpdateQuoteNote replaces the admin note on a quote
func (c *Client) UpdateQuoteNote(ctx context.Context, id uint, note string) (*models.Quote, error) {
	var q models.Quote
	if err := c.admin(ctx, http.MethodPatch, idPath("/quotes", id), map[string]string{"admin_note": note}, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// ListAllServices returns every service including inactive ones
func (c *Client) ListAllServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	return services, c.admin(ctx, http.MethodGet, "/services", nil, &services)
}

// CreateService adds a service
func (c *Client) CreateService(ctx context.Context, input ServiceInput) (*models.Service, error) {
	var s models.Service
	if err := c.admin(ctx, http.MethodPost, "/services", input, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateService replaces every editable field of a service
func (c *Client) UpdateService(ctx context.Context, id uint, input ServiceInput) (*models.Service, error) {
	var s models.Service
	if err := c.admin(ctx, http.MethodPut, idPath("/services", id), input, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteService removes a service permanently
func (c *Client) DeleteService(ctx context.Context, id uint) error {
	return c.admin(ctx, http.MethodDelete, idPath("/services", id), nil, nil)
}

// ListAllDeliveryAreas returns every delivery area including inactive ones
func (c *Client) ListAllDeliveryAreas(ctx context.Context) ([]models.DeliveryArea, error) {
	var areas []models.DeliveryArea
	return areas, c.admin(ctx, http.MethodGet, "/delivery-areas", nil, &areas)
}

// CreateDeliveryArea adds a delivery area
func (c *Client) CreateDeliveryArea(ctx context.Context, input DeliveryAreaInput) (*models.DeliveryArea, error) {
	var a models.DeliveryArea
	if err := c.admin(ctx, http.MethodPost, "/delivery-areas", input, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateDeliveryArea replaces every editable field of a delivery area
func (c *Client) UpdateDeliveryArea(ctx context.Context, id uint, input DeliveryAreaInput) (*models.DeliveryArea, error) {
	var a models.DeliveryArea
	if err := c.admin(ctx, http.MethodPut, idPath("/delivery-areas", id), input, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteDeliveryArea removes a delivery area permanently. Existing quotes keep their area text.
func (c *Client) DeleteDeliveryArea(ctx context.Context, id uint) error {
	return c.admin(ctx, http.MethodDelete, idPath("/delivery-areas", id), nil, nil)
}

// ListAllPortfolio returns every portfolio item including inactive ones
func (c *Client) ListAllPortfolio(ctx context.Context) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	return items, c.admin(ctx, http.MethodGet, "/portfolio", nil, &items)
}

func (c *Client) sendPortfolio(ctx context.Context, method, path string, input PortfolioInput) (*models.PortfolioItem, error) {
	fields := [][2]string{
		{"title", input.Title},
		{"category", input.Category},
		{"tag", input.Tag},
		{"description", input.Description},
		{"featured", strconv.FormatBool(input.Featured)},
		{"active", strconv.FormatBool(input.Active)},
	}
	var parts []part
	if input.Image != nil {
		parts = append(parts, part{field: "image", filename: input.Image.Name, content: input.Image.Content})
	}

	body, contentType, err := multipartBody(fields, parts)
	if err != nil {
		return nil, err
	}

	var item models.PortfolioItem
	if err := c.do(ctx, request{
		method:      method,
		path:        "/admin" + path,
		body:        body,
		contentType: contentType,
		admin:       true,
	}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreatePortfolioItem uploads a new gallery item
func (c *Client) CreatePortfolioItem(ctx context.Context, input PortfolioInput) (*models.PortfolioItem, error) {
	return c.sendPortfolio(ctx, http.MethodPost, "/portfolio", input)
}

// UpdatePortfolioItem replaces a gallery item's fields and optionally its image
func (c *Client) UpdatePortfolioItem(ctx context.Context, id uint, input PortfolioInput) (*models.PortfolioItem, error) {
	return c.sendPortfolio(ctx, http.MethodPut, idPath("/portfolio", id), input)
}

// DeletePortfolioItem removes a gallery item and its image
func (c *Client) DeletePortfolioItem(ctx context.Context, id uint) error {
	return c.admin(ctx, http.MethodDelete, idPath("/portfolio", id), nil, nil)
}

// ListAllReviews returns every review including unapproved ones
func (c *Client) ListAllReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	return reviews, c.admin(ctx, http.MethodGet, "/reviews", nil, &reviews)
}

// SetReviewApproved toggles approval without touching featured
func (c *Client) SetReviewApproved(ctx context.Context, id uint, approved bool) (*models.Review, error) {
	return c.moderate(ctx, id, map[string]bool{"approved": approved})
}

// SetReviewFeatured toggles featured without touching approval
func (c *Client) SetReviewFeatured(ctx context.Context, id uint, featured bool) (*models.Review, error) {
	return c.moderate(ctx, id, map[string]bool{"featured": featured})
}

func (c *Client) moderate(ctx context.Context, id uint, patch map[string]bool) (*models.Review, error) {
	var r models.Review
	if err := c.admin(ctx, http.MethodPatch, idPath("/reviews", id), patch, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteReview removes a review permanently
func (c *Client) DeleteReview(ctx context.Context, id uint) error {
	return c.admin(ctx, http.MethodDelete, idPath("/reviews", id), nil, nil)
}

// GetAdminSettings loads the settings for editing
func (c *Client) GetAdminSettings(ctx context.Context) (*models.Settings, error) {
	var s models.Settings
	if err := c.admin(ctx, http.MethodGet, "/settings", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// PutSettings replaces the shop settings
func (c *Client) PutSettings(ctx context.Context, settings models.Settings) (*models.Settings, error) {
	var saved models.Settings
	if err := c.admin(ctx, http.MethodPut, "/settings", settings, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}
