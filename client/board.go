package client

import (
	"context"

	"github.com/suranga-printers/print-shop-api/models"
)

// QuoteBoard is the admin quote list. A successful refresh replaces the list
// wholesale; a failed one leaves it as it was. Overlapping refreshes are not
// sequenced, so the last response to arrive wins.
type QuoteBoard struct {
	client *Client
	quotes []models.Quote

	// Status filters the list when set
	Status models.QuoteStatus
}

// NewQuoteBoard creates an empty board
func NewQuoteBoard(c *Client) *QuoteBoard {
	return &QuoteBoard{client: c}
}

// Quotes returns the displayed quotes
func (b *QuoteBoard) Quotes() []models.Quote {
	return b.quotes
}

// Refresh reloads the list
func (b *QuoteBoard) Refresh(ctx context.Context) error {
	quotes, err := b.client.ListQuotes(ctx, b.Status)
	if err != nil {
		return err
	}
	b.quotes = quotes
	return nil
}

// SetStatus persists a new status immediately and updates the displayed row
func (b *QuoteBoard) SetStatus(ctx context.Context, id uint, status models.QuoteStatus) error {
	updated, err := b.client.UpdateQuoteStatus(ctx, id, status)
	if err != nil {
		return err
	}
	b.replace(*updated)
	return nil
}

// SetNote persists the admin note immediately and updates the displayed row
func (b *QuoteBoard) SetNote(ctx context.Context, id uint, note string) error {
	updated, err := b.client.UpdateQuoteNote(ctx, id, note)
	if err != nil {
		return err
	}
	b.replace(*updated)
	return nil
}

func (b *QuoteBoard) replace(q models.Quote) {
	for i := range b.quotes {
		if b.quotes[i].ID == q.ID {
			b.quotes[i] = q
			return
		}
	}
}

// Draft is a value loaded from the backend and edited locally. It is dirty
// once Value differs from what was loaded or last saved.
type Draft[T comparable] struct {
	loaded T
	Value  T
}

// Load replaces both the baseline and the working value
func (d *Draft[T]) Load(v T) {
	d.loaded = v
	d.Value = v
}

// Dirty reports whether there are unsaved edits
func (d *Draft[T]) Dirty() bool {
	return d.Value != d.loaded
}

// Reset discards unsaved edits
func (d *Draft[T]) Reset() {
	d.Value = d.loaded
}

// SettingsEditor is the admin settings page
type SettingsEditor struct {
	client *Client
	Draft[models.Settings]
}

// NewSettingsEditor creates an editor with nothing loaded
func NewSettingsEditor(c *Client) *SettingsEditor {
	return &SettingsEditor{client: c}
}

// Load fetches the current settings, discarding unsaved edits
func (e *SettingsEditor) Load(ctx context.Context) error {
	settings, err := e.client.GetAdminSettings(ctx)
	if err != nil {
		return err
	}
	e.Draft.Load(*settings)
	return nil
}

// Save sends the edited settings when there are changes. It reports whether a
// request was made.
func (e *SettingsEditor) Save(ctx context.Context) (bool, error) {
	if !e.Dirty() {
		return false, nil
	}
	saved, err := e.client.PutSettings(ctx, e.Value)
	if err != nil {
		return true, err
	}
	e.Draft.Load(*saved)
	return true, nil
}
