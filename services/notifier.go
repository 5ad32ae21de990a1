package services

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/suranga-printers/print-shop-api/config"
	"github.com/suranga-printers/print-shop-api/models"
	"gopkg.in/gomail.v2"
)

// Notifier tells the shop about new customer activity
type Notifier interface {
	QuoteReceived(quote models.Quote) error
}

// NoopNotifier discards notifications
type NoopNotifier struct{}

func (NoopNotifier) QuoteReceived(models.Quote) error { return nil }

// MailNotifier emails the shop inbox through SMTP
type MailNotifier struct {
	dialer *gomail.Dialer
	from   string
	to     string
	origin string
}

// NewNotifier returns a MailNotifier when SMTP is configured, otherwise a NoopNotifier
func NewNotifier(cfg *config.Config) Notifier {
	if !cfg.NotificationsEnabled() {
		log.Info().Msg("SMTP not configured, quote notifications disabled")
		return NoopNotifier{}
	}

	from := cfg.SMTPUser
	if from == "" {
		from = cfg.NotifyEmail
	}
	return &MailNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   from,
		to:     cfg.NotifyEmail,
		origin: cfg.PublicOrigin,
	}
}

// QuoteReceived sends a summary of a new quote
func (n *MailNotifier) QuoteReceived(quote models.Quote) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", QuoteSubject(quote))
	m.SetBody("text/plain", QuoteSummary(quote, n.origin))

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send quote notification: %w", err)
	}
	return nil
}

// QuoteSubject is the notification subject line
func QuoteSubject(quote models.Quote) string {
	return fmt.Sprintf("New quote %s: %s x%d", quote.Reference, quote.ServiceName, quote.Quantity)
}

// QuoteSummary renders a plain-text description of quote
func QuoteSummary(quote models.Quote, origin string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reference: %s\n", quote.Reference)
	fmt.Fprintf(&b, "Customer: %s (%s, prefers %s)\n", quote.CustomerName, quote.Phone, quote.ContactMethod)
	fmt.Fprintf(&b, "Service: %s x%d\n", quote.ServiceName, quote.Quantity)
	for _, spec := range []struct{ label, value string }{
		{"Size", quote.Size},
		{"Color", quote.Color},
		{"Paper", quote.Paper},
		{"Finishing", quote.Finishing},
		{"Notes", quote.Notes},
	} {
		if spec.value != "" {
			fmt.Fprintf(&b, "%s: %s\n", spec.label, spec.value)
		}
	}

	if quote.Fulfillment == models.FulfillmentDelivery {
		fmt.Fprintf(&b, "Delivery: %s, fee LKR %d", quote.DeliveryArea, quote.DeliveryFeeLKR)
		if quote.DeliveryFeeUnresolved {
			b.WriteString(" (area not in pricing table, confirm fee)")
		}
		b.WriteString("\n")
	} else {
		b.WriteString("Pickup from shop\n")
	}

	for _, f := range quote.Files {
		link := f.URL
		if strings.HasPrefix(link, "/") {
			link = origin + link
		}
		fmt.Fprintf(&b, "File: %s %s\n", f.Filename, link)
	}
	return b.String()
}

var notifierInstance Notifier = NoopNotifier{}

// GetNotifier returns the configured notifier
func GetNotifier() Notifier {
	return notifierInstance
}

// SetNotifier sets the notifier (also used by tests)
func SetNotifier(n Notifier) {
	notifierInstance = n
}
