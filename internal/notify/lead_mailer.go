package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/stoneworks/lead-intake/internal/intake"
	"github.com/stoneworks/lead-intake/pkg/logging"
)

// LeadMailerConfig holds the destination and branding for lead emails.
type LeadMailerConfig struct {
	To           string // owner inbox that receives new-lead emails
	BusinessName string
}

// LeadMailer renders a captured lead into an owner-facing email and hands it
// to an EmailSender. It implements the submission pipeline's Notifier.
type LeadMailer struct {
	sender       EmailSender
	to           string
	businessName string
	logger       *logging.Logger
}

// NewLeadMailer creates a mailer that sends to the configured owner inbox.
// Returns nil when no sender or destination is configured, which callers
// treat as notifications disabled.
func NewLeadMailer(sender EmailSender, cfg LeadMailerConfig, logger *logging.Logger) *LeadMailer {
	if sender == nil || cfg.To == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.BusinessName == "" {
		cfg.BusinessName = "Stoneworks Interlock"
	}
	return &LeadMailer{
		sender:       sender,
		to:           cfg.To,
		businessName: cfg.BusinessName,
		logger:       logger,
	}
}

// Send emails the lead to the owner inbox.
func (m *LeadMailer) Send(ctx context.Context, payload *intake.LeadPayload) error {
	if payload == nil {
		return fmt.Errorf("notify: lead payload cannot be nil")
	}

	msg := EmailMessage{
		To:      m.to,
		Subject: fmt.Sprintf("New quote request: %s — %s", payload.ServiceName, payload.FullName),
		Body:    renderLeadBody(payload, m.businessName),
	}
	if err := m.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("notify: lead email failed: %w", err)
	}

	m.logger.Info("lead email sent", "to", m.to, "service", payload.Service)
	return nil
}

func renderLeadBody(p *intake.LeadPayload, businessName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "A new quote request has come in!\n\n")
	fmt.Fprintf(&b, "Name: %s\n", p.FullName)
	fmt.Fprintf(&b, "Phone: %s\n", p.Phone)
	fmt.Fprintf(&b, "Email: %s\n", p.Email)
	fmt.Fprintf(&b, "Postal Code: %s\n", p.PostalCode)
	fmt.Fprintf(&b, "City: %s\n", p.City)
	if p.Address != "" {
		fmt.Fprintf(&b, "Address: %s\n", p.Address)
	}
	fmt.Fprintf(&b, "Preferred Contact: %s\n", p.PreferredContact)
	fmt.Fprintf(&b, "Service: %s\n", p.ServiceName)
	fmt.Fprintf(&b, "Submitted: %s\n", p.SubmittedAt)

	if p.ProjectDetails != "" {
		fmt.Fprintf(&b, "\nProject Details:\n%s\n", p.ProjectDetails)
	}
	if p.Message != "" {
		fmt.Fprintf(&b, "\nMessage:\n%s\n", p.Message)
	}
	if len(p.PhotoURLs) > 0 {
		fmt.Fprintf(&b, "\nPhotos (%d):\n", len(p.PhotoURLs))
		for _, u := range p.PhotoURLs {
			fmt.Fprintf(&b, "%s\n", u)
		}
	}

	fmt.Fprintf(&b, "\n— %s", businessName)
	return b.String()
}

var _ intake.Notifier = (*LeadMailer)(nil)
