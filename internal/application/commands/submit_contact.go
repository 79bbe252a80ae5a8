package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/NorthPeak-Exteriors/site-backend/internal/application/dto"
	"github.com/NorthPeak-Exteriors/site-backend/internal/application/errs"
	"github.com/NorthPeak-Exteriors/site-backend/internal/infra/mail"
	"github.com/google/uuid"
)

const confirmationMessage = "Quote request sent"

// strictFields are checked trimmed and reported in full; simpleFields are
// checked as-is and only the first missing one is reported.
var (
	strictFields = []string{"name", "email", "message", "service"}
	simpleFields = []string{"name", "email", "phone", "message"}
)

type SubmitContact struct {
	sender mail.Sender
	cfg    *mail.MailConfig
	strict bool
}

func NewSubmitContact(sender mail.Sender, cfg *mail.MailConfig, strict bool) *SubmitContact {
	return &SubmitContact{sender: sender, cfg: cfg, strict: strict}
}

// Execute validates one submission, formats the quote-request email and
// relays it in a single synchronous SMTP call. A rejected submission never
// reaches the wire; a failed send is not retried.
func (c *SubmitContact) Execute(ctx context.Context, req dto.ContactRequest) (dto.ContactResponse, error) {
	if missing := c.missingFields(req); len(missing) > 0 {
		return dto.ContactResponse{}, errs.ValidationError{Fields: missing}
	}
	if err := c.cfg.Validate(); err != nil {
		return dto.ContactResponse{}, errs.ConfigError{Reason: "Mail server not configured"}
	}

	data := mail.QuoteRequestData{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		Service:    strings.TrimSpace(req.Service),
		Message:    req.Message,
		ReceivedAt: time.Now(),
	}
	msg := &mail.Message{
		From:    c.cfg.Username,
		To:      c.cfg.Recipient,
		ReplyTo: data.Email,
		Subject: data.GetSubject(),
		Body:    data.GetBody(),
	}

	// Submission id correlates log lines; payload contents stay out of logs.
	submissionID := uuid.New()
	slog.Info("relaying quote request", "submission", submissionID, "service", data.Service)
	if err := c.sender.Send(ctx, msg); err != nil {
		slog.Error("quote request relay failed", "submission", submissionID, "err", err)
		return dto.ContactResponse{}, errs.DeliveryError{Err: err}
	}
	return dto.ContactResponse{Success: true, Message: confirmationMessage}, nil
}

func (c *SubmitContact) missingFields(req dto.ContactRequest) []string {
	fields := map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"phone":   req.Phone,
		"service": req.Service,
		"message": req.Message,
	}
	if c.strict {
		var missing []string
		for _, f := range strictFields {
			if strings.TrimSpace(fields[f]) == "" {
				missing = append(missing, f)
			}
		}
		return missing
	}
	for _, f := range simpleFields {
		if fields[f] == "" {
			return []string{f}
		}
	}
	return nil
}
