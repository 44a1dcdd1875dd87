package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/sanitize"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// ContactMailer is the slice of the email service the contact pipeline needs
type ContactMailer interface {
	IsConfigured() bool
	SendContactEmail(data email.ContactEmailData) error
}

type contactUsecase struct {
	store    domain.SubmissionStore
	mailer   ContactMailer
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase. The validator must have
// the custom rules from pkg/validation registered.
func NewContactUsecase(store domain.SubmissionStore, mailer ContactMailer, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		store:    store,
		mailer:   mailer,
		validate: validate,
	}
}

// contactForm carries the trimmed submission through validation. Field order
// determines the order of reported violations.
type contactForm struct {
	Name    string `validate:"required,min=2,max=50"`
	Email   string `validate:"required,loose_email"`
	Subject string `validate:"required,min=3,max=100"`
	Message string `validate:"required,min=10,max=1000"`
}

// SubmitContact runs the submission pipeline: validate, sanitize, best-effort
// log, conditional email dispatch. A log failure never fails the submission;
// a dispatch failure does.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) error {
	form := contactForm{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if err := uc.validate.Struct(form); err != nil {
		return &domain.ValidationError{Violations: validation.FormatContactErrors(err)}
	}

	sanitized := email.ContactEmailData{
		SenderName:  sanitize.Text(req.Name),
		SenderEmail: sanitize.Email(req.Email),
		Subject:     sanitize.Text(req.Subject),
		Message:     sanitize.Text(req.Message),
	}

	// The log is analytics, not an audit trail: a failed write is reported
	// server-side and otherwise ignored.
	if err := uc.logSubmission(ctx, sanitized); err != nil {
		logger.Log.Warn("failed to log contact submission", "error", err)
	}

	if uc.mailer.IsConfigured() {
		if err := uc.mailer.SendContactEmail(sanitized); err != nil {
			return fmt.Errorf("failed to send contact email: %w", err)
		}
	}

	return nil
}

// logSubmission appends a redacted entry to the rolling store, evicting the
// oldest entries beyond the limit. The message body itself is never stored.
func (uc *contactUsecase) logSubmission(ctx context.Context, data email.ContactEmailData) error {
	entries, err := uc.store.ReadAll(ctx)
	if err != nil {
		entries = []domain.ContactLogEntry{}
	}

	entries = append(entries, domain.ContactLogEntry{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Name:          data.SenderName,
		Email:         data.SenderEmail,
		Subject:       data.Subject,
		MessageLength: utf8.RuneCountInString(data.Message),
		IP:            domain.RedactedIP,
	})
	if len(entries) > domain.ContactLogLimit {
		entries = entries[len(entries)-domain.ContactLogLimit:]
	}

	return uc.store.WriteAll(ctx, entries)
}
