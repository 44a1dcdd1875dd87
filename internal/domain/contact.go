package domain

import (
	"context"
	"strings"
)

// ContactRequest represents a contact form submission as received.
// Validation is rule-based in the usecase so every violation is reported at
// once, not just the first; no binding tags here on purpose.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactLogEntry is the redacted trace persisted per accepted submission.
// The message body is never stored, only its length, and the client address
// is always the redaction placeholder.
type ContactLogEntry struct {
	Timestamp     string `json:"timestamp"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Subject       string `json:"subject"`
	MessageLength int    `json:"messageLength"`
	IP            string `json:"ip"`
}

// RedactedIP is recorded in place of the real client address.
const RedactedIP = "hidden-for-privacy"

// ContactLogLimit bounds the rolling submission log; oldest entries are
// evicted first.
const ContactLogLimit = 100

// SubmissionStore persists the rolling submission log as a whole. The
// read-modify-write is not transactional; concurrent submissions may lose an
// entry, which is acceptable for best-effort analytics.
type SubmissionStore interface {
	// ReadAll returns the stored entries. A missing or malformed store reads
	// as empty, not as an error.
	ReadAll(ctx context.Context) ([]ContactLogEntry, error)
	// WriteAll replaces the store contents.
	WriteAll(ctx context.Context, entries []ContactLogEntry) error
}

// ValidationError carries all field violations of a rejected submission
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact validates, sanitizes, logs, and dispatches a submission.
	// Returns *ValidationError when the submission is rejected; any other
	// error means email dispatch failed.
	SubmitContact(ctx context.Context, req *ContactRequest) error
}
