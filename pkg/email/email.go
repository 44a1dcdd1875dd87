package email

import (
	"bytes"
	"fmt"
	"html/template"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"

	"go-portfolio-backend/config"
)

// EmailService delivers contact form submissions to the site owner via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromName  string
	fromEmail string
	toEmail   string
}

// ContactEmailData holds the sanitized submission rendered into the email
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}

// NewEmailService creates a new email service from the SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.EmailHost,
		port:      cfg.EmailPort,
		username:  cfg.EmailUser,
		password:  cfg.EmailPassword,
		fromName:  cfg.FromName,
		fromEmail: cfg.FromEmail,
		toEmail:   cfg.ContactTo,
	}
}

// contactEmailTemplate is the HTML variant of the notification. MessageHTML
// is pre-escaped with newlines converted to <br>.
const contactEmailTemplate = `<h2>New Portfolio Contact Form Submission</h2>
<p><strong>Name:</strong> {{.SenderName}}</p>
<p><strong>Email:</strong> {{.SenderEmail}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<h3>Message:</h3>
<p>{{.MessageHTML}}</p>
<hr>
<p><small>Sent from the portfolio website contact form.</small></p>`

const contactEmailText = `Name: %s
Email: %s
Subject: %s

Message:
%s
`

// SendContactEmail dispatches the submission to the configured recipient with
// Reply-To set to the submitter so the owner can answer directly.
func (s *EmailService) SendContactEmail(data ContactEmailData) error {
	tmpl, err := template.New("contact").Parse(contactEmailTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var htmlBody bytes.Buffer
	if err := tmpl.Execute(&htmlBody, struct {
		ContactEmailData
		MessageHTML template.HTML
	}{
		ContactEmailData: data,
		MessageHTML: template.HTML(strings.ReplaceAll(
			template.HTMLEscapeString(data.Message), "\n", "<br>")),
	}); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	textBody := fmt.Sprintf(contactEmailText,
		data.SenderName, data.SenderEmail, data.Subject, data.Message)

	msg, err := s.buildMessage(data, textBody, htmlBody.String())
	if err != nil {
		return fmt.Errorf("failed to build email message: %w", err)
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{s.toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildMessage assembles a multipart/alternative MIME message with plain-text
// and HTML renderings of the submission.
func (s *EmailService) buildMessage(data ContactEmailData, textBody, htmlBody string) ([]byte, error) {
	var buf bytes.Buffer
	alt := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %q <%s>\r\n", s.fromName, s.fromEmail)
	fmt.Fprintf(&buf, "To: %s\r\n", s.toEmail)
	fmt.Fprintf(&buf, "Reply-To: %s\r\n", data.SenderEmail)
	fmt.Fprintf(&buf, "Subject: Portfolio Contact: %s\r\n", data.Subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n", alt.Boundary())
	fmt.Fprintf(&buf, "\r\n")

	// Plain text part first: MIME readers prefer the last alternative
	textPart, err := alt.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=UTF-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := textPart.Write([]byte(textBody)); err != nil {
		return nil, err
	}

	htmlPart, err := alt.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=UTF-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := htmlPart.Write([]byte(htmlBody)); err != nil {
		return nil, err
	}

	if err := alt.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// IsConfigured reports whether SMTP host and user are present. When false the
// contact pipeline skips email dispatch entirely.
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != ""
}
