package services

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"ict_forex_app_go/config"
	"ict_forex_app_go/logger"
	"ict_forex_app_go/models"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// ContactSubject is the fixed subject of relayed contact form emails
const ContactSubject = "New Contact Form Submission"

const placeholder = "-"

// ContactRelay validates contact submissions and forwards them to the site operator
type ContactRelay struct {
	sender    EmailSender
	senderErr error
	from      string
	recipient string
	timeout   time.Duration
	policy    *bluemonday.Policy
}

// NewContactRelay builds a relay from configuration. A configuration problem does not
// fail construction; it is reported on each submission instead.
func NewContactRelay(cfg *config.Config) *ContactRelay {
	sender, err := NewEmailSender(cfg)
	r := NewContactRelayWithSender(sender, cfg.SenderAddress(), cfg.ContactRecipient, cfg.EmailTimeout)
	r.senderErr = err
	return r
}

// NewContactRelayWithSender builds a relay around an explicit sender
func NewContactRelayWithSender(sender EmailSender, from, recipient string, timeout time.Duration) *ContactRelay {
	if timeout <= 0 {
		timeout = config.DefaultEmailTimeout
	}
	return &ContactRelay{
		sender:    sender,
		from:      from,
		recipient: recipient,
		timeout:   timeout,
		policy:    bluemonday.StrictPolicy(),
	}
}

// Submit validates the submission and relays it. It returns the submission ID.
func (r *ContactRelay) Submit(ctx context.Context, sub models.ContactSubmission) (string, error) {
	sub = r.Sanitize(sub)
	if err := ValidateContact(sub); err != nil {
		return "", err
	}
	if r.senderErr != nil {
		return "", r.senderErr
	}
	if r.sender == nil {
		return "", &ConfigurationError{Setting: "RESEND_API_KEY"}
	}

	id := uuid.New().String()
	email := r.BuildContactEmail(sub)
	email.Tags = map[string]string{"submission_id": id}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	log := logger.WithComponent("contact").WithField("submission_id", id)
	if _, err := SendEmail(ctx, r.sender, email); err != nil {
		log.WithError(err).Error("Failed to relay contact submission")
		return id, &DeliveryError{Err: err}
	}

	log.Info("Contact submission relayed")
	return id, nil
}

// ValidateContact checks the required fields of a submission
func ValidateContact(sub models.ContactSubmission) error {
	var missing []string
	if strings.TrimSpace(sub.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(sub.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// Sanitize strips markup from every field and trims surrounding whitespace
func (r *ContactRelay) Sanitize(sub models.ContactSubmission) models.ContactSubmission {
	return models.ContactSubmission{
		Name:    r.clean(sub.Name),
		Email:   r.clean(sub.Email),
		Level:   r.clean(sub.Level),
		Message: r.clean(sub.Message),
	}
}

// BuildContactEmail formats the plain-text operator notification from a sanitized submission
func (r *ContactRelay) BuildContactEmail(sub models.ContactSubmission) *Email {
	body := fmt.Sprintf("Name: %s\nEmail: %s\nExperience: %s\n\nMessage:\n%s",
		orPlaceholder(sub.Name),
		sub.Email,
		orPlaceholder(sub.Level),
		sub.Message,
	)

	return &Email{
		From:     r.from,
		To:       []string{r.recipient},
		ReplyTo:  sub.Email,
		Subject:  ContactSubject,
		TextBody: body,
	}
}

// clean strips markup from user input and trims surrounding whitespace
func (r *ContactRelay) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(r.policy.Sanitize(s)))
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
