package services

import (
	"context"
	"fmt"
	"strings"

	"ict_forex_app_go/config"
	"ict_forex_app_go/logger"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	From     string
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
	Tags     map[string]string
}

// EmailSender delivers a single email and returns the provider message ID
type EmailSender interface {
	Send(ctx context.Context, email *Email) (string, error)
}

// NewEmailSender picks the sender for the configuration: the console sender in test
// mode, Resend otherwise. A missing API key is reported as a ConfigurationError.
func NewEmailSender(cfg *config.Config) (EmailSender, error) {
	if cfg.EmailTestMode {
		return ConsoleSender{}, nil
	}
	if cfg.ResendAPIKey == "" {
		return nil, &ConfigurationError{Setting: "RESEND_API_KEY"}
	}
	return NewResendSender(cfg.ResendAPIKey), nil
}

// ResendSender sends email through the Resend API
type ResendSender struct {
	client *resend.Client
}

// NewResendSender creates a Resend-backed sender
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey)}
}

// Send sends email via Resend
func (s *ResendSender) Send(ctx context.Context, email *Email) (string, error) {
	params := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}
	for name, value := range email.Tags {
		params.Tags = append(params.Tags, resend.Tag{Name: name, Value: value})
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to send email via Resend: %w", err)
	}
	return sent.Id, nil
}

// ConsoleSender logs emails instead of sending them (development mode)
type ConsoleSender struct{}

// Send logs the email and reports a synthetic message ID
func (ConsoleSender) Send(ctx context.Context, email *Email) (string, error) {
	logEmailToConsole(email)
	return "console", nil
}

// SendEmail validates the message and hands it to sender
func SendEmail(ctx context.Context, sender EmailSender, email *Email) (string, error) {
	if len(email.To) == 0 {
		return "", fmt.Errorf("email must have at least one recipient")
	}
	if email.HTMLBody == "" && email.TextBody == "" {
		return "", fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	id, err := sender.Send(ctx, email)
	if err != nil {
		return "", err
	}

	logger.WithComponent("email").WithFields(logger.Fields{
		"message_id": id,
		"to":         email.To,
	}).Info("Email sent")
	return id, nil
}

// logEmailToConsole logs email details in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	logger.WithComponent("email").Infof("\n%s\nEMAIL (Development Mode - Not Actually Sent)\n%s\nFrom: %s\nTo: %v\nReply-To: %s\nSubject: %s\n\n%s\n%s",
		separator, separator, email.From, email.To, email.ReplyTo, email.Subject, email.TextBody, separator)
}
