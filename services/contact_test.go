package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ict_forex_app_go/config"
	"ict_forex_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender records sent emails and optionally fails
type fakeSender struct {
	mu    sync.Mutex
	sent  []*Email
	err   error
	block bool
}

func (f *fakeSender) Send(ctx context.Context, email *Email) (string, error) {
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, email)
	return "msg_123", nil
}

func newTestRelay(sender EmailSender) *ContactRelay {
	return NewContactRelayWithSender(sender, "ICT Website <onboarding@resend.dev>", "admin@icttradinghub.com", time.Second)
}

func TestContactRelaySuccessWithPlaceholders(t *testing.T) {
	sender := &fakeSender{}
	relay := newTestRelay(sender)

	id, err := relay.Submit(context.Background(), models.ContactSubmission{Email: "a@b.com", Message: "hi"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, sender.sent, 1)
	email := sender.sent[0]
	assert.Equal(t, "ICT Website <onboarding@resend.dev>", email.From)
	assert.Equal(t, []string{"admin@icttradinghub.com"}, email.To)
	assert.Equal(t, "a@b.com", email.ReplyTo)
	assert.Equal(t, ContactSubject, email.Subject)
	assert.Equal(t, "Name: -\nEmail: a@b.com\nExperience: -\n\nMessage:\nhi", email.TextBody)
	assert.Equal(t, id, email.Tags["submission_id"])
}

func TestContactRelayAllFields(t *testing.T) {
	sender := &fakeSender{}
	relay := newTestRelay(sender)

	_, err := relay.Submit(context.Background(), models.ContactSubmission{
		Name:    "Ada <script>alert(1)</script>",
		Email:   " ada@example.com ",
		Level:   "Experienced (2+ years)",
		Message: "I'd like to learn <b>order blocks</b> & FVGs",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	body := sender.sent[0].TextBody
	assert.Contains(t, body, "Name: Ada\n")
	assert.Contains(t, body, "Email: ada@example.com\n")
	assert.Contains(t, body, "Experience: Experienced (2+ years)\n")
	assert.Contains(t, body, "Message:\nI'd like to learn order blocks & FVGs")
	assert.NotContains(t, body, "<script>")
	assert.Equal(t, "ada@example.com", sender.sent[0].ReplyTo)
}

func TestContactRelayValidation(t *testing.T) {
	sender := &fakeSender{}
	relay := newTestRelay(sender)

	tests := []struct {
		name    string
		sub     models.ContactSubmission
		missing []string
	}{
		{"missing email", models.ContactSubmission{Message: "hi"}, []string{"email"}},
		{"missing message", models.ContactSubmission{Email: "a@b.com"}, []string{"message"}},
		{"blank fields", models.ContactSubmission{Email: "  ", Message: "\n"}, []string{"email", "message"}},
		{"markup only", models.ContactSubmission{Email: "<b></b>", Message: "<img src=x>"}, []string{"email", "message"}},
		{"markup only message", models.ContactSubmission{Email: "a@b.com", Message: " <script>alert(1)</script> "}, []string{"message"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := relay.Submit(context.Background(), tt.sub)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.missing, verr.Fields)
		})
	}
	assert.Empty(t, sender.sent, "no email should be attempted")
}

func TestContactRelayDeliveryFailure(t *testing.T) {
	cause := errors.New("provider rejected")
	relay := newTestRelay(&fakeSender{err: cause})

	_, err := relay.Submit(context.Background(), models.ContactSubmission{Email: "a@b.com", Message: "hi"})
	var derr *DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.ErrorIs(t, err, cause)
}

func TestContactRelayTimeout(t *testing.T) {
	relay := NewContactRelayWithSender(&fakeSender{block: true}, "from@example.com", "to@example.com", 20*time.Millisecond)

	start := time.Now()
	_, err := relay.Submit(context.Background(), models.ContactSubmission{Email: "a@b.com", Message: "hi"})
	var derr *DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestContactRelayMissingAPIKey(t *testing.T) {
	relay := NewContactRelay(&config.Config{
		EmailTestMode:    false,
		ResendAPIKey:     "",
		EmailFrom:        "onboarding@resend.dev",
		ContactRecipient: "admin@icttradinghub.com",
	})

	// Validation still runs first
	_, err := relay.Submit(context.Background(), models.ContactSubmission{Message: "hi"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = relay.Submit(context.Background(), models.ContactSubmission{Email: "a@b.com", Message: "hi"})
	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "RESEND_API_KEY not configured", err.Error())
}

func TestContactRelayTestMode(t *testing.T) {
	relay := NewContactRelay(&config.Config{
		EmailTestMode:    true,
		EmailFrom:        "onboarding@resend.dev",
		EmailFromName:    "ICT Website",
		ContactRecipient: "admin@icttradinghub.com",
	})

	id, err := relay.Submit(context.Background(), models.ContactSubmission{Email: "a@b.com", Message: "hi"})
	assert.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestContactRelaySanitize(t *testing.T) {
	relay := newTestRelay(&fakeSender{})

	sub := relay.Sanitize(models.ContactSubmission{
		Name:    " <i>Ada</i> ",
		Email:   "<b>ada@example.com</b>",
		Level:   "New to Forex",
		Message: "a &amp; b <br>",
	})
	assert.Equal(t, models.ContactSubmission{
		Name:    "Ada",
		Email:   "ada@example.com",
		Level:   "New to Forex",
		Message: "a & b",
	}, sub)

	email := relay.BuildContactEmail(sub)
	assert.Equal(t, "ada@example.com", email.ReplyTo)
	assert.Equal(t, "Name: Ada\nEmail: ada@example.com\nExperience: New to Forex\n\nMessage:\na & b", email.TextBody)
}
