package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"ict_forex_app_go/config"
	"ict_forex_app_go/metrics"
	"ict_forex_app_go/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubRelay(sender services.EmailSender) *services.ContactRelay {
	return services.NewContactRelayWithSender(sender, "ICT Website <onboarding@resend.dev>", "admin@icttradinghub.com", time.Second)
}

func postJSON(body string) (echo.Context, *httptest.ResponseRecorder) {
	_, c, rec := setupEcho(http.MethodPost, "/api/contact", strings.NewReader(body))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return c, rec
}

func TestContactHandler(t *testing.T) {
	t.Run("MethodNotAllowed", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			_, c, rec := setupEcho(method, "/api/contact", nil)
			err := ContactHandler(newStubRelay(&stubSender{}))(c)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
			assert.Equal(t, http.MethodPost, rec.Header().Get(echo.HeaderAllow))
		}
	})

	t.Run("Success", func(t *testing.T) {
		sender := &stubSender{}
		before := testutil.ToFloat64(metrics.ContactSubmissions.WithLabelValues("success"))

		c, rec := postJSON(`{"name":"Ana","email":"ana@example.com","level":"New to Forex","message":"Teach me"}`)
		err := ContactHandler(newStubRelay(sender))(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())

		require.Len(t, sender.sent, 1)
		assert.Equal(t, "ana@example.com", sender.sent[0].ReplyTo)
		assert.Equal(t, "Name: Ana\nEmail: ana@example.com\nExperience: New to Forex\n\nMessage:\nTeach me", sender.sent[0].TextBody)
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.ContactSubmissions.WithLabelValues("success")))
	})

	t.Run("FormEncoded", func(t *testing.T) {
		sender := &stubSender{}
		form := url.Values{"email": {"ana@example.com"}, "message": {"hello"}}

		_, c, rec := setupEcho(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

		err := ContactHandler(newStubRelay(sender))(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, sender.sent, 1)
	})

	t.Run("MissingFields", func(t *testing.T) {
		sender := &stubSender{}
		c, rec := postJSON(`{"name":"Ana","email":"   ","message":""}`)

		err := ContactHandler(newStubRelay(sender))(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Missing fields"}`, rec.Body.String())
		assert.Empty(t, sender.sent)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		c, rec := postJSON(`{"email":`)

		err := ContactHandler(newStubRelay(&stubSender{}))(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
	})

	t.Run("NotConfigured", func(t *testing.T) {
		relay := services.NewContactRelay(&config.Config{EmailTestMode: false})
		c, rec := postJSON(`{"email":"ana@example.com","message":"hi"}`)

		err := ContactHandler(relay)(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"RESEND_API_KEY not configured"}`, rec.Body.String())
	})

	t.Run("NotConfiguredStillValidatesFirst", func(t *testing.T) {
		relay := services.NewContactRelay(&config.Config{EmailTestMode: false})
		c, rec := postJSON(`{"email":"ana@example.com"}`)

		err := ContactHandler(relay)(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("DeliveryFailed", func(t *testing.T) {
		sender := &stubSender{err: errors.New("resend: 422 invalid from address")}
		c, rec := postJSON(`{"email":"ana@example.com","message":"hi"}`)

		err := ContactHandler(newStubRelay(sender))(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Email failed","details":"resend: 422 invalid from address"}`, rec.Body.String())
	})

	t.Run("DeliveryFailedInProduction", func(t *testing.T) {
		sender := &stubSender{err: errors.New("resend: 500")}
		c, rec := postJSON(`{"email":"ana@example.com","message":"hi"}`)
		c.Set("config", &config.Config{Environment: "production"})

		err := ContactHandler(newStubRelay(sender))(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Email failed"}`, rec.Body.String())
	})
}
