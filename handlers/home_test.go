package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLandingHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/", nil)

	err := LandingHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, strings.ToLower(body), "<!doctype html>")
	assert.Contains(t, body, "ICT Forex Trading")
	assert.Contains(t, body, `data-seed="20251215"`)
	assert.Contains(t, body, `id="bt-line"`)
	assert.Contains(t, body, `id="contact-form"`)
	assert.Contains(t, body, `rel="canonical"`)
	assert.Contains(t, body, `href="https://icttradinghub.com/"`)
	assert.Contains(t, body, `class="speed active" data-speed="1"`)
	assert.Contains(t, body, "/static/js/backtest.js?v=")
	assert.Contains(t, body, "New to Forex")
	assert.NotContains(t, body, "session_id")
}

func TestGetSEO(t *testing.T) {
	seo := GetSEO("landing")
	assert.NotNil(t, seo)
	seo.Title = "changed"
	assert.NotEqual(t, "changed", GetSEO("landing").Title)

	assert.Nil(t, GetSEO("missing"))
}
