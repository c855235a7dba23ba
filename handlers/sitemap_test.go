package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSitemapHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)

	err := GetSitemapHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")

	body := rec.Body.String()
	assert.Contains(t, body, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, body, "<loc>https://icttradinghub.com/</loc>")
	assert.Contains(t, body, "http://www.sitemaps.org/schemas/sitemap/0.9")
}
