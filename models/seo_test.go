package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSEORebase(t *testing.T) {
	seo := &SEO{
		Canonical: "https://icttradinghub.com/",
		OGImage:   "https://icttradinghub.com/static/images/og-image.png",
	}

	seo.Rebase("https://icttradinghub.com", "http://localhost:8080")
	assert.Equal(t, "http://localhost:8080/", seo.Canonical)
	assert.Equal(t, "http://localhost:8080/static/images/og-image.png", seo.OGImage)

	seo.Rebase("https://icttradinghub.com", "")
	assert.Equal(t, "http://localhost:8080/", seo.Canonical)
}

func TestSEOFallbacks(t *testing.T) {
	seo := DefaultSEO("ICT Forex Trading", "Smart liquidity")
	assert.Equal(t, "ICT Forex Trading", seo.GetOGTitle())
	assert.Equal(t, "Smart liquidity", seo.GetOGDesc())

	seo.OGTitle = "Share title"
	seo.OGDesc = "Share desc"
	assert.Equal(t, "Share title", seo.GetOGTitle())
	assert.Equal(t, "Share desc", seo.GetOGDesc())
}
