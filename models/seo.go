package models

import "strings"

// SEO contains metadata for search engine optimization and social sharing
type SEO struct {
	Title       string // Page title
	Description string // Meta description
	Keywords    string // Meta keywords (comma-separated)
	Canonical   string // Canonical URL
	OGTitle     string // Open Graph title (defaults to Title if empty)
	OGDesc      string // Open Graph description (defaults to Description if empty)
	OGImage     string // Open Graph image URL
	OGType      string // Open Graph type
	TwitterCard string // Twitter card type (summary, summary_large_image)
	NoIndex     bool   // If true, adds noindex directive
	Locale      string // Page language
}

// DefaultSEO returns SEO for a single-language landing site
func DefaultSEO(title, description string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		OGType:      "website",
		TwitterCard: "summary_large_image",
		Locale:      "en",
	}
}

// Rebase points absolute page and image URLs at appURL, keeping their paths
func (s *SEO) Rebase(from, appURL string) *SEO {
	if appURL == "" || from == appURL {
		return s
	}
	if strings.HasPrefix(s.Canonical, from) {
		s.Canonical = appURL + strings.TrimPrefix(s.Canonical, from)
	}
	if strings.HasPrefix(s.OGImage, from) {
		s.OGImage = appURL + strings.TrimPrefix(s.OGImage, from)
	}
	return s
}

// GetOGTitle returns OGTitle or falls back to Title
func (s *SEO) GetOGTitle() string {
	if s.OGTitle != "" {
		return s.OGTitle
	}
	return s.Title
}

// GetOGDesc returns OGDesc or falls back to Description
func (s *SEO) GetOGDesc() string {
	if s.OGDesc != "" {
		return s.OGDesc
	}
	return s.Description
}
