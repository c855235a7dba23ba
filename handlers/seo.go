package handlers

import "ict_forex_app_go/models"

const (
	baseURL        = "https://icttradinghub.com"
	defaultOGImage = "https://icttradinghub.com/static/images/og-image.png"
)

// SEO configurations for public pages
var pageSEO = map[string]*models.SEO{
	"landing": {
		Title:       "ICT Forex Trading | Smart Liquidity. Smart Risk. Smart Results.",
		Description: "Learn ICT (Inner Circle Trading) concepts: liquidity sweeps, fair value gaps, order blocks and strict risk management for the global FX markets.",
		Keywords:    "ICT, inner circle trading, forex, liquidity, fair value gap, order block, risk management",
		Canonical:   baseURL + "/",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
		Locale:      "en",
	},
}

// GetSEO returns the SEO configuration for a page
func GetSEO(page string) *models.SEO {
	if seo, ok := pageSEO[page]; ok {
		// Return a copy to avoid mutations
		copy := *seo
		return &copy
	}
	return nil
}
