package handlers

import (
	"time"

	"ict_forex_app_go/config"
	"ict_forex_app_go/models"
	"ict_forex_app_go/services"
	"ict_forex_app_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the landing page with the backtest card at its initial frame
func LandingHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	frame := services.InitialFrame(cfg.BacktestSeed)

	seo := GetSEO("landing")
	if seo != nil {
		seo.Rebase(baseURL, cfg.AppURL)
	}

	component := pages.Landing(pages.LandingView{
		SEO:    seo,
		Frame:  frame,
		Chart:  services.ProjectDefault(frame.Series),
		Levels: models.ExperienceLevels,
		Year:   time.Now().Year(),
	})
	return component.Render(c.Request().Context(), c.Response().Writer)
}
