package handlers

import (
	"errors"
	"net/http"

	"ict_forex_app_go/config"
	"ict_forex_app_go/logger"
	"ict_forex_app_go/metrics"
	"ict_forex_app_go/models"
	"ict_forex_app_go/services"

	"github.com/labstack/echo/v4"
)

// ContactHandler relays landing page contact submissions by email.
// The route is registered for every method; only POST is accepted.
func ContactHandler(relay *services.ContactRelay) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Method != http.MethodPost {
			err := &services.MethodNotAllowedError{Method: c.Request().Method}
			logger.WithComponent("contact").Debug(err.Error())
			c.Response().Header().Set(echo.HeaderAllow, http.MethodPost)
			return c.JSON(http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		}

		var sub models.ContactSubmission
		if err := c.Bind(&sub); err != nil {
			metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		}

		_, err := relay.Submit(c.Request().Context(), sub)
		if err == nil {
			metrics.ContactSubmissions.WithLabelValues("success").Inc()
			return c.JSON(http.StatusOK, map[string]bool{"success": true})
		}

		var (
			validationErr *services.ValidationError
			configErr     *services.ConfigurationError
			deliveryErr   *services.DeliveryError
		)
		switch {
		case errors.As(err, &validationErr):
			metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing fields"})

		case errors.As(err, &configErr):
			metrics.ContactSubmissions.WithLabelValues("misconfigured").Inc()
			logger.WithComponent("contact").Error(configErr.Error())
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": configErr.Error()})

		case errors.As(err, &deliveryErr):
			metrics.ContactSubmissions.WithLabelValues("failed").Inc()
			body := map[string]string{"error": "Email failed"}
			if cfg, ok := c.Get("config").(*config.Config); !ok || !cfg.IsProduction() {
				body["details"] = deliveryErr.Err.Error()
			}
			return c.JSON(http.StatusInternalServerError, body)
		}

		metrics.ContactSubmissions.WithLabelValues("failed").Inc()
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process submission")
	}
}
