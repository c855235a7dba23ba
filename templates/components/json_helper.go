package components

import (
	"encoding/json"

	"ict_forex_app_go/logger"
)

// JSON marshals an object to a JSON string, returning "{}" on error
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		logger.WithComponent("templates").WithError(err).Error("Error marshaling JSON")
		return "{}"
	}
	return string(b)
}
