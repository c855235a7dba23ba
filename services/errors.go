package services

import (
	"fmt"
	"strings"
)

// ValidationError reports required submission fields that were missing
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing fields: " + strings.Join(e.Fields, ", ")
}

// ConfigurationError reports a delivery setting the operator has to provide
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return e.Setting + " not configured"
}

// DeliveryError wraps a failure returned by the email provider
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("email delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// MethodNotAllowedError is returned for verbs other than the accepted one
type MethodNotAllowedError struct {
	Method string
}

func (e *MethodNotAllowedError) Error() string {
	return "method not allowed: " + e.Method
}
