// Package pages holds view-state controllers of web pages. Every controller loads the state
// its page needs, applies the requested action to it and returns view model ready to render.
package pages

import (
	"errors"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crm/internal/validation"
)

// Clock returns current time, today is derived from it
type Clock func() time.Time

// UTCClock is wall clock in UTC
func UTCClock() time.Time {
	return time.Now().UTC()
}

// Validator validates submitted forms
type Validator interface {
	Validate(i any) error
}

// errorMessage extracts human-readable message from error raised by services or validation
func errorMessage(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprint(httpErr.Message)
	}

	var pldErr *validation.PayloadError
	if errors.As(err, &pldErr) {
		return pldErr.Error()
	}
	return err.Error()
}
