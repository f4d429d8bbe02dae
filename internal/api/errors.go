package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sakhisuraksha/sakhi-api/internal/api/shared"
	"github.com/sakhisuraksha/sakhi-api/internal/content"
	"github.com/sakhisuraksha/sakhi-api/internal/domain"
	"github.com/sakhisuraksha/sakhi-api/internal/domain/cycle"
	"github.com/sakhisuraksha/sakhi-api/internal/service/session"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Session errors
	case errors.Is(err, session.ErrMissingToken),
		errors.Is(err, session.ErrInvalidToken),
		errors.Is(err, session.ErrExpiredToken):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, content.ErrSectionNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidCycleLength),
		errors.Is(err, domain.ErrLastPeriodUnset),
		errors.Is(err, domain.ErrLastPeriodInFuture),
		errors.Is(err, cycle.ErrInvalidDelta),
		errors.Is(err, content.ErrInvalidCoordinates):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, session.ErrMissingToken):
		return "Session token required"

	case errors.Is(err, session.ErrExpiredToken):
		return "Session expired"

	case errors.Is(err, session.ErrInvalidToken):
		return "Invalid session token"

	case errors.Is(err, content.ErrSectionNotFound):
		return "Section not found"

	case errors.Is(err, domain.ErrInvalidDate):
		return "Invalid date, expected YYYY-MM-DD"

	case errors.Is(err, domain.ErrLastPeriodInFuture):
		return "Last period start cannot be in the future"

	case errors.Is(err, domain.ErrLastPeriodUnset):
		return "Last period start is not set"

	case errors.Is(err, domain.ErrInvalidCycleLength):
		return fmt.Sprintf("Cycle length must be between %d and %d days",
			domain.MinCycleLength, domain.MaxCycleLength)

	case errors.Is(err, cycle.ErrInvalidDelta):
		return "Delta must be 1 or -1"

	case errors.Is(err, content.ErrInvalidCoordinates):
		return "Invalid coordinates"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the status and safe message for err and logs the
// redacted error. A non-empty fallbackMsg replaces the generic message of
// unclassified (500) errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMsg string) {
	status := MapErrorToStatusCode(err)
	msg := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallbackMsg != "" {
		msg = fallbackMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'FeedbackRequest.Email' Error:Field validation for 'Email' failed on the 'email' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min", "gte":
		return "too small"
	case "max", "lte":
		return "too large"
	case "oneof":
		return "invalid value"
	case "datetime":
		return "invalid date format"
	case "latitude", "longitude":
		return "out of range"
	default:
		return "validation failed"
	}
}
