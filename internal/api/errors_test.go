package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/sakhisuraksha/sakhi-api/internal/content"
	"github.com/sakhisuraksha/sakhi-api/internal/domain"
	"github.com/sakhisuraksha/sakhi-api/internal/domain/cycle"
	"github.com/sakhisuraksha/sakhi-api/internal/service"
	"github.com/sakhisuraksha/sakhi-api/internal/service/session"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "missing token", err: session.ErrMissingToken, want: http.StatusUnauthorized},
		{name: "expired token", err: session.ErrExpiredToken, want: http.StatusUnauthorized},
		{name: "wrapped invalid token", err: fmt.Errorf("parse: %w", session.ErrInvalidToken), want: http.StatusUnauthorized},
		{name: "section not found", err: content.ErrSectionNotFound, want: http.StatusNotFound},
		{name: "invalid date", err: domain.ErrInvalidDate, want: http.StatusBadRequest},
		{name: "future date", err: domain.ErrLastPeriodInFuture, want: http.StatusBadRequest},
		{name: "cycle length", err: domain.ErrInvalidCycleLength, want: http.StatusBadRequest},
		{name: "delta", err: cycle.ErrInvalidDelta, want: http.StatusBadRequest},
		{name: "coordinates", err: content.ErrInvalidCoordinates, want: http.StatusBadRequest},
		{
			name: "service error wrapping domain error",
			err:  &service.ServiceError{Service: "tracker", Op: "snapshot", Err: domain.ErrLastPeriodInFuture},
			want: http.StatusBadRequest,
		},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: "An unexpected error occurred"},
		{name: "expired", err: session.ErrExpiredToken, want: "Session expired"},
		{name: "future", err: domain.ErrLastPeriodInFuture, want: "Last period start cannot be in the future"},
		{name: "length", err: domain.ErrInvalidCycleLength, want: "Cycle length must be between 21 and 35 days"},
		{
			name: "internal details are hidden",
			err:  errors.New("dial tcp 10.0.0.1:5432: connection refused"),
			want: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	type sample struct {
		Email string `validate:"required,email"`
	}

	err := validator.New().Struct(sample{Email: "nope"})
	assert.Equal(t, "Invalid Email: invalid email format", SanitizeValidationError(err))

	err = validator.New().Struct(sample{})
	assert.Equal(t, "Invalid Email: required field", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
}
