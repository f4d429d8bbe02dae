package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sakhisuraksha/sakhi-api/internal/api/shared"
	"github.com/sakhisuraksha/sakhi-api/internal/content"
	"github.com/sakhisuraksha/sakhi-api/internal/domain"
	"github.com/sakhisuraksha/sakhi-api/internal/service/session"
)

// Clock returns the current time. Handlers read it once per request.
type Clock func() time.Time

// getSessionFromContext returns the session decoded by the session middleware.
func getSessionFromContext(r *http.Request) (*session.Session, error) {
	s, ok := shared.GetSession(r.Context())
	if !ok {
		return nil, session.ErrMissingToken
	}
	return s, nil
}

// decodeAndValidate reads the JSON body into v and validates it. On failure
// it writes a 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}

// resolveToday returns the client's calendar date when raw is set and the
// current time otherwise. Dates are the user's local dates, so a client ahead
// of or behind the server sends its own.
func resolveToday(raw string, now Clock) (time.Time, error) {
	if raw == "" {
		return now(), nil
	}
	return domain.ParseDate(raw)
}

// todayParam resolves the optional "today" query parameter (YYYY-MM-DD).
func todayParam(r *http.Request, now Clock) (time.Time, error) {
	return resolveToday(r.URL.Query().Get("today"), now)
}

// parseMonthParam reads the "month" query parameter (YYYY-MM). When absent
// the month of now is used.
func parseMonthParam(r *http.Request, now time.Time) (time.Time, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return domain.DateOf(now), nil
	}
	month, err := time.Parse(monthLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month %q, expected YYYY-MM", domain.ErrInvalidDate, raw)
	}
	return month, nil
}

// parsePositionParams reads the optional "lat" and "lng" query parameters.
// It returns nil when neither is present; both are required otherwise.
func parsePositionParams(r *http.Request) (*content.Position, error) {
	q := r.URL.Query()
	rawLat, rawLng := q.Get("lat"), q.Get("lng")
	if rawLat == "" && rawLng == "" {
		return nil, nil
	}
	if rawLat == "" || rawLng == "" {
		return nil, fmt.Errorf("%w: lat and lng must be given together", content.ErrInvalidCoordinates)
	}

	lat, latErr := strconv.ParseFloat(rawLat, 64)
	lng, lngErr := strconv.ParseFloat(rawLng, 64)
	if err := errors.Join(latErr, lngErr); err != nil {
		return nil, fmt.Errorf("%w: %v", content.ErrInvalidCoordinates, err)
	}

	pos := content.Position{Latitude: lat, Longitude: lng}
	if err := pos.Validate(); err != nil {
		return nil, err
	}
	return &pos, nil
}
