package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sakhisuraksha/sakhi-api/internal/api/shared"
	"github.com/sakhisuraksha/sakhi-api/internal/config"
	"github.com/sakhisuraksha/sakhi-api/internal/content"
	"github.com/sakhisuraksha/sakhi-api/internal/domain/cycle"
	"github.com/sakhisuraksha/sakhi-api/internal/service"
	"github.com/sakhisuraksha/sakhi-api/internal/service/session"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-session-secret-at-least-32-characters"

// fixedNow is "today" for every handler test: 2025-01-15, evening.
var fixedNow = time.Date(2025, time.January, 15, 18, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestEngine(t *testing.T) cycle.Service {
	t.Helper()
	engine, err := cycle.NewDefaultService()
	require.NoError(t, err)
	return engine
}

func newTestTokens(t *testing.T) session.TokenService {
	t.Helper()
	tokens, err := session.NewJWTService(config.SessionConfig{
		Secret:          testSecret,
		LifetimeMinutes: 60,
	})
	require.NoError(t, err)
	return tokens
}

func newTestCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	catalog, err := content.Default()
	require.NoError(t, err)
	return catalog
}

func newTestTrackerHandler(t *testing.T) (*TrackerHandler, session.TokenService) {
	t.Helper()
	tracker, err := service.NewTrackerService(newTestEngine(t))
	require.NoError(t, err)
	tokens := newTestTokens(t)
	return NewTrackerHandler(tracker, tokens, nil, fixedClock), tokens
}

// newJSONRequest builds a request with body encoded as JSON. A string body
// is sent verbatim.
func newJSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withSession attaches a session to the request the way the session
// middleware does.
func withSession(req *http.Request, s *session.Session) *http.Request {
	return req.WithContext(shared.SetSession(req.Context(), s))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp shared.ErrorResponse
	decodeBody(t, w, &resp)
	return resp.Error
}

// parseToken decodes a token returned by a handler.
func parseToken(t *testing.T, tokens session.TokenService, token string) *session.Session {
	t.Helper()
	s, err := tokens.Parse(context.Background(), token)
	require.NoError(t, err)
	return s
}

func time2025(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}
