package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sakhisuraksha/sakhi-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		data   interface{}
		want   string
	}{
		{
			name:   "object",
			status: http.StatusOK,
			data:   map[string]string{"status": "ok"},
			want:   `{"status":"ok"}`,
		},
		{
			name:   "accepted",
			status: http.StatusAccepted,
			data:   struct{ Message string `json:"message"` }{"queued"},
			want:   `{"message":"queued"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, r, tt.status, tt.data)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/tracker", nil)
	r = r.WithContext(SetTraceID(r.Context()))
	w := httptest.NewRecorder()

	RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid token", resp.Error)
	assert.Equal(t, GetTraceID(r.Context()), resp.TraceID)
	assert.NotContains(t, w.Body.String(), "401")
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		opts      []ResponseOption
		wantLevel string
	}{
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
		{name: "rate limited", status: http.StatusTooManyRequests, wantLevel: "WARN"},
		{name: "bad request", status: http.StatusBadRequest, wantLevel: "DEBUG"},
		{
			name:      "elevated bad request",
			status:    http.StatusBadRequest,
			opts:      []ResponseOption{WithElevatedLogLevel()},
			wantLevel: "WARN",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			r := httptest.NewRequest(http.MethodPost, "/api/feedback", nil)
			r = r.WithContext(logger.WithLogger(r.Context(), log))
			w := httptest.NewRecorder()

			err := errors.New("lookup failed for user@example.com")
			RespondWithErrorAndLog(w, r, tt.status, "Something went wrong", err, tt.opts...)

			assert.Equal(t, tt.status, w.Code)
			assert.NotContains(t, w.Body.String(), "user@example.com")

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "Something went wrong", entry["user_message"])
			assert.NotContains(t, entry["error"], "user@example.com")
		})
	}
}
