package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleHandler_Predict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		body          interface{}
		wantStatus    int
		wantError     string
		wantNext      string
		wantDaysUntil int
		wantStatusTxt string
		wantPhase     string
	}{
		{
			name:          "uses server clock",
			body:          PredictRequest{LastPeriodStart: "2025-01-01", CycleLength: 28},
			wantStatus:    http.StatusOK,
			wantNext:      "2025-01-29",
			wantDaysUntil: 14,
			wantStatusTxt: "upcoming",
			wantPhase:     "ovulatory",
		},
		{
			name:          "explicit today, due",
			body:          PredictRequest{LastPeriodStart: "2025-01-01", CycleLength: 28, Today: "2025-01-29"},
			wantStatus:    http.StatusOK,
			wantNext:      "2025-01-29",
			wantDaysUntil: 0,
			wantStatusTxt: "due_today",
			wantPhase:     "luteal",
		},
		{
			name:          "overdue, leap year rollover",
			body:          PredictRequest{LastPeriodStart: "2024-02-01", CycleLength: 35, Today: "2024-03-10"},
			wantStatus:    http.StatusOK,
			wantNext:      "2024-03-07",
			wantDaysUntil: -3,
			wantStatusTxt: "overdue",
			wantPhase:     "luteal",
		},
		{
			name:       "cycle length too long",
			body:       PredictRequest{LastPeriodStart: "2025-01-01", CycleLength: 36},
			wantStatus: http.StatusBadRequest,
			wantError:  "Cycle length must be between 21 and 35 days",
		},
		{
			name:       "future last period",
			body:       PredictRequest{LastPeriodStart: "2025-02-01", CycleLength: 28},
			wantStatus: http.StatusBadRequest,
			wantError:  "Last period start cannot be in the future",
		},
		{
			name:       "malformed date",
			body:       PredictRequest{LastPeriodStart: "01/01/2025", CycleLength: 28},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid LastPeriodStart: invalid date format",
		},
		{
			name:       "missing cycle length",
			body:       `{"last_period_start":"2025-01-01"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid CycleLength: required field",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := NewCycleHandler(newTestEngine(t), nil, fixedClock)

			w := httptest.NewRecorder()
			h.Predict(w, newJSONRequest(t, http.MethodPost, "/api/cycle/predict", tt.body))

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorMessage(t, w))
				return
			}

			var resp PredictionResponse
			decodeBody(t, w, &resp)
			assert.Equal(t, tt.wantNext, resp.NextPeriodStart)
			require.NotNil(t, resp.DaysUntil)
			assert.Equal(t, tt.wantDaysUntil, *resp.DaysUntil)
			assert.Equal(t, tt.wantStatusTxt, resp.Status)
			assert.Equal(t, tt.wantPhase, resp.Phase)
		})
	}
}

func TestCycleHandler_Adjust(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        AdjustRequest
		wantStatus  int
		wantError   string
		wantLength  int
		wantChanged bool
	}{
		{name: "increment", body: AdjustRequest{CycleLength: 28, Delta: 1}, wantStatus: http.StatusOK, wantLength: 29, wantChanged: true},
		{name: "decrement", body: AdjustRequest{CycleLength: 28, Delta: -1}, wantStatus: http.StatusOK, wantLength: 27, wantChanged: true},
		{name: "clamped at max", body: AdjustRequest{CycleLength: 35, Delta: 1}, wantStatus: http.StatusOK, wantLength: 35},
		{name: "clamped at min", body: AdjustRequest{CycleLength: 21, Delta: -1}, wantStatus: http.StatusOK, wantLength: 21},
		{
			name:       "delta of two",
			body:       AdjustRequest{CycleLength: 28, Delta: 2},
			wantStatus: http.StatusBadRequest,
			wantError:  "Delta must be 1 or -1",
		},
		{
			name:       "current out of range",
			body:       AdjustRequest{CycleLength: 40, Delta: -1},
			wantStatus: http.StatusBadRequest,
			wantError:  "Cycle length must be between 21 and 35 days",
		},
		{
			name:       "zero delta",
			body:       AdjustRequest{CycleLength: 28},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid Delta: required field",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := NewCycleHandler(newTestEngine(t), nil, fixedClock)

			w := httptest.NewRecorder()
			h.Adjust(w, newJSONRequest(t, http.MethodPost, "/api/cycle/adjust", tt.body))

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorMessage(t, w))
				return
			}

			var resp AdjustResponse
			decodeBody(t, w, &resp)
			assert.Equal(t, tt.wantLength, resp.CycleLength)
			assert.Equal(t, tt.wantChanged, resp.Changed)
		})
	}
}
