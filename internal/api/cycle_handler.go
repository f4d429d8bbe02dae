package api

import (
	"net/http"
	"time"

	"github.com/sakhisuraksha/sakhi-api/internal/api/shared"
	"github.com/sakhisuraksha/sakhi-api/internal/domain"
	"github.com/sakhisuraksha/sakhi-api/internal/domain/cycle"
	"github.com/sakhisuraksha/sakhi-api/internal/metrics"
)

// CycleHandler exposes the prediction engine statelessly: the caller sends
// the whole profile with each request.
type CycleHandler struct {
	engine  cycle.Service
	metrics metrics.Recorder
	now     Clock
}

// NewCycleHandler creates a new CycleHandler.
func NewCycleHandler(engine cycle.Service, recorder metrics.Recorder, now Clock) *CycleHandler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if now == nil {
		now = time.Now
	}
	return &CycleHandler{engine: engine, metrics: recorder, now: now}
}

// Predict handles POST /api/cycle/predict requests.
func (h *CycleHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	lastPeriodStart, err := domain.ParseDate(req.LastPeriodStart)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	now, err := resolveToday(req.Today, h.now)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	profile := domain.CycleProfile{LastPeriodStart: lastPeriodStart, CycleLength: req.CycleLength}
	prediction, err := h.engine.Predict(profile, now)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute prediction")
		return
	}
	h.metrics.RecordPrediction(string(prediction.Phase), string(prediction.Status))

	shared.RespondWithJSON(w, r, http.StatusOK, predictionToResponse(prediction))
}

// Adjust handles POST /api/cycle/adjust requests. Reaching a bound is not an
// error: the length comes back unchanged.
func (h *CycleHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req AdjustRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	n, err := h.engine.AdjustCycleLength(req.CycleLength, req.Delta)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to adjust cycle length")
		return
	}

	direction := "increment"
	if req.Delta < 0 {
		direction = "decrement"
	}
	h.metrics.RecordCycleAdjustment(direction, n != req.CycleLength)

	shared.RespondWithJSON(w, r, http.StatusOK, AdjustResponse{CycleLength: n, Changed: n != req.CycleLength})
}
