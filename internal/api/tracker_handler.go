package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/sakhisuraksha/sakhi-api/internal/api/shared"
	"github.com/sakhisuraksha/sakhi-api/internal/domain"
	"github.com/sakhisuraksha/sakhi-api/internal/metrics"
	"github.com/sakhisuraksha/sakhi-api/internal/platform/logger"
	"github.com/sakhisuraksha/sakhi-api/internal/service"
	"github.com/sakhisuraksha/sakhi-api/internal/service/session"
)

// TrackerHandler serves the tracker screen. The profile lives in the session
// token; every state change answers with a freshly signed token.
type TrackerHandler struct {
	tracker service.TrackerService
	tokens  session.TokenService
	metrics metrics.Recorder
	now     Clock
}

// NewTrackerHandler creates a new TrackerHandler.
// A nil recorder disables metrics and a nil clock uses time.Now.
func NewTrackerHandler(
	tracker service.TrackerService,
	tokens session.TokenService,
	recorder metrics.Recorder,
	now Clock,
) *TrackerHandler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if now == nil {
		now = time.Now
	}
	return &TrackerHandler{
		tracker: tracker,
		tokens:  tokens,
		metrics: recorder,
		now:     now,
	}
}

// StartSession handles POST /api/tracker/session requests.
func (h *TrackerHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	now, err := todayParam(r, h.now)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	sess := session.New().WithProfile(h.tracker.NewSession())

	resp, err := h.issueAndSnapshot(r.Context(), sess, now)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to start session")
		return
	}

	h.metrics.RecordSessionStarted()
	logger.FromContext(r.Context()).Info("tracker session started",
		slog.String("session_id", sess.ID.String()))

	shared.RespondWithJSON(w, r, http.StatusCreated, resp)
}

// GetTracker handles GET /api/tracker requests.
func (h *TrackerHandler) GetTracker(w http.ResponseWriter, r *http.Request) {
	sess, err := getSessionFromContext(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	now, err := todayParam(r, h.now)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	view, err := h.tracker.Snapshot(r.Context(), sess.Profile, now)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load tracker")
		return
	}
	h.recordPrediction(view.Prediction)

	shared.RespondWithJSON(w, r, http.StatusOK, viewToResponse(view))
}

// SetLastPeriod handles PUT /api/tracker/last-period requests.
func (h *TrackerHandler) SetLastPeriod(w http.ResponseWriter, r *http.Request) {
	sess, err := getSessionFromContext(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req LastPeriodRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	now, err := resolveToday(req.Today, h.now)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	profile, err := h.tracker.SelectLastPeriodDate(r.Context(), sess.Profile, date, now)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update last period date")
		return
	}

	resp, err := h.issueAndSnapshot(r.Context(), sess.WithProfile(profile), now)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update last period date")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// IncrementCycleLength handles POST /api/tracker/cycle-length/increment requests.
func (h *TrackerHandler) IncrementCycleLength(w http.ResponseWriter, r *http.Request) {
	h.adjustCycleLength(w, r, "increment", h.tracker.IncrementCycleLength)
}

// DecrementCycleLength handles POST /api/tracker/cycle-length/decrement requests.
func (h *TrackerHandler) DecrementCycleLength(w http.ResponseWriter, r *http.Request) {
	h.adjustCycleLength(w, r, "decrement", h.tracker.DecrementCycleLength)
}

func (h *TrackerHandler) adjustCycleLength(
	w http.ResponseWriter,
	r *http.Request,
	direction string,
	adjust func(context.Context, domain.CycleProfile) (domain.CycleProfile, error),
) {
	sess, err := getSessionFromContext(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	now, err := todayParam(r, h.now)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	profile, err := adjust(r.Context(), sess.Profile)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to adjust cycle length")
		return
	}
	h.metrics.RecordCycleAdjustment(direction, profile.CycleLength != sess.Profile.CycleLength)

	resp, err := h.issueAndSnapshot(r.Context(), sess.WithProfile(profile), now)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to adjust cycle length")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetCalendar handles GET /api/tracker/calendar requests.
func (h *TrackerHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	sess, err := getSessionFromContext(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	now, err := todayParam(r, h.now)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	month, err := parseMonthParam(r, now)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	cal, err := h.tracker.Calendar(r.Context(), sess.Profile, month, now)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to build calendar")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, calendarToResponse(cal))
}

// issueAndSnapshot signs sess and renders the tracker view for it.
func (h *TrackerHandler) issueAndSnapshot(
	ctx context.Context,
	sess session.Session,
	now time.Time,
) (*TrackerResponse, error) {
	view, err := h.tracker.Snapshot(ctx, sess.Profile, now)
	if err != nil {
		return nil, err
	}

	token, issued, err := h.tokens.Issue(ctx, sess)
	if err != nil {
		return nil, err
	}
	h.recordPrediction(view.Prediction)

	resp := viewToResponse(view)
	resp.Token = token
	resp.ExpiresAt = &issued.ExpiresAt
	return &resp, nil
}

func (h *TrackerHandler) recordPrediction(p *domain.Prediction) {
	if p == nil {
		return
	}
	h.metrics.RecordPrediction(string(p.Phase), string(p.Status))
}
