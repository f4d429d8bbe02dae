package api

import (
	"log/slog"
	"net/http"

	"github.com/sakhisuraksha/sakhi-api/internal/api/shared"
	"github.com/sakhisuraksha/sakhi-api/internal/content"
	"github.com/sakhisuraksha/sakhi-api/internal/metrics"
	"github.com/sakhisuraksha/sakhi-api/internal/platform/logger"
	"github.com/sakhisuraksha/sakhi-api/internal/redact"
)

// FeedbackAccepted is the acknowledgement returned for every valid submission.
const FeedbackAccepted = "Your feedback has been submitted successfully. We appreciate your input!"

// FeedbackHandler accepts feedback form submissions. Submissions are logged
// with personal data redacted and are not stored.
type FeedbackHandler struct {
	catalog *content.Catalog
	metrics metrics.Recorder
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(catalog *content.Catalog, recorder metrics.Recorder) *FeedbackHandler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &FeedbackHandler{catalog: catalog, metrics: recorder}
}

// ListTypes handles GET /api/feedback/types requests.
func (h *FeedbackHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.catalog.FeedbackTypes)
}

// Submit handles POST /api/feedback requests.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	label, ok := h.catalog.FeedbackLabel(req.Type)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid type: invalid value")
		return
	}

	logger.FromContext(r.Context()).Info("feedback received",
		slog.String("type", req.Type),
		slog.String("label", label),
		slog.String("feedback", redact.String(req.Feedback)),
		slog.Bool("has_name", req.Name != ""),
		slog.Bool("has_email", req.Email != ""))
	h.metrics.RecordFeedback(req.Type)

	shared.RespondWithJSON(w, r, http.StatusAccepted, FeedbackResponse{Message: FeedbackAccepted})
}
