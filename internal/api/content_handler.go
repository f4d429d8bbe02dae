package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sakhisuraksha/sakhi-api/internal/api/shared"
	"github.com/sakhisuraksha/sakhi-api/internal/content"
	"github.com/sakhisuraksha/sakhi-api/internal/metrics"
)

// ContentHandler serves the static catalog: info sections, stores and the
// help screen.
type ContentHandler struct {
	catalog *content.Catalog
	metrics metrics.Recorder
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(catalog *content.Catalog, recorder metrics.Recorder) *ContentHandler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &ContentHandler{catalog: catalog, metrics: recorder}
}

// ListSections handles GET /api/info requests.
func (h *ContentHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, InfoResponse{Sections: h.catalog.Sections})
}

// GetSection handles GET /api/info/{sectionID} requests.
func (h *ContentHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	section, err := h.catalog.Section(chi.URLParam(r, "sectionID"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, section)
}

// ListStores handles GET /api/stores requests. With lat and lng the stores
// come back nearest first.
func (h *ContentHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	origin, err := parsePositionParams(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if origin == nil {
		shared.RespondWithJSON(w, r, http.StatusOK, storesToResponse(h.catalog.AllStores()))
		return
	}

	stores, err := h.catalog.NearbyStores(*origin)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, storesToResponse(stores))
}

// ListContacts handles GET /api/help/contacts requests.
func (h *ContentHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, ContactsResponse{
		Contacts:  h.catalog.Contacts,
		SOSNumber: h.catalog.SOSNumber,
	})
}

// ShareLocation handles POST /api/help/share-location requests.
func (h *ContentHandler) ShareLocation(w http.ResponseWriter, r *http.Request) {
	var req ShareLocationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pos := content.Position{Latitude: *req.Latitude, Longitude: *req.Longitude}
	share, err := h.catalog.ShareLocation(pos, req.SOS)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to build location message")
		return
	}
	h.metrics.RecordHelpShare(req.SOS)

	shared.RespondWithJSON(w, r, http.StatusOK, share)
}
