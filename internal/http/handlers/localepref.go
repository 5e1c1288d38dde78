package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/alrooliya/workshop-booking/internal/locale"
	"github.com/alrooliya/workshop-booking/internal/prefs"
	"github.com/alrooliya/workshop-booking/pkg/logging"
)

// LocaleHandler reads and stores a visitor's language preference.
type LocaleHandler struct {
	prefs  *prefs.Store
	logger *logging.Logger
}

func NewLocaleHandler(prefStore *prefs.Store, logger *logging.Logger) *LocaleHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &LocaleHandler{prefs: prefStore, logger: logger}
}

// Get handles GET /preferences/locale.
func (h *LocaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	loc := h.prefs.Get(r.Context(), r.Header.Get(visitorIDHeader), r.Header.Get("Accept-Language"))
	writeJSON(w, http.StatusOK, map[string]any{
		"locale":    loc,
		"direction": loc.Direction(),
	})
}

// Put handles PUT /preferences/locale.
func (h *LocaleHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Locale string `json:"locale"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !locale.Supported(req.Locale) {
		http.Error(w, "unsupported locale", http.StatusBadRequest)
		return
	}
	loc := locale.Parse(req.Locale)

	visitorID := r.Header.Get(visitorIDHeader)
	if visitorID == "" {
		http.Error(w, "missing "+visitorIDHeader+" header", http.StatusBadRequest)
		return
	}
	if err := h.prefs.Set(r.Context(), visitorID, loc); err != nil {
		h.logger.Warn("failed to persist locale preference", "error", err, "visitor_id", visitorID)
		http.Error(w, "failed to save preference", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"locale":    loc,
		"direction": loc.Direction(),
	})
}
