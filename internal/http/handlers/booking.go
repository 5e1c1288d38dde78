package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alrooliya/workshop-booking/internal/booking"
	"github.com/alrooliya/workshop-booking/internal/catalog"
	"github.com/alrooliya/workshop-booking/internal/compose"
	"github.com/alrooliya/workshop-booking/internal/observability/metrics"
	"github.com/alrooliya/workshop-booking/internal/prefs"
	"github.com/alrooliya/workshop-booking/pkg/logging"
)

// visitorIDHeader carries the site's anonymous visitor id, used only to
// key the locale preference.
const visitorIDHeader = "X-Visitor-Id"

// BookingHandler translates UI actions into form controller transitions.
type BookingHandler struct {
	registry *SessionRegistry
	composer *compose.Composer
	prefs    *prefs.Store
	metrics  *metrics.BookingMetrics
	logger   *logging.Logger
}

// NewBookingHandler creates the booking flow handler.
func NewBookingHandler(registry *SessionRegistry, composer *compose.Composer, prefStore *prefs.Store, m *metrics.BookingMetrics, logger *logging.Logger) *BookingHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &BookingHandler{
		registry: registry,
		composer: composer,
		prefs:    prefStore,
		metrics:  m,
		logger:   logger,
	}
}

// sessionState is what the UI polls to render the form.
type sessionState struct {
	SessionID string            `json:"session_id"`
	Step      string            `json:"step"`
	Draft     booking.Draft     `json:"draft"`
	Failures  []booking.Failure `json:"failures,omitempty"`
	Warnings  []booking.Failure `json:"warnings,omitempty"`
}

func (h *BookingHandler) state(id string, ctrl *booking.Controller) sessionState {
	result := ctrl.LastResult()
	return sessionState{
		SessionID: id,
		Step:      ctrl.Step().String(),
		Draft:     ctrl.Draft(),
		Failures:  result.Failures,
		Warnings:  result.Warnings,
	}
}

// CreateSession handles POST /booking/sessions.
func (h *BookingHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, ctrl := h.registry.Create()
	h.metrics.ObserveSessionStarted()
	h.logger.Info("booking session started", "session_id", id)
	writeJSON(w, http.StatusCreated, h.state(id, ctrl))
}

// GetSession handles GET /booking/sessions/{sessionID}.
func (h *BookingHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ctrl, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.state(id, ctrl))
}

// SelectCategory handles POST /booking/sessions/{sessionID}/category.
func (h *BookingHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	id, ctrl, ok := h.session(w, r)
	if !ok {
		return
	}

	var req struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	cat, err := catalog.ParseCategory(req.Category)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := ctrl.SelectCategory(cat); err != nil {
		h.transitionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.state(id, ctrl))
}

// UpdateDraft handles PATCH /booking/sessions/{sessionID}/draft.
func (h *BookingHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	id, ctrl, ok := h.session(w, r)
	if !ok {
		return
	}

	var update booking.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := ctrl.Apply(update); err != nil {
		h.transitionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.state(id, ctrl))
}

// Advance handles POST /booking/sessions/{sessionID}/advance.
func (h *BookingHandler) Advance(w http.ResponseWriter, r *http.Request) {
	id, ctrl, ok := h.session(w, r)
	if !ok {
		return
	}

	result, err := ctrl.Advance()
	if err != nil {
		h.transitionError(w, err)
		return
	}
	for _, f := range result.Failures {
		h.metrics.ObserveValidationFailure(string(f.Kind))
	}
	status := http.StatusOK
	if !result.OK() {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, h.state(id, ctrl))
}

// Retreat handles POST /booking/sessions/{sessionID}/retreat.
func (h *BookingHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	id, ctrl, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := ctrl.Retreat(); err != nil {
		h.transitionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.state(id, ctrl))
}

// Reset handles POST /booking/sessions/{sessionID}/reset.
func (h *BookingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, ctrl, ok := h.session(w, r)
	if !ok {
		return
	}
	ctrl.Reset()
	writeJSON(w, http.StatusOK, h.state(id, ctrl))
}

// Submit handles POST /booking/sessions/{sessionID}/submit. On success the
// composed message is returned for the UI to open and the session resets.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ctrl, ok := h.session(w, r)
	if !ok {
		return
	}
	loc := resolveLocale(r, h.prefs)

	if ctrl.Step() != booking.StepReview {
		h.metrics.ObserveSubmission("rejected", string(loc))
		http.Error(w, "submission is only allowed from the review step", http.StatusConflict)
		return
	}

	msg, err := h.composer.Compose(ctrl.Draft(), loc)
	if err != nil {
		if errors.Is(err, compose.ErrIncompleteDraft) {
			h.metrics.ObserveSubmission("incomplete", string(loc))
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("failed to compose message", "error", err, "session_id", id)
		http.Error(w, "failed to compose message", http.StatusInternalServerError)
		return
	}

	ctrl.Reset()
	h.metrics.ObserveSubmission("composed", string(loc))
	h.logger.Info("appointment request composed", "session_id", id, "locale", loc)

	writeJSON(w, http.StatusOK, map[string]any{
		"message": msg,
		"state":   h.state(id, ctrl),
	})
}

func (h *BookingHandler) session(w http.ResponseWriter, r *http.Request) (string, *booking.Controller, bool) {
	id := chi.URLParam(r, "sessionID")
	if id == "" {
		http.Error(w, "missing session id", http.StatusBadRequest)
		return "", nil, false
	}
	ctrl, ok := h.registry.Get(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return "", nil, false
	}
	return id, ctrl, true
}

func (h *BookingHandler) transitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
