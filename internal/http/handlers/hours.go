package handlers

import (
	"net/http"
	"time"

	"github.com/alrooliya/workshop-booking/internal/hours"
	"github.com/alrooliya/workshop-booking/internal/locale"
	"github.com/alrooliya/workshop-booking/internal/prefs"
)

// HoursHandler reports whether the workshop is currently open.
type HoursHandler struct {
	schedule *hours.Schedule
	prefs    *prefs.Store
	now      func() time.Time
}

func NewHoursHandler(schedule *hours.Schedule, prefStore *prefs.Store) *HoursHandler {
	return &HoursHandler{schedule: schedule, prefs: prefStore, now: time.Now}
}

type hoursStatusView struct {
	Open        bool   `json:"open"`
	CheckedAt   string `json:"checked_at"`
	StatusText  string `json:"status_text"`
	NextOpening string `json:"next_opening,omitempty"`
	NextText    string `json:"next_text,omitempty"`
}

var statusText = map[locale.Locale]struct{ open, closed, reopens string }{
	locale.English: {open: "We're Open", closed: "We're Closed", reopens: "Opens"},
	locale.Arabic:  {open: "نحن متاحون الآن", closed: "نحن مغلقون حالياً", reopens: "نفتح"},
}

// Status handles GET /hours/status.
func (h *HoursHandler) Status(w http.ResponseWriter, r *http.Request) {
	loc := resolveLocale(r, h.prefs)
	text, ok := statusText[loc]
	if !ok {
		text = statusText[locale.English]
	}

	st, err := h.schedule.StatusAt(h.now())
	if err != nil {
		http.Error(w, "business hours are not configured", http.StatusServiceUnavailable)
		return
	}

	view := hoursStatusView{
		Open:      st.Open,
		CheckedAt: st.CheckedAt.Format(time.RFC3339),
	}
	if st.Open {
		view.StatusText = text.open
	} else {
		view.StatusText = text.closed
		view.NextOpening = st.NextOpening.Format(time.RFC3339)
		view.NextText = text.reopens + " " + loc.FormatDate(st.NextOpening) + " " + loc.FormatTime(st.NextOpening)
	}
	writeJSON(w, http.StatusOK, view)
}
