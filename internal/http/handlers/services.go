package handlers

import (
	"net/http"

	"github.com/alrooliya/workshop-booking/internal/catalog"
	"github.com/alrooliya/workshop-booking/internal/locale"
	"github.com/alrooliya/workshop-booking/internal/prefs"
)

// ServicesHandler lists the workshop's service offerings.
type ServicesHandler struct {
	catalog *catalog.Catalog
	prefs   *prefs.Store
}

func NewServicesHandler(cat *catalog.Catalog, prefStore *prefs.Store) *ServicesHandler {
	return &ServicesHandler{catalog: cat, prefs: prefStore}
}

type serviceView struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// List handles GET /services. An optional ?category= filter narrows the
// list to vehicle or industrial offerings.
func (h *ServicesHandler) List(w http.ResponseWriter, r *http.Request) {
	loc := resolveLocale(r, h.prefs)

	var offerings []catalog.ServiceOffering
	if raw := r.URL.Query().Get("category"); raw != "" {
		cat, err := catalog.ParseCategory(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		offerings = h.catalog.ListByCategory(cat)
	} else {
		offerings = h.catalog.ListAll()
	}

	views := make([]serviceView, 0, len(offerings))
	for _, o := range offerings {
		views = append(views, serviceView{
			ID:          o.ID,
			Category:    string(o.Category),
			Name:        catalog.ResolveDisplayName(o, loc),
			Description: catalog.ResolveDescription(o, loc),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"locale":   loc,
		"services": views,
	})
}

func resolveLocale(r *http.Request, store *prefs.Store) locale.Locale {
	if raw := r.URL.Query().Get("locale"); locale.Supported(raw) {
		return locale.Parse(raw)
	}
	if store != nil {
		return store.Get(r.Context(), r.Header.Get(visitorIDHeader), r.Header.Get("Accept-Language"))
	}
	return locale.FromAcceptLanguage(r.Header.Get("Accept-Language"))
}
