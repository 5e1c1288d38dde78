package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alrooliya/workshop-booking/internal/http/handlers"
	httpmiddleware "github.com/alrooliya/workshop-booking/internal/http/middleware"
	"github.com/alrooliya/workshop-booking/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	BookingHandler     *handlers.BookingHandler
	ServicesHandler    *handlers.ServicesHandler
	HoursHandler       *handlers.HoursHandler
	LocaleHandler      *handlers.LocaleHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Get("/services", cfg.ServicesHandler.List)
	r.Get("/hours/status", cfg.HoursHandler.Status)

	r.Route("/preferences/locale", func(r chi.Router) {
		r.Get("/", cfg.LocaleHandler.Get)
		r.Put("/", cfg.LocaleHandler.Put)
	})

	r.Route("/booking/sessions", func(r chi.Router) {
		r.Post("/", cfg.BookingHandler.CreateSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", cfg.BookingHandler.GetSession)
			r.Post("/category", cfg.BookingHandler.SelectCategory)
			r.Patch("/draft", cfg.BookingHandler.UpdateDraft)
			r.Post("/advance", cfg.BookingHandler.Advance)
			r.Post("/retreat", cfg.BookingHandler.Retreat)
			r.Post("/reset", cfg.BookingHandler.Reset)
			r.Post("/submit", cfg.BookingHandler.Submit)
		})
	})

	return r
}
