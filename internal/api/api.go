package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/developerDD/banyabot/internal/config"
	"github.com/developerDD/banyabot/internal/session"
)

// API is the read-only web surface: it exposes the roster and the current
// state of any channel's settlement, nothing more. There is no
// authentication, so nothing here may mutate.
type API struct {
	router *mux.Router
	mgr    *session.Manager
	config *config.Config
}

func New(cfg *config.Config, mgr *session.Manager) *API {
	api := &API{
		router: mux.NewRouter(),
		mgr:    mgr,
		config: cfg,
	}

	api.setupRoutes()
	return api
}

func (a *API) setupRoutes() {
	a.router.HandleFunc("/healthz", a.handleHealth).Methods("GET")
	a.router.HandleFunc("/api/roster", a.handleRoster).Methods("GET")
	a.router.HandleFunc("/api/channels/{channel_id}/session", a.handleSession).Methods("GET")
	a.router.HandleFunc("/api/channels/{channel_id}/report", a.handleReport).Methods("GET")
}

func (a *API) Start() error {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}

	handler := cors.New(corsOptions).Handler(a.router)

	slog.Info("api server listening", "bind", a.config.WebBind)
	return http.ListenAndServe(a.config.WebBind, handler)
}
