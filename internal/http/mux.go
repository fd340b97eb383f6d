package http

import (
	"github.com/ATenderholt/rainbow-gcs/internal/settings"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"net/http"
)

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// NewChiMux serves events on "/" and on "/<function name>", the path the
// Functions Framework uses for a named function.
func NewChiMux(cfg *settings.Config, events EventHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger, middleware.Recoverer)

	r.Get("/healthz", health)
	r.Method(http.MethodPost, "/", events)
	r.Method(http.MethodPost, "/"+cfg.FunctionName, events)

	return r
}
