package http

import (
	"bytes"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "mergingtonactivities/docs"
	"mergingtonactivities/internal/delivery/http/controllers"
	"mergingtonactivities/internal/delivery/http/middleware"
)

// LandingPage is where GET / redirects.
const LandingPage = "/static/index.html"

// RouterConfig carries the dependencies of NewRouter.
type RouterConfig struct {
	Logger             *slog.Logger
	AllowedOrigins     []string
	ActivityController *controllers.ActivityController
	// Static is served under /static/; its paths must start with "static/".
	Static fs.FS
}

// NewRouter initializes the HTTP router with all application routes and middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, LandingPage, http.StatusTemporaryRedirect)
	})

	// API Routes
	mux.HandleFunc("GET /activities", cfg.ActivityController.ListActivities)
	mux.HandleFunc("POST /activities/{name}/signup", cfg.ActivityController.Signup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", cfg.ActivityController.Unregister)

	// Ops
	mux.HandleFunc("GET /healthz", controllers.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	if cfg.Static != nil {
		mux.HandleFunc("GET "+LandingPage, serveFile(cfg.Static, strings.TrimPrefix(LandingPage, "/")))
		mux.Handle("GET /static/", http.FileServerFS(cfg.Static))
	}

	var h http.Handler = middleware.Metrics(mux)
	h = middleware.LoggingMiddleware(cfg.Logger, h)
	h = middleware.CORS(cfg.AllowedOrigins, h)
	h = chimiddleware.Recoverer(h)
	h = chimiddleware.RealIP(h)
	h = chimiddleware.RequestID(h)
	return h
}

// serveFile answers with one file from fsys. Unlike http.FileServerFS it does
// not redirect requests for index.html to the directory.
func serveFile(fsys fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		var modTime time.Time
		if info, err := fs.Stat(fsys, name); err == nil {
			modTime = info.ModTime()
		}
		http.ServeContent(w, r, path.Base(name), modTime, bytes.NewReader(data))
	}
}
