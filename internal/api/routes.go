package api

import (
	"net/http"
	"strings"

	"codecloud/internal/errors"
	"codecloud/internal/scan"
	"codecloud/internal/version"
)

// registerRoutes registers all routes. Anything outside the API surface
// falls through to the static file server rooted at the assets directory.
func (s *Server) registerRoutes() {
	s.router.HandleFunc("/api/cloud", s.handleCloud)
	s.router.HandleFunc("/health", s.handleHealth)
	s.router.Handle("/", staticHandler(s.assetsDir))
}

// staticHandler serves the assets directory. http.FileServer redirects
// requests ending in /index.html to the directory path; the front-end
// links index.html directly, so those requests are rewritten to the
// directory form and served with 200 instead.
func staticHandler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/index.html") {
			r.URL.Path = strings.TrimSuffix(r.URL.Path, "index.html")
		}
		fs.ServeHTTP(w, r)
	})
}

// handleCloud handles GET /api/cloud?type={words|code|symbols}.
// An unrecognized type silently defaults to words; the parameter is never
// an error. Each request re-scans the tree from scratch.
func (s *Server) handleCloud(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		WriteCloudError(w, errors.New(errors.MethodNotAllowed, "method not allowed", nil).
			WithDetails(map[string]string{"allow": http.MethodGet}))
		return
	}

	mode := scan.ParseMode(r.URL.Query().Get("type"))
	result := s.engine.BuildCloud(mode)

	w.Header().Set("Cache-Control", "no-store")
	WriteJSON(w, result, http.StatusOK)
}

// handleHealth reports liveness and version.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, map[string]interface{}{
		"status":  "ok",
		"version": version.Version,
	}, http.StatusOK)
}
