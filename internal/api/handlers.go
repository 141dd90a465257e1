package api

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"github.com/vytor/phonicsplay/internal/logger"
	"github.com/vytor/phonicsplay/internal/services"
)

// HealthChecker reports whether persisted state is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	Drill       services.DrillService
	Library     services.LibraryService
	Preferences services.PreferencesService
	Health      HealthChecker
	Templates   *template.Template
}

type pageData map[string]any

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if data == nil {
		data = pageData{}
	}
	if _, ok := data["settings"]; !ok {
		data["settings"] = s.Preferences.Settings()
	}
	if _, ok := data["path"]; !ok {
		data["path"] = r.URL.Path
	}

	log := logger.FromContext(r.Context())
	if _, ok := data["sections"]; !ok {
		sections, err := s.Library.Sections(r.Context())
		if err != nil {
			log.WithError(err).Debug("rendering without sections menu")
		}
		data["sections"] = sections
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error("failed to render template %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// wantsJSON reports whether the response should be JSON instead of HTML.
func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") || strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// localPath returns p if it is a path on this site, and fallback otherwise.
func localPath(p, fallback string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return fallback
	}
	return p
}
