package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/phonicsplay/internal/errors"
	"github.com/vytor/phonicsplay/internal/logger"
	"github.com/vytor/phonicsplay/internal/services"
)

const (
	actionNext = "next"
	actionPrev = "prev"
	actionHide = "hide"
	actionRead = "read"
)

func (s *Server) handleReading(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filename := chi.URLParam(r, "filename")
	logger.FromContext(ctx).Debug("rendering reading page: %s", filename)

	snap, err := s.Drill.Select(ctx, sessionFromContext(ctx), filename)
	s.respondReading(w, r, snap, err)
}

func (s *Server) handleReadingAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := sessionFromContext(ctx)
	filename := chi.URLParam(r, "filename")
	action := chi.URLParam(r, "action")
	log := logger.FromContext(ctx).WithFields(map[string]any{"source": filename, "action": action})

	switch action {
	case actionNext, actionPrev, actionHide, actionRead:
	default:
		handleError(w, r, errors.NewValidationError("action", "must be one of next, prev, hide, read"))
		return
	}

	snap, err := s.Drill.Select(ctx, sessionID, filename)
	if err != nil {
		s.respondReading(w, r, snap, err)
		return
	}
	if snap.Source != filename {
		log.Debug("list was replaced by a newer selection (%s), ignoring action", snap.Source)
		s.respondReading(w, r, snap, nil)
		return
	}

	switch action {
	case actionNext:
		snap = s.Drill.Next(ctx, sessionID)
	case actionPrev:
		snap = s.Drill.Previous(ctx, sessionID)
	case actionRead:
		snap = s.Drill.Read(ctx, sessionID)
	case actionHide:
		snap, err = s.Drill.Hide(ctx, sessionID)
	}
	log.Debug("now at %d/%d (%s)", snap.Position, snap.State.Total, snap.State.Kind)
	s.respondReading(w, r, snap, err)
}

func (s *Server) respondReading(w http.ResponseWriter, r *http.Request, snap services.Snapshot, err error) {
	if wantsJSON(r) {
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, snap)
		return
	}

	data := pageData{"snapshot": snap, "settings": snap.Settings, "path": readingPath(snap.Source)}
	if err != nil {
		logger.FromContext(r.Context()).Warn("reading page error: %v", err)
		data["error"] = errorMessage(err)
	}
	s.render(w, r, "pages/reading.html", data)
}

// readingPath is the page a drill form returns to; action URLs only accept POST.
func readingPath(source string) string {
	if source == "" {
		return "/"
	}
	return "/reading/" + url.PathEscape(source)
}

func errorMessage(err error) string {
	if appErr, ok := errors.As(err); ok {
		return appErr.Message
	}
	return "Something went wrong."
}
