package api

import (
	"encoding/json"
	"net/http"

	"github.com/vytor/phonicsplay/internal/errors"
	"github.com/vytor/phonicsplay/internal/logger"
	"github.com/vytor/phonicsplay/internal/models"
	"github.com/vytor/phonicsplay/internal/services"
)

type hiddenWordsResponse struct {
	Words []models.Word `json:"words"`
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.Preferences.Settings())
}

func (s *Server) handleUpdateSettingsJSON(w http.ResponseWriter, r *http.Request) {
	var update services.SettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid settings body"))
		return
	}

	settings, err := s.Preferences.UpdateSettings(r.Context(), update)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, settings)
}

// handleUpdateSettingsForm takes the full checkbox state; an unchecked box is
// simply absent from the form.
func (s *Server) handleUpdateSettingsForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid form"))
		return
	}

	autoRead := r.PostForm.Has("autoRead")
	spell := r.PostForm.Has("spellBeforeRead")
	if _, err := s.Preferences.UpdateSettings(r.Context(), services.SettingsUpdate{
		AutoRead:        &autoRead,
		SpellBeforeRead: &spell,
	}); err != nil {
		handleError(w, r, err)
		return
	}

	returnTo := localPath(r.PostForm.Get("return_to"), "/")
	log.Debug("settings saved, returning to %s", returnTo)
	http.Redirect(w, r, returnTo, http.StatusSeeOther)
}

func (s *Server) handleHiddenWords(w http.ResponseWriter, r *http.Request) {
	words := s.Preferences.HiddenWords()
	if wantsJSON(r) {
		writeJSON(w, r, http.StatusOK, hiddenWordsResponse{Words: words})
		return
	}
	s.render(w, r, "pages/hidden_words.html", pageData{"words": words})
}

func (s *Server) handleResetHiddenWords(w http.ResponseWriter, r *http.Request) {
	if err := s.Preferences.ResetHiddenWords(r.Context()); err != nil {
		handleError(w, r, err)
		return
	}
	if wantsJSON(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, localPath(r.FormValue("return_to"), "/hidden-words"), http.StatusSeeOther)
}
