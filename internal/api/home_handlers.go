package api

import (
	"net/http"

	"github.com/vytor/phonicsplay/internal/logger"
	"github.com/vytor/phonicsplay/internal/models"
)

type sectionsResponse struct {
	Sections models.Manifest `json:"sections"`
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("rendering home page")

	sections, err := s.Library.Sections(r.Context())
	if wantsJSON(r) {
		if err != nil {
			handleError(w, r, err)
			return
		}
		if sections == nil {
			sections = models.Manifest{}
		}
		writeJSON(w, r, http.StatusOK, sectionsResponse{Sections: sections})
		return
	}

	data := pageData{"sections": sections}
	if err != nil {
		data["error"] = "Could not load the list of sections."
	}
	s.render(w, r, "pages/home.html", data)
}
