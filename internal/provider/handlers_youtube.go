package provider

import (
	"net/http"

	"github.com/ACS7th-Bravo/Back/internal/apperr"
)

func (s *Server) HandleVideoSearch(w http.ResponseWriter, r *http.Request) {
	trackName := queryParam(r, "trackName")
	artistName := queryParam(r, "artistName")
	if trackName == "" || artistName == "" {
		writeAppError(w, r, apperr.Missing("trackName", "artistName"))
		return
	}

	match, err := s.videos.SearchVideo(r.Context(), trackName, artistName)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	if !match.Found() {
		// deliberate not-found signal; body keeps the same shape
		writeJSON(w, http.StatusNotFound, match)
		return
	}
	writeJSON(w, http.StatusOK, match)
}
