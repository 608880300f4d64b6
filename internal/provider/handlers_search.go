package provider

import (
	"net/http"
	"unicode/utf8"

	"github.com/ACS7th-Bravo/Back/internal/apperr"
)

const maxQueryLen = 200

func (s *Server) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := queryParam(r, "q")
	if q == "" {
		writeAppError(w, r, apperr.Missing("q"))
		return
	}
	if utf8.RuneCountInString(q) > maxQueryLen {
		writeError(w, http.StatusBadRequest, "query is too long")
		return
	}

	records, err := s.merger.BilingualSearch(r.Context(), q)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}
