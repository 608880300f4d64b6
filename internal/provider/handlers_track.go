package provider

import (
	"net/http"

	"github.com/ACS7th-Bravo/Back/internal/apperr"
)

const defaultMarket = "US"

func (s *Server) HandleTrack(w http.ResponseWriter, r *http.Request) {
	trackID := queryParam(r, "trackId")
	if trackID == "" {
		writeAppError(w, r, apperr.Missing("trackId"))
		return
	}
	market := queryParam(r, "market")
	if market == "" {
		market = defaultMarket
	}

	raw, err := s.tracks.TrackDetail(r.Context(), trackID, market)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func (s *Server) HandleToken(w http.ResponseWriter, r *http.Request) {
	token, err := s.tokens.Token(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}
