package provider

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ACS7th-Bravo/Back/internal/youtube"
	"github.com/go-chi/chi/v5"
)

const serviceName = "bravo-back"

// TrackProvider is the music catalog side of the proxy.
type TrackProvider interface {
	LocaleSearcher
	TrackDetail(ctx context.Context, trackID, market string) (json.RawMessage, error)
}

// VideoProvider is the video search side of the proxy.
type VideoProvider interface {
	SearchVideo(ctx context.Context, title, artist string) (youtube.VideoMatch, error)
}

// TokenProvider exposes the current music API bearer token.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

type Server struct {
	tracks      TrackProvider
	videos      VideoProvider
	tokens      TokenProvider
	merger      *Merger
	exposeToken bool
}

type Option func(*Server)

// WithTokenEndpoint enables the diagnostic token route.
func WithTokenEndpoint(enabled bool) Option {
	return func(s *Server) { s.exposeToken = enabled }
}

func NewServer(tracks TrackProvider, videos VideoProvider, tokens TokenProvider, opts ...Option) *Server {
	s := &Server{
		tracks: tracks,
		videos: videos,
		tokens: tokens,
		merger: NewMerger(tracks),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/spotify/search", s.HandleSearch)
		r.Get("/spotify/track", s.HandleTrack)
		r.Get("/youtube/search", s.HandleVideoSearch)
		if s.exposeToken {
			r.Get("/spotify/token", s.HandleToken)
		}
	})

	r.Get("/search", s.HandleSearch)
	r.Get("/track", s.HandleTrack)
	r.Get("/youtube-search", s.HandleVideoSearch)
	if s.exposeToken {
		r.Get("/token", s.HandleToken)
	}

	return r
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": serviceName,
	})
}
