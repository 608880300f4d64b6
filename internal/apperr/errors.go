package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	ServiceSpotify = "spotify"
	ServiceYouTube = "youtube"
)

// MissingParameterError is returned before any upstream call when the client
// omitted a required query parameter.
type MissingParameterError struct {
	Names []string
}

func (e *MissingParameterError) Error() string {
	if len(e.Names) == 1 {
		return e.Names[0] + " parameter is required"
	}
	return strings.Join(e.Names, " and ") + " parameters are required"
}

// UpstreamAuthError means the client-credentials exchange failed.
type UpstreamAuthError struct {
	Err error
}

func (e *UpstreamAuthError) Error() string {
	return "spotify token exchange: " + e.Err.Error()
}

func (e *UpstreamAuthError) Unwrap() error { return e.Err }

// UpstreamHTTPError carries the non-2xx status of an upstream response so it
// can be echoed to our own client.
type UpstreamHTTPError struct {
	Service string
	Status  int
}

func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("%s status %d", e.Service, e.Status)
}

// BothLocalesFailedError is returned by the bilingual search when neither
// locale query produced a result list.
type BothLocalesFailedError struct {
	Primary   error
	Secondary error
}

func (e *BothLocalesFailedError) Error() string {
	return fmt.Sprintf("both locale searches failed: primary: %v; secondary: %v", e.Primary, e.Secondary)
}

func (e *BothLocalesFailedError) Unwrap() []error {
	return []error{e.Primary, e.Secondary}
}

// Missing builds a MissingParameterError for the given parameter names.
func Missing(names ...string) error {
	return &MissingParameterError{Names: names}
}

// Status maps err to the HTTP status returned to the client.
func Status(err error) int {
	var mp *MissingParameterError
	if errors.As(err, &mp) {
		return http.StatusBadRequest
	}

	var both *BothLocalesFailedError
	if errors.As(err, &both) {
		var he *UpstreamHTTPError
		if errors.As(both.Primary, &he) {
			return he.Status
		}
		return http.StatusInternalServerError
	}

	var ae *UpstreamAuthError
	if errors.As(err, &ae) {
		return http.StatusInternalServerError
	}

	var he *UpstreamHTTPError
	if errors.As(err, &he) {
		return he.Status
	}
	return http.StatusInternalServerError
}

// Message returns the client-safe body text for err. Upstream and internal
// details never leave the process.
func Message(err error) string {
	var mp *MissingParameterError
	if errors.As(err, &mp) {
		return mp.Error()
	}

	var ae *UpstreamAuthError
	if errors.As(err, &ae) {
		return "Internal server error"
	}

	var both *BothLocalesFailedError
	if errors.As(err, &both) {
		err = both.Primary
	}

	var he *UpstreamHTTPError
	if errors.As(err, &he) {
		switch he.Service {
		case ServiceSpotify:
			return "Spotify API error"
		case ServiceYouTube:
			return "YouTube API error"
		}
	}
	return "Internal server error"
}
