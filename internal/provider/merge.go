package provider

import (
	"context"
	"sync"

	"github.com/ACS7th-Bravo/Back/internal/apperr"
	"github.com/ACS7th-Bravo/Back/internal/spotify"
	"github.com/Laky-64/gologging"
)

// PrimaryLocale is sent as Accept-Language for the localized query.
const PrimaryLocale = "ko,en-US"

// LocaleSearcher runs a track search under an optional locale.
type LocaleSearcher interface {
	SearchTracks(ctx context.Context, query, locale string) ([]spotify.Track, error)
}

// PairFunc decides which fallback track accompanies each primary track.
// The returned slice has the same length as primary.
type PairFunc func(primary, fallback []spotify.Track) []spotify.Track

// ZipByIndex pairs tracks by position: primary[i] goes with fallback[i], or
// with itself when the fallback list is shorter. Track ids are not compared,
// so lists whose orders diverge produce mismatched pairs.
func ZipByIndex(primary, fallback []spotify.Track) []spotify.Track {
	out := make([]spotify.Track, len(primary))
	for i, p := range primary {
		if i < len(fallback) {
			out[i] = fallback[i]
		} else {
			out[i] = p
		}
	}
	return out
}

type Merger struct {
	tracks LocaleSearcher
	Pair   PairFunc
}

func NewMerger(tracks LocaleSearcher) *Merger {
	return &Merger{tracks: tracks, Pair: ZipByIndex}
}

// BilingualSearch queries the primary locale and the default locale
// concurrently and merges them into one record per primary hit. A failing
// side counts as an empty list; only a double failure is an error.
func (m *Merger) BilingualSearch(ctx context.Context, query string) ([]TrackRecord, error) {
	var (
		wg                    sync.WaitGroup
		primary, fallback     []spotify.Track
		primaryErr, secondErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		primary, primaryErr = m.tracks.SearchTracks(ctx, query, PrimaryLocale)
	}()
	go func() {
		defer wg.Done()
		fallback, secondErr = m.tracks.SearchTracks(ctx, query, "")
	}()
	wg.Wait()

	if primaryErr != nil && secondErr != nil {
		return nil, &apperr.BothLocalesFailedError{Primary: primaryErr, Secondary: secondErr}
	}
	if primaryErr != nil {
		gologging.WarnF("provider: primary locale search for %q failed: %v", query, primaryErr)
		primary = nil
	}
	if secondErr != nil {
		gologging.WarnF("provider: fallback locale search for %q failed: %v", query, secondErr)
		fallback = nil
	}

	return m.merge(primary, fallback), nil
}

func (m *Merger) merge(primary, fallback []spotify.Track) []TrackRecord {
	pair := m.Pair
	if pair == nil {
		pair = ZipByIndex
	}
	secondary := pair(primary, fallback)

	out := make([]TrackRecord, 0, len(primary))
	for i, p := range primary {
		s := p
		if i < len(secondary) {
			s = secondary[i]
		}
		out = append(out, TrackRecord{
			ID:                        p.ID,
			LocalizedName:             p.Name,
			LocalizedArtist:           p.FirstArtist(),
			ImageURL:                  p.ImageURL(),
			OriginalTrackName:         p.Name,
			OriginalArtistName:        p.FirstArtist(),
			AlternateLocaleTrackName:  s.Name,
			AlternateLocaleArtistName: s.FirstArtist(),
		})
	}
	return out
}
