package provider

import (
	"context"
	"encoding/json"

	"github.com/ACS7th-Bravo/Back/internal/spotify"
	"github.com/ACS7th-Bravo/Back/internal/youtube"
	"github.com/stretchr/testify/mock"
)

type MockTracks struct {
	mock.Mock
}

func (m *MockTracks) SearchTracks(ctx context.Context, query, locale string) ([]spotify.Track, error) {
	args := m.Called(ctx, query, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]spotify.Track), args.Error(1)
}

func (m *MockTracks) TrackDetail(ctx context.Context, trackID, market string) (json.RawMessage, error) {
	args := m.Called(ctx, trackID, market)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

type MockVideos struct {
	mock.Mock
}

func (m *MockVideos) SearchVideo(ctx context.Context, title, artist string) (youtube.VideoMatch, error) {
	args := m.Called(ctx, title, artist)
	return args.Get(0).(youtube.VideoMatch), args.Error(1)
}

type MockTokens struct {
	mock.Mock
}

func (m *MockTokens) Token(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func track(id, name, artist string, images ...string) spotify.Track {
	t := spotify.Track{ID: id, Name: name}
	if artist != "" {
		t.Artists = []spotify.Artist{{Name: artist}}
	}
	for _, u := range images {
		t.Album.Images = append(t.Album.Images, spotify.Image{URL: u})
	}
	return t
}
