package spotify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ACS7th-Bravo/Back/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokens struct {
	mock.Mock
}

func (m *MockTokens) Token(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockTokens) Invalidate() {
	m.Called()
}

func TestSearchTracks(t *testing.T) {
	var gotLang, gotAuth, gotQuery string
	var hasLang bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		_, hasLang = r.Header["Accept-Language"]
		gotLang = r.Header.Get("Accept-Language")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tracks":{"items":[
			{"id":"1","name":"안녕","artists":[{"name":"가수"}],"album":{"images":[{"url":"http://img/1"}]}},
			{"id":"2","name":"Second","artists":[],"album":{"images":[]}}
		]}}`))
	}))
	defer srv.Close()

	tokens := new(MockTokens)
	tokens.On("Token", mock.Anything).Return("bearer-1", nil)
	c := NewClient(tokens, srv.URL+"/", srv.Client())

	t.Run("with locale", func(t *testing.T) {
		items, err := c.SearchTracks(context.Background(), "hello world", "ko,en-US")
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "Bearer bearer-1", gotAuth)
		assert.Equal(t, "ko,en-US", gotLang)
		assert.Contains(t, gotQuery, "q=hello+world")
		assert.Contains(t, gotQuery, "type=track")
		assert.Contains(t, gotQuery, "limit=20")

		assert.Equal(t, "가수", items[0].FirstArtist())
		require.NotNil(t, items[0].ImageURL())
		assert.Equal(t, "http://img/1", *items[0].ImageURL())
		assert.Equal(t, "", items[1].FirstArtist())
		assert.Nil(t, items[1].ImageURL())
	})

	t.Run("absent locale sends no header", func(t *testing.T) {
		_, err := c.SearchTracks(context.Background(), "hello", "")
		require.NoError(t, err)
		assert.False(t, hasLang)
	})
}

func TestSearchTracks_MissingTracksIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tokens := new(MockTokens)
	tokens.On("Token", mock.Anything).Return("t", nil)
	c := NewClient(tokens, srv.URL, srv.Client())

	items, err := c.SearchTracks(context.Background(), "nothing", "")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSearchTracks_UpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	tokens := new(MockTokens)
	tokens.On("Token", mock.Anything).Return("t", nil)
	c := NewClient(tokens, srv.URL, srv.Client())

	_, err := c.SearchTracks(context.Background(), "x", "")
	var he *apperr.UpstreamHTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusTooManyRequests, he.Status)
	assert.Equal(t, apperr.ServiceSpotify, he.Service)
	tokens.AssertNotCalled(t, "Invalidate")
}

func TestSearchTracks_UnauthorizedInvalidatesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	tokens := new(MockTokens)
	tokens.On("Token", mock.Anything).Return("stale", nil)
	tokens.On("Invalidate").Return()
	c := NewClient(tokens, srv.URL, srv.Client())

	_, err := c.SearchTracks(context.Background(), "x", "")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperr.Status(err))
	tokens.AssertCalled(t, "Invalidate")
}

func TestSearchTracks_TokenFailureSkipsUpstream(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	tokens := new(MockTokens)
	tokens.On("Token", mock.Anything).Return("", &apperr.UpstreamAuthError{Err: errors.New("bad secret")})
	c := NewClient(tokens, srv.URL, srv.Client())

	_, err := c.SearchTracks(context.Background(), "x", "")
	var ae *apperr.UpstreamAuthError
	assert.True(t, errors.As(err, &ae))
	assert.False(t, called)
}

func TestTrackDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tracks/abc%2F123", r.URL.EscapedPath())
		assert.Equal(t, "US", r.URL.Query().Get("market"))
		_, _ = w.Write([]byte(`{"id":"abc/123","name":"Song","popularity":42}`))
	}))
	defer srv.Close()

	tokens := new(MockTokens)
	tokens.On("Token", mock.Anything).Return("t", nil)
	c := NewClient(tokens, srv.URL, srv.Client())

	raw, err := c.TrackDetail(context.Background(), "abc/123", "US")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc/123","name":"Song","popularity":42}`, string(raw))
}

func TestTrackDetail_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	tokens := new(MockTokens)
	tokens.On("Token", mock.Anything).Return("t", nil)
	c := NewClient(tokens, srv.URL, srv.Client())

	_, err := c.TrackDetail(context.Background(), "missing", "US")
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}
