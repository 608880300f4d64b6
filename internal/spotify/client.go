package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ACS7th-Bravo/Back/internal/apperr"
)

const searchLimit = 20

// TokenSource yields a bearer token for the Web API.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Invalidate()
}

type Client struct {
	tokens  TokenSource
	baseURL string
	http    *http.Client
}

func NewClient(tokens TokenSource, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		tokens:  tokens,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// SearchTracks runs a track search. A non-empty locale is sent as
// Accept-Language; an empty one leaves the header unset.
func (c *Client) SearchTracks(ctx context.Context, query, locale string) ([]Track, error) {
	val := url.Values{}
	val.Set("q", query)
	val.Set("type", "track")
	val.Set("limit", fmt.Sprint(searchLimit))

	headers := http.Header{}
	if locale != "" {
		headers.Set("Accept-Language", locale)
	}

	body, err := c.get(ctx, "/v1/search?"+val.Encode(), headers)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var resp searchResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("spotify search: decode: %w", err)
	}
	if resp.Tracks == nil || resp.Tracks.Items == nil {
		return []Track{}, nil
	}
	return resp.Tracks.Items, nil
}

// TrackDetail returns the upstream track object untouched.
func (c *Client) TrackDetail(ctx context.Context, trackID, market string) (json.RawMessage, error) {
	val := url.Values{}
	val.Set("market", market)

	body, err := c.get(ctx, "/v1/tracks/"+url.PathEscape(trackID)+"?"+val.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("spotify track: read: %w", err)
	}
	if !json.Valid(raw) {
		return nil, errors.New("spotify track: invalid json body")
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context, pathAndQuery string, headers http.Header) (io.ReadCloser, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathAndQuery, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header[k] = v
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		if resp.StatusCode == http.StatusUnauthorized {
			c.tokens.Invalidate()
		}
		return nil, &apperr.UpstreamHTTPError{Service: apperr.ServiceSpotify, Status: resp.StatusCode}
	}
	return resp.Body, nil
}
