package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ACS7th-Bravo/Back/internal/apperr"
	"github.com/Laky-64/gologging"
)

type Client struct {
	keys    *KeyRing
	baseURL string
	http    *http.Client
	cache   LookupCache
}

func NewClient(keys *KeyRing, baseURL string, cache LookupCache, httpClient *http.Client) *Client {
	if cache == nil {
		cache = NopCache{}
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		keys:    keys,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		cache:   cache,
	}
}

// SearchQuery is the free-text query sent for a track/artist pair.
func SearchQuery(title, artist string) string {
	return title + " " + artist + " official audio"
}

// SearchVideo returns the top video for the track. An empty result set is a
// VideoMatch with a nil id, not an error.
func (c *Client) SearchVideo(ctx context.Context, title, artist string) (VideoMatch, error) {
	if id, ok := c.cache.Get(ctx, title, artist); ok {
		return VideoMatch{VideoID: &id}, nil
	}

	val := url.Values{}
	val.Set("part", "snippet")
	val.Set("type", "video")
	val.Set("maxResults", "1")
	val.Set("q", SearchQuery(title, artist))
	val.Set("key", c.keys.Current())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+val.Encode(), nil)
	if err != nil {
		return VideoMatch{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return VideoMatch{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		gologging.WarnF("youtube: search status %d with key %d/%d", resp.StatusCode, c.keys.Index()+1, c.keys.Len())
		return VideoMatch{}, &apperr.UpstreamHTTPError{Service: apperr.ServiceYouTube, Status: resp.StatusCode}
	}

	var body ytSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return VideoMatch{}, fmt.Errorf("youtube search: decode: %w", err)
	}

	if len(body.Items) == 0 || body.Items[0].ID.VideoID == "" {
		return VideoMatch{}, nil
	}

	id := body.Items[0].ID.VideoID
	c.cache.Set(ctx, title, artist, id)
	return VideoMatch{VideoID: &id}, nil
}
