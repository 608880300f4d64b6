package spotify

type Artist struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height,omitempty"`
	Width  int    `json:"width,omitempty"`
}

type Album struct {
	ID     string  `json:"id,omitempty"`
	Name   string  `json:"name,omitempty"`
	Images []Image `json:"images"`
}

// Track is the subset of a Spotify track object the proxy reads.
type Track struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Artists    []Artist `json:"artists"`
	Album      Album    `json:"album"`
	DurationMs int      `json:"duration_ms,omitempty"`
	PreviewURL string   `json:"preview_url,omitempty"`
}

// FirstArtist returns the first listed artist name, or "".
func (t Track) FirstArtist() string {
	if len(t.Artists) == 0 {
		return ""
	}
	return t.Artists[0].Name
}

// ImageURL returns the first album image, or nil when the album has none.
func (t Track) ImageURL() *string {
	if len(t.Album.Images) == 0 || t.Album.Images[0].URL == "" {
		return nil
	}
	u := t.Album.Images[0].URL
	return &u
}

type searchResponse struct {
	Tracks *struct {
		Items []Track `json:"items"`
	} `json:"tracks"`
}
