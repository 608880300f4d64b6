package youtube

// VideoMatch is the result of a video lookup. VideoID is nil when the
// search returned nothing.
type VideoMatch struct {
	VideoID *string `json:"videoId"`
}

func (m VideoMatch) Found() bool {
	return m.VideoID != nil && *m.VideoID != ""
}

type ytSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}
