package provider

// TrackRecord is one bilingual search hit. Localized fields come from the
// primary-locale result, alternate-locale fields from the paired fallback.
type TrackRecord struct {
	ID                        string  `json:"id"`
	LocalizedName             string  `json:"localizedName"`
	LocalizedArtist           string  `json:"localizedArtist"`
	ImageURL                  *string `json:"imageUrl"`
	OriginalTrackName         string  `json:"originalTrackName"`
	OriginalArtistName        string  `json:"originalArtistName"`
	AlternateLocaleTrackName  string  `json:"alternateLocaleTrackName"`
	AlternateLocaleArtistName string  `json:"alternateLocaleArtistName"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
