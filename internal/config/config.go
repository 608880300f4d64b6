package config

import (
	"errors"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/joho/godotenv"
)

const (
	defaultSpotifyTokenURL = "https://accounts.spotify.com/api/token"
	defaultSpotifyAPIURL   = "https://api.spotify.com"
	defaultYouTubeAPIURL   = "https://www.googleapis.com/youtube/v3"
)

type Config struct {
	Port string

	SpotifyClientID     string
	SpotifyClientSecret string
	SpotifyTokenURL     string
	SpotifyAPIURL       string

	YouTubeAPIKeys          []string
	YouTubeAPIURL           string
	YouTubeRotationInterval time.Duration
	YouTubeCacheTTL         time.Duration

	RedisURL            string
	CORSAllowedOrigins  []string
	ExposeTokenEndpoint bool
	LogLevel            string
}

// Load reads .env (if present) and the process environment. Every missing
// required variable is reported in one error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:                    env.Str("PORT", "3001"),
		SpotifyClientID:         strings.TrimSpace(env.Str("SPOTIFY_CLIENT_ID", "")),
		SpotifyClientSecret:     strings.TrimSpace(env.Str("SPOTIFY_CLIENT_SECRET", "")),
		SpotifyTokenURL:         env.Str("SPOTIFY_TOKEN_URL", defaultSpotifyTokenURL),
		SpotifyAPIURL:           env.Str("SPOTIFY_API_URL", defaultSpotifyAPIURL),
		YouTubeAPIKeys:          cleanList(env.List("YOUTUBE_API_KEYS", "")),
		YouTubeAPIURL:           env.Str("YOUTUBE_API_URL", defaultYouTubeAPIURL),
		YouTubeRotationInterval: env.Duration("YOUTUBE_KEY_ROTATION_INTERVAL", 2*time.Minute),
		YouTubeCacheTTL:         env.Duration("YOUTUBE_CACHE_TTL", 24*time.Hour),
		RedisURL:                env.Str("REDIS_URL", ""),
		CORSAllowedOrigins:      cleanList(env.List("CORS_ALLOWED_ORIGINS", "*")),
		ExposeTokenEndpoint:     strings.EqualFold(env.Str("EXPOSE_TOKEN_ENDPOINT", "false"), "true"),
		LogLevel:                strings.ToLower(env.Str("LOG_LEVEL", "info")),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var missing []string
	if c.SpotifyClientID == "" {
		missing = append(missing, "SPOTIFY_CLIENT_ID")
	}
	if c.SpotifyClientSecret == "" {
		missing = append(missing, "SPOTIFY_CLIENT_SECRET")
	}
	if len(c.YouTubeAPIKeys) == 0 {
		missing = append(missing, "YOUTUBE_API_KEYS")
	}
	if len(missing) > 0 {
		return errors.New("config: missing required environment variables: " + strings.Join(missing, ", "))
	}
	if c.YouTubeRotationInterval <= 0 {
		return errors.New("config: YOUTUBE_KEY_ROTATION_INTERVAL must be positive")
	}
	return nil
}

// cleanList trims entries and drops blanks, so "a, ,b," yields [a b].
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
