package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ACS7th-Bravo/Back/internal/config"
	"github.com/ACS7th-Bravo/Back/internal/provider"
	"github.com/ACS7th-Bravo/Back/internal/spotify"
	"github.com/ACS7th-Bravo/Back/internal/youtube"
	"github.com/Laky-64/gologging"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		gologging.Fatal(err.Error())
	}
	setLogLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{Timeout: 10 * time.Second}

	tokens := spotify.NewTokenCache(cfg.SpotifyClientID, cfg.SpotifyClientSecret, cfg.SpotifyTokenURL, httpClient)
	tracks := spotify.NewClient(tokens, cfg.SpotifyAPIURL, httpClient)

	ring, err := youtube.NewKeyRing(cfg.YouTubeAPIKeys)
	if err != nil {
		gologging.Fatal(err.Error())
	}
	rotator := youtube.NewRotator(ring, cfg.YouTubeRotationInterval)
	rotator.Start(ctx)
	defer rotator.Stop()

	lookupCache, closeCache := newLookupCache(ctx, cfg)
	defer closeCache()
	videos := youtube.NewClient(ring, cfg.YouTubeAPIURL, lookupCache, httpClient)

	srv := provider.NewServer(tracks, videos, tokens, provider.WithTokenEndpoint(cfg.ExposeTokenEndpoint))

	r := srv.Router(
		cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}),
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Timeout(15*time.Second),
	)

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		gologging.InfoF("bravo-back listening on :%s (%d youtube keys, rotation every %s)",
			cfg.Port, ring.Len(), cfg.YouTubeRotationInterval)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			gologging.FatalF("bravo-back: %v", err)
		}
	}()

	<-ctx.Done()
	gologging.InfoF("bravo-back shutting down...")
	rotator.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		gologging.ErrorF("bravo-back: shutdown: %v", err)
	}
}

// newLookupCache returns the Redis-backed video cache when REDIS_URL is set
// and reachable, otherwise a no-op cache.
func newLookupCache(ctx context.Context, cfg config.Config) (youtube.LookupCache, func()) {
	if cfg.RedisURL == "" {
		return youtube.NopCache{}, func() {}
	}
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		gologging.WarnF("invalid REDIS_URL, video cache disabled: %v", err)
		return youtube.NopCache{}, func() {}
	}
	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		gologging.WarnF("redis unreachable, video cache disabled: %v", err)
		_ = rdb.Close()
		return youtube.NopCache{}, func() {}
	}
	gologging.InfoF("video cache enabled (ttl %s)", cfg.YouTubeCacheTTL)
	return youtube.NewRedisCache(rdb, cfg.YouTubeCacheTTL), func() { _ = rdb.Close() }
}
