package main

import (
	"context"
	"testing"
	"time"

	"github.com/ACS7th-Bravo/Back/internal/config"
	"github.com/ACS7th-Bravo/Back/internal/youtube"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func TestNewLookupCache(t *testing.T) {
	t.Run("disabled without url", func(t *testing.T) {
		c, closeFn := newLookupCache(context.Background(), config.Config{})
		defer closeFn()
		assert.IsType(t, youtube.NopCache{}, c)
	})

	t.Run("invalid url", func(t *testing.T) {
		c, closeFn := newLookupCache(context.Background(), config.Config{RedisURL: "://nope"})
		defer closeFn()
		assert.IsType(t, youtube.NopCache{}, c)
	})

	t.Run("unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		c, closeFn := newLookupCache(context.Background(), config.Config{RedisURL: "redis://" + addr})
		defer closeFn()
		assert.IsType(t, youtube.NopCache{}, c)
	})

	t.Run("reachable", func(t *testing.T) {
		mr := miniredis.RunT(t)

		c, closeFn := newLookupCache(context.Background(), config.Config{
			RedisURL:        "redis://" + mr.Addr(),
			YouTubeCacheTTL: time.Minute,
		})
		defer closeFn()
		assert.IsType(t, &youtube.RedisCache{}, c)

		c.Set(context.Background(), "Song", "Artist", "vid")
		id, ok := c.Get(context.Background(), "Song", "Artist")
		assert.True(t, ok)
		assert.Equal(t, "vid", id)
	})
}

func TestSetLogLevel(t *testing.T) {
	for _, name := range []string{"debug", "info", "warn", "error", "bogus"} {
		assert.NotPanics(t, func() { setLogLevel(name) })
	}
	setLogLevel("info")
}
