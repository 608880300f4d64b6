package spotify

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/ACS7th-Bravo/Back/internal/apperr"
	"github.com/Laky-64/gologging"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultTokenLifetime applies only when the accounts service omits expires_in.
	DefaultTokenLifetime = time.Hour
	// ExpiryLeeway is subtracted from the reported lifetime; lifetimes under
	// twice the leeway are halved instead.
	ExpiryLeeway = 30 * time.Second
)

// CachedToken is a bearer token and the instant it stops being usable.
type CachedToken struct {
	Value     string
	ExpiresAt time.Time
}

func (t *CachedToken) validAt(now time.Time) bool {
	return t != nil && t.Value != "" && now.Before(t.ExpiresAt)
}

// TokenCache holds one client-credentials token and refreshes it lazily.
type TokenCache struct {
	cfg  clientcredentials.Config
	http *http.Client
	now  func() time.Time

	mu    sync.RWMutex
	token *CachedToken

	group singleflight.Group
}

func NewTokenCache(clientID, clientSecret, tokenURL string, httpClient *http.Client) *TokenCache {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &TokenCache{
		cfg: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		http: httpClient,
		now:  time.Now,
	}
}

// Token returns the cached token, exchanging credentials first when there is
// none or it has expired. Concurrent callers share a single exchange.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	if t := c.cached(); t != nil {
		return t.Value, nil
	}

	v, err, _ := c.group.Do("token", func() (any, error) {
		// another caller may have refreshed while we waited
		if t := c.cached(); t != nil {
			return t.Value, nil
		}
		return c.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Invalidate drops the cached token so the next Token call refreshes.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	c.token = nil
	c.mu.Unlock()
}

func (c *TokenCache) cached() *CachedToken {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token.validAt(c.now()) {
		return c.token
	}
	return nil
}

func (c *TokenCache) refresh(ctx context.Context) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	tok, err := c.cfg.Token(ctx)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil {
			gologging.ErrorF("spotify: token exchange rejected with status %d", re.Response.StatusCode)
		} else {
			gologging.ErrorF("spotify: token exchange failed: %v", err)
		}
		return "", &apperr.UpstreamAuthError{Err: err}
	}
	if tok.AccessToken == "" {
		return "", &apperr.UpstreamAuthError{Err: errors.New("response missing access_token")}
	}

	now := c.now()
	lifetime := DefaultTokenLifetime
	if reported, ok := reportedLifetime(tok); ok {
		lifetime = reported
	}
	if lifetime > 2*ExpiryLeeway {
		lifetime -= ExpiryLeeway
	} else {
		// short-lived tokens keep half their life instead of expiring on arrival
		lifetime /= 2
	}

	c.mu.Lock()
	c.token = &CachedToken{Value: tok.AccessToken, ExpiresAt: now.Add(lifetime)}
	c.mu.Unlock()

	gologging.InfoF("spotify: access token fetched, valid for %s", lifetime.Round(time.Second))
	return tok.AccessToken, nil
}

// reportedLifetime reads expires_in from the raw token response, since
// clientcredentials leaves Token.ExpiresIn unset. Expiry is the fallback.
func reportedLifetime(tok *oauth2.Token) (time.Duration, bool) {
	var secs float64
	switch v := tok.Extra("expires_in").(type) {
	case float64:
		secs = v
	case int64:
		secs = float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		secs = f
	default:
		if tok.Expiry.IsZero() {
			return 0, false
		}
		d := time.Until(tok.Expiry)
		return d, d > 0
	}
	if secs <= 0 {
		return 0, false
	}
	return time.Duration(secs * float64(time.Second)), true
}
