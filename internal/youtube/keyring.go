package youtube

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Laky-64/gologging"
)

// KeyRing cycles through a fixed set of Data API keys. Requests read
// whatever key is current when they are built; nothing is pinned.
type KeyRing struct {
	keys []string
	idx  atomic.Int64
}

func NewKeyRing(keys []string) (*KeyRing, error) {
	if len(keys) == 0 {
		return nil, errors.New("youtube: key ring needs at least one key")
	}
	cp := make([]string, len(keys))
	copy(cp, keys)
	return &KeyRing{keys: cp}, nil
}

func (k *KeyRing) Current() string {
	return k.keys[k.idx.Load()]
}

func (k *KeyRing) Index() int {
	return int(k.idx.Load())
}

func (k *KeyRing) Len() int {
	return len(k.keys)
}

// Advance moves to the next key, wrapping after the last one, and returns
// the new index.
func (k *KeyRing) Advance() int {
	n := int64(len(k.keys))
	for {
		cur := k.idx.Load()
		next := (cur + 1) % n
		if k.idx.CompareAndSwap(cur, next) {
			return int(next)
		}
	}
}

// Rotator advances a KeyRing on a fixed period until stopped.
type Rotator struct {
	ring     *KeyRing
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRotator(ring *KeyRing, interval time.Duration) *Rotator {
	return &Rotator{ring: ring, interval: interval}
}

// Start launches the rotation loop. It is a no-op if already running.
func (r *Rotator) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})

	ticker := time.NewTicker(r.interval)
	go func(done chan struct{}) {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.tick()
			}
		}
	}(r.done)
}

// Stop cancels the loop and waits for it to exit.
func (r *Rotator) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (r *Rotator) tick() {
	idx := r.ring.Advance()
	gologging.InfoF("youtube: switched to api key %d/%d (%s)", idx+1, r.ring.Len(), maskKey(r.ring.Current()))
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
