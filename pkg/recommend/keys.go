package recommend

import (
	"errors"
	"strings"
	"sync"
)

// ErrNoKeys is returned when no API key is configured.
var ErrNoKeys = errors.New("recommend: no API keys configured")

// ParseKeys splits a comma separated key list, trimming blanks.
func ParseKeys(raw string) []string {
	var keys []string
	for _, part := range strings.Split(raw, ",") {
		if key := strings.TrimSpace(part); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// KeyRing hands out API keys in round-robin order. It is safe for
// concurrent use.
type KeyRing struct {
	mu   sync.Mutex
	keys []string
	next int
}

// NewKeyRing builds a ring over the non-blank keys.
func NewKeyRing(keys ...string) *KeyRing {
	ring := &KeyRing{}
	for _, key := range keys {
		if key = strings.TrimSpace(key); key != "" {
			ring.keys = append(ring.keys, key)
		}
	}
	return ring
}

// Len reports how many keys the ring holds.
func (r *KeyRing) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.keys)
}

// Next returns the next key and its index.
func (r *KeyRing) Next() (int, string, error) {
	if r == nil {
		return 0, "", ErrNoKeys
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.keys) == 0 {
		return 0, "", ErrNoKeys
	}
	idx := r.next
	r.next = (r.next + 1) % len(r.keys)
	return idx, r.keys[idx], nil
}
