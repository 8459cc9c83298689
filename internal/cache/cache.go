// Package cache memoizes simulation results by a content key derived from the
// full input.
package cache

import (
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/danielpatrickdp/shotsim/internal/sim"
)

// DefaultSize is the number of results kept when no size is configured.
const DefaultSize = 256

// namespace scopes input keys so they never collide with other SHA-1 UUIDs.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("shotsim:input"))

// #region key

// Key returns a deterministic ID for in. Equal inputs always map to the same key.
// Inputs holding NaN or Inf cannot be encoded and return an error.
func Key(in sim.Input) (uuid.UUID, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode input: %w", err)
	}
	return uuid.NewSHA1(namespace, data), nil
}

// #endregion key

// #region memo

// Stats reports cache effectiveness.
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// Memo runs simulations through a fixed-size LRU. It is safe for concurrent use.
// Cached results are shared and must be treated as read-only.
type Memo struct {
	sim    *sim.Simulator
	lru    *lru.Cache[uuid.UUID, *sim.Result]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewMemo creates a memo holding up to size results. size <= 0 uses DefaultSize.
func NewMemo(s *sim.Simulator, size int) (*Memo, error) {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := lru.New[uuid.UUID, *sim.Result](size)
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}
	return &Memo{sim: s, lru: c}, nil
}

// Simulate returns the cached result for in, or runs and stores it.
// Errors are never cached.
func (m *Memo) Simulate(in sim.Input) (*sim.Result, uuid.UUID, error) {
	if err := sim.Validate(in); err != nil {
		return nil, uuid.Nil, err
	}

	key, err := Key(in)
	if err != nil {
		// Unencodable input bypasses the cache; the simulator reports the fault.
		res, simErr := m.sim.Simulate(in)
		return res, uuid.Nil, simErr
	}

	if res, ok := m.lru.Get(key); ok {
		m.hits.Add(1)
		return res, key, nil
	}
	m.misses.Add(1)

	res, err := m.sim.Simulate(in)
	if err != nil {
		return nil, key, err
	}
	m.lru.Add(key, res)
	return res, key, nil
}

// Lookup returns a previously stored result by key.
func (m *Memo) Lookup(key uuid.UUID) (*sim.Result, bool) {
	return m.lru.Get(key)
}

// Stats returns hit and miss counters and the current entry count.
func (m *Memo) Stats() Stats {
	return Stats{
		Hits:   m.hits.Load(),
		Misses: m.misses.Load(),
		Size:   m.lru.Len(),
	}
}

// Purge drops every cached result.
func (m *Memo) Purge() {
	m.lru.Purge()
}

// #endregion memo
