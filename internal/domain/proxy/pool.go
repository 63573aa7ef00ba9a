package proxy

import (
	"math/rand"
	"sync"
	"time"
)

// Pool holds the authoritative set of currently valid endpoints plus
// refresh bookkeeping. All mutation goes through Replace, which swaps the
// whole snapshot at once; readers always observe either the previous or the
// new snapshot, never a mix.
type Pool struct {
	mu              sync.RWMutex
	endpoints       []Endpoint
	lastRefreshedAt time.Time
	lastFetchTotal  int
	lastValidCount  int
}

func NewPool() *Pool {
	return &Pool{}
}

// Replace atomically swaps the pool contents. fetched is the number of
// candidates considered in the cycle that produced this set.
func (p *Pool) Replace(endpoints []Endpoint, fetched int) {
	snapshot := make([]Endpoint, len(endpoints))
	copy(snapshot, endpoints)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.endpoints = snapshot
	p.lastRefreshedAt = time.Now()
	p.lastFetchTotal = fetched
	p.lastValidCount = len(snapshot)
}

// List returns a defensive copy of the current endpoints.
func (p *Pool) List() []Endpoint {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Endpoint, len(p.endpoints))
	copy(out, p.endpoints)
	return out
}

// Random picks one endpoint uniformly at random.
func (p *Pool) Random() (Endpoint, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.endpoints) == 0 {
		return "", ErrPoolEmpty
	}
	return p.endpoints[rand.Intn(len(p.endpoints))], nil
}

// Size returns the current pool size.
func (p *Pool) Size() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.endpoints)
}

// Stats returns the pool metadata snapshot.
func (p *Pool) Stats() Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Stats{
		Count:           len(p.endpoints),
		LastRefreshedAt: p.lastRefreshedAt,
		LastFetchTotal:  p.lastFetchTotal,
		LastValidCount:  p.lastValidCount,
	}
}
