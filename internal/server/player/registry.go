package player

import (
	"sort"
	"sync/atomic"

	"github.com/sasha-s/go-deadlock"
)

// Registry tracks the last published State of every logged-in player, keyed
// by username.
type Registry struct {
	mu      deadlock.RWMutex
	players map[string]State
}

func NewRegistry() *Registry {
	return &Registry{players: make(map[string]State)}
}

// Upsert stores s unless an identical entry is already present. The compare
// and the write happen under one lock, so concurrent callers never lose an
// update between them. It reports whether the registry changed. Invalid
// states are never stored.
func (r *Registry) Upsert(s State) bool {
	if !s.Valid() {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.players[s.Username]; ok && cur == s {
		return false
	}
	r.players[s.Username] = s
	return true
}

// Get returns the entry for username.
func (r *Registry) Get(username string) (State, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.players[username]
	return s, ok
}

// Remove deletes the entry for username if it still belongs to entityID.
// A newer session that logged in under the same name keeps its entry.
func (r *Registry) Remove(username string, entityID int32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.players[username]
	if !ok || cur.EntityID != entityID {
		return false
	}
	delete(r.players, username)
	return true
}

// Snapshot returns every entry ordered by username.
func (r *Registry) Snapshot() []State {
	r.mu.RLock()
	out := make([]State, 0, len(r.players))
	for _, s := range r.players {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

// EntityIDs hands out entity IDs starting at 0.
type EntityIDs struct {
	next atomic.Int32
}

// Next returns a fresh ID. IDs never repeat within a process.
func (e *EntityIDs) Next() int32 {
	id := e.next.Add(1) - 1
	if id < 0 {
		panic("player: entity IDs exhausted")
	}
	return id
}
