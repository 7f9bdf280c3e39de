package usecase

import "sync"

// IdempotencyGuard tracks in-flight submissions per claim ID so two concurrent
// Submit calls for the same claim cannot both proceed.
//
// One guard instance is shared across all request handlers. Acquire/release is
// a single mutex-protected check-and-set; submissions for different claims
// never contend beyond the map operation itself.
type IdempotencyGuard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewIdempotencyGuard() *IdempotencyGuard {
	return &IdempotencyGuard{inflight: make(map[string]struct{})}
}

// TryAcquire marks claimID in-flight. It never blocks; it returns false when a
// submission for the claim is already running.
func (g *IdempotencyGuard) TryAcquire(claimID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[claimID]; busy {
		return false
	}
	g.inflight[claimID] = struct{}{}
	return true
}

// Release clears the in-flight mark. Safe to call for a claim that was never
// acquired.
func (g *IdempotencyGuard) Release(claimID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, claimID)
}

// InFlight reports whether a submission for claimID is currently running.
func (g *IdempotencyGuard) InFlight(claimID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.inflight[claimID]
	return busy
}
