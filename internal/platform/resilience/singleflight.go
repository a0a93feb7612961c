package resilience

import "sync"

// SingleFlight collapses concurrent fetches of the same upstream
// document into one call. Waiters receive the leader's result.
type SingleFlight struct {
	mu       sync.Mutex
	inflight map[string]*flightResult
}

type flightResult struct {
	done chan struct{}
	val  any
	err  error
}

// Do runs fn for key unless a call for the same key is already in
// progress, in which case it waits for that call instead. The third
// return value reports whether the result came from another caller.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if res, ok := g.inflight[key]; ok {
		g.mu.Unlock()
		<-res.done
		return res.val, res.err, true
	}
	if g.inflight == nil {
		g.inflight = make(map[string]*flightResult)
	}
	res := &flightResult{done: make(chan struct{})}
	g.inflight[key] = res
	g.mu.Unlock()

	res.val, res.err = fn()
	close(res.done)

	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()

	return res.val, res.err, false
}
