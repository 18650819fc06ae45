package assets

import "sync"

// ProgressCounter tracks asynchronous loads. Loader goroutines call Done and
// Fail while the game loop polls IsComplete once per tick, so every method
// is safe for concurrent use.
//
// A counter with nothing registered reports complete.
type ProgressCounter struct {
	mu      sync.Mutex
	pending int
	done    int
	failed  int
	err     error
}

// Add registers n loads that have been issued but not finished. Call it
// before handing the counter to the goroutine doing the work.
func (p *ProgressCounter) Add(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending += n
}

// Done marks one pending load as finished successfully.
func (p *ProgressCounter) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending == 0 {
		panic("assets: ProgressCounter.Done without matching Add")
	}
	p.pending--
	p.done++
}

// Fail marks one pending load as failed. The first error is kept; later
// ones are dropped.
func (p *ProgressCounter) Fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending == 0 {
		panic("assets: ProgressCounter.Fail without matching Add")
	}
	p.pending--
	p.failed++
	if p.err == nil {
		p.err = err
	}
}

// IsComplete reports whether every registered load finished successfully.
// Once any load fails it stays false forever.
func (p *ProgressCounter) IsComplete() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending == 0 && p.failed == 0
}

// Err returns the first failure, or nil while everything is fine.
func (p *ProgressCounter) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Stats returns finished and total load counts for progress display.
func (p *ProgressCounter) Stats() (finished, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done, p.pending + p.done + p.failed
}
