package kernel

import "sync"

// Barrier is a reusable rendezvous point for a fixed number of goroutines.
// Each Wait blocks until all parties have arrived, then releases them
// together and opens the next phase.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	phase   uint64
}

// NewBarrier returns a barrier for parties goroutines. parties must be
// positive.
func NewBarrier(parties int) *Barrier {
	if parties < 1 {
		panic("kernel: barrier needs at least one party")
	}
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks until every party has called Wait for the current phase.
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()
	phase := b.phase
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.phase++
		b.cond.Broadcast()
		return
	}
	for phase == b.phase {
		b.cond.Wait()
	}
}

// Phase returns the number of completed rendezvous.
func (b *Barrier) Phase() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.phase
}
