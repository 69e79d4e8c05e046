package operand

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Pool recycles Dense buffers by shape. An adaptive refinement loop creates
// and releases many identically shaped scratch matrices; routing them
// through a pool keeps the allocation count flat regardless of how many
// rounds the loop runs.
//
// Pool is safe for concurrent Get/Release, so integrand batches may be
// evaluated from several goroutines against one pool.
type Pool struct {
	mu   sync.Mutex
	free map[[2]int][]*Dense
	live int
	idle int
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{free: make(map[[2]int][]*Dense)}
}

// Get returns a zeroed r×c Dense attached to the pool, reusing an idle
// buffer of that shape when one exists. Returns ErrBadShape for
// non-positive dimensions.
func (p *Pool) Get(r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}

	return p.mustGet(r, c), nil
}

// mustGet is Get after shape validation.
func (p *Pool) mustGet(r, c int) *Dense {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := [2]int{r, c}
	p.live++
	if stack := p.free[key]; len(stack) > 0 {
		d := stack[len(stack)-1]
		p.free[key] = stack[:len(stack)-1]
		p.idle--
		d.m.Zero()

		return d
	}

	return &Dense{m: mat.NewCDense(r, c, nil), pool: p}
}

// put returns a Dense to the free list. Called via Dense.Release.
func (p *Pool) put(d *Dense) {
	p.mu.Lock()
	defer p.mu.Unlock()

	r, c := d.m.Dims()
	key := [2]int{r, c}
	p.free[key] = append(p.free[key], d)
	p.live--
	p.idle++
}

// Clear drops every idle buffer, letting the garbage collector reclaim them.
// Outstanding buffers are unaffected and may still be released afterwards.
func (p *Pool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.free = make(map[[2]int][]*Dense)
	p.idle = 0
}

// Live reports how many buffers are checked out of the pool. A zero value
// after a computation is the leak-free signature.
func (p *Pool) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.live
}

// Idle reports how many buffers sit on the free lists.
func (p *Pool) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.idle
}
