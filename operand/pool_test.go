package operand_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/contourquad/operand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPool_GetReleaseAccounting verifies Live/Idle bookkeeping across the
// checkout/return cycle.
func TestPool_GetReleaseAccounting(t *testing.T) {
	p := operand.NewPool()

	a, err := p.Get(2, 2)
	require.NoError(t, err)
	b, err := p.Get(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Live())
	assert.Equal(t, 0, p.Idle())

	a.Release()
	assert.Equal(t, 1, p.Live())
	assert.Equal(t, 1, p.Idle())

	b.Release()
	assert.Equal(t, 0, p.Live())
	assert.Equal(t, 2, p.Idle())
}

// TestPool_RecyclesZeroed ensures a recycled buffer comes back zeroed, not
// carrying stale entries from its previous life.
func TestPool_RecyclesZeroed(t *testing.T) {
	p := operand.NewPool()

	a, _ := p.Get(1, 2)
	a.Set(0, 0, 9+9i)
	a.Release()

	b, _ := p.Get(1, 2)
	assert.Equal(t, complex128(0), b.At(0, 0), "recycled buffer must be zeroed")
	assert.Equal(t, 0, p.Idle(), "the idle buffer should have been reused")
}

// TestPool_ShapeSegregation ensures buffers are recycled only within their
// own shape class.
func TestPool_ShapeSegregation(t *testing.T) {
	p := operand.NewPool()

	a, _ := p.Get(2, 3)
	a.Release()

	b, _ := p.Get(3, 2)
	r, c := b.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 1, p.Idle(), "the 2×3 buffer must stay idle")
}

// TestPool_NewLikeStaysPooled verifies that NewLike on a pooled Dense draws
// from the same pool.
func TestPool_NewLikeStaysPooled(t *testing.T) {
	p := operand.NewPool()

	a, _ := p.Get(2, 2)
	b := a.NewLike()
	assert.Equal(t, 2, p.Live())

	b.Release()
	a.Release()
	assert.Equal(t, 0, p.Live())
}

// TestPool_Clear drops idle buffers but leaves live ones functional.
func TestPool_Clear(t *testing.T) {
	p := operand.NewPool()

	a, _ := p.Get(2, 2)
	b, _ := p.Get(2, 2)
	b.Release()
	require.Equal(t, 1, p.Idle())

	p.Clear()
	assert.Equal(t, 0, p.Idle())
	assert.Equal(t, 1, p.Live())

	a.Release()
	assert.Equal(t, 0, p.Live())
}

// TestPool_BadShape verifies dimension validation on Get.
func TestPool_BadShape(t *testing.T) {
	p := operand.NewPool()
	_, err := p.Get(0, 1)
	assert.ErrorIs(t, err, operand.ErrBadShape)
}

// TestPool_ConcurrentGetRelease exercises the pool from many goroutines, the
// pattern of a caller evaluating integrand batches in parallel.
func TestPool_ConcurrentGetRelease(t *testing.T) {
	p := operand.NewPool()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				d, err := p.Get(4, 4)
				if err != nil {
					t.Error(err)

					return
				}
				d.Set(0, 0, 1i)
				d.Release()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, p.Live(), "every buffer must have been returned")
}
