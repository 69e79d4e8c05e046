package simpson

import (
	"testing"

	"github.com/katalvlaran/contourquad/operand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// White-box tests for the sample reference counting and bisection wiring:
// neighbors share boundary storage, and a sample is freed exactly when its
// last holder lets go.

// pooledSample draws a 1×1 sample from the pool so releases are observable.
func pooledSample(t *testing.T, p *operand.Pool, v complex128) *sample {
	t.Helper()
	d, err := p.Get(1, 1)
	require.NoError(t, err)
	d.Set(0, 0, v)

	return newSample(d)
}

// TestSample_RefCount verifies retain/release pairing down to the pool.
func TestSample_RefCount(t *testing.T) {
	p := operand.NewPool()
	s := pooledSample(t, p, 1)

	s.retain()
	s.retain()
	require.Equal(t, 1, p.Live())

	s.release()
	assert.Equal(t, 1, p.Live(), "one holder left, storage stays out")
	s.release()
	assert.Equal(t, 0, p.Live(), "last holder frees the storage")
	assert.Nil(t, s.op)
}

// TestSubinterval_BisectSharing checks the sample wiring of a bisection:
// left gets (fa, n1, fb, n2, fc), right gets (fc, n3, fd, n4, fe), and the
// parent's holds are dropped without freeing shared storage.
func TestSubinterval_BisectSharing(t *testing.T) {
	p := operand.NewPool()

	parent := &subinterval{lb: -1, ub: 1, conv: 1e-8}
	parent.fa = pooledSample(t, p, 10).retain()
	parent.fb = pooledSample(t, p, 11).retain()
	parent.fc = pooledSample(t, p, 12).retain()
	parent.fd = pooledSample(t, p, 13).retain()
	parent.fe = pooledSample(t, p, 14).retain()

	n1 := pooledSample(t, p, 20)
	n2 := pooledSample(t, p, 21)
	n3 := pooledSample(t, p, 22)
	n4 := pooledSample(t, p, 23)

	left, right := parent.bisect(n1, n2, n3, n4)

	assert.Equal(t, 0.0, left.ub)
	assert.Equal(t, 0.0, right.lb)
	assert.Equal(t, parent.conv/2, left.conv)
	assert.Equal(t, parent.conv/2, right.conv)

	// Midpoint sample is literally shared, not copied.
	assert.Same(t, left.fe, right.fa, "children share the parent's midpoint")
	assert.Equal(t, 2, left.fe.refs)

	// Parent interior points became child midpoints; fresh nodes are the
	// children's quarter points.
	assert.Equal(t, complex128(11), left.fc.op.(*operand.Dense).At(0, 0))
	assert.Equal(t, complex128(20), left.fb.op.(*operand.Dense).At(0, 0))
	assert.Equal(t, complex128(13), right.fc.op.(*operand.Dense).At(0, 0))
	assert.Equal(t, complex128(23), right.fd.op.(*operand.Dense).At(0, 0))

	// All nine distinct samples are still held by somebody.
	require.Equal(t, 9, p.Live())

	left.releaseSamples()
	assert.Equal(t, 5, p.Live(), "right still holds its five")
	right.releaseSamples()
	assert.Equal(t, 0, p.Live(), "no neighbor checks needed: counts reach zero exactly once")
}

// TestSubinterval_AccumulateConstant cross-checks the quadrature weights on
// a constant integrand, where every rule must reproduce width × value.
func TestSubinterval_AccumulateConstant(t *testing.T) {
	p := operand.NewPool()

	sub := &subinterval{lb: -0.5, ub: 0.5}
	sub.fa = pooledSample(t, p, 3).retain()
	sub.fb = pooledSample(t, p, 3).retain()
	sub.fc = pooledSample(t, p, 3).retain()
	sub.fd = pooledSample(t, p, 3).retain()
	sub.fe = pooledSample(t, p, 3).retain()

	for _, rule := range []Rule{RuleSimpson, RuleBoole} {
		est, _ := p.Get(1, 1)
		resid, _ := p.Get(1, 1)
		require.NoError(t, sub.accumulate(rule, est, resid))

		assert.InDelta(t, 3.0, real(est.At(0, 0)), 1e-15, "rule %v", rule)
		assert.InDelta(t, 0.0, real(resid.At(0, 0)), 1e-15, "constant has zero residual")
		est.Release()
		resid.Release()
	}

	sub.releaseSamples()
	assert.Equal(t, 0, p.Live())
}
