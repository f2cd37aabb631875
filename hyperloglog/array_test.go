package hyperloglog_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hyperweb/hyperloglog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Rejects(t *testing.T) {
	_, err := hyperloglog.New(3, 1000, 4)
	assert.ErrorIs(t, err, hyperloglog.ErrLog2NumRegistersTooSmall)

	_, err = hyperloglog.New(6, 0, 4)
	assert.ErrorIs(t, err, hyperloglog.ErrUpperBoundTooSmall)

	// p=4 with an upper bound of 1000 derives r=5, and m*r = 16*5 = 80
	// is not a multiple of the 64-bit word width.
	_, err = hyperloglog.New(4, 1000, 1)
	assert.ErrorIs(t, err, hyperloglog.ErrNotWordAligned)
}

func TestInsertCount_Approximate(t *testing.T) {
	arr, err := hyperloglog.New(10, 1<<20, 1)
	require.NoError(t, err)
	c, err := arr.Get(0)
	require.NoError(t, err)

	const n = 20000
	for i := 0; i < n; i++ {
		c.Insert(uint64(i))
	}

	est := float64(c.Count())
	rel := math.Abs(est-n) / n
	assert.Lessf(t, rel, 0.1, "estimate %v too far from true cardinality %d", est, n)
}

func TestCount_EmptyCounterIsZero(t *testing.T) {
	arr, err := hyperloglog.New(6, 1000, 1)
	require.NoError(t, err)
	c, err := arr.Get(0)
	require.NoError(t, err)

	assert.EqualValues(t, 0, c.Count())
}

func TestMergeFrom_UnionMatchesIndependentEstimate(t *testing.T) {
	arr, err := hyperloglog.New(10, 1<<20, 2)
	require.NoError(t, err)
	a, err := arr.Get(0)
	require.NoError(t, err)
	b, err := arr.Get(1)
	require.NoError(t, err)

	for i := 0; i < 5000; i++ {
		a.Insert(uint64(i))
	}
	for i := 3000; i < 9000; i++ {
		b.Insert(uint64(i))
	}

	changed, err := a.MergeFrom(&b)
	require.NoError(t, err)
	assert.True(t, changed)

	est := float64(a.Count())
	const trueUnion = 9000
	rel := math.Abs(est-trueUnion) / trueUnion
	assert.Lessf(t, rel, 0.1, "union estimate %v too far from %d", est, trueUnion)

	changedAgain, err := a.MergeFrom(&b)
	require.NoError(t, err)
	assert.False(t, changedAgain, "re-merging an already-dominated counter must report no change")
}

func TestMergeFrom_RejectsIncompatibleArrays(t *testing.T) {
	a1, err := hyperloglog.New(6, 1000, 1)
	require.NoError(t, err)
	a2, err := hyperloglog.New(10, 1000, 1)
	require.NoError(t, err)

	c1, err := a1.Get(0)
	require.NoError(t, err)
	c2, err := a2.Get(0)
	require.NoError(t, err)

	_, err = c1.MergeFrom(&c2)
	assert.ErrorIs(t, err, hyperloglog.ErrIncompatibleArrays)
}

func TestSwapWith_RejectsIncompatibleArrays(t *testing.T) {
	a1, err := hyperloglog.New(6, 1000, 4)
	require.NoError(t, err)
	a2, err := hyperloglog.New(6, 1000, 5)
	require.NoError(t, err)

	assert.ErrorIs(t, a1.SwapWith(a2), hyperloglog.ErrIncompatibleArrays)
}

func TestSwapWith_ExchangesBuffers(t *testing.T) {
	a1, err := hyperloglog.New(8, 1<<16, 2)
	require.NoError(t, err)
	a2, err := hyperloglog.New(8, 1<<16, 2)
	require.NoError(t, err)

	c1, err := a1.Get(0)
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		c1.Insert(uint64(i))
	}
	before := c1.Count()

	require.NoError(t, a1.SwapWith(a2))

	c2, err := a2.Get(0)
	require.NoError(t, err)
	assert.Equal(t, before, c2.Count())

	c1Again, err := a1.Get(0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, c1Again.Count())
}

func TestCache_CommitRoundTrip(t *testing.T) {
	arr, err := hyperloglog.New(8, 1<<16, 2)
	require.NoError(t, err)
	c, err := arr.Get(0)
	require.NoError(t, err)
	other, err := arr.Get(1)
	require.NoError(t, err)

	for i := 0; i < 3000; i++ {
		other.Insert(uint64(i))
	}

	c.Cache()
	assert.True(t, c.IsCached())
	changed, err := c.MergeFrom(&other)
	require.NoError(t, err)
	assert.True(t, changed)

	// Shared buffer for counter 0 must be untouched until Commit.
	fresh, err := arr.Get(0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, fresh.Count())

	require.NoError(t, c.Commit(false))
	assert.False(t, c.IsCached())

	fresh2, err := arr.Get(0)
	require.NoError(t, err)
	assert.Equal(t, c.Count(), fresh2.Count())
}

func TestCommit_WithoutCacheErrors(t *testing.T) {
	arr, err := hyperloglog.New(6, 1000, 1)
	require.NoError(t, err)
	c, err := arr.Get(0)
	require.NoError(t, err)

	assert.ErrorIs(t, c.Commit(false), hyperloglog.ErrUncommittedCache)
}

func TestGet_RejectsOutOfRangeIndex(t *testing.T) {
	arr, err := hyperloglog.New(6, 1000, 2)
	require.NoError(t, err)

	_, err = arr.Get(-1)
	assert.ErrorIs(t, err, hyperloglog.ErrCounterIndexOutOfRange)
	_, err = arr.Get(2)
	assert.ErrorIs(t, err, hyperloglog.ErrCounterIndexOutOfRange)
}

// Inserting an element a second time must leave the counter bitwise
// unchanged: the register already holds at least the element's value.
func TestInsert_Idempotent(t *testing.T) {
	arr, err := hyperloglog.New(6, 1000, 2)
	require.NoError(t, err)
	a, err := arr.Get(0)
	require.NoError(t, err)
	ref, err := arr.Get(1)
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		a.Insert(uint64(i))
		ref.Insert(uint64(i))
	}
	for i := 0; i < 500; i++ {
		a.Insert(uint64(i))
	}
	assert.Equal(t, ref.Count(), a.Count())

	changed, err := a.MergeFrom(&ref)
	require.NoError(t, err)
	assert.False(t, changed, "double-inserted counter must equal the single-inserted one register-wise")
}

// Merging a counter into itself is a no-op.
func TestMergeFrom_SelfIsNoOp(t *testing.T) {
	arr, err := hyperloglog.New(6, 1000, 1)
	require.NoError(t, err)
	a, err := arr.Get(0)
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		a.Insert(uint64(i))
	}

	self, err := arr.Get(0)
	require.NoError(t, err)
	changed, err := a.MergeFrom(&self)
	require.NoError(t, err)
	assert.False(t, changed)
}

// merge(a,b) then merge(b,a) leaves both counters equal to the register-wise
// max of the originals, for random element streams of varied sizes.
func TestMergeFrom_CommutesToRegisterWiseMax(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 10; trial++ {
		arr, err := hyperloglog.New(6, 1<<16, 2)
		require.NoError(t, err)
		a, err := arr.Get(0)
		require.NoError(t, err)
		b, err := arr.Get(1)
		require.NoError(t, err)

		na, nb := 1+rng.Intn(4000), 1+rng.Intn(4000)
		for i := 0; i < na; i++ {
			a.Insert(rng.Uint64())
		}
		for i := 0; i < nb; i++ {
			b.Insert(rng.Uint64())
		}

		_, err = a.MergeFrom(&b)
		require.NoError(t, err)
		_, err = b.MergeFrom(&a)
		require.NoError(t, err)

		assert.Equal(t, a.Count(), b.Count(), "trial %d", trial)

		changed, err := a.MergeFrom(&b)
		require.NoError(t, err)
		assert.False(t, changed, "trial %d: merged counters must already dominate each other", trial)
	}
}

func ExampleRegisterArray() {
	arr, err := hyperloglog.New(10, 1<<16, 1)
	if err != nil {
		panic(err)
	}
	c, _ := arr.Get(0)
	for i := 0; i < 1000; i++ {
		c.Insert(uint64(i))
	}
	est := c.Count()
	fmt.Println(est > 900 && est < 1100)
	// Output: true
}
