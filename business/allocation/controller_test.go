package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namelab/domain"
)

func TestAllocateSumsToTotal(t *testing.T) {
	c := New(42)

	for _, totalN := range []int{1, 7, 50, 100, 333} {
		alloc, err := c.Allocate(totalN)
		require.NoError(t, err)
		require.Len(t, alloc, 5)

		sum := 0
		for _, n := range alloc {
			sum += n
		}
		assert.Equal(t, totalN, sum, "totalN=%d", totalN)
	}
}

func TestAllocateExplorationFloor(t *testing.T) {
	c := New(7)

	// push the posterior hard toward one arm
	for i := 0; i < 20; i++ {
		require.NoError(t, c.Update(domain.PatternC, 45, 50))
		require.NoError(t, c.Update(domain.PatternA, 1, 50))
		require.NoError(t, c.Update(domain.PatternB, 1, 50))
		require.NoError(t, c.Update(domain.PatternD, 1, 50))
		require.NoError(t, c.Update(domain.PatternE, 1, 50))
	}

	alloc, err := c.Allocate(100)
	require.NoError(t, err)

	for p, n := range alloc {
		assert.GreaterOrEqual(t, n, 10, "pattern %s below exploration floor", p)
	}
	best := alloc[domain.PatternC]
	for _, p := range []domain.Pattern{domain.PatternA, domain.PatternB, domain.PatternD, domain.PatternE} {
		assert.Greater(t, best, alloc[p])
	}
}

func TestAllocateSmallTotalFallsBackToEvenSplit(t *testing.T) {
	// a 50% floor over 5 arms over-reserves totalN=7, forcing the fallback
	c := NewWithFloor(1, 0.5)
	alloc, err := c.Allocate(7)
	require.NoError(t, err)

	sum := 0
	for _, n := range alloc {
		sum += n
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 2)
	}
	assert.Equal(t, 7, sum)
}

func TestAllocateZeroAndNegative(t *testing.T) {
	c := New(3)

	alloc, err := c.Allocate(0)
	require.NoError(t, err)
	for _, n := range alloc {
		assert.Equal(t, 0, n)
	}

	_, err = c.Allocate(-1)
	assert.Error(t, err)
}

func TestAllocateDeterministicForSeedAndHistory(t *testing.T) {
	build := func() *Controller {
		c := New(99)
		require.NoError(t, c.Update(domain.PatternA, 10, 40))
		require.NoError(t, c.Update(domain.PatternB, 25, 40))
		require.NoError(t, c.Update(domain.PatternE, 5, 40))
		return c
	}

	a, err := build().Allocate(80)
	require.NoError(t, err)
	b, err := build().Allocate(80)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestUpdateRejectsBadInput(t *testing.T) {
	c := New(5)

	assert.Error(t, c.Update("Z", 1, 2))
	assert.Error(t, c.Update(domain.PatternA, -1, 2))
	assert.Error(t, c.Update(domain.PatternA, 2, -1))
	assert.Error(t, c.Update(domain.PatternA, 5, 3))
	assert.NoError(t, c.Update(domain.PatternA, 3, 3))
}

func TestUpdateShiftsPosterior(t *testing.T) {
	c := New(11)
	require.NoError(t, c.Update(domain.PatternB, 30, 40))

	s := c.State()
	assert.Equal(t, 32.0, s.Alphas[domain.PatternB])
	assert.Equal(t, 12.0, s.Betas[domain.PatternB])
	assert.Equal(t, 2.0, s.Alphas[domain.PatternA])
}

func TestStateRoundTrip(t *testing.T) {
	c := New(17)
	require.NoError(t, c.Update(domain.PatternD, 12, 30))
	require.NoError(t, c.Update(domain.PatternE, 4, 30))

	restored := FromState(c.State())

	assert.Equal(t, c.State(), restored.State())
}

func TestFromStateIgnoresInvalidValues(t *testing.T) {
	s := State{
		Alphas: map[domain.Pattern]float64{domain.PatternA: -3, domain.PatternB: 9},
		Betas:  map[domain.Pattern]float64{domain.PatternA: 0},
		Seed:   21,
	}

	c := FromState(s)
	got := c.State()

	// non-positive stored values fall back to the prior
	assert.Equal(t, 2.0, got.Alphas[domain.PatternA])
	assert.Equal(t, 2.0, got.Betas[domain.PatternA])
	assert.Equal(t, 9.0, got.Alphas[domain.PatternB])
	assert.Equal(t, int64(21), got.Seed)
}
