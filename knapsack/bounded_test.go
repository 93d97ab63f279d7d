package knapsack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newBoundedFixture(weights, values, limits []int, maxWeight int, mask bool) *Bounded {
	cfg := DefaultConfig()
	cfg.N = len(weights)
	cfg.MaxWeight = maxWeight
	cfg.Mask = mask
	b := &Bounded{
		cfg:     cfg,
		catalog: &Catalog{Weights: weights, Values: values},
		items:   newLimitedItems(limits),
		encoder: maskedTableEncoder{maxWeight: maxWeight, mask: mask},
		rng:     rand.New(rand.NewSource(1)),
	}
	b.Reset()
	return b
}

func TestBoundedLimitCheckedBeforeWeight(t *testing.T) {
	// item 0 fits but its limit is exhausted
	b := newBoundedFixture([]int{5, 10}, []int{1, 2}, []int{0, 3}, 100, true)

	_, reward, done, _ := b.Step(0)
	assert.Equal(t, 0, reward)
	assert.True(t, done, "exhausted item ends the episode even though it would fit")
	assert.Equal(t, 0, b.CurrentWeight())
	assert.Equal(t, []int{0, 3}, b.Limits(), "no decrement on rejection")
}

func TestBoundedAcceptDecrementsLimit(t *testing.T) {
	b := newBoundedFixture([]int{5, 10}, []int{1, 2}, []int{2, 3}, 100, true)

	_, reward, done, _ := b.Step(0)
	assert.Equal(t, 1, reward)
	assert.False(t, done)
	assert.Equal(t, 5, b.CurrentWeight())
	assert.Equal(t, []int{1, 3}, b.Limits())
}

func TestBoundedOverweightRejectDoesNotMutate(t *testing.T) {
	b := newBoundedFixture([]int{5, 200}, []int{1, 2}, []int{2, 3}, 10, true)

	_, reward, done, _ := b.Step(1)
	assert.Equal(t, 0, reward)
	assert.True(t, done)
	assert.Equal(t, 0, b.CurrentWeight())
	assert.Equal(t, []int{2, 3}, b.Limits())
}

func TestBoundedExactFillTerminates(t *testing.T) {
	b := newBoundedFixture([]int{5, 10}, []int{1, 2}, []int{2, 3}, 10, true)

	_, reward, done, _ := b.Step(1)
	assert.Equal(t, 2, reward)
	assert.True(t, done)
	assert.Equal(t, 10, b.CurrentWeight())
}

func TestBoundedMaskCorrectness(t *testing.T) {
	env, err := NewBounded(map[string]any{"N": 30, "seed": 11})
	require.NoError(t, err)

	checkMask := func(obs *MaskedObservation) {
		limits := env.Limits()
		weights := env.Catalog().Weights
		for i := 0; i < 30; i++ {
			expected := 0.0
			if limits[i] > 0 && env.CurrentWeight()+weights[i] <= DefaultMaxWeight {
				expected = 1.0
			}
			assert.Equal(t, expected, obs.ActionMask.AtVec(i), "mask mismatch at item %d", i)
			assert.Equal(t, 1.0, obs.AvailActions.AtVec(i), "avail_actions is all ones")
		}
	}

	checkMask(env.Reset().(*MaskedObservation))
	for step := 0; step < 50; step++ {
		next, _, done, _ := env.Step(env.SampleAction())
		checkMask(next.(*MaskedObservation))
		if done {
			checkMask(env.Reset().(*MaskedObservation))
		}
	}
}

func TestBoundedResetRestoresLimits(t *testing.T) {
	b := newBoundedFixture([]int{5, 10}, []int{1, 2}, []int{2, 3}, 100, true)

	b.Step(0)
	b.Step(0)
	assert.Equal(t, []int{0, 3}, b.Limits())

	b.Reset()
	assert.Equal(t, []int{2, 3}, b.Limits())
	assert.Equal(t, 0, b.CurrentWeight())

	// the restored slice is a fresh copy, not an alias of the template
	b.Step(0)
	b.Reset()
	assert.Equal(t, []int{2, 3}, b.Limits())
}

func TestBoundedLimitMonotonicity(t *testing.T) {
	env, err := NewBounded(map[string]any{"N": 15, "seed": 5})
	require.NoError(t, err)

	env.Reset()
	prev := env.Limits()
	prevWeight := env.CurrentWeight()
	for step := 0; step < 100; step++ {
		action := env.SampleAction()
		_, _, done, _ := env.Step(action)
		// item values can be zero, so detect acceptance by the weight
		accepted := env.CurrentWeight() > prevWeight
		limits := env.Limits()
		for i := range limits {
			if i == action && accepted {
				assert.Equal(t, prev[i]-1, limits[i], "accepted item decrements by exactly 1")
			} else {
				assert.Equal(t, prev[i], limits[i], "untouched item keeps its limit")
			}
		}
		prev = limits
		prevWeight = env.CurrentWeight()
		if done {
			break
		}
	}
}

func TestBoundedSampleActionFiltersExhausted(t *testing.T) {
	b := newBoundedFixture([]int{5, 10, 15}, []int{1, 2, 3}, []int{0, 3, 0}, 100, true)

	for i := 0; i < 100; i++ {
		assert.Equal(t, 1, b.SampleAction(), "only the item with remaining limit is drawn")
	}
}

func TestBoundedObservationEncoding(t *testing.T) {
	b := newBoundedFixture([]int{5, 10}, []int{1, 2}, []int{2, 3}, 20, true)
	obs := b.Reset().(*MaskedObservation)

	rows, cols := obs.State.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)
	// trailing column holds [max_weight, current_weight, 0]
	assert.Equal(t, 20.0, obs.State.At(0, 2))
	assert.Equal(t, 0.0, obs.State.At(1, 2))
	assert.Equal(t, 0.0, obs.State.At(2, 2))
	// limits row
	assert.Equal(t, 2.0, obs.State.At(2, 0))
	assert.Equal(t, 3.0, obs.State.At(2, 1))
}

func TestBoundedMaskDisabled(t *testing.T) {
	b := newBoundedFixture([]int{5, 10}, []int{1, 2}, []int{2, 3}, 20, false)

	obs, ok := b.Reset().(*TableObservation)
	require.True(t, ok, "mask disabled yields the bare table observation")
	rows, _ := obs.State.Dims()
	assert.Equal(t, 3, rows)
}

func TestBoundedMaskedActions(t *testing.T) {
	// item 1 exhausted, item 2 does not fit
	b := newBoundedFixture([]int{5, 10, 200}, []int{1, 2, 3}, []int{2, 0, 3}, 10, true)

	obs := b.Reset().(*MaskedObservation)
	assert.Equal(t, []int{0, 2}, obs.Actions(), "catalog-admissible items")
	assert.Equal(t, []int{0}, obs.MaskedActions(), "mask additionally filters by weight")
}
