package bloomgo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalable_GrowthTrigger(t *testing.T) {
	sf, err := NewScalable(4, DefaultFalsePositiveRate)
	require.NoError(t, err)
	require.Equal(t, 1, sf.Stages())

	// Adding one more distinct item than the initial capacity saturates the
	// first stage and creates the second.
	for i := 0; i < 5; i++ {
		sf.Add(fmt.Sprintf("item-%d", i))
	}
	assert.GreaterOrEqual(t, sf.Stages(), 2)
}

func TestScalable_NoFalseNegativesAcrossStages(t *testing.T) {
	sf, err := NewScalable(16, DefaultFalsePositiveRate)
	require.NoError(t, err)

	const n = 2000
	for i := 0; i < n; i++ {
		sf.Add(fmt.Sprintf("member-%d", i))
	}
	require.GreaterOrEqual(t, sf.Stages(), 3, "expected the filter to have grown")

	for i := 0; i < n; i++ {
		assert.True(t, sf.Contains(fmt.Sprintf("member-%d", i)), "member-%d must be found", i)
	}
}

func TestScalable_CapacityIsActiveStage(t *testing.T) {
	sf, err := NewScalable(4, DefaultFalsePositiveRate)
	require.NoError(t, err)
	assert.Equal(t, 4, sf.Capacity())

	for i := 0; i < 5; i++ {
		sf.Add(fmt.Sprintf("item-%d", i))
	}

	// Capacity reports the active stage only, not the sum across stages.
	assert.Equal(t, 8, sf.Capacity())
}

func TestScalable_CountSumsStages(t *testing.T) {
	sf, err := NewScalable(8, DefaultFalsePositiveRate)
	require.NoError(t, err)

	novel := 0
	for i := 0; i < 50; i++ {
		if sf.Add(fmt.Sprintf("item-%d", i)) {
			novel++
		}
	}

	// Count is exactly the number of adds judged novel, summed over stages.
	assert.Equal(t, novel, sf.Count())
	// With a 0.1% target, essentially all of 50 distinct items are novel.
	assert.GreaterOrEqual(t, novel, 49)

	// Re-adds of items the active stage has seen never increase the count.
	// (Adds delegate to the active stage, so items absorbed by earlier
	// stages would be counted again — the recent items are the safe probe.)
	before := sf.Count()
	assert.False(t, sf.Add("item-49"))
	assert.False(t, sf.Add("item-48"))
	assert.Equal(t, before, sf.Count())
}

func TestScalable_InvalidConfiguration(t *testing.T) {
	_, err := NewScalable(0, DefaultFalsePositiveRate)
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = NewScalable(DefaultInitialCapacity, 0)
	assert.ErrorIs(t, err, ErrInvalidFalsePositiveRate)

	_, err = NewScalable(DefaultInitialCapacity, 1)
	assert.ErrorIs(t, err, ErrInvalidFalsePositiveRate)
}

func TestScalable_EstimatedFalsePositiveRate(t *testing.T) {
	sf, err := NewScalable(16, 0.01)
	require.NoError(t, err)
	assert.Zero(t, sf.EstimatedFalsePositiveRate())

	for i := 0; i < 100; i++ {
		sf.Add(fmt.Sprintf("item-%d", i))
	}

	est := sf.EstimatedFalsePositiveRate()
	assert.Greater(t, est, 0.0)
	assert.Less(t, est, 1.0)
}

func BenchmarkScalable_Add(b *testing.B) {
	sf, err := NewScalable(DefaultInitialCapacity, DefaultFalsePositiveRate)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sf.Add(fmt.Sprintf("item-%d", i))
	}
}

func BenchmarkScalable_Contains(b *testing.B) {
	sf, err := NewScalable(DefaultInitialCapacity, DefaultFalsePositiveRate)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 10000; i++ {
		sf.Add(fmt.Sprintf("item-%d", i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sf.Contains(fmt.Sprintf("item-%d", i%10000))
	}
}
