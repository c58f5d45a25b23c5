package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, Normalize([]float64{}))
}

func TestNormalize_SingleValue(t *testing.T) {
	// One value is its own min and max
	assert.Equal(t, []float64{0.0}, Normalize([]float64{42}))
}

func TestNormalize_AllEqual(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0}, Normalize([]float64{7, 7, 7}))
}

func TestNormalize_Range(t *testing.T) {
	got := Normalize([]float64{10, 50, 100})

	require.Len(t, got, 3)
	assert.InDelta(t, 0.0, got[0], 1e-9)
	assert.InDelta(t, 40.0/90.0, got[1], 1e-9)
	assert.InDelta(t, 1.0, got[2], 1e-9)
}

func TestNormalize_NegativeValues(t *testing.T) {
	// Sentiment can be negative; min-max still maps onto [0,1]
	got := Normalize([]float64{-1, 0, 1})

	require.Len(t, got, 3)
	assert.InDelta(t, 0.0, got[0], 1e-9)
	assert.InDelta(t, 0.5, got[1], 1e-9)
	assert.InDelta(t, 1.0, got[2], 1e-9)
}

func TestNormalize_BoundsAndOrder(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	got := Normalize(values)

	for i, v := range got {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		for j := range got {
			if values[i] < values[j] {
				assert.Less(t, got[i], got[j])
			}
		}
	}
}
