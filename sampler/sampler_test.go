package sampler_test

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"

	"github.com/quantale/sortition/sampler"
	"github.com/quantale/sortition/utils/sampling"
)

// newTestSampler returns a sampler on a deterministic keyed source so that
// statistical assertions are reproducible across runs.
func newTestSampler(t *testing.T, seed string) *sampler.Sampler {
	t.Helper()
	src, err := sampling.NewKeyedSource(sampling.KeyFromSeed([]byte(seed)))
	require.NoError(t, err)
	return sampler.NewSampler(src)
}

func TestBytes(t *testing.T) {

	s := newTestSampler(t, "bytes")

	t.Run("Length", func(t *testing.T) {
		require.Len(t, s.Bytes(37), 37)
		require.Empty(t, s.Bytes(0))
	})

	t.Run("ByteFrequency", func(t *testing.T) {
		// 256 cells with an expected count of 10000 each. The chi-square
		// statistic has 255 degrees of freedom and concentrates around 255;
		// 400 is far in the tail.
		const perCell = 10000

		counts := make([]int, 256)
		for i := 0; i < 256*perCell/4096; i++ {
			for _, b := range s.Bytes(4096) {
				counts[b]++
			}
		}

		var chi2 float64
		for _, c := range counts {
			d := float64(c) - perCell
			chi2 += d * d / perCell
		}
		require.Less(t, chi2, 400.0)
	})
}

func TestInt(t *testing.T) {

	s := newTestSampler(t, "int")

	t.Run("Int32Bounds", func(t *testing.T) {
		for i := 0; i < 100000; i++ {
			v, err := s.Int32(-3, 17)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, int32(-3))
			require.Less(t, v, int32(17))
		}
	})

	t.Run("Int64Bounds", func(t *testing.T) {
		for i := 0; i < 100000; i++ {
			v, err := s.Int64(-1<<50, 1<<50)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, int64(-1<<50))
			require.Less(t, v, int64(1<<50))
		}
	})

	t.Run("Int32Uniformity", func(t *testing.T) {
		const (
			cells = 16
			draws = 160000
		)

		counts := make([]int, cells)
		for i := 0; i < draws; i++ {
			v, err := s.Int32(0, cells)
			require.NoError(t, err)
			counts[v]++
		}

		expected := float64(draws) / float64(cells)
		var chi2 float64
		for _, c := range counts {
			d := float64(c) - expected
			chi2 += d * d / expected
		}
		// 15 degrees of freedom
		require.Less(t, chi2, 50.0)
	})

	t.Run("InvalidRange", func(t *testing.T) {
		_, err := s.Int32(5, 2)
		require.ErrorIs(t, err, sampler.ErrInvalidRange)

		_, err = s.Int32(5, 5)
		require.ErrorIs(t, err, sampler.ErrInvalidRange)

		_, err = s.Int64(1, 0)
		require.ErrorIs(t, err, sampler.ErrInvalidRange)
	})
}

func TestUnitFloat64(t *testing.T) {

	s := newTestSampler(t, "unit")

	const draws = 100000

	values := make([]float64, draws)
	for i := range values {
		v := s.UnitFloat64()
		require.Greater(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)

		// resolution is 1/100: v sits on the grid up to float rounding
		require.InDelta(t, math.Round(v*100), v*100, 1e-9)

		values[i] = v
	}

	// The draw is uniform over {0.01, ..., 1.00}: mean 0.505 and standard
	// deviation sqrt((100^2-1)/12)/100.
	mean, err := stats.Mean(values)
	require.NoError(t, err)
	require.InDelta(t, 0.505, mean, 5e-3)

	stddev, err := stats.StandardDeviation(values)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt((100*100-1)/12.0)/100, stddev, 5e-3)
}
