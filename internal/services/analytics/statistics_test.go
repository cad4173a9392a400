package analytics

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func testCalculator() *Calculator {
	return NewCalculator(SampleBounds{Min: 1, Max: 10000})
}

func TestDescribeBasic(t *testing.T) {
	stats, err := testCalculator().Describe([]float64{10, 20, 30, 40, 50})
	require.NoError(t, err)

	require.InDelta(t, 30.0, stats.Mean, 1e-9)
	require.InDelta(t, 30.0, stats.Median, 1e-9)
	require.InDelta(t, math.Sqrt(200), stats.Std, 1e-9)
	require.InDelta(t, 10.0, stats.Min, 1e-9)
	require.InDelta(t, 50.0, stats.Max, 1e-9)
	require.Equal(t, 5, stats.Count)
	require.InDelta(t, 20.0, stats.Quartiles.Q1, 1e-9)
	require.InDelta(t, 30.0, stats.Quartiles.Q2, 1e-9)
	require.InDelta(t, 40.0, stats.Quartiles.Q3, 1e-9)
}

func TestDescribeEvenCountMedian(t *testing.T) {
	stats, err := testCalculator().Describe([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.InDelta(t, 2.5, stats.Median, 1e-9)
}

func TestDescribeSingleValue(t *testing.T) {
	stats, err := testCalculator().Describe([]float64{42})
	require.NoError(t, err)
	require.InDelta(t, 42.0, stats.Mean, 1e-9)
	require.InDelta(t, 42.0, stats.Median, 1e-9)
	require.InDelta(t, 0.0, stats.Std, 1e-9)
	require.InDelta(t, 42.0, stats.Quartiles.Q1, 1e-9)
	require.InDelta(t, 42.0, stats.Quartiles.Q3, 1e-9)
}

func TestDescribeEmpty(t *testing.T) {
	_, err := testCalculator().Describe(nil)
	require.Error(t, err)

	var emptyErr *EmptyInputError
	require.True(t, errors.As(err, &emptyErr))
}

func TestDescribeUnsortedInput(t *testing.T) {
	sample := []float64{50, 10, 40, 20, 30}
	stats, err := testCalculator().Describe(sample)
	require.NoError(t, err)
	require.InDelta(t, 30.0, stats.Median, 1e-9)
	require.InDelta(t, 10.0, stats.Min, 1e-9)
	require.InDelta(t, 50.0, stats.Max, 1e-9)

	// The input slice is not reordered.
	require.Equal(t, []float64{50, 10, 40, 20, 30}, sample)
}

func TestDescribeWithTotals(t *testing.T) {
	analysis, err := testCalculator().DescribeWithTotals([]float64{10, 20, 30, 40, 50})
	require.NoError(t, err)

	require.InDelta(t, 30.0, analysis.Mean, 1e-9)
	require.InDelta(t, 150.0, analysis.Sum, 1e-9)
	require.InDelta(t, 200.0, analysis.Variance, 1e-9)
	require.InDelta(t, math.Sqrt(200), analysis.Std, 1e-9)
	require.Equal(t, 5, analysis.Count)
}

func TestDescribeWithTotalsEmpty(t *testing.T) {
	_, err := testCalculator().DescribeWithTotals([]float64{})
	require.Error(t, err)

	var emptyErr *EmptyInputError
	require.True(t, errors.As(err, &emptyErr))
}

func TestDescribeBoundsProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		sample := make([]float64, 1+rng.Intn(200))
		for j := range sample {
			sample[j] = rng.NormFloat64() * 50
		}

		stats, err := testCalculator().Describe(sample)
		require.NoError(t, err)
		require.LessOrEqual(t, stats.Min, stats.Median)
		require.LessOrEqual(t, stats.Median, stats.Max)
		require.LessOrEqual(t, stats.Min, stats.Mean)
		require.LessOrEqual(t, stats.Mean, stats.Max)
	}
}

func TestGenerateSample(t *testing.T) {
	sample, err := testCalculator().GenerateSample(100)
	require.NoError(t, err)
	require.Len(t, sample, 100)

	stats, err := testCalculator().Describe(sample)
	require.NoError(t, err)
	require.Equal(t, 100, stats.Count)
}

func TestGenerateSampleOutOfRange(t *testing.T) {
	calc := testCalculator()

	for _, count := range []int{0, -1, 20000} {
		_, err := calc.GenerateSample(count)
		require.Error(t, err, "count=%d", count)

		var rangeErr *RangeError
		require.True(t, errors.As(err, &rangeErr), "count=%d", count)
		require.Equal(t, 1, rangeErr.Min)
		require.Equal(t, 10000, rangeErr.Max)
		require.Equal(t, count, rangeErr.Value)
	}
}

func TestGenerateSampleCustomBounds(t *testing.T) {
	calc := NewCalculator(SampleBounds{Min: 5, Max: 10})

	_, err := calc.GenerateSample(4)
	require.Error(t, err)

	_, err = calc.GenerateSample(11)
	require.Error(t, err)

	sample, err := calc.GenerateSample(10)
	require.NoError(t, err)
	require.Len(t, sample, 10)
}
