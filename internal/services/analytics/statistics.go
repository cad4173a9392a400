package analytics

import (
	"math"
	"sort"

	"SolarAPI/internal/domain/models"
)

// SampleBounds is the inclusive range of accepted generated-sample sizes.
// The bound caps computational and response-payload cost; it is deployment
// configuration, not a domain constant.
type SampleBounds struct {
	Min int
	Max int
}

// Calculator computes descriptive statistics over numeric samples.
type Calculator struct {
	bounds SampleBounds
}

// NewCalculator creates a Calculator with the given generated-sample bounds.
func NewCalculator(bounds SampleBounds) *Calculator {
	return &Calculator{bounds: bounds}
}

// Bounds returns the configured generated-sample bounds.
func (c *Calculator) Bounds() SampleBounds {
	return c.bounds
}

// Describe computes the quartile summary of a sample: mean, interpolated
// median, population standard deviation, min, max, count and quartiles.
// The input is not mutated.
func (c *Calculator) Describe(sample []float64) (*models.Statistics, error) {
	if len(sample) == 0 {
		return nil, &EmptyInputError{Op: "describe sample"}
	}

	sorted := sortedCopy(sample)
	mean, std := meanAndStd(sample)

	return &models.Statistics{
		Mean:   mean,
		Median: percentile(sorted, 50),
		Std:    std,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Count:  len(sample),
		Quartiles: models.Quartiles{
			Q1: percentile(sorted, 25),
			Q2: percentile(sorted, 50),
			Q3: percentile(sorted, 75),
		},
	}, nil
}

// DescribeWithTotals computes the totals summary of a sample: the same
// central-tendency statistics plus sum and population variance, without
// quartiles.
func (c *Calculator) DescribeWithTotals(sample []float64) (*models.NumberAnalysis, error) {
	if len(sample) == 0 {
		return nil, &EmptyInputError{Op: "analyze numbers"}
	}

	sorted := sortedCopy(sample)
	mean, std := meanAndStd(sample)

	var sum float64
	for _, v := range sample {
		sum += v
	}

	return &models.NumberAnalysis{
		Mean:     mean,
		Median:   percentile(sorted, 50),
		Std:      std,
		Min:      sorted[0],
		Max:      sorted[len(sorted)-1],
		Count:    len(sample),
		Sum:      sum,
		Variance: std * std,
	}, nil
}

func sortedCopy(sample []float64) []float64 {
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)
	return sorted
}

// meanAndStd returns the arithmetic mean and the population standard
// deviation (normalized by count, not count-1).
func meanAndStd(sample []float64) (float64, float64) {
	n := float64(len(sample))

	var sum float64
	for _, v := range sample {
		sum += v
	}
	mean := sum / n

	var sqDiff float64
	for _, v := range sample {
		d := v - mean
		sqDiff += d * d
	}
	return mean, math.Sqrt(sqDiff / n)
}

// percentile computes the p-th percentile of a sorted sample by linear
// interpolation between the adjacent order statistics.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
