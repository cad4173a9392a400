package analytics

import "SolarAPI/internal/domain/models"

// FitAndForecast fits a line to the points by ordinary least squares and
// extrapolates the next horizon values. points[i] is treated as the y-value
// at implicit x-coordinate i; predictions are evaluated at x = n..n+horizon-1.
//
// A slope of exactly zero is reported as "flat" rather than folded into
// "decreasing".
func FitAndForecast(points []float64, horizon int) (*models.TrendForecast, error) {
	if len(points) < 2 {
		return nil, &InsufficientDataError{Op: "fit trend", Need: 2, Got: len(points)}
	}
	if horizon < 1 {
		return nil, &RangeError{Param: "horizon", Min: 1, Max: int(^uint(0) >> 1), Value: horizon}
	}

	// Closed-form normal equations over x = 0..n-1.
	n := float64(len(points))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range points {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	predictions := make([]float64, horizon)
	for i := 0; i < horizon; i++ {
		predictions[i] = slope*float64(len(points)+i) + intercept
	}

	trend := models.TrendFlat
	switch {
	case slope > 0:
		trend = models.TrendIncreasing
	case slope < 0:
		trend = models.TrendDecreasing
	}

	return &models.TrendForecast{
		Slope:       slope,
		Intercept:   intercept,
		Predictions: predictions,
		Trend:       trend,
	}, nil
}
