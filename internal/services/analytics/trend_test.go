package analytics

import (
	"errors"
	"testing"

	"SolarAPI/internal/domain/models"

	"github.com/stretchr/testify/require"
)

func TestFitAndForecastIncreasing(t *testing.T) {
	forecast, err := FitAndForecast([]float64{10, 20, 30, 40, 50}, 3)
	require.NoError(t, err)

	require.InDelta(t, 10.0, forecast.Slope, 1e-9)
	require.InDelta(t, 10.0, forecast.Intercept, 1e-9)
	require.Equal(t, models.TrendIncreasing, forecast.Trend)
	require.Len(t, forecast.Predictions, 3)
	require.InDelta(t, 60.0, forecast.Predictions[0], 1e-9)
	require.InDelta(t, 70.0, forecast.Predictions[1], 1e-9)
	require.InDelta(t, 80.0, forecast.Predictions[2], 1e-9)
}

func TestFitAndForecastDecreasing(t *testing.T) {
	forecast, err := FitAndForecast([]float64{50, 40, 30, 20, 10}, 3)
	require.NoError(t, err)

	require.InDelta(t, -10.0, forecast.Slope, 1e-9)
	require.Equal(t, models.TrendDecreasing, forecast.Trend)
	require.Len(t, forecast.Predictions, 3)
}

func TestFitAndForecastFlat(t *testing.T) {
	forecast, err := FitAndForecast([]float64{5, 5, 5, 5}, 2)
	require.NoError(t, err)

	require.InDelta(t, 0.0, forecast.Slope, 1e-9)
	require.InDelta(t, 5.0, forecast.Intercept, 1e-9)
	require.Equal(t, models.TrendFlat, forecast.Trend)
	require.InDelta(t, 5.0, forecast.Predictions[0], 1e-9)
}

func TestFitAndForecastNoisyFit(t *testing.T) {
	// Least squares over points that do not sit exactly on a line.
	forecast, err := FitAndForecast([]float64{1, 3, 2, 5, 4}, 1)
	require.NoError(t, err)

	// slope = (n*sumXY - sumX*sumY) / (n*sumXX - sumX^2) = (5*38 - 10*15) / (5*30 - 100)
	require.InDelta(t, 0.8, forecast.Slope, 1e-9)
	require.InDelta(t, 1.4, forecast.Intercept, 1e-9)
	require.Equal(t, models.TrendIncreasing, forecast.Trend)
}

func TestFitAndForecastInsufficientData(t *testing.T) {
	for _, points := range [][]float64{nil, {10}} {
		_, err := FitAndForecast(points, 3)
		require.Error(t, err)

		var insufficientErr *InsufficientDataError
		require.True(t, errors.As(err, &insufficientErr))
		require.Equal(t, 2, insufficientErr.Need)
		require.Equal(t, len(points), insufficientErr.Got)
	}
}

func TestFitAndForecastHorizon(t *testing.T) {
	forecast, err := FitAndForecast([]float64{1, 2}, 5)
	require.NoError(t, err)
	require.Len(t, forecast.Predictions, 5)

	_, err = FitAndForecast([]float64{1, 2}, 0)
	require.Error(t, err)
}
