package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateDemoSales(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	demo := GenerateDemoSales(7, now)

	require.Equal(t, 28, demo.Count)
	require.Len(t, demo.SalesData, 28)

	for _, record := range demo.SalesData {
		require.NotEmpty(t, record.Product)
		require.GreaterOrEqual(t, record.Quantity, 1)
		require.LessOrEqual(t, record.Quantity, 19)
		require.GreaterOrEqual(t, record.Price, 10.0)
		require.LessOrEqual(t, record.Price, 1000.0)
	}

	require.Equal(t, "2026-08-23", demo.SalesData[0].Date)
	require.Equal(t, "2026-08-17", demo.SalesData[len(demo.SalesData)-1].Date)
}

func TestGenerateChartSeries(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	series := GenerateChartSeries(30, now)

	require.Len(t, series.Labels, 30)
	require.Len(t, series.Values, 30)
	require.Equal(t, "time_series", series.Type)
	require.Equal(t, "2026-07-25", series.Labels[0])
	require.Equal(t, "2026-08-23", series.Labels[29])
}
