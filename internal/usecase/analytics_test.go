package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"SolarAPI/internal/domain/models"
	domrepo "SolarAPI/internal/domain/repository"
	"SolarAPI/internal/services/analytics"
	"SolarAPI/pkg/cache"
	applogger "SolarAPI/pkg/logger"
)

type fakeMetrics struct {
	analyses int
	errors   int
	ingested int
	lastKind string
}

func (m *fakeMetrics) RecordAnalysis(string)         { m.analyses++ }
func (m *fakeMetrics) RecordError(_, kind string)    { m.errors++; m.lastKind = kind }
func (m *fakeMetrics) RecordIngested(n int)          { m.ingested += n }
func (m *fakeMetrics) RecordLatency(string, float64) {}

type fakePublisher struct {
	events []models.AnalysisEvent
	err    error
}

func (p *fakePublisher) PublishAnalysis(_ context.Context, event models.AnalysisEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	require.NoError(t, err)
	return l
}

func newTestAnalytics(t *testing.T, m *fakeMetrics, pub *fakePublisher, c cache.Service) *AnalyticsService {
	t.Helper()
	calc := analytics.NewCalculator(analytics.SampleBounds{Min: 1, Max: 10000})
	var events domrepo.EventPublisher
	if pub != nil {
		events = pub
	}
	return NewAnalyticsService(testLogger(t), calc, m, events, c, 3, 30, 7, 30*time.Second)
}

func TestAnalyzeSalesRecordsMetricsAndEvents(t *testing.T) {
	m := &fakeMetrics{}
	pub := &fakePublisher{}
	svc := newTestAnalytics(t, m, pub, nil)

	summary, err := svc.AnalyzeSales(context.Background(), []models.SalesRecord{
		{Product: "Laptop", Quantity: 5, Price: 1000},
		{Product: "Mouse", Quantity: 10, Price: 50},
	})
	require.NoError(t, err)
	require.Equal(t, 2, summary.RecordCount)
	require.Equal(t, 1, m.analyses)
	require.Len(t, pub.events, 1)
	require.Equal(t, "sales_analyze", pub.events[0].Operation)
	require.Equal(t, 2, pub.events[0].Count)
}

func TestAnalyzeSalesEmptyRecordsError(t *testing.T) {
	m := &fakeMetrics{}
	svc := newTestAnalytics(t, m, nil, nil)

	_, err := svc.AnalyzeSales(context.Background(), nil)
	require.Error(t, err)
	require.Equal(t, 1, m.errors)
	require.Equal(t, "empty_input", m.lastKind)
}

func TestGeneratedStatisticsOutOfRange(t *testing.T) {
	m := &fakeMetrics{}
	svc := newTestAnalytics(t, m, nil, nil)

	_, err := svc.GeneratedStatistics(context.Background(), 20000)
	require.Error(t, err)
	require.Equal(t, "out_of_range", m.lastKind)
}

func TestPredictTrendInsufficientData(t *testing.T) {
	m := &fakeMetrics{}
	svc := newTestAnalytics(t, m, nil, nil)

	_, err := svc.PredictTrend(context.Background(), []float64{10})
	require.Error(t, err)
	require.Equal(t, "insufficient_data", m.lastKind)
}

func TestPredictTrendUsesConfiguredHorizon(t *testing.T) {
	svc := newTestAnalytics(t, &fakeMetrics{}, nil, nil)

	forecast, err := svc.PredictTrend(context.Background(), []float64{10, 20, 30})
	require.NoError(t, err)
	require.Len(t, forecast.Predictions, 3)
}

func TestPublishFailureDoesNotFailAnalysis(t *testing.T) {
	m := &fakeMetrics{}
	pub := &fakePublisher{err: context.DeadlineExceeded}
	svc := newTestAnalytics(t, m, pub, nil)

	_, err := svc.AnalyzeNumbers(context.Background(), []float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 1, m.analyses)
}

func TestChartDataCached(t *testing.T) {
	c := cache.NewMemoryCache()
	defer c.Close()
	svc := newTestAnalytics(t, &fakeMetrics{}, nil, c)

	first, err := svc.ChartData(context.Background())
	require.NoError(t, err)
	require.Len(t, first.Values, 30)

	second, err := svc.ChartData(context.Background())
	require.NoError(t, err)
	require.Equal(t, first.Values, second.Values)
	require.Equal(t, first.Labels, second.Labels)
}
