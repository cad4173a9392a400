package usecase

import (
	"context"
	"errors"
	"time"

	"SolarAPI/internal/domain/models"
	"SolarAPI/internal/domain/repository"
	"SolarAPI/internal/services/analytics"
	"SolarAPI/pkg/cache"
	applogger "SolarAPI/pkg/logger"
)

const chartCacheKey = "chart:data"

// AnalyticsService orchestrates engine calls: it owns no math itself, but
// records metrics, publishes analysis events and caches generated payloads
// around the pure engine functions.
type AnalyticsService struct {
	logger      *applogger.Logger
	calc        *analytics.Calculator
	metrics     repository.Metrics
	events      repository.EventPublisher
	cache       cache.Service
	horizon     int
	chartPoints int
	demoDays    int
	chartTTL    time.Duration
}

// NewAnalyticsService creates the analytics orchestrator. events and cache
// may be nil when the corresponding infrastructure is disabled.
func NewAnalyticsService(
	logger *applogger.Logger,
	calc *analytics.Calculator,
	metrics repository.Metrics,
	events repository.EventPublisher,
	cacheSvc cache.Service,
	horizon, chartPoints, demoDays int,
	chartTTL time.Duration,
) *AnalyticsService {
	return &AnalyticsService{
		logger:      logger,
		calc:        calc,
		metrics:     metrics,
		events:      events,
		cache:       cacheSvc,
		horizon:     horizon,
		chartPoints: chartPoints,
		demoDays:    demoDays,
		chartTTL:    chartTTL,
	}
}

// AnalyzeSales aggregates a batch of sales records.
func (s *AnalyticsService) AnalyzeSales(ctx context.Context, items []models.SalesRecord) (*models.SalesSummary, error) {
	start := time.Now()
	summary, err := analytics.Aggregate(items)
	if err != nil {
		s.metrics.RecordError("sales_analyze", errorKind(err))
		return nil, err
	}

	s.finish(ctx, "sales_analyze", summary.RecordCount, start)
	return summary, nil
}

// DemoSales generates a sample sales batch.
func (s *AnalyticsService) DemoSales() *models.DemoSales {
	return analytics.GenerateDemoSales(s.demoDays, time.Now())
}

// GeneratedStatistics draws a bounded random sample and describes it.
func (s *AnalyticsService) GeneratedStatistics(ctx context.Context, count int) (*models.Statistics, error) {
	start := time.Now()
	sample, err := s.calc.GenerateSample(count)
	if err != nil {
		s.metrics.RecordError("statistics_generate", errorKind(err))
		return nil, err
	}

	stats, err := s.calc.Describe(sample)
	if err != nil {
		s.metrics.RecordError("statistics_generate", errorKind(err))
		return nil, err
	}

	s.finish(ctx, "statistics_generate", stats.Count, start)
	return stats, nil
}

// AnalyzeNumbers computes the totals summary of a submitted sample.
func (s *AnalyticsService) AnalyzeNumbers(ctx context.Context, numbers []float64) (*models.NumberAnalysis, error) {
	start := time.Now()
	analysis, err := s.calc.DescribeWithTotals(numbers)
	if err != nil {
		s.metrics.RecordError("statistics_analyze", errorKind(err))
		return nil, err
	}

	s.finish(ctx, "statistics_analyze", analysis.Count, start)
	return analysis, nil
}

// PredictTrend fits a trend line and forecasts the configured horizon.
func (s *AnalyticsService) PredictTrend(ctx context.Context, points []float64) (*models.TrendForecast, error) {
	start := time.Now()
	forecast, err := analytics.FitAndForecast(points, s.horizon)
	if err != nil {
		s.metrics.RecordError("trend_predict", errorKind(err))
		return nil, err
	}

	s.finish(ctx, "trend_predict", len(points), start)
	return forecast, nil
}

// ChartData returns the generated chart series, cached for a short TTL.
func (s *AnalyticsService) ChartData(ctx context.Context) (*models.ChartSeries, error) {
	if s.cache != nil {
		var cached models.ChartSeries
		if err := s.cache.Get(ctx, chartCacheKey, &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("chart cache read failed", applogger.Error(err))
		}
	}

	series := analytics.GenerateChartSeries(s.chartPoints, time.Now())

	if s.cache != nil {
		if err := s.cache.Set(ctx, chartCacheKey, series, s.chartTTL); err != nil {
			s.logger.Warn("chart cache write failed", applogger.Error(err))
		}
	}
	return series, nil
}

// finish records success metrics and publishes a best-effort analysis event.
func (s *AnalyticsService) finish(ctx context.Context, operation string, count int, start time.Time) {
	s.metrics.RecordAnalysis(operation)
	s.metrics.RecordLatency(operation, time.Since(start).Seconds())

	if s.events == nil {
		return
	}
	event := models.AnalysisEvent{Operation: operation, Count: count, At: time.Now().UTC()}
	if err := s.events.PublishAnalysis(ctx, event); err != nil {
		s.logger.Warn("analysis event publish failed",
			applogger.String("operation", operation),
			applogger.Error(err),
		)
	}
}

func errorKind(err error) string {
	var emptyErr *analytics.EmptyInputError
	var insufficientErr *analytics.InsufficientDataError
	var rangeErr *analytics.RangeError

	switch {
	case errors.As(err, &emptyErr):
		return "empty_input"
	case errors.As(err, &insufficientErr):
		return "insufficient_data"
	case errors.As(err, &rangeErr):
		return "out_of_range"
	default:
		return "internal"
	}
}
