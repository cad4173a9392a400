package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"SolarAPI/internal/services/analytics"
	"SolarAPI/internal/usecase"
	applogger "SolarAPI/pkg/logger"
)

type noopMetrics struct{}

func (noopMetrics) RecordAnalysis(string)         {}
func (noopMetrics) RecordError(string, string)    {}
func (noopMetrics) RecordIngested(int)            {}
func (noopMetrics) RecordLatency(string, float64) {}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	require.NoError(t, err)
	return l
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	l := testLogger(t)
	calc := analytics.NewCalculator(analytics.SampleBounds{Min: 1, Max: 10000})
	svc := usecase.NewAnalyticsService(l, calc, noopMetrics{}, nil, nil, 3, 30, 7, 30*time.Second)

	e := echo.New()
	NewDataHandler(l, svc).RegisterRoutes(e)
	NewCalculatorHandler(l).RegisterRoutes(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func errorCodes(t *testing.T, env envelope) []string {
	t.Helper()
	var details []struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &details))
	codes := make([]string, 0, len(details))
	for _, d := range details {
		codes = append(codes, d.Code)
	}
	return codes
}

func TestAnalyzeSalesEndpoint(t *testing.T) {
	e := newTestServer(t)

	body := `[
		{"date":"2026-08-01","product":"Laptop","quantity":5,"price":1000},
		{"date":"2026-08-02","product":"Mouse","quantity":10,"price":50},
		{"date":"2026-08-03","product":"Laptop","quantity":3,"price":1000}
	]`
	rec, env := doJSON(t, e, http.MethodPost, "/api/data/sales/analyze", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, http.StatusOK, env.Status)

	var summary struct {
		TotalRevenue   float64 `json:"total_revenue"`
		TotalQuantity  int     `json:"total_quantity"`
		AveragePrice   float64 `json:"average_price"`
		RecordCount    int     `json:"record_count"`
		ProductSummary map[string]struct {
			Quantity int     `json:"quantity"`
			Revenue  float64 `json:"revenue"`
		} `json:"product_summary"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	require.Equal(t, 18, summary.TotalQuantity)
	require.InDelta(t, 8500.0, summary.TotalRevenue, 1e-9)
	require.Equal(t, 3, summary.RecordCount)
	require.Equal(t, 8, summary.ProductSummary["Laptop"].Quantity)
	require.InDelta(t, 8000.0, summary.ProductSummary["Laptop"].Revenue, 1e-9)
}

func TestAnalyzeSalesEmptyBody(t *testing.T) {
	e := newTestServer(t)

	_, env := doJSON(t, e, http.MethodPost, "/api/data/sales/analyze", `[]`)
	require.Equal(t, http.StatusBadRequest, env.Status)
	require.Contains(t, errorCodes(t, env), "ERR_EMPTY_INPUT")
}

func TestGeneratedStatisticsDefaultCount(t *testing.T) {
	e := newTestServer(t)

	_, env := doJSON(t, e, http.MethodGet, "/api/data/statistics/numbers", "")
	require.Equal(t, http.StatusOK, env.Status)

	var stats struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	require.Equal(t, 100, stats.Count)
}

func TestGeneratedStatisticsOutOfRange(t *testing.T) {
	e := newTestServer(t)

	_, env := doJSON(t, e, http.MethodGet, "/api/data/statistics/numbers?count=20000", "")
	require.Equal(t, http.StatusBadRequest, env.Status)
	require.Contains(t, errorCodes(t, env), "ERR_OUT_OF_RANGE")
}

func TestAnalyzeNumbersEndpoint(t *testing.T) {
	e := newTestServer(t)

	_, env := doJSON(t, e, http.MethodPost, "/api/data/statistics/analyze", `[10,20,30,40,50]`)
	require.Equal(t, http.StatusOK, env.Status)

	var analysis struct {
		Mean     float64 `json:"mean"`
		Sum      float64 `json:"sum"`
		Variance float64 `json:"variance"`
		Count    int     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &analysis))
	require.InDelta(t, 30.0, analysis.Mean, 1e-9)
	require.InDelta(t, 150.0, analysis.Sum, 1e-9)
	require.InDelta(t, 200.0, analysis.Variance, 1e-9)
	require.Equal(t, 5, analysis.Count)
}

func TestPredictTrendEndpoint(t *testing.T) {
	e := newTestServer(t)

	_, env := doJSON(t, e, http.MethodPost, "/api/data/trend/predict", `[10,20,30,40,50]`)
	require.Equal(t, http.StatusOK, env.Status)

	var forecast struct {
		Slope       float64   `json:"slope"`
		Trend       string    `json:"trend"`
		Predictions []float64 `json:"predictions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &forecast))
	require.InDelta(t, 10.0, forecast.Slope, 1e-9)
	require.Equal(t, "increasing", forecast.Trend)
	require.Len(t, forecast.Predictions, 3)
	require.InDelta(t, 60.0, forecast.Predictions[0], 1e-9)
}

func TestPredictTrendInsufficientData(t *testing.T) {
	e := newTestServer(t)

	_, env := doJSON(t, e, http.MethodPost, "/api/data/trend/predict", `[10]`)
	require.Equal(t, http.StatusBadRequest, env.Status)
	require.Contains(t, errorCodes(t, env), "ERR_INSUFFICIENT_DATA")
}

func TestDemoSalesEndpoint(t *testing.T) {
	e := newTestServer(t)

	_, env := doJSON(t, e, http.MethodGet, "/api/data/sales/demo", "")
	require.Equal(t, http.StatusOK, env.Status)

	var demo struct {
		Count     int `json:"count"`
		SalesData []struct {
			Product string `json:"product"`
		} `json:"sales_data"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &demo))
	require.Equal(t, 28, demo.Count)
	require.Len(t, demo.SalesData, 28)
}

func TestChartDataEndpoint(t *testing.T) {
	e := newTestServer(t)

	_, env := doJSON(t, e, http.MethodGet, "/api/data/chart/data", "")
	require.Equal(t, http.StatusOK, env.Status)

	var series struct {
		Labels []string  `json:"labels"`
		Values []float64 `json:"values"`
		Type   string    `json:"type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &series))
	require.Len(t, series.Labels, 30)
	require.Len(t, series.Values, 30)
	require.Equal(t, "time_series", series.Type)
}
