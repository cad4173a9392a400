package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"SolarAPI/internal/domain/models"
	"SolarAPI/internal/services/analytics"
	"SolarAPI/internal/usecase"
	xhttp "SolarAPI/pkg/http"
	xlogger "SolarAPI/pkg/logger"
)

// DataHandler exposes the analytics engine over HTTP.
type DataHandler struct {
	logger    *xlogger.Logger
	analytics *usecase.AnalyticsService
}

func NewDataHandler(logger *xlogger.Logger, analyticsSvc *usecase.AnalyticsService) *DataHandler {
	return &DataHandler{logger: logger, analytics: analyticsSvc}
}

func (h *DataHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/data")
	g.POST("/sales/analyze", h.AnalyzeSales)
	g.GET("/sales/demo", h.DemoSales)
	g.GET("/statistics/numbers", h.GeneratedStatistics)
	g.POST("/statistics/analyze", h.AnalyzeNumbers)
	g.GET("/chart/data", h.ChartData)
	g.POST("/trend/predict", h.PredictTrend)
}

// AnalyzeSales aggregates a posted batch of sales records.
func (h *DataHandler) AnalyzeSales(c echo.Context) error {
	var items []models.SalesRecord
	if err := c.Bind(&items); err != nil {
		return xhttp.BadRequestResponse(c, "invalid sales payload")
	}

	summary, err := h.analytics.AnalyzeSales(c.Request().Context(), items)
	if err != nil {
		h.logger.Warn("sales analyze failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, summary)
}

// DemoSales returns a generated sample sales batch.
func (h *DataHandler) DemoSales(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.analytics.DemoSales())
}

// GeneratedStatistics draws a random sample and describes it.
func (h *DataHandler) GeneratedStatistics(c echo.Context) error {
	req := &models.GenerateStatisticsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	stats, err := h.analytics.GeneratedStatistics(c.Request().Context(), req.Count)
	if err != nil {
		h.logger.Warn("statistics generate failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, stats)
}

// AnalyzeNumbers computes the totals summary of a posted sample.
func (h *DataHandler) AnalyzeNumbers(c echo.Context) error {
	var numbers []float64
	if err := c.Bind(&numbers); err != nil {
		return xhttp.BadRequestResponse(c, "invalid numbers payload")
	}

	analysis, err := h.analytics.AnalyzeNumbers(c.Request().Context(), numbers)
	if err != nil {
		h.logger.Warn("numbers analyze failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, analysis)
}

// ChartData returns the cached chart series.
func (h *DataHandler) ChartData(c echo.Context) error {
	series, err := h.analytics.ChartData(c.Request().Context())
	if err != nil {
		h.logger.Error("chart data failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, series)
}

// PredictTrend fits a trend line over posted points and forecasts ahead.
func (h *DataHandler) PredictTrend(c echo.Context) error {
	var points []float64
	if err := c.Bind(&points); err != nil {
		return xhttp.BadRequestResponse(c, "invalid points payload")
	}

	forecast, err := h.analytics.PredictTrend(c.Request().Context(), points)
	if err != nil {
		h.logger.Warn("trend predict failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, forecast)
}

// engineError maps engine errors to application errors with HTTP status.
func engineError(err error) error {
	var emptyErr *analytics.EmptyInputError
	var insufficientErr *analytics.InsufficientDataError
	var rangeErr *analytics.RangeError

	switch {
	case errors.As(err, &emptyErr):
		return xhttp.NewAppError("ERR_EMPTY_INPUT", "", err.Error(), http.StatusBadRequest).WithError(err)
	case errors.As(err, &insufficientErr):
		return xhttp.NewAppError("ERR_INSUFFICIENT_DATA", "", err.Error(), http.StatusBadRequest).WithError(err)
	case errors.As(err, &rangeErr):
		return xhttp.NewAppError("ERR_OUT_OF_RANGE", rangeErr.Param, err.Error(), http.StatusBadRequest).
			WithParam("min", rangeErr.Min).
			WithParam("max", rangeErr.Max).
			WithError(err)
	default:
		return err
	}
}
