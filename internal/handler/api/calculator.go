package api

import (
	"github.com/labstack/echo/v4"

	"SolarAPI/internal/domain/models"
	xhttp "SolarAPI/pkg/http"
	xlogger "SolarAPI/pkg/logger"
)

// CalculatorHandler exposes basic arithmetic endpoints.
type CalculatorHandler struct {
	logger *xlogger.Logger
}

func NewCalculatorHandler(logger *xlogger.Logger) *CalculatorHandler {
	return &CalculatorHandler{logger: logger}
}

func (h *CalculatorHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/calculator")
	g.POST("/add", h.Add)
	g.POST("/subtract", h.Subtract)
	g.POST("/multiply", h.Multiply)
	g.POST("/divide", h.Divide)
}

func (h *CalculatorHandler) Add(c echo.Context) error {
	return h.calculate(c, "add", func(a, b float64) float64 { return a + b })
}

func (h *CalculatorHandler) Subtract(c echo.Context) error {
	return h.calculate(c, "subtract", func(a, b float64) float64 { return a - b })
}

func (h *CalculatorHandler) Multiply(c echo.Context) error {
	return h.calculate(c, "multiply", func(a, b float64) float64 { return a * b })
}

func (h *CalculatorHandler) Divide(c echo.Context) error {
	req := &models.CalculationRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if req.B == 0 {
		return xhttp.BadRequestResponse(c, "cannot divide by zero")
	}
	return xhttp.SuccessResponse(c, &models.CalculationResponse{
		Result:    req.A / req.B,
		Operation: "divide",
	})
}

func (h *CalculatorHandler) calculate(c echo.Context, operation string, fn func(a, b float64) float64) error {
	req := &models.CalculationRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, &models.CalculationResponse{
		Result:    fn(req.A, req.B),
		Operation: operation,
	})
}
