package api

import (
	"github.com/labstack/echo/v4"
)

// Registrar is anything that can attach routes to an Echo instance.
type Registrar interface {
	RegisterRoutes(e *echo.Echo)
}

// Router aggregates all API handlers into a single route registrar.
type Router struct {
	handlers []Registrar
}

func NewRouter(
	meta *MetaHandler,
	calculator *CalculatorHandler,
	data *DataHandler,
	live *LiveChartHandler,
	users *UsersHandler,
	tasks *TasksHandler,
) *Router {
	return &Router{handlers: []Registrar{meta, calculator, data, live, users, tasks}}
}

func (r *Router) RegisterRoutes(e *echo.Echo) {
	for _, h := range r.handlers {
		h.RegisterRoutes(e)
	}
}
