package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"SolarAPI/internal/services/analytics"
	xlogger "SolarAPI/pkg/logger"
)

// LiveChartHandler streams chart points over a WebSocket connection.
type LiveChartHandler struct {
	logger   *xlogger.Logger
	interval time.Duration
	upgrader websocket.Upgrader
}

// ChartPoint is a single streamed chart sample.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

func NewLiveChartHandler(logger *xlogger.Logger, interval time.Duration) *LiveChartHandler {
	if interval <= 0 {
		interval = time.Second
	}
	return &LiveChartHandler{
		logger:   logger,
		interval: interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *LiveChartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/data/chart/live", h.Stream)
}

// Stream upgrades the connection and pushes one random-walk point per tick
// until the client disconnects.
func (h *LiveChartHandler) Stream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", xlogger.Error(err))
		return err
	}
	defer conn.Close()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	level := 100.0
	for {
		select {
		case <-closed:
			return nil
		case <-c.Request().Context().Done():
			return nil
		case now := <-ticker.C:
			level = analytics.NextChartValue(level)
			point := ChartPoint{
				Label: now.UTC().Format(time.RFC3339),
				Value: level,
			}
			if err := conn.WriteJSON(point); err != nil {
				h.logger.Debug("websocket write ended", xlogger.Error(err))
				return nil
			}
		}
	}
}
