package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	err error
}

func (f fakeChecker) Health(context.Context) error { return f.err }

func newMetaServer(checkers map[string]HealthChecker) *echo.Echo {
	e := echo.New()
	NewMetaHandler("1.0.0", checkers).RegisterRoutes(e)
	return e
}

func TestWelcomeEndpoint(t *testing.T) {
	e := newMetaServer(nil)

	_, env := doJSON(t, e, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, env.Status)

	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, "1.0.0", data["version"])
	require.NotEmpty(t, data["message"])
}

func TestHealthEndpoint(t *testing.T) {
	e := newMetaServer(map[string]HealthChecker{
		"clickhouse": fakeChecker{},
	})

	_, env := doJSON(t, e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, env.Status)

	var data struct {
		Status       string            `json:"status"`
		Dependencies map[string]string `json:"dependencies"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, "healthy", data.Status)
	require.Equal(t, "healthy", data.Dependencies["clickhouse"])
}

func TestHealthEndpointDegraded(t *testing.T) {
	e := newMetaServer(map[string]HealthChecker{
		"clickhouse": fakeChecker{err: errors.New("connection refused")},
	})

	_, env := doJSON(t, e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, env.Status)

	var data struct {
		Status       string            `json:"status"`
		Dependencies map[string]string `json:"dependencies"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, "degraded", data.Status)
	require.Equal(t, "unhealthy", data.Dependencies["clickhouse"])
}

func TestInfoEndpoint(t *testing.T) {
	e := newMetaServer(nil)

	_, env := doJSON(t, e, http.MethodGet, "/api/info", "")
	require.Equal(t, http.StatusOK, env.Status)

	var data struct {
		Name      string   `json:"name"`
		Endpoints []string `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Name)
	require.Contains(t, data.Endpoints, "/api/data/trend/predict")
}
