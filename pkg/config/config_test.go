package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
environment: test
clickhouse:
  host: localhost
`

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	require.Equal(t, 8000, cfg.Server.Port)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, 1, cfg.Analytics.SampleMin)
	require.Equal(t, 10000, cfg.Analytics.SampleMax)
	require.Equal(t, 3, cfg.Analytics.TrendHorizon)
	require.Equal(t, 30, cfg.Analytics.ChartPoints)
	require.Equal(t, 7, cfg.Analytics.DemoDays)
}

func TestLoadMissingEnvironment(t *testing.T) {
	_, err := Load(writeConfig(t, "clickhouse:\n  host: localhost\n"))
	require.Error(t, err)
}

func TestLoadMissingClickHouseHost(t *testing.T) {
	_, err := Load(writeConfig(t, "environment: test\n"))
	require.Error(t, err)
}

func TestLoadInvalidSampleBounds(t *testing.T) {
	_, err := Load(writeConfig(t, `
environment: test
clickhouse:
  host: localhost
analytics:
  sample_min: 100
  sample_max: 10
`))
	require.Error(t, err)
}

func TestLoadKafkaEnabledRequiresBrokers(t *testing.T) {
	_, err := Load(writeConfig(t, `
environment: test
clickhouse:
  host: localhost
kafka:
  enabled: true
`))
	require.Error(t, err)
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CLICKHOUSE_HOST", "ch.internal")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := LoadWithEnv(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	require.Equal(t, 9001, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "ch.internal", cfg.ClickHouse.Host)
	require.Equal(t, "redis.internal", cfg.Redis.Host)
	require.Equal(t, 6380, cfg.Redis.Port)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
