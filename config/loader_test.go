package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/robot-brain/types"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "robotbrain.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Defaults(t *testing.T) {
	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "RobotBrain", cfg.Supervisor.Name)
	assert.Equal(t, 30*time.Second, cfg.Supervisor.Timeout)
	assert.Equal(t, 3, cfg.Supervisor.MaxParallelAgents)
	assert.Equal(t, MemoryBackendMemory, cfg.Memory.Backend)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_YAMLOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
supervisor:
  name: TradingBrain
  timeout: 10s
  memory_enabled: true
memory:
  backend: redis
  redis:
    addr: redis.internal:6379
log:
  level: debug
  format: console
`)

	cfg, err := NewLoader().WithConfigPath(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "TradingBrain", cfg.Supervisor.Name)
	assert.Equal(t, 10*time.Second, cfg.Supervisor.Timeout)
	assert.True(t, cfg.Supervisor.MemoryEnabled)
	assert.Equal(t, MemoryBackendRedis, cfg.Memory.Backend)
	assert.Equal(t, "redis.internal:6379", cfg.Memory.Redis.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Untouched sections keep their defaults.
	assert.Equal(t, 3, cfg.Supervisor.MaxParallelAgents)
}

func TestLoader_EnvOverridesYAML(t *testing.T) {
	path := writeConfigFile(t, `
supervisor:
  name: FromFile
  timeout: 10s
`)
	t.Setenv("ROBOTBRAIN_SUPERVISOR_NAME", "FromEnv")
	t.Setenv("ROBOTBRAIN_SUPERVISOR_TIMEOUT", "5s")
	t.Setenv("ROBOTBRAIN_MEMORY_REDIS_ADDR", "env.redis:6379")
	t.Setenv("ROBOTBRAIN_LOG_OUTPUT_PATHS", "stdout, /var/log/robotbrain.log")

	cfg, err := NewLoader().WithConfigPath(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "FromEnv", cfg.Supervisor.Name)
	assert.Equal(t, 5*time.Second, cfg.Supervisor.Timeout)
	assert.Equal(t, "env.redis:6379", cfg.Memory.Redis.Addr)
	assert.Equal(t, []string{"stdout", "/var/log/robotbrain.log"}, cfg.Log.OutputPaths)
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().WithConfigPath("/nonexistent/robotbrain.yaml").Load()
	require.NoError(t, err)
	assert.Equal(t, "RobotBrain", cfg.Supervisor.Name)
}

func TestLoader_InvalidYAMLFails(t *testing.T) {
	path := writeConfigFile(t, "{not valid yaml")

	_, err := NewLoader().WithConfigPath(path).Load()
	assert.Error(t, err)
}

func TestLoader_ValidationFailures(t *testing.T) {
	t.Setenv("ROBOTBRAIN_MEMORY_BACKEND", "carrier-pigeon")
	_, err := NewLoader().Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory backend")
}

func TestLoader_CustomValidator(t *testing.T) {
	_, err := NewLoader().
		WithValidator(func(c *Config) error {
			if c.Supervisor.Name == "RobotBrain" {
				return errors.New("default name not allowed here")
			}
			return nil
		}).
		Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default name not allowed")
}

func TestSupervisorSection_ToSupervisorConfig(t *testing.T) {
	section := SupervisorSection{Name: "X", Timeout: time.Second}
	cfg := section.ToSupervisorConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.MaxParallelAgents)
	assert.Equal(t, types.StrategySkillBased, cfg.Strategy)
}

func TestRoutingSection_Catalog(t *testing.T) {
	var section RoutingSection
	catalog, err := section.Catalog()
	require.NoError(t, err)
	assert.NotEmpty(t, catalog)

	path := writeConfigFile(t, `
- name: support
  keywords: ["refund"]
  agents: ["SupportBot"]
`)
	section.CatalogPath = path
	catalog, err = section.Catalog()
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "support", catalog[0].Name)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	sqlite := DatabaseConfig{Driver: "sqlite", Name: "robotbrain.db"}
	assert.Equal(t, "robotbrain.db", sqlite.DSN())

	pg := DatabaseConfig{
		Driver: "postgres", Host: "db", Port: 5432,
		User: "robot", Password: "s3cret", Name: "brain", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=robot password=s3cret dbname=brain sslmode=disable", pg.DSN())

	unknown := DatabaseConfig{Driver: "oracle"}
	assert.Empty(t, unknown.DSN())
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = NewLogger(LogConfig{Level: "loud"})
	assert.Error(t, err)

	_, err = NewLogger(LogConfig{Format: "xml"})
	assert.Error(t, err)
}
