package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ScientiaCapital/robot-brain/routing"
	"github.com/ScientiaCapital/robot-brain/types"
)

// Config is the complete robot-brain configuration.
type Config struct {
	// Supervisor configures the delegation supervisor.
	Supervisor SupervisorSection `yaml:"supervisor" env:"SUPERVISOR"`

	// Memory configures conversation history.
	Memory MemorySection `yaml:"memory" env:"MEMORY"`

	// Routing configures the skill catalog.
	Routing RoutingSection `yaml:"routing" env:"ROUTING"`

	// Log configures logging.
	Log LogConfig `yaml:"log" env:"LOG"`
}

// SupervisorSection mirrors types.SupervisorConfig with env bindings.
type SupervisorSection struct {
	Name              string        `yaml:"name" env:"NAME"`
	Timeout           time.Duration `yaml:"timeout" env:"TIMEOUT"`
	MaxParallelAgents int           `yaml:"max_parallel_agents" env:"MAX_PARALLEL_AGENTS"`
	Strategy          string        `yaml:"delegation_strategy" env:"STRATEGY"`
	MemoryEnabled     bool          `yaml:"memory_enabled" env:"MEMORY_ENABLED"`
	HistoryLimit      int           `yaml:"conversation_history_limit" env:"HISTORY_LIMIT"`
}

// ToSupervisorConfig converts the section into the engine's config type.
func (s SupervisorSection) ToSupervisorConfig() types.SupervisorConfig {
	cfg := types.SupervisorConfig{
		Name:              s.Name,
		Timeout:           s.Timeout,
		MaxParallelAgents: s.MaxParallelAgents,
		Strategy:          types.DelegationStrategy(s.Strategy),
		MemoryEnabled:     s.MemoryEnabled,
		HistoryLimit:      s.HistoryLimit,
	}
	cfg.Normalize()
	return cfg
}

// Memory backends.
const (
	MemoryBackendMemory   = "memory"
	MemoryBackendRedis    = "redis"
	MemoryBackendDatabase = "database"
)

// MemorySection selects and configures the history backend.
type MemorySection struct {
	// Backend: memory, redis, or database.
	Backend string `yaml:"backend" env:"BACKEND"`

	// MaxTurns caps stored turns per session.
	MaxTurns int `yaml:"max_turns" env:"MAX_TURNS"`

	Redis    RedisConfig    `yaml:"redis" env:"REDIS"`
	Database DatabaseConfig `yaml:"database" env:"DATABASE"`
}

// RedisConfig configures the Redis history backend.
type RedisConfig struct {
	Addr         string `yaml:"addr" env:"ADDR"`
	Password     string `yaml:"password" env:"PASSWORD"`
	DB           int    `yaml:"db" env:"DB"`
	PoolSize     int    `yaml:"pool_size" env:"POOL_SIZE"`
	MinIdleConns int    `yaml:"min_idle_conns" env:"MIN_IDLE_CONNS"`
}

// DatabaseConfig configures the SQL history backend.
type DatabaseConfig struct {
	// Driver: sqlite or postgres.
	Driver   string `yaml:"driver" env:"DRIVER"`
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	Name     string `yaml:"name" env:"NAME"`
	SSLMode  string `yaml:"ssl_mode" env:"SSL_MODE"`
}

// DSN returns the driver connection string.
func (d *DatabaseConfig) DSN() string {
	switch d.Driver {
	case "postgres":
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
		)
	case "sqlite":
		return d.Name
	default:
		return ""
	}
}

// RoutingSection configures the skill catalog. Inline categories win over
// a catalog file; with neither, the built-in catalog applies.
type RoutingSection struct {
	CatalogPath string          `yaml:"catalog_path" env:"CATALOG_PATH"`
	Categories  routing.Catalog `yaml:"categories" env:"-"`
}

// Catalog resolves the configured catalog.
func (r *RoutingSection) Catalog() (routing.Catalog, error) {
	if len(r.Categories) > 0 {
		if err := r.Categories.Validate(); err != nil {
			return nil, err
		}
		return r.Categories, nil
	}
	if r.CatalogPath != "" {
		return routing.LoadCatalog(r.CatalogPath)
	}
	return routing.DefaultCatalog(), nil
}

// LogConfig configures the zap logger.
type LogConfig struct {
	// Level: debug, info, warn, error.
	Level string `yaml:"level" env:"LEVEL"`
	// Format: json or console.
	Format string `yaml:"format" env:"FORMAT"`
	// OutputPaths are zap sink URLs or file paths.
	OutputPaths []string `yaml:"output_paths" env:"OUTPUT_PATHS"`
	// EnableCaller annotates entries with file:line.
	EnableCaller bool `yaml:"enable_caller" env:"ENABLE_CALLER"`
}

// DefaultConfig returns the compiled-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Supervisor: SupervisorSection{
			Name:              "RobotBrain",
			Timeout:           30 * time.Second,
			MaxParallelAgents: 3,
			Strategy:          string(types.StrategySkillBased),
			HistoryLimit:      50,
		},
		Memory: MemorySection{
			Backend:  MemoryBackendMemory,
			MaxTurns: 200,
			Redis: RedisConfig{
				Addr:     "localhost:6379",
				PoolSize: 10,
			},
			Database: DatabaseConfig{
				Driver: "sqlite",
				Name:   "robotbrain.db",
			},
		},
		Log: LogConfig{
			Level:       "info",
			Format:      "json",
			OutputPaths: []string{"stdout"},
		},
	}
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	var errs []string

	if c.Supervisor.Name == "" {
		errs = append(errs, "supervisor name is required")
	}
	if c.Supervisor.Timeout <= 0 {
		errs = append(errs, "supervisor timeout must be positive")
	}
	switch c.Memory.Backend {
	case MemoryBackendMemory, MemoryBackendRedis, MemoryBackendDatabase, "":
	default:
		errs = append(errs, fmt.Sprintf("unknown memory backend %q", c.Memory.Backend))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error", "":
	default:
		errs = append(errs, fmt.Sprintf("unknown log level %q", c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors: %s", strings.Join(errs, "; "))
	}
	return nil
}
