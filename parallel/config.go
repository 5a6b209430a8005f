package parallel

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Planner names accepted by Config.Planner.
const (
	PlannerContiguous = "contiguous"
	PlannerRoundRobin = "roundRobin"
)

// DefaultMinBatchSize is the smallest batch handed to the pool by default.
// Sources at or below this size run serially on the calling goroutine.
const DefaultMinBatchSize = 10_000

// Config is the configuration for an Engine.
//
// A Config is read once when the engine is built. Changing it afterwards has
// no effect on the running engine.
type Config struct {
	// PoolSize is the number of persistent worker goroutines.
	// Default: runtime.GOMAXPROCS(0).
	PoolSize int `yaml:"poolSize"`

	// TaskCount is the default upper bound on batches per operation.
	// More batches than workers smooths out uneven per-element cost.
	// Default: 2 * GOMAXPROCS.
	TaskCount int `yaml:"taskCount"`

	// MinBatchSize is the smallest batch worth scheduling on the pool.
	// Default: 10000.
	MinBatchSize int `yaml:"minBatchSize"`

	// QueueCapacity is the number of submitted units that may wait for a
	// worker before submission blocks.
	// Default: 2 * PoolSize.
	QueueCapacity int `yaml:"queueCapacity"`

	// Planner selects the default batch planner: "contiguous" or "roundRobin".
	// Default: "contiguous".
	Planner string `yaml:"planner"`
}

// DefaultConfig returns a Config with defaults sized to the current process.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	procs := runtime.GOMAXPROCS(0)

	return Config{
		PoolSize:      procs,
		TaskCount:     2 * procs,
		MinBatchSize:  DefaultMinBatchSize,
		QueueCapacity: 2 * procs,
		Planner:       PlannerContiguous,
	}
}

// SetDefaults fills in missing configuration values.
//
// QueueCapacity defaults relative to the final PoolSize.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.PoolSize == 0 {
		cfg.PoolSize = defaults.PoolSize
	}
	if cfg.TaskCount == 0 {
		cfg.TaskCount = defaults.TaskCount
	}
	if cfg.MinBatchSize == 0 {
		cfg.MinBatchSize = defaults.MinBatchSize
	}
	if cfg.QueueCapacity == 0 {
		cfg.QueueCapacity = 2 * cfg.PoolSize
	}
	if cfg.Planner == "" {
		cfg.Planner = defaults.Planner
	}
}

// Validate checks the configuration.
//
// Validation Rules:
//   - PoolSize > 0
//   - TaskCount > 0
//   - MinBatchSize > 0
//   - QueueCapacity > 0
//   - Planner is a known planner name
//
// Returns:
//   - error: Validation error, nil if valid
func (cfg *Config) Validate() error {
	if cfg.PoolSize <= 0 {
		return fmt.Errorf("PoolSize must be > 0, got %d", cfg.PoolSize)
	}
	if cfg.TaskCount <= 0 {
		return fmt.Errorf("TaskCount must be > 0, got %d: %w", cfg.TaskCount, ErrInvalidTaskCount)
	}
	if cfg.MinBatchSize <= 0 {
		return fmt.Errorf("MinBatchSize must be > 0, got %d: %w", cfg.MinBatchSize, ErrInvalidBatchSize)
	}
	if cfg.QueueCapacity <= 0 {
		return fmt.Errorf("QueueCapacity must be > 0, got %d", cfg.QueueCapacity)
	}
	if _, err := plannerByName(cfg.Planner); err != nil {
		return err
	}

	return nil
}

// ValidateWithWarnings logs warnings for valid but questionable values.
//
// This is called after Validate() in NewEngine() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.TaskCount < cfg.PoolSize {
		logger.Warn(
			"TaskCount is below PoolSize, some workers will stay idle",
			"taskCount", cfg.TaskCount,
			"poolSize", cfg.PoolSize,
		)
	}

	if cfg.QueueCapacity < cfg.PoolSize {
		logger.Warn(
			"QueueCapacity is below PoolSize, submissions will block often",
			"queueCapacity", cfg.QueueCapacity,
			"poolSize", cfg.PoolSize,
		)
	}

	if cfg.MinBatchSize < 100 {
		logger.Warn(
			"MinBatchSize is very small, scheduling overhead may dominate",
			"minBatchSize", cfg.MinBatchSize,
			"recommended", "1000 or higher",
		)
	}

	if cfg.PoolSize > 4*runtime.NumCPU() {
		logger.Warn(
			"PoolSize far exceeds available CPUs",
			"poolSize", cfg.PoolSize,
			"numCPU", runtime.NumCPU(),
		)
	}
}

// TestConfig returns a configuration that exercises the parallel path on
// small inputs.
//
// Returns:
//   - Config: Four workers, eight tasks, batches of at least two elements
//
// Example:
//
//	cfg := parallel.TestConfig()
//	engine, err := parallel.NewEngine(&cfg)
func TestConfig() Config {
	return Config{
		PoolSize:      4,
		TaskCount:     8,
		MinBatchSize:  2,
		QueueCapacity: 8,
		Planner:       PlannerContiguous,
	}
}

// ParseConfig decodes a YAML document into a Config and applies defaults.
//
// Unknown fields are rejected.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: Decoded configuration with defaults applied
//   - error: Decoding or validation error wrapping ErrInvalidConfig
func ParseConfig(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
//
// Example file:
//
//	poolSize: 8
//	taskCount: 16
//	minBatchSize: 5000
//	planner: contiguous
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	return ParseConfig(data)
}
