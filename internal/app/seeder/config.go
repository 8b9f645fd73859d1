package seeder

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder pipeline settings.
type Config struct {
	DumpPath      string        `yaml:"dump_path"      env:"SEEDER_DUMP_PATH"`
	Workers       int           `yaml:"workers"        env:"SEEDER_WORKERS"        env-default:"4"`
	BatchSize     int           `yaml:"batch_size"     env:"SEEDER_BATCH_SIZE"     env-default:"200"`
	MaxLineBytes  int           `yaml:"max_line_bytes" env:"SEEDER_MAX_LINE_BYTES" env-default:"16777216"`
	RetryAttempts int           `yaml:"retry_attempts" env:"SEEDER_RETRY_ATTEMPTS" env-default:"3"`
	RetryInterval time.Duration `yaml:"retry_interval" env:"SEEDER_RETRY_INTERVAL" env-default:"500ms"`
	DryRun        bool          `yaml:"dry_run"        env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("seeder config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the pipeline limits.
func (c Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive, got %d", c.BatchSize)
	}
	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("max_line_bytes must be positive, got %d", c.MaxLineBytes)
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry_attempts must not be negative, got %d", c.RetryAttempts)
	}
	return nil
}
