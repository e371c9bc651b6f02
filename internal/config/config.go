package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jcleary/toctidy/internal/toc"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Working directory for per-job input/output files.
	// Empty means a directory under os.TempDir.
	WorkDir string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job and file retention
	JobTTL time.Duration

	// Render defaults, overridable per request.
	MarginColumn    int
	IndentPerLevel  int
	LeaderChar      string
	MinLeaderLength int
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8092"),

		APIKey: os.Getenv("TOCTIDY_API_KEY"),

		WorkDir: envOr("WORK_DIR", ""),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		MarginColumn:    envInt("MARGIN_COLUMN", 78),
		IndentPerLevel:  envInt("INDENT_PER_LEVEL", 4),
		LeaderChar:      envOr("LEADER_CHAR", "."),
		MinLeaderLength: envInt("MIN_LEADER_LENGTH", 3),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("TOCTIDY_API_KEY is required")
	}
	return c.RenderConfig().Validate()
}

// RenderConfig assembles the default render configuration from the
// environment-provided values.
func (c Config) RenderConfig() toc.RenderConfig {
	rc := toc.RenderConfig{
		IndentPerLevel:  c.IndentPerLevel,
		MarginColumn:    c.MarginColumn,
		MinLeaderLength: c.MinLeaderLength,
	}
	for _, r := range c.LeaderChar {
		rc.LeaderChar = r
		break
	}
	return rc
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
