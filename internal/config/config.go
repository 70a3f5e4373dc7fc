package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config describes all runtime settings of the perftest binary.
//
// Loaded once in main, validated, then passed down explicitly.
type Config struct {
	Env string // dev|stage|prod

	Log struct {
		Format string // text|json
		Level  string // debug|info|warn|error
	}

	Perf struct {
		Matches      int
		SummaryCalls int
		MaxScore     int
		Workers      int
		Locked       bool  // run through scoreboard.Service
		Seed         int64 // 0 => time based
	}
}

func LoadFromEnv() (Config, error) {
	var c Config

	c.Env = envString("APP_ENV", "dev")
	c.Log.Format = envString("LOG_FORMAT", "text")
	c.Log.Level = envString("LOG_LEVEL", "info")

	c.Perf.Matches = envInt("PERF_MATCHES", 1000)
	c.Perf.SummaryCalls = envInt("PERF_SUMMARY_CALLS", 10000)
	c.Perf.MaxScore = envInt("PERF_MAX_SCORE", 10000)
	c.Perf.Workers = envInt("PERF_WORKERS", 1)
	c.Perf.Locked = envBool("PERF_LOCKED", false)
	c.Perf.Seed = envInt64("PERF_SEED", 0)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.Env {
	case "dev", "stage", "prod":
	default:
		return fmt.Errorf("unsupported APP_ENV=%q (want dev|stage|prod)", c.Env)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported LOG_LEVEL=%q (want debug|info|warn|error)", c.Log.Level)
	}
	if c.Perf.Matches <= 0 {
		return errors.New("PERF_MATCHES must be positive")
	}
	if c.Perf.SummaryCalls <= 0 {
		return errors.New("PERF_SUMMARY_CALLS must be positive")
	}
	if c.Perf.MaxScore <= 0 {
		return errors.New("PERF_MAX_SCORE must be positive")
	}
	if c.Perf.Workers < 1 {
		return errors.New("PERF_WORKERS must be at least 1")
	}
	return nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return n
		}
	}
	return def
}
