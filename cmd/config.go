package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/rediscache"
	"dispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	defaultEnvFile  = ".env"
	defaultHTTPPort = "8080"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StorageDriver is StoragePostgres or StorageMemory. It defaults to
	// postgres when DB_HOST is set.
	StorageDriver string

	// RedisAddr enables the rank report cache when set.
	RedisAddr    string
	RankCacheTTL time.Duration

	RankReportSchedule string
	RankReportTop      int

	// Seed loads the demo fixtures on start-up.
	Seed bool
}

// LoadConfig reads configuration in order: env file (if present), environment,
// then flags. args excludes the program name.
func LoadConfig(args []string) (Config, error) {
	flags := pflag.NewFlagSet("dispatch", pflag.ContinueOnError)
	envFile := flags.String("env-file", defaultEnvFile, "file with environment variables")
	httpPort := flags.String("http-port", "", "port to listen on, overrides HTTP_PORT")
	seed := flags.Bool("seed", false, "load the demo fixtures on start-up")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(*envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || flags.Changed("env-file") {
			return Config{}, fmt.Errorf("load %s: %w", *envFile, err)
		}
	}

	cfg := Config{
		HTTPPort:           envOr("HTTP_PORT", defaultHTTPPort),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             envOr("DB_PORT", "5432"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSslMode:          envOr("DB_SSLMODE", "disable"),
		StorageDriver:      os.Getenv("STORAGE_DRIVER"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RankCacheTTL:       rediscache.DefaultTTL,
		RankReportSchedule: envOr("RANK_REPORT_SCHEDULE", jobs.DefaultRankReportSchedule),
		RankReportTop:      jobs.DefaultRankReportTop,
		Seed:               *seed,
	}

	if *httpPort != "" {
		cfg.HTTPPort = *httpPort
	}

	if cfg.StorageDriver == "" {
		cfg.StorageDriver = StorageMemory
		if cfg.DBHost != "" {
			cfg.StorageDriver = StoragePostgres
		}
	}

	if v := os.Getenv("RANK_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("RANK_CACHE_TTL: %w", err)
		}
		cfg.RankCacheTTL = ttl
	}

	if v := os.Getenv("RANK_REPORT_TOP"); v != "" {
		top, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("RANK_REPORT_TOP: %w", err)
		}
		cfg.RankReportTop = top
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid http port: %q", c.HTTPPort))
	}

	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if c.DBHost == "" || c.DBName == "" {
			errs = append(errs, errors.New("postgres storage needs DB_HOST and DB_NAME"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver: %q", c.StorageDriver))
	}

	if c.RankCacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("invalid rank cache ttl: %s", c.RankCacheTTL))
	}
	if c.RankReportTop <= 0 {
		errs = append(errs, fmt.Errorf("invalid rank report size: %d", c.RankReportTop))
	}

	return errors.Join(errs...)
}

func (c Config) Connection() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
