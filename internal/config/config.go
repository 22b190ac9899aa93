package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Store and archive backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendS3       = "s3"
)

// Config holds every environment-driven setting of the engine
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Store   StoreConfig
	Archive ArchiveConfig
	Mirror  MirrorConfig
	Handoff HandoffConfig
	CORS    CORSConfig
	Seed    bool `envconfig:"SEED_DEMO_AUCTIONS" default:"false"`
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type StoreConfig struct {
	Backend     string `envconfig:"STORE_BACKEND" default:"memory"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	MaxConns    int32  `envconfig:"DATABASE_MAX_CONNS" default:"20"`
}

type ArchiveConfig struct {
	Backend    string        `envconfig:"ARCHIVE_BACKEND" default:"memory"`
	Bucket     string        `envconfig:"S3_BUCKET" default:"auction-archive"`
	Region     string        `envconfig:"S3_REGION" default:"us-east-1"`
	Endpoint   string        `envconfig:"S3_ENDPOINT"`
	AccessKey  string        `envconfig:"S3_ACCESS_KEY"`
	SecretKey  string        `envconfig:"S3_SECRET_KEY"`
	MaxRetries uint64        `envconfig:"ARCHIVE_MAX_RETRIES" default:"5"`
	RetryBase  time.Duration `envconfig:"ARCHIVE_RETRY_BASE" default:"200ms"`
	// RetryEvery is how long the scheduler waits before retrying a failed close
	RetryEvery time.Duration `envconfig:"ARCHIVE_RETRY_EVERY" default:"1m"`
}

type MirrorConfig struct {
	Workers    int           `envconfig:"MIRROR_WORKERS" default:"4"`
	QueueSize  int           `envconfig:"MIRROR_QUEUE_SIZE" default:"1024"`
	MaxRetries uint64        `envconfig:"MIRROR_MAX_RETRIES" default:"3"`
	RetryBase  time.Duration `envconfig:"MIRROR_RETRY_BASE" default:"100ms"`
}

type HandoffConfig struct {
	MaxRetries uint64        `envconfig:"HANDOFF_MAX_RETRIES" default:"3"`
	RetryBase  time.Duration `envconfig:"HANDOFF_RETRY_BASE" default:"200ms"`
}

type CORSConfig struct {
	AllowOrigins []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	MaxAge       time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

// Validate checks cross-field requirements envconfig cannot express
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required for the %s store", BackendPostgres)
		}
	default:
		return fmt.Errorf("config: unknown STORE_BACKEND %q", c.Store.Backend)
	}

	switch c.Archive.Backend {
	case BackendMemory:
	case BackendS3:
		if c.Archive.Bucket == "" {
			return fmt.Errorf("config: S3_BUCKET is required for the %s archive", BackendS3)
		}
	default:
		return fmt.Errorf("config: unknown ARCHIVE_BACKEND %q", c.Archive.Backend)
	}

	if c.Mirror.Workers <= 0 {
		return fmt.Errorf("config: MIRROR_WORKERS must be positive, got %d", c.Mirror.Workers)
	}
	if c.Mirror.QueueSize <= 0 {
		return fmt.Errorf("config: MIRROR_QUEUE_SIZE must be positive, got %d", c.Mirror.QueueSize)
	}
	return nil
}

// ListenAddr returns the gin listen address
func (c Config) ListenAddr() string {
	return ":" + c.Server.Port
}

// LoadConfig reads the configuration from the environment
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewTestConfig returns an in-memory configuration with fast retries
func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{Port: "8889"},
		Log:    LogConfig{Level: "error", Format: "json"},
		Store:  StoreConfig{Backend: BackendMemory},
		Archive: ArchiveConfig{
			Backend:    BackendMemory,
			MaxRetries: 3,
			RetryBase:  time.Millisecond,
			RetryEvery: time.Minute,
		},
		Mirror: MirrorConfig{
			Workers:    2,
			QueueSize:  256,
			MaxRetries: 3,
			RetryBase:  time.Millisecond,
		},
		Handoff: HandoffConfig{
			MaxRetries: 2,
			RetryBase:  time.Millisecond,
		},
		CORS: CORSConfig{AllowOrigins: []string{"*"}, MaxAge: time.Hour},
	}
}
