package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Seed sources.
const (
	SeedSourceDemo  = "demo"
	SeedSourceMongo = "mongo"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Advice   AdviceConfig   `mapstructure:"advice"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Business BusinessConfig `mapstructure:"business"`
	S3       S3Config       `mapstructure:"s3"`
}

type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	ReleaseMode  bool          `mapstructure:"release_mode"`
}

type StoreConfig struct {
	HistoryLimit int `mapstructure:"history_limit"` // Snapshots kept for undo
}

// AdviceConfig configures the Gemini-backed advice generator.
// An empty APIKey disables the remote call; fallback text is used instead.
type AdviceConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SeedConfig struct {
	Source   string `mapstructure:"source"` // "demo" or "mongo"
	MongoURI string `mapstructure:"mongo_uri"`
	Database string `mapstructure:"database"`
}

type BusinessConfig struct {
	Name         string `mapstructure:"name"` // Overrides the seeded name when set
	MaxLogoBytes int64  `mapstructure:"max_logo_bytes"`
}

// S3Config points at the bucket holding the initial logo. Leave LogoKey
// empty to skip the import.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	LogoKey         string `mapstructure:"logo_key"`
}

// LogoImportEnabled reports whether a logo should be fetched at startup.
func (c S3Config) LogoImportEnabled() bool {
	return c.BucketName != "" && c.LogoKey != ""
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Use replacer for nested keys e.g., server.address -> SERVER_ADDRESS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	// The Gemini key is commonly exported under its own name.
	if err = v.BindEnv("advice.api_key", "ADVICE_API_KEY", "GEMINI_API_KEY", "API_KEY"); err != nil {
		return
	}

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.release_mode", false)
	v.SetDefault("store.history_limit", 50)
	v.SetDefault("advice.api_key", "")
	v.SetDefault("advice.model", "gemini-2.5-flash")
	v.SetDefault("advice.timeout", "15s")
	v.SetDefault("seed.source", SeedSourceDemo)
	v.SetDefault("seed.mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("seed.database", "coach_app_seed")
	v.SetDefault("business.name", "")
	v.SetDefault("business.max_logo_bytes", 2<<20)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.logo_key", "")

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		// No file; defaults and env vars only.
		err = nil
	} else if err != nil {
		return
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}
	if err = config.validate(); err != nil {
		return
	}
	return config, nil
}

func (c Config) validate() error {
	switch c.Seed.Source {
	case SeedSourceDemo, SeedSourceMongo:
	default:
		return fmt.Errorf("seed.source must be %q or %q, got %q", SeedSourceDemo, SeedSourceMongo, c.Seed.Source)
	}
	if c.Business.MaxLogoBytes <= 0 || c.Business.MaxLogoBytes > 2<<20 {
		return fmt.Errorf("business.max_logo_bytes must be between 1 and %d", 2<<20)
	}
	if c.Advice.Timeout <= 0 {
		return errors.New("advice.timeout must be positive")
	}
	// Synchronous advice calls must finish before the server drops the response.
	if c.Server.WriteTimeout > 0 && c.Server.WriteTimeout <= c.Advice.Timeout {
		return fmt.Errorf("server.write_timeout (%s) must be longer than advice.timeout (%s)", c.Server.WriteTimeout, c.Advice.Timeout)
	}
	return nil
}
