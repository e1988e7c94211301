package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	ierr "github.com/braintap/kpi-engine/internal/errors"
	"github.com/braintap/kpi-engine/internal/types"
)

// Configuration is the root configuration of the service, populated from
// environment variables (optionally via a .env file) with viper.
type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Server     ServerConfig     `mapstructure:"server"`
	Datasource DatasourceConfig `mapstructure:"datasource"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Sentry     SentryConfig     `mapstructure:"sentry"`
}

type DeploymentConfig struct {
	Mode string `mapstructure:"mode" validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
}

// DatasourceConfig selects where the five raw CSV exports are fetched from.
// Provider is one of s3, http, local.
type DatasourceConfig struct {
	Provider string            `mapstructure:"provider" validate:"required,oneof=s3 http local"`
	S3       S3Config          `mapstructure:"s3"`
	HTTP     HTTPSourceConfig  `mapstructure:"http"`
	Local    LocalSourceConfig `mapstructure:"local"`
	Keys     DatasetKeys       `mapstructure:"keys"`
}

type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type HTTPSourceConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type LocalSourceConfig struct {
	Dir string `mapstructure:"dir"`
}

// DatasetKeys maps each dataset to its object key (or file name) at the
// source. Defaults match the names of the upstream exports.
type DatasetKeys struct {
	Revenue          string `mapstructure:"revenue"`
	Customers        string `mapstructure:"customers"`
	Subscriptions    string `mapstructure:"subscriptions"`
	Payments         string `mapstructure:"payments"`
	FinancialSummary string `mapstructure:"financial_summary"`
}

// ForDataset resolves the object key for a dataset kind.
func (k DatasetKeys) ForDataset(kind types.DatasetKind) string {
	switch kind {
	case types.DatasetRevenue:
		return k.Revenue
	case types.DatasetCustomers:
		return k.Customers
	case types.DatasetSubscriptions:
		return k.Subscriptions
	case types.DatasetPayments:
		return k.Payments
	case types.DatasetFinancialSummary:
		return k.FinancialSummary
	default:
		return ""
	}
}

type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// NewConfig loads, defaults and validates the configuration.
func NewConfig() (*Configuration, error) {
	// A missing .env is fine; env vars may come from the shell.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.SetEnvPrefix("KPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, ierr.WithError(err).
				WithHint("Failed to read configuration file").
				Mark(ierr.ErrValidation)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to unmarshal configuration").
			Mark(ierr.ErrValidation)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", "local")
	v.SetDefault("logging.level", "info")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("datasource.provider", "local")
	v.SetDefault("datasource.local.dir", "./data")
	v.SetDefault("datasource.keys.revenue", "KPI_Revenue_total_counts.csv")
	v.SetDefault("datasource.keys.customers", "customers_6months.csv")
	v.SetDefault("datasource.keys.subscriptions", "subscriptions_6months.csv")
	v.SetDefault("datasource.keys.payments", "payments_outcome_data.csv")
	v.SetDefault("datasource.keys.financial_summary", "financial.csv")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.sample_rate", 1.0)
}

// Validate checks structural validity plus provider-specific requirements.
func (c *Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid configuration").
			Mark(ierr.ErrValidation)
	}

	switch c.Datasource.Provider {
	case "s3":
		if c.Datasource.S3.Bucket == "" || c.Datasource.S3.Region == "" {
			return ierr.NewError("s3 datasource requires bucket and region").
				WithHint("Set datasource.s3.bucket and datasource.s3.region").
				Mark(ierr.ErrValidation)
		}
	case "http":
		if c.Datasource.HTTP.BaseURL == "" {
			return ierr.NewError("http datasource requires base_url").
				WithHint("Set datasource.http.base_url").
				Mark(ierr.ErrValidation)
		}
	case "local":
		if c.Datasource.Local.Dir == "" {
			return ierr.NewError("local datasource requires dir").
				WithHint("Set datasource.local.dir").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// GetDefaultConfig returns a usable configuration without reading the
// environment, for scripts and early logger initialization.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: "local"},
		Logging:    LoggingConfig{Level: types.LogLevelInfo},
		Server:     ServerConfig{Address: ":8080"},
		Datasource: DatasourceConfig{
			Provider: "local",
			Local:    LocalSourceConfig{Dir: "./data"},
			Keys: DatasetKeys{
				Revenue:          "KPI_Revenue_total_counts.csv",
				Customers:        "customers_6months.csv",
				Subscriptions:    "subscriptions_6months.csv",
				Payments:         "payments_outcome_data.csv",
				FinancialSummary: "financial.csv",
			},
		},
		Cache: CacheConfig{Enabled: true, TTL: 5 * time.Minute},
	}
}
