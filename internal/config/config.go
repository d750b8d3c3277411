package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug       bool   `mapstructure:"debug"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "30m"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m"
}

// NATSConfig holds NATS JetStream configuration of the transaction feed
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	Subject        string        `mapstructure:"subject"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
}

// LedgerConfig holds the chain parameters the trigger pipeline depends on
type LedgerConfig struct {
	BaseAsset           string `mapstructure:"base_asset"`
	Unit                int64  `mapstructure:"unit"`
	ShortTxTypeEncoding bool   `mapstructure:"short_tx_type_encoding"`
	// PersistOverflowStatus records triggers whose status reports an integer overflow.
	// When false they are dropped with a warning.
	PersistOverflowStatus bool `mapstructure:"persist_overflow_status"`
}

// MetricsConfig holds the prometheus endpoint configuration
type MetricsConfig struct {
	Address string `mapstructure:"address"`
}

// TriggerParserConfig holds configuration for trigger-parser
type TriggerParserConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Ledger     LedgerConfig   `mapstructure:"ledger"`
	Metrics    MetricsConfig  `mapstructure:"metrics"`
}

// ComposerConfig holds configuration for trigger-compose
type ComposerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Ledger     LedgerConfig   `mapstructure:"ledger"`
}

// LoadTriggerParserConfig loads configuration for trigger-parser
func LoadTriggerParserConfig(configFile string, envPath string) (*TriggerParserConfig, error) {
	v := configureViper("trigger-parser", configFile, envPath)

	setDatabaseDefaults(v)
	setLedgerDefaults(v)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "TRANSACTIONS")
	v.SetDefault("nats.consumer_name", "trigger-parser")
	v.SetDefault("nats.subject", "transactions.>")
	v.SetDefault("nats.connection_name", "trigger-parser")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", -1)
	v.SetDefault("metrics.address", ":9090")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg TriggerParserConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Ledger.validate(); err != nil {
		return nil, err
	}
	if cfg.NATS.URL == "" {
		return nil, errors.New("nats.url is required")
	}

	return &cfg, nil
}

// LoadComposerConfig loads configuration for trigger-compose
func LoadComposerConfig(configFile string, envPath string) (*ComposerConfig, error) {
	v := configureViper("trigger-compose", configFile, envPath)

	setDatabaseDefaults(v)
	setLedgerDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg ComposerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Ledger.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 4)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

func setLedgerDefaults(v *viper.Viper) {
	v.SetDefault("ledger.base_asset", "XCP")
	v.SetDefault("ledger.unit", 100000000)
	v.SetDefault("ledger.short_tx_type_encoding", true)
	v.SetDefault("ledger.persist_overflow_status", true)
}

func (c LedgerConfig) validate() error {
	if c.BaseAsset == "" {
		return errors.New("ledger.base_asset is required")
	}
	if c.Unit <= 0 {
		return errors.New("ledger.unit must be positive")
	}
	return nil
}

// readConfig reads the config file; a missing file leaves defaults and environment variables
func readConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to read config: %w", err)
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_TRIGGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds every key so env vars map to struct fields without a config file
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"environment",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.subject",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		// Ledger
		"ledger.base_asset",
		"ledger.unit",
		"ledger.short_tx_type_encoding",
		"ledger.persist_overflow_status",
		// Metrics
		"metrics.address",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Shared base first, then local, then the per-service local file
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile))
	}
}

// ChdirRepoRoot walks up from the working directory to the first one holding a config/ directory
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for i := 0; i < 5; i++ {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
