// Package config loads service configuration from a YAML file plus
// UNFT_-prefixed environment variables, with .env files layered in for
// local development.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/universalnft/nft-bridge/internal/domain"
)

// BaseConfig holds settings shared by every process.
type BaseConfig struct {
	Debug       bool   `mapstructure:"debug"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// NATSConfig holds NATS JetStream settings for the gateway transport and
// the event stream.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	ConnectionName string        `mapstructure:"connection_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
}

// ServerConfig holds HTTP server settings. Timeouts are in seconds.
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	IdleTimeout  int    `mapstructure:"idle_timeout"`
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	JWTPublicKey string `mapstructure:"jwt_public_key"`
}

// BridgeConfig holds protocol-level settings.
type BridgeConfig struct {
	// HomeChain is the chain id this deployment is anchored to
	HomeChain domain.ChainID `mapstructure:"home_chain"`
	// Owner is the address allowed to call admin operations
	Owner string `mapstructure:"owner"`
	// Gateway is the initial cross-chain gateway address
	Gateway string `mapstructure:"gateway"`
	// GasLimit is the default gas budget attached to outbound calls
	GasLimit uint64 `mapstructure:"gas_limit"`
	// TokenSalt namespaces token id derivation; each mint adds its own
	// fresh unit identity on top of it
	TokenSalt string `mapstructure:"token_salt"`
	// RelayMaxRetries bounds gateway publish retries before the call fails
	RelayMaxRetries uint64 `mapstructure:"relay_max_retries"`
}

// Config is the full configuration for the bridged process.
type Config struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Server     ServerConfig   `mapstructure:"server"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Bridge     BridgeConfig   `mapstructure:"bridge"`
}

// Load reads the bridged configuration. configFile may be empty, in which
// case config.yaml is searched in the usual locations and environment
// variables fill in the rest.
func Load(configFile string, envPath string) (*Config, error) {
	v := configureViper(configFile, envPath)

	v.SetDefault("environment", "testnet")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("nats.stream_name", "NFT_BRIDGE")
	v.SetDefault("nats.consumer_name", "bridged")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 3)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("bridge.home_chain", uint64(domain.ChainZetaTestnet))
	v.SetDefault("bridge.gas_limit", 500_000)
	v.SetDefault("bridge.token_salt", "universal-nft-v1")
	v.SetDefault("bridge.relay_max_retries", 5)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}
	if cfg.Bridge.Owner == "" {
		return nil, errors.New("bridge.owner is required")
	}

	return &cfg, nil
}

func configureViper(configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("cmd/bridged/")
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("UNFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds every config key so env vars map onto
// struct fields even without a config file present.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"environment",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.connection_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.ack_wait",
		"nats.max_deliver",
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"auth.jwt_public_key",
		"bridge.home_chain",
		"bridge.owner",
		"bridge.gateway",
		"bridge.gas_limit",
		"bridge.token_salt",
		"bridge.relay_max_retries",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv layers .env files so local overrides win over the shared base.
func loadEnv(envPath string) {
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Overload(filepath.Join(envPath, envFile))
	}
}

// DSN returns the database connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
