package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/universalnft/nft-bridge/internal/domain"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
	return configFile
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError string
		validate    func(*testing.T, *Config)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
environment: mainnet
database:
  host: localhost
  port: 5433
  user: testuser
  password: testpass
  dbname: bridge
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  consumer_name: "test-consumer"
  max_reconnects: 5
  reconnect_wait: "5s"
server:
  port: 9090
auth:
  jwt_public_key: "test-key"
bridge:
  home_chain: 901
  owner: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"
  gateway: "0x2222222222222222222222222222222222222222"
  gas_limit: 750000
  token_salt: "test-salt"
`,
			validate: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "mainnet", cfg.Environment)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, 5*time.Second, cfg.NATS.ReconnectWait)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "test-key", cfg.Auth.JWTPublicKey)
				assert.Equal(t, domain.ChainSolanaDevnet, cfg.Bridge.HomeChain)
				assert.Equal(t, uint64(750_000), cfg.Bridge.GasLimit)
				assert.Equal(t, "test-salt", cfg.Bridge.TokenSalt)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: bridge
nats:
  url: "nats://localhost:4222"
bridge:
  owner: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"
`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "testnet", cfg.Environment)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "NFT_BRIDGE", cfg.NATS.StreamName)
				assert.Equal(t, "bridged", cfg.NATS.ConsumerName)
				assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
				assert.Equal(t, 30*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, 3, cfg.NATS.MaxDeliver)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, domain.ChainZetaTestnet, cfg.Bridge.HomeChain)
				assert.Equal(t, uint64(500_000), cfg.Bridge.GasLimit)
				assert.Equal(t, "universal-nft-v1", cfg.Bridge.TokenSalt)
				assert.Equal(t, uint64(5), cfg.Bridge.RelayMaxRetries)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  dbname: bridge
bridge:
  owner: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"
`,
			expectError: "database.host is required",
		},
		{
			name: "missing owner",
			configFile: `
database:
  host: localhost
  dbname: bridge
`,
			expectError: "bridge.owner is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := writeConfigFile(t, tt.configFile)

			cfg, err := Load(configFile, t.TempDir())
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}

			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadEnvOverride(t *testing.T) {
	configFile := writeConfigFile(t, `
database:
  host: localhost
  dbname: bridge
bridge:
  owner: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"
`)

	t.Setenv("UNFT_DATABASE_HOST", "db.internal")
	t.Setenv("UNFT_NATS_URL", "nats://broker:4222")
	t.Setenv("UNFT_BRIDGE_GAS_LIMIT", "900000")

	cfg, err := Load(configFile, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "nats://broker:4222", cfg.NATS.URL)
	assert.Equal(t, uint64(900_000), cfg.Bridge.GasLimit)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "bridge",
		Password: "secret",
		DBName:   "nft_bridge",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=bridge password=secret dbname=nft_bridge sslmode=disable",
		cfg.DSN())
}
