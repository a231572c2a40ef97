package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/universalnft/nft-bridge/internal/adapter"
	"github.com/universalnft/nft-bridge/internal/api/server"
	"github.com/universalnft/nft-bridge/internal/config"
	"github.com/universalnft/nft-bridge/internal/domain"
	"github.com/universalnft/nft-bridge/internal/emitter"
	"github.com/universalnft/nft-bridge/internal/gateway"
	"github.com/universalnft/nft-bridge/internal/logger"
	"github.com/universalnft/nft-bridge/internal/store"
	"github.com/universalnft/nft-bridge/internal/transfer"
)

var (
	configPath = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "", "Path to .env directory")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Initialize(logger.Config{
		Debug:       cfg.Debug,
		SentryDSN:   cfg.SentryDSN,
		Environment: cfg.Environment,
	}); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(5 * time.Second)
	logger.Info("Starting NFT bridge", zap.Uint64("home_chain", uint64(cfg.Bridge.HomeChain)))

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.Info("Connected to database")

	dataStore := store.NewPGStore(db)

	// Connect to NATS
	opts := []nats.Option{
		nats.Name(cfg.NATS.ConnectionName),
		nats.MaxReconnects(cfg.NATS.MaxReconnects),
		nats.ReconnectWait(cfg.NATS.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := adapter.NewNatsJetStream().Connect(cfg.NATS.URL, opts...)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer nc.Close()
	logger.Info("Connected to NATS", zap.String("url", nc.ConnectedUrl()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The stream carries both gateway traffic and bridge events
	if err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      cfg.NATS.StreamName,
		Subjects:  []string{"gateway.>", emitter.SubjectPrefix + ">"},
		Retention: jetstream.LimitsPolicy,
		Storage:   jetstream.FileStorage,
	}); err != nil {
		logger.Fatal("Failed to create stream", zap.Error(err), zap.String("stream", cfg.NATS.StreamName))
	}

	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	eventEmitter := emitter.NewJetStreamEmitter(js, jsonAdapter, clock)
	gatewayClient := gateway.NewNATSClient(js, jsonAdapter, cfg.Bridge.RelayMaxRetries)

	service := transfer.NewService(dataStore, gatewayClient, eventEmitter, clock, transfer.Config{
		HomeChain: cfg.Bridge.HomeChain,
		TokenSalt: []byte(cfg.Bridge.TokenSalt),
	})

	bootstrap(ctx, service, cfg)

	consumer := gateway.NewConsumer(gateway.ConsumerConfig{
		StreamName:   cfg.NATS.StreamName,
		ConsumerName: cfg.NATS.ConsumerName,
		AckWait:      cfg.NATS.AckWait,
		MaxDeliver:   cfg.NATS.MaxDeliver,
	}, js, service, jsonAdapter)

	apiServer := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		JWTPublicKey: cfg.Auth.JWTPublicKey,
	}, service)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 2)

	go func() {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- fmt.Errorf("gateway consumer: %w", err)
		}
	}()

	go func() {
		if err := apiServer.Start(); err != nil {
			errCh <- fmt.Errorf("api server: %w", err)
		}
	}()

	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error(err)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error(err)
	}

	logger.Info("NFT bridge stopped")
}

// bootstrap initializes the program state from configuration on first run.
// A bridge that is already initialized keeps its stored state.
func bootstrap(ctx context.Context, service transfer.Service, cfg *config.Config) {
	if cfg.Bridge.Gateway == "" {
		return
	}

	if _, err := service.State(ctx); err == nil {
		return
	} else if !errors.Is(err, domain.ErrNotInitialized) {
		logger.Warn("Could not read program state during bootstrap", zap.Error(err))
		return
	}

	if _, err := service.Initialize(ctx, transfer.InitializeParams{
		Owner:    cfg.Bridge.Owner,
		Gateway:  cfg.Bridge.Gateway,
		GasLimit: cfg.Bridge.GasLimit,
	}); err != nil {
		logger.Warn("Bootstrap initialization skipped", zap.Error(err))
		return
	}

	logger.Info("Program state initialized from configuration", zap.String("owner", cfg.Bridge.Owner))
}
