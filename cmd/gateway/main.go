package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"chat-gateway/auth"
	"chat-gateway/internal"
	"chat-gateway/observability"
	"chat-gateway/runtime"
	"chat-gateway/runtime/workers"
	"chat-gateway/services"
	"chat-gateway/storage"
	"chat-gateway/transport/ws"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Gateway terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so deferred cleanups always execute and the
// wiring stays testable outside the process entry point.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	sequence, err := storage.NewLoginCodeSequence(db)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		// Releases the unused part of the leased range.
		_ = sequence.Release()
	}()

	// 3. Core components
	registry := runtime.NewRegistry()
	broker := runtime.NewLoginCodeBroker(logger, sequence, config.LoginCodeTTL)
	stats := observability.NewDispatchStats()
	dispatcher := workers.NewDispatcher(logger, registry, stats,
		config.DispatcherWorkers, config.DispatcherQueueSize)
	presence := runtime.NewPresenceCoordinator(logger, config.PresenceQueueSize)

	profiles := storage.NewProfileRepository(db, logger)
	authenticator := auth.NewJWTAuthenticator(config.AuthSecret,
		config.AuthTokenDuration, config.AuthRenewThreshold)

	service := services.NewGatewayService(
		logger, registry, broker, presence, dispatcher,
		authenticator, auth.NoCredentialBackend{},
		profiles, profiles,
		services.NewQRLinkProvider(config.LoginURLBase),
		config.LoginCodeTTL,
	)

	presence.AddSinks(
		storage.NewLastActiveSink(profiles, logger),
		services.NewPresenceNotifySink(logger, registry, dispatcher, profiles),
	)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Supervision: dispatcher shards, presence notifier, code janitor,
	// telemetry reporter.
	supervisor := workers.NewSupervisor(logger, config.RestartInterval)
	supervisor.Add(
		dispatcher,
		presence,
		workers.NewJanitorWorker(logger, broker, config.LoginSweepInterval),
		workers.NewTelemetryWorker(logger, registry, stats, config.MetricInterval),
	)

	supervisorDone := make(chan struct{})
	go func() {
		defer close(supervisorDone)
		supervisor.Run(ctx)
	}()

	// 6. WebSocket server
	server := ws.NewServer(logger, service, config.Addr(), config.SendBufferSize)

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		stop()
		<-supervisorDone
		return exitRuntime, err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Server shutdown incomplete", "error", err)
	}

	supervisor.Stop()
	<-supervisorDone
	logger.Info("Gateway stopped")
	return exitOK, nil
}
