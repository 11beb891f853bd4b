package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"chatrelaygo/internal/config"
	"chatrelaygo/internal/database/db_client"
	"chatrelaygo/internal/http/http_server"
	"chatrelaygo/internal/presence"
	"chatrelaygo/internal/redis/redis_client"
	"chatrelaygo/internal/services/register"
	"chatrelaygo/internal/storage/credentials"
	"chatrelaygo/internal/ws"
)

var (
	Log, _ = zap.NewDevelopment()
)

func main() {
	defer Log.Sync()
	zap.ReplaceGlobals(Log)

	// 1. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		Log.Fatal("Failed to load configuration", zap.Error(err))
	}
	Log.Debug("Configuration loaded successfully", zap.Any("config", cfg))

	// 2. Context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	// 3. Credential store. A store that cannot be reached at boot is fatal;
	// a store that fails later only fails the request that hit it.
	var credStore register.CredentialStore
	switch cfg.CredentialBackend {
	case "redis":
		redisClient, err := redis_client.NewRedisClient(cfg.RedisHost, int(cfg.RedisPort))
		if err != nil {
			Log.Fatal("Failed to create Redis client", zap.Error(err))
		}
		defer redisClient.Close()
		credStore = credentials.NewRedis(redisClient)
	case "memory":
		credStore = credentials.NewMemory()
	default:
		pgDb, err := db_client.Open(cfg.PostgresHost, cfg.PostgresPort,
			cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDb)
		if err != nil {
			Log.Fatal("pg-open", zap.Error(err))
		}
		defer pgDb.Close()
		credStore = credentials.NewPostgres(pgDb)
	}
	Log.Debug("Credential store ready", zap.String("backend", cfg.CredentialBackend))

	// 4. Services
	registerSvc := register.NewRegisterService(credStore)

	// 5. Presence registry + hub + broadcaster
	registry := presence.NewRegistry()
	hub := ws.NewHub()
	broadcaster := ws.NewBroadcaster(hub, registry)

	// 6. WS server
	wsSrv := ws.NewWsServer(broadcaster)

	// 7. HTTP + WS server
	httpServer := http_server.NewHttpServer(ctx, cfg.HttpServerPort, wsSrv, registerSvc, registry)
	if err := httpServer.Start(); err != nil {
		Log.Fatal("Failed to start HTTP server", zap.Error(err))
	}
}
