package main

import (
	"context"
	"fmt"

	"crm-alert-srv/config"
	configMinio "crm-alert-srv/config/minio"
	configPostgre "crm-alert-srv/config/postgre"
	configRedis "crm-alert-srv/config/redis"
	"crm-alert-srv/internal/httpserver"
	"crm-alert-srv/pkg/discord"
	"crm-alert-srv/pkg/log"
	"crm-alert-srv/pkg/mailer"
	"crm-alert-srv/pkg/scope"
)

// @Name CRM Alert Service
// @description Performance alert engine and outcome classification for the CRM.
// @version 1
// @host localhost:8082
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.Config{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect()
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Redis
	redisClient, err := configRedis.Connect(cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// MinIO (optional email body archive)
	minioClient, err := configMinio.Connect(cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinio.Disconnect()
	if minioClient != nil {
		logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)
	}

	// Discord ops channel (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookURL != "" {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookURL)
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
	}

	// Mail delivery
	mailerClient, err := mailer.New(logger, mailer.Config{
		Endpoint: cfg.Mailer.Endpoint,
		APIKey:   cfg.Mailer.APIKey,
		Timeout:  cfg.Mailer.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize mailer: ", err)
		return
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.Server.Port,
		Mode:        cfg.Server.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB: postgresDB,
		Redis:      redisClient,
		MinIO:      minioClient,

		JWTManager:  scope.NewManager(cfg.JWT.SecretKey, cfg.JWT.Issuer),
		InternalKey: cfg.Trigger.InternalKey,

		Mailer:  mailerClient,
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
