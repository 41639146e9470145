package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/guildworks/guildshop/internal/pkg/database"
	"github.com/guildworks/guildshop/internal/pkg/env"
	"github.com/guildworks/guildshop/internal/pkg/logging"
	"github.com/guildworks/guildshop/internal/shop/bootstrap"
	"github.com/joho/godotenv"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	if err := godotenv.Load(); err != nil {
		defaultLogger.Info("no .env file loaded", "reason", err.Error())
	}

	httpPort := ":8080"
	databaseSettings := database.PostgresSettings{
		User:       "guild",
		Password:   "guildpass",
		Host:       "localhost",
		Port:       "5432",
		DBName:     "guildshop_db",
		SSlEnabled: false,
	}

	env.TrySetFromEnv(env.EnvHttpPort, &httpPort)
	env.TrySetFromEnv(env.EnvDatabaseHost, &databaseSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &databaseSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &databaseSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &databaseSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &databaseSettings.DBName)

	cfg := bootstrap.ShopConfig{
		DbSettings: databaseSettings,
		HttpPort:   httpPort,
	}

	app := bootstrap.NewShopApp(cfg, defaultLogger)
	defer app.Shutdown()

	if err := app.Run(mainCtx); err != nil {
		defaultLogger.Error("shop app stopped with error", "error", err.Error())
	}
}
