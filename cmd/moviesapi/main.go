package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"moviesexplorer/internal/config"
	"moviesexplorer/internal/logger"
	"moviesexplorer/internal/mongo"
	"moviesexplorer/internal/mysql"
	"moviesexplorer/internal/routing"
	"moviesexplorer/pkg/hasher"
	"moviesexplorer/pkg/movie"
	"moviesexplorer/pkg/session"
	"moviesexplorer/pkg/user"
)

func main() {
	cfg := config.Load() // load env var from .env
	log := logger.Load(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	client, mongoDB, err := mongo.LoadDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("mongo disconnect", "error", err)
		}
	}()

	var users user.Repository = user.NewMongoRepo(mongoDB)
	if cfg.MySQLDSN != "" {
		db, err := mysql.LoadDB(ctx, cfg.MySQLDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		users = user.NewMySQLRepo(db)
		log.Info("users are stored in mysql")
	}

	router := routing.NewRouter(routing.Deps{
		Users:    users,
		Movies:   movie.NewMongoRepo(mongoDB),
		Sessions: session.NewManager(session.SecretFor(cfg.Env, cfg.JWTSecret)),
		Hasher:   hasher.NewBcrypt(hasher.DefaultCost),
		Logger:   log,
	})

	return routing.StartServer(ctx, routing.Handler(cfg, router, log), ":"+cfg.Port, log)
}
