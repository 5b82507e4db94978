package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/travelbooking/config"
	"github.com/Domenick1991/travelbooking/internal/bootstrap"
	"github.com/Domenick1991/travelbooking/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		log := logger.New(cfg.Log)
		if cfg.Log.Env == "production" || cfg.Log.Env == "prod" {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app, err := bootstrap.Build(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer app.Close()

		log.Info("http server listening", "address", cfg.HTTP.Address)
		return bootstrap.Run(ctx, cfg.HTTP.Address, bootstrap.NewRouter(cfg.HTTP, app, log))
	},
}
