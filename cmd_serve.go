package main

import (
	"context"
	"errors"
	"time"

	"github.com/ortelius/userdir-backend/config"
	"github.com/ortelius/userdir-backend/directory"
	"github.com/ortelius/userdir-backend/internal/api"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the directory and serve the page, REST and GraphQL APIs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context(), cfg, logger)
	},
}

func runServe(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	sess, err := newSession(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctrl := sess.controller(directory.NopView{}, logger)

	app, err := api.NewFiberApp(ctrl, api.Options{
		AllowOrigins: cfg.AllowOrigins,
		AccessLog:    true,
	}, logger)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Listening", zap.String("addr", cfg.ListenAddr))
		return app.Listen(cfg.ListenAddr)
	})

	g.Go(func() error {
		_, err := ctrl.Start(gctx, sess.loader)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			logger.Error("Initial load failed", zap.Error(err))
			return err
		}
		logger.Info("Search enabled", zap.Int("records", ctrl.Total()))
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})

	return g.Wait()
}
