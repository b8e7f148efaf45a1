package main

import (
	"context"
	"io"
	"strings"

	"github.com/ortelius/userdir-backend/config"
	"github.com/ortelius/userdir-backend/directory"
	"github.com/ortelius/userdir-backend/internal/terminal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Load the directory once and print the users matching query with their statistics",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd.Context(), cfg, logger, strings.Join(args, " "), cmd.OutOrStdout())
	},
}

func runSearch(ctx context.Context, cfg config.Config, logger *zap.Logger, query string, out io.Writer) error {
	// the settle delay is cosmetic for interactive pages
	cfg.SettleDelay = 0

	sess, err := newSession(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	view := terminal.NewView(out)
	ctrl := sess.controller(view, logger)

	if _, err := ctrl.Start(ctx, sess.loader); err != nil {
		_ = view.Render()
		return err
	}

	// the query is submitted like an Enter key release in the input
	if _, _, err := ctrl.HandleEvent(directory.Event{
		Kind: directory.EventKeyUp,
		Key:  directory.EnterKey,
		Text: query,
	}); err != nil {
		view.ShowError(err)
	}

	return view.Render()
}
