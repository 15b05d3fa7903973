// Package main is the terminal client for the list board. It builds the same
// application service the HTTP server uses and drives it from a Bubble Tea
// program in the current terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/list-creation-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/list-creation-service/internal/adapters/tui"
	"github.com/jsamuelsen11/list-creation-service/internal/app"
	"github.com/jsamuelsen11/list-creation-service/internal/platform/config"
	"github.com/jsamuelsen11/list-creation-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/list-creation-service/internal/platform/logging"
)

type options struct {
	profile   string
	configDir string
	logFile   string
	noFetch   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "listui",
		Short:        "Pick two lists and redistribute their items into a new one",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.profile, "profile", envOr("APP_PROFILE", "local"), "Config profile (loads configs/{profile}.yaml)")
	cmd.Flags().StringVar(&opts.configDir, "config-dir", "configs", "Directory holding the YAML config files")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file (default: discard)")
	cmd.Flags().BoolVar(&opts.noFetch, "no-fetch", false, "Do not load the lists on start; press r to load")

	return cmd
}

func run(ctx context.Context, opts *options) error {
	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The terminal is owned by the program, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, out)

	client := httpclient.New(&cfg.Client, "list-api", nil, logger)
	source := acl.NewListsClient(client, cfg.Client.ListsPath, logger)
	svc := app.NewBoardService(source, app.BoardOptions{
		ClearSelectionOnCancel: cfg.Board.ClearSelectionOnCancel,
		FetchTimeout:           cfg.Board.FetchTimeout,
	}, logger)

	model := tui.New(ctx, svc, tui.Options{
		FetchOnStart: cfg.Board.FetchOnStart && !opts.noFetch,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		logger.Error("terminal program failed",
			slog.String("operation", "listui"),
			slog.Any("error", err),
		)
		return fmt.Errorf("running terminal program: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
