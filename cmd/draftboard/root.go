package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"draftboard/internal/adp"
	"draftboard/internal/config"
	"draftboard/internal/logging"
	"draftboard/internal/telemetry"
	"draftboard/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const serviceName = "draftboard"

// telemetryFlushTimeout bounds the span flush on exit.
const telemetryFlushTimeout = 3 * time.Second

// newRootCmd builds the command tree. Flags default to the values in cfg,
// which already carry any DRAFTBOARD_* overrides.
func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "draftboard",
		Short: "Track a fantasy football draft against ADP rankings",
		Long: `draftboard fetches ADP rows once, shows them as a sortable table and
lets you check players off as they are drafted. Checked rows fade out
after a short delay; tab shows the drafted list, u undoes the last pick.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoard(cmd.Context(), *cfg)
		},
	}

	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")

	f := root.Flags()
	f.StringVarP(&cfg.ADPURL, "url", "u", cfg.ADPURL, "ADP endpoint to load rows from")
	f.DurationVar(&cfg.FadeDelay, "fade-delay", cfg.FadeDelay, "how long a checked row stays visible")
	f.DurationVar(&cfg.FetchTimeout, "timeout", cfg.FetchTimeout, "fetch timeout, 0 for none")
	f.StringVar(&cfg.Title, "title", cfg.Title, "title shown above the table")
	f.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file path, empty to disable logging")

	root.AddCommand(newServeCmd(cfg), newVersionCmd())
	return root
}

// runBoard runs the TUI until the user quits or ctx is cancelled.
func runBoard(ctx context.Context, cfg config.Config) error {
	if err := cfg.ValidateBoard(); err != nil {
		return err
	}

	logger, closeLog, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	shutdown := setupTelemetry(ctx, logger)
	defer flushTelemetry(shutdown, logger)

	client := adp.NewClient(cfg.ADPURL,
		adp.WithTimeout(cfg.FetchTimeout),
		adp.WithLogger(logger),
	)
	view := ui.NewDraftBoardView(client, ui.Options{
		Title:     cfg.Title,
		FadeDelay: cfg.FadeDelay,
		Logger:    &logger,
	})

	logger.Info().Str("url", cfg.ADPURL).Msg("board starting")
	p := tea.NewProgram(view, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run board: %w", err)
	}
	logger.Info().
		Int("drafted", view.Board().DraftedCount()).
		Msg("board closed")
	return nil
}

// setupTelemetry never fails the command; tracing is best effort.
func setupTelemetry(ctx context.Context, logger zerolog.Logger) telemetry.ShutdownFunc {
	shutdown, err := telemetry.Setup(ctx, serviceName)
	if err != nil {
		logger.Warn().Err(err).Msg("tracing disabled")
	}
	return shutdown
}

func flushTelemetry(shutdown telemetry.ShutdownFunc, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logger.Warn().Err(err).Msg("flush traces")
	}
}
