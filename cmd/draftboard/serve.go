package main

import (
	"draftboard/internal/adp"
	"draftboard/internal/config"
	"draftboard/internal/logging"

	"github.com/spf13/cobra"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a CSV of ADP rows as JSON on GET /adp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.ValidateServer(); err != nil {
				return err
			}
			logger, err := logging.Console(cfg.LogLevel)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			shutdown := setupTelemetry(ctx, logger)
			defer flushTelemetry(shutdown, logger)

			return adp.NewServer(cfg.Addr, cfg.CSVPath, logger).Run(ctx)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.Addr, "addr", "a", cfg.Addr, "listen address")
	f.StringVarP(&cfg.CSVPath, "csv", "c", cfg.CSVPath, "CSV file with one row per player")
	return cmd
}
