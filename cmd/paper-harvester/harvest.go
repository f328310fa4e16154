// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-harvester/internal/config"
	"github.com/pdiddy/paper-harvester/internal/export"
	"github.com/pdiddy/paper-harvester/internal/feed"
	"github.com/pdiddy/paper-harvester/internal/harvest"
	"github.com/pdiddy/paper-harvester/internal/httputil"
	"github.com/pdiddy/paper-harvester/internal/logging"
	"github.com/pdiddy/paper-harvester/internal/metrics"
)

const reportName = "arxiv_harvest_report.yaml"

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Fetch every configured domain and write one CSV per domain",
	Long: `Harvest requests each domain's query from the arXiv API in pages,
starting at offset 0, until a page comes back empty or the result ceiling is
reached. The collected records are then written to
{data-dir}/arxiv_{domain}_metadata.csv, replacing any earlier file.

Pages that fail to parse are logged and skipped. A network failure or a
failed write stops the whole run.`,
	RunE: runHarvest,
}

func init() {
	harvestCmd.Flags().StringSlice("domain", nil, "harvest only these domains (repeatable, case-insensitive)")
	harvestCmd.Flags().String("data-dir", config.DefaultDataDir, "directory for the CSV files")
	harvestCmd.Flags().String("metrics-file", "", "write Prometheus counters to this textfile when done")
	harvestCmd.Flags().Bool("no-report", false, "do not write the YAML run report")

	rootCmd.AddCommand(harvestCmd)
}

func runHarvest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	names, _ := cmd.Flags().GetStringSlice("domain")
	domains, err := harvest.SelectDomains(cfg.Domains, names)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := logging.New(cfg.Logging, cmd.ErrOrStderr()).With().Str("run_id", runID).Logger()
	m := metrics.New()

	client := feed.NewClient(httputil.NewRestyClient(cfg.Timeout), cfg.BaseURL, cfg.UserAgent)
	exporter := export.NewCSVExporter(cfg.DataDir, cfg.FilePrefix)
	h := harvest.New(client, exporter, cfg, harvest.WithLogger(log), harvest.WithMetrics(m))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, runErr := h.Run(ctx, domains)

	if path, _ := cmd.Flags().GetString("metrics-file"); path != "" {
		if err := m.WriteTextfile(path); err != nil {
			log.Error().Err(err).Str("path", path).Msg("writing metrics file")
		}
	}

	if runErr != nil {
		log.Error().Err(runErr).Msg("harvest aborted")
		return runErr
	}

	if noReport, _ := cmd.Flags().GetBool("no-report"); !noReport {
		path := filepath.Join(cfg.DataDir, reportName)
		if err := harvest.WriteReport(path, h.NewReport(runID, res)); err != nil {
			return fmt.Errorf("writing run report: %w", err)
		}
		log.Info().Str("path", path).Msg("wrote run report")
	}
	return nil
}
