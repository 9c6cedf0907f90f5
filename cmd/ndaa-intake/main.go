package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/hasc-tools/ndaa-intake/gen/ent"
	"github.com/hasc-tools/ndaa-intake/internal/common"
	"github.com/hasc-tools/ndaa-intake/internal/extract"
	"github.com/hasc-tools/ndaa-intake/internal/importer"
	"github.com/hasc-tools/ndaa-intake/internal/pipeline"
	"github.com/hasc-tools/ndaa-intake/internal/reconcile"
	"github.com/hasc-tools/ndaa-intake/internal/repository"
)

var (
	heuristicsPath string
	verbose        bool
)

func main() {
	root := &cobra.Command{
		Use:   "ndaa-intake",
		Short: "NDAA funding request intake and reconciliation",
		Long: `ndaa-intake extracts structured funding requests from submitted
PDF/DOCX forms, reconciles them against the existing request pool, and
produces the authorized-requests export.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&heuristicsPath, "heuristics", "", "YAML file overriding extraction heuristics")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newIngestCmd(), newReconcileCmd(), newSeedCmd(), newExportCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds everything a subcommand needs after bootstrap.
type app struct {
	cfg       *common.Config
	logger    *slog.Logger
	client    *ent.Client
	pool      *pgxpool.Pool
	repo      repository.RequestRepository
	fields    *extract.FieldExtractor
	merger    *reconcile.Merger
	processor *pipeline.Processor
}

func newAppContext(ctx context.Context) (*app, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if heuristicsPath != "" {
		heur, err := common.LoadHeuristicsFile(heuristicsPath)
		if err != nil {
			return nil, err
		}
		cfg.Heuristics = heur
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		repository.Close(client, pool, logger)
		return nil, err
	}
	if err := client.Schema.Create(ctx); err != nil {
		repository.Close(client, pool, logger)
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	fields := extract.NewFieldExtractor(cfg.Heuristics, logger)
	merger := reconcile.NewMerger(logger)
	parser := extract.NewParser(logger)

	return &app{
		cfg:       cfg,
		logger:    logger,
		client:    client,
		pool:      pool,
		repo:      repository.NewRequestRepository(client, logger),
		fields:    fields,
		merger:    merger,
		processor: pipeline.NewProcessor(logger, parser, fields, merger, cfg.Heuristics),
	}, nil
}

func (a *app) close() {
	repository.Close(a.client, a.pool, a.logger)
}

func (a *app) newImporter() (*importer.Importer, error) {
	return importer.NewImporter(a.repo, a.logger)
}
