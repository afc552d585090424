package cmd

import (
	"context"
	"fmt"
	"os"

	"blob-manager/core/config"
	"blob-manager/core/journal"
	"blob-manager/core/logger"
	"blob-manager/core/objectstore"
	"blob-manager/core/storage"

	"go.uber.org/zap"
)

// env bundles the dependencies every command needs.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	client *objectstore.Client
	jrnl   *journal.Journal
}

// setup loads configuration and wires logger, storage client, and the
// optional journal. Failures before the logger exists go to stdout; the
// process exits on anything unrecoverable.
func setup() *env {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	client := objectstore.New(cfg.Storage.Project, cfg.Storage.Region, store)

	// Journal is optional: a failed connection downgrades to a warning.
	var jrnl *journal.Journal
	if cfg.Journal.Enabled {
		if j, err := journal.Connect(cfg.Journal); err != nil {
			logg.Warn("Optional journal connection failed", zap.Error(err))
		} else {
			jrnl = j
			logg.Info("Transfer journal connected")
		}
	}

	return &env{
		cfg:    cfg,
		logger: logg,
		client: client,
		jrnl:   jrnl,
	}
}

// record journals an operation. Journal failures never fail the command.
func (e *env) record(ctx context.Context, entry journal.Entry) {
	if err := e.jrnl.Record(ctx, entry); err != nil {
		e.logger.Warn("Journal write failed",
			zap.String("op", entry.Op),
			zap.String("bucket", entry.Bucket),
			zap.Error(err),
		)
	}
}
