// Command seed loads catalog fixtures (YAML or TOML) into the DynamoDB catalog tables.
//
//	seed fixtures/quote-demo.yaml fixtures/other.toml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"quote_matrix/internal/adapter/persistence/repository"
	"quote_matrix/internal/domain/matrix"
	"quote_matrix/internal/infrastructure/config"
	"quote_matrix/internal/infrastructure/database"
	"quote_matrix/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var endpoint string

	cmd := &cobra.Command{
		Use:   "seed [fixture...]",
		Short: "Seed quote catalogs into DynamoDB",
		Long: `Reads quote catalog fixtures (the format served by CATALOG_SOURCE=file) and writes
them to QUOTE_OPTIONS_TABLE and QUOTE_ITEMS_TABLE. Fixtures without quote_id use the file name.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if endpoint != "" {
				cfg.AWS.DynamoDBEndpoint = endpoint
			}

			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ddb, err := database.ConnectDynamoDB(cmd.Context(), cfg.AWS)
			if err != nil {
				return err
			}
			seeder := repository.NewCatalogDynamoSeeder(ddb, cfg.Catalog.OptionsTable, cfg.Catalog.ItemsTable)
			return seedFiles(cmd.Context(), seeder, args, logger)
		},
	}
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "DynamoDB endpoint override (defaults to DYNAMODB_ENDPOINT)")
	return cmd
}

func seedFiles(ctx context.Context, seeder *repository.CatalogDynamoSeeder, paths []string, logger *zap.Logger) error {
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		quoteID := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		parsed, err := repository.ParseCatalogFile(path, raw, quoteID)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		// write the normalized catalog a session would load
		engine, err := matrix.NewEngine(parsed)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		catalog := engine.Snapshot()
		catalog.QuoteID = parsed.QuoteID

		if err := seeder.Seed(ctx, catalog); err != nil {
			return fmt.Errorf("seed %s: %w", catalog.QuoteID, err)
		}
		logger.Info("[matrix][seed] catalog written",
			zap.String("file", path),
			zap.String("quote_id", catalog.QuoteID),
			zap.Int("options", len(catalog.Options)),
			zap.Int("categories", len(catalog.Categories)),
		)
	}
	return nil
}
