package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/retailpulse/inventory-insight/internal/cache"
	"github.com/retailpulse/inventory-insight/internal/config"
	"github.com/retailpulse/inventory-insight/internal/domain"
	"github.com/retailpulse/inventory-insight/internal/repository/postgres"
	"github.com/retailpulse/inventory-insight/internal/service"
	"github.com/retailpulse/inventory-insight/pkg/logger"
)

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "db-url",
		Usage:   "Database connection string",
		EnvVars: []string{"DATABASE_URL"},
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logger.Log.Debug().Err(err).Msg("no .env file loaded")
	}

	app := &cli.App{
		Name:  "insight",
		Usage: "Run inventory coverage and reorder-point analysis",
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "Analyze a catalog item using its stored forecast",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:     "item",
						Usage:    "Item id to analyze",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "horizon",
						Usage: "Forecast horizon in days (0 uses the configured default)",
					},
				},
				Action: runAnalyze,
			},
			{
				Name:  "analyze-file",
				Usage: "Analyze a self-contained request from a JSON file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "Path to an analyze request JSON file",
						Required: true,
					},
				},
				Action: runAnalyzeFile,
			},
			{
				Name:   "flush-cache",
				Usage:  "Drop every cached report",
				Action: runFlushCache,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("insight command failed")
	}
}

func runAnalyze(c *cli.Context) error {
	dbURL := c.String("db-url")
	if dbURL == "" {
		return fmt.Errorf("database URL is required (use --db-url or DATABASE_URL)")
	}

	client, err := sqlx.Connect("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer client.Close()

	db := postgres.Wrap(client)
	cfg := config.Load()
	svc := service.NewInsightService(
		postgres.NewItemRepository(db),
		postgres.NewForecastRepository(db),
		cache.NewNoopReportCache(),
		nil,
		cfg.Engine,
	)

	report, err := svc.AnalyzeItem(c.Context, c.String("item"), c.Int("horizon"))
	if err != nil {
		return err
	}

	return printReport(report)
}

func runAnalyzeFile(c *cli.Context) error {
	payload, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}

	var req domain.AnalyzeRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to parse request file: %w", err)
	}

	cfg := config.Load()
	svc := service.NewInsightService(nil, nil, cache.NewNoopReportCache(), nil, cfg.Engine)

	report, err := svc.Analyze(req)
	if err != nil {
		return err
	}

	return printReport(report)
}

func runFlushCache(c *cli.Context) error {
	cfg := config.Load()
	reportCache, err := cache.NewReportCache(cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to reach report cache: %w", err)
	}

	if err := reportCache.InvalidateAll(c.Context); err != nil {
		return fmt.Errorf("failed to flush cached reports: %w", err)
	}

	logger.Log.Info().Msg("cached reports flushed")
	return nil
}

func printReport(report *domain.InventoryInsightReport) error {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
