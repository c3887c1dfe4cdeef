package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/retailpulse/inventory-insight/internal/cache"
	"github.com/retailpulse/inventory-insight/internal/config"
	"github.com/retailpulse/inventory-insight/internal/repository/postgres"
)

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func newFileFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "file",
		Usage:    usage,
		Required: true,
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Seed the catalog, inventory and forecast tables",
		Commands: []*cli.Command{
			{
				Name:  "catalog",
				Usage: "Seed item master data (item_id, description, price, lead_time, holding_cost)",
				Flags: []cli.Flag{
					newDBURLFlag(),
					newFileFlag("CSV file with catalog rows"),
				},
				Action: seedCatalog,
			},
			{
				Name:  "inventory",
				Usage: "Seed on-hand stock levels (item_id, unit)",
				Flags: []cli.Flag{
					newDBURLFlag(),
					newFileFlag("CSV file with inventory rows"),
				},
				Action: seedInventory,
			},
			{
				Name:  "forecasts",
				Usage: "Seed daily demand forecasts (item_id, forecast_date, demand)",
				Flags: []cli.Flag{
					newDBURLFlag(),
					newFileFlag("CSV file with forecast rows"),
				},
				Action: seedForecasts,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDB(c *cli.Context) (*postgres.DB, error) {
	client, err := sqlx.Connect("pgx", c.String("db-url"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return postgres.Wrap(client), nil
}

// forEachRow streams the CSV, skipping the header row.
func forEachRow(path string, fn func(record []string) error) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	count := 0
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("failed reading %s: %w", path, err)
		}
		if header {
			header = false
			continue
		}
		if err := fn(record); err != nil {
			return count, err
		}
		count++
	}
}

// invalidateReports drops cached reports for the seeded items so the
// next analysis sees the new rows. Cache errors only warn; the rows are
// already committed.
func invalidateReports(ctx context.Context, itemIDs map[string]struct{}) {
	cfg := config.Load()
	reportCache, err := cache.NewReportCache(cfg.Cache)
	if err != nil {
		log.Printf("warning: report cache unavailable, skipping invalidation: %v", err)
		return
	}

	for itemID := range itemIDs {
		if err := reportCache.InvalidateItem(ctx, itemID); err != nil {
			log.Printf("warning: failed to invalidate reports for %s: %v", itemID, err)
		}
	}
}

func seedCatalog(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	query := `
		INSERT INTO item_dim (item_id, description, price, lead_time, holding_cost)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (item_id) DO UPDATE SET
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			lead_time = EXCLUDED.lead_time,
			holding_cost = EXCLUDED.holding_cost
	`

	ctx := context.Background()
	seeded := make(map[string]struct{})
	var count int

	// One transaction per file so a bad row aborts the whole load.
	err = db.WithTx(ctx, func(tx *sql.Tx) error {
		count, err = forEachRow(c.String("file"), func(record []string) error {
			if len(record) < 5 {
				return fmt.Errorf("catalog row needs 5 columns, got %d", len(record))
			}
			price, err := strconv.ParseFloat(record[2], 64)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", record[2], err)
			}
			leadTime, err := strconv.Atoi(record[3])
			if err != nil {
				return fmt.Errorf("invalid lead_time %q: %w", record[3], err)
			}
			holdingCost, err := strconv.ParseFloat(record[4], 64)
			if err != nil {
				return fmt.Errorf("invalid holding_cost %q: %w", record[4], err)
			}
			if _, err := tx.ExecContext(ctx, query,
				record[0], record[1], price, leadTime, holdingCost); err != nil {
				return err
			}
			seeded[record[0]] = struct{}{}
			return nil
		})
		return err
	})
	if err != nil {
		return err
	}

	invalidateReports(ctx, seeded)
	log.Printf("Seeded %d catalog rows", count)
	return nil
}

func seedInventory(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	query := `
		INSERT INTO inv (item_id, unit)
		VALUES ($1, $2)
		ON CONFLICT (item_id) DO UPDATE SET unit = EXCLUDED.unit
	`

	ctx := context.Background()
	seeded := make(map[string]struct{})
	var count int

	err = db.WithTx(ctx, func(tx *sql.Tx) error {
		count, err = forEachRow(c.String("file"), func(record []string) error {
			if len(record) < 2 {
				return fmt.Errorf("inventory row needs 2 columns, got %d", len(record))
			}
			unit, err := strconv.ParseFloat(record[1], 64)
			if err != nil {
				return fmt.Errorf("invalid unit %q: %w", record[1], err)
			}
			if _, err := tx.ExecContext(ctx, query, record[0], unit); err != nil {
				return err
			}
			seeded[record[0]] = struct{}{}
			return nil
		})
		return err
	})
	if err != nil {
		return err
	}

	invalidateReports(ctx, seeded)
	log.Printf("Seeded %d inventory rows", count)
	return nil
}

func seedForecasts(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	query := `
		INSERT INTO item_forecasts (item_id, forecast_date, demand)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_id, forecast_date) DO UPDATE SET demand = EXCLUDED.demand
	`

	ctx := context.Background()
	seeded := make(map[string]struct{})
	var count int

	err = db.WithTx(ctx, func(tx *sql.Tx) error {
		count, err = forEachRow(c.String("file"), func(record []string) error {
			if len(record) < 3 {
				return fmt.Errorf("forecast row needs 3 columns, got %d", len(record))
			}
			demand, err := strconv.ParseFloat(record[2], 64)
			if err != nil {
				return fmt.Errorf("invalid demand %q: %w", record[2], err)
			}
			if _, err := tx.ExecContext(ctx, query, record[0], record[1], demand); err != nil {
				return err
			}
			seeded[record[0]] = struct{}{}
			return nil
		})
		return err
	})
	if err != nil {
		return err
	}

	invalidateReports(ctx, seeded)
	log.Printf("Seeded %d forecast rows", count)
	return nil
}
