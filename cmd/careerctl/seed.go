package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"career-guide/internal/config"
	"career-guide/internal/database/migration"
	"career-guide/internal/database/postgres"
	"career-guide/internal/database/seeder"
	"career-guide/internal/domain/catalog"
	"career-guide/internal/infrastructure/cache"
	"career-guide/internal/infrastructure/marketdata"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create and fill the Postgres market data tables",
	Long:  "Applies pending migrations, then replaces skills, career paths and learning resources with the default catalog or the one in --from-json. Cached extractions in Redis are dropped afterwards when Redis is configured.",
	RunE:  runSeed,
}

var (
	seedFromJSON string
	seedTimeout  time.Duration
)

func init() {
	seedCmd.Flags().StringVar(&seedFromJSON, "from-json", "", "Seed from a market data JSON file instead of the built-in defaults")
	seedCmd.Flags().DurationVar(&seedTimeout, "timeout", 2*time.Minute, "Overall timeout")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	dbCfg := config.LoadDatabase()
	if !dbCfg.HasDatabase() {
		return fmt.Errorf("DB_HOST, DB_PORT, DB_NAME and DB_USER must be set")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), seedTimeout)
	defer cancel()

	cat := catalog.Default()
	if seedFromJSON != "" {
		if !fileExists(seedFromJSON) {
			return fmt.Errorf("market data file %s not found", seedFromJSON)
		}
		loaded, err := marketdata.NewJSONSource(seedFromJSON, logger).Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", seedFromJSON, err)
		}
		cat = loaded
	}

	db, err := postgres.Connect(ctx, dbCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	applied, err := migration.Default().Run(ctx, db)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	for _, m := range applied {
		logger.Printf("migration status=applied version=%d name=%s", m.Version, m.Name)
	}

	r := seeder.Runner{Seeders: seeder.Defaults(cat), Logger: logger}
	if err := r.Run(ctx, db); err != nil {
		return err
	}

	invalidateExtractionCache(ctx, logger)
	return nil
}

// invalidateExtractionCache drops cached skill lists, which were computed
// against the previous catalog.
func invalidateExtractionCache(ctx context.Context, logger *log.Logger) {
	cfg, err := config.Load()
	if err != nil || !cfg.Redis.Enabled() {
		return
	}
	rc := cache.NewRedis(cfg.Redis, logger)
	defer func() {
		_ = rc.Close()
	}()

	n, err := rc.InvalidateExtractions(ctx)
	if err != nil {
		logger.Printf("cache status=error op=invalidate err=%v", err)
		return
	}
	logger.Printf("cache status=ok op=invalidate deleted=%d", n)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
