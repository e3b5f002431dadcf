package database

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scripfeed/scrip-tickers/internal/config"
	"github.com/scripfeed/scrip-tickers/internal/model"
	"github.com/scripfeed/scrip-tickers/internal/writer"
)

const (
	insertRunSQL = `
		INSERT INTO runs (run_id, started_at, finished_at, rows_fetched)
		VALUES ($1, $2, $3, $4)
	`
	insertSymbolSQL = `
		INSERT INTO run_symbols (run_id, category, symbol)
		VALUES ($1, $2, $3)
		ON CONFLICT (run_id, category, symbol) DO NOTHING
	`
)

// Archive records pipeline runs in Postgres.
type Archive struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Open connects to the archive database and verifies the connection.
func Open(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*Archive, error) {
	if logger == nil {
		logger = slog.Default()
	}

	poolCfg, err := pgxpool.ParseConfig(BuildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConns = int32(cfg.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Archive{pool: pool, logger: logger}, nil
}

// Close releases the connection pool.
func (a *Archive) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// Ping verifies the connection is healthy.
func (a *Archive) Ping(ctx context.Context) error {
	return a.pool.Ping(ctx)
}

// RecordRun stores one run's summary and every produced symbol. The
// consolidated list is stored under the reserved "all" category. Symbol rows
// are batched in one round trip.
func (a *Archive) RecordRun(
	ctx context.Context,
	sum *model.RunSummary,
	results map[string]model.CategoryResult,
	consolidated []string,
) error {
	start := time.Now()

	if _, err := a.pool.Exec(ctx, insertRunSQL,
		sum.RunID, sum.Started, sum.Finished, sum.RowsFetched,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	batch := &pgx.Batch{}
	for _, key := range sortedKeys(results) {
		for _, symbol := range results[key].Symbols {
			batch.Queue(insertSymbolSQL, sum.RunID, key, symbol)
		}
	}
	for _, symbol := range consolidated {
		batch.Queue(insertSymbolSQL, sum.RunID, writer.ConsolidatedDir, symbol)
	}

	queued := batch.Len()
	br := a.pool.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < queued; i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert run symbols: %w", err)
		}
	}

	a.logger.Debug("run archived",
		"run_id", sum.RunID,
		"symbols", queued,
		"duration", time.Since(start),
	)
	return nil
}

func sortedKeys(results map[string]model.CategoryResult) []string {
	keys := make([]string, 0, len(results))
	for key := range results {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
