package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema applies the embedded DDL. Every statement is idempotent
// (CREATE TABLE IF NOT EXISTS), so running it against an initialized
// database is a no-op. There is no migration versioning; the schema is
// fixed and this is the only bootstrap step.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	// No bind arguments, so pgx sends this through the simple protocol and
	// the whole multi-statement script executes in one round trip.
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
