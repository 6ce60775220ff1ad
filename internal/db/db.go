package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/bakerypro/bakerypro/pkg/pgxfx"
)

//go:embed schema.sql
var schema string

// Migrate creates missing tables and replaces the stored functions.
func Migrate(ctx context.Context, db pgxfx.DBTX) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}
