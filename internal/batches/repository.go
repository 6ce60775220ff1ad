package batches

import (
	"context"
	"fmt"

	"github.com/bakerypro/bakerypro/pkg/pgxfx"
	"github.com/jackc/pgx/v5"
)

type Repository struct {
	db pgxfx.DBTX
}

func NewRepository(db pgxfx.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// List returns batches, newest first.
func (r *Repository) List(ctx context.Context) ([]Batch, error) {
	rows, err := r.db.Query(ctx, `
		SELECT pb.id, pb.product_id, p.name, pb.quantity, pb.produced_date, pb.expiry_date
		  FROM product_batches pb
		  JOIN products p ON p.id = pb.product_id
		 ORDER BY pb.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Batch])
	if err != nil {
		return nil, fmt.Errorf("failed to scan batches: %w", err)
	}

	return items, nil
}
