package production

import (
	"context"
	"fmt"
	"time"

	"github.com/bakerypro/bakerypro/pkg/pgxfx"
	"github.com/jackc/pgx/v5"
)

type Repository struct {
	db pgxfx.DB
}

func NewRepository(db pgxfx.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// Produce runs add_product and, on shortage, collects the missing ingredients
// inside the same transaction.
func (r *Repository) Produce(ctx context.Context, req ProduceRequest) (*ProduceResult, error) {
	result := new(ProduceResult)

	err := pgxfx.InTx(ctx, r.db, func(tx pgxfx.DBTX) error {
		if err := tx.QueryRow(ctx,
			`SELECT status, message, batch_id FROM add_product($1, $2, $3)`,
			req.ProductID, req.Quantity, nullDate(req.ProducedDate),
		).Scan(&result.Status, &result.Message, &result.BatchID); err != nil {
			return fmt.Errorf("failed to call add_product: %w", err)
		}

		if result.Status != StatusShortage {
			return nil
		}

		rows, err := tx.Query(ctx, `
			SELECT ingredient_id, ingredient_name, unit_name, required, available, shortage
			  FROM production_shortages($1, $2)`,
			req.ProductID, req.Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to query shortages: %w", err)
		}

		result.Shortages, err = pgx.CollectRows(rows, pgx.RowToStructByPos[Shortage])
		if err != nil {
			return fmt.Errorf("failed to scan shortages: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *Repository) Refill(ctx context.Context, req RefillRequest) (*RefillResult, error) {
	result := new(RefillResult)

	if err := r.db.QueryRow(ctx,
		`SELECT status, message, new_stock FROM refill_ingredient($1, $2, $3)`,
		req.IngredientID, req.Qty, nullDate(req.CreatedAt),
	).Scan(&result.Status, &result.Message, &result.NewStock); err != nil {
		return nil, fmt.Errorf("failed to call refill_ingredient: %w", err)
	}

	return result, nil
}

func nullDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
