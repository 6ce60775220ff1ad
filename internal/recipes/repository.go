package recipes

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

func (r *Repository) ListByProduct(ctx context.Context, productID int64) ([]Line, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.product_id, r.ingredient_id, r.qty_per_unit, i.name, i.unit_name
		  FROM recipes r
		  JOIN ingredients i ON i.id = r.ingredient_id
		 WHERE r.product_id = $1
		 ORDER BY r.id`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe lines: %w", err)
	}

	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Line, error) {
		var l Line
		err := row.Scan(&l.ID, &l.ProductID, &l.IngredientID, &l.QtyPerUnit, &l.IngredientName, &l.UnitName)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan recipe lines: %w", err)
	}

	return lines, nil
}

func (r *Repository) Add(ctx context.Context, draft LineDraft) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO recipes (product_id, ingredient_id, qty_per_unit)
		VALUES ($1, $2, $3)
		RETURNING id`,
		draft.ProductID, draft.IngredientID, draft.QtyPerUnit,
	).Scan(&id)
	switch {
	case pgxfx.IsForeignKeyViolation(err):
		return 0, ErrReferenceNotFound
	case pgxfx.IsUniqueViolation(err):
		return 0, ErrDuplicate
	case err != nil:
		return 0, fmt.Errorf("failed to add recipe line: %w", err)
	}

	return id, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	return nil
}
