package ingredients

import (
	"context"
	"errors"
	"fmt"

	"github.com/bakerypro/bakerypro/pkg/pgxfx"
	"github.com/jackc/pgx/v5"
)

const selectIngredients = `
	SELECT i.id, i.name, i.unit_name, i.stock_qty, i.reorder_point, i.image_url,
	       i.stock_qty <= i.reorder_point AS is_low
	  FROM ingredients i`

type Repository struct {
	db pgxfx.DB
}

func NewRepository(db pgxfx.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) List(ctx context.Context) ([]Ingredient, error) {
	rows, err := r.db.Query(ctx, selectIngredients+` ORDER BY i.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}

	items, err := pgx.CollectRows(rows, scanIngredient)
	if err != nil {
		return nil, fmt.Errorf("failed to scan ingredients: %w", err)
	}

	return items, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*Ingredient, error) {
	rows, err := r.db.Query(ctx, selectIngredients+` WHERE i.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}

	ingredient, err := pgx.CollectExactlyOneRow(rows, scanIngredient)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan ingredient: %w", err)
	}

	return &ingredient, nil
}

func (r *Repository) Create(ctx context.Context, ingredient *Ingredient) error {
	if err := r.db.QueryRow(ctx, `
		INSERT INTO ingredients (name, unit_name, stock_qty, reorder_point, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		ingredient.Name, ingredient.UnitName, ingredient.StockQty, ingredient.ReorderPoint, ingredient.ImageURL,
	).Scan(&ingredient.ID); err != nil {
		return fmt.Errorf("failed to create ingredient: %w", err)
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, ingredient *Ingredient) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE ingredients
		   SET name = $1, unit_name = $2, stock_qty = $3, reorder_point = $4, image_url = $5
		 WHERE id = $6`,
		ingredient.Name, ingredient.UnitName, ingredient.StockQty, ingredient.ReorderPoint, ingredient.ImageURL,
		ingredient.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, ingredient.ID)
	}

	return nil
}

// Delete removes the ingredient together with the recipe lines using it.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return pgxfx.InTx(ctx, r.db, func(tx pgxfx.DBTX) error {
		if _, err := tx.Exec(ctx, `DELETE FROM recipes WHERE ingredient_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete recipe lines: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
		if pgxfx.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %d", ErrInUse, id)
		}
		if err != nil {
			return fmt.Errorf("failed to delete ingredient: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}

		return nil
	})
}

func scanIngredient(row pgx.CollectableRow) (Ingredient, error) {
	var i Ingredient
	err := row.Scan(&i.ID, &i.Name, &i.UnitName, &i.StockQty, &i.ReorderPoint, &i.ImageURL, &i.IsLow)
	return i, err
}
