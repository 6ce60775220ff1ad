package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/bakerypro/bakerypro/pkg/pgxfx"
	"github.com/jackc/pgx/v5"
)

const selectProducts = `
	SELECT p.id, p.name, p.category_id, p.shelf_life_days, p.unit_price, p.reorder_point,
	       p.image_url, c.name
	  FROM products p
	  JOIN categories c ON c.id = p.category_id`

type Repository struct {
	db pgxfx.DB
}

func NewRepository(db pgxfx.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, selectProducts+` ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	items, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}

	return items, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*Product, error) {
	rows, err := r.db.Query(ctx, selectProducts+` WHERE p.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	product, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	return &product, nil
}

func (r *Repository) Create(ctx context.Context, product *Product) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO products (name, category_id, shelf_life_days, unit_price, reorder_point, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		product.Name, product.CategoryID, product.ShelfLifeDays, product.UnitPrice, product.ReorderPoint,
		product.ImageURL,
	).Scan(&product.ID)
	if pgxfx.IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: %d", ErrCategoryNotFound, product.CategoryID)
	}
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, product *Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		   SET name = $1, category_id = $2, shelf_life_days = $3, unit_price = $4,
		       reorder_point = $5, image_url = $6
		 WHERE id = $7`,
		product.Name, product.CategoryID, product.ShelfLifeDays, product.UnitPrice, product.ReorderPoint,
		product.ImageURL, product.ID,
	)
	if pgxfx.IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: %d", ErrCategoryNotFound, product.CategoryID)
	}
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, product.ID)
	}

	return nil
}

// Delete removes the product together with its recipe lines.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return pgxfx.InTx(ctx, r.db, func(tx pgxfx.DBTX) error {
		if _, err := tx.Exec(ctx, `DELETE FROM recipes WHERE product_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete recipe lines: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
		if pgxfx.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %d", ErrInUse, id)
		}
		if err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}

		return nil
	})
}

func scanProduct(row pgx.CollectableRow) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.CategoryID, &p.ShelfLifeDays, &p.UnitPrice, &p.ReorderPoint,
		&p.ImageURL, &p.CategoryName,
	)
	return p, err
}
