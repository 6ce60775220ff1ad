package categories

import (
	"context"
	"errors"
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

func (r *Repository) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Category])
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}

	return items, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*Category, error) {
	category := new(Category)
	err := r.db.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).
		Scan(&category.ID, &category.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

func (r *Repository) Create(ctx context.Context, name string) (*Category, error) {
	category := &Category{Name: name}
	if err := r.db.QueryRow(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, name).
		Scan(&category.ID); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (r *Repository) Update(ctx context.Context, category *Category) error {
	tag, err := r.db.Exec(ctx, `UPDATE categories SET name = $1 WHERE id = $2`, category.Name, category.ID)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, category.ID)
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if pgxfx.IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: %d", ErrInUse, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	return nil
}
