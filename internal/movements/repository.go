package movements

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

// Snapshot passes fn a Reader on a single read-only repeatable read
// transaction, so rows, counts and sums agree with each other.
func (r *Repository) Snapshot(ctx context.Context, fn func(Reader) error) error {
	return pgxfx.InSnapshot(ctx, r.db, func(tx pgxfx.DBTX) error {
		return fn(&ledger{db: tx})
	})
}

func (r *Repository) Query(ctx context.Context, filter Filter, limit, offset int) ([]Movement, error) {
	return (&ledger{db: r.db}).Query(ctx, filter, limit, offset)
}

func (r *Repository) Count(ctx context.Context, filter Filter) (int64, error) {
	return (&ledger{db: r.db}).Count(ctx, filter)
}

func (r *Repository) Sums(ctx context.Context, filter Filter) (Sums, error) {
	return (&ledger{db: r.db}).Sums(ctx, filter)
}

type ledger struct {
	db pgxfx.DBTX
}

// Query returns matching movements newest first. A non-positive limit returns all rows.
func (l *ledger) Query(ctx context.Context, filter Filter, limit, offset int) ([]Movement, error) {
	sql, args := querySQL(filter, limit, offset)

	rows, err := l.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Movement, error) {
		var m Movement
		err := row.Scan(&m.ID, &m.IngredientID, &m.IngredientName, &m.UnitName, &m.Type, &m.Qty, &m.Date)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan movements: %w", err)
	}

	return items, nil
}

func (l *ledger) Count(ctx context.Context, filter Filter) (int64, error) {
	sql, args := countSQL(filter)

	var total int64
	if err := l.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count movements: %w", err)
	}

	return total, nil
}

func (l *ledger) Sums(ctx context.Context, filter Filter) (Sums, error) {
	sql, args := sumsSQL(filter)

	var sums Sums
	if err := l.db.QueryRow(ctx, sql, args...).Scan(&sums.In, &sums.Out); err != nil {
		return Sums{}, fmt.Errorf("failed to sum movements: %w", err)
	}

	return sums, nil
}

func querySQL(filter Filter, limit, offset int) (string, []any) {
	where, args := buildWhere(filter)

	sql := `
		SELECT m.id, m.ingredient_id, i.name, i.unit_name, m.movement_type, m.qty, m.created_at
		  FROM ingredient_movements m
		  JOIN ingredients i ON i.id = m.ingredient_id` + where + `
		 ORDER BY m.created_at DESC, m.id DESC`
	if limit > 0 {
		args = append(args, limit, offset)
		sql += `
		 LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	}

	return sql, args
}

func countSQL(filter Filter) (string, []any) {
	where, args := buildWhere(filter)
	return `SELECT COUNT(*) FROM ingredient_movements m` + where, args
}

func sumsSQL(filter Filter) (string, []any) {
	where, args := buildWhere(filter)
	return `
		SELECT COALESCE(SUM(m.qty) FILTER (WHERE m.movement_type = 'I'), 0)::float8,
		       COALESCE(SUM(m.qty) FILTER (WHERE m.movement_type = 'O'), 0)::float8
		  FROM ingredient_movements m` + where, args
}

// buildWhere renders the filter against the ingredient_movements alias m.
func buildWhere(filter Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.IngredientID != nil {
		add("m.ingredient_id = $%d", *filter.IngredientID)
	}
	if filter.From != nil {
		add("m.created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("m.created_at <= $%d", *filter.To)
	}

	if len(conds) == 0 {
		return "", nil
	}

	return "\n\t\t WHERE " + strings.Join(conds, " AND "), args
}
