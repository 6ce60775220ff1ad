package movements

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildWhere(t *testing.T) {
	ingredient := int64(4)
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

	where, args := buildWhere(Filter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = buildWhere(Filter{IngredientID: &ingredient, To: &to})
	assert.Contains(t, where, "m.ingredient_id = $1 AND m.created_at <= $2")
	assert.Equal(t, []any{ingredient, to}, args)

	where, args = buildWhere(Filter{IngredientID: &ingredient, From: &from, To: &to})
	assert.Contains(t, where, "m.ingredient_id = $1 AND m.created_at >= $2 AND m.created_at <= $3")
	assert.Len(t, args, 3)
}

func TestQuerySQL(t *testing.T) {
	ingredient := int64(4)
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	sql, args := querySQL(Filter{IngredientID: &ingredient, From: &from}, 20, 40)
	assert.Contains(t, sql, "WHERE m.ingredient_id = $1 AND m.created_at >= $2")
	assert.Contains(t, sql, "ORDER BY m.created_at DESC, m.id DESC")
	assert.True(t, strings.HasSuffix(sql, "LIMIT $3 OFFSET $4"), sql)
	assert.Equal(t, []any{ingredient, from, 20, 40}, args)

	sql, args = querySQL(Filter{}, 10, 0)
	assert.NotContains(t, sql, "WHERE")
	assert.True(t, strings.HasSuffix(sql, "LIMIT $1 OFFSET $2"), sql)
	assert.Equal(t, []any{10, 0}, args)

	sql, args = querySQL(Filter{IngredientID: &ingredient}, 0, 0)
	assert.NotContains(t, sql, "LIMIT")
	assert.Equal(t, []any{ingredient}, args)
}

func TestAggregateSQL(t *testing.T) {
	ingredient := int64(4)
	to := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	filter := Filter{IngredientID: &ingredient, To: &to}

	sql, args := countSQL(filter)
	assert.Equal(t, "SELECT COUNT(*) FROM ingredient_movements m\n\t\t WHERE m.ingredient_id = $1 AND m.created_at <= $2", sql)
	assert.Equal(t, []any{ingredient, to}, args)

	sql, args = sumsSQL(filter)
	assert.Contains(t, sql, "FILTER (WHERE m.movement_type = 'I')")
	assert.Contains(t, sql, "FILTER (WHERE m.movement_type = 'O')")
	assert.Contains(t, sql, "WHERE m.ingredient_id = $1 AND m.created_at <= $2")
	assert.Equal(t, []any{ingredient, to}, args)

	sql, args = sumsSQL(Filter{})
	assert.NotContains(t, sql, "m.ingredient_id")
	assert.Empty(t, args)
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{0, 0, 1, DefaultPageSize},
		{-1, 50, 1, 50},
		{3, MaxPageSize + 1, 3, MaxPageSize},
		{2, 10, 2, 10},
	}

	for _, tt := range tests {
		page, size := NormalizePage(tt.page, tt.size)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantSize, size)
	}
}
