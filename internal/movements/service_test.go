package movements_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"slices"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/bakerypro/bakerypro/internal/movements"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap/zaptest"
)

// memoryLedger mirrors the SQL semantics of Repository.
type memoryLedger struct {
	rows []movements.Movement
}

func (m *memoryLedger) match(filter movements.Filter) []movements.Movement {
	matched := lo.Filter(m.rows, func(r movements.Movement, _ int) bool {
		if filter.IngredientID != nil && r.IngredientID != *filter.IngredientID {
			return false
		}
		if filter.From != nil && r.Date.Before(*filter.From) {
			return false
		}
		if filter.To != nil && r.Date.After(*filter.To) {
			return false
		}
		return true
	})

	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].ID > matched[j].ID
	})

	return matched
}

func (m *memoryLedger) Query(_ context.Context, filter movements.Filter, limit, offset int) ([]movements.Movement, error) {
	matched := m.match(filter)
	if limit <= 0 {
		return matched, nil
	}
	if offset >= len(matched) {
		return []movements.Movement{}, nil
	}
	return matched[offset:min(len(matched), offset+limit)], nil
}

func (m *memoryLedger) Count(_ context.Context, filter movements.Filter) (int64, error) {
	return int64(len(m.match(filter))), nil
}

func (m *memoryLedger) Sums(_ context.Context, filter movements.Filter) (movements.Sums, error) {
	var sums movements.Sums
	for _, r := range m.match(filter) {
		if r.Type == movements.TypeIn {
			sums.In += r.Qty
		} else {
			sums.Out += r.Qty
		}
	}
	return sums, nil
}

func (m *memoryLedger) Snapshot(_ context.Context, fn func(movements.Reader) error) error {
	return fn(m)
}

// busyLedger appends a movement after every read outside a snapshot, as
// concurrent refills would. Snapshots see a frozen copy.
type busyLedger struct {
	memoryLedger
}

func (b *busyLedger) touch() {
	next := int64(len(b.rows) + 1)
	b.rows = append(b.rows, movements.Movement{ID: next, IngredientID: 1, Type: movements.TypeIn, Qty: 100, Date: day(20)})
}

func (b *busyLedger) Query(ctx context.Context, filter movements.Filter, limit, offset int) ([]movements.Movement, error) {
	defer b.touch()
	return b.memoryLedger.Query(ctx, filter, limit, offset)
}

func (b *busyLedger) Count(ctx context.Context, filter movements.Filter) (int64, error) {
	defer b.touch()
	return b.memoryLedger.Count(ctx, filter)
}

func (b *busyLedger) Sums(ctx context.Context, filter movements.Filter) (movements.Sums, error) {
	defer b.touch()
	return b.memoryLedger.Sums(ctx, filter)
}

func (b *busyLedger) Snapshot(_ context.Context, fn func(movements.Reader) error) error {
	frozen := &memoryLedger{rows: slices.Clone(b.rows)}
	defer b.touch()
	return fn(frozen)
}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

// newLedger builds 37 movements over two ingredients, several per day so ties on date occur.
func newLedger() *memoryLedger {
	ledger := &memoryLedger{}
	for i := 1; i <= 37; i++ {
		movement := movements.Movement{
			ID:             int64(i),
			IngredientID:   int64(1 + (i+1)%2),
			IngredientName: "Flour",
			UnitName:       "kg",
			Type:           movements.TypeIn,
			Qty:            float64(i),
			Date:           day(1 + i/4),
		}
		if i%2 == 0 {
			movement.IngredientName = "Sugar"
		}
		if i%3 == 0 {
			movement.Type = movements.TypeOut
		}
		ledger.rows = append(ledger.rows, movement)
	}
	return ledger
}

func TestService_ListPagesCoverFilteredSet(t *testing.T) {
	ledger := newLedger()
	service := movements.NewService(ledger, zaptest.NewLogger(t))
	ctx := context.Background()

	ingredient := int64(1)
	from, to := day(2), day(8)
	filters := []movements.Filter{
		{},
		{IngredientID: &ingredient},
		{From: &from, To: &to},
		{IngredientID: &ingredient, From: &from},
	}

	for _, filter := range filters {
		want := ledger.match(filter)

		for _, pageSize := range []int{1, 5, 7, 20, 100} {
			var got []movements.Movement
			for page := 1; ; page++ {
				result, err := service.List(ctx, filter, page, pageSize)
				require.NoError(t, err)
				require.Equal(t, int64(len(want)), result.Total)

				got = append(got, result.Rows...)
				if page >= result.Pages {
					break
				}
			}

			assert.Equal(t, want, got, "page size %d", pageSize)
			assert.Len(t, lo.UniqBy(got, func(m movements.Movement) int64 { return m.ID }), len(want))
		}
	}
}

func TestService_ListNormalizesPaging(t *testing.T) {
	service := movements.NewService(newLedger(), zaptest.NewLogger(t))

	result, err := service.List(context.Background(), movements.Filter{}, 0, -3)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, movements.DefaultPageSize, result.PageSize)
	assert.Len(t, result.Rows, movements.DefaultPageSize)
	assert.Equal(t, 2, result.Pages)

	result, err = service.List(context.Background(), movements.Filter{}, 1, 10_000)
	require.NoError(t, err)
	assert.Equal(t, movements.MaxPageSize, result.PageSize)
	assert.Equal(t, 1, result.Pages)

	result, err = service.List(context.Background(), movements.Filter{}, 9, 20)
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
}

func TestService_ListEmptyHasOnePage(t *testing.T) {
	service := movements.NewService(&memoryLedger{}, zaptest.NewLogger(t))

	result, err := service.List(context.Background(), movements.Filter{}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Total)
	assert.Equal(t, 1, result.Pages)
}

func TestService_ListSumsNetChange(t *testing.T) {
	ledger := &memoryLedger{rows: []movements.Movement{
		{ID: 1, IngredientID: 1, Type: movements.TypeIn, Qty: 50, Date: day(1)},
		{ID: 2, IngredientID: 1, Type: movements.TypeOut, Qty: 12.5, Date: day(2)},
		{ID: 3, IngredientID: 1, Type: movements.TypeOut, Qty: 7.5, Date: day(3)},
		{ID: 4, IngredientID: 1, Type: movements.TypeIn, Qty: 10, Date: day(4)},
		{ID: 5, IngredientID: 2, Type: movements.TypeIn, Qty: 99, Date: day(4)},
	}}
	service := movements.NewService(ledger, zaptest.NewLogger(t))

	ingredient := int64(1)
	result, err := service.List(context.Background(), movements.Filter{IngredientID: &ingredient}, 1, 1)
	require.NoError(t, err)

	assert.Len(t, result.Rows, 1)
	assert.InDelta(t, 60.0, result.Sums.In, 1e-9)
	assert.InDelta(t, 20.0, result.Sums.Out, 1e-9)
	assert.InDelta(t, 40.0, result.Sums.Net(), 1e-9)
}

func TestService_ListRejectsInvertedRange(t *testing.T) {
	service := movements.NewService(newLedger(), zaptest.NewLogger(t))
	from, to := day(5), day(1)

	_, err := service.List(context.Background(), movements.Filter{From: &from, To: &to}, 1, 20)
	require.ErrorIs(t, err, movements.ErrInvalidRange)
}

func TestService_ExportCSV(t *testing.T) {
	ledger := &memoryLedger{rows: []movements.Movement{
		{ID: 7, IngredientName: `O"Brien`, UnitName: "kg", Type: movements.TypeIn, Qty: 2.5, Date: day(3)},
		{ID: 8, IngredientName: "Salt, fine", UnitName: "g", Type: movements.TypeOut, Qty: 100, Date: day(4)},
	}}
	service := movements.NewService(ledger, zaptest.NewLogger(t))

	var buf bytes.Buffer
	require.NoError(t, service.ExportCSV(context.Background(), movements.Filter{}, &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Id,Date,Ingredient,Type,Qty,Unit\r\n"), out)
	assert.Contains(t, out, "8,2025-03-04,\"Salt, fine\",O,100,g\r\n")
	assert.Contains(t, out, "7,2025-03-03,\"O\"\"Brien\",I,2.5,kg\r\n")

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, `O"Brien`, records[2][2])
	assert.Equal(t, "Salt, fine", records[1][2])
}

func TestService_ExportXLSX(t *testing.T) {
	service := movements.NewService(newLedger(), zaptest.NewLogger(t))
	ingredient := int64(2)

	data, err := service.ExportXLSX(context.Background(), movements.Filter{IngredientID: &ingredient})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Movements")
	require.NoError(t, err)
	require.Len(t, rows, 1+18)
	assert.Equal(t, []string{"Id", "Date", "Ingredient", "Type", "Qty", "Unit"}, rows[0])
	assert.Equal(t, "Sugar", rows[1][2])
}

func TestService_ListReadsOneSnapshot(t *testing.T) {
	ledger := &busyLedger{memoryLedger: *newLedger()}
	service := movements.NewService(ledger, zaptest.NewLogger(t))

	page, err := service.List(context.Background(), movements.Filter{}, 1, movements.MaxPageSize)
	require.NoError(t, err)

	assert.Len(t, page.Rows, 37)
	assert.EqualValues(t, len(page.Rows), page.Total)

	var in, out float64
	for _, r := range page.Rows {
		if r.Type == movements.TypeIn {
			in += r.Qty
		} else {
			out += r.Qty
		}
	}
	assert.InDelta(t, in, page.Sums.In, 1e-9)
	assert.InDelta(t, out, page.Sums.Out, 1e-9)
}
