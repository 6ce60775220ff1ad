package movements

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const dateLayout = time.DateOnly

//nolint:gochecknoglobals //export layout
var exportHeader = []string{"Id", "Date", "Ingredient", "Type", "Qty", "Unit"}

type Reader interface {
	Query(ctx context.Context, filter Filter, limit, offset int) ([]Movement, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	Sums(ctx context.Context, filter Filter) (Sums, error)
}

type Store interface {
	Reader
	// Snapshot runs fn against a consistent view of the ledger.
	Snapshot(ctx context.Context, fn func(Reader) error) error
}

type Service struct {
	movements Store

	logger *zap.Logger
}

func NewService(movements Store, logger *zap.Logger) *Service {
	return &Service{
		movements: movements,
		logger:    logger,
	}
}

// List returns one page of the filtered ledger with totals over the whole filter.
func (s *Service) List(ctx context.Context, filter Filter, page, pageSize int) (*Page, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}

	page, pageSize = NormalizePage(page, pageSize)

	var (
		rows  []Movement
		total int64
		sums  Sums
	)
	err := s.movements.Snapshot(ctx, func(ledger Reader) error {
		var err error
		if rows, err = ledger.Query(ctx, filter, pageSize, (page-1)*pageSize); err != nil {
			return err
		}
		if total, err = ledger.Count(ctx, filter); err != nil {
			return err
		}
		sums, err = ledger.Sums(ctx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Page{
		Rows:     rows,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Pages:    pagesFor(total, pageSize),
		Sums:     sums,
	}, nil
}

// ExportCSV writes every matching row with CRLF line endings.
func (s *Service) ExportCSV(ctx context.Context, filter Filter, w io.Writer) error {
	rows, err := s.all(ctx, filter)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if writeErr := cw.Write(exportHeader); writeErr != nil {
		return fmt.Errorf("failed to write csv header: %w", writeErr)
	}
	for _, m := range rows {
		if writeErr := cw.Write(record(m)); writeErr != nil {
			return fmt.Errorf("failed to write csv row: %w", writeErr)
		}
	}

	cw.Flush()
	if flushErr := cw.Error(); flushErr != nil {
		return fmt.Errorf("failed to flush csv: %w", flushErr)
	}

	s.logger.Debug("csv export", zap.Int("rows", len(rows)))
	return nil
}

func (s *Service) all(ctx context.Context, filter Filter) ([]Movement, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}

	return s.movements.Query(ctx, filter, 0, 0)
}

func record(m Movement) []string {
	return []string{
		strconv.FormatInt(m.ID, 10),
		m.Date.Format(dateLayout),
		m.IngredientName,
		string(m.Type),
		strconv.FormatFloat(m.Qty, 'f', -1, 64),
		m.UnitName,
	}
}

func (f Filter) validate() error {
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return ErrInvalidRange
	}
	return nil
}
