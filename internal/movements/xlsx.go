package movements

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const sheetName = "Movements"

// ExportXLSX renders the same rows as ExportCSV into a workbook.
func (s *Service) ExportXLSX(ctx context.Context, filter Filter) ([]byte, error) {
	start := time.Now()

	rows, err := s.all(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if renameErr := f.SetSheetName(f.GetSheetName(0), sheetName); renameErr != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", renameErr)
	}

	if headerErr := f.SetSheetRow(sheetName, "A1", &exportHeader); headerErr != nil {
		return nil, fmt.Errorf("failed to write header: %w", headerErr)
	}

	for i, m := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{m.ID, m.Date.Format(dateLayout), m.IngredientName, string(m.Type), m.Qty, m.UnitName}
		if rowErr := f.SetSheetRow(sheetName, cell, &values); rowErr != nil {
			return nil, fmt.Errorf("failed to write row: %w", rowErr)
		}
	}

	_ = f.SetColWidth(sheetName, "B", "B", 12)
	_ = f.SetColWidth(sheetName, "C", "C", 28)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Debug("xlsx export",
		zap.Int("rows", len(rows)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return buf.Bytes(), nil
}
