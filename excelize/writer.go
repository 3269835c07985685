// Package excelize writes the export workbook as an XLSX file.
package excelize

import (
	"context"

	zeirishi "github.com/valukujp-oss/zeirishi-scraper"
	"github.com/xuri/excelize/v2"
)

// Ensure Writer implements zeirishi.WorkbookWriter at compile time.
var _ zeirishi.WorkbookWriter = (*Writer)(nil)

// defaultColWidth keeps Japanese office names and addresses readable.
const defaultColWidth = 24.0

// Writer persists workbooks with one XLSX sheet per zeirishi.Sheet.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteWorkbook writes wb to path. The first sheet renames the file's
// default sheet so the output contains exactly wb's sheets, in order.
// An unwritable path surfaces from SaveAs; nothing is retried.
func (w *Writer) WriteWorkbook(ctx context.Context, path string, wb zeirishi.Workbook) error {
	if len(wb.Sheets) == 0 {
		return zeirishi.Errorf(zeirishi.EINVALID, "workbook needs at least one sheet")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return err
			}
		}
		if err := writeSheet(f, sheet); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// writeSheet fills one sheet: a header row of SheetColumns followed by one
// row per record.
func writeSheet(f *excelize.File, sheet zeirishi.Sheet) error {
	for col, header := range zeirishi.SheetColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet.Name, cell, header); err != nil {
			return err
		}
	}

	for row, rec := range sheet.Records {
		for col, value := range rec.ExportRow() {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet.Name, cell, value); err != nil {
				return err
			}
		}
	}

	for col := 1; col <= len(zeirishi.SheetColumns); col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, name, name, defaultColWidth); err != nil {
			return err
		}
	}

	return nil
}
