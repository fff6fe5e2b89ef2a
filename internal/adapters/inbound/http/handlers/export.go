package handlers

import (
	"encoding/csv"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/xuri/excelize/v2"
)

type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"

	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	HeaderTotalCount      = "Total-Count"
	HeaderExportTruncated = "Export-Truncated"
)

func parseExportFormat(format *string) (ExportFormat, error) {
	if format == nil || *format == "" {
		return ExportFormatCSV, nil
	}

	switch f := ExportFormat(*format); f {
	case ExportFormatCSV, ExportFormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", model.ErrUnsupportedFormat, *format)
	}
}

// writeExport streams export as an attachment. Headers are final once the body starts.
func writeExport(w http.ResponseWriter, format ExportFormat, export *model.Export) error {
	contentType := contentTypeCSV
	if format == ExportFormatXLSX {
		contentType = contentTypeXLSX
	}

	filename := fmt.Sprintf("%s.%s", export.Table, format)

	w.Header().Set(contentTypeHeader, contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set(HeaderTotalCount, strconv.Itoa(export.Total))

	if export.Truncated {
		w.Header().Set(HeaderExportTruncated, "true")
	}

	w.WriteHeader(http.StatusOK)

	if format == ExportFormatXLSX {
		return writeXLSX(w, export)
	}

	return writeCSV(w, export)
}

func writeCSV(w http.ResponseWriter, export *model.Export) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(export.Headers); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	if err := writer.WriteAll(export.Rows); err != nil {
		return fmt.Errorf("writing csv rows: %w", err)
	}

	return nil
}

func writeXLSX(w http.ResponseWriter, export *model.Export) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := export.Table
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := setSheetRow(f, sheet, 1, export.Headers); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return fmt.Errorf("styling header row: %w", err)
	}

	for i, row := range export.Rows {
		if err := setSheetRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

func setSheetRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("resolving cell of row %d: %w", row, err)
	}

	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}

	return nil
}
