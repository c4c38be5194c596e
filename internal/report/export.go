// Package report exports the last-results list to common file formats.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/go2web/go2web/internal/storage"
)

// ExportFormat defines the export file format.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
	FormatJSON ExportFormat = "json"
)

// columns are the exported column headers, in order.
var columns = []string{"#", "Label", "URL"}

// FormatFromPath infers the export format from a file extension.
func FormatFromPath(path string) (ExportFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("cannot infer export format from %q (use .csv, .xlsx or .json)", path)
	}
}

// Export writes links to filePath in the format inferred from its extension.
func Export(filePath string, links []storage.ResultLink) error {
	format, err := FormatFromPath(filePath)
	if err != nil {
		return err
	}

	switch format {
	case FormatCSV:
		return exportCSV(filePath, links)
	case FormatXLSX:
		return exportXLSX(filePath, links)
	case FormatJSON:
		return exportJSON(filePath, links)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

// exportCSV writes links as CSV.
func exportCSV(filePath string, links []storage.ResultLink) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	// Write UTF-8 BOM for Excel compatibility
	file.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, link := range links {
		row := []string{strconv.Itoa(link.Position), link.Label, link.URL}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

// exportXLSX writes links as an Excel workbook.
func exportXLSX(filePath string, links []storage.ResultLink) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Results"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00C853"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	f.SetColWidth(sheetName, "B", "B", 40)
	f.SetColWidth(sheetName, "C", "C", 60)

	for rowIdx, link := range links {
		values := []interface{}{link.Position, link.Label, link.URL}
		for i, value := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	// Freeze header row
	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	return f.SaveAs(filePath)
}

// exportJSON writes links as indented JSON.
func exportJSON(filePath string, links []storage.ResultLink) error {
	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
