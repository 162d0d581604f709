// internal/export/excel.go

// Package export renders a component snapshot as a downloadable
// spreadsheet or CSV.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/tealeg/xlsx/v3"

	"github.com/labsuite/labstock/internal/core/domain"
)

// Columns is the fixed export column order.
var Columns = []string{
	"ID", "Name", "Part Number", "Category", "Manufacturer", "Supplier",
	"Quantity", "Unit", "Unit Price", "Location", "Min Stock",
	"Critical Low", "Stock Status", "Datasheet", "Created At",
}

// Excel renders the components as an xlsx workbook in memory.
func Excel(components []*domain.Component) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Components")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range Columns {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, c := range components {
		row := sheet.AddRow()
		for _, value := range record(c) {
			row.AddCell().Value = value
		}
	}

	for i := range Columns {
		sheet.SetColWidth(i, i, 15)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buffer.Bytes(), nil
}

// CSV renders the components as RFC 4180 CSV with a header row.
func CSV(components []*domain.Component) ([]byte, error) {
	var buffer bytes.Buffer
	w := csv.NewWriter(&buffer)

	if err := w.Write(Columns); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for _, c := range components {
		if err := w.Write(record(c)); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buffer.Bytes(), nil
}

func record(c *domain.Component) []string {
	return []string{
		c.ID,
		c.Name,
		c.PartNumber,
		string(c.Category),
		c.Manufacturer,
		c.Supplier,
		strconv.Itoa(c.Quantity),
		c.Unit,
		c.UnitPrice.StringFixed(2),
		c.Location,
		strconv.Itoa(c.MinStock),
		strconv.Itoa(c.CriticalLow),
		c.StockStatus().DisplayName(),
		c.DatasheetURL,
		c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
