// internal/export/excel_test.go
package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"github.com/labsuite/labstock/internal/core/domain"
	"github.com/labsuite/labstock/internal/export"
	"github.com/labsuite/labstock/test/helpers"
)

func TestCSV(t *testing.T) {
	components := []*domain.Component{
		helpers.CreateTestComponent(func(c *domain.Component) {
			c.Name = "Sodium Chloride"
			c.Quantity = 20
			c.CriticalLow = 5
		}),
		helpers.CreateTestComponent(func(c *domain.Component) {
			c.Name = "Beaker, 100ml"
			c.Quantity = 0
		}),
	}

	data, err := export.CSV(components)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per component")

	assert.Equal(t, export.Columns, records[0])

	first := records[1]
	assert.Equal(t, "Sodium Chloride", first[1])
	assert.Equal(t, "20", first[6])
	assert.Equal(t, "12.50", first[8])
	assert.Equal(t, "In Stock", first[12])

	second := records[2]
	assert.Equal(t, "Beaker, 100ml", second[1], "embedded commas must survive the round trip")
	assert.Equal(t, "Out of Stock", second[12])
}

func TestCSV_Empty(t *testing.T) {
	data, err := export.CSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
	assert.Equal(t, export.Columns, records[0])
}

func TestExcel(t *testing.T) {
	components := []*domain.Component{
		helpers.CreateTestComponent(func(c *domain.Component) {
			c.Name = "Nitrile Gloves M"
			c.Category = domain.CategorySafety
			c.Quantity = 3
			c.CriticalLow = 10
		}),
	}

	data, err := export.Excel(components)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	file, err := xlsx.OpenBinary(data)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Components", sheet.Name)

	headerCell, err := sheet.Cell(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "Name", headerCell.Value)

	nameCell, err := sheet.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "Nitrile Gloves M", nameCell.Value)

	statusCell, err := sheet.Cell(1, 12)
	require.NoError(t, err)
	assert.Equal(t, "Low Stock", statusCell.Value)
}
