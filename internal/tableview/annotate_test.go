// internal/tableview/annotate_test.go
package tableview_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labsuite/labstock/internal/tableview"
)

func parseTable(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	table := doc.Find("table").First()
	require.Equal(t, 1, table.Length())
	return table
}

const componentsTable = `
<table id="components-table">
  <thead>
    <tr><th>Name</th><th>Quantity</th><th>Location</th></tr>
  </thead>
  <tbody>
    <tr><td>Sodium Chloride</td><td>20</td><td>Shelf A3</td></tr>
    <tr><td>Beaker 100ml</td><td>4</td><td>Cabinet B</td></tr>
  </tbody>
</table>`

func TestRowLabels(t *testing.T) {
	headers := []string{"Name", "Quantity", "Location"}

	tests := []struct {
		name     string
		headers  []string
		width    int
		expected []string
	}{
		{
			name:     "width_matches_headers",
			headers:  headers,
			width:    3,
			expected: []string{"Name", "Quantity", "Location"},
		},
		{
			name:     "surplus_cells_stay_unlabelled",
			headers:  headers,
			width:    5,
			expected: []string{"Name", "Quantity", "Location", "", ""},
		},
		{
			name:     "narrow_row_takes_leading_headers",
			headers:  headers,
			width:    2,
			expected: []string{"Name", "Quantity"},
		},
		{
			name:     "zero_headers_yield_empty_labels",
			headers:  nil,
			width:    3,
			expected: []string{"", "", ""},
		},
		{
			name:     "zero_width_yields_empty_slice",
			headers:  headers,
			width:    0,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tableview.RowLabels(tt.headers, tt.width))
		})
	}
}

func TestAnnotator_Annotate(t *testing.T) {
	t.Run("tags_body_cells_with_column_labels", func(t *testing.T) {
		table := parseTable(t, componentsTable)
		a := tableview.NewAnnotator()

		id := a.Annotate(table)
		assert.Equal(t, "components-table", id)
		assert.True(t, a.Annotated(id))

		rows := table.Find("tbody tr")
		require.Equal(t, 2, rows.Length())

		firstCells := rows.First().Find("td")
		label, _ := firstCells.Eq(0).Attr(tableview.LabelAttr)
		assert.Equal(t, "Name", label)
		label, _ = firstCells.Eq(1).Attr(tableview.LabelAttr)
		assert.Equal(t, "Quantity", label)
		label, _ = firstCells.Eq(2).Attr(tableview.LabelAttr)
		assert.Equal(t, "Location", label)
	})

	t.Run("second_annotate_is_a_noop", func(t *testing.T) {
		table := parseTable(t, componentsTable)
		a := tableview.NewAnnotator()

		firstID := a.Annotate(table)
		before, err := goquery.OuterHtml(table)
		require.NoError(t, err)

		secondID := a.Annotate(table)
		after, err := goquery.OuterHtml(table)
		require.NoError(t, err)

		assert.Equal(t, firstID, secondID)
		assert.Equal(t, before, after, "re-annotating must not change the markup")
	})

	t.Run("generates_stable_id_when_table_has_none", func(t *testing.T) {
		table := parseTable(t, `<table><tr><th>Name</th></tr><tr><td>x</td></tr></table>`)
		a := tableview.NewAnnotator()

		id := a.Annotate(table)
		assert.True(t, strings.HasPrefix(id, "labstock-table-"))

		attr, ok := table.Attr("id")
		require.True(t, ok)
		assert.Equal(t, id, attr)

		assert.Equal(t, id, a.Annotate(table), "re-annotation must see the generated id")
	})

	t.Run("headerless_table_leaves_cells_untagged", func(t *testing.T) {
		table := parseTable(t, `<table id="t"><tr><td>a</td><td>b</td></tr></table>`)
		tableview.NewAnnotator().Annotate(table)

		table.Find("td").Each(func(_ int, cell *goquery.Selection) {
			_, ok := cell.Attr(tableview.LabelAttr)
			assert.False(t, ok)
		})
	})

	t.Run("surplus_cells_beyond_headers_stay_untagged", func(t *testing.T) {
		table := parseTable(t, `
<table id="t">
  <tr><th>Name</th><th>Quantity</th></tr>
  <tr><td>x</td><td>1</td><td>extra</td></tr>
</table>`)
		tableview.NewAnnotator().Annotate(table)

		cells := table.Find("td")
		require.Equal(t, 3, cells.Length())
		label, _ := cells.Eq(1).Attr(tableview.LabelAttr)
		assert.Equal(t, "Quantity", label)
		_, ok := cells.Eq(2).Attr(tableview.LabelAttr)
		assert.False(t, ok, "surplus cell has no matching header")
	})

	t.Run("rows_without_tbody_are_tagged", func(t *testing.T) {
		table := parseTable(t, `
<table id="t">
  <tr><th>Name</th></tr>
  <tr><td>Pipette</td></tr>
</table>`)
		tableview.NewAnnotator().Annotate(table)

		label, ok := table.Find("td").First().Attr(tableview.LabelAttr)
		require.True(t, ok)
		assert.Equal(t, "Name", label)
	})

	t.Run("header_text_is_trimmed", func(t *testing.T) {
		table := parseTable(t, `
<table id="t">
  <tr><th>
    Unit Price
  </th></tr>
  <tr><td>12.50</td></tr>
</table>`)
		tableview.NewAnnotator().Annotate(table)

		label, _ := table.Find("td").First().Attr(tableview.LabelAttr)
		assert.Equal(t, "Unit Price", label)
	})

	t.Run("separate_annotators_track_independently", func(t *testing.T) {
		table := parseTable(t, componentsTable)
		a := tableview.NewAnnotator()
		b := tableview.NewAnnotator()

		id := a.Annotate(table)
		assert.True(t, a.Annotated(id))
		assert.False(t, b.Annotated(id))
	})
}
