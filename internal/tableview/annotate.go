// internal/tableview/annotate.go

// Package tableview makes server-rendered component tables usable on
// narrow viewports. It tags body cells with the semantic label of their
// column so a stylesheet can stack each row as label/value pairs, and it
// maintains a proportional indicator of horizontal scroll position for
// tables that overflow their container.
package tableview

import (
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

// LabelAttr is the attribute carrying the column label on each body cell.
const LabelAttr = "data-label"

const tableIDPrefix = "labstock-table-"

// RowLabels returns the label for each of width cells in a body row.
// Cells beyond the header count get an empty label: malformed tables are
// tolerated, their surplus cells simply stay unlabelled. Zero headers
// yield all-empty labels.
func RowLabels(headers []string, width int) []string {
	labels := make([]string, width)
	for i := 0; i < width && i < len(headers); i++ {
		labels[i] = headers[i]
	}
	return labels
}

// Annotator tags tables and tracks which ones it has already processed.
// The processed set lives on the instance and is append-only for the
// instance's lifetime; one annotator per screen keeps the population
// bounded and avoids cross-test leakage.
type Annotator struct {
	mu          sync.Mutex
	processed   map[string]struct{}
	attachments map[string]*attachment
}

// NewAnnotator creates an annotator with an empty processed set.
func NewAnnotator() *Annotator {
	return &Annotator{processed: make(map[string]struct{})}
}

// Annotate derives the ordered label list from the table's first header
// row and tags every body cell with the label at its column index. The
// table gets a stable generated id when it has none, so idempotence
// tracking survives re-renders that keep the node. Calling Annotate again
// on the same table is a no-op. The table's id is returned.
func (a *Annotator) Annotate(table *goquery.Selection) string {
	id, ok := table.Attr("id")
	if !ok || id == "" {
		id = tableIDPrefix + uuid.NewString()
		table.SetAttr("id", id)
	}

	a.mu.Lock()
	if _, done := a.processed[id]; done {
		a.mu.Unlock()
		return id
	}
	a.processed[id] = struct{}{}
	a.mu.Unlock()

	headers := headerLabels(table)

	bodyRows(table).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		labels := RowLabels(headers, cells.Length())
		cells.Each(func(i int, cell *goquery.Selection) {
			if labels[i] != "" {
				cell.SetAttr(LabelAttr, labels[i])
			}
		})
	})
	return id
}

// Annotated reports whether a table id has been processed already.
func (a *Annotator) Annotated(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, done := a.processed[id]
	return done
}

// headerLabels reads the first row containing header cells, left to
// right. A table with no header cells produces zero labels.
func headerLabels(table *goquery.Selection) []string {
	var labels []string
	table.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		ths := row.Find("th")
		if ths.Length() == 0 {
			return true
		}
		ths.Each(func(_ int, th *goquery.Selection) {
			labels = append(labels, strings.TrimSpace(th.Text()))
		})
		return false
	})
	return labels
}

// bodyRows returns the rows to tag: tbody rows when a tbody exists,
// otherwise every row without header cells.
func bodyRows(table *goquery.Selection) *goquery.Selection {
	if tbody := table.Find("tbody"); tbody.Length() > 0 {
		return tbody.Find("tr")
	}
	return table.Find("tr").FilterFunction(func(_ int, row *goquery.Selection) bool {
		return row.Find("th").Length() == 0
	})
}
