package tui

import (
	"encoding/json"
	"fmt"
	"sort"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrs rebuilds the table columns/rows from the loaded layers.
func (m *Model) refreshAttrs() {
	cols, rows := m.buildAttributes()
	// If there are no rows, disable attributes view to avoid rendering panics
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no attributes for current dataset"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	maxColW := 24
	for _, c := range cols {
		tcols = append(tcols, table.Column{Title: c, Width: min(max(len(c)+2, 8), maxColW)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make([]string, 0, len(tcols))
		row = append(row, fmt.Sprintf("%d", i+1))
		row = append(row, r...)
		trows = append(trows, table.Row(row))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes unions the property keys of every feature in the visible
// layers. The first column names the layer a feature belongs to.
func (m *Model) buildAttributes() ([]string, [][]string) {
	seen := map[string]bool{}
	var keys []string
	for l := layer(0); l < numLayers; l++ {
		if !m.show[l] {
			continue
		}
		for _, f := range m.layers[l].Features {
			for k := range f.Properties {
				if !seen[k] {
					seen[k] = true
					keys = append(keys, k)
				}
			}
		}
	}
	sort.Strings(keys)

	var rows [][]string
	for l := layer(0); l < numLayers; l++ {
		if !m.show[l] {
			continue
		}
		for _, f := range m.layers[l].Features {
			vals := make([]string, 0, len(keys)+2)
			vals = append(vals, l.String(), f.Geometry.GeoJSONType())
			for _, k := range keys {
				vals = append(vals, formatValue(f.Properties[k]))
			}
			rows = append(rows, vals)
		}
	}
	return append([]string{"layer", "type"}, keys...), rows
}

func formatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		bs, _ := json.Marshal(t)
		return string(bs)
	}
}
