package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// column describes one table column.
type column struct {
	header string
	align  text.Align
	// colors maps a cell value to the colors it is painted with when the
	// output is a terminal.
	colors map[string]text.Colors
}

// tableView is a rendered table with optional footer totals.
type tableView struct {
	columns  []column
	rows     [][]string
	footer   []string
	colorize bool
}

func (v tableView) render() string {
	if len(v.columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(v.padRow(headers(v.columns)))
	for _, row := range v.rows {
		tw.AppendRow(v.padRow(row))
	}
	if len(v.footer) > 0 {
		tw.AppendFooter(v.padRow(v.footer))
	}

	configs := make([]table.ColumnConfig, len(v.columns))
	for i, col := range v.columns {
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       col.align,
			AlignHeader: text.AlignLeft,
			AlignFooter: col.align,
		}
		if v.colorize && len(col.colors) > 0 {
			configs[i].Transformer = colorTransformer(col.colors)
		}
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}

func (v tableView) padRow(values []string) table.Row {
	row := make(table.Row, len(v.columns))
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		} else {
			row[i] = ""
		}
	}
	return row
}

func headers(columns []column) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i] = col.header
	}
	return out
}

func colorTransformer(colors map[string]text.Colors) text.Transformer {
	return func(val any) string {
		s, _ := val.(string)
		if c, ok := colors[s]; ok {
			return c.Sprint(s)
		}
		return s
	}
}
