package onoff

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Render writes the report to w as a transposed text table: one row per
// statistic, one column per report line, so the six lines fit a terminal
// side by side.
func Render(w io.Writer, r *Report) error {
	headers := make([]string, 0, len(r.Rows)+1)
	headers = append(headers, "")
	rightAlign := make(map[int]bool, len(r.Rows))
	for i, row := range r.Rows {
		headers = append(headers, row.Label)
		rightAlign[i+1] = true
	}

	rows := make([][]string, 0, len(columnNames))
	for _, col := range Columns() {
		line := make([]string, 0, len(r.Rows)+1)
		line = append(line, col.Name)
		for _, row := range r.Rows {
			line = append(line, formatValue(col.Value(row.Stats)))
		}
		rows = append(rows, line)
	}

	if _, err := fmt.Fprintf(w, "Players: %s\n\n", strings.Join(r.Players, ", ")); err != nil {
		return err
	}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// formatValue prints a statistic without trailing zeros; rounding has
// already capped the precision at 3 decimals.
func formatValue(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = utf8.RuneCountInString(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatTableRow(headers, widths, rightAlignCols))
	for _, row := range rows {
		lines = append(lines, formatTableRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatTableRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	padding := width - utf8.RuneCountInString(value)
	if padding <= 0 {
		return value
	}
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}
