package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/nkal22/ncaa-hoops-pbp/internal/onoff"
)

// WriteReport writes the six-row on/off report to w as CSV. The first
// column holds the row label, the second the analyzed player tuple, then
// one column per statistic.
func WriteReport(w io.Writer, report *onoff.Report) error {
	cols := onoff.Columns()

	header := make([]string, 0, len(cols)+2)
	header = append(header, "", "players")
	for _, c := range cols {
		header = append(header, c.Name)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	players := FormatTuple(report.Players)
	for _, row := range report.Rows {
		record := make([]string, 0, len(header))
		record = append(record, row.Label, players)
		for _, c := range cols {
			record = append(record, formatStat(c.Value(row.Stats)))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %s: %w", row.Label, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteReportFile writes the report to a new file at path.
func WriteReportFile(path string, report *onoff.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteReport(f, report); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// formatStat prints a rounded statistic without trailing zeros.
func formatStat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
