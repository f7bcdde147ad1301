package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nkal22/ncaa-hoops-pbp/internal/pbp"
)

// eventColumns are the fixed leading columns of the play-by-play
// artifact. Lineup columns follow, one tuple and one cardinality column
// per tracked team.
var eventColumns = []string{
	"period", "time_remaining", "player_name", "team", "event_type",
	"game_id", "is_shot", "shot_outcome", "shot_type", "shot_range", "points",
}

// EventsFileName builds the timestamped artifact name for a team's
// play-by-play table.
func EventsFileName(team string, now time.Time) string {
	return fmt.Sprintf("%s_pbp_data_%s.csv", stripSpaces(team), now.Format("20060102_150405"))
}

// ReportFileName builds the timestamped artifact name for a team's
// on/off report.
func ReportFileName(team string, now time.Time) string {
	return fmt.Sprintf("%s_onoffdata_%s.csv", stripSpaces(team), now.Format("20060102_150405"))
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// lineupTeams lists every tracked team in first-appearance order across
// events, alphabetical within a single event's snapshot. Concatenated
// multi-game tables union their teams in the same way.
func lineupTeams(events []pbp.PlayEvent) []string {
	seen := make(map[string]bool)
	var teams []string
	for _, e := range events {
		if len(e.Lineups) == 0 {
			continue
		}
		var fresh []string
		for name := range e.Lineups {
			if !seen[name] {
				fresh = append(fresh, name)
			}
		}
		sort.Strings(fresh)
		for _, name := range fresh {
			seen[name] = true
			teams = append(teams, name)
		}
	}
	return teams
}

// WriteEvents writes the annotated event table to w as CSV.
func WriteEvents(w io.Writer, events []pbp.PlayEvent) error {
	teams := lineupTeams(events)

	header := append([]string{}, eventColumns...)
	for _, t := range teams {
		header = append(header, "lineup_"+t)
	}
	for _, t := range teams {
		header = append(header, "lineup_len_"+t)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range events {
		row := make([]string, 0, len(header))
		row = append(row,
			e.Period,
			e.TimeRemaining,
			e.PlayerName,
			e.Team,
			e.Description,
			e.GameID,
			formatBool(e.IsShot),
			string(e.ShotOutcome),
			string(e.ShotType),
			string(e.ShotRange),
			strconv.Itoa(e.Points),
		)
		for _, t := range teams {
			if lineup, ok := e.Lineups[t]; ok {
				row = append(row, FormatTuple(lineup))
			} else {
				row = append(row, "")
			}
		}
		for _, t := range teams {
			if lineup, ok := e.Lineups[t]; ok {
				row = append(row, strconv.Itoa(len(lineup)))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteEventsFile writes the event table to a new file at path.
func WriteEventsFile(path string, events []pbp.PlayEvent) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteEvents(f, events); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadEvents reads an event table produced by WriteEvents or by earlier
// exports of the same artifact. Columns are located by header name, so a
// leading index column and extra columns are tolerated; lineup team
// order follows the header.
func ReadEvents(r io.Reader) ([]pbp.PlayEvent, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range eventColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var lineupCols []string
	for _, name := range header {
		if strings.HasPrefix(name, "lineup_") && !strings.HasPrefix(name, "lineup_len_") {
			lineupCols = append(lineupCols, strings.TrimPrefix(name, "lineup_"))
		}
	}

	var events []pbp.PlayEvent
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		cell := func(name string) string {
			i := index[name]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		e := pbp.PlayEvent{
			Period:        cell("period"),
			TimeRemaining: cell("time_remaining"),
			PlayerName:    cell("player_name"),
			Team:          cell("team"),
			Description:   cell("event_type"),
			GameID:        cell("game_id"),
			ShotOutcome:   pbp.ShotOutcome(cell("shot_outcome")),
			ShotType:      parseShotType(cell("shot_type")),
			ShotRange:     parseShotRange(cell("shot_range")),
		}

		if v := cell("is_shot"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("line %d: is_shot %q: %w", line, v, err)
			}
			e.IsShot = b
		}
		if v := cell("points"); v != "" {
			// Exports that passed through a dataframe can carry points
			// as "2.0"; accept both forms.
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: points %q: %w", line, v, err)
			}
			e.Points = int(f)
		}

		for _, team := range lineupCols {
			v := cell("lineup_" + team)
			if v == "" {
				continue
			}
			names, err := ParseTuple(v)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if e.Lineups == nil {
				e.Lineups = make(map[string]pbp.Lineup, len(lineupCols))
			}
			e.Lineups[team] = pbp.Lineup(names)
		}

		events = append(events, e)
	}
	return events, nil
}

// ReadEventsFile reads an event table from path.
func ReadEventsFile(path string) ([]pbp.PlayEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	events, err := ReadEvents(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return events, nil
}

// formatBool matches the artifact's historical True/False capitalization.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func parseShotType(s string) pbp.ShotType {
	if s == "" {
		return pbp.ShotTypeNone
	}
	return pbp.ShotType(s)
}

func parseShotRange(s string) pbp.ShotRange {
	if s == "" {
		return pbp.ShotRangeNone
	}
	return pbp.ShotRange(s)
}
