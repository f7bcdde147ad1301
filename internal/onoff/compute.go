package onoff

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/nkal22/ncaa-hoops-pbp/internal/pbp"
)

// Report is the six-row on/off table for one team and target player set.
type Report struct {
	Team    string   `json:"team"`
	Players []string `json:"players"`
	Rows    []Row    `json:"rows"`
}

// Row is one labeled report line, e.g. "Virginia_ON" or "NET_OFF".
type Row struct {
	Label string      `json:"label"`
	Stats BucketStats `json:"stats"`
}

// Compute aggregates lineup-annotated events into the on/off report for
// team. An interval counts as "on" only when every name in players is in
// the team's lineup snapshot at the interval's opening event. Games whose
// events carry no opponent lineup are skipped; Compute fails only when no
// game at all was usable.
func Compute(events []pbp.PlayEvent, team string, players []string) (*Report, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("no events to aggregate")
	}

	var teamOn, teamOff, oppOn, oppOff StatLine

	counted := 0
	for _, game := range groupByGame(events) {
		evs := pbp.Chronological(game.events)
		opponent := findOpponent(evs, team)
		if opponent == "" {
			log.Printf("[onoff] Warning: no opponent lineup found in game %s, skipping", game.id)
			continue
		}
		counted++

		// The last event of a game opens no interval, so neither its
		// minutes nor its stats are counted. Negative deltas mean the
		// source ordering was inconsistent; those intervals are dropped
		// the same way.
		minutes := pbp.IntervalMinutes(evs)
		for i, m := range minutes {
			if m < 0 {
				continue
			}
			e := evs[i]
			on := allOnFloor(e.Lineups[team], players)

			teamBucket, oppBucket := &teamOff, &oppOff
			if on {
				teamBucket, oppBucket = &teamOn, &oppOn
			}

			teamBucket.Minutes += m
			oppBucket.Minutes += m

			bucket := oppBucket
			if e.Team == team {
				bucket = teamBucket
			}
			creditEvent(bucket, e)
		}
	}

	if counted == 0 {
		return nil, fmt.Errorf("no games with usable lineup data for %s", team)
	}

	return &Report{Team: team, Players: players, Rows: assembleRows(team, teamOn, teamOff, oppOn, oppOff)}, nil
}

// FilterOpponents keeps only the events of games in which one of the
// named opponents' lineups was tracked.
func FilterOpponents(events []pbp.PlayEvent, opponents []string) ([]pbp.PlayEvent, error) {
	keep := make(map[string]bool)
	for _, e := range events {
		for _, opp := range opponents {
			if _, ok := e.Lineups[opp]; ok {
				keep[e.GameID] = true
				break
			}
		}
	}

	var out []pbp.PlayEvent
	for _, e := range events {
		if keep[e.GameID] {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no games found against %s", strings.Join(opponents, ", "))
	}
	return out, nil
}

type gameEvents struct {
	id     string
	events []pbp.PlayEvent
}

// groupByGame splits events by game identifier, keeping games in first
// appearance order.
func groupByGame(events []pbp.PlayEvent) []gameEvents {
	index := make(map[string]int)
	var games []gameEvents
	for _, e := range events {
		i, ok := index[e.GameID]
		if !ok {
			i = len(games)
			index[e.GameID] = i
			games = append(games, gameEvents{id: e.GameID})
		}
		games[i].events = append(games[i].events, e)
	}
	return games
}

// findOpponent names the other tracked team in a game's lineup
// snapshots. Ties inside a single event resolve alphabetically so the
// choice is deterministic.
func findOpponent(events []pbp.PlayEvent, team string) string {
	for _, e := range events {
		if len(e.Lineups) == 0 {
			continue
		}
		var names []string
		for name := range e.Lineups {
			if name != team {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			sort.Strings(names)
			return names[0]
		}
	}
	return ""
}

// allOnFloor reports whether every target player is in the lineup. A nil
// lineup (untracked team) never satisfies a non-empty player list.
func allOnFloor(lineup pbp.Lineup, players []string) bool {
	for _, p := range players {
		if !lineup.Contains(p) {
			return false
		}
	}
	return true
}

// creditEvent adds one event's production to a bucket. Counting stats
// are inferred from the description, first match wins; shooting splits
// follow the classifier's shot type.
func creditEvent(s *StatLine, e pbp.PlayEvent) {
	s.Points += float64(e.Points)

	desc := strings.ToLower(e.Description)
	switch {
	case strings.Contains(desc, "rebound"):
		s.Rebounds++
	case strings.Contains(desc, "assist"):
		s.Assists++
	case strings.Contains(desc, "steal"):
		s.Steals++
	case strings.Contains(desc, "block"):
		s.Blocks++
	case strings.Contains(desc, "turnover"):
		s.Turnovers++
	}

	if !e.IsShot {
		return
	}
	made := e.ShotOutcome == pbp.ShotOutcomeMade

	if e.ShotType != pbp.ShotTypeFreeThrow {
		s.FGAttempted++
		if made {
			s.FGMade++
		}
	}

	switch e.ShotType {
	case pbp.ShotTypeThreePt:
		s.ThreePtAttempted++
		if made {
			s.ThreePtMade++
		}
	case pbp.ShotTypeFreeThrow:
		s.FTAttempted++
		if made {
			s.FTMade++
		}
	case pbp.ShotTypeLayup, pbp.ShotTypeDunk:
		s.RimAttempted++
		if made {
			s.RimMade++
		}
	case pbp.ShotTypeTwoPtJumper:
		s.MidRangeAttempted++
		if made {
			s.MidRangeMade++
		}
	}
}

func assembleRows(team string, teamOn, teamOff, oppOn, oppOff StatLine) []Row {
	tOn, oOn := teamOn.Finalize(), oppOn.Finalize()
	tOff, oOff := teamOff.Finalize(), oppOff.Finalize()
	netOn := tOn.Sub(oOn)
	netOff := tOff.Sub(oOff)

	return []Row{
		{Label: team + "_ON", Stats: tOn.Rounded()},
		{Label: "Opponents_ON", Stats: oOn.Rounded()},
		{Label: "NET_ON", Stats: netOn.Rounded()},
		{Label: team + "_OFF", Stats: tOff.Rounded()},
		{Label: "Opponents_OFF", Stats: oOff.Rounded()},
		{Label: "NET_OFF", Stats: netOff.Rounded()},
	}
}
