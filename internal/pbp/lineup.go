package pbp

import (
	"log"
	"sort"
	"strings"
	"unicode"
)

// Lineup is one team's on-court player set at a point in the game, stored
// as a sorted slice so snapshots compare and serialize deterministically.
type Lineup []string

// Contains reports whether name is on the floor.
func (l Lineup) Contains(name string) bool {
	for _, n := range l {
		if n == name {
			return true
		}
	}
	return false
}

// Equal reports whether two snapshots hold the same players.
func (l Lineup) Equal(other Lineup) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// isSubOut reports whether a description records a player leaving the
// floor. Both vocabularies the site has used are accepted.
func isSubOut(desc string) bool {
	d := strings.ToLower(desc)
	return strings.Contains(d, "substitution out") || strings.Contains(d, "leaves game")
}

// isSubIn reports whether a description records a player entering the floor.
func isSubIn(desc string) bool {
	d := strings.ToLower(desc)
	return strings.Contains(d, "substitution in") || strings.Contains(d, "enters game")
}

// titleCase normalizes a player name for lineup membership: the source
// mixes letter cases between the sub-out and sub-in rows for the same
// player, so each alphabetic run is capitalized and the rest lowered.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// TrackLineups infers both starting fives from substitution evidence, then
// replays the game to attach each team's on-court set to every event. The
// returned slice is sorted chronologically; the input is left untouched.
//
// Starter inference: walking substitutions in game order, a player who
// subs out before ever subbing in must have started. Inference stops once
// every team discovered so far has five starters. If fewer than two teams
// are discovered the page's substitution data is unusable and the events
// are returned as-is, with no lineup annotations.
func TrackLineups(events []PlayEvent) []PlayEvent {
	subs := make([]PlayEvent, 0)
	for _, e := range Chronological(events) {
		if isSubOut(e.Description) || isSubIn(e.Description) {
			subs = append(subs, e)
		}
	}

	subbedIn := make(map[string]map[string]bool)
	starters := make(map[string][]string)
	var teamOrder []string

	for _, e := range subs {
		name := titleCase(e.PlayerName)
		switch {
		case isSubOut(e.Description):
			if !subbedIn[e.Team][name] && len(starters[e.Team]) < 5 {
				if _, seen := starters[e.Team]; !seen {
					teamOrder = append(teamOrder, e.Team)
				}
				starters[e.Team] = append(starters[e.Team], name)
			}
		case isSubIn(e.Description):
			if subbedIn[e.Team] == nil {
				subbedIn[e.Team] = make(map[string]bool)
			}
			subbedIn[e.Team][name] = true
		}

		if startersComplete(starters) {
			break
		}
	}

	for _, team := range teamOrder {
		log.Printf("[lineups] %s starters: %s", team, strings.Join(starters[team], ", "))
	}

	if len(teamOrder) <= 1 {
		log.Printf("[lineups] Warning: incorrect or missing substitution data, skipping lineup tracking")
		return events
	}

	live := make(map[string]map[string]bool, len(teamOrder))
	for _, team := range teamOrder {
		live[team] = make(map[string]bool, 5)
		for _, name := range starters[team] {
			live[team][name] = true
		}
	}

	out := Chronological(events)
	for i := range out {
		// A substitution mutates the live set first, so the event's own
		// row reflects the floor after the swap. Unknown teams (game
		// events, foreign rows) are a no-op.
		if set, ok := live[out[i].Team]; ok {
			name := titleCase(out[i].PlayerName)
			switch {
			case isSubOut(out[i].Description):
				delete(set, name)
			case isSubIn(out[i].Description):
				set[name] = true
			}
		}

		snapshots := make(map[string]Lineup, len(teamOrder))
		for _, team := range teamOrder {
			snapshots[team] = snapshotLineup(live[team])
		}
		out[i].Lineups = snapshots
	}
	return out
}

// startersComplete reports whether every team discovered so far has a full
// starting five. A listing that never completes one side leaves inference
// running until the substitutions run out.
func startersComplete(starters map[string][]string) bool {
	if len(starters) == 0 {
		return false
	}
	for _, lineup := range starters {
		if len(lineup) != 5 {
			return false
		}
	}
	return true
}

func snapshotLineup(set map[string]bool) Lineup {
	lineup := make(Lineup, 0, len(set))
	for name := range set {
		lineup = append(lineup, name)
	}
	sort.Strings(lineup)
	return lineup
}
