package pbp

import (
	"reflect"
	"testing"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"DOE,JOHN", "Doe,John"},
		{"doe,john", "Doe,John"},
		{"Doe,John", "Doe,John"},
		{"JONES JR.,J", "Jones Jr.,J"},
		{"O'BRIEN,PAT", "O'Brien,Pat"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := titleCase(tt.input); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLineupContainsAndEqual(t *testing.T) {
	l := Lineup{"Adams,A", "Baker,B", "Clark,C"}

	if !l.Contains("Baker,B") {
		t.Error("Contains missed a present player")
	}
	if l.Contains("Davis,D") {
		t.Error("Contains reported an absent player")
	}
	if !l.Equal(Lineup{"Adams,A", "Baker,B", "Clark,C"}) {
		t.Error("Equal rejected an identical lineup")
	}
	if l.Equal(Lineup{"Adams,A", "Baker,B"}) {
		t.Error("Equal accepted a shorter lineup")
	}
}

// sub builds a substitution event for the tracker fixtures.
func sub(clock, team, player, direction string) PlayEvent {
	return PlayEvent{
		Period:        "1st Half",
		TimeRemaining: clock,
		Team:          team,
		PlayerName:    player,
		Description:   "substitution " + direction,
	}
}

func trackerFixture() []PlayEvent {
	return []PlayEvent{
		{Period: "1st Half", TimeRemaining: "20:00", Team: GameEventTeam, Description: "jumpball"},
		sub("15:00", "Duke", "ADAMS,A", "out"),
		sub("15:00", "Duke", "FISHER,F", "in"),
		sub("14:00", "Duke", "BAKER,B", "out"),
		sub("14:00", "Duke", "GROSS,G", "in"),
		sub("13:00", "North Carolina", "FOX,F", "out"),
		sub("13:00", "North Carolina", "KING,K", "in"),
		sub("12:00", "Duke", "CLARK,C", "out"),
		sub("12:00", "Duke", "ADAMS,A", "in"),
		sub("11:00", "Duke", "DAVIS,D", "out"),
		sub("11:00", "Duke", "HILL,H", "in"),
		sub("10:00", "Duke", "EVANS,E", "out"),
		sub("10:00", "Duke", "JONES JR.,J", "in"),
		sub("09:00", "North Carolina", "GREEN,G", "out"),
		sub("09:00", "North Carolina", "LONG,L", "in"),
		sub("08:00", "North Carolina", "HALL,H", "out"),
		sub("08:00", "North Carolina", "MOSS,M", "in"),
		sub("07:00", "North Carolina", "IRVIN,I", "out"),
		sub("07:00", "North Carolina", "NASH,N", "in"),
		sub("06:00", "North Carolina", "JONES,J", "out"),
		sub("06:00", "North Carolina", "OWENS,O", "in"),
		sub("05:00", "Phantom State", "NOBODY,N", "out"),
		sub("04:00", "North Carolina", "king,k", "out"),
		{Period: "1st Half", TimeRemaining: "03:00", Team: "Duke", PlayerName: "FISHER,F", Description: "3pt jumpshot made"},
	}
}

func TestTrackLineupsStarters(t *testing.T) {
	got := TrackLineups(trackerFixture())
	if len(got) != 24 {
		t.Fatalf("got %d events, want 24", len(got))
	}

	// The opening jump ball predates every substitution, so both inferred
	// starting fives should be on the floor.
	first := got[0]
	if first.Team != GameEventTeam {
		t.Fatalf("first event is %q, want the opening jump ball", first.Description)
	}

	wantDuke := Lineup{"Adams,A", "Baker,B", "Clark,C", "Davis,D", "Evans,E"}
	if !first.Lineups["Duke"].Equal(wantDuke) {
		t.Errorf("Duke starters = %v, want %v", first.Lineups["Duke"], wantDuke)
	}

	wantUNC := Lineup{"Fox,F", "Green,G", "Hall,H", "Irvin,I", "Jones,J"}
	if !first.Lineups["North Carolina"].Equal(wantUNC) {
		t.Errorf("North Carolina starters = %v, want %v", first.Lineups["North Carolina"], wantUNC)
	}
}

func TestTrackLineupsSwapOrder(t *testing.T) {
	got := TrackLineups(trackerFixture())

	// The sub-out row itself already reflects the departure.
	out := got[1]
	if out.PlayerName != "ADAMS,A" {
		t.Fatalf("event 1 is %q, want the ADAMS,A sub out", out.PlayerName)
	}
	if out.Lineups["Duke"].Contains("Adams,A") {
		t.Error("Adams,A still on the floor on the sub-out row")
	}
	if len(out.Lineups["Duke"]) != 4 {
		t.Errorf("Duke lineup has %d players mid-swap, want 4", len(out.Lineups["Duke"]))
	}

	in := got[2]
	want := Lineup{"Baker,B", "Clark,C", "Davis,D", "Evans,E", "Fisher,F"}
	if !in.Lineups["Duke"].Equal(want) {
		t.Errorf("Duke lineup after swap = %v, want %v", in.Lineups["Duke"], want)
	}
}

func TestTrackLineupsFullReplay(t *testing.T) {
	got := TrackLineups(trackerFixture())

	last := got[len(got)-1]
	if last.Description != "3pt jumpshot made" {
		t.Fatalf("last event is %q, want the closing shot", last.Description)
	}

	wantDuke := Lineup{"Adams,A", "Fisher,F", "Gross,G", "Hill,H", "Jones Jr.,J"}
	if !last.Lineups["Duke"].Equal(wantDuke) {
		t.Errorf("Duke lineup at close = %v, want %v", last.Lineups["Duke"], wantDuke)
	}

	// king,k subs out in a different letter case than the entry row used;
	// name normalization has to connect the two.
	wantUNC := Lineup{"Long,L", "Moss,M", "Nash,N", "Owens,O"}
	if !last.Lineups["North Carolina"].Equal(wantUNC) {
		t.Errorf("North Carolina lineup at close = %v, want %v", last.Lineups["North Carolina"], wantUNC)
	}
}

func TestTrackLineupsIgnoresLateTeams(t *testing.T) {
	got := TrackLineups(trackerFixture())

	// Phantom State only shows up after both starting fives are known, so
	// it is never tracked. Its event still carries the real teams' floors.
	for _, e := range got {
		if len(e.Lineups) != 2 {
			t.Fatalf("event %q tracks %d teams, want 2", e.Description, len(e.Lineups))
		}
		if _, ok := e.Lineups["Phantom State"]; ok {
			t.Fatal("Phantom State should not be tracked")
		}
	}
}

func TestTrackLineupsSingleTeam(t *testing.T) {
	events := []PlayEvent{
		sub("15:00", "Duke", "ADAMS,A", "out"),
		sub("14:00", "Duke", "BAKER,B", "out"),
		{Period: "1st Half", TimeRemaining: "13:00", Team: "Duke", Description: "2pt layup made"},
	}

	got := TrackLineups(events)
	if len(got) != len(events) {
		t.Fatalf("got %d events, want %d", len(got), len(events))
	}
	for _, e := range got {
		if e.Lineups != nil {
			t.Errorf("event %q gained lineups with only one team's substitutions", e.Description)
		}
	}
}

func TestTrackLineupsNoSubstitutions(t *testing.T) {
	events := []PlayEvent{
		{Period: "1st Half", TimeRemaining: "19:00", Team: "Duke", Description: "2pt layup made"},
		{Period: "1st Half", TimeRemaining: "18:00", Team: "North Carolina", Description: "defensive rebound"},
	}

	got := TrackLineups(events)
	if !reflect.DeepEqual(got, events) {
		t.Errorf("events without substitutions should pass through unchanged")
	}
}

func TestTrackLineupsAlternateVocabulary(t *testing.T) {
	events := []PlayEvent{
		{Period: "1st Half", TimeRemaining: "15:00", Team: "Duke", PlayerName: "ADAMS,A", Description: "Leaves Game"},
		{Period: "1st Half", TimeRemaining: "15:00", Team: "Duke", PlayerName: "FISHER,F", Description: "Enters Game"},
		{Period: "1st Half", TimeRemaining: "14:00", Team: "North Carolina", PlayerName: "FOX,F", Description: "Leaves Game"},
		{Period: "1st Half", TimeRemaining: "14:00", Team: "North Carolina", PlayerName: "KING,K", Description: "Enters Game"},
	}

	got := TrackLineups(events)

	if got[0].Lineups == nil {
		t.Fatal("older substitution wording was not recognized")
	}
	if got[0].Lineups["Duke"].Contains("Adams,A") {
		t.Error("Adams,A should be off the floor after leaving the game")
	}
	if !got[1].Lineups["Duke"].Contains("Fisher,F") {
		t.Error("Fisher,F should be on the floor after entering the game")
	}
}
