package ncaa

import (
	"reflect"
	"testing"
)

const schedulePage = `
<html><body>
<table>
<tr><th>Date</th><th>Opponent</th><th>Result</th></tr>
<tr>
  <td>11/06/2024</td>
  <td><a href="/teams/561300">Campbell</a></td>
  <td><a href="/contests/5301000/box_score">W 83-42</a></td>
</tr>
<tr>
  <td>11/12/2024</td>
  <td><a href="/teams/561301">@ #4 Duke</a></td>
  <td><a href="/contests/5301001/box_score">L 51-72</a></td>
</tr>
<tr>
  <td>02/17/2025</td>
  <td><a href="/teams/561301">Duke</a></td>
  <td><a href="/contests/5301099/box_score">W 63-61</a></td>
</tr>
<tr>
  <td>03/01/2025</td>
  <td><a href="/teams/561302">North Carolina</a></td>
  <td>TBD</td>
</tr>
</table>
</body></html>`

func TestParseSchedule(t *testing.T) {
	s := ParseSchedule(docFromString(t, schedulePage))

	wantOpp := []string{"Campbell", "Duke"}
	if !reflect.DeepEqual(s.Opponents, wantOpp) {
		t.Fatalf("opponents = %v, want %v", s.Opponents, wantOpp)
	}

	duke := s.Contests["Duke"]
	if len(duke) != 2 {
		t.Fatalf("got %d Duke contests, want 2", len(duke))
	}
	first := duke[0]
	if first.Opponent != "Duke" {
		t.Errorf("opponent = %q, want away and rank prefixes stripped", first.Opponent)
	}
	if first.Path != "/contests/5301001/play_by_play" {
		t.Errorf("path = %q, want the box score href rewritten", first.Path)
	}
	if first.Result != "L 51-72" {
		t.Errorf("result = %q, want %q", first.Result, "L 51-72")
	}
	if first.Date != "11/12/2024" {
		t.Errorf("date = %q, want %q", first.Date, "11/12/2024")
	}
	if duke[1].Path != "/contests/5301099/play_by_play" {
		t.Errorf("second path = %q, want the February game", duke[1].Path)
	}

	// The unplayed North Carolina game has no result link.
	if _, ok := s.Contests["North Carolina"]; ok {
		t.Error("future contest should be skipped")
	}
}

func TestParseScheduleEmpty(t *testing.T) {
	s := ParseSchedule(docFromString(t, "<html><body><table></table></body></html>"))
	if len(s.Opponents) != 0 || len(s.Contests) != 0 {
		t.Errorf("got %d opponents and %d contest keys, want none", len(s.Opponents), len(s.Contests))
	}
}

func TestCleanOpponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Duke", "Duke"},
		{"@ Duke", "Duke"},
		{"#4 Duke", "Duke"},
		{"@ #4 Duke", "Duke"},
		{"  Wake Forest ", "Wake Forest"},
		{"@Houston", "Houston"},
	}
	for _, tt := range tests {
		if got := cleanOpponent(tt.in); got != tt.want {
			t.Errorf("cleanOpponent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
