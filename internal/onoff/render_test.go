package onoff

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	report, err := Compute(onOffFixture(), "Virginia", []string{"Beekman,R"})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	var buf strings.Builder
	if err := Render(&buf, report); err != nil {
		t.Fatalf("Render: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	// Players line, blank line, header, then one line per statistic.
	if want := 3 + len(columnNames); len(lines) != want {
		t.Fatalf("got %d lines, want %d", len(lines), want)
	}
	if lines[0] != "Players: Beekman,R" {
		t.Errorf("players line = %q", lines[0])
	}

	header := lines[2]
	for _, label := range []string{"Virginia_ON", "Opponents_ON", "NET_ON", "Virginia_OFF", "Opponents_OFF", "NET_OFF"} {
		if !strings.Contains(header, label) {
			t.Errorf("header %q missing %q", header, label)
		}
	}

	minutesLine := lines[3]
	if !strings.HasPrefix(minutesLine, "minutes") {
		t.Errorf("first stat line = %q, want minutes", minutesLine)
	}
	if !strings.Contains(minutesLine, "1.5") || !strings.Contains(minutesLine, "0.5") {
		t.Errorf("minutes line %q missing the on/off split", minutesLine)
	}

	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "turnovers_per_40") {
		t.Errorf("last stat line = %q, want turnovers_per_40", last)
	}
}
