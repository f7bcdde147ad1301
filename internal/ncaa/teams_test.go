package ncaa

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFromString(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

const directoryPage = `
<html><body>
<table>
<tr><td><a href="/teams/561234">Virginia</a></td></tr>
<tr><td><a href="/teams/561235">Duke</a></td></tr>
<tr><td><a href="/teams/561236">St. John's (NY)</a></td></tr>
<tr><td><a href="/rankings/change_sport_year_div">Rankings</a></td></tr>
<tr><td><a href="http://stats.ncaa.org/teams/999999">External</a></td></tr>
</table>
</body></html>`

func TestParseTeamDirectory(t *testing.T) {
	teams := ParseTeamDirectory(docFromString(t, directoryPage))

	if len(teams) != 3 {
		t.Fatalf("got %d teams, want 3", len(teams))
	}
	uva, ok := teams["Virginia"]
	if !ok {
		t.Fatal("Virginia missing from directory")
	}
	if uva.ID != "561234" {
		t.Errorf("ID = %q, want %q", uva.ID, "561234")
	}
	if uva.Path != "/teams/561234" {
		t.Errorf("Path = %q, want %q", uva.Path, "/teams/561234")
	}
	if _, ok := teams["St. John's (NY)"]; !ok {
		t.Error("St. John's (NY) missing from directory")
	}
}

func TestParseTeamDirectoryEmpty(t *testing.T) {
	teams := ParseTeamDirectory(docFromString(t, "<html><body></body></html>"))
	if len(teams) != 0 {
		t.Errorf("got %d teams, want 0", len(teams))
	}
}

func TestTeamDirectoryPath(t *testing.T) {
	got := TeamDirectoryPath(2025, "MBB", 1)
	want := "/team/inst_team_list?academic_year=2025&conf_id=-1&division=1&sport_code=MBB"
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
