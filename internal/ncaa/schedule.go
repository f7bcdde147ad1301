package ncaa

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Contest is one played game on a team's schedule page.
type Contest struct {
	Date     string
	Opponent string
	Path     string
	Result   string
}

// Schedule holds a team's season: opponent names in page order and the
// contests played against each. Conference foes appear twice under one
// key.
type Schedule struct {
	Opponents []string
	Contests  map[string][]Contest
}

var (
	awayPrefixRe = regexp.MustCompile(`^@\s*`)
	rankPrefixRe = regexp.MustCompile(`^#\d+\s+`)
)

// ParseSchedule reads the games table from a team page. A row counts as
// a played contest when both the opponent cell and the result cell link
// somewhere; future games carry no result link and are skipped. The
// result href points at the box score, so it is rewritten to the
// play-by-play page.
func ParseSchedule(doc *goquery.Document) *Schedule {
	s := &Schedule{Contests: make(map[string][]Contest)}
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}
		oppLink := cells.Eq(1).Find("a").First()
		resLink := cells.Eq(2).Find("a").First()
		if oppLink.Length() == 0 || resLink.Length() == 0 {
			return
		}
		href, ok := resLink.Attr("href")
		if !ok {
			return
		}

		opponent := cleanOpponent(oppLink.Text())
		if opponent == "" {
			return
		}

		contest := Contest{
			Date:     strings.TrimSpace(cells.Eq(0).Text()),
			Opponent: opponent,
			Path:     strings.Replace(href, "box_score", "play_by_play", 1),
			Result:   strings.TrimSpace(resLink.Text()),
		}
		if _, seen := s.Contests[opponent]; !seen {
			s.Opponents = append(s.Opponents, opponent)
		}
		s.Contests[opponent] = append(s.Contests[opponent], contest)
	})
	return s
}

// cleanOpponent strips the away marker and ranking prefix so the name
// matches the team directory.
func cleanOpponent(name string) string {
	name = strings.TrimSpace(name)
	name = awayPrefixRe.ReplaceAllString(name, "")
	name = rankPrefixRe.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
