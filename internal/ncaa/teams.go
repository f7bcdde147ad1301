package ncaa

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Team is one entry in a season's team directory.
type Team struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Path string `json:"path"`
}

var teamHrefRe = regexp.MustCompile(`^/teams/(\d+)`)

// TeamDirectoryPath builds the site path listing every team for a
// season, sport and division.
func TeamDirectoryPath(season int, sport string, division int) string {
	return fmt.Sprintf("/team/inst_team_list?academic_year=%d&conf_id=-1&division=%d&sport_code=%s",
		season, division, sport)
}

// ParseTeamDirectory extracts the team index from a directory page,
// keyed by school name.
func ParseTeamDirectory(doc *goquery.Document) map[string]Team {
	teams := make(map[string]Team)
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		m := teamHrefRe.FindStringSubmatch(href)
		if m == nil {
			return
		}
		name := strings.TrimSpace(a.Text())
		if name == "" {
			return
		}
		teams[name] = Team{Name: name, ID: m[1], Path: href}
	})
	return teams
}
