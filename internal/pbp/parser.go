package pbp

import (
	"errors"
	"log"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoDate is returned when a play-by-play page carries no contest date
// cell. Without a date there is no game identifier, so the page is
// unusable.
var ErrNoDate = errors.New("no contest date found on page")

var (
	contestDateRe = regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})`)
	lastWordRe    = regexp.MustCompile(`(\w+)$`)
	teamNameRe    = regexp.MustCompile(`[ .']`)
)

// ParseGame extracts the full event table from one play-by-play page. Each
// period lives in its own card section: a header naming the period, then a
// table whose column headers name the two teams and whose rows carry the
// countdown clock, one cell per team, and the running score. Events come
// back in game order with the shared game identifier filled in.
func ParseGame(doc *goquery.Document) (*Game, error) {
	date, err := contestDate(doc)
	if err != nil {
		return nil, err
	}

	game := &Game{Date: date}
	var events []PlayEvent

	doc.Find("div.card-header").Each(func(_ int, section *goquery.Selection) {
		period := strings.TrimSpace(section.Text())

		body := section.NextAllFiltered("div.card-body").First()
		if body.Length() == 0 {
			log.Printf("[parser] Warning: no table container for period %s", period)
			return
		}
		table := body.Find("table").First()
		if table.Length() == 0 {
			log.Printf("[parser] Warning: no table found in period %s", period)
			return
		}

		teamA, teamB, resolved := headerTeams(table)
		if !resolved {
			log.Printf("[parser] Warning: could not identify both team names in period %s", period)
		}
		game.Teams = [2]string{teamA, teamB}

		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			if row.Find("th").Length() > 0 {
				return
			}
			cells := row.Find("td")
			if cells.Length() < 3 {
				return
			}

			clock := strings.TrimSpace(cells.Eq(0).Text())

			// A cell spanning the full row is a game-level marker
			// (jump ball, period start/end, timeout).
			var wide *goquery.Selection
			cells.EachWithBreak(func(_ int, cell *goquery.Selection) bool {
				if _, ok := cell.Attr("colspan"); ok {
					wide = cell
					return false
				}
				return true
			})
			if wide != nil {
				text := strings.TrimSpace(wide.Text())
				if text != "" {
					events = append(events, PlayEvent{
						Period:        period,
						TimeRemaining: clock,
						Team:          GameEventTeam,
						Description:   markerWord(text),
					})
				}
				return
			}

			// One cell per team; a single row can yield two events when
			// both sides have simultaneous entries.
			if text := strings.TrimSpace(cells.Eq(1).Text()); text != "" {
				player, desc := playerAndDescription(cells.Eq(1), text)
				events = append(events, PlayEvent{
					Period:        period,
					TimeRemaining: clock,
					PlayerName:    player,
					Team:          teamA,
					Description:   desc,
				})
			}
			if cells.Length() > 3 {
				if text := strings.TrimSpace(cells.Eq(3).Text()); text != "" {
					player, desc := playerAndDescription(cells.Eq(3), text)
					events = append(events, PlayEvent{
						Period:        period,
						TimeRemaining: clock,
						PlayerName:    player,
						Team:          teamB,
						Description:   desc,
					})
				}
			}
		})
	})

	if len(events) == 0 {
		return game, nil
	}

	game.ID = GameID(game.Teams[0], game.Teams[1], date)
	for i := range events {
		events[i].GameID = game.ID
	}
	game.Events = Chronological(events)
	return game, nil
}

// GameID derives the shared identifier for a contest: both team names with
// spaces and punctuation stripped, then the date as YYYYMMDD.
func GameID(teamA, teamB, date string) string {
	return teamNameRe.ReplaceAllString(teamA, "") + teamNameRe.ReplaceAllString(teamB, "") + date
}

// contestDate scans the page's top header table for a wide cell holding an
// MM/DD/YYYY date and returns it as YYYYMMDD.
func contestDate(doc *goquery.Document) (string, error) {
	var date string
	header := doc.Find("div.table-responsive").First().Find("table").First()
	header.Find("td.grey_text").EachWithBreak(func(_ int, td *goquery.Selection) bool {
		if _, ok := td.Attr("colspan"); !ok {
			return true
		}
		m := contestDateRe.FindStringSubmatch(td.Text())
		if m == nil {
			return true
		}
		date = m[3] + m[1] + m[2]
		return false
	})
	if date == "" {
		return "", ErrNoDate
	}
	return date, nil
}

// headerTeams resolves the two team names from a period table's column
// headers. Missing names fall back to placeholders so the period still
// parses; resolved reports whether both came from the page.
func headerTeams(table *goquery.Selection) (teamA, teamB string, resolved bool) {
	var names []string
	table.Find("th").Each(func(_ int, th *goquery.Selection) {
		span := th.Find("span.d-none.d-sm-block").First()
		if span.Length() == 0 {
			return
		}
		if len(names) < 2 {
			names = append(names, strings.TrimSpace(span.Text()))
		}
	})

	teamA, teamB = "", ""
	if len(names) > 0 {
		teamA = names[0]
	}
	if len(names) > 1 {
		teamB = names[1]
	}
	resolved = teamA != "" && teamB != ""
	if teamA == "" {
		teamA = "Team 1"
	}
	if teamB == "" {
		teamB = "Team 2"
	}
	return teamA, teamB, resolved
}

// playerAndDescription splits a team cell into its player and action. The
// player appears as a bold "Name," prefix; everything else in the cell is
// the description. Cells without the bold pattern are all description.
func playerAndDescription(cell *goquery.Selection, fullText string) (player, desc string) {
	var bold *goquery.Selection
	cell.Find("b").EachWithBreak(func(_ int, b *goquery.Selection) bool {
		if strings.HasSuffix(strings.TrimSpace(b.Text()), ",") {
			bold = b
			return false
		}
		return true
	})
	if bold == nil {
		return "", fullText
	}

	player = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(bold.Text()), ","))

	clone := cell.Clone()
	clone.Find("b").Remove()
	desc = strings.TrimSpace(clone.Text())
	desc = strings.TrimSpace(strings.TrimPrefix(desc, ","))
	return player, desc
}

// markerWord reduces a game-level marker to its trailing word, the part
// that names the event ("jumpball startperiod" -> "startperiod").
func markerWord(text string) string {
	if m := lastWordRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}
