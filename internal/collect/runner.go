// Package collect orchestrates a season collection pass: team directory
// lookup, schedule fetch, then the per-contest parse, shot
// classification and lineup tracking pipeline.
package collect

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/nkal22/ncaa-hoops-pbp/internal/ncaa"
	"github.com/nkal22/ncaa-hoops-pbp/internal/pbp"
)

// ErrTeamNotFound reports a team name absent from the season directory.
var ErrTeamNotFound = errors.New("team not found in directory")

// Request describes one season collection run.
type Request struct {
	Team     string
	Sport    string
	Season   int
	Division int

	// Opponents filters the schedule. Empty, or any entry equal to
	// "all", keeps every opponent.
	Opponents []string
}

// GameSummary records one successfully collected contest.
type GameSummary struct {
	GameID   string
	Opponent string
	Date     string
	Events   int
}

// SkippedContest records one contest dropped from the batch.
type SkippedContest struct {
	Opponent string
	Path     string
	Reason   string
}

// Result is a season's worth of annotated events plus the per-contest
// ledger of what was kept and what was dropped.
type Result struct {
	Events  []pbp.PlayEvent
	Games   []GameSummary
	Skipped []SkippedContest
}

// Runner drives collection against the stats site.
type Runner struct {
	client *ncaa.Client
}

// NewRunner constructs a runner on the given client.
func NewRunner(client *ncaa.Client) *Runner {
	return &Runner{client: client}
}

// Run collects every selected contest for the requested team. A contest
// that fails to fetch or parse is logged and skipped; the batch fails
// only when nothing at all was collected.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	team, err := r.lookupTeam(ctx, req)
	if err != nil {
		return nil, err
	}

	doc, err := r.client.FetchDocument(ctx, team.Path)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule for %s: %w", team.Name, err)
	}
	sched := ncaa.ParseSchedule(doc)

	opponents, err := selectOpponents(sched, req.Opponents)
	if err != nil {
		return nil, err
	}

	var contests []ncaa.Contest
	for _, opp := range opponents {
		contests = append(contests, sched.Contests[opp]...)
	}
	if len(contests) == 0 {
		return nil, fmt.Errorf("no played contests on %s's schedule", team.Name)
	}

	result := &Result{}
	total := len(contests)
	for i, contest := range contests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		log.Printf("[collector] Processing %s vs %s (%d/%d)", team.Name, contest.Opponent, i+1, total)

		events, gameID, err := r.collectContest(ctx, contest)
		if err != nil {
			log.Printf("[collector] Warning: skipping %s at %s: %v", contest.Opponent, contest.Path, err)
			result.Skipped = append(result.Skipped, SkippedContest{
				Opponent: contest.Opponent,
				Path:     contest.Path,
				Reason:   err.Error(),
			})
			continue
		}

		result.Events = append(result.Events, events...)
		result.Games = append(result.Games, GameSummary{
			GameID:   gameID,
			Opponent: contest.Opponent,
			Date:     contest.Date,
			Events:   len(events),
		})
		log.Printf("[collector] ✓ %s: %d events", gameID, len(events))
	}

	if len(result.Games) == 0 {
		return nil, fmt.Errorf("no contests collected for %s", team.Name)
	}
	log.Printf("[collector] Collected %d games, %d events (%d skipped)",
		len(result.Games), len(result.Events), len(result.Skipped))
	return result, nil
}

func (r *Runner) lookupTeam(ctx context.Context, req Request) (ncaa.Team, error) {
	doc, err := r.client.FetchDocument(ctx, ncaa.TeamDirectoryPath(req.Season, req.Sport, req.Division))
	if err != nil {
		return ncaa.Team{}, fmt.Errorf("fetch team directory: %w", err)
	}
	teams := ncaa.ParseTeamDirectory(doc)

	team, ok := teams[req.Team]
	if !ok {
		names := make([]string, 0, len(teams))
		for name := range teams {
			names = append(names, name)
		}
		sort.Strings(names)
		log.Printf("[collector] %d teams in directory: %s", len(names), strings.Join(names, ", "))
		return ncaa.Team{}, fmt.Errorf("%w: %q (season %d, %s, division %d)",
			ErrTeamNotFound, req.Team, req.Season, req.Sport, req.Division)
	}
	return team, nil
}

// selectOpponents resolves the request's opponent filter against the
// schedule, keeping schedule order.
func selectOpponents(sched *ncaa.Schedule, filter []string) ([]string, error) {
	if len(filter) == 0 {
		return sched.Opponents, nil
	}
	for _, f := range filter {
		if strings.EqualFold(f, "all") {
			return sched.Opponents, nil
		}
	}

	var missing []string
	for _, f := range filter {
		if _, ok := sched.Contests[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("opponents not on schedule: %s", strings.Join(missing, ", "))
	}
	return filter, nil
}

// collectContest runs the per-game pipeline: fetch, normalize, classify
// shots, track lineups.
func (r *Runner) collectContest(ctx context.Context, contest ncaa.Contest) ([]pbp.PlayEvent, string, error) {
	doc, err := r.client.FetchDocument(ctx, contest.Path)
	if err != nil {
		return nil, "", err
	}
	game, err := pbp.ParseGame(doc)
	if err != nil {
		return nil, "", err
	}
	if len(game.Events) == 0 {
		return nil, "", fmt.Errorf("no events on play-by-play page")
	}

	events := pbp.ClassifyShots(game.Events)
	events = pbp.TrackLineups(events)
	return events, game.ID, nil
}
