// Package pbp turns scraped play-by-play pages into a normalized,
// chronologically ordered event table annotated with shot and lineup
// information.
package pbp

// GameEventTeam marks rows that describe the game itself (period starts,
// jump balls, timeouts) rather than an action by either team.
const GameEventTeam = "GAME EVENT"

// ShotOutcome is the result of a shot attempt.
type ShotOutcome string

const (
	ShotOutcomeNone   ShotOutcome = ""
	ShotOutcomeMade   ShotOutcome = "made"
	ShotOutcomeMissed ShotOutcome = "missed"
)

// ShotType classifies a shot attempt by its description vocabulary.
type ShotType string

const (
	ShotTypeNone        ShotType = "None"
	ShotTypeFreeThrow   ShotType = "freethrow"
	ShotTypeThreePt     ShotType = "3pt jumpshot"
	ShotTypeTwoPtJumper ShotType = "2pt jumpshot"
	ShotTypeDunk        ShotType = "dunk"
	ShotTypeLayup       ShotType = "layup"
)

// ShotRange buckets a shot attempt by distance.
type ShotRange string

const (
	ShotRangeNone      ShotRange = "None"
	ShotRangeFreeThrow ShotRange = "freethrow"
	ShotRangeThreePt   ShotRange = "3pt"
	ShotRangePaint     ShotRange = "paint"
	ShotRangeMidRange  ShotRange = "mid-range"
)

// PlayEvent is one row of the normalized play-by-play table. The first six
// fields come from the page; the shot fields are filled in by ClassifyShots
// and Lineups by TrackLineups.
type PlayEvent struct {
	Period        string
	TimeRemaining string
	PlayerName    string
	Team          string
	Description   string
	GameID        string

	IsShot      bool
	ShotOutcome ShotOutcome
	ShotType    ShotType
	ShotRange   ShotRange
	Points      int

	// Lineups maps each tracked team to its on-court snapshot at this
	// event. Nil when lineup tracking was skipped for the game.
	Lineups map[string]Lineup
}

// Game is one contest's parsed event table.
type Game struct {
	ID     string
	Date   string // YYYYMMDD
	Teams  [2]string
	Events []PlayEvent
}
