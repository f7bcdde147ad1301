package pbp

import (
	"regexp"
	"strings"
)

// shotVocabulary marks an event as a shot attempt when any entry appears
// in the description (case-insensitive).
var shotVocabulary = []string{"2pt", "3pt", "jumpshot", "layup", "dunk", "freethrow"}

var (
	madeRe   = regexp.MustCompile(`(?i)\s+made`)
	missedRe = regexp.MustCompile(`(?i)\s+missed`)
)

// shotTypeRule pairs a predicate with the type it assigns. Predicates see
// the lower-cased, outcome-stripped description.
type shotTypeRule struct {
	match func(desc string) bool
	typ   ShotType
}

// shotTypeRules are evaluated in order, first match wins. Precedence
// matters: a "3pt jumpshot" must not fall through to the two-point jumper
// rule, and a "2pt dunk pointsinthepaint" is a dunk before it is anything
// else paint-flagged.
var shotTypeRules = []shotTypeRule{
	{func(d string) bool { return strings.Contains(d, "freethrow") }, ShotTypeFreeThrow},
	{func(d string) bool { return strings.Contains(d, "3pt") || strings.Contains(d, "three point") }, ShotTypeThreePt},
	{func(d string) bool { return strings.Contains(d, "jumpshot") || strings.Contains(d, "jumper") }, ShotTypeTwoPtJumper},
	{func(d string) bool { return strings.Contains(d, "dunk") }, ShotTypeDunk},
	{func(d string) bool { return strings.Contains(d, "layup") }, ShotTypeLayup},
}

// ClassifyShots annotates every event with shot information, returning a
// new slice; the input is left untouched. Running it again over its own
// output is a no-op: outcomes already extracted are preserved, and the
// stripped descriptions classify to the same type, range and points.
func ClassifyShots(events []PlayEvent) []PlayEvent {
	out := make([]PlayEvent, len(events))
	for i, e := range events {
		out[i] = classifyEvent(e)
	}
	return out
}

func classifyEvent(e PlayEvent) PlayEvent {
	desc := e.Description
	lower := strings.ToLower(desc)

	e.IsShot = false
	for _, pattern := range shotVocabulary {
		if strings.Contains(lower, pattern) {
			e.IsShot = true
			break
		}
	}

	if e.IsShot {
		// Pull the outcome out of the description so later stages see a
		// clean label. An already-stripped description keeps whatever
		// outcome was recorded before.
		if strings.Contains(lower, "made") {
			e.ShotOutcome = ShotOutcomeMade
			desc = madeRe.ReplaceAllString(desc, "")
		} else if strings.Contains(lower, "missed") {
			e.ShotOutcome = ShotOutcomeMissed
			desc = missedRe.ReplaceAllString(desc, "")
		}
	}

	desc = strings.ReplaceAll(desc, ";", "")
	e.Description = desc

	if !e.IsShot {
		e.ShotType = ShotTypeNone
		e.ShotRange = ShotRangeNone
		e.Points = 0
		return e
	}

	lower = strings.ToLower(desc)

	e.ShotType = ShotTypeNone
	for _, rule := range shotTypeRules {
		if rule.match(lower) {
			e.ShotType = rule.typ
			break
		}
	}

	switch {
	case e.ShotType == ShotTypeFreeThrow:
		e.ShotRange = ShotRangeFreeThrow
	case e.ShotType == ShotTypeThreePt:
		e.ShotRange = ShotRangeThreePt
	case strings.Contains(lower, "pointsinthepaint"):
		e.ShotRange = ShotRangePaint
	case e.ShotType == ShotTypeTwoPtJumper:
		e.ShotRange = ShotRangeMidRange
	default:
		e.ShotRange = ShotRangeNone
	}

	switch {
	case e.ShotType == ShotTypeFreeThrow:
		e.Points = 1
	case e.ShotType == ShotTypeThreePt:
		e.Points = 3
	case e.ShotType == ShotTypeTwoPtJumper || strings.Contains(lower, "2pt"):
		e.Points = 2
	default:
		e.Points = 0
	}
	if e.ShotOutcome == ShotOutcomeMissed {
		e.Points = 0
	}

	return e
}
