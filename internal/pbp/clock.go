package pbp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// periodRank orders period labels chronologically. Halves come first, then
// each overtime in turn.
var periodRank = map[string]int{
	"1st Half": 1,
	"2nd Half": 2,
	"OT":       3,
	"2nd OT":   4,
	"3rd OT":   5,
	"4th OT":   6,
	"5th OT":   7,
	"6th OT":   8,
	"7th OT":   9,
	"8th OT":   10,
	"9th OT":   11,
	"10th OT":  12,
}

// PeriodRank returns the chronological rank for a period label.
func PeriodRank(label string) (int, bool) {
	rank, ok := periodRank[label]
	return rank, ok
}

// Clock is a parsed countdown reading. The site shows MM:SS for most of a
// period and MM:SS:hh inside the final minute.
type Clock struct {
	Minutes    int
	Seconds    int
	Hundredths int
}

// ParseClock parses a countdown string in MM:SS or MM:SS:hh form.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return Clock{}, fmt.Errorf("invalid clock %q", s)
	}

	var c Clock
	var err error
	if c.Minutes, err = strconv.Atoi(parts[0]); err != nil {
		return Clock{}, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	if c.Seconds, err = strconv.Atoi(parts[1]); err != nil {
		return Clock{}, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	if len(parts) == 3 {
		if c.Hundredths, err = strconv.Atoi(parts[2]); err != nil {
			return Clock{}, fmt.Errorf("invalid clock %q: %w", s, err)
		}
	}
	return c, nil
}

// TotalSeconds is the whole-second countdown value. Hundredths are dropped
// here on purpose: elapsed-time accounting works in whole seconds.
func (c Clock) TotalSeconds() int {
	return c.Minutes*60 + c.Seconds
}

// sortValue includes hundredths so events inside the final minute keep
// their relative order.
func (c Clock) sortValue() float64 {
	return float64(c.TotalSeconds()) + float64(c.Hundredths)/100
}

// clockSortValue parses a countdown string for ordering. Unparseable
// strings count as 0:00, i.e. the very end of the period.
func clockSortValue(s string) float64 {
	c, err := ParseClock(s)
	if err != nil {
		return 0
	}
	return c.sortValue()
}

// clockSeconds parses a countdown string for elapsed-time accounting,
// with the same 0:00 fallback as clockSortValue.
func clockSeconds(s string) int {
	c, err := ParseClock(s)
	if err != nil {
		return 0
	}
	return c.TotalSeconds()
}

// Chronological returns a copy of events sorted into game order: period
// rank ascending, then countdown clock descending (the clock counts down,
// so larger readings are earlier). The sort is stable. If any period label
// is not recognized, cross-period order cannot be established and the
// input order is preserved.
func Chronological(events []PlayEvent) []PlayEvent {
	out := make([]PlayEvent, len(events))
	copy(out, events)

	type sortKey struct {
		rank  int
		clock float64
	}
	keys := make([]sortKey, len(out))
	order := make([]int, len(out))
	for i, e := range out {
		rank, ok := PeriodRank(e.Period)
		if !ok {
			return out
		}
		keys[i] = sortKey{rank: rank, clock: clockSortValue(e.TimeRemaining)}
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := keys[order[i]], keys[order[j]]
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		return a.clock > b.clock
	})

	sorted := make([]PlayEvent, len(out))
	for i, idx := range order {
		sorted[i] = out[idx]
	}
	return sorted
}

// IntervalMinutes computes, for each event except the last, the minutes
// elapsed until the next event in an already-sorted single-game slice.
// Within a period this is the difference of the countdown clocks; for the
// last event of a period it is the event's own remaining clock, taken as
// the time until the period ends. The returned slice has len(events)-1
// entries; the final event has no successor to diff against. Values can be
// negative when the source ordering is inconsistent - callers decide what
// to do with those.
func IntervalMinutes(events []PlayEvent) []float64 {
	if len(events) < 2 {
		return nil
	}
	minutes := make([]float64, len(events)-1)
	for i := 0; i < len(events)-1; i++ {
		secs := clockSeconds(events[i].TimeRemaining)
		if events[i].Period == events[i+1].Period {
			minutes[i] = float64(secs-clockSeconds(events[i+1].TimeRemaining)) / 60
		} else {
			minutes[i] = float64(secs) / 60
		}
	}
	return minutes
}
