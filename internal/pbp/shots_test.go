package pbp

import (
	"reflect"
	"testing"
)

func TestClassifyShots(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantShot    bool
		wantOutcome ShotOutcome
		wantType    ShotType
		wantRange   ShotRange
		wantPoints  int
		wantDesc    string
	}{
		{
			name:        "made three pointer",
			description: "3pt jumpshot made",
			wantShot:    true,
			wantOutcome: ShotOutcomeMade,
			wantType:    ShotTypeThreePt,
			wantRange:   ShotRangeThreePt,
			wantPoints:  3,
			wantDesc:    "3pt jumpshot",
		},
		{
			name:        "missed layup scores nothing",
			description: "2pt layup missed",
			wantShot:    true,
			wantOutcome: ShotOutcomeMissed,
			wantType:    ShotTypeLayup,
			wantRange:   ShotRangeNone,
			wantPoints:  0,
			wantDesc:    "2pt layup",
		},
		{
			name:        "made free throw",
			description: "freethrow 1of2 made",
			wantShot:    true,
			wantOutcome: ShotOutcomeMade,
			wantType:    ShotTypeFreeThrow,
			wantRange:   ShotRangeFreeThrow,
			wantPoints:  1,
			wantDesc:    "freethrow 1of2",
		},
		{
			name:        "dunk in the paint",
			description: "2pt dunk pointsinthepaint made",
			wantShot:    true,
			wantOutcome: ShotOutcomeMade,
			wantType:    ShotTypeDunk,
			wantRange:   ShotRangePaint,
			wantPoints:  2,
			wantDesc:    "2pt dunk pointsinthepaint",
		},
		{
			name:        "bare jumpshot defaults to two points",
			description: "Jumpshot Made",
			wantShot:    true,
			wantOutcome: ShotOutcomeMade,
			wantType:    ShotTypeTwoPtJumper,
			wantRange:   ShotRangeMidRange,
			wantPoints:  2,
			wantDesc:    "Jumpshot",
		},
		{
			name:        "two point attempt without a recognized type",
			description: "2pt turnaround made",
			wantShot:    true,
			wantOutcome: ShotOutcomeMade,
			wantType:    ShotTypeNone,
			wantRange:   ShotRangeNone,
			wantPoints:  2,
			wantDesc:    "2pt turnaround",
		},
		{
			name:        "spelled out three pointer is not in the vocabulary",
			description: "three point jumper missed",
			wantShot:    false,
			wantOutcome: ShotOutcomeNone,
			wantType:    ShotTypeNone,
			wantRange:   ShotRangeNone,
			wantPoints:  0,
			wantDesc:    "three point jumper missed",
		},
		{
			name:        "mid range jumper",
			description: "2pt jumpshot missed",
			wantShot:    true,
			wantOutcome: ShotOutcomeMissed,
			wantType:    ShotTypeTwoPtJumper,
			wantRange:   ShotRangeMidRange,
			wantPoints:  0,
			wantDesc:    "2pt jumpshot",
		},
		{
			name:        "non shot event untouched",
			description: "steal",
			wantShot:    false,
			wantOutcome: ShotOutcomeNone,
			wantType:    ShotTypeNone,
			wantRange:   ShotRangeNone,
			wantPoints:  0,
			wantDesc:    "steal",
		},
		{
			name:        "semicolons stripped everywhere",
			description: "turnover; bad pass",
			wantShot:    false,
			wantOutcome: ShotOutcomeNone,
			wantType:    ShotTypeNone,
			wantRange:   ShotRangeNone,
			wantPoints:  0,
			wantDesc:    "turnover bad pass",
		},
		{
			name:        "mixed case outcome",
			description: "3pt Jumpshot MISSED",
			wantShot:    true,
			wantOutcome: ShotOutcomeMissed,
			wantType:    ShotTypeThreePt,
			wantRange:   ShotRangeThreePt,
			wantPoints:  0,
			wantDesc:    "3pt Jumpshot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyShots([]PlayEvent{{Description: tt.description}})[0]

			if got.IsShot != tt.wantShot {
				t.Errorf("IsShot = %v, want %v", got.IsShot, tt.wantShot)
			}
			if got.ShotOutcome != tt.wantOutcome {
				t.Errorf("ShotOutcome = %q, want %q", got.ShotOutcome, tt.wantOutcome)
			}
			if got.ShotType != tt.wantType {
				t.Errorf("ShotType = %q, want %q", got.ShotType, tt.wantType)
			}
			if got.ShotRange != tt.wantRange {
				t.Errorf("ShotRange = %q, want %q", got.ShotRange, tt.wantRange)
			}
			if got.Points != tt.wantPoints {
				t.Errorf("Points = %d, want %d", got.Points, tt.wantPoints)
			}
			if got.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", got.Description, tt.wantDesc)
			}
		})
	}
}

func TestClassifyShotsThreePointerBeatsJumper(t *testing.T) {
	got := ClassifyShots([]PlayEvent{{Description: "3pt jumpshot made"}})[0]
	if got.ShotType != ShotTypeThreePt {
		t.Errorf("ShotType = %q, want %q", got.ShotType, ShotTypeThreePt)
	}
}

func TestClassifyShotsIdempotent(t *testing.T) {
	events := []PlayEvent{
		{Description: "3pt jumpshot made"},
		{Description: "2pt layup missed"},
		{Description: "freethrow 2of2 made"},
		{Description: "defensive rebound"},
		{Description: "2pt dunk pointsinthepaint made"},
	}

	once := ClassifyShots(events)
	twice := ClassifyShots(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass changed output:\n first: %+v\nsecond: %+v", once, twice)
	}
}

func TestClassifyShotsDoesNotMutateInput(t *testing.T) {
	events := []PlayEvent{{Description: "3pt jumpshot made"}}
	ClassifyShots(events)

	if events[0].Description != "3pt jumpshot made" || events[0].IsShot {
		t.Errorf("input mutated: %+v", events[0])
	}
}

func TestClassifyShotsMissedNeverScores(t *testing.T) {
	descriptions := []string{
		"3pt jumpshot missed",
		"2pt layup missed",
		"freethrow 1of1 missed",
		"2pt dunk missed",
		"2pt jumpshot missed",
		"2pt hook shot missed",
	}

	for _, desc := range descriptions {
		got := ClassifyShots([]PlayEvent{{Description: desc}})[0]
		if got.Points != 0 {
			t.Errorf("%q scored %d points, want 0", desc, got.Points)
		}
	}
}
