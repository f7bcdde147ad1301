// Package onoff splits a team's play-by-play performance by whether a
// set of target players was on the floor, producing the six-row
// on/off/net report.
package onoff

import "math"

// StatLine holds the counting stats accumulated for one bucket while
// replaying a game's events.
type StatLine struct {
	Minutes           float64 `json:"minutes"`
	Points            float64 `json:"points"`
	Rebounds          float64 `json:"rebounds"`
	Assists           float64 `json:"assists"`
	Steals            float64 `json:"steals"`
	Blocks            float64 `json:"blocks"`
	Turnovers         float64 `json:"turnovers"`
	FGMade            float64 `json:"fg_made"`
	FGAttempted       float64 `json:"fg_attempted"`
	ThreePtMade       float64 `json:"3pt_made"`
	ThreePtAttempted  float64 `json:"3pt_attempted"`
	FTMade            float64 `json:"ft_made"`
	FTAttempted       float64 `json:"ft_attempted"`
	RimMade           float64 `json:"rim_fg_made"`
	RimAttempted      float64 `json:"rim_fg_attempted"`
	MidRangeMade      float64 `json:"mid_range_fg_made"`
	MidRangeAttempted float64 `json:"mid_range_fg_attempted"`
}

// BucketStats is a finalized bucket: the raw counts plus shooting
// percentages and per-minute / per-40 rates.
type BucketStats struct {
	StatLine

	FGPct       float64 `json:"fg_pct"`
	ThreePtPct  float64 `json:"3pt_pct"`
	FTPct       float64 `json:"ft_pct"`
	RimPct      float64 `json:"rim_fg_pct"`
	MidRangePct float64 `json:"mid_range_fg_pct"`

	PointsPerMin    float64 `json:"points_per_min"`
	PointsPer40     float64 `json:"points_per_40"`
	ReboundsPerMin  float64 `json:"rebounds_per_min"`
	ReboundsPer40   float64 `json:"rebounds_per_40"`
	AssistsPerMin   float64 `json:"assists_per_min"`
	AssistsPer40    float64 `json:"assists_per_40"`
	StealsPerMin    float64 `json:"steals_per_min"`
	StealsPer40     float64 `json:"steals_per_40"`
	BlocksPerMin    float64 `json:"blocks_per_min"`
	BlocksPer40     float64 `json:"blocks_per_40"`
	TurnoversPerMin float64 `json:"turnovers_per_min"`
	TurnoversPer40  float64 `json:"turnovers_per_40"`
}

// columnNames is the report column order, shared by the CSV writer, the
// terminal renderer and the bucket arithmetic below. It must stay in
// lockstep with fields.
var columnNames = []string{
	"minutes", "points", "rebounds", "assists", "steals", "blocks", "turnovers",
	"fg_made", "fg_attempted", "3pt_made", "3pt_attempted", "ft_made", "ft_attempted",
	"rim_fg_made", "rim_fg_attempted", "mid_range_fg_made", "mid_range_fg_attempted",
	"fg_pct", "3pt_pct", "ft_pct", "rim_fg_pct", "mid_range_fg_pct",
	"points_per_min", "points_per_40", "rebounds_per_min", "rebounds_per_40",
	"assists_per_min", "assists_per_40", "steals_per_min", "steals_per_40",
	"blocks_per_min", "blocks_per_40", "turnovers_per_min", "turnovers_per_40",
}

// fields lists every column's storage in report column order.
func (b *BucketStats) fields() []*float64 {
	return []*float64{
		&b.Minutes, &b.Points, &b.Rebounds, &b.Assists, &b.Steals, &b.Blocks, &b.Turnovers,
		&b.FGMade, &b.FGAttempted, &b.ThreePtMade, &b.ThreePtAttempted, &b.FTMade, &b.FTAttempted,
		&b.RimMade, &b.RimAttempted, &b.MidRangeMade, &b.MidRangeAttempted,
		&b.FGPct, &b.ThreePtPct, &b.FTPct, &b.RimPct, &b.MidRangePct,
		&b.PointsPerMin, &b.PointsPer40, &b.ReboundsPerMin, &b.ReboundsPer40,
		&b.AssistsPerMin, &b.AssistsPer40, &b.StealsPerMin, &b.StealsPer40,
		&b.BlocksPerMin, &b.BlocksPer40, &b.TurnoversPerMin, &b.TurnoversPer40,
	}
}

// Column pairs a report column name with its accessor.
type Column struct {
	Name  string
	Value func(BucketStats) float64
}

// Columns returns the report's statistic columns in output order.
func Columns() []Column {
	cols := make([]Column, len(columnNames))
	for i, name := range columnNames {
		idx := i
		cols[i] = Column{
			Name:  name,
			Value: func(b BucketStats) float64 { return *b.fields()[idx] },
		}
	}
	return cols
}

// safeDiv keeps empty buckets numeric: zero attempts or zero minutes
// yield 0, never NaN or Inf.
func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// Finalize derives percentages and rates from the raw counts.
func (s StatLine) Finalize() BucketStats {
	b := BucketStats{StatLine: s}

	b.FGPct = safeDiv(s.FGMade, s.FGAttempted)
	b.ThreePtPct = safeDiv(s.ThreePtMade, s.ThreePtAttempted)
	b.FTPct = safeDiv(s.FTMade, s.FTAttempted)
	b.RimPct = safeDiv(s.RimMade, s.RimAttempted)
	b.MidRangePct = safeDiv(s.MidRangeMade, s.MidRangeAttempted)

	b.PointsPerMin = safeDiv(s.Points, s.Minutes)
	b.PointsPer40 = b.PointsPerMin * 40
	b.ReboundsPerMin = safeDiv(s.Rebounds, s.Minutes)
	b.ReboundsPer40 = b.ReboundsPerMin * 40
	b.AssistsPerMin = safeDiv(s.Assists, s.Minutes)
	b.AssistsPer40 = b.AssistsPerMin * 40
	b.StealsPerMin = safeDiv(s.Steals, s.Minutes)
	b.StealsPer40 = b.StealsPerMin * 40
	b.BlocksPerMin = safeDiv(s.Blocks, s.Minutes)
	b.BlocksPer40 = b.BlocksPerMin * 40
	b.TurnoversPerMin = safeDiv(s.Turnovers, s.Minutes)
	b.TurnoversPer40 = b.TurnoversPerMin * 40

	return b
}

// Sub returns the column-wise difference b minus other, used for the net
// rows. Differences are taken on finalized values, before rounding.
func (b BucketStats) Sub(other BucketStats) BucketStats {
	var out BucketStats
	dst, x, y := out.fields(), b.fields(), other.fields()
	for i := range dst {
		*dst[i] = *x[i] - *y[i]
	}
	return out
}

// Rounded returns the bucket with every column rounded to 3 decimals,
// applied once when the report is assembled.
func (b BucketStats) Rounded() BucketStats {
	out := b
	for _, p := range out.fields() {
		*p = round3(*p)
	}
	return out
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
