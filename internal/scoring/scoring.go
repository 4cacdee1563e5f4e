// Package scoring converts raw stat lines into fantasy points under a league's
// scoring settings. Accumulation uses decimal arithmetic so fractional
// per-yard scoring (0.04/yd, 0.1/yd) does not drift over a season's worth of
// stats.
package scoring

import (
	"github.com/shopspring/decimal"

	"github.com/yourusername/ff-toolbox/internal/models"
)

// StatLine holds a player's counting stats over some span of games
type StatLine struct {
	PassYds    float64 `json:"pass_yds"`
	PassTDs    int     `json:"pass_tds"`
	RushYds    float64 `json:"rush_yds"`
	RushTDs    int     `json:"rush_tds"`
	Receptions int     `json:"receptions"`
	RecYds     float64 `json:"rec_yds"`
	RecTDs     int     `json:"rec_tds"`
	Fumbles    int     `json:"fumbles"`
	Ints       int     `json:"ints"`
	FG0to39    int     `json:"fg_0_39"`
	FG40to49   int     `json:"fg_40_49"`
	FG50Plus   int     `json:"fg_50_plus"`
	FGMisses   int     `json:"fg_misses"`
	XPMakes    int     `json:"xp_makes"`
	XPMisses   int     `json:"xp_misses"`
}

// ProjectPoints computes the fantasy points the stat line is worth under the
// given scoring settings.
func ProjectPoints(settings models.ScoringSettings, line StatLine) float64 {
	total := decimal.Zero
	add := func(rate float64, quantity float64) {
		total = total.Add(decimal.NewFromFloat(rate).Mul(decimal.NewFromFloat(quantity)))
	}

	add(settings.PassYd, line.PassYds)
	add(settings.PassTD, float64(line.PassTDs))
	add(settings.RushYd, line.RushYds)
	add(settings.RushTD, float64(line.RushTDs))
	add(settings.Rec, float64(line.Receptions))
	add(settings.RecYd, line.RecYds)
	add(settings.RecTD, float64(line.RecTDs))
	add(settings.Fumble, float64(line.Fumbles))
	add(settings.Int, float64(line.Ints))
	add(settings.FG0to39, float64(line.FG0to39))
	add(settings.FG40to49, float64(line.FG40to49))
	add(settings.FG50Plus, float64(line.FG50Plus))
	add(settings.FGMiss, float64(line.FGMisses))
	add(settings.XPMake, float64(line.XPMakes))
	add(settings.XPMiss, float64(line.XPMisses))

	points, _ := total.Float64()
	return points
}

// SeasonPointsTable projects a points-by-rank table from per-rank stat lines,
// index 0 = rank 1. This is the raw input a rank mapper is built from.
func SeasonPointsTable(settings models.ScoringSettings, lines []StatLine) []float64 {
	table := make([]float64, len(lines))
	for i, line := range lines {
		table[i] = ProjectPoints(settings, line)
	}
	return table
}
