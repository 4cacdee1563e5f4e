package scoring

import (
	"math"
	"testing"

	"github.com/yourusername/ff-toolbox/internal/models"
)

func pprSettings() models.ScoringSettings {
	return models.ScoringSettings{
		PassYd:   0.04,
		PassTD:   4,
		RushYd:   0.1,
		RushTD:   6,
		Rec:      1,
		RecYd:    0.1,
		RecTD:    6,
		Fumble:   -2,
		Int:      -2,
		FG0to39:  3,
		FG40to49: 4,
		FG50Plus: 5,
		FGMiss:   -1,
		XPMake:   1,
		XPMiss:   -1,
	}
}

func TestProjectPointsQBLine(t *testing.T) {
	line := StatLine{PassYds: 4250, PassTDs: 30, Ints: 10, RushYds: 250, RushTDs: 2}
	// 170 + 120 - 20 + 25 + 12
	want := 307.0
	got := ProjectPoints(pprSettings(), line)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v points, got %v", want, got)
	}
}

func TestProjectPointsFractionalYardage(t *testing.T) {
	// 0.1/yd accumulation over odd yardage must stay exact
	line := StatLine{RecYds: 1333, Receptions: 100}
	want := 233.3
	got := ProjectPoints(pprSettings(), line)
	if got != want {
		t.Fatalf("expected exactly %v, got %v", want, got)
	}
}

func TestSeasonPointsTableOrder(t *testing.T) {
	lines := []StatLine{
		{RecYds: 1500, Receptions: 110, RecTDs: 12},
		{RecYds: 1200, Receptions: 90, RecTDs: 8},
		{RecYds: 900, Receptions: 70, RecTDs: 5},
	}
	table := SeasonPointsTable(pprSettings(), lines)
	if len(table) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(table))
	}
	for i := 1; i < len(table); i++ {
		if table[i] >= table[i-1] {
			t.Errorf("expected decreasing table, index %d: %v >= %v", i, table[i], table[i-1])
		}
	}
}
