// Package rankmap converts between fantasy points distributions and finishing
// rank distributions for a position, using a table of points earned at each
// historical rank. Points distributions are parametric (currently Gaussian);
// rank distributions are described only by mean and variance, since their
// shape depends on the table itself.
package rankmap

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"github.com/yourusername/ff-toolbox/internal/metrics"
)

// solveTolerance is the convergence tolerance for the inverse variance solve
const solveTolerance = 1e-2

// Mapper maps points distributions to rank distributions and back over a fixed
// points-by-rank table. It is immutable after construction and safe for
// concurrent use.
type Mapper struct {
	smoothed  []float64 // points per rank after smoothing, best rank first
	bins      []float64 // rank-bin boundaries, midpoints of adjacent smoothed points
	ranks     []float64 // 1..n
	ascPoints []float64 // smoothed reversed into ascending order for interpolation
	ascRanks  []float64 // ranks reversed to keep pairing with ascPoints
	dist      PointsDistribution
	kind      DistKind
}

// NewMapper builds a mapper from a points-by-rank table, index 0 = rank 1
// (best). The table is smoothed once; bins and the rank axis are derived from
// the smoothed table and cached for the mapper's lifetime.
func NewMapper(points []float64, kind DistKind) (*Mapper, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTableTooSmall, len(points))
	}
	dist, err := newDistribution(kind)
	if err != nil {
		return nil, err
	}

	smoothed := smooth(points)
	bins := make([]float64, len(smoothed)-1)
	for i := range bins {
		bins[i] = (smoothed[i] + smoothed[i+1]) / 2
	}
	ranks := make([]float64, len(smoothed))
	for i := range ranks {
		ranks[i] = float64(i + 1)
	}

	ascPoints := append([]float64{}, smoothed...)
	floats.Reverse(ascPoints)
	ascRanks := append([]float64{}, ranks...)
	floats.Reverse(ascRanks)

	return &Mapper{
		smoothed:  smoothed,
		bins:      bins,
		ranks:     ranks,
		ascPoints: ascPoints,
		ascRanks:  ascRanks,
		dist:      dist,
		kind:      kind,
	}, nil
}

// SmoothedPoints returns a copy of the smoothed points table
func (m *Mapper) SmoothedPoints() []float64 {
	return append([]float64{}, m.smoothed...)
}

// Bins returns a copy of the rank-bin boundaries in points space
func (m *Mapper) Bins() []float64 {
	return append([]float64{}, m.bins...)
}

// Kind returns the points distribution family the mapper was built with
func (m *Mapper) Kind() DistKind {
	return m.kind
}

// PointsToRankMean converts points means to rank means by piecewise-linear
// interpolation against the smoothed table. Values outside the table clamp to
// the nearest boundary rank.
func (m *Mapper) PointsToRankMean(points []float64) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = m.pointsToRankMeanOne(p)
	}
	metrics.PointsToRankConversionsTotal.Add(float64(len(points)))
	return out
}

// RankToPointsMean converts rank means to points means by piecewise-linear
// interpolation against the smoothed table. Values outside the table clamp to
// the nearest boundary points value.
func (m *Mapper) RankToPointsMean(ranks []float64) []float64 {
	out := make([]float64, len(ranks))
	for i, r := range ranks {
		out[i] = m.rankToPointsMeanOne(r)
	}
	metrics.RankToPointsConversionsTotal.Add(float64(len(ranks)))
	return out
}

func (m *Mapper) pointsToRankMeanOne(points float64) float64 {
	return interp(points, m.ascPoints, m.ascRanks)
}

func (m *Mapper) rankToPointsMeanOne(rank float64) float64 {
	return interp(rank, m.ranks, m.smoothed)
}

// PointsToRankVariance computes the rank variance implied by a Gaussian points
// distribution with the given mean and variance. The variance is taken about
// the rank implied by the points mean, not the expectation of the per-rank
// probability masses; the inverse solver's seeding depends on this definition.
func (m *Mapper) PointsToRankVariance(pointsVariance, pointsMean float64) (float64, error) {
	if pointsVariance <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidVariance, pointsVariance)
	}
	return m.rankVariance(pointsVariance, pointsMean), nil
}

// rankProbabilities assigns each rank the probability mass its points bin
// captures under the points distribution. Bin boundaries fall in points space,
// which decreases as rank worsens, so consecutive CDF differences are negated
// to stay non-negative.
func (m *Mapper) rankProbabilities(pointsVariance, pointsMean float64) []float64 {
	stdev := math.Sqrt(pointsVariance)
	cdfs := make([]float64, len(m.bins))
	for i, bin := range m.bins {
		cdfs[i] = m.dist.CDF((bin - pointsMean) / stdev)
	}

	probs := make([]float64, len(m.ranks))
	probs[0] = 1 - cdfs[0]
	for i := 1; i < len(probs)-1; i++ {
		probs[i] = cdfs[i-1] - cdfs[i]
	}
	probs[len(probs)-1] = cdfs[len(cdfs)-1]
	return probs
}

// rankVariance is the unchecked forward transform. A non-positive variance
// yields NaN, which the inverse solver's objective maps to +Inf.
func (m *Mapper) rankVariance(pointsVariance, pointsMean float64) float64 {
	probs := m.rankProbabilities(pointsVariance, pointsMean)
	refRank := m.pointsToRankMeanOne(pointsMean)
	variance := 0.0
	for i, p := range probs {
		diff := m.ranks[i] - refRank
		variance += p * diff * diff
	}
	return variance
}

// RankToPointsVariance recovers the points variance that reproduces the given
// rank variance under the forward transform at the points mean implied by the
// rank mean. There is no closed form, so the absolute forward-transform error
// is minimized with Nelder-Mead from a finite-difference seed.
func (m *Mapper) RankToPointsVariance(rankVariance, rankMean float64) (float64, error) {
	start := time.Now()
	pointsMean := m.rankToPointsMeanOne(rankMean)

	// Seed: points delta across one rank stdev approximates one points stdev
	delta := m.rankToPointsMeanOne(rankMean+math.Sqrt(rankVariance)) - pointsMean
	guess := delta * delta

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			candidate := x[0]
			err := math.Abs(m.rankVariance(candidate, pointsMean) - rankVariance)
			if math.IsNaN(err) {
				return math.Inf(1)
			}
			return err
		},
	}
	settings := &optimize.Settings{
		Converger:       &optimize.FunctionConverge{Absolute: solveTolerance, Iterations: 20},
		MajorIterations: 500,
	}

	result, err := optimize.Minimize(problem, []float64{guess}, settings, &optimize.NelderMead{})
	if err != nil {
		metrics.InverseSolveFailuresTotal.Inc()
		return 0, fmt.Errorf("%w: %v", ErrNoConvergence, err)
	}
	if statusErr := result.Status.Err(); statusErr != nil {
		metrics.InverseSolveFailuresTotal.Inc()
		return 0, fmt.Errorf("%w: %v", ErrNoConvergence, statusErr)
	}

	metrics.InverseSolveDuration.Observe(time.Since(start).Seconds())
	return result.X[0], nil
}

// RankConfidenceIntervals computes per-player rank interval bounds for the
// given confidence level. Row i holds the bound mapped from the upper points
// bound first, then the bound mapped from the lower points bound; because
// higher points mean better (numerically lower) ranks, the first column is the
// better-rank bound.
func (m *Mapper) RankConfidenceIntervals(rankMeans, rankVariances []float64, confidence float64) ([][2]float64, error) {
	if len(rankMeans) != len(rankVariances) {
		return nil, fmt.Errorf("%w: %d means, %d variances", ErrShapeMismatch, len(rankMeans), len(rankVariances))
	}
	if confidence < 0 || confidence > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidConfidence, confidence)
	}

	zScore := m.dist.Quantile((1 + confidence) / 2)
	intervals := make([][2]float64, len(rankMeans))
	for i := range rankMeans {
		pointsMean := m.rankToPointsMeanOne(rankMeans[i])
		pointsVariance, err := m.RankToPointsVariance(rankVariances[i], rankMeans[i])
		if err != nil {
			return nil, fmt.Errorf("interval %d: %w", i, err)
		}
		pointsStdev := math.Sqrt(pointsVariance)
		intervals[i][0] = m.pointsToRankMeanOne(pointsMean + zScore*pointsStdev)
		intervals[i][1] = m.pointsToRankMeanOne(pointsMean - zScore*pointsStdev)
	}
	return intervals, nil
}

// interp is a piecewise-linear table lookup with clamped extrapolation. xs
// must be ascending.
func interp(x float64, xs, ys []float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	last := len(xs) - 1
	if x >= xs[last] {
		return ys[last]
	}
	i := sort.SearchFloat64s(xs, x)
	if xs[i] == x {
		return ys[i]
	}
	t := (x - xs[i-1]) / (xs[i] - xs[i-1])
	return ys[i-1] + t*(ys[i]-ys[i-1])
}
