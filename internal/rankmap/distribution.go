package rankmap

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// DistKind selects the parametric family used to model points distributions
type DistKind string

const (
	// DistGaussian models season-long points totals
	DistGaussian DistKind = "gaussian"
)

// PointsDistribution evaluates the standardized distribution family backing a
// mapper. CDF takes inputs already standardized against the points mean and
// stdev; Quantile is its inverse, used for interval z-scores.
type PointsDistribution interface {
	CDF(z float64) float64
	Quantile(p float64) float64
}

type gaussianDist struct {
	normal distuv.Normal
}

func (g gaussianDist) CDF(z float64) float64 {
	return g.normal.CDF(z)
}

func (g gaussianDist) Quantile(p float64) float64 {
	return g.normal.Quantile(p)
}

func newDistribution(kind DistKind) (PointsDistribution, error) {
	switch kind {
	case DistGaussian:
		return gaussianDist{normal: distuv.Normal{Mu: 0, Sigma: 1}}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDistribution, kind)
	}
}
