package rankmap

import "math"

// smoothWindow is the width of the centered moving average applied to raw
// points tables before any interpolation or binning.
const smoothWindow = 7

func blackmanWeights(m int) []float64 {
	weights := make([]float64, m)
	for k := range weights {
		theta := 2 * math.Pi * float64(k) / float64(m-1)
		weights[k] = 0.42 - 0.5*math.Cos(theta) + 0.08*math.Cos(2*theta)
	}
	return weights
}

// smooth applies a centered Blackman-weighted moving average. Windows clip at
// both ends of the table, so every index gets an average over the samples it
// has; an undefined average falls back to the raw value.
func smooth(raw []float64) []float64 {
	weights := blackmanWeights(smoothWindow)
	half := smoothWindow / 2
	out := make([]float64, len(raw))
	for i := range raw {
		var sum, weightSum float64
		for k, w := range weights {
			j := i - half + k
			if j < 0 || j >= len(raw) {
				continue
			}
			sum += w * raw[j]
			weightSum += w
		}
		avg := sum / weightSum
		if weightSum == 0 || math.IsNaN(avg) {
			avg = raw[i]
		}
		out[i] = avg
	}
	return out
}
