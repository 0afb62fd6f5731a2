package dist

import (
	"math"

	"github.com/bmizerany/perks/quantile"
)

var DefaultQuantiles = []float64{0.05, 0.5, 0.95}

type Summary struct {
	Count     int
	Min, Max  float64
	Quantiles map[float64]float64
}

// Summarize reports the extent of data along with streaming estimates of
// the requested quantiles.
func Summarize(data []float64, quantiles ...float64) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, ErrEmptyData
	}
	if len(quantiles) == 0 {
		quantiles = DefaultQuantiles
	}
	s := Summary{
		Count:     len(data),
		Min:       math.Inf(1),
		Max:       math.Inf(-1),
		Quantiles: make(map[float64]float64, len(quantiles)),
	}
	stream := quantile.NewTargeted(quantiles...)
	for _, d := range data {
		stream.Insert(d)
		s.Min = math.Min(s.Min, d)
		s.Max = math.Max(s.Max, d)
	}
	for _, q := range quantiles {
		s.Quantiles[q] = stream.Query(q)
	}
	return s, nil
}
