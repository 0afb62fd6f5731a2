package dist

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Gaussian is a normal distribution with the given mean and standard
// deviation.
type Gaussian struct {
	Base
}

func NewGaussian(mu, sigma float64) *Gaussian {
	return &Gaussian{Base{mean: mu, stdev: sigma}}
}

func NewDefaultGaussian() *Gaussian {
	return NewGaussian(0, 1)
}

func (g *Gaussian) CalculateMean() (float64, error) {
	mean, err := sampleMean(g.data)
	if err != nil {
		return 0, err
	}
	g.mean = mean
	return g.mean, nil
}

// CalculateStdev estimates the standard deviation of the data. When sample
// is set the data is treated as a sample of a larger population and the
// n-1 denominator is used.
func (g *Gaussian) CalculateStdev(sample bool) (float64, error) {
	stdev, err := sampleStdev(g.data, sample)
	if err != nil {
		return 0, err
	}
	g.stdev = stdev
	return g.stdev, nil
}

// ReplaceStatsWithData recomputes mean and stdev from the data. On error g
// is unchanged.
func (g *Gaussian) ReplaceStatsWithData(sample bool) (float64, float64, error) {
	mean, err := sampleMean(g.data)
	if err != nil {
		return 0, 0, err
	}
	stdev, err := sampleStdev(g.data, sample)
	if err != nil {
		return 0, 0, err
	}
	g.mean, g.stdev = mean, stdev
	return mean, stdev, nil
}

func sampleMean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	s := stats.Sample{Xs: data}
	return s.Mean(), nil
}

func sampleStdev(data []float64, sample bool) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	s := stats.Sample{Xs: data}
	if sample {
		if len(data) < 2 {
			return 0, fmt.Errorf("%w: sample stdev needs at least 2 points", ErrDomain)
		}
		return s.StdDev(), nil
	}
	mean := s.Mean()
	var sumsq float64
	for _, d := range data {
		sumsq += (d - mean) * (d - mean)
	}
	return math.Sqrt(sumsq / float64(len(data))), nil
}

func (g *Gaussian) PDF(x float64) float64 {
	d := stats.NormalDist{Mu: g.mean, Sigma: g.stdev}
	return d.PDF(x)
}

// Add returns the distribution of the sum of two independent Gaussians.
func (g *Gaussian) Add(other *Gaussian) *Gaussian {
	return NewGaussian(g.mean+other.mean,
		math.Sqrt(g.stdev*g.stdev+other.stdev*other.stdev))
}

func (g *Gaussian) String() string {
	return fmt.Sprintf("mean %s, standard deviation %s",
		formatFloat(g.mean), formatFloat(g.stdev))
}

// PlotHistogramPDF renders the histogram of the data next to the density
// the distribution predicts for each bin.
func (g *Gaussian) PlotHistogramPDF(w io.Writer, bins int) error {
	h, err := histogram(g.data, bins)
	if err != nil {
		return err
	}
	total := float64(len(g.data))
	labels := make([]string, len(h.counts))
	observed := make([]float64, len(h.counts))
	expected := make([]float64, len(h.counts))
	for i, c := range h.counts {
		lo, hi := h.edges(i)
		labels[i] = fmt.Sprintf("[%.4g, %.4g)", lo, hi)
		observed[i] = float64(c) / total
		expected[i] = g.PDF((lo+hi)/2) * h.width
	}
	return renderPaired(w, labels, observed, expected)
}
