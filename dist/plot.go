package dist

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
)

const (
	DefaultBins = 10
	barWidth    = 50
)

type hist struct {
	min, width float64
	counts     []int
}

func (h *hist) edges(i int) (float64, float64) {
	lo := h.min + float64(i)*h.width
	return lo, lo + h.width
}

func histogram(data []float64, bins int) (*hist, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if bins <= 0 {
		bins = DefaultBins
	}
	min, max := math.Inf(1), math.Inf(-1)
	for _, d := range data {
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("%w: cannot bin non-finite data", ErrDomain)
	}
	h := &hist{min: min, width: (max - min) / float64(bins)}
	if h.width == 0 {
		h.width = 1
		bins = 1
	}
	h.counts = make([]int, bins)
	for _, d := range data {
		i := int((d - min) / h.width)
		if i >= bins {
			i = bins - 1
		}
		h.counts[i]++
	}
	return h, nil
}

// PlotHistogram writes a text histogram of the data to w.
func (b *Base) PlotHistogram(w io.Writer, bins int) error {
	h, err := histogram(b.data, bins)
	if err != nil {
		return err
	}
	labels := make([]string, len(h.counts))
	values := make([]float64, len(h.counts))
	for i, c := range h.counts {
		lo, hi := h.edges(i)
		labels[i] = fmt.Sprintf("[%.4g, %.4g)", lo, hi)
		values[i] = float64(c)
	}
	return renderBars(w, labels, values)
}

// PlotBar writes the number of failures and successes in the data.
func (b *Binomial) PlotBar(w io.Writer) error {
	if len(b.data) == 0 {
		return ErrEmptyData
	}
	var counts [2]float64
	for _, d := range b.data {
		if d != 0 {
			counts[1]++
		} else {
			counts[0]++
		}
	}
	return renderBars(w, []string{"0", "1"}, counts[:])
}

// PlotBarPMF writes the probability mass function for every k in 0..n and
// returns the plotted points.
func (b *Binomial) PlotBarPMF(w io.Writer) ([]int, []float64, error) {
	if b.n < 0 {
		return nil, nil, fmt.Errorf("%w: n=%d", ErrDomain, b.n)
	}
	xs := make([]int, b.n+1)
	ys := make([]float64, b.n+1)
	labels := make([]string, b.n+1)
	for k := range xs {
		xs[k] = k
		ys[k] = b.PMF(k)
		labels[k] = fmt.Sprint(k)
	}
	if err := renderBars(w, labels, ys); err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

func bar(v, max float64) string {
	if max <= 0 || v <= 0 {
		return ""
	}
	return strings.Repeat("#", int(math.Round(v/max*barWidth)))
}

func renderBars(w io.Writer, labels []string, values []float64) error {
	var max float64
	for _, v := range values {
		max = math.Max(max, v)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	for i, l := range labels {
		fmt.Fprintf(tw, "%s\t%.4g\t%s\n", l, values[i], bar(values[i], max))
	}
	return tw.Flush()
}

// renderPaired draws two series per label, marking the second with '*'.
func renderPaired(w io.Writer, labels []string, a, b []float64) error {
	var max float64
	for i := range a {
		max = math.Max(max, math.Max(a[i], b[i]))
	}
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	for i, l := range labels {
		fmt.Fprintf(tw, "%s\t%.4g\t%s\n", l, a[i], bar(a[i], max))
		fmt.Fprintf(tw, "\t%.4g\t%s\n", b[i], strings.Replace(bar(b[i], max), "#", "*", -1))
	}
	return tw.Flush()
}
