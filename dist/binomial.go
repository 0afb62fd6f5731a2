package dist

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

const (
	DefaultP = 0.5
	DefaultN = 20
)

// Binomial is the distribution of the number of successes in N
// independent trials that each succeed with probability P.
type Binomial struct {
	Base

	p float64
	n int
}

// NewBinomial does not validate n; a p outside [0,1] is reported by the
// standard deviation calculation.
func NewBinomial(p float64, n int) (*Binomial, error) {
	b := &Binomial{p: p, n: n}
	b.CalculateMean()
	if _, err := b.CalculateStdev(); err != nil {
		return nil, err
	}
	return b, nil
}

func NewDefaultBinomial() *Binomial {
	b, err := NewBinomial(DefaultP, DefaultN)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Binomial) P() float64 { return b.p }
func (b *Binomial) N() int     { return b.n }

func (b *Binomial) CalculateMean() float64 {
	b.mean = b.p * float64(b.n)
	return b.mean
}

func (b *Binomial) CalculateStdev() (float64, error) {
	if !(b.p >= 0 && b.p <= 1) {
		return 0, fmt.Errorf("%w: p=%v outside [0,1]", ErrDomain, b.p)
	}
	v := float64(b.n) * b.p * (1 - b.p)
	if v < 0 {
		return 0, fmt.Errorf("%w: negative variance n=%d p=%v", ErrDomain, b.n, b.p)
	}
	b.stdev = math.Sqrt(v)
	return b.stdev, nil
}

// ReplaceStatsWithData treats the sample as a sequence of 0/1 trial
// outcomes and re-estimates p and n from it. On error b is unchanged.
func (b *Binomial) ReplaceStatsWithData() (float64, int, error) {
	if len(b.data) == 0 {
		return 0, 0, ErrEmptyData
	}
	s := stats.Sample{Xs: b.data}
	fit, err := NewBinomial(s.Sum()/float64(len(b.data)), len(b.data))
	if err != nil {
		return 0, 0, err
	}
	b.p, b.n = fit.p, fit.n
	b.mean, b.stdev = fit.mean, fit.stdev
	return b.p, b.n, nil
}

// Add returns the distribution of the sum of two independent Binomials
// with the same p. Neither b nor other is modified.
func (b *Binomial) Add(other *Binomial) (*Binomial, error) {
	if b.p != other.p {
		return nil, ErrUnequalP
	}
	return NewBinomial(b.p, b.n+other.n)
}

// PMF returns the probability of exactly k successes.
func (b *Binomial) PMF(k int) float64 {
	if k < 0 || k > b.n {
		return 0
	}
	switch b.p {
	case 0:
		if k == 0 {
			return 1
		}
		return 0
	case 1:
		if k == b.n {
			return 1
		}
		return 0
	}
	// Work in log space; p^k underflows long before the product does.
	n, kf := float64(b.n), float64(k)
	return math.Exp(lchoose(n, kf) + kf*math.Log(b.p) + (n-kf)*math.Log1p(-b.p))
}

func lchoose(n, k float64) float64 {
	ln, _ := math.Lgamma(n + 1)
	lk, _ := math.Lgamma(k + 1)
	lnk, _ := math.Lgamma(n - k + 1)
	return ln - lk - lnk
}

// CDF returns the probability of at most k successes.
func (b *Binomial) CDF(k int) float64 {
	d := stats.BinomialDist{N: b.n, P: b.p}
	return d.CDF(float64(k))
}

func (b *Binomial) String() string {
	return fmt.Sprintf("mean %s, standard deviation %s, p %s, n %d",
		formatFloat(b.mean), formatFloat(b.stdev), formatFloat(b.p), b.n)
}
