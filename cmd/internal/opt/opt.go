package opt

import (
	"flag"
	"fmt"

	"github.com/nelhage/distributions/dist"
	"github.com/nelhage/distributions/store"
)

type Binomial struct {
	P float64
	N int
}

// AddFlags registers -p<suffix> and -n<suffix>.
func (o *Binomial) AddFlags(flags *flag.FlagSet, suffix string) {
	flags.Float64Var(&o.P, "p"+suffix, dist.DefaultP, "probability of success of each trial")
	flags.IntVar(&o.N, "n"+suffix, dist.DefaultN, "number of trials")
}

func (o *Binomial) Build() (*dist.Binomial, error) {
	return dist.NewBinomial(o.P, o.N)
}

type Fit struct {
	Kind   string
	Sample bool
}

func (o *Fit) AddFlags(flags *flag.FlagSet) {
	flags.StringVar(&o.Kind, "kind", store.KindBinomial, "distribution to fit (binomial or gaussian)")
	flags.BoolVar(&o.Sample, "sample", true, "treat gaussian data as a sample (n-1 stdev)")
}

// Load reads the data file at path and fits the selected distribution
// to it.
func (o *Fit) Load(path string) (dist.Distribution, error) {
	return Load(o.Kind, path, o.Sample)
}

func Load(kind, path string, sample bool) (dist.Distribution, error) {
	switch kind {
	case store.KindBinomial:
		b := dist.NewDefaultBinomial()
		if err := b.ReadDataFile(path); err != nil {
			return nil, err
		}
		if _, _, err := b.ReplaceStatsWithData(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return b, nil
	case store.KindGaussian:
		g := dist.NewDefaultGaussian()
		if err := g.ReadDataFile(path); err != nil {
			return nil, err
		}
		if _, _, err := g.ReplaceStatsWithData(sample); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown kind: %q", kind)
	}
}

type Store struct {
	DB string
}

func (o *Store) AddFlags(flags *flag.FlagSet) {
	flags.StringVar(&o.DB, "db", "", "sqlite database of fitted distributions")
}

// Open returns nil if no database was requested.
func (o *Store) Open() (*store.Repository, error) {
	if o.DB == "" {
		return nil, nil
	}
	return store.Open(o.DB)
}
