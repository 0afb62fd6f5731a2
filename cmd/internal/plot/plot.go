package plot

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/nelhage/distributions/cmd/internal/opt"
	"github.com/nelhage/distributions/dist"
	"github.com/nelhage/distributions/store"
)

type Command struct {
	fit      opt.Fit
	binomial opt.Binomial

	bins int
	pmf  bool
	pdf  bool
	bar  bool

	out io.Writer
}

func (*Command) Name() string     { return "plot" }
func (*Command) Synopsis() string { return "Render a text plot of data or a fitted distribution" }
func (*Command) Usage() string {
	return `plot [options] [FILE]

Without options, draw a histogram of the numbers in FILE. With -pmf, draw
the probability mass function of the binomial fitted to FILE, or of the
binomial given by -p and -n if no FILE is named. With -pdf, draw the
histogram of FILE alongside the fitted gaussian density. With -bar, draw the
counts of 0 and 1 outcomes in FILE.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.fit.AddFlags(flags)
	c.binomial.AddFlags(flags, "")
	flags.IntVar(&c.bins, "bins", dist.DefaultBins, "number of histogram bins")
	flags.BoolVar(&c.pmf, "pmf", false, "plot the binomial probability mass function")
	flags.BoolVar(&c.pdf, "pdf", false, "plot the histogram against the gaussian density")
	flags.BoolVar(&c.bar, "bar", false, "plot 0/1 outcome counts")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	if len(flag.Args()) == 0 {
		if !c.pmf {
			flag.Usage()
			return subcommands.ExitUsageError
		}
		b, err := c.binomial.Build()
		if err != nil {
			log.Printf("plot: %v", err)
			return subcommands.ExitFailure
		}
		if _, _, err := b.PlotBarPMF(out); err != nil {
			log.Printf("plot: %v", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if c.pmf || c.bar {
		c.fit.Kind = store.KindBinomial
	} else if c.pdf {
		c.fit.Kind = store.KindGaussian
	}
	d, err := c.fit.Load(flag.Arg(0))
	if err != nil {
		log.Printf("plot path=%s err=%v", flag.Arg(0), err)
		return subcommands.ExitFailure
	}

	switch {
	case c.pmf:
		_, _, err = d.(*dist.Binomial).PlotBarPMF(out)
	case c.bar:
		err = d.(*dist.Binomial).PlotBar(out)
	case c.pdf:
		err = d.(*dist.Gaussian).PlotHistogramPDF(out, c.bins)
	default:
		err = d.PlotHistogram(out, c.bins)
	}
	if err != nil {
		log.Printf("plot: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
