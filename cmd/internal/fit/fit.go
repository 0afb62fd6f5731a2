package fit

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/subcommands"
	"github.com/nelhage/distributions/cmd/internal/opt"
	"github.com/nelhage/distributions/dist"
	"github.com/nelhage/distributions/store"
)

type Command struct {
	fit   opt.Fit
	store opt.Store

	name      string
	quantiles bool

	out io.Writer
}

func (*Command) Name() string     { return "fit" }
func (*Command) Synopsis() string { return "Estimate distribution parameters from data files" }
func (*Command) Usage() string {
	return `fit [options] FILE...

Read one number per line from each FILE and fit the selected distribution
to it. Binomial data is a sequence of 0/1 trial outcomes.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.fit.AddFlags(flags)
	c.store.AddFlags(flags)
	flags.StringVar(&c.name, "name", "", "name to store the fit under (default: file name)")
	flags.BoolVar(&c.quantiles, "quantiles", false, "print data quantiles")
}

func nameFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flag.Args()) == 0 {
		flag.Usage()
		return subcommands.ExitUsageError
	}
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	repo, err := c.store.Open()
	if err != nil {
		log.Fatalf("open db=%s: %v", c.store.DB, err)
	}
	if repo != nil {
		defer repo.Close()
	}

	status := subcommands.ExitSuccess
	var fits []*store.Fit
	for _, path := range flag.Args() {
		d, err := c.fit.Load(path)
		if err != nil {
			log.Printf("fit path=%s err=%v", path, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", path, d)
		if c.quantiles {
			printSummary(out, d.Data())
		}
		name := c.name
		if name == "" {
			name = nameFor(path)
		}
		f, err := store.FromDistribution(name, path, d)
		if err != nil {
			log.Fatalf("record: %v", err)
		}
		fits = append(fits, f)
	}

	if repo != nil && len(fits) > 0 {
		if err := repo.InsertFits(fits); err != nil {
			log.Printf("insert fits=%d err=%v", len(fits), err)
			return subcommands.ExitFailure
		}
	}
	return status
}

func printSummary(out io.Writer, data []float64) {
	s, err := dist.Summarize(data)
	if err != nil {
		return
	}
	fmt.Fprintf(out, "  count=%d min=%g max=%g", s.Count, s.Min, s.Max)
	qs := make([]float64, 0, len(s.Quantiles))
	for q := range s.Quantiles {
		qs = append(qs, q)
	}
	sort.Float64s(qs)
	for _, q := range qs {
		fmt.Fprintf(out, " q%g=%g", q, s.Quantiles[q])
	}
	fmt.Fprintln(out)
}
