package describe

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/nelhage/distributions/cmd/internal/opt"
)

type Command struct {
	binomial opt.Binomial
	pmf      bool

	out io.Writer
}

func (*Command) Name() string     { return "describe" }
func (*Command) Synopsis() string { return "Describe a binomial distribution" }
func (*Command) Usage() string {
	return `describe [-p P] [-n N]

Print the mean and standard deviation of Binomial(N, P).
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.binomial.AddFlags(flags, "")
	flags.BoolVar(&c.pmf, "pmf", false, "also print P(X=k) and P(X<=k) for every k")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	b, err := c.binomial.Build()
	if err != nil {
		log.Printf("describe: %v", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(out, b)
	if c.pmf {
		for k := 0; k <= b.N(); k++ {
			fmt.Fprintf(out, "%3d %.6f %.6f\n", k, b.PMF(k), b.CDF(k))
		}
	}
	return subcommands.ExitSuccess
}
