package combine

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
	a, b opt.Binomial

	out io.Writer
}

func (*Command) Name() string     { return "combine" }
func (*Command) Synopsis() string { return "Add two independent binomial distributions" }
func (*Command) Usage() string {
	return `combine -p1 P -n1 N -p2 P -n2 N

Print the distribution of X1+X2 for independent X1 ~ Binomial(n1, p1) and
X2 ~ Binomial(n2, p2). p1 and p2 must be equal.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.a.AddFlags(flags, "1")
	c.b.AddFlags(flags, "2")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	a, err := c.a.Build()
	if err != nil {
		log.Printf("combine: first: %v", err)
		return subcommands.ExitFailure
	}
	b, err := c.b.Build()
	if err != nil {
		log.Printf("combine: second: %v", err)
		return subcommands.ExitFailure
	}
	sum, err := a.Add(b)
	if err != nil {
		log.Printf("combine p1=%v p2=%v: %v", a.P(), b.P(), err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(out, sum)
	return subcommands.ExitSuccess
}
