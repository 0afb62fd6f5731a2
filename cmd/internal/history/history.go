package history

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/nelhage/distributions/cmd/internal/opt"
	"github.com/nelhage/distributions/store"
)

type Command struct {
	store opt.Store
	kind  string

	out io.Writer
}

func (*Command) Name() string     { return "history" }
func (*Command) Synopsis() string { return "List stored fits" }
func (*Command) Usage() string {
	return `history -db FILE [-kind KIND]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.store.AddFlags(flags)
	flags.StringVar(&c.kind, "kind", "", "only list fits of this kind")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.store.DB == "" {
		log.Println("Must supply a database with -db")
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
	defer repo.Close()

	fits, err := repo.Fits(c.kind)
	if err != nil {
		log.Printf("history: %v", err)
		return subcommands.ExitFailure
	}
	render(out, fits)
	return subcommands.ExitSuccess
}

func render(out io.Writer, fits []*store.Fit) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTIME\tSAMPLES\tDISTRIBUTION")
	for _, f := range fits {
		desc := "?"
		if d, err := f.Distribution(); err == nil {
			desc = d.String()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s %s\n",
			f.ID, f.Name, f.Timestamp.Format(time.RFC3339), f.Samples, f.Kind, desc)
	}
	tw.Flush()
}
