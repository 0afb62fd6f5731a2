package batch

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v2"

	"github.com/nelhage/distributions/cmd/internal/opt"
	"github.com/nelhage/distributions/dist"
	"github.com/nelhage/distributions/store"
)

type Command struct {
	threads int
	db      string

	out io.Writer
}

// JobFile lists data sets to fit. Relative paths are resolved against
// the directory holding the job file.
type JobFile struct {
	DB   string `yaml:"db"`
	Jobs []Job  `yaml:"jobs"`
}

type Job struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Data   string `yaml:"data"`
	Sample bool   `yaml:"sample"`
}

type result struct {
	job  *Job
	dist dist.Distribution
	err  error
}

func (*Command) Name() string     { return "batch" }
func (*Command) Synopsis() string { return "Fit every data set listed in a YAML job file" }
func (*Command) Usage() string {
	return `batch [options] JOBS.yaml

JOBS.yaml has the form

  db: fits.db
  jobs:
    - name: coin
      kind: binomial
      data: coin.txt
    - name: height
      kind: gaussian
      data: height.txt
      sample: true
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "Number of threads")
	flags.StringVar(&c.db, "db", "", "override the job file's database")
}

func LoadJobs(path string) (*JobFile, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var jf JobFile
	if err := yaml.UnmarshalStrict(buf, &jf); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	if jf.DB != "" && !filepath.IsAbs(jf.DB) {
		jf.DB = filepath.Join(dir, jf.DB)
	}
	for i := range jf.Jobs {
		j := &jf.Jobs[i]
		if j.Data == "" {
			return nil, fmt.Errorf("%s: job %d has no data", path, i)
		}
		if j.Kind == "" {
			j.Kind = store.KindBinomial
		}
		if j.Name == "" {
			j.Name = fmt.Sprintf("job%d", i)
		}
		if !filepath.IsAbs(j.Data) {
			j.Data = filepath.Join(dir, j.Data)
		}
	}
	return &jf, nil
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flag.Args()) != 1 {
		flag.Usage()
		return subcommands.ExitUsageError
	}
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	jf, err := LoadJobs(flag.Arg(0))
	if err != nil {
		log.Printf("load jobs: %v", err)
		return subcommands.ExitFailure
	}
	if c.db != "" {
		jf.DB = c.db
	}

	results, err := c.run(ctx, jf.Jobs)
	if err != nil {
		log.Printf("batch: %v", err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	var fits []*store.Fit
	for _, r := range results {
		if r.err != nil {
			log.Printf("fit name=%s data=%s err=%v", r.job.Name, r.job.Data, r.err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", r.job.Name, r.dist)
		f, err := store.FromDistribution(r.job.Name, r.job.Data, r.dist)
		if err != nil {
			log.Fatalf("record: %v", err)
		}
		fits = append(fits, f)
	}

	if jf.DB != "" && len(fits) > 0 {
		repo, err := store.Open(jf.DB)
		if err != nil {
			log.Fatalf("open db=%s: %v", jf.DB, err)
		}
		defer repo.Close()
		if err := repo.InsertFits(fits); err != nil {
			log.Printf("insert fits=%d err=%v", len(fits), err)
			return subcommands.ExitFailure
		}
	}
	return status
}

// run fits every job on a pool of c.threads workers. Per-job failures are
// reported in the results; only cancellation aborts the batch.
func (c *Command) run(ctx context.Context, jobs []Job) ([]result, error) {
	threads := c.threads
	if threads < 1 {
		threads = 1
	}
	results := make([]result, len(jobs))
	input := make(chan int)

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		defer close(input)
		for i := range jobs {
			select {
			case input <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for i := 0; i < threads; i++ {
		grp.Go(func() error {
			for idx := range input {
				j := &jobs[idx]
				d, err := opt.Load(j.Kind, j.Data, j.Sample)
				results[idx] = result{job: j, dist: d, err: err}
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
