package history

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/distributions/dist"
	"github.com/nelhage/distributions/store"
)

func TestHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "fits.db")
	repo, err := store.Open(db)
	require.NoError(t, err)
	require.NoError(t, repo.InsertFits([]*store.Fit{
		store.FromBinomial("coin", "coin.txt", dist.NewDefaultBinomial()),
		store.FromGaussian("height", "height.txt", dist.NewGaussian(170, 8)),
	}))
	repo.Close()

	var buf bytes.Buffer
	c := &Command{out: &buf}
	flags := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(flags)
	require.NoError(t, flags.Parse([]string{"-db", db, "-kind", "gaussian"}))
	assert.Equal(t, subcommands.ExitSuccess, c.Execute(context.Background(), flags))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "height")
	assert.Contains(t, lines[1], "gaussian mean 170.0, standard deviation 8.0")
}

func TestHistoryNeedsDB(t *testing.T) {
	c := &Command{}
	flags := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(flags)
	require.NoError(t, flags.Parse(nil))
	assert.Equal(t, subcommands.ExitUsageError, c.Execute(context.Background(), flags))
}
