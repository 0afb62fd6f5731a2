package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/distributions/dist"
)

func openTemp(t *testing.T) *Repository {
	repo, err := Open(filepath.Join(t.TempDir(), "fits.db"))
	require.NoError(t, err)
	t.Cleanup(repo.Close)
	return repo
}

func TestInsertAndSelect(t *testing.T) {
	repo := openTemp(t)

	b := dist.NewDefaultBinomial()
	b.SetData([]float64{1, 0, 1, 1, 0})
	_, _, err := b.ReplaceStatsWithData()
	require.NoError(t, err)

	f := FromBinomial("coin", "coin.txt", b)
	require.NoError(t, repo.InsertFit(f))
	assert.NotZero(t, f.ID)

	g := dist.NewGaussian(3, 0.5)
	require.NoError(t, repo.InsertFits([]*Fit{
		FromGaussian("height", "height.txt", g),
		FromGaussian("weight", "", g),
	}))

	all, err := repo.Fits("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "coin", all[0].Name)
	assert.Equal(t, KindBinomial, all[0].Kind)
	assert.Equal(t, 5, all[0].N)
	assert.InDelta(t, 0.6, all[0].P, 1e-12)
	assert.Equal(t, 5, all[0].Samples)
	assert.WithinDuration(t, f.Timestamp, all[0].Timestamp, time.Second)

	gs, err := repo.Fits(KindGaussian)
	require.NoError(t, err)
	require.Len(t, gs, 2)
	assert.Equal(t, "weight", gs[1].Name)
	assert.Equal(t, 3.0, gs[1].Mean)
}

func TestFitDistribution(t *testing.T) {
	b, err := dist.NewBinomial(0.4, 25)
	require.NoError(t, err)
	d, err := FromBinomial("b", "", b).Distribution()
	require.NoError(t, err)
	assert.Equal(t, b.String(), d.String())

	g := dist.NewGaussian(1, 2)
	d, err = FromGaussian("g", "", g).Distribution()
	require.NoError(t, err)
	assert.Equal(t, g.String(), d.String())

	_, err = (&Fit{Kind: "poisson"}).Distribution()
	assert.Error(t, err)
}

func TestFromDistribution(t *testing.T) {
	f, err := FromDistribution("b", "b.txt", dist.NewDefaultBinomial())
	require.NoError(t, err)
	assert.Equal(t, KindBinomial, f.Kind)
	assert.Equal(t, 20, f.N)

	f, err = FromDistribution("g", "g.txt", dist.NewDefaultGaussian())
	require.NoError(t, err)
	assert.Equal(t, KindGaussian, f.Kind)
	assert.Equal(t, 1.0, f.Stdev)

	_, err = FromDistribution("nil", "", nil)
	assert.Error(t, err)
}
