package dist

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadData(t *testing.T) {
	var b Base
	err := b.ReadData(strings.NewReader("1\n0\n\n 1 \n0.5\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1, 0.5}, b.Data())

	err = b.ReadData(strings.NewReader("1\nzero\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, []float64{1, 0, 1, 0.5}, b.Data())
}

func TestReadDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trials.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n0\n1\n1\n0\n"), 0644))

	b := NewDefaultBinomial()
	require.NoError(t, b.ReadDataFile(path))
	p, n, err := b.ReplaceStatsWithData()
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.InDelta(t, 0.6, p, 1e-12)

	assert.Error(t, b.ReadDataFile(filepath.Join(t.TempDir(), "missing.txt")))
}

func TestPlotHistogram(t *testing.T) {
	var d Distribution = NewDefaultBinomial()
	var buf bytes.Buffer
	assert.ErrorIs(t, d.PlotHistogram(&buf, 5), ErrEmptyData)

	d.SetData([]float64{1, 2, 2, 3, 3, 3, 4, 4, 4, 4})
	require.NoError(t, d.PlotHistogram(&buf, 3))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[2], strings.Repeat("#", barWidth)))

	buf.Reset()
	d.SetData([]float64{7, 7, 7})
	require.NoError(t, d.PlotHistogram(&buf, 3))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{10, "10.0"},
		{0.5, "0.5"},
		{math.Sqrt(5), "2.23606797749979"},
		{-3, "-3.0"},
		{math.Inf(1), "+Inf"},
		{math.NaN(), "NaN"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.out, formatFloat(tc.in))
	}
}

func TestReadDataNonFinite(t *testing.T) {
	for _, in := range []string{"1\nNaN\n0\n", "1\n0\n+Inf\n", "-inf\n"} {
		var b Base
		b.SetData([]float64{1})
		err := b.ReadData(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrDomain, "input=%q", in)
		assert.Contains(t, err.Error(), "line ")
		assert.Equal(t, []float64{1}, b.Data())
	}
}

func TestPlotHistogramNonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		var buf bytes.Buffer
		g := NewDefaultGaussian()
		g.SetData([]float64{1, bad, 0})
		assert.ErrorIs(t, g.PlotHistogram(&buf, 5), ErrDomain)
		assert.ErrorIs(t, g.PlotHistogramPDF(&buf, 5), ErrDomain)
		assert.Empty(t, buf.String())
	}
}
