// Package dist implements a handful of probability distributions that can
// be described from their parameters or fitted to an empirical sample.
package dist

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Distribution is the contract shared by every distribution in this
// package. Implementations embed Base for data storage and plotting.
type Distribution interface {
	Mean() float64
	Stdev() float64
	Data() []float64
	SetData(data []float64)
	PlotHistogram(w io.Writer, bins int) error
	fmt.Stringer
}

type Base struct {
	mean  float64
	stdev float64
	data  []float64
}

func (b *Base) Mean() float64   { return b.mean }
func (b *Base) Stdev() float64  { return b.stdev }
func (b *Base) Data() []float64 { return b.data }

func (b *Base) SetData(data []float64) {
	b.data = data
}

// ReadData replaces the sample with the numbers in r, one per line.
func (b *Base) ReadData(r io.Reader) error {
	var data []float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		v, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("line %d: %w: non-finite value %q", line, ErrDomain, l)
		}
		data = append(data, v)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	b.data = data
	return nil
}

func (b *Base) ReadDataFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := b.ReadData(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// formatFloat renders x in shortest round-trip form, keeping a trailing
// ".0" on integral values so that 10 prints as "10.0".
func formatFloat(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if strings.ContainsAny(s, ".NI") {
		return s
	}
	return s + ".0"
}

var (
	_ Distribution = (*Binomial)(nil)
	_ Distribution = (*Gaussian)(nil)
)
