// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

// Package rt estimates the effective reproduction number R_t of an epidemic
// from a cumulative case-count series, following the Bayesian approach of
// Bettencourt & Ribeiro as popularized by Kevin Systrom's rt.live:
// smoothed daily new cases are scored against a grid of candidate rates
// under a Poisson observation model, and log-likelihoods are summed over a
// trailing window to form a per-day posterior over the grid.
package rt

import (
	"fmt"
	"math"
	"time"

	"github.com/derat/covidcharts/timeseries"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// minLambda keeps zero-count days from zeroing the whole likelihood row.
const minLambda = 1e-8

// Params configures an estimate.
type Params struct {
	Grid   []float64 // candidate R_t values, ascending
	Gamma  float64   // 1 / serial interval, in 1/days
	MinCum float64   // cumulative count at which the series starts
	Smooth int       // smoothing window for daily new counts, in days
	Window int       // trailing window of summed log-likelihoods, in days
	Mass   float64   // credible interval probability mass, e.g. 0.9
}

// DefaultParams returns the parameters used for reports:
// rates from 0 to 8 in steps of 0.01, a 7-day serial interval,
// 7-day smoothing and likelihood windows, and a 90% credible interval.
func DefaultParams() Params {
	return Params{
		Grid:   Grid(0, 8, 0.01),
		Gamma:  1.0 / 7,
		MinCum: 25,
		Smooth: 7,
		Window: 7,
		Mass:   0.9,
	}
}

// Grid returns candidate rates from lo to hi (inclusive) in steps of step.
func Grid(lo, hi, step float64) []float64 {
	var g []float64
	for i := 0; ; i++ {
		v := lo + float64(i)*step
		if v > hi+step/2 {
			break
		}
		g = append(g, v)
	}
	return g
}

func (p *Params) check() error {
	if len(p.Grid) < 2 {
		return fmt.Errorf("grid needs at least 2 rates (got %d)", len(p.Grid))
	}
	if p.Gamma <= 0 {
		return fmt.Errorf("gamma %v not positive", p.Gamma)
	}
	if p.Smooth < 1 || p.Window < 1 {
		return fmt.Errorf("bad windows (smooth %d, likelihood %d)", p.Smooth, p.Window)
	}
	if p.Mass <= 0 || p.Mass >= 1 {
		return fmt.Errorf("credible mass %v not in (0, 1)", p.Mass)
	}
	return nil
}

// Point is the estimate for a single day.
type Point struct {
	Date       time.Time
	MostLikely float64 // posterior mode over the rate grid
	Low, High  float64 // credible interval bounds
}

// Estimate runs the full pipeline on a cumulative count series:
// trim, difference, smooth, score and summarize. One Point is returned per
// day starting with the second prepared day.
func Estimate(s *timeseries.Series, p Params) ([]Point, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	prep := Prepare(s, p)
	if prep.Len() < 2 {
		return nil, fmt.Errorf("%s: only %d usable days after reaching %v cumulative cases",
			s.Name, prep.Len(), p.MinCum)
	}

	ll := logLikelihoods(prep.Values, p)

	pts := make([]Point, len(ll))
	post := make([]float64, len(p.Grid))
	for t := range ll {
		// Sum log-likelihoods over the trailing window ending at t.
		lo := t - p.Window + 1
		if lo < 0 {
			lo = 0
		}
		for j := range post {
			post[j] = 0
		}
		for i := lo; i <= t; i++ {
			floats.Add(post, ll[i])
		}

		normalize(post)
		mode, low, high := interval(p.Grid, post, p.Mass)
		pts[t] = Point{
			Date:       prep.Dates[t+1], // row t scores day t+1 of prep
			MostLikely: mode,
			Low:        low,
			High:       high,
		}
	}
	return pts, nil
}

// Prepare reduces a cumulative count series to the smoothed daily new counts
// that the likelihood engine consumes: clip off the noisy early days below
// MinCum, difference, then smooth.
func Prepare(s *timeseries.Series, p Params) *timeseries.Series {
	return s.TrimBelow(p.MinCum).Diff().Smooth(p.Smooth)
}

// logLikelihoods returns one row per day t >= 1 of k. Row t-1 holds, for
// each candidate rate r, the Poisson log-likelihood of observing k[t] given
// an expected count of k[t-1] * exp(gamma*(r-1)).
func logLikelihoods(k []float64, p Params) [][]float64 {
	ll := make([][]float64, len(k)-1)
	for t := 1; t < len(k); t++ {
		row := make([]float64, len(p.Grid))
		obs := math.Round(k[t]) // Poisson needs integer observations
		for j, r := range p.Grid {
			lambda := k[t-1] * math.Exp(p.Gamma*(r-1))
			if lambda < minLambda {
				lambda = minLambda
			}
			row[j] = distuv.Poisson{Lambda: lambda}.LogProb(obs)
		}
		ll[t-1] = row
	}
	return ll
}

// normalize exponentiates a log-density row in place and scales it to sum
// to 1, shifting by the row max first so large windows don't underflow.
func normalize(row []float64) {
	max := floats.Max(row)
	for j, v := range row {
		row[j] = math.Exp(v - max)
	}
	floats.Scale(1/floats.Sum(row), row)
}

// interval returns the posterior mode and a credible interval holding at
// least mass, found by greedy expansion: starting at the mode, repeatedly
// absorb whichever neighboring grid point carries more density.
func interval(grid, post []float64, mass float64) (mode, low, high float64) {
	mi := floats.MaxIdx(post)
	lo, hi := mi, mi
	got := post[mi]
	for got < mass && (lo > 0 || hi < len(post)-1) {
		switch {
		case lo == 0:
			hi++
			got += post[hi]
		case hi == len(post)-1:
			lo--
			got += post[lo]
		case post[lo-1] >= post[hi+1]:
			lo--
			got += post[lo]
		default:
			hi++
			got += post[hi]
		}
	}
	return grid[mi], grid[lo], grid[hi]
}
