// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

// Package timeseries holds per-entity, per-day series of counts or rates.
package timeseries

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
)

// day is used when walking consecutive dates.
const day = 24 * time.Hour

// Series contains one value per consecutive day for a named entity
// (e.g. a country or a "Country: Province" combined key).
// Dates are ascending and contiguous; len(Dates) == len(Values).
type Series struct {
	Name   string
	Dates  []time.Time
	Values []float64
}

// New returns a Series starting at start with the supplied values,
// one per consecutive day.
func New(name string, start time.Time, values []float64) *Series {
	dates := make([]time.Time, len(values))
	for i := range values {
		dates[i] = start.Add(time.Duration(i) * day)
	}
	return &Series{Name: name, Dates: dates, Values: values}
}

// Len returns the number of days in s.
func (s *Series) Len() int { return len(s.Values) }

// Check verifies s's invariants: matching lengths and contiguous ascending dates.
func (s *Series) Check() error {
	if len(s.Dates) != len(s.Values) {
		return fmt.Errorf("%d dates but %d values", len(s.Dates), len(s.Values))
	}
	for i := 1; i < len(s.Dates); i++ {
		if s.Dates[i].Sub(s.Dates[i-1]) != day {
			return fmt.Errorf("dates %s and %s not consecutive",
				s.Dates[i-1].Format("2006-01-02"), s.Dates[i].Format("2006-01-02"))
		}
	}
	return nil
}

// Clip returns a new series restricted to days between start and end, inclusive.
func (s *Series) Clip(start, end time.Time) *Series {
	lo, hi := 0, len(s.Dates)
	for lo < hi && s.Dates[lo].Before(start) {
		lo++
	}
	for hi > lo && s.Dates[hi-1].After(end) {
		hi--
	}
	return &Series{s.Name, s.Dates[lo:hi], s.Values[lo:hi]}
}

// TrimBelow returns a new series that drops leading days with values below min.
// It's used to skip the early, noisy part of a cumulative count series.
func (s *Series) TrimBelow(min float64) *Series {
	i := 0
	for i < len(s.Values) && s.Values[i] < min {
		i++
	}
	return &Series{s.Name, s.Dates[i:], s.Values[i:]}
}

// Diff returns a new series of daily increases, one day shorter than s:
// the value for each day is its increase over the preceding day.
// Downward revisions in cumulative counts are clamped to 0.
func (s *Series) Diff() *Series {
	if len(s.Values) == 0 {
		return &Series{s.Name, nil, nil}
	}
	vals := make([]float64, len(s.Values)-1)
	for i := range vals {
		if d := s.Values[i+1] - s.Values[i]; d > 0 {
			vals[i] = d
		}
	}
	return &Series{s.Name, s.Dates[1:], vals}
}

// Smooth returns a new series holding a trailing moving average over window
// days. Days near the start average over the days available so far.
func (s *Series) Smooth(window int) *Series {
	if window < 1 {
		window = 1
	}
	vals := make([]float64, len(s.Values))
	for i := range s.Values {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		vals[i] = stat.Mean(s.Values[lo:i+1], nil)
	}
	return &Series{s.Name, s.Dates, vals}
}

// Scale returns a new series with all values multiplied by f.
func (s *Series) Scale(f float64) *Series {
	vals := make([]float64, len(s.Values))
	for i, v := range s.Values {
		vals[i] = v * f
	}
	return &Series{s.Name, s.Dates, vals}
}

// Last returns the final date and value. It panics on an empty series.
func (s *Series) Last() (time.Time, float64) {
	n := len(s.Values) - 1
	return s.Dates[n], s.Values[n]
}

// Max returns the date and value of the series' highest point.
// It panics on an empty series.
func (s *Series) Max() (time.Time, float64) {
	mi := 0
	for i, v := range s.Values {
		if v > s.Values[mi] {
			mi = i
		}
	}
	return s.Dates[mi], s.Values[mi]
}
